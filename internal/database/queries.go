package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const characterSheetColumns = "name, race, class, level, experience_points, proficiency_bonus, " +
	"hit_dice, total_hit_dice, armor_class, speed, max_hp, current_hp, temp_hp, " +
	"strength, dexterity, constitution, intelligence, wisdom, charisma, " +
	"strength_mod, dexterity_mod, constitution_mod, intelligence_mod, wisdom_mod, charisma_mod, " +
	"strength_save, dexterity_save, constitution_save, intelligence_save, wisdom_save, charisma_save, " +
	"acrobatics, animal_handling, arcana, athletics, deception, history, insight, intimidation, " +
	"investigation, medicine, nature, perception, performance, persuasion, religion, " +
	"sleight_of_hand, stealth, survival"

const characterColumns = "id, external_id, account_id, campaign_id, " + characterSheetColumns + ", created_at, updated_at"

const createMembershipQuery = "INSERT INTO memberships (account_id, campaign_id, game_master, created_at, updated_at) " +
	"VALUES ($1, $2, $3, $4, $5) RETURNING id, account_id, campaign_id, game_master, created_at, updated_at"

var insertCharacterQuery = fmt.Sprintf(
	"INSERT INTO characters (external_id, account_id, %s, created_at, updated_at) VALUES (%s) "+
		"RETURNING id, created_at, updated_at",
	characterSheetColumns,
	placeholders(53),
)

// placeholders returns "$1, $2, ..., $n".
func placeholders(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		if i > 1 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "$%d", i)
	}
	return b.String()
}

// sheetArgs returns the sheet's values in characterSheetColumns order.
func sheetArgs(s CharacterSheet) []any {
	return []any{
		s.Name, s.Race, s.Class, s.Level, s.ExperiencePoints, s.ProficiencyBonus,
		s.HitDice, s.TotalHitDice, s.ArmorClass, s.Speed, s.MaxHP, s.CurrentHP, s.TempHP,
		s.Strength, s.Dexterity, s.Constitution, s.Intelligence, s.Wisdom, s.Charisma,
		s.StrengthMod, s.DexterityMod, s.ConstitutionMod, s.IntelligenceMod, s.WisdomMod, s.CharismaMod,
		s.StrengthSave, s.DexteritySave, s.ConstitutionSave, s.IntelligenceSave, s.WisdomSave, s.CharismaSave,
		s.Acrobatics, s.AnimalHandling, s.Arcana, s.Athletics, s.Deception, s.History,
		s.Insight, s.Intimidation, s.Investigation, s.Medicine, s.Nature, s.Perception,
		s.Performance, s.Persuasion, s.Religion, s.SleightOfHand, s.Stealth, s.Survival,
	}
}

// sheetFields returns scan destinations in characterSheetColumns order.
func sheetFields(s *CharacterSheet) []any {
	return []any{
		&s.Name, &s.Race, &s.Class, &s.Level, &s.ExperiencePoints, &s.ProficiencyBonus,
		&s.HitDice, &s.TotalHitDice, &s.ArmorClass, &s.Speed, &s.MaxHP, &s.CurrentHP, &s.TempHP,
		&s.Strength, &s.Dexterity, &s.Constitution, &s.Intelligence, &s.Wisdom, &s.Charisma,
		&s.StrengthMod, &s.DexterityMod, &s.ConstitutionMod, &s.IntelligenceMod, &s.WisdomMod, &s.CharismaMod,
		&s.StrengthSave, &s.DexteritySave, &s.ConstitutionSave, &s.IntelligenceSave, &s.WisdomSave, &s.CharismaSave,
		&s.Acrobatics, &s.AnimalHandling, &s.Arcana, &s.Athletics, &s.Deception, &s.History,
		&s.Insight, &s.Intimidation, &s.Investigation, &s.Medicine, &s.Nature, &s.Perception,
		&s.Performance, &s.Persuasion, &s.Religion, &s.SleightOfHand, &s.Stealth, &s.Survival,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row rowScanner) (Character, error) {
	var c Character
	fields := []any{&c.Id, &c.ExternalId, &c.AccountId, &c.CampaignId}
	fields = append(fields, sheetFields(&c.CharacterSheet)...)
	fields = append(fields, &c.CreatedAt, &c.UpdatedAt)
	err := row.Scan(fields...)
	return c, err
}

func (db *PgCampaignRepository) CreateAccount(params CreateAccountParams) (User, error) {
	res := db.conn.QueryRow(
		"INSERT INTO accounts (username, password_hash, created_at, updated_at) "+
			"VALUES ($1, $2, $3, $4) RETURNING id, username, created_at, updated_at",
		params.Username,
		params.PasswordHash,
		time.Now().UTC(),
		time.Now().UTC(),
	)

	var u User
	err := res.Scan(
		&u.Id,
		&u.Username,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return User{}, ErrDuplicateUsername
	}

	return u, err
}

func (db *PgCampaignRepository) GetAccountById(accountId int) (User, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, password_hash, created_at, updated_at FROM accounts "+
			"WHERE id = $1 LIMIT 1",
		accountId,
	)

	var user User
	err := row.Scan(
		&user.Id,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	return user, err
}

func (db *PgCampaignRepository) GetAccountByUsername(username string) (User, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, password_hash, created_at, updated_at FROM accounts "+
			"WHERE username = $1 LIMIT 1",
		username,
	)

	var user User
	err := row.Scan(
		&user.Id,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	return user, err
}

func (db *PgCampaignRepository) CreateCampaign(params CreateCampaignParams) (Campaign, error) {
	res := db.conn.QueryRow(
		"INSERT INTO campaigns (name, external_id, description, owner_id, created_at, updated_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, name, external_id, description, owner_id, created_at, updated_at",
		params.Name,
		params.ExternalId,
		params.Description,
		params.OwnerId,
		time.Now().UTC(),
		time.Now().UTC(),
	)

	var campaign Campaign
	err := res.Scan(
		&campaign.Id,
		&campaign.Name,
		&campaign.ExternalId,
		&campaign.Description,
		&campaign.OwnerId,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)

	return campaign, err
}

func (db *PgCampaignRepository) ListCampaigns() ([]Campaign, error) {
	rows, err := db.conn.Query(
		"SELECT id, external_id, name, description, owner_id, created_at, updated_at " +
			"FROM campaigns ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []Campaign
	for rows.Next() {
		var c Campaign
		if err = rows.Scan(&c.Id, &c.ExternalId, &c.Name, &c.Description, &c.OwnerId, &c.CreatedAt, &c.UpdatedAt); err != nil {
			break
		}

		campaigns = append(campaigns, c)
	}
	return campaigns, err
}

// GetCampaignByName is an exact-match lookup. Campaign names are not
// unique; the first-inserted campaign wins under a collision.
func (db *PgCampaignRepository) GetCampaignByName(name string) (Campaign, error) {
	row := db.conn.QueryRow(
		"SELECT id, external_id, name, description, owner_id, created_at, updated_at FROM campaigns "+
			"WHERE name = $1 ORDER BY id LIMIT 1",
		name,
	)

	var campaign Campaign
	err := row.Scan(
		&campaign.Id,
		&campaign.ExternalId,
		&campaign.Name,
		&campaign.Description,
		&campaign.OwnerId,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)

	return campaign, err
}

func (db *PgCampaignRepository) GetCampaignByExternalId(externalId string) (Campaign, error) {
	row := db.conn.QueryRow(
		"SELECT id, external_id, name, description, owner_id, created_at, updated_at FROM campaigns "+
			"WHERE external_id = $1 LIMIT 1",
		externalId,
	)

	var campaign Campaign
	err := row.Scan(
		&campaign.Id,
		&campaign.ExternalId,
		&campaign.Name,
		&campaign.Description,
		&campaign.OwnerId,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)

	return campaign, err
}

func (db *PgCampaignRepository) GetCampaignWithMembers(campaignId int) (*Campaign, error) {
	query := `
		SELECT
				c.id AS campaign_id,
				c.external_id,
				c.name AS campaign_name,
				c.description,
				c.owner_id,
				c.created_at AS campaign_created_at,
				c.updated_at AS campaign_updated_at,
				m.id,
				m.account_id,
				a.username,
				m.game_master,
				m.created_at AS membership_created_at,
				m.updated_at AS membership_updated_at
		FROM campaigns c
		LEFT JOIN memberships m ON c.id = m.campaign_id
		LEFT JOIN accounts a ON m.account_id = a.id
		WHERE c.id = $1;
`

	rows, err := db.conn.Query(query, campaignId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaign with members: %w", err)
	}
	defer rows.Close()

	var campaign *Campaign
	for rows.Next() {
		var (
			campaignId          int
			externalId          string
			campaignName        string
			description         string
			ownerId             int
			campaignCreatedAt   time.Time
			campaignUpdatedAt   time.Time
			membershipId        sql.NullInt64
			accountId           sql.NullInt64
			username            sql.NullString
			gameMaster          sql.NullBool
			membershipCreatedAt sql.NullTime
			membershipUpdatedAt sql.NullTime
		)

		err := rows.Scan(
			&campaignId,
			&externalId,
			&campaignName,
			&description,
			&ownerId,
			&campaignCreatedAt,
			&campaignUpdatedAt,
			&membershipId,
			&accountId,
			&username,
			&gameMaster,
			&membershipCreatedAt,
			&membershipUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		if campaign == nil {
			campaign = &Campaign{
				Id:          campaignId,
				ExternalId:  externalId,
				Name:        campaignName,
				Description: description,
				OwnerId:     ownerId,
				CreatedAt:   campaignCreatedAt,
				UpdatedAt:   campaignUpdatedAt,
				Memberships: make([]Membership, 0),
			}
		}

		if accountId.Valid && username.Valid {
			campaign.Memberships = append(campaign.Memberships, Membership{
				Id:         int(membershipId.Int64),
				AccountId:  int(accountId.Int64),
				CampaignId: campaignId,
				Username:   username.String,
				GameMaster: gameMaster.Bool,
				CreatedAt:  membershipCreatedAt.Time,
				UpdatedAt:  membershipUpdatedAt.Time,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	if campaign == nil {
		return nil, sql.ErrNoRows
	}

	return campaign, nil
}

func (db *PgCampaignRepository) GetCharactersByCampaignId(campaignId int) ([]Character, error) {
	rows, err := db.conn.Query(
		"SELECT "+characterColumns+" FROM characters WHERE campaign_id = $1 ORDER BY id",
		campaignId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var characters = make([]Character, 0)
	for rows.Next() {
		var c Character
		if c, err = scanCharacter(rows); err != nil {
			break
		}

		characters = append(characters, c)
	}

	return characters, err
}

// CreateMembership inserts a roster row. The schema carries two unique
// indexes: one per (account, campaign) pair and a partial one allowing a
// single game-master row per campaign.
func (db *PgCampaignRepository) CreateMembership(params CreateMembershipParams) (Membership, error) {
	res := db.conn.QueryRow(
		createMembershipQuery,
		params.AccountId,
		params.CampaignId,
		params.GameMaster,
		time.Now().UTC(),
		time.Now().UTC(),
	)

	var m Membership
	err := res.Scan(
		&m.Id,
		&m.AccountId,
		&m.CampaignId,
		&m.GameMaster,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if isUniqueViolation(err) {
		if constraintName(err) == "memberships_one_game_master" {
			return Membership{}, ErrRoleConflict
		}
		return Membership{}, ErrDuplicateMembership
	}

	return m, err
}

func (db *PgCampaignRepository) MembershipExists(accountId, campaignId int) bool {
	res := db.conn.QueryRow(
		"SELECT id FROM memberships WHERE account_id = $1 AND campaign_id = $2 LIMIT 1",
		accountId,
		campaignId,
	)

	var m Membership
	err := res.Scan(
		&m.Id,
	)

	return err == nil
}

func (db *PgCampaignRepository) CreateCharacter(params CreateCharacterParams) (Character, error) {
	args := []any{params.ExternalId, params.AccountId}
	args = append(args, sheetArgs(params.Sheet)...)
	args = append(args, time.Now().UTC(), time.Now().UTC())

	res := db.conn.QueryRow(insertCharacterQuery, args...)

	c := Character{
		ExternalId:     params.ExternalId,
		AccountId:      params.AccountId,
		CharacterSheet: params.Sheet,
	}
	err := res.Scan(
		&c.Id,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	return c, err
}

func (db *PgCampaignRepository) GetCharacterById(characterId int) (Character, error) {
	row := db.conn.QueryRow(
		"SELECT "+characterColumns+" FROM characters WHERE id = $1 LIMIT 1",
		characterId,
	)

	return scanCharacter(row)
}

// GetCharacterByName has the same first-inserted-wins semantics as
// GetCampaignByName.
func (db *PgCampaignRepository) GetCharacterByName(name string) (Character, error) {
	row := db.conn.QueryRow(
		"SELECT "+characterColumns+" FROM characters WHERE name = $1 ORDER BY id LIMIT 1",
		name,
	)

	return scanCharacter(row)
}

func (db *PgCampaignRepository) ListCharactersByOwner(accountId int) ([]Character, error) {
	rows, err := db.conn.Query(
		"SELECT "+characterColumns+" FROM characters WHERE account_id = $1 ORDER BY id",
		accountId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var characters = make([]Character, 0)
	for rows.Next() {
		var c Character
		if c, err = scanCharacter(rows); err != nil {
			break
		}

		characters = append(characters, c)
	}

	return characters, err
}

// AssignCharacter moves a character into a campaign and ensures the
// owner has a roster row, in a single transaction. Either both writes
// commit or neither does.
func (db *PgCampaignRepository) AssignCharacter(characterId, campaignId, accountId int) (Character, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return Character{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	row := tx.QueryRow(
		"UPDATE characters SET campaign_id = $2, updated_at = $3 WHERE id = $1 RETURNING "+characterColumns,
		characterId,
		campaignId,
		time.Now().UTC(),
	)

	var character Character
	character, err = scanCharacter(row)
	if err != nil {
		return Character{}, err
	}

	_, err = tx.Exec(
		"INSERT INTO memberships (account_id, campaign_id, game_master, created_at, updated_at) "+
			"VALUES ($1, $2, false, $3, $4) ON CONFLICT (account_id, campaign_id) DO NOTHING",
		accountId,
		campaignId,
		time.Now().UTC(),
		time.Now().UTC(),
	)
	if err != nil {
		return Character{}, err
	}

	if err = tx.Commit(); err != nil {
		return Character{}, err
	}

	return character, nil
}

func (db *PgCampaignRepository) CreateEvent(params CreateEventParams) (Event, error) {
	res := db.conn.QueryRow(
		"INSERT INTO events (campaign_id, summary, description, created_at) "+
			"VALUES ($1, $2, $3, $4) RETURNING id, campaign_id, summary, description, created_at",
		params.CampaignId,
		params.Summary,
		params.Description,
		time.Now().UTC(),
	)

	var event Event
	err := res.Scan(
		&event.Id,
		&event.CampaignId,
		&event.Summary,
		&event.Description,
		&event.CreatedAt,
	)

	return event, err
}

func (db *PgCampaignRepository) ListEventsByCampaignId(campaignId int) ([]Event, error) {
	rows, err := db.conn.Query(
		"SELECT id, campaign_id, summary, description, created_at FROM events "+
			"WHERE campaign_id = $1 ORDER BY id",
		campaignId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events = make([]Event, 0)
	for rows.Next() {
		var e Event
		if err = rows.Scan(&e.Id, &e.CampaignId, &e.Summary, &e.Description, &e.CreatedAt); err != nil {
			break
		}

		events = append(events, e)
	}
	return events, err
}
