package database

import (
	"database/sql"
	"time"
)

type User struct {
	Id           int
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Campaign struct {
	Id          int
	ExternalId  string
	Name        string
	Description string
	OwnerId     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Memberships []Membership
}

type Membership struct {
	Id         int
	AccountId  int
	CampaignId int
	Username   string
	GameMaster bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CharacterSheet holds every stat field of a character exactly as the
// player supplied it. Modifiers are stored verbatim, never derived from
// the ability scores.
type CharacterSheet struct {
	Name             string
	Race             string
	Class            string
	Level            int
	ExperiencePoints int
	ProficiencyBonus int
	HitDice          string
	TotalHitDice     int

	ArmorClass int
	Speed      int
	MaxHP      int
	CurrentHP  int
	TempHP     int

	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int

	StrengthMod     int
	DexterityMod    int
	ConstitutionMod int
	IntelligenceMod int
	WisdomMod       int
	CharismaMod     int

	StrengthSave     bool
	DexteritySave    bool
	ConstitutionSave bool
	IntelligenceSave bool
	WisdomSave       bool
	CharismaSave     bool

	Acrobatics     bool
	AnimalHandling bool
	Arcana         bool
	Athletics      bool
	Deception      bool
	History        bool
	Insight        bool
	Intimidation   bool
	Investigation  bool
	Medicine       bool
	Nature         bool
	Perception     bool
	Performance    bool
	Persuasion     bool
	Religion       bool
	SleightOfHand  bool
	Stealth        bool
	Survival       bool
}

type Character struct {
	Id         int
	ExternalId string
	AccountId  int
	// CampaignId is NULL while the character is unassigned.
	CampaignId sql.NullInt64
	CharacterSheet
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Event struct {
	Id          int
	CampaignId  int
	Summary     string
	Description string
	CreatedAt   time.Time
}

type CreateAccountParams struct {
	Username     string
	PasswordHash string
}

type CreateCampaignParams struct {
	Name        string
	Description string
	OwnerId     int
	ExternalId  string
}

type CreateCharacterParams struct {
	AccountId  int
	ExternalId string
	Sheet      CharacterSheet
}

type CreateMembershipParams struct {
	AccountId  int
	CampaignId int
	GameMaster bool
}

type CreateEventParams struct {
	CampaignId  int
	Summary     string
	Description string
}
