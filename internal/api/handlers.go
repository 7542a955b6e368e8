package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/npezzotti/go-campaigns/internal/database"
	"github.com/npezzotti/go-campaigns/internal/stats"
	"github.com/npezzotti/go-campaigns/internal/types"
)

type CreateCampaignRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateMembershipRequest struct {
	CampaignId string `json:"campaign_id"`
	GameMaster bool   `json:"game_master"`
}

type AssignCharacterRequest struct {
	CampaignName string `json:"campaign_name"`
	CharacterId  int    `json:"character_id"`
}

type CreateEventRequest struct {
	CampaignId  string `json:"campaign_id"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

func (s *CampaignApp) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("json encode: %v", err)
	}
}

func (s *CampaignApp) healthCheck(w http.ResponseWriter, _ *http.Request) {
	if err := s.db.Ping(); err != nil {
		s.log.Println("health check:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *CampaignApp) createCampaign(w http.ResponseWriter, r *http.Request) {
	var createCampaignReq CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&createCampaignReq); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if createCampaignReq.Name == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	sid, err := s.generateShortId()
	if err != nil {
		s.log.Print("generateShortId:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params := database.CreateCampaignParams{
		Name:        createCampaignReq.Name,
		Description: createCampaignReq.Description,
		OwnerId:     userId,
		ExternalId:  sid,
	}

	newCampaign, err := s.db.CreateCampaign(params)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.stats.Incr(stats.CampaignsCreated)

	s.writeJson(w, http.StatusCreated, apiCampaign(newCampaign))
}

// getCampaigns lists every campaign, or returns a single campaign with
// its roster and characters when an id query parameter is given.
func (s *CampaignApp) getCampaigns(w http.ResponseWriter, r *http.Request) {
	externalId := r.URL.Query().Get("id")
	if externalId != "" {
		s.getCampaign(w, r, externalId)
		return
	}

	dbCampaigns, err := s.db.ListCampaigns()
	if err != nil {
		s.log.Println("list campaigns:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var campaigns = make([]types.Campaign, 0, len(dbCampaigns))
	for _, dbCampaign := range dbCampaigns {
		campaigns = append(campaigns, apiCampaign(dbCampaign))
	}

	s.writeJson(w, http.StatusOK, campaigns)
}

func (s *CampaignApp) getCampaign(w http.ResponseWriter, r *http.Request, externalId string) {
	campaign, err := s.db.GetCampaignByExternalId(externalId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	withMembers, err := s.db.GetCampaignWithMembers(campaign.Id)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	dbCharacters, err := s.db.GetCharactersByCampaignId(campaign.Id)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	resp := apiCampaign(*withMembers)
	resp.Members = make([]types.Membership, 0, len(withMembers.Memberships))
	for _, m := range withMembers.Memberships {
		resp.Members = append(resp.Members, types.Membership{
			Id:         m.Id,
			AccountId:  m.AccountId,
			CampaignId: m.CampaignId,
			Username:   m.Username,
			GameMaster: m.GameMaster,
			CreatedAt:  m.CreatedAt,
			UpdatedAt:  m.UpdatedAt,
		})
	}
	resp.Characters = make([]types.Character, 0, len(dbCharacters))
	for _, c := range dbCharacters {
		resp.Characters = append(resp.Characters, apiCharacter(c))
	}

	s.writeJson(w, http.StatusOK, resp)
}

// createMembership joins the authenticated user to a campaign,
// optionally claiming the game-master role. A campaign has at most one
// game master.
func (s *CampaignApp) createMembership(w http.ResponseWriter, r *http.Request) {
	var req CreateMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.CampaignId == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	campaign, err := s.db.GetCampaignByExternalId(req.CampaignId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	membership, err := s.db.CreateMembership(database.CreateMembershipParams{
		AccountId:  userId,
		CampaignId: campaign.Id,
		GameMaster: req.GameMaster,
	})
	if err != nil {
		var errResp *ApiError
		switch {
		case errors.Is(err, database.ErrDuplicateMembership):
			errResp = NewConflictError(database.ErrDuplicateMembership.Error())
		case errors.Is(err, database.ErrRoleConflict):
			errResp = NewConflictError(database.ErrRoleConflict.Error())
		default:
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.stats.Incr(stats.MembershipsCreated)

	s.writeJson(w, http.StatusCreated, types.Membership{
		Id:         membership.Id,
		AccountId:  membership.AccountId,
		CampaignId: membership.CampaignId,
		GameMaster: membership.GameMaster,
		CreatedAt:  membership.CreatedAt,
		UpdatedAt:  membership.UpdatedAt,
	})
}

// createCharacter stores a character sheet for the authenticated user.
// Sheet fields are persisted exactly as submitted; the server does not
// derive modifiers or cross-check them against ability scores.
func (s *CampaignApp) createCharacter(w http.ResponseWriter, r *http.Request) {
	var sheet types.CharacterSheet
	if err := json.NewDecoder(r.Body).Decode(&sheet); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if sheet.Name == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	sid, err := s.generateShortId()
	if err != nil {
		s.log.Print("generateShortId:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params := database.CreateCharacterParams{
		AccountId:  userId,
		ExternalId: sid,
		Sheet:      dbSheet(sheet),
	}

	newCharacter, err := s.db.CreateCharacter(params)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.stats.Incr(stats.CharactersCreated)

	s.writeJson(w, http.StatusCreated, apiCharacter(newCharacter))
}

// getCharacters lists the authenticated user's characters in creation
// order, or looks one up by exact name when a name query parameter is
// given. Names are not unique; a lookup returns the first-inserted
// match.
func (s *CampaignApp) getCharacters(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	name := r.URL.Query().Get("name")
	if name != "" {
		character, err := s.db.GetCharacterByName(name)
		if err != nil {
			var errResp *ApiError
			if errors.Is(err, sql.ErrNoRows) {
				errResp = NewNotFoundError()
			} else {
				errResp = NewInternalServerError(err)
			}
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}

		s.writeJson(w, http.StatusOK, apiCharacter(character))
		return
	}

	dbCharacters, err := s.db.ListCharactersByOwner(userId)
	if err != nil {
		s.log.Println("list characters:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var characters = make([]types.Character, 0, len(dbCharacters))
	for _, c := range dbCharacters {
		characters = append(characters, apiCharacter(c))
	}

	s.writeJson(w, http.StatusOK, characters)
}

// assignCharacter moves one of the authenticated user's characters into
// a campaign looked up by name. The character update and the roster
// write commit together or not at all.
func (s *CampaignApp) assignCharacter(w http.ResponseWriter, r *http.Request) {
	var req AssignCharacterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.CampaignName == "" || req.CharacterId == 0 {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	campaign, err := s.db.GetCampaignByName(req.CampaignName)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	character, err := s.db.GetCharacterById(req.CharacterId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	// only the character's owner may assign it
	if character.AccountId != userId {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if _, err := s.db.AssignCharacter(character.Id, campaign.Id, userId); err != nil {
		s.log.Println("assign character:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.stats.Incr(stats.AssignmentsCompleted)

	s.writeJson(w, http.StatusOK, apiCampaign(campaign))
}

func (s *CampaignApp) createEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.CampaignId == "" || req.Summary == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if _, ok := UserId(r.Context()); !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	campaign, err := s.db.GetCampaignByExternalId(req.CampaignId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	event, err := s.db.CreateEvent(database.CreateEventParams{
		CampaignId:  campaign.Id,
		Summary:     req.Summary,
		Description: req.Description,
	})
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.stats.Incr(stats.EventsRecorded)

	s.writeJson(w, http.StatusCreated, types.Event{
		Id:          event.Id,
		CampaignId:  event.CampaignId,
		Summary:     event.Summary,
		Description: event.Description,
		CreatedAt:   event.CreatedAt,
	})
}

func (s *CampaignApp) getEvents(w http.ResponseWriter, r *http.Request) {
	externalId := r.URL.Query().Get("campaign_id")
	if externalId == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	campaign, err := s.db.GetCampaignByExternalId(externalId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	dbEvents, err := s.db.ListEventsByCampaignId(campaign.Id)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var events = make([]types.Event, 0, len(dbEvents))
	for _, e := range dbEvents {
		events = append(events, types.Event{
			Id:          e.Id,
			CampaignId:  e.CampaignId,
			Summary:     e.Summary,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}

	s.writeJson(w, http.StatusOK, events)
}

func apiCampaign(c database.Campaign) types.Campaign {
	return types.Campaign{
		Id:          c.Id,
		ExternalId:  c.ExternalId,
		Name:        c.Name,
		Description: c.Description,
		OwnerId:     c.OwnerId,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func apiCharacter(c database.Character) types.Character {
	character := types.Character{
		Id:             c.Id,
		ExternalId:     c.ExternalId,
		OwnerId:        c.AccountId,
		CharacterSheet: apiSheet(c.CharacterSheet),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if c.CampaignId.Valid {
		character.CampaignId = int(c.CampaignId.Int64)
	}

	return character
}

func apiSheet(s database.CharacterSheet) types.CharacterSheet {
	return types.CharacterSheet{
		Name:             s.Name,
		Race:             s.Race,
		Class:            s.Class,
		Level:            s.Level,
		ExperiencePoints: s.ExperiencePoints,
		ProficiencyBonus: s.ProficiencyBonus,
		HitDice:          s.HitDice,
		TotalHitDice:     s.TotalHitDice,
		ArmorClass:       s.ArmorClass,
		Speed:            s.Speed,
		MaxHP:            s.MaxHP,
		CurrentHP:        s.CurrentHP,
		TempHP:           s.TempHP,
		Strength:         s.Strength,
		Dexterity:        s.Dexterity,
		Constitution:     s.Constitution,
		Intelligence:     s.Intelligence,
		Wisdom:           s.Wisdom,
		Charisma:         s.Charisma,
		StrengthMod:      s.StrengthMod,
		DexterityMod:     s.DexterityMod,
		ConstitutionMod:  s.ConstitutionMod,
		IntelligenceMod:  s.IntelligenceMod,
		WisdomMod:        s.WisdomMod,
		CharismaMod:      s.CharismaMod,
		StrengthSave:     s.StrengthSave,
		DexteritySave:    s.DexteritySave,
		ConstitutionSave: s.ConstitutionSave,
		IntelligenceSave: s.IntelligenceSave,
		WisdomSave:       s.WisdomSave,
		CharismaSave:     s.CharismaSave,
		Acrobatics:       s.Acrobatics,
		AnimalHandling:   s.AnimalHandling,
		Arcana:           s.Arcana,
		Athletics:        s.Athletics,
		Deception:        s.Deception,
		History:          s.History,
		Insight:          s.Insight,
		Intimidation:     s.Intimidation,
		Investigation:    s.Investigation,
		Medicine:         s.Medicine,
		Nature:           s.Nature,
		Perception:       s.Perception,
		Performance:      s.Performance,
		Persuasion:       s.Persuasion,
		Religion:         s.Religion,
		SleightOfHand:    s.SleightOfHand,
		Stealth:          s.Stealth,
		Survival:         s.Survival,
	}
}

func dbSheet(s types.CharacterSheet) database.CharacterSheet {
	return database.CharacterSheet{
		Name:             s.Name,
		Race:             s.Race,
		Class:            s.Class,
		Level:            s.Level,
		ExperiencePoints: s.ExperiencePoints,
		ProficiencyBonus: s.ProficiencyBonus,
		HitDice:          s.HitDice,
		TotalHitDice:     s.TotalHitDice,
		ArmorClass:       s.ArmorClass,
		Speed:            s.Speed,
		MaxHP:            s.MaxHP,
		CurrentHP:        s.CurrentHP,
		TempHP:           s.TempHP,
		Strength:         s.Strength,
		Dexterity:        s.Dexterity,
		Constitution:     s.Constitution,
		Intelligence:     s.Intelligence,
		Wisdom:           s.Wisdom,
		Charisma:         s.Charisma,
		StrengthMod:      s.StrengthMod,
		DexterityMod:     s.DexterityMod,
		ConstitutionMod:  s.ConstitutionMod,
		IntelligenceMod:  s.IntelligenceMod,
		WisdomMod:        s.WisdomMod,
		CharismaMod:      s.CharismaMod,
		StrengthSave:     s.StrengthSave,
		DexteritySave:    s.DexteritySave,
		ConstitutionSave: s.ConstitutionSave,
		IntelligenceSave: s.IntelligenceSave,
		WisdomSave:       s.WisdomSave,
		CharismaSave:     s.CharismaSave,
		Acrobatics:       s.Acrobatics,
		AnimalHandling:   s.AnimalHandling,
		Arcana:           s.Arcana,
		Athletics:        s.Athletics,
		Deception:        s.Deception,
		History:          s.History,
		Insight:          s.Insight,
		Intimidation:     s.Intimidation,
		Investigation:    s.Investigation,
		Medicine:         s.Medicine,
		Nature:           s.Nature,
		Perception:       s.Perception,
		Performance:      s.Performance,
		Persuasion:       s.Persuasion,
		Religion:         s.Religion,
		SleightOfHand:    s.SleightOfHand,
		Stealth:          s.Stealth,
		Survival:         s.Survival,
	}
}
