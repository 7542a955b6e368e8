package types

import (
	"time"
)

type User struct {
	Id        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type Campaign struct {
	Id          int          `json:"id"`
	ExternalId  string       `json:"external_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	OwnerId     int          `json:"owner_id,omitempty"`
	Members     []Membership `json:"members,omitempty"`
	Characters  []Character  `json:"characters,omitempty"`
	CreatedAt   time.Time    `json:"created_at,omitempty"`
	UpdatedAt   time.Time    `json:"updated_at,omitempty"`
}

type Membership struct {
	Id         int       `json:"id"`
	AccountId  int       `json:"account_id"`
	CampaignId int       `json:"campaign_id"`
	Username   string    `json:"username,omitempty"`
	GameMaster bool      `json:"game_master"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

type CharacterSheet struct {
	Name             string `json:"name"`
	Race             string `json:"race"`
	Class            string `json:"class"`
	Level            int    `json:"level"`
	ExperiencePoints int    `json:"experience_points"`
	ProficiencyBonus int    `json:"proficiency_bonus"`
	HitDice          string `json:"hit_dice"`
	TotalHitDice     int    `json:"total_hit_dice"`

	ArmorClass int `json:"armor_class"`
	Speed      int `json:"speed"`
	MaxHP      int `json:"max_hp"`
	CurrentHP  int `json:"current_hp"`
	TempHP     int `json:"temp_hp"`

	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`

	StrengthMod     int `json:"strength_mod"`
	DexterityMod    int `json:"dexterity_mod"`
	ConstitutionMod int `json:"constitution_mod"`
	IntelligenceMod int `json:"intelligence_mod"`
	WisdomMod       int `json:"wisdom_mod"`
	CharismaMod     int `json:"charisma_mod"`

	StrengthSave     bool `json:"strength_save"`
	DexteritySave    bool `json:"dexterity_save"`
	ConstitutionSave bool `json:"constitution_save"`
	IntelligenceSave bool `json:"intelligence_save"`
	WisdomSave       bool `json:"wisdom_save"`
	CharismaSave     bool `json:"charisma_save"`

	Acrobatics     bool `json:"acrobatics"`
	AnimalHandling bool `json:"animal_handling"`
	Arcana         bool `json:"arcana"`
	Athletics      bool `json:"athletics"`
	Deception      bool `json:"deception"`
	History        bool `json:"history"`
	Insight        bool `json:"insight"`
	Intimidation   bool `json:"intimidation"`
	Investigation  bool `json:"investigation"`
	Medicine       bool `json:"medicine"`
	Nature         bool `json:"nature"`
	Perception     bool `json:"perception"`
	Performance    bool `json:"performance"`
	Persuasion     bool `json:"persuasion"`
	Religion       bool `json:"religion"`
	SleightOfHand  bool `json:"sleight_of_hand"`
	Stealth        bool `json:"stealth"`
	Survival       bool `json:"survival"`
}

type Character struct {
	Id         int    `json:"id"`
	ExternalId string `json:"external_id"`
	OwnerId    int    `json:"owner_id"`
	// CampaignId is zero while the character is unassigned.
	CampaignId int `json:"campaign_id,omitempty"`
	CharacterSheet
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type Event struct {
	Id          int       `json:"id"`
	CampaignId  int       `json:"campaign_id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}
