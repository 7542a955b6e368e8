package database

type CampaignRepository interface {
	Ping() error
	CreateAccount(params CreateAccountParams) (User, error)
	GetAccountById(accountId int) (User, error)
	GetAccountByUsername(username string) (User, error)
	CreateCampaign(params CreateCampaignParams) (Campaign, error)
	ListCampaigns() ([]Campaign, error)
	GetCampaignByName(name string) (Campaign, error)
	GetCampaignByExternalId(externalId string) (Campaign, error)
	GetCampaignWithMembers(campaignId int) (*Campaign, error)
	GetCharactersByCampaignId(campaignId int) ([]Character, error)
	CreateMembership(params CreateMembershipParams) (Membership, error)
	MembershipExists(accountId, campaignId int) bool
	CreateCharacter(params CreateCharacterParams) (Character, error)
	GetCharacterById(characterId int) (Character, error)
	GetCharacterByName(name string) (Character, error)
	ListCharactersByOwner(accountId int) ([]Character, error)
	AssignCharacter(characterId, campaignId, accountId int) (Character, error)
	CreateEvent(params CreateEventParams) (Event, error)
	ListEventsByCampaignId(campaignId int) ([]Event, error)
}
