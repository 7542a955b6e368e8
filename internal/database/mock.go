package database

import (
	"github.com/stretchr/testify/mock"
)

type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Ping() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockCampaignRepository) CreateAccount(params CreateAccountParams) (User, error) {
	args := m.Called(params)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockCampaignRepository) GetAccountById(accountId int) (User, error) {
	args := m.Called(accountId)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockCampaignRepository) GetAccountByUsername(username string) (User, error) {
	args := m.Called(username)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockCampaignRepository) CreateCampaign(params CreateCampaignParams) (Campaign, error) {
	args := m.Called(params)
	return args.Get(0).(Campaign), args.Error(1)
}
func (m *MockCampaignRepository) ListCampaigns() ([]Campaign, error) {
	args := m.Called()
	return args.Get(0).([]Campaign), args.Error(1)
}
func (m *MockCampaignRepository) GetCampaignByName(name string) (Campaign, error) {
	args := m.Called(name)
	return args.Get(0).(Campaign), args.Error(1)
}
func (m *MockCampaignRepository) GetCampaignByExternalId(externalId string) (Campaign, error) {
	args := m.Called(externalId)
	return args.Get(0).(Campaign), args.Error(1)
}
func (m *MockCampaignRepository) GetCampaignWithMembers(campaignId int) (*Campaign, error) {
	args := m.Called(campaignId)
	if campaign, ok := args.Get(0).(*Campaign); ok {
		return campaign, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCampaignRepository) GetCharactersByCampaignId(campaignId int) ([]Character, error) {
	args := m.Called(campaignId)
	return args.Get(0).([]Character), args.Error(1)
}
func (m *MockCampaignRepository) CreateMembership(params CreateMembershipParams) (Membership, error) {
	args := m.Called(params)
	return args.Get(0).(Membership), args.Error(1)
}
func (m *MockCampaignRepository) MembershipExists(accountId, campaignId int) bool {
	args := m.Called(accountId, campaignId)
	return args.Bool(0)
}
func (m *MockCampaignRepository) CreateCharacter(params CreateCharacterParams) (Character, error) {
	args := m.Called(params)
	return args.Get(0).(Character), args.Error(1)
}
func (m *MockCampaignRepository) GetCharacterById(characterId int) (Character, error) {
	args := m.Called(characterId)
	return args.Get(0).(Character), args.Error(1)
}
func (m *MockCampaignRepository) GetCharacterByName(name string) (Character, error) {
	args := m.Called(name)
	return args.Get(0).(Character), args.Error(1)
}
func (m *MockCampaignRepository) ListCharactersByOwner(accountId int) ([]Character, error) {
	args := m.Called(accountId)
	return args.Get(0).([]Character), args.Error(1)
}
func (m *MockCampaignRepository) AssignCharacter(characterId, campaignId, accountId int) (Character, error) {
	args := m.Called(characterId, campaignId, accountId)
	return args.Get(0).(Character), args.Error(1)
}
func (m *MockCampaignRepository) CreateEvent(params CreateEventParams) (Event, error) {
	args := m.Called(params)
	return args.Get(0).(Event), args.Error(1)
}
func (m *MockCampaignRepository) ListEventsByCampaignId(campaignId int) ([]Event, error) {
	args := m.Called(campaignId)
	return args.Get(0).([]Event), args.Error(1)
}
