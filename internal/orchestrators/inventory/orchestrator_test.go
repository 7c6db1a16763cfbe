package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/tavernkeep/guild-api/internal/entities"
	"github.com/tavernkeep/guild-api/internal/errors"
	"github.com/tavernkeep/guild-api/internal/repositories/catalog"
	catalogmock "github.com/tavernkeep/guild-api/internal/repositories/catalog/mock"
	"github.com/tavernkeep/guild-api/internal/repositories/cooldown"
	cooldownmock "github.com/tavernkeep/guild-api/internal/repositories/cooldown/mock"
	"github.com/tavernkeep/guild-api/internal/repositories/ownership"
	ownershipmock "github.com/tavernkeep/guild-api/internal/repositories/ownership/mock"
	"github.com/tavernkeep/guild-api/internal/rules"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockOwnershipRepo *ownershipmock.MockRepository
	mockCatalogRepo   *catalogmock.MockRepository
	mockCooldownRepo  *cooldownmock.MockRepository
	service           Service
	ctx               context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockOwnershipRepo = ownershipmock.NewMockRepository(s.ctrl)
	s.mockCatalogRepo = catalogmock.NewMockRepository(s.ctrl)
	s.mockCooldownRepo = cooldownmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	service, err := NewOrchestrator(&Config{
		OwnershipRepo: s.mockOwnershipRepo,
		CatalogRepo:   s.mockCatalogRepo,
		CooldownRepo:  s.mockCooldownRepo,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectCooldownClear(action string) {
	s.mockCooldownRepo.EXPECT().
		Check(s.ctx, cooldown.CheckInput{
			UserID: "user-123",
			Action: action,
			Window: CooldownWindow,
		}).
		Return(&cooldown.CheckOutput{SecondsRemaining: 0}, nil)
}

func (s *OrchestratorTestSuite) ironSword() *entities.Item {
	return &entities.Item{
		Name:      "Iron Sword",
		Category:  entities.CategoryWeapon,
		StatBonus: map[string]int{"attack": 5},
		Rarity:    entities.RarityCommon,
	}
}

func (s *OrchestratorTestSuite) TestGetInventory() {
	s.expectCooldownClear(ActionViewInventory)
	s.mockOwnershipRepo.EXPECT().
		ListForUser(s.ctx, ownership.ListForUserInput{UserID: "user-123"}).
		Return(&ownership.ListForUserOutput{
			Records: []*entities.OwnershipRecord{
				{ID: "own_1", UserID: "user-123", ItemName: "Iron Sword", IsEquipped: false},
				{ID: "own_2", UserID: "user-123", ItemName: "Leather Cap", IsEquipped: true},
				{ID: "own_3", UserID: "user-123", ItemName: "Worn Boots", IsEquipped: true},
			},
		}, nil)

	output, err := s.service.GetInventory(s.ctx, &GetInventoryInput{UserID: "user-123"})

	s.Require().NoError(err)
	s.Len(output.Items, 3)
	s.Equal(2, output.EquippedCount)
	s.Equal("Iron Sword", output.Items[0].Name)
	s.False(output.Items[0].IsEquipped)
	s.True(output.Items[1].IsEquipped)
}

func (s *OrchestratorTestSuite) TestGetInventory_Empty() {
	s.expectCooldownClear(ActionViewInventory)
	s.mockOwnershipRepo.EXPECT().
		ListForUser(s.ctx, ownership.ListForUserInput{UserID: "user-123"}).
		Return(&ownership.ListForUserOutput{}, nil)

	output, err := s.service.GetInventory(s.ctx, &GetInventoryInput{UserID: "user-123"})

	s.Require().NoError(err)
	s.Empty(output.Items)
	s.Equal(0, output.EquippedCount)
}

func (s *OrchestratorTestSuite) TestEquip_FreeSlot() {
	capItem := &entities.Item{
		Name:      "Leather Cap",
		Category:  entities.CategoryArmor,
		Slot:      entities.SlotHead,
		StatBonus: map[string]int{"defense": 3},
		Rarity:    entities.RarityCommon,
	}

	s.expectCooldownClear(ActionEquip)
	s.mockOwnershipRepo.EXPECT().
		ListForUser(s.ctx, ownership.ListForUserInput{UserID: "user-123"}).
		Return(&ownership.ListForUserOutput{
			Records: []*entities.OwnershipRecord{
				{ID: "own_1", UserID: "user-123", ItemName: "Leather Cap"},
			},
		}, nil)
	s.mockCatalogRepo.EXPECT().
		FindByNames(s.ctx, catalog.FindByNamesInput{Names: []string{"Leather Cap"}}).
		Return(&catalog.FindByNamesOutput{Items: []*entities.Item{capItem}}, nil)
	s.mockOwnershipRepo.EXPECT().
		SetEquipped(s.ctx, ownership.SetEquippedInput{ID: "own_1", Equipped: true}).
		Return(&ownership.SetEquippedOutput{}, nil)

	output, err := s.service.Equip(s.ctx, &EquipInput{UserID: "user-123", Search: "leather cap"})

	s.Require().NoError(err)
	s.Equal("Leather Cap", output.Item.Name)
	s.Equal(rules.TierExact, output.MatchTier)
	s.Empty(output.Replaced)
}

func (s *OrchestratorTestSuite) TestEquip_DisplacesSameSlot() {
	capItem := &entities.Item{
		Name:     "Leather Cap",
		Category: entities.CategoryArmor,
		Slot:     entities.SlotHead,
		Rarity:   entities.RarityCommon,
	}
	helm := &entities.Item{
		Name:     "Steel Helm",
		Category: entities.CategoryArmor,
		Slot:     entities.SlotHead,
		Rarity:   entities.RarityRare,
	}
	boots := &entities.Item{
		Name:     "Worn Boots",
		Category: entities.CategoryArmor,
		Slot:     entities.SlotFeet,
		Rarity:   entities.RarityCommon,
	}

	s.expectCooldownClear(ActionEquip)
	s.mockOwnershipRepo.EXPECT().
		ListForUser(s.ctx, ownership.ListForUserInput{UserID: "user-123"}).
		Return(&ownership.ListForUserOutput{
			Records: []*entities.OwnershipRecord{
				{ID: "own_1", UserID: "user-123", ItemName: "Leather Cap", IsEquipped: true},
				{ID: "own_2", UserID: "user-123", ItemName: "Steel Helm"},
				{ID: "own_3", UserID: "user-123", ItemName: "Worn Boots", IsEquipped: true},
			},
		}, nil)
	s.mockCatalogRepo.EXPECT().
		FindByNames(s.ctx, gomock.Any()).
		Return(&catalog.FindByNamesOutput{Items: []*entities.Item{capItem, helm, boots}}, nil)
	s.mockOwnershipRepo.EXPECT().
		BulkSetEquipped(s.ctx, ownership.BulkSetEquippedInput{IDs: []string{"own_1"}, Equipped: false}).
		Return(&ownership.BulkSetEquippedOutput{Updated: 1}, nil)
	s.mockOwnershipRepo.EXPECT().
		SetEquipped(s.ctx, ownership.SetEquippedInput{ID: "own_2", Equipped: true}).
		Return(&ownership.SetEquippedOutput{}, nil)

	output, err := s.service.Equip(s.ctx, &EquipInput{UserID: "user-123", Search: "steel"})

	s.Require().NoError(err)
	s.Equal("Steel Helm", output.Item.Name)
	s.Equal(rules.TierPrefix, output.MatchTier)
	s.Equal("Leather Cap", output.Replaced)
}

func (s *OrchestratorTestSuite) TestEquip_NotEquippable() {
	potion := &entities.Item{
		Name:     "Minor Healing Potion",
		Category: entities.CategoryConsumable,
		Rarity:   entities.RarityCommon,
	}

	s.expectCooldownClear(ActionEquip)
	s.mockOwnershipRepo.EXPECT().
		ListForUser(s.ctx, ownership.ListForUserInput{UserID: "user-123"}).
		Return(&ownership.ListForUserOutput{
			Records: []*entities.OwnershipRecord{
				{ID: "own_1", UserID: "user-123", ItemName: "Minor Healing Potion"},
			},
		}, nil)
	s.mockCatalogRepo.EXPECT().
		FindByNames(s.ctx, gomock.Any()).
		Return(&catalog.FindByNamesOutput{Items: []*entities.Item{potion}}, nil)

	output, err := s.service.Equip(s.ctx, &EquipInput{UserID: "user-123", Search: "potion"})

	s.Require().Error(err)
	s.Nil(output)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestEquip_NoMatch() {
	s.expectCooldownClear(ActionEquip)
	s.mockOwnershipRepo.EXPECT().
		ListForUser(s.ctx, ownership.ListForUserInput{UserID: "user-123"}).
		Return(&ownership.ListForUserOutput{
			Records: []*entities.OwnershipRecord{
				{ID: "own_1", UserID: "user-123", ItemName: "Iron Sword"},
			},
		}, nil)
	s.mockCatalogRepo.EXPECT().
		FindByNames(s.ctx, gomock.Any()).
		Return(&catalog.FindByNamesOutput{Items: []*entities.Item{s.ironSword()}}, nil)

	output, err := s.service.Equip(s.ctx, &EquipInput{UserID: "user-123", Search: "xyz"})

	s.Require().Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestEquip_CooldownActive() {
	s.mockCooldownRepo.EXPECT().
		Check(s.ctx, gomock.Any()).
		Return(&cooldown.CheckOutput{SecondsRemaining: 2}, nil)

	output, err := s.service.Equip(s.ctx, &EquipInput{UserID: "user-123", Search: "sword"})

	s.Require().Error(err)
	s.Nil(output)
	s.True(errors.IsResourceExhausted(err))
	s.Equal(2, errors.GetMeta(err)["seconds_remaining"])
}

func (s *OrchestratorTestSuite) TestUnequip() {
	capItem := &entities.Item{
		Name:     "Leather Cap",
		Category: entities.CategoryArmor,
		Slot:     entities.SlotHead,
		Rarity:   entities.RarityCommon,
	}

	s.expectCooldownClear(ActionUnequip)
	s.mockOwnershipRepo.EXPECT().
		ListForUser(s.ctx, ownership.ListForUserInput{UserID: "user-123"}).
		Return(&ownership.ListForUserOutput{
			Records: []*entities.OwnershipRecord{
				{ID: "own_1", UserID: "user-123", ItemName: "Leather Cap", IsEquipped: true},
			},
		}, nil)
	s.mockCatalogRepo.EXPECT().
		FindByNames(s.ctx, gomock.Any()).
		Return(&catalog.FindByNamesOutput{Items: []*entities.Item{capItem}}, nil)
	s.mockOwnershipRepo.EXPECT().
		SetEquipped(s.ctx, ownership.SetEquippedInput{ID: "own_1", Equipped: false}).
		Return(&ownership.SetEquippedOutput{}, nil)

	output, err := s.service.Unequip(s.ctx, &UnequipInput{UserID: "user-123", Search: "cap"})

	s.Require().NoError(err)
	s.Equal("Leather Cap", output.Item.Name)
	s.Equal(rules.TierSubstring, output.MatchTier)
}

func (s *OrchestratorTestSuite) TestUnequip_AlreadyUnequippedIsIdempotent() {
	capItem := &entities.Item{
		Name:     "Leather Cap",
		Category: entities.CategoryArmor,
		Slot:     entities.SlotHead,
		Rarity:   entities.RarityCommon,
	}

	s.expectCooldownClear(ActionUnequip)
	s.mockOwnershipRepo.EXPECT().
		ListForUser(s.ctx, ownership.ListForUserInput{UserID: "user-123"}).
		Return(&ownership.ListForUserOutput{
			Records: []*entities.OwnershipRecord{
				{ID: "own_1", UserID: "user-123", ItemName: "Leather Cap"},
			},
		}, nil)
	s.mockCatalogRepo.EXPECT().
		FindByNames(s.ctx, gomock.Any()).
		Return(&catalog.FindByNamesOutput{Items: []*entities.Item{capItem}}, nil)
	s.mockOwnershipRepo.EXPECT().
		SetEquipped(s.ctx, ownership.SetEquippedInput{ID: "own_1", Equipped: false}).
		Return(&ownership.SetEquippedOutput{}, nil)

	output, err := s.service.Unequip(s.ctx, &UnequipInput{UserID: "user-123", Search: "cap"})

	s.Require().NoError(err)
	s.Equal("Leather Cap", output.Item.Name)
	s.Equal(rules.TierSubstring, output.MatchTier)
}

func (s *OrchestratorTestSuite) TestValidation() {
	testCases := []struct {
		name string
		run  func() error
	}{
		{
			name: "inventory with empty user ID",
			run: func() error {
				_, err := s.service.GetInventory(s.ctx, &GetInventoryInput{})
				return err
			},
		},
		{
			name: "equip with empty search",
			run: func() error {
				_, err := s.service.Equip(s.ctx, &EquipInput{UserID: "user-123"})
				return err
			},
		},
		{
			name: "unequip with nil input",
			run: func() error {
				_, err := s.service.Unequip(s.ctx, nil)
				return err
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.run()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
