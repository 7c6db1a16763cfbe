// Package inventory implements the inventory orchestrator: the owned-item
// view and the equip and unequip operations, including fuzzy resolution of
// item names and the one-equipped-item-per-slot rule.
package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/tavernkeep/guild-api/internal/orchestrators/inventory Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/tavernkeep/guild-api/internal/entities"
	"github.com/tavernkeep/guild-api/internal/errors"
	"github.com/tavernkeep/guild-api/internal/repositories/catalog"
	"github.com/tavernkeep/guild-api/internal/repositories/cooldown"
	"github.com/tavernkeep/guild-api/internal/repositories/ownership"
	"github.com/tavernkeep/guild-api/internal/rules"
)

const (
	// ActionViewInventory is the cooldown key for the inventory view
	ActionViewInventory = "inventory"
	// ActionEquip is the cooldown key for equip operations
	ActionEquip = "equip"
	// ActionUnequip is the cooldown key for unequip operations
	ActionUnequip = "unequip"

	// CooldownWindow throttles repeated inventory operations
	CooldownWindow = 3 * time.Second
)

// Service defines the interface for inventory operations
type Service interface {
	// GetInventory lists a user's items with their equipped state
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)

	// Equip resolves the search term among the user's items and equips
	// the match, displacing whatever holds the same slot
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)

	// Unequip resolves the search term among the user's items and clears
	// the match's equipped flag
	Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	OwnershipRepo ownership.Repository
	CatalogRepo   catalog.Repository
	CooldownRepo  cooldown.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.OwnershipRepo == nil {
		vb.RequiredField("OwnershipRepo")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.CooldownRepo == nil {
		vb.RequiredField("CooldownRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	ownershipRepo ownership.Repository
	catalogRepo   catalog.Repository
	cooldownRepo  cooldown.Repository
}

// NewOrchestrator creates a new inventory orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		ownershipRepo: cfg.OwnershipRepo,
		catalogRepo:   cfg.CatalogRepo,
		cooldownRepo:  cfg.CooldownRepo,
	}, nil
}

func (o *orchestrator) GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	if err := o.checkCooldown(ctx, input.UserID, ActionViewInventory); err != nil {
		return nil, err
	}

	listOutput, err := o.ownershipRepo.ListForUser(ctx, ownership.ListForUserInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	items := make([]OwnedItem, 0, len(listOutput.Records))
	equipped := 0
	for _, record := range listOutput.Records {
		items = append(items, OwnedItem{
			Name:       record.ItemName,
			IsEquipped: record.IsEquipped,
		})
		if record.IsEquipped {
			equipped++
		}
	}

	return &GetInventoryOutput{
		Items:         items,
		EquippedCount: equipped,
	}, nil
}

func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.Search == "" {
		return nil, errors.InvalidArgument("search term cannot be empty")
	}

	if err := o.checkCooldown(ctx, input.UserID, ActionEquip); err != nil {
		return nil, err
	}

	records, byName, err := o.resolveContext(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	target, tier, err := resolveTarget(input.Search, records)
	if err != nil {
		return nil, err
	}

	item, ok := byName[target.ItemName]
	if !ok {
		return nil, errors.Internalf("owned item %s has no catalog entry", target.ItemName)
	}
	if !item.Equippable() {
		return nil, errors.FailedPreconditionf("%s cannot be equipped", item.Name)
	}

	// Clear everything else the user has equipped in this slot before
	// setting the target. The bulk clear also repairs any duplicates a
	// past partial write may have left behind.
	var displaced []string
	replaced := ""
	for _, record := range records {
		if record.ID == target.ID || !record.IsEquipped {
			continue
		}
		other, ok := byName[record.ItemName]
		if !ok || other.Slot != item.Slot {
			continue
		}
		displaced = append(displaced, record.ID)
		if replaced == "" {
			replaced = record.ItemName
		}
	}

	if len(displaced) > 0 {
		if _, err := o.ownershipRepo.BulkSetEquipped(ctx, ownership.BulkSetEquippedInput{
			IDs:      displaced,
			Equipped: false,
		}); err != nil {
			return nil, errors.Wrapf(err, "failed to clear slot %s for user %s", item.Slot, input.UserID)
		}
	}

	if _, err := o.ownershipRepo.SetEquipped(ctx, ownership.SetEquippedInput{
		ID:       target.ID,
		Equipped: true,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to equip %s for user %s", item.Name, input.UserID)
	}

	slog.InfoContext(ctx, "item equipped",
		"user_id", input.UserID,
		"item_name", item.Name,
		"slot", string(item.Slot),
		"match_tier", tier.String(),
		"replaced", replaced)

	return &EquipOutput{
		Item:      item,
		MatchTier: tier,
		Replaced:  replaced,
	}, nil
}

func (o *orchestrator) Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.Search == "" {
		return nil, errors.InvalidArgument("search term cannot be empty")
	}

	if err := o.checkCooldown(ctx, input.UserID, ActionUnequip); err != nil {
		return nil, err
	}

	records, byName, err := o.resolveContext(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	target, tier, err := resolveTarget(input.Search, records)
	if err != nil {
		return nil, err
	}

	item, ok := byName[target.ItemName]
	if !ok {
		return nil, errors.Internalf("owned item %s has no catalog entry", target.ItemName)
	}

	// Idempotent: clearing an already-clear flag rewrites the record as-is.
	if _, err := o.ownershipRepo.SetEquipped(ctx, ownership.SetEquippedInput{
		ID:       target.ID,
		Equipped: false,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to unequip %s for user %s", item.Name, input.UserID)
	}

	slog.InfoContext(ctx, "item unequipped",
		"user_id", input.UserID,
		"item_name", item.Name,
		"slot", string(item.Slot))

	return &UnequipOutput{
		Item:      item,
		MatchTier: tier,
	}, nil
}

// resolveContext loads the user's records and the catalog entries for
// everything they own.
func (o *orchestrator) resolveContext(ctx context.Context, userID string) ([]*entities.OwnershipRecord, map[string]*entities.Item, error) {
	listOutput, err := o.ownershipRepo.ListForUser(ctx, ownership.ListForUserInput{UserID: userID})
	if err != nil {
		return nil, nil, err
	}

	names := make([]string, 0, len(listOutput.Records))
	for _, record := range listOutput.Records {
		names = append(names, record.ItemName)
	}

	byName := make(map[string]*entities.Item, len(names))
	if len(names) > 0 {
		findOutput, err := o.catalogRepo.FindByNames(ctx, catalog.FindByNamesInput{Names: names})
		if err != nil {
			return nil, nil, err
		}
		for _, item := range findOutput.Items {
			byName[item.Name] = item
		}
	}

	return listOutput.Records, byName, nil
}

// resolveTarget runs the fuzzy resolver over the records in grant order,
// so ties within a match tier go to the oldest grant.
func resolveTarget(search string, records []*entities.OwnershipRecord) (*entities.OwnershipRecord, rules.Tier, error) {
	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.ItemName)
	}

	idx, tier := rules.Resolve(search, names)
	if idx < 0 {
		return nil, rules.TierNone, errors.NotFoundf("no owned item matching %q", search)
	}

	return records[idx], tier, nil
}

func (o *orchestrator) checkCooldown(ctx context.Context, userID, action string) error {
	checkOutput, err := o.cooldownRepo.Check(ctx, cooldown.CheckInput{
		UserID: userID,
		Action: action,
		Window: CooldownWindow,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to check %s cooldown", action)
	}
	if checkOutput.SecondsRemaining > 0 {
		return errors.ResourceExhaustedf("%s is on cooldown for %d more seconds", action, checkOutput.SecondsRemaining).
			WithMeta("seconds_remaining", checkOutput.SecondsRemaining)
	}
	return nil
}
