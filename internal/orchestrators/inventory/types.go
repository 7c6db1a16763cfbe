package inventory

import (
	"github.com/tavernkeep/guild-api/internal/entities"
	"github.com/tavernkeep/guild-api/internal/rules"
)

// OwnedItem is one inventory line: the item and its equipped state.
type OwnedItem struct {
	Name       string
	IsEquipped bool
}

// GetInventoryInput defines the input for listing a user's items
type GetInventoryInput struct {
	UserID string
}

// GetInventoryOutput defines the output from listing a user's items
type GetInventoryOutput struct {
	Items []OwnedItem
	// EquippedCount is the number of items currently equipped
	EquippedCount int
}

// EquipInput defines the input for equipping an item by search term
type EquipInput struct {
	UserID string
	Search string
}

// EquipOutput defines the output from equipping an item
type EquipOutput struct {
	// Item is the catalog definition of the equipped item
	Item *entities.Item
	// MatchTier reports how the search term matched the item name
	MatchTier rules.Tier
	// Replaced is the name of the item this equip displaced from the
	// slot, empty when the slot was free
	Replaced string
}

// UnequipInput defines the input for unequipping an item by search term
type UnequipInput struct {
	UserID string
	Search string
}

// UnequipOutput defines the output from unequipping an item
type UnequipOutput struct {
	// Item is the catalog definition of the unequipped item
	Item *entities.Item
	// MatchTier reports how the search term matched the item name
	MatchTier rules.Tier
}
