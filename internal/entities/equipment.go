package entities

// Category classifies a catalog item
type Category string

// Item categories
const (
	CategoryWeapon     Category = "weapon"
	CategoryArmor      Category = "armor"
	CategoryConsumable Category = "consumable"
	CategoryArtifact   Category = "artifact"
)

// Slot is an equipment position. A profile may have at most one equipped
// item per slot.
type Slot string

// Equipment slots
const (
	SlotHead     Slot = "head"
	SlotChest    Slot = "chest"
	SlotLegs     Slot = "legs"
	SlotFeet     Slot = "feet"
	SlotRing     Slot = "ring"
	SlotNecklace Slot = "necklace"
)

// AllSlots returns the slots in display order
func AllSlots() []Slot {
	return []Slot{SlotHead, SlotChest, SlotLegs, SlotFeet, SlotRing, SlotNecklace}
}

// Rarity grades a catalog item
type Rarity string

// Item rarities
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Item is an immutable equipment catalog entry. Slot is empty for
// non-equippable categories such as consumables.
type Item struct {
	Name      string         `json:"item_name"`
	Category  Category       `json:"category"`
	Slot      Slot           `json:"slot,omitempty"`
	StatBonus map[string]int `json:"stat_bonus,omitempty"`
	Rarity    Rarity         `json:"rarity"`
}

// Equippable reports whether the item occupies a slot
func (i *Item) Equippable() bool {
	return i.Slot != ""
}

// OwnershipRecord relates a profile to a catalog item it owns.
//
// Invariant: for a given user and slot, at most one record with that slot
// has IsEquipped set.
type OwnershipRecord struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	ItemName   string `json:"item_name"`
	IsEquipped bool   `json:"is_equipped"`
}
