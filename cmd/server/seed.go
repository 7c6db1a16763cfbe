package main

import (
	"context"
	"log/slog"

	"github.com/tavernkeep/guild-api/internal/entities"
	"github.com/tavernkeep/guild-api/internal/repositories/catalog"
)

// catalogItems is the reference equipment set written to the catalog at
// startup. The first three entries are the starter kit granted on profile
// creation.
var catalogItems = []*entities.Item{
	{
		Name:      "Iron Sword",
		Category:  entities.CategoryWeapon,
		StatBonus: map[string]int{"attack": 5},
		Rarity:    entities.RarityCommon,
	},
	{
		Name:      "Leather Cap",
		Category:  entities.CategoryArmor,
		Slot:      entities.SlotHead,
		StatBonus: map[string]int{"defense": 3},
		Rarity:    entities.RarityCommon,
	},
	{
		Name:      "Worn Boots",
		Category:  entities.CategoryArmor,
		Slot:      entities.SlotFeet,
		StatBonus: map[string]int{"defense": 1, "speed": 2},
		Rarity:    entities.RarityCommon,
	},
	{
		Name:      "Ironwood Staff",
		Category:  entities.CategoryWeapon,
		StatBonus: map[string]int{"magic": 6},
		Rarity:    entities.RarityUncommon,
	},
	{
		Name:      "Chainmail Vest",
		Category:  entities.CategoryArmor,
		Slot:      entities.SlotChest,
		StatBonus: map[string]int{"defense": 8},
		Rarity:    entities.RarityUncommon,
	},
	{
		Name:      "Steel Helm",
		Category:  entities.CategoryArmor,
		Slot:      entities.SlotHead,
		StatBonus: map[string]int{"defense": 6},
		Rarity:    entities.RarityRare,
	},
	{
		Name:      "Padded Leggings",
		Category:  entities.CategoryArmor,
		Slot:      entities.SlotLegs,
		StatBonus: map[string]int{"defense": 4},
		Rarity:    entities.RarityCommon,
	},
	{
		Name:      "Band of Vigor",
		Category:  entities.CategoryArmor,
		Slot:      entities.SlotRing,
		StatBonus: map[string]int{"health": 10},
		Rarity:    entities.RarityRare,
	},
	{
		Name:      "Amulet of Embers",
		Category:  entities.CategoryArmor,
		Slot:      entities.SlotNecklace,
		StatBonus: map[string]int{"magic": 7, "attack": 2},
		Rarity:    entities.RarityEpic,
	},
	{
		Name:     "Minor Healing Potion",
		Category: entities.CategoryConsumable,
		Rarity:   entities.RarityCommon,
	},
	{
		Name:     "Shard of the First Flame",
		Category: entities.CategoryArtifact,
		Rarity:   entities.RarityLegendary,
	},
}

// seedCatalog writes the reference equipment set. Entries are overwritten
// in place, so reseeding after a deploy picks up definition changes.
func seedCatalog(ctx context.Context, repo catalog.Repository) error {
	output, err := repo.Put(ctx, catalog.PutInput{Items: catalogItems})
	if err != nil {
		return err
	}

	slog.Info("catalog seeded", "items", output.Stored)
	return nil
}
