package rules

import "github.com/tavernkeep/guild-api/internal/entities"

// LevelPower is the level-derived contribution to a profile's power score:
// 10 per full block of five levels plus 5 per remaining level.
func LevelPower(level int) int {
	if level < 0 {
		level = 0
	}
	return (level/5)*10 + (level%5)*5
}

// Power sums every stat bonus across the equipped items and adds the
// level-derived bonus. The result is display-only and recomputed on demand;
// it is never persisted.
func Power(equipped []entities.Item, level int) int {
	total := 0
	for _, item := range equipped {
		for _, bonus := range item.StatBonus {
			total += bonus
		}
	}
	return total + LevelPower(level)
}
