// Package rules contains the pure game math: leveling, power aggregation,
// and fuzzy item-name resolution. Nothing in this package does I/O; every
// function is deterministic in its inputs.
package rules

// Experience thresholds form an arithmetic progression: level 1 tops out at
// 350, each level after that needs 100 more than the last.
const (
	BaseExpThreshold = 350
	ExpStep          = 100
)

// MaxExp returns the experience required to complete the given level.
// Levels below 1 are treated as level 1.
func MaxExp(level int) int {
	if level < 1 {
		level = 1
	}
	return BaseExpThreshold + ExpStep*(level-1)
}

// Normalize folds accumulated experience into levels, returning the final
// level and the experience remaining toward the next one.
//
// The fold is idempotent: feeding an already-normalized pair back in
// returns it unchanged. Level never decreases and the remainder is never
// negative.
func Normalize(level, exp int) (finalLevel, remainingExp int) {
	if level < 1 {
		level = 1
	}
	if exp < 0 {
		exp = 0
	}
	for exp >= MaxExp(level) {
		exp -= MaxExp(level)
		level++
	}
	return level, exp
}
