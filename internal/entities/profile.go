// Package entities defines the domain types shared across repositories and
// orchestrators.
package entities

import "time"

// Profile is a player's persistent economy and progression record.
//
// Exp is kept normalized: after any mutation it is folded through the
// leveling rules so that Exp < rules.MaxExp(Level) always holds.
type Profile struct {
	UserID       string     `json:"user_id"`
	Gems         int        `json:"gems"`
	TraitRerolls int        `json:"trait_rerolls"`
	Level        int        `json:"level"`
	Exp          int        `json:"exp"`
	DailyStreak  int        `json:"daily_streak"`
	LastDaily    *time.Time `json:"last_daily,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
