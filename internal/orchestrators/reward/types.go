package reward

import "github.com/tavernkeep/guild-api/internal/entities"

// ClaimDailyInput defines the input for claiming the daily reward
type ClaimDailyInput struct {
	UserID string
}

// ClaimDailyOutput reports what the claim awarded and the resulting state
type ClaimDailyOutput struct {
	Profile *entities.Profile
	// Streak is the streak value the reward was scaled by
	Streak int
	// GemsAwarded is the gems granted by this claim
	GemsAwarded int
	// RerollsAwarded is the trait rerolls granted by this claim
	RerollsAwarded int
	// ExpAwarded is the raw experience granted before level folding
	ExpAwarded int
	// LeveledUp is true when the folded experience raised the level
	LeveledUp bool
}
