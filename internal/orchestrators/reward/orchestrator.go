// Package reward implements the daily reward orchestrator: streak
// bookkeeping, streak-scaled payouts, and the leveling pass over awarded
// experience.
package reward

//go:generate mockgen -destination=mock/mock_service.go -package=rewardmock github.com/tavernkeep/guild-api/internal/orchestrators/reward Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/tavernkeep/guild-api/internal/errors"
	"github.com/tavernkeep/guild-api/internal/pkg/clock"
	"github.com/tavernkeep/guild-api/internal/repositories/cooldown"
	profilerepo "github.com/tavernkeep/guild-api/internal/repositories/profile"
	"github.com/tavernkeep/guild-api/internal/rules"
)

const (
	// ActionClaimDaily is the cooldown key for the daily claim
	ActionClaimDaily = "daily"

	// ClaimCooldownWindow throttles rapid repeated claim attempts. The
	// calendar-day rule is what actually limits claims to one per day.
	ClaimCooldownWindow = 5 * time.Second

	// Reward scaling. Every third streak day bumps the payout tier.
	baseGems       = 150
	gemsPerTier    = 100
	baseRerolls    = 1
	rerollsPerTier = 2
	baseExp        = 50
	expPerStreak   = 10
	streakTierSize = 3
)

// Service defines the interface for reward operations
type Service interface {
	// ClaimDaily grants the streak-scaled daily reward
	ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error)
}

// Config holds the dependencies for the reward orchestrator
type Config struct {
	ProfileRepo  profilerepo.Repository
	CooldownRepo cooldown.Repository
	Clock        clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.CooldownRepo == nil {
		vb.RequiredField("CooldownRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	profileRepo  profilerepo.Repository
	cooldownRepo cooldown.Repository
	clock        clock.Clock
}

// NewOrchestrator creates a new reward orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		profileRepo:  cfg.ProfileRepo,
		cooldownRepo: cfg.CooldownRepo,
		clock:        c,
	}, nil
}

func (o *orchestrator) ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	checkOutput, err := o.cooldownRepo.Check(ctx, cooldown.CheckInput{
		UserID: input.UserID,
		Action: ActionClaimDaily,
		Window: ClaimCooldownWindow,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check daily cooldown")
	}
	if checkOutput.SecondsRemaining > 0 {
		return nil, errors.ResourceExhaustedf("daily claim is on cooldown for %d more seconds", checkOutput.SecondsRemaining).
			WithMeta("seconds_remaining", checkOutput.SecondsRemaining)
	}

	getOutput, err := o.profileRepo.Get(ctx, profilerepo.GetInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}
	prof := getOutput.Profile

	now := o.clock.Now().UTC()
	streak, err := nextStreak(prof.DailyStreak, prof.LastDaily, now)
	if err != nil {
		return nil, err
	}

	tier := streak / streakTierSize
	gems := baseGems + tier*gemsPerTier
	rerolls := baseRerolls + tier*rerollsPerTier
	exp := baseExp + streak*expPerStreak

	level, remaining := rules.Normalize(prof.Level, prof.Exp+exp)
	leveledUp := level > prof.Level

	prof.Gems += gems
	prof.TraitRerolls += rerolls
	prof.Level = level
	prof.Exp = remaining
	prof.DailyStreak = streak
	prof.LastDaily = &now

	updateOutput, err := o.profileRepo.Update(ctx, profilerepo.UpdateInput{Profile: prof})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "daily reward claimed",
		"user_id", input.UserID,
		"streak", streak,
		"gems_awarded", gems,
		"rerolls_awarded", rerolls,
		"exp_awarded", exp,
		"leveled_up", leveledUp)

	return &ClaimDailyOutput{
		Profile:        updateOutput.Profile,
		Streak:         streak,
		GemsAwarded:    gems,
		RerollsAwarded: rerolls,
		ExpAwarded:     exp,
		LeveledUp:      leveledUp,
	}, nil
}

// nextStreak applies the calendar rules: one claim per UTC day, a streak
// extends only across consecutive days and otherwise restarts at 1.
func nextStreak(current int, lastDaily *time.Time, now time.Time) (int, error) {
	if lastDaily == nil {
		return 1, nil
	}

	gap := dayDiff(lastDaily.UTC(), now)
	switch {
	case gap <= 0:
		return 0, errors.FailedPrecondition("daily reward already claimed today")
	case gap == 1:
		return current + 1, nil
	default:
		return 1, nil
	}
}

// dayDiff counts whole UTC calendar days between two instants.
func dayDiff(earlier, later time.Time) int {
	e := time.Date(earlier.Year(), earlier.Month(), earlier.Day(), 0, 0, 0, 0, time.UTC)
	l := time.Date(later.Year(), later.Month(), later.Day(), 0, 0, 0, 0, time.UTC)
	return int(l.Sub(e).Hours() / 24)
}
