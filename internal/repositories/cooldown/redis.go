package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/tavernkeep/guild-api/internal/errors"
	"github.com/tavernkeep/guild-api/internal/pkg/clock"
	redisclient "github.com/tavernkeep/guild-api/internal/redis"
)

const cooldownKeyPrefix = "cooldown:"

// RedisConfig contains configuration for the Redis cooldown repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed cooldown repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Check atomically claims the (user, action) window with SET NX. The key
// carries the window as its TTL, so stale entries expire on their own and
// the key space never grows unbounded.
func (r *redisRepository) Check(ctx context.Context, input CheckInput) (*CheckOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.Action == "" {
		return nil, errors.InvalidArgument("action cannot be empty")
	}
	if input.Window <= 0 {
		return nil, errors.InvalidArgument("window must be positive")
	}

	key := r.buildKey(input.UserID, input.Action)
	expiry := r.clock.Now().Add(input.Window)

	claimed, err := r.client.SetNX(ctx, key, expiry.Format(time.RFC3339Nano), input.Window).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to claim cooldown window")
	}
	if claimed {
		return &CheckOutput{SecondsRemaining: 0}, nil
	}

	ttl, err := r.client.PTTL(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read cooldown window")
	}
	if ttl <= 0 {
		// Window expired between the claim and the read; start a fresh one
		if err := r.client.Set(ctx, key, expiry.Format(time.RFC3339Nano), input.Window).Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to restart cooldown window")
		}
		return &CheckOutput{SecondsRemaining: 0}, nil
	}

	seconds := int((ttl + time.Second - 1) / time.Second)
	return &CheckOutput{SecondsRemaining: seconds}, nil
}

func (r *redisRepository) buildKey(userID, action string) string {
	return fmt.Sprintf("%s%s:%s", cooldownKeyPrefix, userID, action)
}
