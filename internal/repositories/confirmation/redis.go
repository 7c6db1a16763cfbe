package confirmation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tavernkeep/guild-api/internal/errors"
	"github.com/tavernkeep/guild-api/internal/pkg/clock"
	redisclient "github.com/tavernkeep/guild-api/internal/redis"
)

const confirmKeyPrefix = "confirm:"

// RedisConfig contains configuration for the Redis confirmation repository.
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

// NewRedis creates a new Redis-backed confirmation repository
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

// Create writes the session with its deadline as the key TTL. A plain SET
// overwrites any pending session, so asking again restarts the deadline.
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.Action == "" {
		return nil, errors.InvalidArgument("action cannot be empty")
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := r.clock.Now()
	session := &Session{
		UserID:    input.UserID,
		Action:    input.Action,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal confirmation session")
	}

	key := r.buildKey(input.UserID, input.Action)
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save confirmation session")
	}

	return &CreateOutput{Session: session}, nil
}

func (r *redisRepository) Consume(ctx context.Context, input ConsumeInput) (*ConsumeOutput, error) {
	session, err := r.takeSession(ctx, input)
	if err != nil {
		return nil, err
	}

	return &ConsumeOutput{Session: session}, nil
}

func (r *redisRepository) Cancel(ctx context.Context, input ConsumeInput) (*ConsumeOutput, error) {
	session, err := r.takeSession(ctx, input)
	if err != nil {
		return nil, err
	}

	return &ConsumeOutput{Session: session}, nil
}

// takeSession removes the pending session and returns it. GETDEL makes the
// take atomic, so at most one caller ever sees a given session. The expiry
// check still applies in case the store has not evicted the key yet.
func (r *redisRepository) takeSession(ctx context.Context, input ConsumeInput) (*Session, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.Action == "" {
		return nil, errors.InvalidArgument("action cannot be empty")
	}

	key := r.buildKey(input.UserID, input.Action)
	data, err := r.client.GetDel(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no pending confirmation for user %s action %s", input.UserID, input.Action)
		}
		return nil, errors.Wrapf(err, "failed to take confirmation session")
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal confirmation session")
	}

	if r.clock.Now().After(session.ExpiresAt) {
		return nil, errors.NotFoundf("no pending confirmation for user %s action %s", input.UserID, input.Action)
	}

	return &session, nil
}

func (r *redisRepository) buildKey(userID, action string) string {
	return fmt.Sprintf("%s%s:%s", confirmKeyPrefix, userID, action)
}
