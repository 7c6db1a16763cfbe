package profile

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/tavernkeep/guild-api/internal/entities"
	"github.com/tavernkeep/guild-api/internal/errors"
	"github.com/tavernkeep/guild-api/internal/pkg/clock"
	redisclient "github.com/tavernkeep/guild-api/internal/redis"
)

const (
	profileKeyPrefix = "profile:"

	// Kept outside the profile: keyspace so no user ID can collide with it.
	profileIndexKey = "profiles:index"

	// Error messages
	errProfileNil  = "profile cannot be nil"
	errUserIDEmpty = "user ID cannot be empty"
	errNotFoundFmt = "profile for user %s not found"
)

// RedisConfig contains configuration for the Redis profile repository.
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

// NewRedis creates a new Redis-backed profile repository
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

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument(errProfileNil)
	}
	if input.Profile.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	key := profileKeyPrefix + input.Profile.UserID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("profile for user %s already exists", input.Profile.UserID)
	}

	now := r.clock.Now()
	input.Profile.CreatedAt = now
	input.Profile.UpdatedAt = now

	data, err := json.Marshal(input.Profile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // profiles never expire
	pipe.SAdd(ctx, profileIndexKey, input.Profile.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create profile")
	}

	return &CreateOutput{Profile: input.Profile}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	key := profileKeyPrefix + input.UserID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf(errNotFoundFmt, input.UserID)
		}
		return nil, errors.Wrapf(err, "failed to get profile")
	}

	var p entities.Profile
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal profile")
	}

	return &GetOutput{Profile: &p}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument(errProfileNil)
	}
	if input.Profile.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	key := profileKeyPrefix + input.Profile.UserID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf(errNotFoundFmt, input.Profile.UserID)
	}

	input.Profile.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(input.Profile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update profile")
	}

	return &UpdateOutput{Profile: input.Profile}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	key := profileKeyPrefix + input.UserID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf(errNotFoundFmt, input.UserID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, profileIndexKey, input.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete profile")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) Count(ctx context.Context) (*CountOutput, error) {
	count, err := r.client.SCard(ctx, profileIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count profiles")
	}
	return &CountOutput{Count: count}, nil
}
