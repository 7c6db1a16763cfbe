package catalog

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/tavernkeep/guild-api/internal/entities"
	"github.com/tavernkeep/guild-api/internal/errors"
	redisclient "github.com/tavernkeep/guild-api/internal/redis"
	"github.com/tavernkeep/guild-api/internal/rules"
)

const (
	itemKeyPrefix = "catalog:item:"
	itemIndexKey  = "catalog:items"
)

// RedisConfig contains configuration for the Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
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
}

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if len(input.Items) == 0 {
		return nil, errors.InvalidArgument("items cannot be empty")
	}

	pipe := r.client.TxPipeline()
	for _, item := range input.Items {
		if item == nil || item.Name == "" {
			return nil, errors.InvalidArgument("item name cannot be empty")
		}

		data, err := json.Marshal(item)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal catalog item")
		}

		pipe.Set(ctx, itemKey(item.Name), data, 0)
		pipe.SAdd(ctx, itemIndexKey, item.Name)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store catalog items")
	}

	return &PutOutput{Stored: len(input.Items)}, nil
}

func (r *redisRepository) FindByNames(ctx context.Context, input FindByNamesInput) (*FindByNamesOutput, error) {
	items := make([]*entities.Item, 0, len(input.Names))
	for _, name := range input.Names {
		result, err := r.client.Get(ctx, itemKey(name)).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to get catalog item %q", name)
		}

		var item entities.Item
		if err := json.Unmarshal([]byte(result), &item); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal catalog item %q", name)
		}
		items = append(items, &item)
	}

	return &FindByNamesOutput{Items: items}, nil
}

func (r *redisRepository) ListAll(ctx context.Context) (*ListAllOutput, error) {
	names, err := r.client.SMembers(ctx, itemIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list catalog index")
	}

	found, err := r.FindByNames(ctx, FindByNamesInput{Names: names})
	if err != nil {
		return nil, err
	}

	return &ListAllOutput{Items: found.Items}, nil
}

// itemKey derives the storage key from a display name so lookups are
// insensitive to case and punctuation.
func itemKey(name string) string {
	return itemKeyPrefix + rules.NormalizeName(name)
}
