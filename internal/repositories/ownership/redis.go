package ownership

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/tavernkeep/guild-api/internal/entities"
	"github.com/tavernkeep/guild-api/internal/errors"
	"github.com/tavernkeep/guild-api/internal/pkg/idgen"
	redisclient "github.com/tavernkeep/guild-api/internal/redis"
)

const (
	recordKeyPrefix = "ownership:"

	// The per-user index is a list, not a set. Records must come back in
	// grant order because name resolution breaks ties by position.
	userIndexPrefix = "ownership:user:"

	// Error messages
	errUserIDEmpty   = "user ID cannot be empty"
	errRecordIDEmpty = "record ID cannot be empty"
)

// RedisConfig contains configuration for the Redis ownership repository.
type RedisConfig struct {
	Client      redisclient.Client
	IDGenerator idgen.Generator
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.IDGenerator == nil {
		return errors.InvalidArgument("ID generator cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	idGen  idgen.Generator
}

// NewRedis creates a new Redis-backed ownership repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		idGen:  cfg.IDGenerator,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) ListForUser(ctx context.Context, input ListForUserInput) (*ListForUserOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	indexKey := userIndexPrefix + input.UserID
	ids, err := r.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list ownership index for user %s", input.UserID)
	}

	records := make([]*entities.OwnershipRecord, 0, len(ids))
	for _, id := range ids {
		record, err := r.getRecord(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry, clean it up
				slog.WarnContext(ctx, "ownership record missing, cleaning up index",
					"record_id", id,
					"index_key", indexKey)
				r.client.LRem(ctx, indexKey, 0, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get ownership record %s", id)
		}
		records = append(records, record)
	}

	return &ListForUserOutput{Records: records}, nil
}

func (r *redisRepository) Insert(ctx context.Context, input InsertInput) (*InsertOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if len(input.ItemNames) == 0 {
		return nil, errors.InvalidArgument("item names cannot be empty")
	}

	indexKey := userIndexPrefix + input.UserID
	records := make([]*entities.OwnershipRecord, 0, len(input.ItemNames))

	pipe := r.client.TxPipeline()
	for _, name := range input.ItemNames {
		record := &entities.OwnershipRecord{
			ID:         r.idGen.Generate(),
			UserID:     input.UserID,
			ItemName:   name,
			IsEquipped: false,
		}

		data, err := json.Marshal(record)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal ownership record")
		}

		pipe.Set(ctx, recordKeyPrefix+record.ID, data, 0)
		pipe.RPush(ctx, indexKey, record.ID)
		records = append(records, record)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to insert ownership records")
	}

	return &InsertOutput{Records: records}, nil
}

func (r *redisRepository) SetEquipped(ctx context.Context, input SetEquippedInput) (*SetEquippedOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	record, err := r.getRecord(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	record.IsEquipped = input.Equipped

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal ownership record")
	}

	if err := r.client.Set(ctx, recordKeyPrefix+record.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update ownership record %s", record.ID)
	}

	return &SetEquippedOutput{Record: record}, nil
}

func (r *redisRepository) BulkSetEquipped(ctx context.Context, input BulkSetEquippedInput) (*BulkSetEquippedOutput, error) {
	if len(input.IDs) == 0 {
		return &BulkSetEquippedOutput{Updated: 0}, nil
	}

	records := make([]*entities.OwnershipRecord, 0, len(input.IDs))
	for _, id := range input.IDs {
		record, err := r.getRecord(ctx, id)
		if err != nil {
			return nil, err
		}
		record.IsEquipped = input.Equipped
		records = append(records, record)
	}

	pipe := r.client.TxPipeline()
	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal ownership record")
		}
		pipe.Set(ctx, recordKeyPrefix+record.ID, data, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to bulk update ownership records")
	}

	return &BulkSetEquippedOutput{Updated: len(records)}, nil
}

func (r *redisRepository) DeleteForUser(ctx context.Context, input DeleteForUserInput) (*DeleteForUserOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	indexKey := userIndexPrefix + input.UserID
	ids, err := r.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list ownership index for user %s", input.UserID)
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, recordKeyPrefix+id)
	}
	pipe.Del(ctx, indexKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete ownership records")
	}

	return &DeleteForUserOutput{Deleted: len(ids)}, nil
}

func (r *redisRepository) getRecord(ctx context.Context, id string) (*entities.OwnershipRecord, error) {
	result, err := r.client.Get(ctx, recordKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("ownership record %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get ownership record")
	}

	var record entities.OwnershipRecord
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal ownership record")
	}

	return &record, nil
}
