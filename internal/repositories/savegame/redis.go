package savegame

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/jp-mud/internal/errors"
	redisclient "github.com/KirkDiggler/jp-mud/internal/redis"
)

const (
	// Key pattern: savegame:{game_id}
	recordKeyPrefix = "savegame:"
	// Sorted set of game ids scored by save time, outside the record namespace
	indexKey = "savegames:index"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	// TTL expires saves; zero keeps them forever
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed save index
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save %s", input.Record.GameID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, recordKeyPrefix+input.Record.GameID, data, r.ttl)
	pipe.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(input.Record.SavedAt.UnixNano()),
		Member: input.Record.GameID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store save %s in Redis", input.Record.GameID)
	}

	return &PutOutput{Record: input.Record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	data, err := r.client.Get(ctx, recordKeyPrefix+input.GameID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("save %s not found", input.GameID)
		}
		return nil, errors.Wrapf(err, "failed to get save %s from Redis", input.GameID)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal save %s", input.GameID)
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read save index from Redis")
	}

	out := &ListOutput{Saves: make([]Summary, 0, len(ids))}
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{GameID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				// expired record, drop it from the index
				r.client.ZRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}

		out.Saves = append(out.Saves, got.Record.Summarize())
		if input.Limit > 0 && len(out.Saves) == input.Limit {
			break
		}
	}

	return out, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, recordKeyPrefix+input.GameID)
	pipe.ZRem(ctx, indexKey, input.GameID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete save %s from Redis", input.GameID)
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("save %s not found", input.GameID)
	}

	return &DeleteOutput{}, nil
}

func validateRecord(record *Record) error {
	if record == nil {
		return errors.InvalidArgument(errRecordNil)
	}
	if record.GameID == "" {
		return errors.InvalidArgument(errGameIDEmpty)
	}
	if record.State == nil {
		return errors.InvalidArgument(errStateMissing)
	}
	return nil
}
