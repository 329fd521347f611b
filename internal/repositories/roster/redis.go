package roster

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/character-sheet/internal/errors"
	redisclient "github.com/KirkDiggler/character-sheet/internal/redis"
)

const rosterKeyPrefix = "roster:"

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis roster repository.
type RedisConfig struct {
	Client redisclient.Client

	// TTL expires idle sessions. Every write resets it. Zero keeps rosters forever.
	TTL time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}

// NewRedis creates a new Redis-backed roster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

func rosterKey(id string) string {
	return rosterKeyPrefix + id
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRoster(input.Roster); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Roster)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roster")
	}

	// SETNX keeps the existence check and the write atomic
	created, err := r.client.SetNX(ctx, rosterKey(input.Roster.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create roster")
	}
	if !created {
		return nil, errors.AlreadyExistsf("roster with ID %s already exists", input.Roster.ID)
	}

	slog.DebugContext(ctx, "roster created",
		"roster_id", input.Roster.ID,
		"characters", input.Roster.Len())

	return &CreateOutput{Roster: input.Roster}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRosterIDEmpty)
	}

	result, err := r.client.Get(ctx, rosterKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("roster with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get roster")
	}

	var roster sheet.Roster
	if err := json.Unmarshal([]byte(result), &roster); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal roster")
	}

	return &GetOutput{Roster: &roster}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRoster(input.Roster); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Roster)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roster")
	}

	// SET XX only writes when the key already exists
	res, err := r.client.SetArgs(ctx, rosterKey(input.Roster.ID), data, redis.SetArgs{
		Mode: "XX",
		TTL:  r.ttl,
	}).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("roster with ID %s not found", input.Roster.ID)
		}
		return nil, errors.Wrapf(err, "failed to update roster")
	}
	if res != "OK" {
		return nil, errors.NotFoundf("roster with ID %s not found", input.Roster.ID)
	}

	return &UpdateOutput{Roster: input.Roster}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRosterIDEmpty)
	}

	deleted, err := r.client.Del(ctx, rosterKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete roster")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("roster with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
