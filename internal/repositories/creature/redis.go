package creature

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd5e-rules/internal/entities"
	"github.com/KirkDiggler/dnd5e-rules/internal/errors"
	"github.com/KirkDiggler/dnd5e-rules/internal/pkg/clock"
	"github.com/KirkDiggler/dnd5e-rules/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/dnd5e-rules/internal/redis"
)

const (
	creatureKeyPrefix = "creature:"
	ownerIndexPrefix  = "creature:owner:"

	// Error messages
	errCreatureNil     = "creature cannot be nil"
	errCreatureIDEmpty = "creature ID cannot be empty"
	errOwnerIDEmpty    = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
}

// RedisConfig contains configuration for the Redis creature repository.
type RedisConfig struct {
	Client      redisclient.Client
	Clock       clock.Clock
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
	return nil
}

// NewRedis creates a new Redis-backed creature repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock and UUID IDs if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	g := cfg.IDGenerator
	if g == nil {
		g = idgen.NewUUID("creature")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		idGen:  g,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Creature == nil {
		return nil, errors.InvalidArgument(errCreatureNil)
	}
	if err := input.Creature.Validate(); err != nil {
		return nil, err
	}

	stored := *input.Creature
	if stored.ID == "" {
		stored.ID = r.idGen.Generate()
	}
	now := r.clock.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	key := creatureKeyPrefix + stored.ID

	// Check if already exists
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}

	if exists > 0 {
		return nil, errors.AlreadyExistsf("creature with ID %s already exists", stored.ID)
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal creature")
	}

	// Start transaction
	pipe := r.client.TxPipeline()

	pipe.Set(ctx, key, data, 0) // No TTL for creatures

	// Add to owner index
	ownerKey := ownerIndexPrefix + stored.OwnerID
	pipe.SAdd(ctx, ownerKey, stored.ID)

	// Execute transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create creature")
	}

	return &CreateOutput{Creature: &stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCreatureIDEmpty)
	}

	key := creatureKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("creature with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get creature")
	}

	// Decoding runs the stored scores and level back through their
	// bounds checks, so a corrupt record surfaces here rather than
	// deeper in rules math.
	var c entities.Creature
	if err := json.Unmarshal([]byte(result), &c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to unmarshal creature")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "stored creature is invalid")
	}

	return &GetOutput{Creature: &c}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Creature == nil {
		return nil, errors.InvalidArgument(errCreatureNil)
	}
	if input.Creature.ID == "" {
		return nil, errors.InvalidArgument(errCreatureIDEmpty)
	}
	if err := input.Creature.Validate(); err != nil {
		return nil, err
	}

	key := creatureKeyPrefix + input.Creature.ID

	// Get existing creature to check indexes
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("creature with ID %s not found", input.Creature.ID)
		}
		return nil, errors.Wrapf(err, "failed to get creature")
	}

	var existing entities.Creature
	if err := json.Unmarshal([]byte(result), &existing); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to unmarshal existing creature")
	}

	stored := *input.Creature
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = r.clock.Now().UTC()

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal creature")
	}

	// Start transaction
	pipe := r.client.TxPipeline()

	pipe.Set(ctx, key, data, 0)

	// Update owner index if changed
	if existing.OwnerID != stored.OwnerID {
		pipe.SRem(ctx, ownerIndexPrefix+existing.OwnerID, stored.ID)
		pipe.SAdd(ctx, ownerIndexPrefix+stored.OwnerID, stored.ID)
	}

	// Execute transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update creature")
	}

	return &UpdateOutput{Creature: &stored}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCreatureIDEmpty)
	}

	// Get creature to find indexes
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	existing := getOutput.Creature

	// Start transaction
	pipe := r.client.TxPipeline()

	pipe.Del(ctx, creatureKeyPrefix+input.ID)

	// Remove from owner index
	pipe.SRem(ctx, ownerIndexPrefix+existing.OwnerID, input.ID)

	// Execute transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete creature")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := ownerIndexPrefix + input.OwnerID

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to read owner index",
			"owner_id", input.OwnerID,
			"index_key", indexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to get creatures from index %s", indexKey)
	}

	creatures := make([]*entities.Creature, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// If the creature is gone, clean up the index
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "creature not found, cleaning up index",
					"creature_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get creature %s", id)
		}
		creatures = append(creatures, getOutput.Creature)
	}

	slog.DebugContext(ctx, "listed creatures by owner",
		"owner_id", input.OwnerID,
		"count", len(creatures))

	return &ListByOwnerOutput{Creatures: creatures}, nil
}
