package character

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/metrics"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/pkg/clock"
	redisclient "github.com/dfox288/ledger-of-heroes-backend-sub012/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	playerIndexPrefix  = "character:player:"

	defaultMaxRetries = 5

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPlayerIDEmpty    = "player ID cannot be empty"
	errMutateFuncNil    = "mutate func cannot be nil"
)

type redisRepository struct {
	client     redisclient.Client
	clock      clock.Clock
	maxRetries int
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client     redisclient.Client
	Clock      clock.Clock
	MaxRetries int
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.MaxRetries < 0 {
		return errors.InvalidArgument("max retries cannot be negative")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}

	return &redisRepository{
		client:     cfg.Client,
		clock:      c,
		maxRetries: maxRetries,
	}, nil
}

func characterKey(id string) string {
	return characterKeyPrefix + id
}

// getter is satisfied by both the client and a watched transaction
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func load(ctx context.Context, g getter, id string) (*entities.Character, error) {
	raw, err := g.Get(ctx, characterKey(id)).Bytes()
	if stderrors.Is(err, redisclient.Nil) {
		return nil, errors.NotFoundf("character with ID %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var character entities.Character
	if err := json.Unmarshal(raw, &character); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character %s", id)
	}
	return &character, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKey(input.Character.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	now := r.clock.Now().Unix()
	if input.Character.CreatedAt == 0 {
		input.Character.CreatedAt = now
	}
	input.Character.UpdatedAt = now

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if input.Character.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+input.Character.PlayerID, input.Character.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	character, err := load(ctx, r.client, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Character: character}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Character.ID})
	if err != nil {
		return nil, err
	}

	input.Character.UpdatedAt = r.clock.Now().Unix()
	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKey(input.Character.ID), data, 0)
	r.reindexPlayer(ctx, pipe, existing.Character.PlayerID, input.Character)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *redisRepository) reindexPlayer(ctx context.Context, pipe redis.Pipeliner, oldPlayerID string, character *entities.Character) {
	if oldPlayerID == character.PlayerID {
		return
	}
	if oldPlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+oldPlayerID, character.ID)
	}
	if character.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+character.PlayerID, character.ID)
	}
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKey(input.ID))
	if getOutput.Character.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+getOutput.Character.PlayerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID
	characterIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to get character IDs from Redis",
			"index_key", indexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}

	characters := make([]*entities.Character, 0, len(characterIDs))
	for _, id := range characterIDs {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		characters = append(characters, getOutput.Character)
	}

	slog.DebugContext(ctx, "listed characters by player",
		"player_id", input.PlayerID,
		"count", len(characters))

	return &ListByPlayerIDOutput{Characters: characters}, nil
}

func (r *redisRepository) Transact(ctx context.Context, input TransactInput) (*TransactOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Fn == nil {
		return nil, errors.InvalidArgument(errMutateFuncNil)
	}

	key := characterKey(input.ID)
	var (
		saved *entities.Character
		fnErr error
	)

	txf := func(tx *redis.Tx) error {
		character, err := load(ctx, tx, input.ID)
		if err != nil {
			return err
		}

		if err := input.Fn(ctx, character); err != nil {
			fnErr = err
			return err
		}

		character.UpdatedAt = r.clock.Now().Unix()
		data, err := json.Marshal(character)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal character data")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}

		saved = character
		return nil
	}

	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		switch {
		case err == nil:
			return &TransactOutput{Character: saved, Attempts: attempt}, nil
		case fnErr != nil:
			return nil, fnErr
		case stderrors.Is(err, redisclient.TxFailedErr):
			slog.DebugContext(ctx, "character changed during transaction, retrying",
				"character_id", input.ID,
				"attempt", attempt)
			metrics.RecordTransactionRetry()
			continue
		default:
			var appErr *errors.Error
			if errors.As(err, &appErr) {
				return nil, appErr
			}
			return nil, errors.Wrapf(err, "failed to save character %s", input.ID)
		}
	}

	return nil, errors.Abortedf("character %s changed concurrently %d times", input.ID, r.maxRetries).
		WithMeta("character_id", input.ID)
}
