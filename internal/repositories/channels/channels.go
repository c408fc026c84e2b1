// Package channels persists per-channel bot settings.
package channels

//go:generate mockgen -destination=mock/mock.go -package=mockchannels -source=channels.go

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	dhErr "github.com/dungeonhelper/dungeon-helper/internal/errors"
)

// Channel holds the bot settings for one Discord channel. The bot is
// disabled everywhere until explicitly enabled.
type Channel struct {
	// Enabled allows the bot to respond in the channel at all.
	Enabled bool `json:"enabled"`

	// Locked stops players from editing their characters.
	Locked bool `json:"locked"`

	// DiceOnly restricts the channel to plain dice rolls.
	DiceOnly bool `json:"dice_only"`
}

// Attribute identifies one channel setting.
type Attribute int

const (
	AttributeEnabled Attribute = iota
	AttributeLocked
	AttributeDiceOnly
)

func (a Attribute) String() string {
	switch a {
	case AttributeEnabled:
		return "enabled"
	case AttributeLocked:
		return "locked"
	case AttributeDiceOnly:
		return "dice only"
	default:
		return "unknown"
	}
}

// Repository defines the interface for channel settings persistence
type Repository interface {
	// Get retrieves a channel's settings. Unknown channels return the
	// zero value: disabled.
	Get(ctx context.Context, channelID string) (*Channel, error)

	// SetAttribute updates one setting, creating the channel record if
	// it does not exist yet
	SetAttribute(ctx context.Context, channelID string, attribute Attribute, value bool) error
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed channel repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

// key generates the Redis key for a channel
func (r *redisRepo) key(channelID string) string {
	return fmt.Sprintf("channel:%s:settings", channelID)
}

// Get retrieves a channel's settings
func (r *redisRepo) Get(ctx context.Context, channelID string) (*Channel, error) {
	if channelID == "" {
		return nil, dhErr.InvalidArgument("channel ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(channelID)).Result()
	if err == redis.Nil {
		return &Channel{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	var channel Channel
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &channel); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal channel: %w", unmarshalErr)
	}
	return &channel, nil
}

// SetAttribute updates one setting
func (r *redisRepo) SetAttribute(ctx context.Context, channelID string, attribute Attribute, value bool) error {
	if channelID == "" {
		return dhErr.InvalidArgument("channel ID is required")
	}

	channel, err := r.Get(ctx, channelID)
	if err != nil {
		return err
	}

	switch attribute {
	case AttributeEnabled:
		channel.Enabled = value
	case AttributeLocked:
		channel.Locked = value
	case AttributeDiceOnly:
		channel.DiceOnly = value
	default:
		return dhErr.InvalidArgumentf("unknown channel attribute %d", attribute)
	}

	jsonData, err := json.Marshal(channel)
	if err != nil {
		return fmt.Errorf("failed to marshal channel: %w", err)
	}
	if err := r.client.Set(ctx, r.key(channelID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to save channel: %w", err)
	}
	return nil
}
