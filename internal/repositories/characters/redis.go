package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dungeonhelper/dungeon-helper/internal/entities"
	dhErr "github.com/dungeonhelper/dungeon-helper/internal/errors"
)

// Weapon proficiency set member prefixes. A member is either
// "name:<weapon name>" or "category:<category>".
const (
	weaponMemberPrefix   = "name:"
	categoryMemberPrefix = "category:"
)

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed character repository
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

// key generates the Redis key for a character
func (r *redisRepo) key(channelID, userID string) string {
	return fmt.Sprintf("character:%s:%s", channelID, userID)
}

// weaponProficienciesKey generates the Redis key for a character's
// weapon proficiency set
func (r *redisRepo) weaponProficienciesKey(channelID, userID string) string {
	return fmt.Sprintf("character:%s:%s:weapon_proficiencies", channelID, userID)
}

// channelCharactersKey generates the Redis key for a channel's character index
func (r *redisRepo) channelCharactersKey(channelID string) string {
	return fmt.Sprintf("channel:%s:characters", channelID)
}

// Get retrieves the character a user plays in a channel
func (r *redisRepo) Get(ctx context.Context, channelID, userID string) (*entities.Character, error) {
	if channelID == "" {
		return nil, dhErr.InvalidArgument("channel ID is required")
	}
	if userID == "" {
		return nil, dhErr.InvalidArgument("user ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(channelID, userID)).Result()
	if err == redis.Nil {
		return nil, dhErr.NotFoundf("no character for user '%s' in channel '%s'", userID, channelID).
			WithMeta("channel_id", channelID).
			WithMeta("user_id", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var character entities.Character
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &character); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", unmarshalErr)
	}
	return &character, nil
}

// SetAttribute applies one attribute update, creating the character if
// it does not exist yet
func (r *redisRepo) SetAttribute(ctx context.Context, channelID, userID string, update *entities.CharacterAttributeUpdate) error {
	if channelID == "" {
		return dhErr.InvalidArgument("channel ID is required")
	}
	if userID == "" {
		return dhErr.InvalidArgument("user ID is required")
	}
	if update == nil {
		return dhErr.InvalidArgument("update cannot be nil")
	}

	// Weapon proficiencies live in their own set, not the character blob.
	if update.WeaponProficiency != nil {
		member := weaponMemberPrefix + string(update.WeaponProficiency.Name)
		return r.setWeaponProficiencyMember(ctx, channelID, userID, member, update.WeaponProficiency.Proficient)
	}
	if update.WeaponCategoryProficiency != nil {
		member := categoryMemberPrefix + string(update.WeaponCategoryProficiency.Category)
		return r.setWeaponProficiencyMember(ctx, channelID, userID, member, update.WeaponCategoryProficiency.Proficient)
	}

	character, err := r.Get(ctx, channelID, userID)
	if dhErr.IsNotFound(err) {
		character = &entities.Character{}
	} else if err != nil {
		return err
	}

	applyUpdate(character, update)

	jsonData, err := json.Marshal(character)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(channelID, userID), jsonData, 0)
	pipe.SAdd(ctx, r.channelCharactersKey(channelID), userID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}
	return nil
}

func applyUpdate(character *entities.Character, update *entities.CharacterAttributeUpdate) {
	switch {
	case update.Ability != nil:
		character.SetAbilityScore(update.Ability.Name, update.Ability.Score)
	case update.Level != nil:
		level := *update.Level
		character.Level = &level
	case update.JackOfAllTrades != nil:
		character.JackOfAllTrades = *update.JackOfAllTrades
	case update.MartialArtsDie != nil:
		character.MartialArtsDie = update.MartialArtsDie.Die
	case update.SavingThrowProficiency != nil:
		character.SetSavingProficiency(update.SavingThrowProficiency.Name, update.SavingThrowProficiency.Proficient)
	case update.SkillProficiency != nil:
		character.SetSkillProficiency(update.SkillProficiency.Name, update.SkillProficiency.Proficiency)
	}
}

func (r *redisRepo) setWeaponProficiencyMember(ctx context.Context, channelID, userID, member string, proficient bool) error {
	pipe := r.client.Pipeline()
	if proficient {
		pipe.SAdd(ctx, r.weaponProficienciesKey(channelID, userID), member)
	} else {
		pipe.SRem(ctx, r.weaponProficienciesKey(channelID, userID), member)
	}
	pipe.SAdd(ctx, r.channelCharactersKey(channelID), userID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save weapon proficiency: %w", err)
	}
	return nil
}

// HasWeaponProficiency reports whether the character is proficient with
// a weapon, by name or by its category
func (r *redisRepo) HasWeaponProficiency(ctx context.Context, channelID, userID string, name entities.WeaponName, category entities.Category) (bool, error) {
	if channelID == "" {
		return false, dhErr.InvalidArgument("channel ID is required")
	}
	if userID == "" {
		return false, dhErr.InvalidArgument("user ID is required")
	}

	key := r.weaponProficienciesKey(channelID, userID)
	pipe := r.client.Pipeline()
	byName := pipe.SIsMember(ctx, key, weaponMemberPrefix+string(name))
	byCategory := pipe.SIsMember(ctx, key, categoryMemberPrefix+string(category))
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to check weapon proficiency: %w", err)
	}
	return byName.Val() || byCategory.Val(), nil
}

// WeaponProficiencies lists the character's weapon proficiencies,
// sorted for stable display
func (r *redisRepo) WeaponProficiencies(ctx context.Context, channelID, userID string) ([]entities.WeaponProficiency, error) {
	if channelID == "" {
		return nil, dhErr.InvalidArgument("channel ID is required")
	}
	if userID == "" {
		return nil, dhErr.InvalidArgument("user ID is required")
	}

	members, err := r.client.SMembers(ctx, r.weaponProficienciesKey(channelID, userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list weapon proficiencies: %w", err)
	}
	sort.Strings(members)

	proficiencies := make([]entities.WeaponProficiency, 0, len(members))
	for _, member := range members {
		switch {
		case strings.HasPrefix(member, weaponMemberPrefix):
			name, ok := entities.ParseWeaponName(strings.TrimPrefix(member, weaponMemberPrefix))
			if !ok {
				continue
			}
			proficiencies = append(proficiencies, entities.WeaponProficiency{Name: &name})
		case strings.HasPrefix(member, categoryMemberPrefix):
			category, ok := entities.ParseCategory(strings.TrimPrefix(member, categoryMemberPrefix))
			if !ok {
				continue
			}
			proficiencies = append(proficiencies, entities.WeaponProficiency{Category: &category})
		}
	}
	return proficiencies, nil
}

// ListByChannel retrieves every character in a channel, keyed by user ID
func (r *redisRepo) ListByChannel(ctx context.Context, channelID string) (map[string]*entities.Character, error) {
	if channelID == "" {
		return nil, dhErr.InvalidArgument("channel ID is required")
	}

	userIDs, err := r.client.SMembers(ctx, r.channelCharactersKey(channelID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list channel characters: %w", err)
	}

	var mu sync.Mutex
	characters := make(map[string]*entities.Character, len(userIDs))

	g, ctx := errgroup.WithContext(ctx)
	for _, userID := range userIDs {
		userID := userID
		g.Go(func() error {
			character, err := r.Get(ctx, channelID, userID)
			if dhErr.IsNotFound(err) {
				// Indexed but never saved; a proficiency-only character.
				character = &entities.Character{}
			} else if err != nil {
				return err
			}
			mu.Lock()
			characters[userID] = character
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return characters, nil
}
