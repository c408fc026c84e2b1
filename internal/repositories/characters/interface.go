package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/dungeonhelper/dungeon-helper/internal/entities"
)

// Repository defines the interface for character persistence. Characters
// are scoped to a channel and a user; the same user has a separate
// character in every channel.
type Repository interface {
	// Get retrieves the character a user plays in a channel
	Get(ctx context.Context, channelID, userID string) (*entities.Character, error)

	// SetAttribute applies one attribute update, creating the character
	// if it does not exist yet
	SetAttribute(ctx context.Context, channelID, userID string, update *entities.CharacterAttributeUpdate) error

	// HasWeaponProficiency reports whether the character is proficient
	// with a weapon, by name or by its category
	HasWeaponProficiency(ctx context.Context, channelID, userID string, name entities.WeaponName, category entities.Category) (bool, error)

	// WeaponProficiencies lists the character's weapon proficiencies
	WeaponProficiencies(ctx context.Context, channelID, userID string) ([]entities.WeaponProficiency, error)

	// ListByChannel retrieves every character in a channel, keyed by user ID
	ListByChannel(ctx context.Context, channelID string) (map[string]*entities.Character, error)
}
