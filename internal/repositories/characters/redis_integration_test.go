//go:build integration
// +build integration

package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dungeonhelper/dungeon-helper/internal/entities"
	dhErr "github.com/dungeonhelper/dungeon-helper/internal/errors"
	"github.com/dungeonhelper/dungeon-helper/internal/repositories/characters"
	"github.com/dungeonhelper/dungeon-helper/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.NewRedisContainer(t)

	repo := characters.NewRedisRepository(&characters.RedisRepoConfig{
		Client: client,
	})

	ctx := context.Background()

	t.Run("set attribute and retrieve character", func(t *testing.T) {
		level := 5
		err := repo.SetAttribute(ctx, "chan-1", "user-1", &entities.CharacterAttributeUpdate{Level: &level})
		require.NoError(t, err)

		err = repo.SetAttribute(ctx, "chan-1", "user-1", &entities.CharacterAttributeUpdate{
			Ability: &entities.AbilityScoreUpdate{Name: entities.AbilityNameDexterity, Score: 16},
		})
		require.NoError(t, err)

		character, err := repo.Get(ctx, "chan-1", "user-1")
		require.NoError(t, err)
		require.NotNil(t, character.Level)
		assert.Equal(t, 5, *character.Level)
		require.NotNil(t, character.Dexterity)
		assert.Equal(t, 16, *character.Dexterity)
	})

	t.Run("characters are scoped per channel", func(t *testing.T) {
		level := 3
		err := repo.SetAttribute(ctx, "chan-2", "user-1", &entities.CharacterAttributeUpdate{Level: &level})
		require.NoError(t, err)

		character, err := repo.Get(ctx, "chan-1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, 5, *character.Level)

		other, err := repo.Get(ctx, "chan-2", "user-1")
		require.NoError(t, err)
		assert.Equal(t, 3, *other.Level)
	})

	t.Run("missing character is not found", func(t *testing.T) {
		_, err := repo.Get(ctx, "chan-1", "nobody")
		assert.True(t, dhErr.IsNotFound(err))
	})

	t.Run("weapon proficiencies", func(t *testing.T) {
		err := repo.SetAttribute(ctx, "chan-1", "user-1", &entities.CharacterAttributeUpdate{
			WeaponProficiency: &entities.WeaponProficiencyUpdate{Name: entities.WeaponNameLongsword, Proficient: true},
		})
		require.NoError(t, err)

		err = repo.SetAttribute(ctx, "chan-1", "user-1", &entities.CharacterAttributeUpdate{
			WeaponCategoryProficiency: &entities.WeaponCategoryProficiencyUpdate{Category: entities.CategorySimple, Proficient: true},
		})
		require.NoError(t, err)

		proficient, err := repo.HasWeaponProficiency(ctx, "chan-1", "user-1", entities.WeaponNameLongsword, entities.CategoryMartial)
		require.NoError(t, err)
		assert.True(t, proficient, "by name")

		proficient, err = repo.HasWeaponProficiency(ctx, "chan-1", "user-1", entities.WeaponNameClub, entities.CategorySimple)
		require.NoError(t, err)
		assert.True(t, proficient, "by category")

		proficient, err = repo.HasWeaponProficiency(ctx, "chan-1", "user-1", entities.WeaponNameWhip, entities.CategoryMartial)
		require.NoError(t, err)
		assert.False(t, proficient)

		proficiencies, err := repo.WeaponProficiencies(ctx, "chan-1", "user-1")
		require.NoError(t, err)
		assert.Len(t, proficiencies, 2)

		err = repo.SetAttribute(ctx, "chan-1", "user-1", &entities.CharacterAttributeUpdate{
			WeaponProficiency: &entities.WeaponProficiencyUpdate{Name: entities.WeaponNameLongsword, Proficient: false},
		})
		require.NoError(t, err)

		proficient, err = repo.HasWeaponProficiency(ctx, "chan-1", "user-1", entities.WeaponNameLongsword, entities.CategoryMartial)
		require.NoError(t, err)
		assert.False(t, proficient)
	})

	t.Run("list by channel", func(t *testing.T) {
		level := 1
		err := repo.SetAttribute(ctx, "chan-1", "user-2", &entities.CharacterAttributeUpdate{Level: &level})
		require.NoError(t, err)

		characters, err := repo.ListByChannel(ctx, "chan-1")
		require.NoError(t, err)
		assert.Len(t, characters, 2)
		assert.Contains(t, characters, "user-1")
		assert.Contains(t, characters, "user-2")
	})
}
