package characters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/dungeonhelper/dungeon-helper/internal/entities"
	dhErr "github.com/dungeonhelper/dungeon-helper/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: s.mockClient})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testCharacter() *entities.Character {
	level := 5
	strength := 14
	return &entities.Character{
		Level:              &level,
		Strength:           &strength,
		StealthProficiency: entities.ProficiencyProficient,
	}
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	character := s.testCharacter()

	data, err := json.Marshal(character)
	s.Require().NoError(err)

	s.mock.ExpectGet("character:chan-1:user-1").SetVal(string(data))

	got, err := s.repo.Get(ctx, "chan-1", "user-1")
	s.NoError(err)
	s.Equal(character, got)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("character:chan-1:user-1").RedisNil()

	got, err := s.repo.Get(ctx, "chan-1", "user-1")
	s.Nil(got)
	s.True(dhErr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_InvalidArgument() {
	ctx := context.Background()

	_, err := s.repo.Get(ctx, "", "user-1")
	s.True(dhErr.IsInvalidArgument(err))

	_, err = s.repo.Get(ctx, "chan-1", "")
	s.True(dhErr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestSetAttribute_CreatesCharacter() {
	ctx := context.Background()

	score := entities.CharacterAttributeUpdate{
		Ability: &entities.AbilityScoreUpdate{Name: entities.AbilityNameStrength, Score: 14},
	}

	strength := 14
	expected, err := json.Marshal(&entities.Character{Strength: &strength})
	s.Require().NoError(err)

	s.mock.ExpectGet("character:chan-1:user-1").RedisNil()
	s.mock.ExpectSet("character:chan-1:user-1", expected, 0).SetVal("OK")
	s.mock.ExpectSAdd("channel:chan-1:characters", "user-1").SetVal(1)

	s.NoError(s.repo.SetAttribute(ctx, "chan-1", "user-1", &score))
}

func (s *RedisRepoTestSuite) TestSetAttribute_UpdatesExisting() {
	ctx := context.Background()
	character := s.testCharacter()

	data, err := json.Marshal(character)
	s.Require().NoError(err)

	updated := *character
	jack := true
	updated.JackOfAllTrades = jack
	expected, err := json.Marshal(&updated)
	s.Require().NoError(err)

	s.mock.ExpectGet("character:chan-1:user-1").SetVal(string(data))
	s.mock.ExpectSet("character:chan-1:user-1", expected, 0).SetVal("OK")
	s.mock.ExpectSAdd("channel:chan-1:characters", "user-1").SetVal(0)

	update := entities.CharacterAttributeUpdate{JackOfAllTrades: &jack}
	s.NoError(s.repo.SetAttribute(ctx, "chan-1", "user-1", &update))
}

func (s *RedisRepoTestSuite) TestSetAttribute_WeaponProficiency() {
	ctx := context.Background()

	grant := entities.CharacterAttributeUpdate{
		WeaponProficiency: &entities.WeaponProficiencyUpdate{Name: entities.WeaponNameLongsword, Proficient: true},
	}
	s.mock.ExpectSAdd("character:chan-1:user-1:weapon_proficiencies", "name:longsword").SetVal(1)
	s.mock.ExpectSAdd("channel:chan-1:characters", "user-1").SetVal(0)
	s.NoError(s.repo.SetAttribute(ctx, "chan-1", "user-1", &grant))

	revoke := entities.CharacterAttributeUpdate{
		WeaponCategoryProficiency: &entities.WeaponCategoryProficiencyUpdate{Category: entities.CategoryMartial, Proficient: false},
	}
	s.mock.ExpectSRem("character:chan-1:user-1:weapon_proficiencies", "category:martial").SetVal(1)
	s.mock.ExpectSAdd("channel:chan-1:characters", "user-1").SetVal(0)
	s.NoError(s.repo.SetAttribute(ctx, "chan-1", "user-1", &revoke))
}

func (s *RedisRepoTestSuite) TestSetAttribute_RedisError() {
	ctx := context.Background()

	jack := true
	update := entities.CharacterAttributeUpdate{JackOfAllTrades: &jack}

	s.mock.ExpectGet("character:chan-1:user-1").SetErr(errors.New("redis error"))

	s.Error(s.repo.SetAttribute(ctx, "chan-1", "user-1", &update))
}

func (s *RedisRepoTestSuite) TestHasWeaponProficiency() {
	ctx := context.Background()

	s.mock.ExpectSIsMember("character:chan-1:user-1:weapon_proficiencies", "name:longsword").SetVal(false)
	s.mock.ExpectSIsMember("character:chan-1:user-1:weapon_proficiencies", "category:martial").SetVal(true)

	proficient, err := s.repo.HasWeaponProficiency(ctx, "chan-1", "user-1", entities.WeaponNameLongsword, entities.CategoryMartial)
	s.NoError(err)
	s.True(proficient)
}

func (s *RedisRepoTestSuite) TestHasWeaponProficiency_None() {
	ctx := context.Background()

	s.mock.ExpectSIsMember("character:chan-1:user-1:weapon_proficiencies", "name:whip").SetVal(false)
	s.mock.ExpectSIsMember("character:chan-1:user-1:weapon_proficiencies", "category:martial").SetVal(false)

	proficient, err := s.repo.HasWeaponProficiency(ctx, "chan-1", "user-1", entities.WeaponNameWhip, entities.CategoryMartial)
	s.NoError(err)
	s.False(proficient)
}

func (s *RedisRepoTestSuite) TestWeaponProficiencies() {
	ctx := context.Background()

	s.mock.ExpectSMembers("character:chan-1:user-1:weapon_proficiencies").
		SetVal([]string{"name:longsword", "category:simple", "name:whip"})

	proficiencies, err := s.repo.WeaponProficiencies(ctx, "chan-1", "user-1")
	s.NoError(err)
	s.Require().Len(proficiencies, 3)

	// Sorted: categories first, then names.
	s.Require().NotNil(proficiencies[0].Category)
	s.Equal(entities.CategorySimple, *proficiencies[0].Category)
	s.Require().NotNil(proficiencies[1].Name)
	s.Equal(entities.WeaponNameLongsword, *proficiencies[1].Name)
	s.Require().NotNil(proficiencies[2].Name)
	s.Equal(entities.WeaponNameWhip, *proficiencies[2].Name)
}

func (s *RedisRepoTestSuite) TestListByChannel() {
	ctx := context.Background()
	character := s.testCharacter()

	data, err := json.Marshal(character)
	s.Require().NoError(err)

	s.mock.ExpectSMembers("channel:chan-1:characters").SetVal([]string{"user-1"})
	s.mock.ExpectGet("character:chan-1:user-1").SetVal(string(data))

	characters, err := s.repo.ListByChannel(ctx, "chan-1")
	s.NoError(err)
	s.Require().Len(characters, 1)
	s.Equal(character, characters["user-1"])
}

func (s *RedisRepoTestSuite) TestListByChannel_Empty() {
	ctx := context.Background()

	s.mock.ExpectSMembers("channel:chan-1:characters").SetVal([]string{})

	characters, err := s.repo.ListByChannel(ctx, "chan-1")
	s.NoError(err)
	s.Empty(characters)
}
