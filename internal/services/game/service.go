// Package game orchestrates rolls against stored characters: it loads
// the character a player uses in a channel, derives the requested roll,
// and executes it with the configured dice roller.
package game

import (
	"context"

	"github.com/dungeonhelper/dungeon-helper/internal/dice"
	"github.com/dungeonhelper/dungeon-helper/internal/entities"
	"github.com/dungeonhelper/dungeon-helper/internal/entities/attack"
	dhErr "github.com/dungeonhelper/dungeon-helper/internal/errors"
	"github.com/dungeonhelper/dungeon-helper/internal/repositories/characters"
)

//go:generate mockgen -destination=mock/mock.go -package=mockgame -source=service.go

// Service resolves dice, check, and attack rolls for characters
type Service interface {
	// RollDice parses and rolls a plain dice notation like "2d8 + 3"
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceResult, error)

	// RollCheck rolls an ability check, saving throw, skill check, or
	// initiative for the character a user plays in a channel
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckResult, error)

	// RollAttack rolls to hit and damage for an attack, doubling the
	// damage dice on a natural 20
	RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackResult, error)

	// SetAttribute applies one attribute update to a character
	SetAttribute(ctx context.Context, input *SetAttributeInput) (*SetAttributeResult, error)

	// ShowAbilities lists the character's six abilities in order
	ShowAbilities(ctx context.Context, channelID, userID string) ([]*AbilityScore, error)

	// ShowSkills lists the character's eighteen skills in order
	ShowSkills(ctx context.Context, channelID, userID string) ([]*SkillScore, error)

	// ShowWeaponProficiencies lists the character's weapon proficiencies
	ShowWeaponProficiencies(ctx context.Context, channelID, userID string) ([]entities.WeaponProficiency, error)

	// ListCharacters returns every character stored for a channel,
	// keyed by user ID
	ListCharacters(ctx context.Context, channelID string) (map[string]*entities.Character, error)
}

type RollDiceInput struct {
	Notation string
}

type RollDiceResult struct {
	Roll   dice.ConditionalRoll
	Result *dice.ConditionalRollResult
}

type RollCheckInput struct {
	ChannelID string
	UserID    string
	Roll      entities.CharacterRoll
}

type RollCheckResult struct {
	Check  entities.Check
	Roll   dice.ConditionalRoll
	Result *dice.ConditionalRollResult
}

type RollAttackInput struct {
	ChannelID string
	UserID    string
	Attack    attack.Roll
}

type RollAttackResult struct {
	AttackName   string
	Handedness   *attack.Handedness
	ToHitRoll    dice.ConditionalRoll
	ToHitResult  *dice.ConditionalRollResult
	DamageRoll   dice.Roll
	DamageResult *dice.RollResult
}

type SetAttributeInput struct {
	ChannelID string
	UserID    string
	Update    *entities.CharacterAttributeUpdate
}

type SetAttributeResult struct {
	// Confirmation echoes the applied update, e.g. "Strength score = 14"
	Confirmation string
}

// AbilityScore is one row of a character sheet's ability block. Ability
// is nil when the score has not been set.
type AbilityScore struct {
	Name    entities.AbilityName
	Ability *entities.Ability
}

// SkillScore is one row of a character sheet's skill block. Skill is
// nil when the character cannot derive the skill yet.
type SkillScore struct {
	Name  entities.SkillName
	Skill *entities.Skill
}

type service struct {
	characterRepo characters.Repository
	diceRoller    dice.Roller
}

// ServiceConfig holds configuration for the game service
type ServiceConfig struct {
	CharacterRepository characters.Repository
	DiceRoller          dice.Roller
}

// NewService creates a new game service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("cfg is required")
	}
	if cfg.CharacterRepository == nil {
		panic("character repository is required")
	}

	svc := &service{
		characterRepo: cfg.CharacterRepository,
		diceRoller:    cfg.DiceRoller,
	}

	if svc.diceRoller == nil {
		svc.diceRoller = dice.NewRandomRoller()
	}

	return svc
}

func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceResult, error) {
	if input == nil {
		return nil, dhErr.InvalidArgument("input cannot be nil")
	}

	roll, err := dice.ParseRoll(input.Notation)
	if err != nil {
		return nil, err
	}

	result, err := roll.Roll(s.diceRoller)
	if err != nil {
		return nil, dhErr.Wrap(err, "failed to roll dice")
	}

	return &RollDiceResult{
		Roll:   roll,
		Result: result,
	}, nil
}

func (s *service) RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckResult, error) {
	if input == nil {
		return nil, dhErr.InvalidArgument("input cannot be nil")
	}

	character, err := s.characterRepo.Get(ctx, input.ChannelID, input.UserID)
	if err != nil {
		return nil, err
	}

	roll := input.Roll.ToRoll(character)
	if roll == nil {
		return nil, dhErr.MissingData("character is missing the attributes this check needs").
			WithMeta("check", input.Roll.Check.String())
	}

	result, err := roll.Roll(s.diceRoller)
	if err != nil {
		return nil, dhErr.Wrap(err, "failed to roll check")
	}

	return &RollCheckResult{
		Check:  input.Roll.Check,
		Roll:   *roll,
		Result: result,
	}, nil
}

func (s *service) RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackResult, error) {
	if input == nil {
		return nil, dhErr.InvalidArgument("input cannot be nil")
	}
	if input.Attack == nil {
		return nil, dhErr.InvalidArgument("attack cannot be nil")
	}

	character, err := s.characterRepo.Get(ctx, input.ChannelID, input.UserID)
	if err != nil {
		return nil, err
	}

	proficient := false
	if weaponAttack, ok := input.Attack.(attack.WeaponAttack); ok {
		weapon, found := weaponAttack.Weapon.Weapon()
		if !found {
			return nil, dhErr.InvalidArgumentf("unknown weapon %q", weaponAttack.Weapon)
		}
		proficient, err = s.characterRepo.HasWeaponProficiency(
			ctx, input.ChannelID, input.UserID, weaponAttack.Weapon, weapon.Category)
		if err != nil {
			return nil, err
		}
	}

	strength := abilityModifier(character, entities.AbilityNameStrength)
	dexterity := abilityModifier(character, entities.AbilityNameDexterity)
	proficiencyBonus := character.ProficiencyBonus()

	toHitRoll := input.Attack.ToAttackRoll(
		strength, dexterity, proficiencyBonus, proficient, character.MartialArts())
	if toHitRoll == nil {
		return nil, dhErr.MissingData("character is missing the ability scores this attack needs").
			WithMeta("attack", input.Attack.Name())
	}

	toHitResult, err := toHitRoll.Roll(s.diceRoller)
	if err != nil {
		return nil, dhErr.Wrap(err, "failed to roll attack")
	}
	criticalHit := toHitResult.Critical() == dice.CriticalSuccess

	damageRoll := input.Attack.ToDamageRoll(
		strength, dexterity, criticalHit, character.MartialArtsDie)
	if damageRoll == nil {
		return nil, dhErr.MissingData("character is missing the ability scores this attack needs").
			WithMeta("attack", input.Attack.Name())
	}

	damageResult, err := damageRoll.Roll(s.diceRoller)
	if err != nil {
		return nil, dhErr.Wrap(err, "failed to roll damage")
	}

	return &RollAttackResult{
		AttackName:   input.Attack.Name(),
		Handedness:   input.Attack.Handedness(),
		ToHitRoll:    *toHitRoll,
		ToHitResult:  toHitResult,
		DamageRoll:   *damageRoll,
		DamageResult: damageResult,
	}, nil
}

func (s *service) SetAttribute(ctx context.Context, input *SetAttributeInput) (*SetAttributeResult, error) {
	if input == nil {
		return nil, dhErr.InvalidArgument("input cannot be nil")
	}
	if input.Update == nil {
		return nil, dhErr.InvalidArgument("update cannot be nil")
	}

	if err := s.characterRepo.SetAttribute(ctx, input.ChannelID, input.UserID, input.Update); err != nil {
		return nil, err
	}

	return &SetAttributeResult{
		Confirmation: input.Update.String(),
	}, nil
}

func (s *service) ShowAbilities(ctx context.Context, channelID, userID string) ([]*AbilityScore, error) {
	character, err := s.characterRepo.Get(ctx, channelID, userID)
	if err != nil {
		return nil, err
	}

	scores := make([]*AbilityScore, 0, len(entities.AbilityNames))
	for _, name := range entities.AbilityNames {
		scores = append(scores, &AbilityScore{
			Name:    name,
			Ability: character.Ability(name),
		})
	}
	return scores, nil
}

func (s *service) ShowSkills(ctx context.Context, channelID, userID string) ([]*SkillScore, error) {
	character, err := s.characterRepo.Get(ctx, channelID, userID)
	if err != nil {
		return nil, err
	}

	scores := make([]*SkillScore, 0, len(entities.SkillNames))
	for _, name := range entities.SkillNames {
		scores = append(scores, &SkillScore{
			Name:  name,
			Skill: character.Skill(name),
		})
	}
	return scores, nil
}

func (s *service) ShowWeaponProficiencies(ctx context.Context, channelID, userID string) ([]entities.WeaponProficiency, error) {
	return s.characterRepo.WeaponProficiencies(ctx, channelID, userID)
}

func (s *service) ListCharacters(ctx context.Context, channelID string) (map[string]*entities.Character, error) {
	return s.characterRepo.ListByChannel(ctx, channelID)
}

func abilityModifier(character *entities.Character, name entities.AbilityName) *int {
	ability := character.Ability(name)
	if ability == nil {
		return nil
	}
	modifier := ability.Modifier
	return &modifier
}
