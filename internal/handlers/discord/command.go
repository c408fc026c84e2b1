package discord

import (
	"regexp"
	"strings"

	"github.com/dungeonhelper/dungeon-helper/internal/dice"
	"github.com/dungeonhelper/dungeon-helper/internal/entities"
	"github.com/dungeonhelper/dungeon-helper/internal/entities/attack"
	dhErr "github.com/dungeonhelper/dungeon-helper/internal/errors"
	"github.com/dungeonhelper/dungeon-helper/internal/repositories/channels"
)

// Command is a resolved intent, ready to run against a channel and
// author. Shorthand messages produce the roll commands; the rest arrive
// through HandleCommand from whatever resolves natural language
// upstream.
type Command interface {
	// Description names the command for warning messages, e.g. "roll dice"
	Description() string

	// Private reports whether the command works in a direct message
	Private() bool
}

// HelpCommand asks for usage help. Shorthand selects the "!"-prefixed
// variant of the help text.
type HelpCommand struct {
	Shorthand bool
}

func (c HelpCommand) Description() string { return "ask for help" }
func (c HelpCommand) Private() bool       { return true }

// RollCommand rolls plain dice notation.
type RollCommand struct {
	Notation string
}

func (c RollCommand) Description() string { return "roll dice" }
func (c RollCommand) Private() bool       { return true }

// CheckCommand rolls an ability check, saving throw, skill check, or
// initiative using the author's character.
type CheckCommand struct {
	Roll entities.CharacterRoll
}

func (c CheckCommand) Description() string { return "roll a character check" }
func (c CheckCommand) Private() bool       { return false }

// AttackCommand rolls an attack using the author's character.
type AttackCommand struct {
	Attack attack.Roll
}

func (c AttackCommand) Description() string { return "roll an attack" }
func (c AttackCommand) Private() bool       { return false }

// ClarifyCommand asks the author to pick between weapons matched by an
// ambiguous name.
type ClarifyCommand struct {
	Text string
}

func (c ClarifyCommand) Description() string { return "roll an attack" }
func (c ClarifyCommand) Private() bool       { return false }

// SetCommand updates one attribute of the author's character.
type SetCommand struct {
	Update *entities.CharacterAttributeUpdate
}

func (c SetCommand) Description() string { return "set a character attribute" }
func (c SetCommand) Private() bool       { return false }

// SetChannelCommand updates one channel setting. Only administrators
// may run it.
type SetChannelCommand struct {
	Attribute channels.Attribute
	Value     bool
}

func (c SetChannelCommand) Description() string { return "change a channel setting" }
func (c SetChannelCommand) Private() bool       { return false }

// ShowAbilitiesCommand lists the author's character's abilities.
type ShowAbilitiesCommand struct{}

func (c ShowAbilitiesCommand) Description() string { return "show a character's abilities" }
func (c ShowAbilitiesCommand) Private() bool       { return false }

// ShowSkillsCommand lists the author's character's skills.
type ShowSkillsCommand struct{}

func (c ShowSkillsCommand) Description() string { return "show a character's skills" }
func (c ShowSkillsCommand) Private() bool       { return false }

// ShowWeaponProficienciesCommand lists the author's character's weapon
// proficiencies.
type ShowWeaponProficienciesCommand struct{}

func (c ShowWeaponProficienciesCommand) Description() string {
	return "show a character's weapon proficiencies"
}
func (c ShowWeaponProficienciesCommand) Private() bool { return false }

// ListCharactersCommand lists every character in the channel.
type ListCharactersCommand struct{}

func (c ListCharactersCommand) Description() string { return "list the channel's characters" }
func (c ListCharactersCommand) Private() bool       { return false }

// NewAttackCommand resolves a weapon name to an attack command. An
// ambiguous name like "sword" produces a clarification instead. The
// second return is false when the name matches no weapon at all.
func NewAttackCommand(weaponName string, classification *entities.Classification, condition dice.Condition, grip *attack.Handedness) (Command, bool) {
	if name, ok := entities.ParseWeaponName(weaponName); ok {
		return AttackCommand{Attack: attack.WeaponAttack{
			Weapon:         name,
			Classification: classification,
			Condition:      condition,
			Grip:           grip,
		}}, true
	}
	if ambiguous, ok := entities.ParseAmbiguousWeaponName(weaponName); ok {
		return ClarifyCommand{Text: ambiguous.Message()}, true
	}
	return nil, false
}

var shorthandRollRegex = regexp.MustCompile(`^!(?:r|roll)\s+(.+)$`)

// ParseShorthand recognizes the "!"-prefixed commands: "!help" and
// "!r"/"!roll" followed by dice notation or a check name. It returns
// nil when the message holds no shorthand command; a non-nil error
// means a shorthand roll was attempted but its argument did not parse.
func ParseShorthand(content string) (Command, error) {
	content = strings.TrimSpace(content)

	if strings.EqualFold(content, "!help") {
		return HelpCommand{Shorthand: true}, nil
	}

	matches := shorthandRollRegex.FindStringSubmatch(content)
	if matches == nil {
		return nil, nil
	}
	return parseRollArgument(matches[1])
}

// parseRollArgument tries dice notation first and falls back to the
// character check grammar.
func parseRollArgument(argument string) (Command, error) {
	argument = strings.TrimSpace(argument)

	_, err := dice.ParseRoll(argument)
	if err == nil {
		return RollCommand{Notation: argument}, nil
	}
	if dhErr.GetCode(err) != dice.CodeInvalidSyntax {
		// The argument looked like dice notation but its values are
		// out of range. Surface that rather than a parse failure.
		return nil, err
	}

	if characterRoll, ok := entities.ParseCharacterRoll(argument); ok {
		return CheckCommand{Roll: characterRoll}, nil
	}

	return nil, err
}
