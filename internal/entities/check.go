package entities

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dungeonhelper/dungeon-helper/internal/dice"
)

// CheckKind distinguishes the four kinds of character check.
type CheckKind int

const (
	CheckKindAbility CheckKind = iota
	CheckKindInitiative
	CheckKindSavingThrow
	CheckKindSkill
)

// Check names a character check. Ability names Check.Ability for
// ability checks and saving throws; Check.Skill for skill checks.
type Check struct {
	Kind    CheckKind
	Ability AbilityName
	Skill   SkillName
}

var (
	characterRollRegex = regexp.MustCompile(`^(.*?)(?: with (advantage|disadvantage))?$`)
	savingThrowRegex   = regexp.MustCompile(`^(.*) saving throw$`)
)

// ParseCheck matches a check name: an ability, "initiative", a skill,
// or "<ability> saving throw".
func ParseCheck(s string) (Check, bool) {
	if ability, ok := ParseAbilityName(s); ok {
		return Check{Kind: CheckKindAbility, Ability: ability}, true
	}
	if strings.ToLower(s) == "initiative" {
		return Check{Kind: CheckKindInitiative}, true
	}
	if skill, ok := ParseSkillName(s); ok {
		return Check{Kind: CheckKindSkill, Skill: skill}, true
	}
	if matches := savingThrowRegex.FindStringSubmatch(s); matches != nil {
		if ability, ok := ParseAbilityName(matches[1]); ok {
			return Check{Kind: CheckKindSavingThrow, Ability: ability}, true
		}
	}
	return Check{}, false
}

func (c Check) String() string {
	switch c.Kind {
	case CheckKindAbility:
		return c.Ability.String()
	case CheckKindInitiative:
		return "Initiative"
	case CheckKindSavingThrow:
		return fmt.Sprintf("%s saving throw", c.Ability)
	case CheckKindSkill:
		return c.Skill.String()
	default:
		return ""
	}
}

// CharacterRoll is a check with an optional roll condition.
type CharacterRoll struct {
	Check     Check
	Condition dice.Condition
}

// ParseCharacterRoll matches "<check>" or "<check> with advantage" or
// "<check> with disadvantage".
func ParseCharacterRoll(s string) (CharacterRoll, bool) {
	matches := characterRollRegex.FindStringSubmatch(s)
	if matches == nil {
		return CharacterRoll{}, false
	}
	check, ok := ParseCheck(matches[1])
	if !ok {
		return CharacterRoll{}, false
	}
	condition, _ := dice.ParseCondition(matches[2])
	return CharacterRoll{Check: check, Condition: condition}, true
}

// ToRoll builds the d20 roll for this check against a character, or
// nil when the character is missing an attribute the check needs.
func (r CharacterRoll) ToRoll(character *Character) *dice.ConditionalRoll {
	var modifier int
	switch r.Check.Kind {
	case CheckKindAbility:
		ability := character.Ability(r.Check.Ability)
		if ability == nil {
			return nil
		}
		modifier = ability.Modifier
	case CheckKindInitiative:
		ability := character.Ability(AbilityNameDexterity)
		if ability == nil {
			return nil
		}
		modifier = ability.Modifier
	case CheckKindSavingThrow:
		savingThrow := character.SavingThrow(r.Check.Ability)
		if savingThrow == nil {
			return nil
		}
		modifier = savingThrow.Modifier
	case CheckKindSkill:
		skill := character.Skill(r.Check.Skill)
		if skill == nil {
			return nil
		}
		modifier = skill.Modifier
	default:
		return nil
	}
	roll := dice.NewConditionalRollUnsafe(1, 20, modifier, r.Condition)
	return &roll
}

func (r CharacterRoll) String() string {
	if s := r.Condition.String(); s != "" {
		return fmt.Sprintf("%s with %s", r.Check, s)
	}
	return r.Check.String()
}
