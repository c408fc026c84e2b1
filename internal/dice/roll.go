package dice

import (
	"fmt"

	dhErr "github.com/dungeonhelper/dungeon-helper/internal/errors"
)

// Bounds for roll construction. Both the number of dice and the number of
// sides must fall in [1, 100].
const (
	MaxRolls = 100
	MaxSides = 100
)

// Validation error codes for roll construction.
const (
	CodeRollsNonPositive dhErr.Code = "rolls_non_positive"
	CodeRollsTooGreat    dhErr.Code = "rolls_too_great"
	CodeSidesNonPositive dhErr.Code = "sides_non_positive"
	CodeSidesTooGreat    dhErr.Code = "sides_too_great"
)

// Roll construction errors. Each carries a fixed user-facing message.
var (
	ErrRollsNonPositive = dhErr.New(CodeRollsNonPositive, "the number of dice to roll must be at least one")
	ErrRollsTooGreat    = dhErr.New(CodeRollsTooGreat, "the number of dice to roll must be at most one hundred")
	ErrSidesNonPositive = dhErr.New(CodeSidesNonPositive, "the dice must have at least one side")
	ErrSidesTooGreat    = dhErr.New(CodeSidesTooGreat, "the dice must have at most one hundred sides")
)

// Condition changes how a roll is evaluated: advantage rolls twice and keeps
// the higher total, disadvantage keeps the lower.
type Condition int

const (
	ConditionNormal Condition = iota
	ConditionAdvantage
	ConditionDisadvantage
)

// String returns the display suffix for the condition, empty for normal.
func (c Condition) String() string {
	switch c {
	case ConditionAdvantage:
		return "advantage"
	case ConditionDisadvantage:
		return "disadvantage"
	default:
		return ""
	}
}

// ParseCondition parses an advantage/disadvantage keyword, case-insensitivity
// being the caller's responsibility.
func ParseCondition(s string) (Condition, bool) {
	switch s {
	case "advantage":
		return ConditionAdvantage, true
	case "disadvantage":
		return ConditionDisadvantage, true
	case "":
		return ConditionNormal, true
	default:
		return ConditionNormal, false
	}
}

// Roll is an immutable dice expression: N dice of S sides plus a modifier.
type Roll struct {
	rolls    int
	sides    int
	modifier int
}

// NewRoll constructs a roll, validating bounds. Roll count is checked before
// side count.
func NewRoll(rolls, sides, modifier int) (Roll, error) {
	if rolls < 1 {
		return Roll{}, ErrRollsNonPositive
	}
	if rolls > MaxRolls {
		return Roll{}, ErrRollsTooGreat
	}
	if sides < 1 {
		return Roll{}, ErrSidesNonPositive
	}
	if sides > MaxSides {
		return Roll{}, ErrSidesTooGreat
	}
	return Roll{rolls: rolls, sides: sides, modifier: modifier}, nil
}

// NewRollUnsafe constructs a roll without validation. Only for arguments that
// are statically known to be valid, such as the weapon damage constants.
func NewRollUnsafe(rolls, sides, modifier int) Roll {
	return Roll{rolls: rolls, sides: sides, modifier: modifier}
}

// NewRollClamped constructs a roll, clamping out-of-range values into bounds
// instead of failing.
func NewRollClamped(rolls, sides, modifier int) Roll {
	return Roll{
		rolls:    clamp(rolls, 1, MaxRolls),
		sides:    clamp(sides, 1, MaxSides),
		modifier: modifier,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rolls returns the number of dice.
func (r Roll) Rolls() int { return r.rolls }

// Sides returns the number of sides per die.
func (r Roll) Sides() int { return r.sides }

// Modifier returns the flat modifier.
func (r Roll) Modifier() int { return r.modifier }

// MultiplyRolls returns a copy with the die count multiplied, used for
// critical-hit damage doubling.
func (r Roll) MultiplyRolls(multiplier int) Roll {
	return Roll{rolls: r.rolls * multiplier, sides: r.sides, modifier: r.modifier}
}

// AddModifier returns a copy with the modifier increased by the given amount.
func (r Roll) AddModifier(modifier int) Roll {
	return Roll{rolls: r.rolls, sides: r.sides, modifier: r.modifier + modifier}
}

// Roll draws one trial: exactly Rolls() samples in [1, Sides()], summed, plus
// the modifier. A critical is flagged only for a genuine 1d20 whose natural
// die shows 1 or 20.
func (r Roll) Roll(roller Roller) (*RollResult, error) {
	result, err := r.trial(roller)
	if err != nil {
		return nil, err
	}
	result.Critical = r.critical(result.Dice)
	return result, nil
}

func (r Roll) trial(roller Roller) (*RollResult, error) {
	dice := make([]int, r.rolls)
	total := 0
	for i := range dice {
		v, err := roller.Roll(r.sides)
		if err != nil {
			return nil, err
		}
		dice[i] = v
		total += v
	}
	return &RollResult{
		Result:   total + r.modifier,
		Dice:     dice,
		Modifier: r.modifier,
	}, nil
}

func (r Roll) critical(dice []int) Critical {
	if r.rolls != 1 || r.sides != 20 {
		return CriticalNone
	}
	switch dice[0] {
	case 1:
		return CriticalFailure
	case 20:
		return CriticalSuccess
	default:
		return CriticalNone
	}
}

// String renders the roll in conventional notation, e.g. "2d8 + 3".
func (r Roll) String() string {
	s := fmt.Sprintf("%dd%d", r.rolls, r.sides)
	if r.modifier > 0 {
		s += fmt.Sprintf(" + %d", r.modifier)
	} else if r.modifier < 0 {
		s += fmt.Sprintf(" - %d", -r.modifier)
	}
	return s
}

// ConditionalRoll is a roll evaluated under a condition. Advantage and
// disadvantage draw a second independent trial and keep one of the two.
type ConditionalRoll struct {
	roll      Roll
	condition Condition
}

// NewConditionalRoll constructs a conditional roll with validation.
func NewConditionalRoll(rolls, sides, modifier int, condition Condition) (ConditionalRoll, error) {
	roll, err := NewRoll(rolls, sides, modifier)
	if err != nil {
		return ConditionalRoll{}, err
	}
	return ConditionalRoll{roll: roll, condition: condition}, nil
}

// NewConditionalRollUnsafe constructs a conditional roll without validation.
// Only for statically-known-valid arguments.
func NewConditionalRollUnsafe(rolls, sides, modifier int, condition Condition) ConditionalRoll {
	return ConditionalRoll{roll: NewRollUnsafe(rolls, sides, modifier), condition: condition}
}

// Rolls returns the number of dice.
func (r ConditionalRoll) Rolls() int { return r.roll.rolls }

// Sides returns the number of sides per die.
func (r ConditionalRoll) Sides() int { return r.roll.sides }

// Modifier returns the flat modifier.
func (r ConditionalRoll) Modifier() int { return r.roll.modifier }

// Condition returns the roll's condition.
func (r ConditionalRoll) Condition() Condition { return r.condition }

// Roll evaluates the roll. Under advantage or disadvantage two independent
// trials are drawn, the primary trial is sampled first, and the discarded
// trial is returned as the secondary result. The discarded trial never flags
// a critical.
func (r ConditionalRoll) Roll(roller Roller) (*ConditionalRollResult, error) {
	first, err := r.roll.trial(roller)
	if err != nil {
		return nil, err
	}
	if r.condition == ConditionNormal {
		first.Critical = r.roll.critical(first.Dice)
		return &ConditionalRollResult{Primary: first}, nil
	}

	second, err := r.roll.trial(roller)
	if err != nil {
		return nil, err
	}

	primary, secondary := first, second
	if (r.condition == ConditionAdvantage && second.Result > first.Result) ||
		(r.condition == ConditionDisadvantage && second.Result < first.Result) {
		primary, secondary = second, first
	}
	primary.Critical = r.roll.critical(primary.Dice)
	return &ConditionalRollResult{Primary: primary, Secondary: secondary}, nil
}

// String renders the roll with its condition suffix, e.g.
// "3d4 - 2 with advantage".
func (r ConditionalRoll) String() string {
	s := r.roll.String()
	if r.condition != ConditionNormal {
		s += " with " + r.condition.String()
	}
	return s
}
