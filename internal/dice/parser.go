package dice

import (
	"regexp"
	"strconv"
	"strings"

	dhErr "github.com/dungeonhelper/dungeon-helper/internal/errors"
)

// Parse error codes. Invalid syntax means the text did not match the grammar
// at all; invalid value means it matched but a bound was violated, and the
// wrapped error carries the specific bound.
const (
	CodeInvalidSyntax dhErr.Code = "invalid_syntax"
	CodeInvalidValue  dhErr.Code = "invalid_value"
)

// ErrInvalidSyntax is returned when the text does not match the dice
// notation grammar.
var ErrInvalidSyntax = dhErr.New(CodeInvalidSyntax, "dice rolls must look like \"2d8 + 3 with advantage\"")

// Grammar: <rolls>d<sides>[ (+|-) <modifier>][ with (advantage|disadvantage)]
var rollRegex = regexp.MustCompile(`^(\d+)d(\d+)(?:\s?([+-])\s?(\d+))?(?:\s+with\s+((?i:advantage|disadvantage)))?$`)

// ParseRoll parses conventional dice notation into a conditional roll.
// Syntactically valid but out-of-bounds values fail with an invalid-value
// error wrapping the specific bound violation, not with invalid syntax.
func ParseRoll(text string) (ConditionalRoll, error) {
	matches := rollRegex.FindStringSubmatch(text)
	if matches == nil {
		return ConditionalRoll{}, ErrInvalidSyntax
	}

	// The groups are all-digit, so Atoi can only fail on overflow; treat that
	// as a bound violation rather than a syntax error.
	rolls, err := strconv.Atoi(matches[1])
	if err != nil {
		return ConditionalRoll{}, dhErr.WrapWithCode(ErrRollsTooGreat, CodeInvalidValue, "dice values out of range")
	}
	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return ConditionalRoll{}, dhErr.WrapWithCode(ErrSidesTooGreat, CodeInvalidValue, "dice values out of range")
	}

	modifier := 0
	if matches[4] != "" {
		modifier, err = strconv.Atoi(matches[4])
		if err != nil {
			return ConditionalRoll{}, ErrInvalidSyntax
		}
		if matches[3] == "-" {
			modifier = -modifier
		}
	}

	condition, _ := ParseCondition(strings.ToLower(matches[5]))

	roll, err := NewConditionalRoll(rolls, sides, modifier, condition)
	if err != nil {
		return ConditionalRoll{}, dhErr.WrapWithCode(err, CodeInvalidValue, "dice values out of range")
	}
	return roll, nil
}
