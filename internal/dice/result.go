package dice

import (
	"fmt"
	"strings"
)

// Critical marks a natural 1 or natural 20 on a single d20.
type Critical int

const (
	CriticalNone Critical = iota
	CriticalSuccess
	CriticalFailure
)

// Number of individual die values shown in a result breakdown before
// truncation.
const maxShownDice = 10

// RollResult is the outcome of a single trial. A fresh value is produced on
// every evaluation.
type RollResult struct {
	Result   int
	Dice     []int
	Modifier int
	Critical Critical
}

// String renders the total, followed by a parenthesized per-die breakdown
// when more than one die was rolled or a modifier applies, e.g.
// "12 (4, 5, +3)". At most the first ten dice are listed.
func (r *RollResult) String() string {
	if len(r.Dice) <= 1 && r.Modifier == 0 {
		return fmt.Sprintf("%d", r.Result)
	}

	parts := make([]string, 0, len(r.Dice)+2)
	for i, die := range r.Dice {
		if i == maxShownDice {
			parts = append(parts, "…")
			break
		}
		parts = append(parts, fmt.Sprintf("%d", die))
	}
	if r.Modifier != 0 {
		parts = append(parts, fmt.Sprintf("%+d", r.Modifier))
	}
	return fmt.Sprintf("%d (%s)", r.Result, strings.Join(parts, ", "))
}

// ConditionalRollResult pairs the kept trial with the discarded one.
// Secondary is nil unless the roll was made with advantage or disadvantage.
type ConditionalRollResult struct {
	Primary   *RollResult
	Secondary *RollResult
}

// Critical reports the primary trial's critical flag.
func (r *ConditionalRollResult) Critical() Critical {
	return r.Primary.Critical
}

// String renders the primary result, and the discarded one struck through
// after a slash when present.
func (r *ConditionalRollResult) String() string {
	if r.Secondary == nil {
		return r.Primary.String()
	}
	return fmt.Sprintf("%s / ~~%s~~", r.Primary, r.Secondary)
}
