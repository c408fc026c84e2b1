// Package attack resolves attack and damage rolls for weapon attacks,
// unarmed strikes, and improvised weapons.
package attack

import (
	"fmt"
	"strings"

	"github.com/dungeonhelper/dungeon-helper/internal/dice"
	"github.com/dungeonhelper/dungeon-helper/internal/entities"
)

// Roll is one attack a character can make. The three implementations
// are ImprovisedWeapon, UnarmedStrike, and WeaponAttack.
//
// ToAttackRoll and ToDamageRoll return nil when the character is
// missing an ability or bonus the attack needs.
type Roll interface {
	// ToAttackRoll builds the d20 to-hit roll.
	ToAttackRoll(strength, dexterity, proficiencyBonus *int, proficient, martialArts bool) *dice.ConditionalRoll

	// ToDamageRoll builds the damage roll. martialArtsDie is the monk
	// damage die size, nil for non-monks.
	ToDamageRoll(strength, dexterity *int, criticalHit bool, martialArtsDie *int) *dice.Roll

	// Name describes the attack for display.
	Name() string

	// Handedness returns the grip for versatile weapons, nil otherwise.
	Handedness() *Handedness
}

// Handedness is the grip used on a versatile weapon.
type Handedness int

const (
	OneHanded Handedness = iota
	TwoHanded
)

// ParseHandedness matches "one handed" or "two handed", case-insensitively.
func ParseHandedness(s string) (Handedness, bool) {
	switch strings.ToLower(s) {
	case "one handed":
		return OneHanded, true
	case "two handed":
		return TwoHanded, true
	default:
		return OneHanded, false
	}
}

func (h Handedness) String() string {
	if h == TwoHanded {
		return "two handed"
	}
	return "one handed"
}

// ImprovisedWeapon is an attack with an object that is not a weapon.
// It always deals 1d4 and never adds a proficiency bonus.
type ImprovisedWeapon struct {
	Classification entities.Classification
	Condition      dice.Condition
}

func (a ImprovisedWeapon) ToAttackRoll(strength, dexterity, _ *int, _, _ bool) *dice.ConditionalRoll {
	modifier := a.modifier(strength, dexterity)
	if modifier == nil {
		return nil
	}
	roll := dice.NewConditionalRollUnsafe(1, 20, *modifier, a.Condition)
	return &roll
}

func (a ImprovisedWeapon) ToDamageRoll(strength, dexterity *int, criticalHit bool, _ *int) *dice.Roll {
	modifier := a.modifier(strength, dexterity)
	if modifier == nil {
		return nil
	}
	roll := dice.NewRollUnsafe(criticalHitMultiplier(criticalHit), 4, *modifier)
	return &roll
}

func (a ImprovisedWeapon) modifier(strength, dexterity *int) *int {
	if a.Classification == entities.ClassificationMelee {
		return strength
	}
	return dexterity
}

func (a ImprovisedWeapon) Name() string {
	return fmt.Sprintf("improvised weapon (as %s)", a.Classification)
}

func (a ImprovisedWeapon) Handedness() *Handedness { return nil }

// UnarmedStrike is a punch, kick, or similar. Without martial arts the
// damage is a flat 1 + strength modifier with no die.
type UnarmedStrike struct {
	Condition dice.Condition
}

func (a UnarmedStrike) ToAttackRoll(strength, dexterity, proficiencyBonus *int, _, martialArts bool) *dice.ConditionalRoll {
	var bonus *int
	if martialArts {
		bonus = martialArtsBonus(strength, dexterity)
	} else {
		bonus = strength
	}
	if bonus == nil || proficiencyBonus == nil {
		return nil
	}
	roll := dice.NewConditionalRollUnsafe(1, 20, *bonus+*proficiencyBonus, a.Condition)
	return &roll
}

func (a UnarmedStrike) ToDamageRoll(strength, dexterity *int, criticalHit bool, martialArtsDie *int) *dice.Roll {
	if martialArtsDie != nil {
		bonus := martialArtsBonus(strength, dexterity)
		if bonus == nil {
			return nil
		}
		roll := dice.NewRollUnsafe(criticalHitMultiplier(criticalHit), *martialArtsDie, *bonus)
		return &roll
	}
	if strength == nil {
		return nil
	}
	roll := dice.NewRollUnsafe(0, 1, *strength+1)
	return &roll
}

func (a UnarmedStrike) Name() string { return "unarmed strike" }

func (a UnarmedStrike) Handedness() *Handedness { return nil }

// martialArtsBonus is the better of strength and dexterity, falling
// back to whichever is set.
func martialArtsBonus(strength, dexterity *int) *int {
	switch {
	case strength != nil && dexterity != nil:
		return maxInt(strength, dexterity)
	case strength != nil:
		return strength
	case dexterity != nil:
		return dexterity
	default:
		return nil
	}
}

// WeaponAttack is an attack with a catalog weapon. Classification
// overrides the weapon's native classification; a mismatch the weapon
// cannot honor (a non-thrown melee weapon used at range, or a ranged
// weapon used in melee) downgrades the attack to improvised rules.
type WeaponAttack struct {
	Weapon         entities.WeaponName
	Classification *entities.Classification
	Condition      dice.Condition
	Grip           *Handedness
}

func (a WeaponAttack) ToAttackRoll(strength, dexterity, proficiencyBonus *int, proficient, martialArts bool) *dice.ConditionalRoll {
	modifier := a.attackModifier(strength, dexterity, proficiencyBonus, proficient, martialArts)
	if modifier == nil {
		return nil
	}
	roll := dice.NewConditionalRollUnsafe(1, 20, *modifier, a.Condition)
	return &roll
}

func (a WeaponAttack) ToDamageRoll(strength, dexterity *int, criticalHit bool, martialArtsDie *int) *dice.Roll {
	weapon, ok := a.Weapon.Weapon()
	if !ok {
		return nil
	}

	matched := a.Classification == nil ||
		*a.Classification == weapon.Classification ||
		(*a.Classification == entities.ClassificationRanged && weapon.Thrown)

	var roll dice.Roll
	if matched {
		base := weapon.Damage
		if weapon.Versatile != nil && a.Grip != nil && *a.Grip == TwoHanded {
			base = *weapon.Versatile
		}
		if martialArtsDie != nil && weapon.IsMonkWeapon() {
			sides := base.Sides()
			if *martialArtsDie > sides {
				sides = *martialArtsDie
			}
			roll = dice.NewRollClamped(base.Rolls(), sides, base.Modifier())
		} else {
			roll = base
		}
	} else {
		roll = dice.NewRollClamped(1, 4, 0)
	}

	modifier := a.damageModifier(strength, dexterity, martialArtsDie != nil)
	if modifier == nil {
		return nil
	}
	result := roll.MultiplyRolls(criticalHitMultiplier(criticalHit)).AddModifier(*modifier)
	return &result
}

func (a WeaponAttack) attackModifier(strength, dexterity, proficiencyBonus *int, proficient, martialArts bool) *int {
	weapon, ok := a.Weapon.Weapon()
	if !ok {
		return nil
	}

	var bonus *int
	if proficiencyBonus != nil {
		b := 0
		if proficient {
			b = *proficiencyBonus
		}
		bonus = &b
	}

	used := weapon.Classification
	if a.Classification != nil {
		used = *a.Classification
	}
	monk := martialArts && weapon.IsMonkWeapon()

	switch {
	// Use a melee weapon in melee, or throw a thrown melee weapon.
	case used == entities.ClassificationMelee && weapon.Classification == entities.ClassificationMelee && !weapon.Finesse && !monk,
		used == entities.ClassificationRanged && weapon.Classification == entities.ClassificationMelee && weapon.Thrown && !weapon.Finesse:
		return addPtr(strength, bonus)

	// Use a ranged weapon at range.
	case used == entities.ClassificationRanged && weapon.Classification == entities.ClassificationRanged && !monk:
		return addPtr(dexterity, bonus)

	// Monk weapons and finesse weapons take the better ability.
	case used == weapon.Classification && monk,
		used == entities.ClassificationMelee && weapon.Classification == entities.ClassificationMelee && weapon.Finesse,
		used == entities.ClassificationRanged && weapon.Classification == entities.ClassificationMelee && weapon.Thrown && weapon.Finesse:
		if strength == nil || dexterity == nil {
			return nil
		}
		return addPtr(maxInt(strength, dexterity), bonus)

	// A ranged weapon swung in melee counts as improvised.
	case used == entities.ClassificationMelee && weapon.Classification == entities.ClassificationRanged:
		return strength

	// A non-thrown melee weapon hurled at range counts as improvised.
	default:
		return dexterity
	}
}

func (a WeaponAttack) damageModifier(strength, dexterity *int, martialArts bool) *int {
	weapon, ok := a.Weapon.Weapon()
	if !ok {
		return nil
	}

	used := weapon.Classification
	if a.Classification != nil {
		used = *a.Classification
	}
	monk := martialArts && weapon.IsMonkWeapon()

	switch {
	case used == entities.ClassificationMelee && weapon.Classification == entities.ClassificationMelee && !weapon.Finesse && !monk,
		used == entities.ClassificationRanged && weapon.Classification == entities.ClassificationMelee && weapon.Thrown && !weapon.Finesse:
		return strength

	case used == entities.ClassificationRanged && weapon.Classification == entities.ClassificationRanged && !monk:
		return dexterity

	case used == weapon.Classification && monk,
		used == entities.ClassificationMelee && weapon.Classification == entities.ClassificationMelee && weapon.Finesse,
		used == entities.ClassificationRanged && weapon.Classification == entities.ClassificationMelee && weapon.Thrown && weapon.Finesse:
		if strength == nil || dexterity == nil {
			return nil
		}
		return maxInt(strength, dexterity)

	case used == entities.ClassificationMelee && weapon.Classification == entities.ClassificationRanged:
		return strength

	default:
		return dexterity
	}
}

func (a WeaponAttack) Name() string {
	if a.Classification != nil {
		return fmt.Sprintf("%s (as %s)", a.Weapon, *a.Classification)
	}
	return a.Weapon.String()
}

func (a WeaponAttack) Handedness() *Handedness {
	weapon, ok := a.Weapon.Weapon()
	if !ok || weapon.Versatile == nil {
		return nil
	}
	return a.Grip
}

func criticalHitMultiplier(criticalHit bool) int {
	if criticalHit {
		return 2
	}
	return 1
}

func addPtr(a, b *int) *int {
	if a == nil || b == nil {
		return nil
	}
	sum := *a + *b
	return &sum
}

func maxInt(a, b *int) *int {
	if *a >= *b {
		return a
	}
	return b
}
