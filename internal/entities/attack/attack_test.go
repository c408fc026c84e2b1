package attack_test

import (
	"testing"

	"github.com/dungeonhelper/dungeon-helper/internal/dice"
	"github.com/dungeonhelper/dungeon-helper/internal/entities"
	"github.com/dungeonhelper/dungeon-helper/internal/entities/attack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func classificationPtr(c entities.Classification) *entities.Classification { return &c }

func gripPtr(h attack.Handedness) *attack.Handedness { return &h }

func requireAttack(t *testing.T, roll *dice.ConditionalRoll, modifier int, condition dice.Condition) {
	t.Helper()
	require.NotNil(t, roll)
	assert.Equal(t, 1, roll.Rolls())
	assert.Equal(t, 20, roll.Sides())
	assert.Equal(t, modifier, roll.Modifier())
	assert.Equal(t, condition, roll.Condition())
}

func requireDamage(t *testing.T, roll *dice.Roll, rolls, sides, modifier int) {
	t.Helper()
	require.NotNil(t, roll)
	assert.Equal(t, rolls, roll.Rolls())
	assert.Equal(t, sides, roll.Sides())
	assert.Equal(t, modifier, roll.Modifier())
}

func TestImprovisedWeapon(t *testing.T) {
	strength, dexterity := intPtr(2), intPtr(3)

	melee := attack.ImprovisedWeapon{Classification: entities.ClassificationMelee}
	requireAttack(t, melee.ToAttackRoll(strength, dexterity, nil, false, false), 2, dice.ConditionNormal)
	requireDamage(t, melee.ToDamageRoll(strength, dexterity, false, nil), 1, 4, 2)

	ranged := attack.ImprovisedWeapon{Classification: entities.ClassificationRanged}
	requireAttack(t, ranged.ToAttackRoll(strength, dexterity, nil, false, false), 3, dice.ConditionNormal)
	requireDamage(t, ranged.ToDamageRoll(strength, dexterity, false, nil), 1, 4, 3)

	assert.Equal(t, "improvised weapon (as Melee)", melee.Name())
	assert.Nil(t, melee.Handedness())
}

func TestImprovisedWeapon_CriticalHit(t *testing.T) {
	roll := attack.ImprovisedWeapon{Classification: entities.ClassificationMelee}
	requireDamage(t, roll.ToDamageRoll(intPtr(2), intPtr(3), true, nil), 2, 4, 2)
}

func TestImprovisedWeapon_Condition(t *testing.T) {
	roll := attack.ImprovisedWeapon{
		Classification: entities.ClassificationMelee,
		Condition:      dice.ConditionAdvantage,
	}
	requireAttack(t, roll.ToAttackRoll(intPtr(2), intPtr(3), nil, false, false), 2, dice.ConditionAdvantage)
}

func TestImprovisedWeapon_MissingAbility(t *testing.T) {
	melee := attack.ImprovisedWeapon{Classification: entities.ClassificationMelee}
	assert.Nil(t, melee.ToAttackRoll(nil, intPtr(3), nil, false, false))
	assert.Nil(t, melee.ToDamageRoll(nil, intPtr(3), false, nil))
}

func TestUnarmedStrike(t *testing.T) {
	roll := attack.UnarmedStrike{}
	strength, dexterity, bonus := intPtr(2), intPtr(4), intPtr(3)

	requireAttack(t, roll.ToAttackRoll(strength, dexterity, bonus, false, false), 5, dice.ConditionNormal)

	// Without martial arts the damage is a flat 1 + strength, with no
	// dice to double on a critical hit.
	requireDamage(t, roll.ToDamageRoll(strength, dexterity, false, nil), 0, 1, 3)
	requireDamage(t, roll.ToDamageRoll(strength, dexterity, true, nil), 0, 1, 3)
}

func TestUnarmedStrike_MartialArts(t *testing.T) {
	roll := attack.UnarmedStrike{}

	tests := []struct {
		name         string
		strength     int
		dexterity    int
		bonus        int
		die          int
		wantModifier int
	}{
		{name: "dexterity higher", strength: 2, dexterity: 4, bonus: 3, die: 6, wantModifier: 7},
		{name: "strength higher", strength: 4, dexterity: 2, bonus: 3, die: 6, wantModifier: 7},
		{name: "negative dexterity", strength: 3, dexterity: -1, bonus: 2, die: 4, wantModifier: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strength, dexterity := intPtr(tt.strength), intPtr(tt.dexterity)

			toHit := roll.ToAttackRoll(strength, dexterity, intPtr(tt.bonus), false, true)
			requireAttack(t, toHit, tt.wantModifier, dice.ConditionNormal)

			best := tt.strength
			if tt.dexterity > best {
				best = tt.dexterity
			}
			requireDamage(t, roll.ToDamageRoll(strength, dexterity, false, intPtr(tt.die)), 1, tt.die, best)
		})
	}
}

func TestUnarmedStrike_MissingAttributes(t *testing.T) {
	roll := attack.UnarmedStrike{}

	assert.Nil(t, roll.ToAttackRoll(nil, intPtr(2), intPtr(3), false, false), "strength required")
	assert.Nil(t, roll.ToDamageRoll(nil, intPtr(2), false, nil))
	assert.Nil(t, roll.ToAttackRoll(intPtr(2), intPtr(4), nil, false, false), "proficiency bonus required")
}

func TestWeaponAttack(t *testing.T) {
	strength, dexterity, bonus := intPtr(2), intPtr(3), intPtr(3)

	greatsword := attack.WeaponAttack{Weapon: entities.WeaponNameGreatsword}
	requireAttack(t, greatsword.ToAttackRoll(strength, dexterity, bonus, false, false), 2, dice.ConditionNormal)
	requireDamage(t, greatsword.ToDamageRoll(strength, dexterity, false, nil), 2, 6, 2)
	requireDamage(t, greatsword.ToDamageRoll(strength, dexterity, true, nil), 4, 6, 2)

	proficient := greatsword.ToAttackRoll(strength, dexterity, bonus, true, false)
	requireAttack(t, proficient, 5, dice.ConditionNormal)
}

func TestWeaponAttack_Finesse(t *testing.T) {
	strength, dexterity, bonus := intPtr(2), intPtr(3), intPtr(3)

	rapier := attack.WeaponAttack{Weapon: entities.WeaponNameRapier}
	requireAttack(t, rapier.ToAttackRoll(strength, dexterity, bonus, false, false), 3, dice.ConditionNormal)
	requireDamage(t, rapier.ToDamageRoll(strength, dexterity, false, nil), 1, 8, 3)
}

func TestWeaponAttack_Thrown(t *testing.T) {
	strength, dexterity, bonus := intPtr(2), intPtr(3), intPtr(3)

	// A thrown spear keeps strength and its own damage die.
	spear := attack.WeaponAttack{
		Weapon:         entities.WeaponNameSpear,
		Classification: classificationPtr(entities.ClassificationRanged),
	}
	requireAttack(t, spear.ToAttackRoll(strength, dexterity, bonus, false, false), 2, dice.ConditionNormal)
	requireDamage(t, spear.ToDamageRoll(strength, dexterity, false, nil), 1, 6, 2)

	// A hurled greatsword counts as improvised: dexterity only, no
	// proficiency, clamped 1d4 damage.
	greatsword := attack.WeaponAttack{
		Weapon:         entities.WeaponNameGreatsword,
		Classification: classificationPtr(entities.ClassificationRanged),
	}
	requireAttack(t, greatsword.ToAttackRoll(strength, dexterity, bonus, true, false), 3, dice.ConditionNormal)
	requireDamage(t, greatsword.ToDamageRoll(strength, dexterity, false, nil), 1, 4, 3)
}

func TestWeaponAttack_RangedUsedInMelee(t *testing.T) {
	strength, dexterity, bonus := intPtr(2), intPtr(3), intPtr(3)

	// A shortbow swung in melee counts as improvised: strength only.
	shortbow := attack.WeaponAttack{
		Weapon:         entities.WeaponNameShortbow,
		Classification: classificationPtr(entities.ClassificationMelee),
	}
	requireAttack(t, shortbow.ToAttackRoll(strength, dexterity, bonus, true, false), 2, dice.ConditionNormal)
	requireDamage(t, shortbow.ToDamageRoll(strength, dexterity, false, nil), 1, 4, 2)
}

func TestWeaponAttack_Longbow(t *testing.T) {
	strength, dexterity, bonus := intPtr(2), intPtr(3), intPtr(2)

	longbow := attack.WeaponAttack{Weapon: entities.WeaponNameLongbow}
	requireAttack(t, longbow.ToAttackRoll(strength, dexterity, bonus, true, false), 5, dice.ConditionNormal)
	requireDamage(t, longbow.ToDamageRoll(strength, dexterity, false, nil), 1, 8, 3)
}

func TestWeaponAttack_Versatile(t *testing.T) {
	strength, dexterity, bonus := intPtr(2), intPtr(-1), intPtr(2)

	oneHanded := attack.WeaponAttack{
		Weapon: entities.WeaponNameLongsword,
		Grip:   gripPtr(attack.OneHanded),
	}
	requireAttack(t, oneHanded.ToAttackRoll(strength, dexterity, bonus, true, false), 4, dice.ConditionNormal)
	requireDamage(t, oneHanded.ToDamageRoll(strength, dexterity, false, nil), 1, 8, 2)

	twoHanded := attack.WeaponAttack{
		Weapon: entities.WeaponNameLongsword,
		Grip:   gripPtr(attack.TwoHanded),
	}
	requireDamage(t, twoHanded.ToDamageRoll(strength, dexterity, false, nil), 1, 10, 2)

	spearTwoHanded := attack.WeaponAttack{
		Weapon: entities.WeaponNameSpear,
		Grip:   gripPtr(attack.TwoHanded),
	}
	requireDamage(t, spearTwoHanded.ToDamageRoll(intPtr(2), intPtr(3), false, nil), 1, 8, 2)
}

func TestWeaponAttack_MartialArts(t *testing.T) {
	bonus := intPtr(3)

	tests := []struct {
		name         string
		strength     int
		dexterity    int
		die          int
		wantModifier int
		wantSides    int
	}{
		{name: "die upgrades", strength: 2, dexterity: 3, die: 8, wantModifier: 6, wantSides: 8},
		{name: "die keeps weapon base", strength: 2, dexterity: 3, die: 4, wantModifier: 6, wantSides: 6},
		{name: "strength higher", strength: 2, dexterity: 1, die: 8, wantModifier: 5, wantSides: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strength, dexterity := intPtr(tt.strength), intPtr(tt.dexterity)

			shortsword := attack.WeaponAttack{Weapon: entities.WeaponNameShortsword}
			toHit := shortsword.ToAttackRoll(strength, dexterity, bonus, true, true)
			requireAttack(t, toHit, tt.wantModifier, dice.ConditionNormal)

			best := tt.strength
			if tt.dexterity > best {
				best = tt.dexterity
			}
			damage := shortsword.ToDamageRoll(strength, dexterity, false, intPtr(tt.die))
			requireDamage(t, damage, 1, tt.wantSides, best)
		})
	}
}

func TestWeaponAttack_MartialArtsNonMonkWeapon(t *testing.T) {
	strength, dexterity, bonus := intPtr(2), intPtr(3), intPtr(3)

	// A maul is not a monk weapon: martial arts changes nothing.
	maul := attack.WeaponAttack{Weapon: entities.WeaponNameMaul}
	requireAttack(t, maul.ToAttackRoll(strength, dexterity, bonus, true, true), 5, dice.ConditionNormal)
	requireDamage(t, maul.ToDamageRoll(strength, dexterity, false, intPtr(8)), 2, 6, 2)
}

func TestWeaponAttack_Name(t *testing.T) {
	plain := attack.WeaponAttack{Weapon: entities.WeaponNameLongsword}
	assert.Equal(t, "Longsword", plain.Name())

	thrown := attack.WeaponAttack{
		Weapon:         entities.WeaponNameSpear,
		Classification: classificationPtr(entities.ClassificationRanged),
	}
	assert.Equal(t, "Spear (as Ranged)", thrown.Name())
}

func TestWeaponAttack_Handedness(t *testing.T) {
	versatile := attack.WeaponAttack{
		Weapon: entities.WeaponNameLongsword,
		Grip:   gripPtr(attack.TwoHanded),
	}
	require.NotNil(t, versatile.Handedness())
	assert.Equal(t, attack.TwoHanded, *versatile.Handedness())

	// A grip on a non-versatile weapon means nothing.
	fixed := attack.WeaponAttack{
		Weapon: entities.WeaponNameGreatsword,
		Grip:   gripPtr(attack.TwoHanded),
	}
	assert.Nil(t, fixed.Handedness())
}

func TestParseHandedness(t *testing.T) {
	got, ok := attack.ParseHandedness("Two Handed")
	require.True(t, ok)
	assert.Equal(t, attack.TwoHanded, got)

	got, ok = attack.ParseHandedness("one handed")
	require.True(t, ok)
	assert.Equal(t, attack.OneHanded, got)

	_, ok = attack.ParseHandedness("ambidextrous")
	assert.False(t, ok)
}
