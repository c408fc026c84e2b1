package entities

import (
	"fmt"
	"strings"

	"github.com/dungeonhelper/dungeon-helper/internal/dice"
)

// Weapon is one entry in the fixed weapon catalog.
type Weapon struct {
	Name           WeaponName
	Category       Category
	Classification Classification
	Damage         dice.Roll
	DamageType     DamageType
	TwoHanded      bool
	Thrown         bool
	Finesse        bool
	Versatile      *dice.Roll
	Heavy          bool
}

// IsMonkWeapon reports whether the weapon qualifies for martial arts.
// Shortswords qualify despite being martial.
func (w *Weapon) IsMonkWeapon() bool {
	return w.Name == WeaponNameShortsword ||
		(w.Category == CategorySimple &&
			w.Classification == ClassificationMelee &&
			!w.TwoHanded &&
			!w.Heavy)
}

// WeaponName identifies one of the catalog weapons.
type WeaponName string

const (
	WeaponNameBattleaxe     WeaponName = "battleaxe"
	WeaponNameClub          WeaponName = "club"
	WeaponNameCrossbowHand  WeaponName = "hand crossbow"
	WeaponNameCrossbowHeavy WeaponName = "heavy crossbow"
	WeaponNameCrossbowLight WeaponName = "light crossbow"
	WeaponNameDagger        WeaponName = "dagger"
	WeaponNameDart          WeaponName = "dart"
	WeaponNameFlail         WeaponName = "flail"
	WeaponNameGlaive        WeaponName = "glaive"
	WeaponNameGreataxe      WeaponName = "greataxe"
	WeaponNameGreatclub     WeaponName = "greatclub"
	WeaponNameGreatsword    WeaponName = "greatsword"
	WeaponNameHalberd       WeaponName = "halberd"
	WeaponNameHandaxe       WeaponName = "handaxe"
	WeaponNameJavelin       WeaponName = "javelin"
	WeaponNameLance         WeaponName = "lance"
	WeaponNameLightHammer   WeaponName = "light hammer"
	WeaponNameLongbow       WeaponName = "longbow"
	WeaponNameLongsword     WeaponName = "longsword"
	WeaponNameMace          WeaponName = "mace"
	WeaponNameMaul          WeaponName = "maul"
	WeaponNameMorningstar   WeaponName = "morningstar"
	WeaponNamePike          WeaponName = "pike"
	WeaponNameQuarterstaff  WeaponName = "quarterstaff"
	WeaponNameRapier        WeaponName = "rapier"
	WeaponNameScimitar      WeaponName = "scimitar"
	WeaponNameShortbow      WeaponName = "shortbow"
	WeaponNameShortsword    WeaponName = "shortsword"
	WeaponNameSickle        WeaponName = "sickle"
	WeaponNameSling         WeaponName = "sling"
	WeaponNameSpear         WeaponName = "spear"
	WeaponNameTrident       WeaponName = "trident"
	WeaponNameWarPick       WeaponName = "war pick"
	WeaponNameWarhammer     WeaponName = "warhammer"
	WeaponNameWhip          WeaponName = "whip"
)

// WeaponNames lists the catalog weapons in display order.
var WeaponNames = []WeaponName{
	WeaponNameBattleaxe,
	WeaponNameClub,
	WeaponNameCrossbowHand,
	WeaponNameCrossbowHeavy,
	WeaponNameCrossbowLight,
	WeaponNameDagger,
	WeaponNameDart,
	WeaponNameFlail,
	WeaponNameGlaive,
	WeaponNameGreataxe,
	WeaponNameGreatclub,
	WeaponNameGreatsword,
	WeaponNameHalberd,
	WeaponNameHandaxe,
	WeaponNameJavelin,
	WeaponNameLance,
	WeaponNameLightHammer,
	WeaponNameLongbow,
	WeaponNameLongsword,
	WeaponNameMace,
	WeaponNameMaul,
	WeaponNameMorningstar,
	WeaponNamePike,
	WeaponNameQuarterstaff,
	WeaponNameRapier,
	WeaponNameScimitar,
	WeaponNameShortbow,
	WeaponNameShortsword,
	WeaponNameSickle,
	WeaponNameSling,
	WeaponNameSpear,
	WeaponNameTrident,
	WeaponNameWarPick,
	WeaponNameWarhammer,
	WeaponNameWhip,
}

// ParseWeaponName matches a full weapon name, case-insensitively.
// Partial names like "crossbow" do not match; see ParseAmbiguousWeaponName.
func ParseWeaponName(s string) (WeaponName, bool) {
	name := WeaponName(strings.ToLower(s))
	if _, ok := catalog[name]; !ok {
		return "", false
	}
	return name, true
}

func (n WeaponName) String() string {
	switch n {
	case WeaponNameCrossbowHand:
		return "Hand Crossbow"
	case WeaponNameCrossbowHeavy:
		return "Heavy Crossbow"
	case WeaponNameCrossbowLight:
		return "Light Crossbow"
	case WeaponNameLightHammer:
		return "Light Hammer"
	case WeaponNameWarPick:
		return "War Pick"
	default:
		if n == "" {
			return ""
		}
		return strings.ToUpper(string(n[:1])) + string(n[1:])
	}
}

// Weapon looks the name up in the catalog. The second return is false
// for names outside the catalog.
func (n WeaponName) Weapon() (*Weapon, bool) {
	weapon, ok := catalog[n]
	return weapon, ok
}

// AmbiguousWeaponName is a partial weapon name that matches more than
// one catalog entry. Each carries a clarification message.
type AmbiguousWeaponName string

const (
	AmbiguousWeaponNameAxe      AmbiguousWeaponName = "axe"
	AmbiguousWeaponNameBow      AmbiguousWeaponName = "bow"
	AmbiguousWeaponNameCrossbow AmbiguousWeaponName = "crossbow"
	AmbiguousWeaponNameHammer   AmbiguousWeaponName = "hammer"
	AmbiguousWeaponNameSword    AmbiguousWeaponName = "sword"
)

// ParseAmbiguousWeaponName matches a known ambiguous partial name.
func ParseAmbiguousWeaponName(s string) (AmbiguousWeaponName, bool) {
	switch strings.ToLower(s) {
	case "axe":
		return AmbiguousWeaponNameAxe, true
	case "bow":
		return AmbiguousWeaponNameBow, true
	case "crossbow":
		return AmbiguousWeaponNameCrossbow, true
	case "hammer":
		return AmbiguousWeaponNameHammer, true
	case "sword":
		return AmbiguousWeaponNameSword, true
	default:
		return "", false
	}
}

func (n AmbiguousWeaponName) String() string {
	if n == "" {
		return ""
	}
	return strings.ToUpper(string(n[:1])) + string(n[1:])
}

// Message suggests the specific catalog names the partial name could mean.
func (n AmbiguousWeaponName) Message() string {
	switch n {
	case AmbiguousWeaponNameAxe:
		return `Try using a more specific weapon name, such as "Battleaxe", "Greataxe", or "Handaxe".`
	case AmbiguousWeaponNameBow:
		return `Try using a more specific weapon name, such as "Shortbow", or "Longbow".`
	case AmbiguousWeaponNameCrossbow:
		return `Try using a more specific weapon name, such as "Hand Crossbow", "Heavy Crossbow", or "Light Crossbow".`
	case AmbiguousWeaponNameHammer:
		return `Try using a more specific weapon name, such as "Light Hammer", or "Warhammer".`
	case AmbiguousWeaponNameSword:
		return `Try using a more specific weapon name, such as "Greatsword", "Longsword", or "Shortsword".`
	default:
		return ""
	}
}

// WeaponProficiency grants proficiency with either one weapon or a
// whole category. Exactly one field is set.
type WeaponProficiency struct {
	Name     *WeaponName
	Category *Category
}

func (p WeaponProficiency) String() string {
	switch {
	case p.Name != nil:
		return p.Name.String()
	case p.Category != nil:
		return fmt.Sprintf("%s weapons", p.Category)
	default:
		return ""
	}
}

// Category is a weapon proficiency category.
type Category string

const (
	CategorySimple  Category = "simple"
	CategoryMartial Category = "martial"
)

// ParseCategory matches a weapon category, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(s) {
	case "simple":
		return CategorySimple, true
	case "martial":
		return CategoryMartial, true
	default:
		return "", false
	}
}

func (c Category) String() string {
	switch c {
	case CategorySimple:
		return "Simple"
	case CategoryMartial:
		return "Martial"
	default:
		return string(c)
	}
}

// Classification says whether an attack is made in melee or at range.
type Classification string

const (
	ClassificationMelee  Classification = "melee"
	ClassificationRanged Classification = "ranged"
)

// ParseClassification matches an attack classification, case-insensitively.
func ParseClassification(s string) (Classification, bool) {
	switch strings.ToLower(s) {
	case "melee":
		return ClassificationMelee, true
	case "ranged":
		return ClassificationRanged, true
	default:
		return "", false
	}
}

func (c Classification) String() string {
	switch c {
	case ClassificationMelee:
		return "Melee"
	case ClassificationRanged:
		return "Ranged"
	default:
		return string(c)
	}
}

// DamageType is the kind of damage a weapon deals.
type DamageType string

const (
	DamageTypeBludgeoning DamageType = "bludgeoning"
	DamageTypePiercing    DamageType = "piercing"
	DamageTypeSlashing    DamageType = "slashing"
)

func (d DamageType) String() string {
	switch d {
	case DamageTypeBludgeoning:
		return "Bludgeoning"
	case DamageTypePiercing:
		return "Piercing"
	case DamageTypeSlashing:
		return "Slashing"
	default:
		return string(d)
	}
}

func versatile(rolls, sides int) *dice.Roll {
	roll := dice.NewRollUnsafe(rolls, sides, 0)
	return &roll
}

// catalog holds the weapon table. The heavy crossbow's melee
// classification and the Medicine skill's Intelligence key are
// long-standing quirks that saved data depends on.
var catalog = map[WeaponName]*Weapon{
	WeaponNameBattleaxe: {
		Name:           WeaponNameBattleaxe,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 8, 0),
		DamageType:     DamageTypeSlashing,
		Versatile:      versatile(1, 10),
	},
	WeaponNameClub: {
		Name:           WeaponNameClub,
		Category:       CategorySimple,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 4, 0),
		DamageType:     DamageTypeBludgeoning,
	},
	WeaponNameCrossbowHand: {
		Name:           WeaponNameCrossbowHand,
		Category:       CategoryMartial,
		Classification: ClassificationRanged,
		Damage:         dice.NewRollUnsafe(1, 6, 0),
		DamageType:     DamageTypePiercing,
	},
	WeaponNameCrossbowHeavy: {
		Name:           WeaponNameCrossbowHeavy,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 10, 0),
		DamageType:     DamageTypePiercing,
		TwoHanded:      true,
		Heavy:          true,
	},
	WeaponNameCrossbowLight: {
		Name:           WeaponNameCrossbowLight,
		Category:       CategorySimple,
		Classification: ClassificationRanged,
		Damage:         dice.NewRollUnsafe(1, 8, 0),
		DamageType:     DamageTypePiercing,
		TwoHanded:      true,
	},
	WeaponNameDagger: {
		Name:           WeaponNameDagger,
		Category:       CategorySimple,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 4, 0),
		DamageType:     DamageTypePiercing,
		Thrown:         true,
		Finesse:        true,
	},
	WeaponNameDart: {
		Name:           WeaponNameDart,
		Category:       CategorySimple,
		Classification: ClassificationRanged,
		Damage:         dice.NewRollUnsafe(1, 4, 0),
		DamageType:     DamageTypePiercing,
		Thrown:         true,
		Finesse:        true,
	},
	WeaponNameFlail: {
		Name:           WeaponNameFlail,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 8, 0),
		DamageType:     DamageTypeBludgeoning,
	},
	WeaponNameGlaive: {
		Name:           WeaponNameGlaive,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 10, 0),
		DamageType:     DamageTypeSlashing,
		TwoHanded:      true,
		Heavy:          true,
	},
	WeaponNameGreataxe: {
		Name:           WeaponNameGreataxe,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 12, 0),
		DamageType:     DamageTypeSlashing,
		TwoHanded:      true,
		Heavy:          true,
	},
	WeaponNameGreatclub: {
		Name:           WeaponNameGreatclub,
		Category:       CategorySimple,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 8, 0),
		DamageType:     DamageTypeBludgeoning,
		TwoHanded:      true,
	},
	WeaponNameGreatsword: {
		Name:           WeaponNameGreatsword,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(2, 6, 0),
		DamageType:     DamageTypeSlashing,
		TwoHanded:      true,
		Heavy:          true,
	},
	WeaponNameHalberd: {
		Name:           WeaponNameHalberd,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 10, 0),
		DamageType:     DamageTypeSlashing,
		TwoHanded:      true,
		Heavy:          true,
	},
	WeaponNameHandaxe: {
		Name:           WeaponNameHandaxe,
		Category:       CategorySimple,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 6, 0),
		DamageType:     DamageTypeSlashing,
		Thrown:         true,
	},
	WeaponNameJavelin: {
		Name:           WeaponNameJavelin,
		Category:       CategorySimple,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 6, 0),
		DamageType:     DamageTypePiercing,
		Thrown:         true,
	},
	WeaponNameLance: {
		Name:           WeaponNameLance,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 12, 0),
		DamageType:     DamageTypePiercing,
	},
	WeaponNameLightHammer: {
		Name:           WeaponNameLightHammer,
		Category:       CategorySimple,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 4, 0),
		DamageType:     DamageTypeBludgeoning,
		Thrown:         true,
	},
	WeaponNameLongbow: {
		Name:           WeaponNameLongbow,
		Category:       CategoryMartial,
		Classification: ClassificationRanged,
		Damage:         dice.NewRollUnsafe(1, 8, 0),
		DamageType:     DamageTypePiercing,
		TwoHanded:      true,
		Heavy:          true,
	},
	WeaponNameLongsword: {
		Name:           WeaponNameLongsword,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 8, 0),
		DamageType:     DamageTypeSlashing,
		TwoHanded:      true,
		Versatile:      versatile(1, 10),
	},
	WeaponNameMace: {
		Name:           WeaponNameMace,
		Category:       CategorySimple,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 6, 0),
		DamageType:     DamageTypeBludgeoning,
	},
	WeaponNameMaul: {
		Name:           WeaponNameMaul,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(2, 6, 0),
		DamageType:     DamageTypeBludgeoning,
		TwoHanded:      true,
		Heavy:          true,
	},
	WeaponNameMorningstar: {
		Name:           WeaponNameMorningstar,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 8, 0),
		DamageType:     DamageTypePiercing,
	},
	WeaponNamePike: {
		Name:           WeaponNamePike,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 10, 0),
		DamageType:     DamageTypePiercing,
		TwoHanded:      true,
		Heavy:          true,
	},
	WeaponNameQuarterstaff: {
		Name:           WeaponNameQuarterstaff,
		Category:       CategorySimple,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 6, 0),
		DamageType:     DamageTypeBludgeoning,
		Versatile:      versatile(1, 8),
	},
	WeaponNameRapier: {
		Name:           WeaponNameRapier,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 8, 0),
		DamageType:     DamageTypePiercing,
		Finesse:        true,
	},
	WeaponNameScimitar: {
		Name:           WeaponNameScimitar,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 6, 0),
		DamageType:     DamageTypeSlashing,
		Finesse:        true,
	},
	WeaponNameShortbow: {
		Name:           WeaponNameShortbow,
		Category:       CategorySimple,
		Classification: ClassificationRanged,
		Damage:         dice.NewRollUnsafe(1, 6, 0),
		DamageType:     DamageTypePiercing,
		TwoHanded:      true,
	},
	WeaponNameShortsword: {
		Name:           WeaponNameShortsword,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 6, 0),
		DamageType:     DamageTypePiercing,
		Finesse:        true,
	},
	WeaponNameSickle: {
		Name:           WeaponNameSickle,
		Category:       CategorySimple,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 4, 0),
		DamageType:     DamageTypeSlashing,
	},
	WeaponNameSling: {
		Name:           WeaponNameSling,
		Category:       CategorySimple,
		Classification: ClassificationRanged,
		Damage:         dice.NewRollUnsafe(1, 4, 0),
		DamageType:     DamageTypeBludgeoning,
	},
	WeaponNameSpear: {
		Name:           WeaponNameSpear,
		Category:       CategorySimple,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 6, 0),
		DamageType:     DamageTypePiercing,
		Thrown:         true,
		Versatile:      versatile(1, 8),
	},
	WeaponNameTrident: {
		Name:           WeaponNameTrident,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 6, 0),
		DamageType:     DamageTypePiercing,
		Thrown:         true,
		Versatile:      versatile(1, 8),
	},
	WeaponNameWarPick: {
		Name:           WeaponNameWarPick,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 8, 0),
		DamageType:     DamageTypePiercing,
	},
	WeaponNameWarhammer: {
		Name:           WeaponNameWarhammer,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 8, 0),
		DamageType:     DamageTypeBludgeoning,
		Versatile:      versatile(1, 10),
	},
	WeaponNameWhip: {
		Name:           WeaponNameWhip,
		Category:       CategoryMartial,
		Classification: ClassificationMelee,
		Damage:         dice.NewRollUnsafe(1, 4, 0),
		DamageType:     DamageTypeSlashing,
		Finesse:        true,
	},
}
