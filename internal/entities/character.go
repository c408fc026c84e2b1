package entities

import (
	"fmt"
	"strings"
)

// Character holds a player's base abilities and proficiencies for one
// Discord channel. Every attribute is optional until the player sets it,
// and derived values stay nil until everything they need is present.
type Character struct {
	Level           *int `json:"level,omitempty"`
	JackOfAllTrades bool `json:"jack_of_all_trades"`
	MartialArtsDie  *int `json:"martial_arts_die,omitempty"`

	// Abilities
	Strength     *int `json:"strength,omitempty"`
	Dexterity    *int `json:"dexterity,omitempty"`
	Constitution *int `json:"constitution,omitempty"`
	Intelligence *int `json:"intelligence,omitempty"`
	Wisdom       *int `json:"wisdom,omitempty"`
	Charisma     *int `json:"charisma,omitempty"`

	// Saving throws
	StrengthSavingProficiency     bool `json:"strength_saving_proficiency"`
	DexteritySavingProficiency    bool `json:"dexterity_saving_proficiency"`
	ConstitutionSavingProficiency bool `json:"constitution_saving_proficiency"`
	IntelligenceSavingProficiency bool `json:"intelligence_saving_proficiency"`
	WisdomSavingProficiency       bool `json:"wisdom_saving_proficiency"`
	CharismaSavingProficiency     bool `json:"charisma_saving_proficiency"`

	// Skills
	AcrobaticsProficiency     Proficiency `json:"acrobatics_proficiency"`
	AnimalHandlingProficiency Proficiency `json:"animal_handling_proficiency"`
	ArcanaProficiency         Proficiency `json:"arcana_proficiency"`
	AthleticsProficiency      Proficiency `json:"athletics_proficiency"`
	DeceptionProficiency      Proficiency `json:"deception_proficiency"`
	HistoryProficiency        Proficiency `json:"history_proficiency"`
	InsightProficiency        Proficiency `json:"insight_proficiency"`
	IntimidationProficiency   Proficiency `json:"intimidation_proficiency"`
	InvestigationProficiency  Proficiency `json:"investigation_proficiency"`
	MedicineProficiency       Proficiency `json:"medicine_proficiency"`
	NatureProficiency         Proficiency `json:"nature_proficiency"`
	PerceptionProficiency     Proficiency `json:"perception_proficiency"`
	PerformanceProficiency    Proficiency `json:"performance_proficiency"`
	PersuasionProficiency     Proficiency `json:"persuasion_proficiency"`
	ReligionProficiency       Proficiency `json:"religion_proficiency"`
	SleightOfHandProficiency  Proficiency `json:"sleight_of_hand_proficiency"`
	StealthProficiency        Proficiency `json:"stealth_proficiency"`
	SurvivalProficiency       Proficiency `json:"survival_proficiency"`
}

// Ability is an ability score with its derived modifier.
type Ability struct {
	Score    int
	Modifier int
}

// SavingThrow is a saving throw modifier with its proficiency flag.
type SavingThrow struct {
	Modifier   int
	Proficient bool
}

// Skill is a skill modifier with its proficiency tier.
type Skill struct {
	Modifier    int
	Proficiency Proficiency
}

// ProficiencyBonus is level/4 + 2, or nil when the level is unset.
func (c *Character) ProficiencyBonus() *int {
	if c.Level == nil {
		return nil
	}
	bonus := *c.Level/4 + 2
	return &bonus
}

// MartialArts reports whether the character fights with a martial arts
// damage die set.
func (c *Character) MartialArts() bool {
	return c.MartialArtsDie != nil
}

// abilityModifier floors (score - 10) / 2, so a score of 9 is -1.
func abilityModifier(score int) int {
	delta := score - 10
	if delta < 0 {
		return -((-delta + 1) / 2)
	}
	return delta / 2
}

func makeAbility(score *int) *Ability {
	if score == nil {
		return nil
	}
	return &Ability{
		Score:    *score,
		Modifier: abilityModifier(*score),
	}
}

// Ability returns the named ability, or nil when its score is unset.
func (c *Character) Ability(name AbilityName) *Ability {
	return makeAbility(c.abilityScore(name))
}

func (c *Character) abilityScore(name AbilityName) *int {
	switch name {
	case AbilityNameStrength:
		return c.Strength
	case AbilityNameDexterity:
		return c.Dexterity
	case AbilityNameConstitution:
		return c.Constitution
	case AbilityNameIntelligence:
		return c.Intelligence
	case AbilityNameWisdom:
		return c.Wisdom
	case AbilityNameCharisma:
		return c.Charisma
	default:
		return nil
	}
}

// PassiveAbility is 10 plus the ability modifier.
func (c *Character) PassiveAbility(name AbilityName) *int {
	ability := c.Ability(name)
	if ability == nil {
		return nil
	}
	passive := 10 + ability.Modifier
	return &passive
}

// SavingThrow returns the named saving throw. It requires both the
// ability score and the level, so an unset level yields nil even for
// non-proficient saves.
func (c *Character) SavingThrow(name AbilityName) *SavingThrow {
	ability := c.Ability(name)
	bonus := c.ProficiencyBonus()
	if ability == nil || bonus == nil {
		return nil
	}
	proficient := c.savingProficiency(name)
	modifier := ability.Modifier
	if proficient {
		modifier += *bonus
	}
	return &SavingThrow{
		Modifier:   modifier,
		Proficient: proficient,
	}
}

func (c *Character) savingProficiency(name AbilityName) bool {
	switch name {
	case AbilityNameStrength:
		return c.StrengthSavingProficiency
	case AbilityNameDexterity:
		return c.DexteritySavingProficiency
	case AbilityNameConstitution:
		return c.ConstitutionSavingProficiency
	case AbilityNameIntelligence:
		return c.IntelligenceSavingProficiency
	case AbilityNameWisdom:
		return c.WisdomSavingProficiency
	case AbilityNameCharisma:
		return c.CharismaSavingProficiency
	default:
		return false
	}
}

// Skill returns the named skill, or nil when its governing ability or
// the level is unset.
func (c *Character) Skill(name SkillName) *Skill {
	ability := c.Ability(name.Ability())
	bonus := c.ProficiencyBonus()
	if ability == nil || bonus == nil {
		return nil
	}
	proficiency := c.SkillProficiency(name)
	modifier := ability.Modifier
	switch proficiency {
	case ProficiencyNormal:
		if c.JackOfAllTrades {
			modifier += *bonus / 2
		}
	case ProficiencyProficient:
		modifier += *bonus
	case ProficiencyExpert:
		modifier += 2 * *bonus
	}
	return &Skill{
		Modifier:    modifier,
		Proficiency: proficiency,
	}
}

// PassiveSkill is 10 plus the skill modifier.
func (c *Character) PassiveSkill(name SkillName) *int {
	skill := c.Skill(name)
	if skill == nil {
		return nil
	}
	passive := 10 + skill.Modifier
	return &passive
}

// SkillProficiency returns the stored proficiency tier for a skill.
func (c *Character) SkillProficiency(name SkillName) Proficiency {
	switch name {
	case SkillNameAcrobatics:
		return c.AcrobaticsProficiency
	case SkillNameAnimalHandling:
		return c.AnimalHandlingProficiency
	case SkillNameArcana:
		return c.ArcanaProficiency
	case SkillNameAthletics:
		return c.AthleticsProficiency
	case SkillNameDeception:
		return c.DeceptionProficiency
	case SkillNameHistory:
		return c.HistoryProficiency
	case SkillNameInsight:
		return c.InsightProficiency
	case SkillNameIntimidation:
		return c.IntimidationProficiency
	case SkillNameInvestigation:
		return c.InvestigationProficiency
	case SkillNameMedicine:
		return c.MedicineProficiency
	case SkillNameNature:
		return c.NatureProficiency
	case SkillNamePerception:
		return c.PerceptionProficiency
	case SkillNamePerformance:
		return c.PerformanceProficiency
	case SkillNamePersuasion:
		return c.PersuasionProficiency
	case SkillNameReligion:
		return c.ReligionProficiency
	case SkillNameSleightOfHand:
		return c.SleightOfHandProficiency
	case SkillNameStealth:
		return c.StealthProficiency
	case SkillNameSurvival:
		return c.SurvivalProficiency
	default:
		return ProficiencyNormal
	}
}

// SetSkillProficiency stores a proficiency tier for a skill.
func (c *Character) SetSkillProficiency(name SkillName, proficiency Proficiency) {
	switch name {
	case SkillNameAcrobatics:
		c.AcrobaticsProficiency = proficiency
	case SkillNameAnimalHandling:
		c.AnimalHandlingProficiency = proficiency
	case SkillNameArcana:
		c.ArcanaProficiency = proficiency
	case SkillNameAthletics:
		c.AthleticsProficiency = proficiency
	case SkillNameDeception:
		c.DeceptionProficiency = proficiency
	case SkillNameHistory:
		c.HistoryProficiency = proficiency
	case SkillNameInsight:
		c.InsightProficiency = proficiency
	case SkillNameIntimidation:
		c.IntimidationProficiency = proficiency
	case SkillNameInvestigation:
		c.InvestigationProficiency = proficiency
	case SkillNameMedicine:
		c.MedicineProficiency = proficiency
	case SkillNameNature:
		c.NatureProficiency = proficiency
	case SkillNamePerception:
		c.PerceptionProficiency = proficiency
	case SkillNamePerformance:
		c.PerformanceProficiency = proficiency
	case SkillNamePersuasion:
		c.PersuasionProficiency = proficiency
	case SkillNameReligion:
		c.ReligionProficiency = proficiency
	case SkillNameSleightOfHand:
		c.SleightOfHandProficiency = proficiency
	case SkillNameStealth:
		c.StealthProficiency = proficiency
	case SkillNameSurvival:
		c.SurvivalProficiency = proficiency
	}
}

// SetAbilityScore stores an ability score.
func (c *Character) SetAbilityScore(name AbilityName, score int) {
	switch name {
	case AbilityNameStrength:
		c.Strength = &score
	case AbilityNameDexterity:
		c.Dexterity = &score
	case AbilityNameConstitution:
		c.Constitution = &score
	case AbilityNameIntelligence:
		c.Intelligence = &score
	case AbilityNameWisdom:
		c.Wisdom = &score
	case AbilityNameCharisma:
		c.Charisma = &score
	}
}

// SetSavingProficiency stores a saving throw proficiency flag.
func (c *Character) SetSavingProficiency(name AbilityName, proficient bool) {
	switch name {
	case AbilityNameStrength:
		c.StrengthSavingProficiency = proficient
	case AbilityNameDexterity:
		c.DexteritySavingProficiency = proficient
	case AbilityNameConstitution:
		c.ConstitutionSavingProficiency = proficient
	case AbilityNameIntelligence:
		c.IntelligenceSavingProficiency = proficient
	case AbilityNameWisdom:
		c.WisdomSavingProficiency = proficient
	case AbilityNameCharisma:
		c.CharismaSavingProficiency = proficient
	}
}

// Proficiency is a skill proficiency tier.
type Proficiency string

const (
	ProficiencyNormal     Proficiency = ""
	ProficiencyProficient Proficiency = "proficient"
	ProficiencyExpert     Proficiency = "expert"
)

// ParseProficiency matches a proficiency tier name, case-insensitively.
func ParseProficiency(s string) (Proficiency, bool) {
	switch strings.ToLower(s) {
	case "normal":
		return ProficiencyNormal, true
	case "proficient":
		return ProficiencyProficient, true
	case "expert":
		return ProficiencyExpert, true
	default:
		return ProficiencyNormal, false
	}
}

func (p Proficiency) String() string {
	switch p {
	case ProficiencyProficient:
		return "Proficient"
	case ProficiencyExpert:
		return "Expert"
	default:
		return "Normal"
	}
}

// AbilityName identifies one of the six abilities.
type AbilityName string

const (
	AbilityNameStrength     AbilityName = "strength"
	AbilityNameDexterity    AbilityName = "dexterity"
	AbilityNameConstitution AbilityName = "constitution"
	AbilityNameIntelligence AbilityName = "intelligence"
	AbilityNameWisdom       AbilityName = "wisdom"
	AbilityNameCharisma     AbilityName = "charisma"
)

// AbilityNames lists the abilities in display order.
var AbilityNames = []AbilityName{
	AbilityNameStrength,
	AbilityNameDexterity,
	AbilityNameConstitution,
	AbilityNameIntelligence,
	AbilityNameWisdom,
	AbilityNameCharisma,
}

// ParseAbilityName matches an ability name or its three-letter
// abbreviation, case-insensitively.
func ParseAbilityName(s string) (AbilityName, bool) {
	switch strings.ToLower(s) {
	case "str", "strength":
		return AbilityNameStrength, true
	case "dex", "dexterity":
		return AbilityNameDexterity, true
	case "con", "constitution":
		return AbilityNameConstitution, true
	case "int", "intelligence":
		return AbilityNameIntelligence, true
	case "wis", "wisdom":
		return AbilityNameWisdom, true
	case "cha", "charisma":
		return AbilityNameCharisma, true
	default:
		return "", false
	}
}

func (n AbilityName) String() string {
	switch n {
	case AbilityNameStrength:
		return "Strength"
	case AbilityNameDexterity:
		return "Dexterity"
	case AbilityNameConstitution:
		return "Constitution"
	case AbilityNameIntelligence:
		return "Intelligence"
	case AbilityNameWisdom:
		return "Wisdom"
	case AbilityNameCharisma:
		return "Charisma"
	default:
		return string(n)
	}
}

// SkillName identifies one of the eighteen skills.
type SkillName string

const (
	SkillNameAcrobatics     SkillName = "acrobatics"
	SkillNameAnimalHandling SkillName = "animal_handling"
	SkillNameArcana         SkillName = "arcana"
	SkillNameAthletics      SkillName = "athletics"
	SkillNameDeception      SkillName = "deception"
	SkillNameHistory        SkillName = "history"
	SkillNameInsight        SkillName = "insight"
	SkillNameIntimidation   SkillName = "intimidation"
	SkillNameInvestigation  SkillName = "investigation"
	SkillNameMedicine       SkillName = "medicine"
	SkillNameNature         SkillName = "nature"
	SkillNamePerception     SkillName = "perception"
	SkillNamePerformance    SkillName = "performance"
	SkillNamePersuasion     SkillName = "persuasion"
	SkillNameReligion       SkillName = "religion"
	SkillNameSleightOfHand  SkillName = "sleight_of_hand"
	SkillNameStealth        SkillName = "stealth"
	SkillNameSurvival       SkillName = "survival"
)

// SkillNames lists the skills in display order.
var SkillNames = []SkillName{
	SkillNameAcrobatics,
	SkillNameAnimalHandling,
	SkillNameArcana,
	SkillNameAthletics,
	SkillNameDeception,
	SkillNameHistory,
	SkillNameInsight,
	SkillNameIntimidation,
	SkillNameInvestigation,
	SkillNameMedicine,
	SkillNameNature,
	SkillNamePerception,
	SkillNamePerformance,
	SkillNamePersuasion,
	SkillNameReligion,
	SkillNameSleightOfHand,
	SkillNameStealth,
	SkillNameSurvival,
}

// ParseSkillName matches a skill name, case-insensitively. Multi-word
// skills use spaces ("animal handling", "sleight of hand").
func ParseSkillName(s string) (SkillName, bool) {
	switch strings.ToLower(s) {
	case "acrobatics":
		return SkillNameAcrobatics, true
	case "animal handling":
		return SkillNameAnimalHandling, true
	case "arcana":
		return SkillNameArcana, true
	case "athletics":
		return SkillNameAthletics, true
	case "deception":
		return SkillNameDeception, true
	case "history":
		return SkillNameHistory, true
	case "insight":
		return SkillNameInsight, true
	case "intimidation":
		return SkillNameIntimidation, true
	case "investigation":
		return SkillNameInvestigation, true
	case "medicine":
		return SkillNameMedicine, true
	case "nature":
		return SkillNameNature, true
	case "perception":
		return SkillNamePerception, true
	case "performance":
		return SkillNamePerformance, true
	case "persuasion":
		return SkillNamePersuasion, true
	case "religion":
		return SkillNameReligion, true
	case "sleight of hand":
		return SkillNameSleightOfHand, true
	case "stealth":
		return SkillNameStealth, true
	case "survival":
		return SkillNameSurvival, true
	default:
		return "", false
	}
}

func (n SkillName) String() string {
	switch n {
	case SkillNameAcrobatics:
		return "Acrobatics"
	case SkillNameAnimalHandling:
		return "Animal Handling"
	case SkillNameArcana:
		return "Arcana"
	case SkillNameAthletics:
		return "Athletics"
	case SkillNameDeception:
		return "Deception"
	case SkillNameHistory:
		return "History"
	case SkillNameInsight:
		return "Insight"
	case SkillNameIntimidation:
		return "Intimidation"
	case SkillNameInvestigation:
		return "Investigation"
	case SkillNameMedicine:
		return "Medicine"
	case SkillNameNature:
		return "Nature"
	case SkillNamePerception:
		return "Perception"
	case SkillNamePerformance:
		return "Performance"
	case SkillNamePersuasion:
		return "Persuasion"
	case SkillNameReligion:
		return "Religion"
	case SkillNameSleightOfHand:
		return "Sleight Of Hand"
	case SkillNameStealth:
		return "Stealth"
	case SkillNameSurvival:
		return "Survival"
	default:
		return string(n)
	}
}

// Ability returns the ability a skill keys off. Medicine keys off
// Intelligence here, not Wisdom.
func (n SkillName) Ability() AbilityName {
	switch n {
	case SkillNameAthletics:
		return AbilityNameStrength
	case SkillNameAcrobatics, SkillNameSleightOfHand, SkillNameStealth:
		return AbilityNameDexterity
	case SkillNameArcana, SkillNameHistory, SkillNameInvestigation,
		SkillNameMedicine, SkillNameNature, SkillNameReligion:
		return AbilityNameIntelligence
	case SkillNameAnimalHandling, SkillNameInsight, SkillNamePerception, SkillNameSurvival:
		return AbilityNameWisdom
	default:
		return AbilityNameCharisma
	}
}

// CharacterAttributeUpdate is one attribute assignment to apply to a
// character. Exactly one of the update kinds is set.
type CharacterAttributeUpdate struct {
	Ability                   *AbilityScoreUpdate
	Level                     *int
	JackOfAllTrades           *bool
	MartialArtsDie            *MartialArtsDieUpdate
	SavingThrowProficiency    *SavingThrowProficiencyUpdate
	SkillProficiency          *SkillProficiencyUpdate
	WeaponProficiency         *WeaponProficiencyUpdate
	WeaponCategoryProficiency *WeaponCategoryProficiencyUpdate
}

type AbilityScoreUpdate struct {
	Name  AbilityName
	Score int
}

// MartialArtsDieUpdate sets the martial arts damage die, or clears it
// when Die is nil.
type MartialArtsDieUpdate struct {
	Die *int
}

type SavingThrowProficiencyUpdate struct {
	Name       AbilityName
	Proficient bool
}

type SkillProficiencyUpdate struct {
	Name        SkillName
	Proficiency Proficiency
}

type WeaponProficiencyUpdate struct {
	Name       WeaponName
	Proficient bool
}

type WeaponCategoryProficiencyUpdate struct {
	Category   Category
	Proficient bool
}

func (u *CharacterAttributeUpdate) String() string {
	switch {
	case u.Ability != nil:
		return fmt.Sprintf("%s score = %d", u.Ability.Name, u.Ability.Score)
	case u.Level != nil:
		return fmt.Sprintf("Level = %d", *u.Level)
	case u.JackOfAllTrades != nil:
		return fmt.Sprintf("Jack of all trades = %s", yesNo(*u.JackOfAllTrades))
	case u.MartialArtsDie != nil:
		if u.MartialArtsDie.Die == nil {
			return "Martial arts die = None"
		}
		return fmt.Sprintf("Martial arts die = d%d", *u.MartialArtsDie.Die)
	case u.SavingThrowProficiency != nil:
		return fmt.Sprintf("%s saving throw = %s",
			u.SavingThrowProficiency.Name, proficientNormal(u.SavingThrowProficiency.Proficient))
	case u.SkillProficiency != nil:
		return fmt.Sprintf("%s = %s", u.SkillProficiency.Name, u.SkillProficiency.Proficiency)
	case u.WeaponProficiency != nil:
		return fmt.Sprintf("%s proficiency = %s",
			u.WeaponProficiency.Name, proficientNormal(u.WeaponProficiency.Proficient))
	case u.WeaponCategoryProficiency != nil:
		return fmt.Sprintf("%s weapon proficiency = %s",
			u.WeaponCategoryProficiency.Category, proficientNormal(u.WeaponCategoryProficiency.Proficient))
	default:
		return "no change"
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func proficientNormal(v bool) string {
	if v {
		return "Proficient"
	}
	return "Normal"
}
