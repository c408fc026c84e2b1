package entities_test

import (
	"testing"

	"github.com/dungeonhelper/dungeon-helper/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestCharacter_MartialArts(t *testing.T) {
	character := &entities.Character{}
	assert.False(t, character.MartialArts())

	character.MartialArtsDie = intPtr(6)
	assert.True(t, character.MartialArts())
}

func TestCharacter_ProficiencyBonus(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{level: 1, want: 2},
		{level: 4, want: 3},
		{level: 5, want: 3},
		{level: 8, want: 4},
		{level: 13, want: 5},
		{level: 17, want: 6},
		{level: 20, want: 7},
	}

	for _, tt := range tests {
		character := entities.Character{Level: intPtr(tt.level)}
		bonus := character.ProficiencyBonus()
		require.NotNil(t, bonus)
		assert.Equal(t, tt.want, *bonus, "level %d", tt.level)
	}

	assert.Nil(t, (&entities.Character{}).ProficiencyBonus())
}

func TestCharacter_Ability(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{score: 1, want: -5},
		{score: 8, want: -1},
		{score: 9, want: -1},
		{score: 10, want: 0},
		{score: 11, want: 0},
		{score: 12, want: 1},
		{score: 15, want: 2},
		{score: 20, want: 5},
	}

	for _, tt := range tests {
		character := entities.Character{Strength: intPtr(tt.score)}
		ability := character.Ability(entities.AbilityNameStrength)
		require.NotNil(t, ability)
		assert.Equal(t, tt.score, ability.Score)
		assert.Equal(t, tt.want, ability.Modifier, "score %d", tt.score)
	}

	assert.Nil(t, (&entities.Character{}).Ability(entities.AbilityNameStrength))
}

func TestCharacter_SavingThrow(t *testing.T) {
	character := entities.Character{
		Level:                      intPtr(5),
		Dexterity:                  intPtr(16),
		Wisdom:                     intPtr(12),
		DexteritySavingProficiency: true,
	}

	proficient := character.SavingThrow(entities.AbilityNameDexterity)
	require.NotNil(t, proficient)
	assert.Equal(t, 6, proficient.Modifier)
	assert.True(t, proficient.Proficient)

	plain := character.SavingThrow(entities.AbilityNameWisdom)
	require.NotNil(t, plain)
	assert.Equal(t, 1, plain.Modifier)
	assert.False(t, plain.Proficient)

	assert.Nil(t, character.SavingThrow(entities.AbilityNameCharisma), "missing ability")
}

func TestCharacter_SavingThrow_RequiresLevel(t *testing.T) {
	character := entities.Character{Dexterity: intPtr(16)}

	// Without a level there is no proficiency bonus, so even a
	// non-proficient save stays unknown.
	assert.Nil(t, character.SavingThrow(entities.AbilityNameDexterity))
}

func TestCharacter_Skill(t *testing.T) {
	character := entities.Character{
		Level:                 intPtr(5),
		Dexterity:             intPtr(16),
		Intelligence:          intPtr(8),
		StealthProficiency:    entities.ProficiencyProficient,
		AcrobaticsProficiency: entities.ProficiencyExpert,
	}

	stealth := character.Skill(entities.SkillNameStealth)
	require.NotNil(t, stealth)
	assert.Equal(t, 6, stealth.Modifier)
	assert.Equal(t, entities.ProficiencyProficient, stealth.Proficiency)

	acrobatics := character.Skill(entities.SkillNameAcrobatics)
	require.NotNil(t, acrobatics)
	assert.Equal(t, 9, acrobatics.Modifier)

	// Medicine keys off Intelligence.
	medicine := character.Skill(entities.SkillNameMedicine)
	require.NotNil(t, medicine)
	assert.Equal(t, -1, medicine.Modifier)

	assert.Nil(t, character.Skill(entities.SkillNamePersuasion), "missing ability")
}

func TestCharacter_Skill_JackOfAllTrades(t *testing.T) {
	character := entities.Character{
		Level:           intPtr(5),
		Dexterity:       intPtr(16),
		JackOfAllTrades: true,
	}

	// Half proficiency bonus, rounded down: 3 + 3/2 = 4.
	stealth := character.Skill(entities.SkillNameStealth)
	require.NotNil(t, stealth)
	assert.Equal(t, 4, stealth.Modifier)
}

func TestCharacter_Skill_RequiresLevel(t *testing.T) {
	character := entities.Character{Dexterity: intPtr(16)}
	assert.Nil(t, character.Skill(entities.SkillNameStealth))
}

func TestCharacter_PassiveScores(t *testing.T) {
	character := entities.Character{
		Level:                 intPtr(5),
		Wisdom:                intPtr(14),
		PerceptionProficiency: entities.ProficiencyProficient,
	}

	// 10 + wisdom modifier (+2) + proficiency bonus at level 5 (+3).
	passivePerception := character.PassiveSkill(entities.SkillNamePerception)
	require.NotNil(t, passivePerception)
	assert.Equal(t, 15, *passivePerception)

	passiveWisdom := character.PassiveAbility(entities.AbilityNameWisdom)
	require.NotNil(t, passiveWisdom)
	assert.Equal(t, 12, *passiveWisdom)

	assert.Nil(t, character.PassiveAbility(entities.AbilityNameCharisma))
}

func TestParseAbilityName(t *testing.T) {
	tests := []struct {
		input string
		want  entities.AbilityName
		ok    bool
	}{
		{input: "strength", want: entities.AbilityNameStrength, ok: true},
		{input: "STR", want: entities.AbilityNameStrength, ok: true},
		{input: "Dexterity", want: entities.AbilityNameDexterity, ok: true},
		{input: "cha", want: entities.AbilityNameCharisma, ok: true},
		{input: "luck", ok: false},
	}

	for _, tt := range tests {
		got, ok := entities.ParseAbilityName(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.input)
		}
	}
}

func TestParseSkillName(t *testing.T) {
	got, ok := entities.ParseSkillName("Sleight of Hand")
	require.True(t, ok)
	assert.Equal(t, entities.SkillNameSleightOfHand, got)

	got, ok = entities.ParseSkillName("animal handling")
	require.True(t, ok)
	assert.Equal(t, entities.SkillNameAnimalHandling, got)

	_, ok = entities.ParseSkillName("animal_handling")
	assert.False(t, ok, "underscores are not accepted in user input")

	_, ok = entities.ParseSkillName("juggling")
	assert.False(t, ok)
}

func TestSkillName_Ability(t *testing.T) {
	assert.Equal(t, entities.AbilityNameStrength, entities.SkillNameAthletics.Ability())
	assert.Equal(t, entities.AbilityNameDexterity, entities.SkillNameStealth.Ability())
	assert.Equal(t, entities.AbilityNameIntelligence, entities.SkillNameMedicine.Ability())
	assert.Equal(t, entities.AbilityNameWisdom, entities.SkillNamePerception.Ability())
	assert.Equal(t, entities.AbilityNameCharisma, entities.SkillNameDeception.Ability())
}

func TestParseProficiency(t *testing.T) {
	got, ok := entities.ParseProficiency("Expert")
	require.True(t, ok)
	assert.Equal(t, entities.ProficiencyExpert, got)

	got, ok = entities.ParseProficiency("normal")
	require.True(t, ok)
	assert.Equal(t, entities.ProficiencyNormal, got)

	_, ok = entities.ParseProficiency("master")
	assert.False(t, ok)
}

func TestCharacterAttributeUpdate_String(t *testing.T) {
	level := 5
	jack := true
	tests := []struct {
		name   string
		update entities.CharacterAttributeUpdate
		want   string
	}{
		{
			name:   "ability",
			update: entities.CharacterAttributeUpdate{Ability: &entities.AbilityScoreUpdate{Name: entities.AbilityNameStrength, Score: 14}},
			want:   "Strength score = 14",
		},
		{
			name:   "level",
			update: entities.CharacterAttributeUpdate{Level: &level},
			want:   "Level = 5",
		},
		{
			name:   "martial arts die",
			update: entities.CharacterAttributeUpdate{MartialArtsDie: &entities.MartialArtsDieUpdate{Die: intPtr(6)}},
			want:   "Martial arts die = d6",
		},
		{
			name:   "martial arts die cleared",
			update: entities.CharacterAttributeUpdate{MartialArtsDie: &entities.MartialArtsDieUpdate{}},
			want:   "Martial arts die = None",
		},
		{
			name:   "jack of all trades",
			update: entities.CharacterAttributeUpdate{JackOfAllTrades: &jack},
			want:   "Jack of all trades = Yes",
		},
		{
			name: "saving throw",
			update: entities.CharacterAttributeUpdate{
				SavingThrowProficiency: &entities.SavingThrowProficiencyUpdate{Name: entities.AbilityNameWisdom, Proficient: true},
			},
			want: "Wisdom saving throw = Proficient",
		},
		{
			name: "skill",
			update: entities.CharacterAttributeUpdate{
				SkillProficiency: &entities.SkillProficiencyUpdate{Name: entities.SkillNameStealth, Proficiency: entities.ProficiencyExpert},
			},
			want: "Stealth = Expert",
		},
		{
			name: "weapon",
			update: entities.CharacterAttributeUpdate{
				WeaponProficiency: &entities.WeaponProficiencyUpdate{Name: entities.WeaponNameLongsword, Proficient: true},
			},
			want: "Longsword proficiency = Proficient",
		},
		{
			name: "weapon category",
			update: entities.CharacterAttributeUpdate{
				WeaponCategoryProficiency: &entities.WeaponCategoryProficiencyUpdate{Category: entities.CategoryMartial, Proficient: false},
			},
			want: "Martial weapon proficiency = Normal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.update.String())
		})
	}
}
