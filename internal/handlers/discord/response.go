package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/dungeonhelper/dungeon-helper/internal/dice"
	"github.com/dungeonhelper/dungeon-helper/internal/entities"
	"github.com/dungeonhelper/dungeon-helper/internal/entities/attack"
	"github.com/dungeonhelper/dungeon-helper/internal/services/game"
)

// Response is a rendered reply. Author describes who triggered it, so
// embeds can carry their nick and avatar.
type Response interface {
	// ToMessage renders the response for the author
	ToMessage(author *Author) *discordgo.MessageSend

	// IsRoll reports whether the response shows a roll outcome; the
	// triggering message is deleted afterwards so the channel only
	// shows the result
	IsRoll() bool
}

// Author identifies the user a response replies to.
type Author struct {
	ID        string
	Nick      string
	AvatarURL string
}

// AttackRollResponse shows an attack's to-hit and damage results.
type AttackRollResponse struct {
	Result *game.RollAttackResult
}

func (r AttackRollResponse) IsRoll() bool { return true }

func (r AttackRollResponse) ToMessage(author *Author) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title: fmt.Sprintf("%s attacks%s using %s%s!",
				author.Nick,
				handednessMessage(r.Result.Handedness),
				r.Result.AttackName,
				conditionMessage(r.Result.ToHitRoll.Condition())),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Attack", Value: fmt.Sprintf("🛡️ %s", r.Result.ToHitResult), Inline: true},
				{Name: "Damage", Value: fmt.Sprintf("❤️ %s", r.Result.DamageResult), Inline: true},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Attack Roll: %s | Damage Roll: %s",
					r.Result.ToHitRoll, r.Result.DamageRoll),
			},
			Thumbnail: &discordgo.MessageEmbedThumbnail{URL: author.AvatarURL},
		}},
	}
}

// CheckRollResponse shows a character check's result.
type CheckRollResponse struct {
	Result *game.RollCheckResult
}

func (r CheckRollResponse) IsRoll() bool { return true }

func (r CheckRollResponse) ToMessage(author *Author) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title: fmt.Sprintf("%s rolls %s%s!",
				author.Nick, r.Result.Check, conditionMessage(r.Result.Roll.Condition())),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Result", Value: fmt.Sprintf("🎲 %s", r.Result.Result)},
			},
			Footer:    &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Roll: %s", r.Result.Roll)},
			Thumbnail: &discordgo.MessageEmbedThumbnail{URL: author.AvatarURL},
		}},
	}
}

// DiceRollResponse shows a plain dice roll's result.
type DiceRollResponse struct {
	Result *game.RollDiceResult
}

func (r DiceRollResponse) IsRoll() bool { return true }

func (r DiceRollResponse) ToMessage(author *Author) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title: fmt.Sprintf("%s rolls %s!", author.Nick, r.Result.Roll),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Result", Value: fmt.Sprintf("🎲 %s", r.Result.Result)},
			},
			Thumbnail: &discordgo.MessageEmbedThumbnail{URL: author.AvatarURL},
		}},
	}
}

// SheetResponse shows character data as a titled list.
type SheetResponse struct {
	Title string
	Lines []string
}

func (r SheetResponse) IsRoll() bool { return false }

func (r SheetResponse) ToMessage(author *Author) *discordgo.MessageSend {
	body := "_Nothing set yet._"
	if len(r.Lines) > 0 {
		body = strings.Join(r.Lines, "\n")
	}
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:     fmt.Sprintf("%s — %s", author.Nick, r.Title),
			Fields:    []*discordgo.MessageEmbedField{{Name: r.Title, Value: body}},
			Thumbnail: &discordgo.MessageEmbedThumbnail{URL: author.AvatarURL},
		}},
	}
}

// ClarificationResponse asks the author to restate an ambiguous command.
type ClarificationResponse struct {
	Text string
}

func (r ClarificationResponse) IsRoll() bool { return false }

func (r ClarificationResponse) ToMessage(author *Author) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: fmt.Sprintf("📎 <@%s> %s", author.ID, r.Text),
	}
}

// ErrorResponse reports a technical failure with a reference ID that
// can be matched against the logs.
type ErrorResponse struct {
	ReferenceID string
}

func (r ErrorResponse) IsRoll() bool { return false }

func (r ErrorResponse) ToMessage(author *Author) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: fmt.Sprintf("💥 <@%s> **Error:** A technical error has occurred. Reference ID: %s",
			author.ID, r.ReferenceID),
	}
}

// HelpResponse carries usage help.
type HelpResponse struct {
	Text string
}

func (r HelpResponse) IsRoll() bool { return false }

func (r HelpResponse) ToMessage(author *Author) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: fmt.Sprintf("🎱 <@%s> %s", author.ID, r.Text),
	}
}

// WarningResponse tells the author why their command did not run.
type WarningResponse struct {
	Text string
}

func (r WarningResponse) IsRoll() bool { return false }

func (r WarningResponse) ToMessage(author *Author) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: fmt.Sprintf("⚠️ <@%s> %s", author.ID, r.Text),
	}
}

// ConfirmationResponse acknowledges a successful update.
type ConfirmationResponse struct {
	Text string
}

func (r ConfirmationResponse) IsRoll() bool { return false }

func (r ConfirmationResponse) ToMessage(author *Author) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: fmt.Sprintf("✅ <@%s> %s", author.ID, r.Text),
	}
}

func conditionMessage(condition dice.Condition) string {
	switch condition {
	case dice.ConditionAdvantage:
		return " with advantage"
	case dice.ConditionDisadvantage:
		return " with disadvantage"
	default:
		return ""
	}
}

func handednessMessage(handedness *attack.Handedness) string {
	if handedness == nil {
		return ""
	}
	switch *handedness {
	case attack.OneHanded:
		return " one handed"
	case attack.TwoHanded:
		return " two handed"
	default:
		return ""
	}
}

func abilityLine(score *game.AbilityScore) string {
	if score.Ability == nil {
		return fmt.Sprintf("**%s**: not set", score.Name)
	}
	return fmt.Sprintf("**%s**: %d (%+d)", score.Name, score.Ability.Score, score.Ability.Modifier)
}

func skillLine(score *game.SkillScore) string {
	if score.Skill == nil {
		return fmt.Sprintf("**%s**: not set", score.Name)
	}
	suffix := ""
	switch score.Skill.Proficiency {
	case entities.ProficiencyProficient:
		suffix = " (proficient)"
	case entities.ProficiencyExpert:
		suffix = " (expert)"
	}
	return fmt.Sprintf("**%s**: %+d%s", score.Name, score.Skill.Modifier, suffix)
}
