// Package discord wires Discord message events to the game service:
// it recognizes shorthand commands, applies channel settings, and
// renders results as embeds. Natural-language understanding happens
// upstream; resolved intents enter through HandleCommand.
package discord

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/dungeonhelper/dungeon-helper/internal/dice"
	dhErr "github.com/dungeonhelper/dungeon-helper/internal/errors"
	"github.com/dungeonhelper/dungeon-helper/internal/repositories/channels"
	"github.com/dungeonhelper/dungeon-helper/internal/services/game"
	"github.com/dungeonhelper/dungeon-helper/internal/uuid"
)

const characterNotFoundText = "Couldn't find any attributes for character. " +
	"Try setting some ability scores and a character level first."

const abilityNotSetText = "Couldn't find required ability scores for character. " +
	"Try setting some ability scores and a character level first."

const helpText = "Try typing the following:\n" +
	"• \"Roll three d8s\"\n" +
	"• \"Throw two twelve-sided dice\"\n" +
	"• \"Do a strength check with advantage\"\n" +
	"• \"Perform a wisdom saving throw\"\n" +
	"• \"Try a stealth roll with disadvantage\"\n" +
	"• \"Roll for initiative\"\n" +
	"There are also short-hand commands you can use. Type \"!help\" for more info."

const helpShorthandText = "Try typing the following:\n" +
	"• \"!r 3d8\"\n" +
	"• \"!r 2d12+3\"\n" +
	"• \"!r strength with advantage\"\n" +
	"• \"!r wisdom saving throw\"\n" +
	"• \"!r stealth with disadvantage\"\n" +
	"• \"!r initiative\"\n" +
	"There are also natural language commands you can use. Type \"help\" for more info."

const rollSyntaxText = "I didn't understand that roll. " +
	"Try \"!r 2d8 + 3\", \"!r stealth with disadvantage\", or \"!r dex saving throw\"."

// Handler handles Discord gateway events
type Handler struct {
	gameService game.Service
	channelRepo channels.Repository
	uuidGen     uuid.Generator
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	GameService       game.Service
	ChannelRepository channels.Repository
	UUIDGenerator     uuid.Generator
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil {
		panic("cfg is required")
	}
	if cfg.GameService == nil {
		panic("game service is required")
	}
	if cfg.ChannelRepository == nil {
		panic("channel repository is required")
	}

	h := &Handler{
		gameService: cfg.GameService,
		channelRepo: cfg.ChannelRepository,
		uuidGen:     cfg.UUIDGenerator,
	}

	if h.uuidGen == nil {
		h.uuidGen = uuid.NewGoogleUUIDGenerator()
	}

	return h
}

// Ready handles the gateway ready event
func (h *Handler) Ready(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("%s is connected", r.User.Username)
}

// MessageCreate handles an incoming message: it parses shorthand
// commands, applies the channel's settings, and replies with the
// rendered result. Roll results also delete the triggering message so
// the channel only shows the outcome.
func (h *Handler) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Never respond to ourselves or other bots, that way lies loops.
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	ctx := context.Background()
	isPrivate := m.GuildID == ""

	channel := h.getChannel(ctx, m.ChannelID)

	command, err := h.parseMessage(s, m, channel, isPrivate)
	if command == nil && err == nil {
		return
	}

	isAdmin := isPrivate || h.isAdmin(s, m)

	var response Response
	switch {
	case err != nil:
		response = WarningResponse{Text: rollSyntaxText}
	case !channel.Enabled && !isAdmin:
		log.Printf("ignoring command in disabled channel %s", m.ChannelID)
		return
	case isPrivate && !command.Private():
		response = WarningResponse{Text: fmt.Sprintf(
			"It looks like you're trying to %s. You can't do that in a private message.",
			command.Description())}
	default:
		response = h.runCommand(ctx, command, channel, isAdmin, m.ChannelID, m.Author.ID)
	}

	h.send(s, m, response)
}

// HandleCommand runs a resolved command for a channel and author and
// returns the rendered response. It is the entry point for intents
// resolved outside the shorthand syntax.
func (h *Handler) HandleCommand(ctx context.Context, command Command, channelID, userID string) Response {
	switch cmd := command.(type) {
	case HelpCommand:
		if cmd.Shorthand {
			return HelpResponse{Text: helpShorthandText}
		}
		return HelpResponse{Text: helpText}

	case RollCommand:
		result, err := h.gameService.RollDice(ctx, &game.RollDiceInput{Notation: cmd.Notation})
		if err != nil {
			return h.errorResponse(err)
		}
		return DiceRollResponse{Result: result}

	case CheckCommand:
		result, err := h.gameService.RollCheck(ctx, &game.RollCheckInput{
			ChannelID: channelID,
			UserID:    userID,
			Roll:      cmd.Roll,
		})
		if err != nil {
			return h.errorResponse(err)
		}
		return CheckRollResponse{Result: result}

	case AttackCommand:
		result, err := h.gameService.RollAttack(ctx, &game.RollAttackInput{
			ChannelID: channelID,
			UserID:    userID,
			Attack:    cmd.Attack,
		})
		if err != nil {
			return h.errorResponse(err)
		}
		return AttackRollResponse{Result: result}

	case ClarifyCommand:
		return ClarificationResponse{Text: cmd.Text}

	case SetCommand:
		result, err := h.gameService.SetAttribute(ctx, &game.SetAttributeInput{
			ChannelID: channelID,
			UserID:    userID,
			Update:    cmd.Update,
		})
		if err != nil {
			return h.errorResponse(err)
		}
		return ConfirmationResponse{Text: fmt.Sprintf("Set: %s", result.Confirmation)}

	case SetChannelCommand:
		if err := h.channelRepo.SetAttribute(ctx, channelID, cmd.Attribute, cmd.Value); err != nil {
			return h.errorResponse(err)
		}
		return ConfirmationResponse{Text: fmt.Sprintf("Set: %s = %s", cmd.Attribute, onOff(cmd.Value))}

	case ShowAbilitiesCommand:
		scores, err := h.gameService.ShowAbilities(ctx, channelID, userID)
		if err != nil {
			return h.errorResponse(err)
		}
		lines := make([]string, 0, len(scores))
		for _, score := range scores {
			lines = append(lines, abilityLine(score))
		}
		return SheetResponse{Title: "Abilities", Lines: lines}

	case ShowSkillsCommand:
		scores, err := h.gameService.ShowSkills(ctx, channelID, userID)
		if err != nil {
			return h.errorResponse(err)
		}
		lines := make([]string, 0, len(scores))
		for _, score := range scores {
			lines = append(lines, skillLine(score))
		}
		return SheetResponse{Title: "Skills", Lines: lines}

	case ShowWeaponProficienciesCommand:
		proficiencies, err := h.gameService.ShowWeaponProficiencies(ctx, channelID, userID)
		if err != nil {
			return h.errorResponse(err)
		}
		lines := make([]string, 0, len(proficiencies))
		for _, proficiency := range proficiencies {
			lines = append(lines, proficiency.String())
		}
		return SheetResponse{Title: "Weapon Proficiencies", Lines: lines}

	case ListCharactersCommand:
		characters, err := h.gameService.ListCharacters(ctx, channelID)
		if err != nil {
			return h.errorResponse(err)
		}
		userIDs := make([]string, 0, len(characters))
		for id := range characters {
			userIDs = append(userIDs, id)
		}
		sort.Strings(userIDs)
		lines := make([]string, 0, len(userIDs))
		for _, id := range userIDs {
			character := characters[id]
			if character.Level != nil {
				lines = append(lines, fmt.Sprintf("<@%s> — level %d", id, *character.Level))
			} else {
				lines = append(lines, fmt.Sprintf("<@%s> — level not set", id))
			}
		}
		return SheetResponse{Title: "Characters", Lines: lines}

	default:
		return h.errorResponse(dhErr.Internalf("unhandled command type %T", command))
	}
}

// runCommand applies channel gating that depends on the command kind,
// then delegates to HandleCommand.
func (h *Handler) runCommand(ctx context.Context, command Command, channel *channels.Channel, isAdmin bool, channelID, userID string) Response {
	switch command.(type) {
	case SetCommand:
		if channel.Locked && !isAdmin {
			return WarningResponse{Text: "Character attributes are locked in this channel."}
		}
	case SetChannelCommand:
		if !isAdmin {
			return WarningResponse{Text: "Only channel administrators can change channel settings."}
		}
	}
	return h.HandleCommand(ctx, command, channelID, userID)
}

// parseMessage extracts a command from a message. Bare "help" is only
// recognized when the bot is addressed, unless the channel is dice
// only or the message is private.
func (h *Handler) parseMessage(s *discordgo.Session, m *discordgo.MessageCreate, channel *channels.Channel, isPrivate bool) (Command, error) {
	content := strings.TrimSpace(m.Content)

	content, mentioned := stripMention(content, botID(s))
	if command, err := ParseShorthand(content); command != nil || err != nil {
		return command, err
	}

	addressed := mentioned || channel.DiceOnly || isPrivate
	if addressed && strings.EqualFold(content, "help") {
		return HelpCommand{}, nil
	}

	return nil, nil
}

func (h *Handler) errorResponse(err error) Response {
	switch {
	case dhErr.IsNotFound(err):
		return WarningResponse{Text: characterNotFoundText}
	case dhErr.IsMissingData(err):
		return WarningResponse{Text: abilityNotSetText}
	case dhErr.IsInvalidArgument(err), dhErr.IsValidation(err),
		dhErr.Is(err, dice.CodeInvalidSyntax), dhErr.Is(err, dice.CodeInvalidValue):
		return WarningResponse{Text: err.Error()}
	default:
		referenceID := h.uuidGen.New()
		log.Printf("error processing command, reference %s: %v", referenceID, err)
		return ErrorResponse{ReferenceID: referenceID}
	}
}

// getChannel loads the channel settings, treating lookup failures as a
// disabled channel.
func (h *Handler) getChannel(ctx context.Context, channelID string) *channels.Channel {
	channel, err := h.channelRepo.Get(ctx, channelID)
	if err != nil {
		log.Printf("error retrieving channel %s: %v", channelID, err)
		return &channels.Channel{}
	}
	return channel
}

func (h *Handler) isAdmin(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	permissions, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		return false
	}
	return permissions&discordgo.PermissionAdministrator != 0
}

func (h *Handler) send(s *discordgo.Session, m *discordgo.MessageCreate, response Response) {
	author := messageAuthor(m)
	if _, err := s.ChannelMessageSendComplex(m.ChannelID, response.ToMessage(author)); err != nil {
		log.Printf("error sending message to channel %s: %v", m.ChannelID, err)
		return
	}
	if response.IsRoll() {
		if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
			log.Printf("error deleting message %s: %v", m.ID, err)
		}
	}
}

func messageAuthor(m *discordgo.MessageCreate) *Author {
	nick := m.Author.Username
	if m.Member != nil && m.Member.Nick != "" {
		nick = m.Member.Nick
	}
	return &Author{
		ID:        m.Author.ID,
		Nick:      nick,
		AvatarURL: m.Author.AvatarURL(""),
	}
}

func botID(s *discordgo.Session) string {
	if s.State != nil && s.State.User != nil {
		return s.State.User.ID
	}
	return ""
}

// stripMention removes a leading mention of the bot.
func stripMention(content, id string) (string, bool) {
	if id == "" {
		return content, false
	}
	for _, prefix := range []string{"<@" + id + ">", "<@!" + id + ">"} {
		if strings.HasPrefix(content, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(content, prefix)), true
		}
	}
	return content, false
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
