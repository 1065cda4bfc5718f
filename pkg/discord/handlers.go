package discord

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/roadhogs/internal/logging"
	"github.com/fadedpez/roadhogs/pkg/entities"
	"github.com/google/uuid"
)

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("Bot is ready: %v#%v", s.State.User.Username, s.State.User.Discriminator)
}

func (b *Bot) handleInteractions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.markInteraction(i.ID) {
		log.Printf("Skipping already processed interaction: %s", i.ID)
		return
	}

	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "palladium":
		b.handlePalladiumCommand(s, i)
	case "rollstats":
		b.handleRollStatsCommand(s, i)
	default:
		log.Printf("Received unknown command: %s", i.ApplicationCommandData().Name)
	}
}

// markInteraction records an interaction as processed, reporting false when
// a gateway redelivery has already been handled
func (b *Bot) markInteraction(id string) bool {
	b.interactionMu.Lock()
	defer b.interactionMu.Unlock()

	if b.processedInteractions[id] {
		return false
	}
	b.processedInteractions[id] = true

	// Periodically clean up old interactions, keeping the one in flight
	if len(b.processedInteractions) > 100 && time.Since(b.lastCleanupTime) > 5*time.Minute {
		for old := range b.processedInteractions {
			if old != id {
				delete(b.processedInteractions, old)
			}
		}
		b.lastCleanupTime = time.Now()
	}

	return true
}

// handlePalladiumCommand generates a character sheet and posts it
func (b *Bot) handlePalladiumCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var name string
	for _, option := range i.ApplicationCommandData().Options {
		if option.Name == "name" {
			name = option.StringValue()
		}
	}

	sheet, err := b.generator.Generate(name)
	if err != nil {
		// A generation error means a table is broken; surface it to the
		// invoker instead of posting a wrong sheet
		logging.Default.LogError(err)
		respondWithError(s, i, "Character generation failed: "+err.Error())
		return
	}

	// Record the roll for channel statistics. A storage hiccup should not
	// eat the sheet the user asked for.
	record := &entities.RollRecord{
		ID:         uuid.NewString(),
		GuildID:    i.GuildID,
		ChannelID:  i.ChannelID,
		UserID:     interactionUserID(i),
		Animal:     sheet.Animal.Animal,
		Category:   sheet.Animal.Category,
		Background: sheet.Background.Name,
		RolledAt:   time.Now().UTC(),
	}
	if err := b.repo.SaveRoll(context.Background(), record); err != nil {
		logging.Default.Warn("Failed to save roll record: %v", err)
	}

	if err := respondWithSheet(s, i, sheet); err != nil {
		log.Printf("Error responding to palladium command: %v", err)
	}
}

// handleRollStatsCommand shows the channel's roll distribution
func (b *Bot) handleRollStatsCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	report, err := b.statistics.GetChannelReport(context.Background(), i.ChannelID)
	if err != nil {
		logging.Default.LogError(err)
		respondWithError(s, i, "Failed to get roll statistics: "+err.Error())
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{createStatsEmbed(report)},
		},
	})
	if err != nil {
		log.Printf("Error responding to rollstats command: %v", err)
	}
}

// interactionUserID works for both guild and DM invocations
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
