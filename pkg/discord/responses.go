package discord

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/roadhogs/pkg/entities"
	"github.com/fadedpez/roadhogs/pkg/services/statistics"
)

// Discord rejects messages over this length; a full sheet stays well under
const maxMessageLength = 2000

// interactionResponder is the slice of *discordgo.Session the response
// helpers need, so tests can stand in a fake
type interactionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// respondWithSheet posts the generated sheet as an embed, falling back to
// plain text when the embed response is rejected
func respondWithSheet(r interactionResponder, i *discordgo.InteractionCreate, sheet *entities.CharacterSheet) error {
	err := r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{createSheetEmbed(sheet)},
		},
	})
	if err == nil {
		return nil
	}

	log.Printf("Embed response failed, retrying as plain text: %v", err)
	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: RenderSheet(sheet),
		},
	})
}

// respondWithError sends an ephemeral error message to the invoker
func respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "❌ " + message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending error response: %v", err)
	}
}

// createSheetEmbed builds the message embed for a generated character
func createSheetEmbed(sheet *entities.CharacterSheet) *discordgo.MessageEmbed {
	title := "Road Hogs Character"
	if sheet.Name != "" {
		title = sheet.Name
	}

	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: 0xD2691E, // road-dust orange
	}

	var attrLines []string
	for _, attr := range sheet.Attributes {
		attrLines = append(attrLines, FormatAttributeLine(attr))
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:  "Attributes",
			Value: strings.Join(attrLines, "\n"),
		},
		&discordgo.MessageEmbedField{
			Name: "Animal Type",
			Value: fmt.Sprintf("%s (Category: %s; rolls %d/%d)",
				sheet.Animal.Animal, sheet.Animal.Category,
				sheet.Animal.CategoryRoll, sheet.Animal.AnimalRoll),
		},
		&discordgo.MessageEmbedField{
			Name:  "Mutant Background",
			Value: formatBackground(sheet.Background),
		},
	)

	return embed
}

// createStatsEmbed builds the message embed for a channel roll report
func createStatsEmbed(report *statistics.ChannelReport) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Channel Roll Statistics",
		Color: 0xD2691E,
	}

	if report.TotalRolls == 0 {
		embed.Description = "Nobody has rolled a character here yet. Try /palladium!"
		return embed
	}

	embed.Description = fmt.Sprintf("%d characters rolled", report.TotalRolls)

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:  "Mutant Backgrounds",
			Value: formatDistribution(report.Backgrounds),
		},
		&discordgo.MessageEmbedField{
			Name:  "Animal Categories",
			Value: formatDistribution(report.Categories),
		},
	)

	if !report.LastRolledAt.IsZero() {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: "Last roll: " + report.LastRolledAt.Format("2006-01-02 15:04 UTC"),
		}
	}

	return embed
}

// formatDistribution renders a sorted distribution one bucket per line
func formatDistribution(counts []statistics.Count) string {
	lines := make([]string, 0, len(counts))
	for _, count := range counts {
		lines = append(lines, fmt.Sprintf("%s: %d (%.0f%%)", count.Name, count.Rolls, count.Share))
	}
	return strings.Join(lines, "\n")
}

// FormatAttributeLine renders one attribute with its bonuses, ex
// "PE: 20 (Save vs Coma/Death +10%, Save vs Magic/Poison +3)"
func FormatAttributeLine(attr entities.Attribute) string {
	if len(attr.Bonuses) == 0 {
		return fmt.Sprintf("%s: %d", attr.ID, attr.Score)
	}

	parts := make([]string, 0, len(attr.Bonuses))
	for _, bonus := range attr.Bonuses {
		parts = append(parts, bonus.String())
	}
	return fmt.Sprintf("%s: %d (%s)", attr.ID, attr.Score, strings.Join(parts, ", "))
}

// RenderSheet formats a full character sheet as plain markdown text. Every
// attribute name and score always appears, whatever the rolls were.
func RenderSheet(sheet *entities.CharacterSheet) string {
	var lines []string

	if sheet.Name != "" {
		lines = append(lines, fmt.Sprintf("**%s**", sheet.Name))
	}

	lines = append(lines, "**Attributes**")
	for _, attr := range sheet.Attributes {
		lines = append(lines, FormatAttributeLine(attr))
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("**Animal Type**: %s (Category: %s; rolls %d/%d)",
		sheet.Animal.Animal, sheet.Animal.Category,
		sheet.Animal.CategoryRoll, sheet.Animal.AnimalRoll))

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("**Mutant Background**: %s (roll %d)",
		sheet.Background.Name, sheet.Background.Roll))
	if sheet.Background.Summary != "" {
		lines = append(lines, fmt.Sprintf("*%s*", sheet.Background.Summary))
	}

	return strings.Join(lines, "\n")
}

// formatBackground renders the background embed field body
func formatBackground(background entities.Background) string {
	value := fmt.Sprintf("%s (roll %d)", background.Name, background.Roll)
	if background.Summary != "" {
		value += "\n*" + background.Summary + "*"
	}
	return value
}
