package discord

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/roadhogs/pkg/dice"
	"github.com/fadedpez/roadhogs/pkg/repositories/roll"
	"github.com/fadedpez/roadhogs/pkg/services/generator"
	"github.com/fadedpez/roadhogs/pkg/services/statistics"
)

// Commands defines all slash commands for the bot
var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "palladium",
		Description: "Generate Palladium-style attributes + animal type + mutant background",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Optional character name to include at the top",
				Required:    false,
			},
		},
	},
	{
		Name:        "rollstats",
		Description: "See what this channel has been rolling",
	},
}

// Bot represents the Discord bot instance
type Bot struct {
	session *discordgo.Session
	token   string
	guildID string // commands register guild-scoped when set

	generator  *generator.Service
	statistics *statistics.Service
	repo       roll.Repository

	// Interaction tracking to prevent duplicates
	interactionMu         sync.RWMutex
	processedInteractions map[string]bool
	lastCleanupTime       time.Time
}

// NewBot creates a new instance of the bot
func NewBot(token, guildID string, repository roll.Repository) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	bot := &Bot{
		session:               session,
		token:                 token,
		guildID:               guildID,
		generator:             generator.NewService(dice.NewRoller()),
		statistics:            statistics.NewService(repository),
		repo:                  repository,
		processedInteractions: make(map[string]bool),
		lastCleanupTime:       time.Now(),
	}

	// Register handlers
	session.AddHandler(bot.handleReady)
	session.AddHandler(bot.handleInteractions)

	// Slash commands only need the guilds intent
	session.Identify.Intents = discordgo.IntentsGuilds

	return bot, nil
}

// Start connects to Discord and registers the slash commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	// Guild-scoped registration shows up immediately; global registration
	// can take up to an hour to propagate
	if b.guildID != "" {
		log.Printf("Registering commands for guild %s", b.guildID)
	} else {
		log.Printf("Registering commands globally (may take a while to appear)")
	}

	for _, command := range Commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.guildID, command)
		if err != nil {
			return fmt.Errorf("error creating command %s: %w", command.Name, err)
		}
		log.Printf("Registered command: /%s", command.Name)
	}

	return nil
}

// Stop gracefully shuts down the bot and closes the Discord connection
func (b *Bot) Stop() error {
	// Close repository
	if err := b.repo.Close(); err != nil {
		return fmt.Errorf("error closing repository: %w", err)
	}

	// Close websocket connection
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("error closing connection: %w", err)
	}

	return nil
}
