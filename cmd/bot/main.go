package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fadedpez/roadhogs/internal/config"
	"github.com/fadedpez/roadhogs/pkg/discord"
	"github.com/fadedpez/roadhogs/pkg/repositories/roll"
	"github.com/fadedpez/roadhogs/pkg/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Initialize repository
	var rollRepo roll.Repository

	if cfg.StorageType == "sqlite" {
		dbPath := filepath.Join(cfg.DataDir, "roadhogs.db")
		log.Printf("Initializing SQLite repository at %s", dbPath)
		sqliteRepo, err := roll.NewSQLiteRepository(dbPath)
		if err != nil {
			log.Printf("Failed to initialize SQLite repository: %v", err)
			log.Println("Falling back to in-memory repository")
			rollRepo = roll.NewMemoryRepository()
		} else {
			rollRepo = sqliteRepo
			log.Println("Successfully initialized SQLite repository for roll data")
		}
	} else {
		rollRepo = roll.NewMemoryRepository()
		log.Println("Using in-memory repository for roll data (counts reset on restart)")
	}

	// Optionally archive roll events to Elasticsearch
	sched := scheduler.NewScheduler()
	if cfg.ElasticsearchURL != "" {
		esConfig := roll.DefaultElasticsearchConfig()
		esConfig.URL = cfg.ElasticsearchURL
		esConfig.Username = cfg.ElasticsearchUsername
		esConfig.Password = cfg.ElasticsearchPassword

		archiver, err := roll.NewElasticsearchArchiver(rollRepo, esConfig)
		if err != nil {
			log.Printf("Failed to initialize Elasticsearch archiver: %v", err)
			log.Println("Continuing without roll archiving")
		} else {
			rollRepo = archiver
			sched.AddTask("flush-roll-archive", time.Minute, archiver.Flush)
			log.Printf("Archiving roll events to Elasticsearch at %s", cfg.ElasticsearchURL)
		}
	}

	// Create new bot instance with repository
	bot, err := discord.NewBot(cfg.Token, cfg.GuildID, rollRepo)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}

	sched.Start(context.Background())

	log.Println("Bot is running. Press Ctrl+C to exit")

	// Wait for interrupt signal to gracefully shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	// Cleanup and exit
	log.Println("Shutting down...")
	sched.Stop()
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}
}
