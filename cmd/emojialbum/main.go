package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/susu3304/emojialbum/internal/album"
	"github.com/susu3304/emojialbum/internal/api"
	"github.com/susu3304/emojialbum/internal/bot"
	"github.com/susu3304/emojialbum/internal/catalog"
	"github.com/susu3304/emojialbum/internal/command"
	"github.com/susu3304/emojialbum/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load the emoji catalog; the bot cannot run without one
	emojis, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if emojis.Len() < cfg.DrawSize {
		log.Fatalf("Catalog has %d emojis, need at least %d for a roll", emojis.Len(), cfg.DrawSize)
	}
	log.Printf("Loaded %d emojis from %s", emojis.Len(), cfg.CatalogPath)

	// The ledger lives for the process lifetime and starts empty
	ledger := album.NewLedger()
	dispatcher := command.NewDispatcher(emojis, ledger, cfg.DrawSize)

	// Initialize Discord bot
	discordBot, err := bot.New(cfg.DiscordToken, dispatcher)
	if err != nil {
		log.Fatalf("Failed to create discord bot: %v", err)
	}

	// Initialize API server
	apiServer := api.New(cfg, emojis, ledger)

	// Start Discord bot
	if err := discordBot.Start(); err != nil {
		log.Fatalf("Failed to start discord bot: %v", err)
	}
	defer discordBot.Stop()

	// Start API server
	go func() {
		if err := apiServer.Start(); err != nil {
			log.Printf("API server error: %v", err)
		}
	}()

	// Wait for signal to stop
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
}
