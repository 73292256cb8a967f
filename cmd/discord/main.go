package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/keshon/guild-clerk/internal/config"
	"github.com/keshon/guild-clerk/internal/discord"
	"github.com/keshon/guild-clerk/internal/storage"
	v "github.com/keshon/guild-clerk/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal("[ERR] ", err)
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal("[ERR] ", err)
	}

	bot := discord.New(cfg, store)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
		cancel()
		if err := <-errCh; err != nil {
			log.Println("[ERR] Discord bot error:", err)
			exitCode = 1
		}
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
			exitCode = 1
		}
		cancel()
	}

	if err := store.Close(); err != nil {
		log.Printf("[ERR] Failed to close storage: %v", err)
	}

	log.Println("[INFO] Discord bot exited")
	os.Exit(exitCode)
}
