package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/guild-clerk/internal/command"
	"github.com/keshon/guild-clerk/internal/config"
	"github.com/keshon/guild-clerk/internal/core"
	"github.com/keshon/guild-clerk/internal/events"
	"github.com/keshon/guild-clerk/internal/status"
	"github.com/keshon/guild-clerk/internal/storage"
)

// Bot owns the process-wide lifecycle: it composes the module and event
// loaders at startup, dispatches message commands at runtime, and runs
// the ordered teardown on shutdown.
type Bot struct {
	app    *core.App
	cfg    *config.Config
	store  *storage.Storage
	dg     *discordgo.Session
	gate   *core.CooldownGate
	status *status.Server
}

// New assembles a bot around its configuration and storage.
func New(cfg *config.Config, store *storage.Storage) *Bot {
	return &Bot{
		app:   core.NewApp(cfg, store),
		cfg:   cfg,
		store: store,
		gate:  core.NewCooldownGate(),
	}
}

// App exposes the application context, mainly for tests.
func (b *Bot) App() *core.App { return b.app }

// Run loads all modules and event bindings, opens the gateway, and blocks
// until ctx is cancelled. Loading happens before the session opens: the
// bot never announces readiness with a half-built registry, and any
// malformed module aborts startup.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg
	b.app.AttachSession(dg)
	dg.Identify.Intents = discordgo.IntentsAll

	if err := b.app.LoadModules(command.Modules()); err != nil {
		return err
	}
	if err := b.app.BindEvents(events.Bindings()); err != nil {
		return err
	}
	dg.AddHandler(b.onMessageCreate)

	go b.app.Bus.Run()

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	b.status = status.New(b.cfg.StatusAddr, b.app.Registry().Len)
	go b.status.Run()

	<-ctx.Done()
	log.Println("[INFO] Shutdown signal received. Cleaning up...")
	b.shutdown()
	return nil
}

// shutdown runs the ordered teardown: clear the registries, disconnect
// the gateway, then best-effort close the status listener. Failures are
// logged, never thrown, so shutdown always runs to the end. The storage
// handle is closed by the entry point after Run returns.
func (b *Bot) shutdown() {
	b.app.Registry().Clear()
	if err := b.dg.Close(); err != nil {
		log.Printf("[ERR] Failed to close gateway session: %v", err)
	}
	if b.status != nil {
		if err := b.status.Close(); err != nil {
			log.Printf("[ERR] Failed to close status server: %v", err)
		}
	}
	b.app.Bus.Close()
}
