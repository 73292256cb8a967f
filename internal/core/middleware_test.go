package core

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

func testMessageContext(app *App, userID string) *MessageContext {
	return &MessageContext{
		Event: &discordgo.MessageCreate{Message: &discordgo.Message{
			Author:    &discordgo.User{ID: userID, Username: userID},
			ChannelID: "chan-1",
		}},
		App:     app,
		Storage: app.Storage,
	}
}

func TestWithCooldown(t *testing.T) {
	app := newTestApp(t)
	gate := NewCooldownGate()

	calls := 0
	c := &Command{
		Name:     "slow",
		Enabled:  true,
		Cooldown: time.Hour,
		Run:      func(*MessageContext) error { calls++; return nil },
	}
	run := ApplyMiddleware(c, WithCooldown(gate))

	if err := run(testMessageContext(app, "user-1")); err != nil {
		t.Fatalf("First invocation failed: %v", err)
	}
	if err := run(testMessageContext(app, "user-1")); err == nil {
		t.Error("Expected second invocation inside the window to be denied")
	}
	// A different user has their own limiter.
	if err := run(testMessageContext(app, "user-2")); err != nil {
		t.Errorf("Expected other user to pass, got %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected 2 executions, got %d", calls)
	}
}

func TestWithCooldownZeroNeverGates(t *testing.T) {
	app := newTestApp(t)
	gate := NewCooldownGate()
	c := &Command{Name: "fast", Enabled: true, Run: func(*MessageContext) error { return nil }}
	run := ApplyMiddleware(c, WithCooldown(gate))

	for i := 0; i < 5; i++ {
		if err := run(testMessageContext(app, "user-1")); err != nil {
			t.Fatalf("Invocation %d failed: %v", i, err)
		}
	}
}

func TestWithStaffOnly(t *testing.T) {
	app := newTestApp(t) // staff list contains staff-1

	c := &Command{
		Name:      "toggle",
		Enabled:   true,
		Protected: true,
		Run:       func(*MessageContext) error { return nil },
	}
	run := ApplyMiddleware(c, WithStaffOnly())

	if err := run(testMessageContext(app, "user-1")); err == nil {
		t.Error("Expected protected command to reject a non-staff caller")
	}
	if err := run(testMessageContext(app, "staff-1")); err != nil {
		t.Errorf("Expected staff caller to pass, got %v", err)
	}
}

func TestWithGuildOnly(t *testing.T) {
	app := newTestApp(t)
	calls := 0
	c := &Command{Name: "guildy", Enabled: true, GuildOnly: true, Run: func(*MessageContext) error { calls++; return nil }}
	run := ApplyMiddleware(c, WithGuildOnly())

	dm := testMessageContext(app, "user-1")
	if err := run(dm); err != nil {
		t.Fatalf("DM invocation errored: %v", err)
	}
	if calls != 0 {
		t.Error("Expected DM invocation to be dropped silently")
	}

	guild := testMessageContext(app, "user-1")
	guild.Event.GuildID = "guild-1"
	if err := run(guild); err != nil {
		t.Fatalf("Guild invocation failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected guild invocation to run, got %d calls", calls)
	}
}

func TestWithGuildOnlyIgnoresUnmarkedCommands(t *testing.T) {
	app := newTestApp(t)
	calls := 0
	c := &Command{Name: "anywhere", Enabled: true, Run: func(*MessageContext) error { calls++; return nil }}
	run := ApplyMiddleware(c, WithGuildOnly())

	if err := run(testMessageContext(app, "user-1")); err != nil {
		t.Fatalf("DM invocation failed: %v", err)
	}
	if calls != 1 {
		t.Error("Expected an unmarked command to run in DMs")
	}
}

func TestWithCommandLog(t *testing.T) {
	app := newTestApp(t)
	c := &Command{Name: "logged", Enabled: true, Run: func(*MessageContext) error { return nil }}
	run := ApplyMiddleware(c, WithCommandLog())

	ctx := testMessageContext(app, "user-1")
	ctx.Event.GuildID = "guild-1"
	ctx.Args = []string{"a", "b"}
	if err := run(ctx); err != nil {
		t.Fatalf("Invocation failed: %v", err)
	}

	history, err := app.Storage.GetCommandHistory("guild-1")
	if err != nil {
		t.Fatalf("GetCommandHistory failed: %v", err)
	}
	if len(history) != 1 || history[0].Command != "logged" {
		t.Errorf("Expected one history record for %q, got %+v", "logged", history)
	}
}
