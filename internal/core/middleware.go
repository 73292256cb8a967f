package core

import (
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/keshon/guild-clerk/internal/storage"
)

// Middleware wraps a command's Run func with cross-cutting behavior.
type Middleware func(c *Command, next RunFunc) RunFunc

// ApplyMiddleware chains middlewares around a command's dispatch, first
// listed outermost. Subcommand routing happens inside the chain, so every
// gate applies to subcommand invocations too.
func ApplyMiddleware(c *Command, mws ...Middleware) RunFunc {
	run := c.Dispatch
	for i := len(mws) - 1; i >= 0; i-- {
		run = mws[i](c, run)
	}
	return run
}

// CooldownGate tracks one rate limiter per command+user pair. A command's
// Cooldown maps to rate.Every(cooldown) with burst 1: one invocation per
// window per user.
type CooldownGate struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewCooldownGate returns an empty gate.
func NewCooldownGate() *CooldownGate {
	return &CooldownGate{limiters: make(map[string]*rate.Limiter)}
}

// Allow reports whether a user may invoke a command now.
func (g *CooldownGate) Allow(commandName, userID string, cooldown time.Duration) bool {
	if cooldown <= 0 {
		return true
	}
	key := commandName + ":" + userID
	g.mu.Lock()
	lim, ok := g.limiters[key]
	if !ok {
		lim = rate.NewLimiter(rate.Every(cooldown), 1)
		g.limiters[key] = lim
	}
	g.mu.Unlock()
	return lim.Allow()
}

// WithCooldown gates a command behind its Cooldown duration per user.
func WithCooldown(gate *CooldownGate) Middleware {
	return func(c *Command, next RunFunc) RunFunc {
		return func(ctx *MessageContext) error {
			if !gate.Allow(c.Name, ctx.Event.Author.ID, c.Cooldown) {
				return fmt.Errorf("command `%s` is on cooldown, try again later", c.Name)
			}
			return next(ctx)
		}
	}
}

// WithStaffOnly blocks protected commands for anyone off the staff list.
func WithStaffOnly() Middleware {
	return func(c *Command, next RunFunc) RunFunc {
		return func(ctx *MessageContext) error {
			if c.Protected && !ctx.App.IsStaff(ctx.Event.Author.ID) {
				return fmt.Errorf("command `%s` is restricted to staff", c.Name)
			}
			return next(ctx)
		}
	}
}

// WithGuildOnly silently drops commands marked GuildOnly when they are
// invoked in DMs. Commands without the mark pass through untouched.
func WithGuildOnly() Middleware {
	return func(c *Command, next RunFunc) RunFunc {
		return func(ctx *MessageContext) error {
			if c.GuildOnly && ctx.Event.GuildID == "" {
				return nil
			}
			return next(ctx)
		}
	}
}

// WithCommandLog appends each guild invocation to the command history.
func WithCommandLog() Middleware {
	return func(c *Command, next RunFunc) RunFunc {
		return func(ctx *MessageContext) error {
			err := next(ctx)
			if ctx.Event.GuildID == "" || ctx.Storage == nil {
				return err
			}
			rec := storage.CommandHistoryRecord{
				ChannelID: ctx.Event.ChannelID,
				UserID:    ctx.Event.Author.ID,
				Username:  ctx.Event.Author.Username,
				Command:   c.Name,
				Args:      fmt.Sprint(ctx.Args),
				Datetime:  time.Now(),
			}
			if logErr := ctx.Storage.AppendCommandHistory(ctx.Event.GuildID, rec); logErr != nil {
				log.Printf("[WARN] Failed to log command %s: %v", c.Name, logErr)
			}
			return err
		}
	}
}
