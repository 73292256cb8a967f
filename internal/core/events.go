package core

import (
	"fmt"
	"log"

	"github.com/keshon/guild-clerk/internal/bot"
)

// EmitterTarget selects which event-emitting object a binding attaches to.
type EmitterTarget int

const (
	// EmitterClient binds through the gateway session's handler API.
	EmitterClient EmitterTarget = iota
	// EmitterSystem binds to the in-process system event bus.
	EmitterSystem
)

func (t EmitterTarget) String() string {
	switch t {
	case EmitterClient:
		return "client"
	case EmitterSystem:
		return "system"
	default:
		return fmt.Sprintf("emitter(%d)", int(t))
	}
}

// EventBinding declares one event handler. Client bindings supply a
// discordgo handler function via Client; system bindings supply System and
// the bus event type via Event. Disabled bindings load but never attach.
type EventBinding struct {
	Name     string
	Target   EmitterTarget
	Event    bot.SystemEventType
	Once     bool
	Disabled bool

	Client func(app *App) interface{}
	System func(app *App, evt bot.SystemEvent)
}

// BindEvents attaches every binding to its emitter. Targets are validated
// exhaustively; a malformed binding is fatal at startup, mirroring the
// module loader's failure policy.
func (a *App) BindEvents(bindings []EventBinding) error {
	for _, b := range bindings {
		if b.Disabled {
			log.Printf("[INFO] Event binding %q is disabled, skipping", b.Name)
			continue
		}
		switch b.Target {
		case EmitterClient:
			if b.Client == nil {
				return fmt.Errorf("bind events: %s: client binding has no handler", b.Name)
			}
			if a.session == nil {
				return fmt.Errorf("bind events: %s: no session attached", b.Name)
			}
			h := b.Client(a)
			if h == nil {
				return fmt.Errorf("bind events: %s: handler constructor returned nil", b.Name)
			}
			if b.Once {
				a.session.AddHandlerOnce(h)
			} else {
				a.session.AddHandler(h)
			}
		case EmitterSystem:
			if b.System == nil {
				return fmt.Errorf("bind events: %s: system binding has no handler", b.Name)
			}
			if b.Event == "" {
				return fmt.Errorf("bind events: %s: system binding has no event type", b.Name)
			}
			handler := b.System
			a.Bus.Subscribe(b.Event, b.Once, func(evt bot.SystemEvent) {
				handler(a, evt)
			})
		default:
			return fmt.Errorf("bind events: %s: unknown emitter target %s", b.Name, b.Target)
		}
	}
	return nil
}
