package status

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/keshon/guild-clerk/internal/version"
)

// Server is a lightweight HTTP side-server exposing liveness and a small
// status document. It is started once the gateway is ready and closed
// best-effort during shutdown.
type Server struct {
	srv          *http.Server
	started      time.Time
	commandCount func() int
}

// New builds the status server. commandCount reports the live registry
// size for the status document.
func New(addr string, commandCount func() int) *Server {
	s := &Server{
		started:      time.Now(),
		commandCount: commandCount,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/status", s.handleStatus)

	s.srv = &http.Server{Addr: addr, Handler: mux}
	return s
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	doc := map[string]any{
		"app":      version.AppName,
		"version":  version.Version,
		"uptime":   time.Since(s.started).Round(time.Second).String(),
		"commands": s.commandCount(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		log.Printf("[WARN] Failed to write status document: %v", err)
	}
}

// Run serves until Close. Run in a goroutine; a listen failure is logged,
// not fatal; the bot keeps running without its status endpoint.
func (s *Server) Run() {
	log.Printf("[INFO] Status server listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("[ERR] Status server exited: %v", err)
	}
}

// Close shuts the listener down immediately.
func (s *Server) Close() error {
	return s.srv.Close()
}
