// Package api provides the HTTP API for observing a live run.
// GET endpoints are read-only projections of world state; the one POST
// endpoint talks to a character through the chat backend.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"riverside/internal/agent"
	"riverside/internal/convo"
	"riverside/internal/population"
	"riverside/internal/sim"
	"riverside/internal/world"
)

const defaultEventLimit = 50

// Server serves the world state over HTTP.
type Server struct {
	World *world.World
	Eng   *sim.Engine
	Pop   *population.Generator
	Convo *convo.Manager
	Port  int
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	// Chat consumes model inference; keep it rate limited per client.
	chatLimiter := NewRateLimiter(30, time.Hour)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/locations", s.handleLocations)
	mux.HandleFunc("/api/v1/agents", s.handleAgents)
	mux.HandleFunc("/api/v1/agent/", s.handleAgentRoutes(chatLimiter))
	mux.HandleFunc("/api/v1/events", s.handleEvents)
	mux.HandleFunc("/api/v1/population", s.handlePopulation)

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "chat", s.Convo.Enabled())

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	summary := s.World.Summary()
	writeJSON(w, map[string]any{
		"world":   summary,
		"step":    s.Eng.Step(),
		"speed":   s.Eng.Speed,
		"running": s.Eng.Running(),
	})
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.World.Locations())
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	principals, background := s.World.Roster()
	writeJSON(w, map[string]any{
		"principals": principals,
		"background": background,
	})
}

// handleAgentRoutes dispatches /api/v1/agent/{name} and
// /api/v1/agent/{name}/chat.
func (s *Server) handleAgentRoutes(chatLimiter *RateLimiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/v1/agent/")
		if chat := strings.TrimSuffix(path, "/chat"); chat != path {
			RateLimitMiddleware(chatLimiter, func(w http.ResponseWriter, r *http.Request) {
				s.handleChat(w, r, chat)
			})(w, r)
			return
		}
		s.handleAgentDetail(w, r, path)
	}
}

func (s *Server) handleAgentDetail(w http.ResponseWriter, r *http.Request, name string) {
	summary, ok := s.World.Snapshot(name)
	if !ok {
		http.Error(w, "agent not found", http.StatusNotFound)
		return
	}
	writeJSON(w, summary)
}

// handleChat runs the three conversation phases so the world lock is held
// for the prompt projection and the memory write-back, but not across the
// backend call.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.Convo.Enabled() {
		http.Error(w, "chat backend not configured", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		Message string `json:"message"`
		Context string `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		http.Error(w, "body must be JSON with a non-empty message", http.StatusBadRequest)
		return
	}

	var ex convo.Exchange
	found := s.World.WithAgent(name, func(a *agent.Agent, _ time.Time) {
		ex = s.Convo.Prepare(a, req.Context)
	})
	if !found {
		http.Error(w, "agent not found", http.StatusNotFound)
		return
	}

	text, err := s.Convo.Complete(r.Context(), ex, req.Message)
	if err != nil {
		slog.Warn("chat failed", "agent", name, "error", err)
		http.Error(w, "chat failed", http.StatusBadGateway)
		return
	}

	var reply convo.Reply
	s.World.WithAgent(name, func(a *agent.Agent, now time.Time) {
		reply = s.Convo.Commit(a, req.Message, text, now)
	})
	writeJSON(w, reply)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := defaultEventLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	events := s.World.Events()
	if len(events) > limit {
		events = events[len(events)-limit:]
	}
	writeJSON(w, events)
}

func (s *Server) handlePopulation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Pop.Summary())
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
