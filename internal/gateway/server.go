// Package gateway exposes storefront build sessions over HTTP and
// WebSocket.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/threeonelabs/storebuilder/internal/builder"
	"github.com/threeonelabs/storebuilder/internal/catalog"
	"github.com/threeonelabs/storebuilder/internal/config"
	"github.com/threeonelabs/storebuilder/internal/domain"
	"github.com/threeonelabs/storebuilder/internal/enrich"
	"github.com/threeonelabs/storebuilder/internal/logging"
	"github.com/threeonelabs/storebuilder/internal/store"
)

// Server is the storebuilder HTTP + WebSocket server. It hydrates one
// builder session per session key from the agent store and saves after
// every mutation.
type Server struct {
	cfg      config.Config
	log      *logging.Logger
	agents   store.AgentStore
	enricher enrich.Enricher
	timeout  time.Duration

	mu       sync.Mutex
	sessions map[string]*hostSession

	httpServer *http.Server
	upgrader   websocket.Upgrader
}

// hostSession pairs a builder session with the lock that serializes its
// turns. Builder sessions accept one turn at a time; concurrent REST
// handlers and the WebSocket loop for the same key all go through this
// wrapper.
type hostSession struct {
	mu   sync.Mutex
	sess *builder.Session
}

// ServerOption configures the gateway server.
type ServerOption func(*Server)

// WithEnricher enables LLM reply decoration.
func WithEnricher(e enrich.Enricher, timeout time.Duration) ServerOption {
	return func(s *Server) {
		s.enricher = e
		s.timeout = timeout
	}
}

// New creates a gateway server over the given agent store.
func New(cfg config.Config, agents store.AgentStore, log *logging.Logger, opts ...ServerOption) *Server {
	s := &Server{
		cfg:      cfg,
		log:      log.Sub("gateway"),
		agents:   agents,
		timeout:  enrich.DefaultTimeout,
		sessions: make(map[string]*hostSession),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Build sessions carry no credentials; any origin may connect.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// resolveBindAddr computes the listen address from config.
func resolveBindAddr(cfg config.GatewayConfig) string {
	switch cfg.Bind {
	case "lan":
		return fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	default:
		return fmt.Sprintf("127.0.0.1:%d", cfg.Port)
	}
}

// Start begins listening. It blocks until the context is cancelled or an
// error occurs.
func (s *Server) Start(ctx context.Context) error {
	addr := resolveBindAddr(s.cfg.Gateway)

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		BaseContext:  func(l net.Listener) context.Context { return ctx },
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.log.Info().
		Str("addr", ln.Addr().String()).
		Str("bind", s.cfg.Gateway.Bind).
		Msg("gateway server ready")

	go func() {
		<-ctx.Done()
		s.log.Info().Msg("shutting down gateway server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr returns the server's listen address, or empty string if not started.
func (s *Server) Addr() string {
	if s.httpServer != nil {
		return s.httpServer.Addr
	}
	return ""
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	mux.HandleFunc("GET /agents", s.handleListAgents)
	mux.HandleFunc("GET /sessions/{key}", s.handleGetSession)
	mux.HandleFunc("POST /sessions/{key}/turn", s.handleTurn)
	mux.HandleFunc("POST /sessions/{key}/reset", s.handleReset)
	mux.HandleFunc("POST /sessions/{key}/products", s.handleUpsertProduct)
	mux.HandleFunc("DELETE /sessions/{key}/products/{id}", s.handleDeleteProduct)
	mux.HandleFunc("/", handleNotFound)
}

// sessionFor returns the live session for key, hydrating it from the
// store on first use.
func (s *Server) sessionFor(key string) (*hostSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hs, ok := s.sessions[key]; ok {
		return hs, nil
	}

	var (
		profile    domain.AgentProfile
		transcript []domain.Turn
	)
	saved, err := s.agents.Load(key)
	switch {
	case err == nil:
		profile = saved.Profile
		transcript = saved.Transcript
	case errors.Is(err, store.ErrNotFound):
		// fresh session
	default:
		return nil, err
	}

	hs := &hostSession{sess: builder.NewSession(profile, transcript, s.log)}
	s.sessions[key] = hs

	if err := s.agents.Save(key, hs.sess.Profile(), hs.sess.Transcript()); err != nil {
		s.log.Error().Err(err).Str("session", key).Msg("failed to save new session")
	}
	return hs, nil
}

func (s *Server) persist(key string, sess *builder.Session) {
	if err := s.agents.Save(key, sess.Profile(), sess.Transcript()); err != nil {
		s.log.Error().Err(err).Str("session", key).Msg("failed to save session")
	}
}

// processTurn runs one turn through the session and decorates the reply.
// The session lock is held for the turn and its save only; enrichment
// works on the cloned profile and never touches the session.
func (s *Server) processTurn(ctx context.Context, key string, hs *hostSession, text string) TurnResponse {
	hs.mu.Lock()
	result := hs.sess.SubmitTurn(text)
	step := hs.sess.Step().String()
	s.persist(key, hs.sess)
	hs.mu.Unlock()

	reply, enrichErr := enrich.Decorate(ctx, s.enricher, s.timeout, result.Reply, result.Profile, s.log)

	resp := TurnResponse{
		Reply:        reply,
		Profile:      result.Profile,
		Step:         step,
		AdvancedStep: result.AdvancedStep,
		Intent:       result.Intent,
	}
	if enrichErr != nil {
		resp.EnrichError = enrichErr.Error()
	}
	return resp
}

// HTTP handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found: " + r.URL.Path})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	hs, err := s.sessionFor(r.PathValue("key"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	hs.mu.Lock()
	resp := ProfileResponse{
		Profile: hs.sess.Profile(),
		Step:    hs.sess.Step().String(),
	}
	hs.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "text is required"})
		return
	}

	hs, err := s.sessionFor(key)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, s.processTurn(r.Context(), key, hs, req.Text))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	hs, err := s.sessionFor(key)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	hs.mu.Lock()
	profile := hs.sess.Reset(domain.AgentProfile{})
	s.persist(key, hs.sess)
	transcript := hs.sess.Transcript()
	step := hs.sess.Step().String()
	hs.mu.Unlock()

	reply := ""
	if len(transcript) > 0 {
		reply = transcript[len(transcript)-1].Content
	}
	writeJSON(w, http.StatusOK, ResetResponse{
		Profile: profile,
		Step:    step,
		Reply:   reply,
	})
}

func (s *Server) handleUpsertProduct(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}
	if req.Price < 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "price must be non-negative"})
		return
	}

	hs, err := s.sessionFor(key)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	hs.mu.Lock()
	profile := hs.sess.Profile()
	catalog.Upsert(&profile, domain.Product{
		ID:    req.ID,
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
	})
	updated := hs.sess.ReplaceProfile(profile)
	s.persist(key, hs.sess)
	step := hs.sess.Step().String()
	hs.mu.Unlock()

	writeJSON(w, http.StatusOK, ProfileResponse{
		Profile: updated,
		Step:    step,
	})
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	id := r.PathValue("id")

	hs, err := s.sessionFor(key)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	hs.mu.Lock()
	defer hs.mu.Unlock()

	profile := hs.sess.Profile()
	if !catalog.Delete(&profile, id) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "product not found: " + id})
		return
	}
	updated := hs.sess.ReplaceProfile(profile)
	s.persist(key, hs.sess)

	writeJSON(w, http.StatusOK, ProfileResponse{
		Profile: updated,
		Step:    hs.sess.Step().String(),
	})
}

func (s *Server) handleListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := s.agents.List()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	summaries := make([]AgentSummary, 0, len(agents))
	for _, saved := range agents {
		summaries = append(summaries, AgentSummary{
			SessionKey: saved.SessionKey,
			BrandName:  saved.Profile.BrandName,
			Complete:   !saved.Profile.Empty(),
			UpdatedAt:  saved.UpdatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

// handleWebSocket runs one session per connection. The session key comes
// from the "session" query parameter; each text frame is one turn.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("session")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "session query parameter is required"})
		return
	}

	hs, err := s.sessionFor(key)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(64 * 1024)

	s.log.Debug().Str("session", key).Str("remote", r.RemoteAddr).Msg("websocket connected")

	// Replay the latest assistant turn so a reconnecting client sees
	// where the conversation stands.
	hs.mu.Lock()
	transcript := hs.sess.Transcript()
	replay := TurnResponse{
		Profile: hs.sess.Profile(),
		Step:    hs.sess.Step().String(),
	}
	hs.mu.Unlock()
	if len(transcript) > 0 {
		last := transcript[len(transcript)-1]
		if last.Role == domain.RoleAssistant {
			replay.Reply = last.Content
			conn.WriteJSON(replay)
		}
	}

	for {
		var req TurnRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug().Str("session", key).Msg("websocket closed")
			} else {
				s.log.Warn().Err(err).Str("session", key).Msg("websocket read error")
			}
			return
		}
		if req.Text == "" {
			continue
		}

		resp := s.processTurn(r.Context(), key, hs, req.Text)
		if err := conn.WriteJSON(resp); err != nil {
			s.log.Warn().Err(err).Str("session", key).Msg("websocket write error")
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
