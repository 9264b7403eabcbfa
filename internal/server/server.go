package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/gravitas-games/hexboard/internal/config"
	"github.com/gravitas-games/hexboard/internal/network"
	"github.com/gravitas-games/hexboard/layout"
)

// Server serves board layouts over HTTP and WebSocket
type Server struct {
	config   *config.Config
	upgrader websocket.Upgrader
	httpSrv  *http.Server
	auth     *TokenValidator
	cache    *BoardCache

	// Connection tracking
	connections map[*Connection]bool
	connMu      sync.RWMutex

	// Shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	log.Println("Initializing boardgen server...")

	ctx, cancel := context.WithCancel(context.Background())

	srv := &Server{
		config:      cfg,
		connections: make(map[*Connection]bool),
		ctx:         ctx,
		cancel:      cancel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// TODO: Add proper origin checking in production
				return true
			},
		},
	}

	if cfg.Auth.Secret != "" {
		srv.auth = NewTokenValidator(cfg.Auth.Secret, cfg.Auth.Issuer)
		log.Println("Token authentication enabled")
	}

	if cfg.Redis.Address != "" {
		cache, err := NewBoardCache(ctx, cfg.Redis)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		srv.cache = cache
		log.Println("Connected to Redis board cache")
	}

	log.Println("Server initialized successfully")
	return srv, nil
}

// Start begins listening for connections
func (s *Server) Start(addr string) error {
	log.Printf("Starting boardgen server on %s", addr)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/generate", s.handleGenerate)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("WebSocket endpoint: ws://%s/ws", addr)
	log.Printf("Generate endpoint: http://%s/generate", addr)
	log.Printf("Health endpoint: http://%s/health", addr)

	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	log.Println("Shutting down server...")

	s.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.httpSrv != nil {
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}
	}

	s.connMu.Lock()
	for conn := range s.connections {
		conn.Close()
	}
	s.connMu.Unlock()

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			log.Printf("Redis close error: %v", err)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}

// authorize validates the request's bearer token when authentication is
// enabled.
func (s *Server) authorize(r *http.Request) (string, error) {
	if s.auth == nil {
		return "anonymous", nil
	}
	tokenString := extractTokenFromHeader(r)
	if tokenString == "" {
		return "", fmt.Errorf("missing authentication token")
	}
	client, err := s.auth.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return client.Username, nil
}

// handleWebSocket handles WebSocket connection requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	log.Printf("New WebSocket connection request from %s", r.RemoteAddr)

	username, err := s.authorize(r)
	if err != nil {
		log.Printf("Rejected WebSocket connection from %s: %v", r.RemoteAddr, err)
		http.Error(w, fmt.Sprintf("Unauthorized: %v", err), http.StatusUnauthorized)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	conn := NewConnection(ws, s, username)

	s.connMu.Lock()
	s.connections[conn] = true
	s.connMu.Unlock()

	log.Printf("WebSocket connection established: %s (%s)", username, r.RemoteAddr)

	// Handle connection (blocking)
	conn.Handle()

	s.connMu.Lock()
	delete(s.connections, conn)
	s.connMu.Unlock()

	log.Printf("WebSocket connection closed: %s (%s)", username, r.RemoteAddr)
}

// handleGenerate handles single-shot board generation requests
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	username, err := s.authorize(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Unauthorized: %v", err), http.StatusUnauthorized)
		return
	}

	var payload network.GeneratePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", fmt.Sprintf("failed to parse request: %v", err))
		return
	}

	result, err := s.generateBoard(r.Context(), &payload)
	if err != nil {
		code, status := classifyError(err)
		writeError(w, status, code, err.Error())
		return
	}

	log.Printf("Generated board %s for %s in %d attempts", result.ID, username, result.Attempts)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// generateBoard produces one board for a request, serving cached layouts
// for reproducible requests.
func (s *Server) generateBoard(ctx context.Context, payload *network.GeneratePayload) (*network.BoardPayload, error) {
	req, gen, err := s.buildRequest(payload)
	if err != nil {
		return nil, err
	}

	key := ""
	if s.cache != nil && cacheable(payload, req) {
		key = fingerprint(payload)
		if cached, ok := s.cache.Get(ctx, key); ok {
			cached.Cached = true
			return cached, nil
		}
	}

	b, err := gen.Layout(req)
	if err != nil {
		return nil, err
	}

	result := network.EncodeBoard(uuid.NewString(), b)
	if key != "" {
		s.cache.Put(ctx, key, &result)
	}
	return &result, nil
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(network.ErrorPayload{Code: code, Message: message})
}

// classifyError maps generation failures to wire error codes.
func classifyError(err error) (code string, status int) {
	var cfgErr *layout.ConfigError
	var unsat *layout.UnsatisfiableError
	switch {
	case errors.As(err, &cfgErr):
		return "config_error", http.StatusBadRequest
	case errors.As(err, &unsat):
		return "unsatisfiable", http.StatusUnprocessableEntity
	default:
		return "generation_failed", http.StatusBadRequest
	}
}
