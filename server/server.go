// Package server exposes gridpath sessions over a websocket.
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

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/protocol"
)

// shutdownTimeout bounds how long Serve waits for in-flight HTTP requests.
const shutdownTimeout = 10 * time.Second

// Server serves one independent board per websocket connection.
type Server struct {
	config   *config.Config
	logger   *log.Logger
	upgrader websocket.Upgrader

	// Connection tracking
	connections map[*Connection]bool
	connMu      sync.RWMutex

	// Shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a server instance. A nil logger means log.Default().
func New(cfg *config.Config, logger *log.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		config:      cfg,
		logger:      logger,
		connections: make(map[*Connection]bool),
		ctx:         ctx,
		cancel:      cancel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}, nil
}

// Handler returns the HTTP routes: /ws, /health and /schema.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/schema", s.handleSchema)
	return mux
}

// Serve listens on addr until ctx is done or the listener fails, then shuts
// down the HTTP server and closes every websocket.
func (s *Server) Serve(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Printf("WebSocket endpoint: ws://%s/ws", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Println("Shutting down server...")
		s.cancel()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close stops every open connection.
func (s *Server) Close() {
	s.cancel()
}

// ConnectionCount returns the number of open websockets.
func (s *Server) ConnectionCount() int {
	s.connMu.RLock()
	defer s.connMu.RUnlock()
	return len(s.connections)
}

func (s *Server) register(c *Connection) {
	s.connMu.Lock()
	s.connections[c] = true
	s.connMu.Unlock()
}

func (s *Server) unregister(c *Connection) {
	s.connMu.Lock()
	delete(s.connections, c)
	s.connMu.Unlock()
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	grid, err := s.config.Grid()
	if err != nil {
		// Validate already built this board once
		s.logger.Printf("board setup failed: %v", err)
		_ = ws.Close()
		return
	}

	conn := NewConnection(ws, s, grid)
	s.register(conn)
	defer s.unregister(conn)

	s.logger.Printf("client %s connected", r.RemoteAddr)
	if err := conn.Handle(); err != nil {
		s.logger.Printf("client %s: %v", r.RemoteAddr, err)
	}
	s.logger.Printf("client %s disconnected", r.RemoteAddr)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":      "ok",
		"connections": s.ConnectionCount(),
	})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	data, err := json.MarshalIndent(protocol.Schema(), "", "  ")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	_, _ = w.Write(data)
}
