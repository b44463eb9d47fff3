package useradmin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/userhub-admin/internal/platform/timeouts"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/directory"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/storage"
	useradminsqlite "github.com/louisbranch/userhub-admin/internal/services/useradmin/storage/sqlite"
)

// Config defines the inputs for the useradmin process.
type Config struct {
	HTTPAddr string
	// DBPath locates the SQLite audit store. Empty disables auditing.
	DBPath string
	// Auth enables operator token authentication when set.
	Auth *AuthConfig
}

// Server hosts the user administration dashboard.
//
// It keeps a thin orchestration layer between operator HTTP handlers and the
// directory backend that owns user records.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *useradminsqlite.Store
}

// NewServer builds a configured useradmin server.
func NewServer(ctx context.Context, config Config, dir directory.Directory) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if dir == nil {
		return nil, errors.New("directory is required")
	}

	var store *useradminsqlite.Store
	var audit storage.AuditStore
	if strings.TrimSpace(config.DBPath) != "" {
		opened, err := openAuditStore(config.DBPath)
		if err != nil {
			return nil, err
		}
		store = opened
		audit = opened
	}

	handler := NewHandler(dir, audit, config.Auth)

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		store:      store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("useradmin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("useradmin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases resources held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close useradmin store: %v", err)
		}
	}
}

func openAuditStore(path string) (*useradminsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := useradminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open useradmin sqlite store: %w", err)
	}
	return store, nil
}
