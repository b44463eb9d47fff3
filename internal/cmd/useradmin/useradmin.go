// Package useradmin parses useradmin command flags and launches the dashboard runtime.
package useradmin

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	entrypoint "github.com/louisbranch/userhub-admin/internal/platform/cmd"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/directory"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/directory/memory"
)

// Config holds useradmin command configuration.
type Config struct {
	HTTPAddr   string `env:"USERHUB_ADMIN_ADDR" envDefault:":8082"`
	DBPath     string `env:"USERHUB_ADMIN_DB_PATH" envDefault:"data/useradmin.db"`
	SeedPath   string `env:"USERHUB_ADMIN_SEED_PATH"`
	AuthSecret string `env:"USERHUB_ADMIN_AUTH_SECRET"`
	LoginURL   string `env:"USERHUB_ADMIN_LOGIN_URL"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "The HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The sqlite audit store path (empty disables auditing)")
	fs.StringVar(&cfg.SeedPath, "seed", cfg.SeedPath, "A JSON file of users to preload into the directory")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "The operator token signing secret (empty disables auth)")
	fs.StringVar(&cfg.LoginURL, "login-url", cfg.LoginURL, "The login page to redirect unauthenticated operators to")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the useradmin runtime.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceUserAdmin, func(context.Context) error {
		dir, err := buildDirectory(cfg.SeedPath)
		if err != nil {
			return err
		}

		var auth *useradmin.AuthConfig
		if cfg.AuthSecret != "" {
			auth = &useradmin.AuthConfig{
				Secret:   cfg.AuthSecret,
				LoginURL: cfg.LoginURL,
			}
		}

		server, err := useradmin.NewServer(ctx, useradmin.Config{
			HTTPAddr: cfg.HTTPAddr,
			DBPath:   cfg.DBPath,
			Auth:     auth,
		}, dir)
		if err != nil {
			return err
		}
		defer server.Close()

		return server.ListenAndServe(ctx)
	})
}

// seedUser mirrors directory.User for the seed file format.
type seedUser struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func buildDirectory(seedPath string) (directory.Directory, error) {
	dir := memory.NewDirectory()
	if seedPath == "" {
		return dir, nil
	}

	payload, err := os.ReadFile(seedPath)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seeds []seedUser
	if err := json.Unmarshal(payload, &seeds); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	users := make([]directory.User, 0, len(seeds))
	for _, seed := range seeds {
		users = append(users, directory.User{
			ID:          seed.ID,
			Email:       seed.Email,
			DisplayName: seed.DisplayName,
			Role:        seed.Role,
			CreatedAt:   seed.CreatedAt,
			UpdatedAt:   seed.UpdatedAt,
		})
	}
	if err := dir.Seed(users); err != nil {
		return nil, fmt.Errorf("seed directory: %w", err)
	}
	return dir, nil
}
