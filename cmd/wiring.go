package cmd

import (
	"fmt"

	"krearsip/internal/client"
	"krearsip/internal/config"
	"krearsip/internal/db"
	"krearsip/internal/repository"
	"krearsip/internal/session"
)

// appDeps is the wiring every backend-facing command shares.
type appDeps struct {
	cfg   config.App
	api   *client.Client
	repo  *repository.StateRepository
	store *session.Store
}

func buildApp() (*appDeps, error) {
	cfg, err := config.NewApp()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	sqlite, err := db.NewSqliteDB(cfg.StateDBPath)
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}

	repo := repository.NewStateRepository(sqlite)
	if err := repo.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate state database: %w", err)
	}

	return &appDeps{
		cfg:   cfg,
		api:   client.New(logs, cfg.APIBaseURL, cfg.HTTPTimeout),
		repo:  repo,
		store: session.NewStore(logs, repo),
	}, nil
}

// currentSession loads the persisted login, clearing it if the backend has
// already rejected the token.
func (d *appDeps) currentSession() (client.Session, error) {
	sess, err := d.store.Current()
	if err != nil {
		return client.Session{}, err
	}
	return sess, nil
}
