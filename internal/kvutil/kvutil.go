// Package kvutil opens the configured kvstore.Store binding for the
// binaries.
package kvutil

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"vivaha-backend/internal/config"
	"vivaha-backend/internal/repository/kvstore"
)

// Open builds the store named by the configuration. The returned cleanup
// closes any underlying resources and is safe to call once.
func Open(cfg *config.Config) (kvstore.Store, func(), error) {
	switch cfg.Storage.Type {
	case "file":
		fs, err := kvstore.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	case "postgres":
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		ps := kvstore.NewPostgresStore(db)
		if err := ps.Migrate(context.Background()); err != nil {
			db.Close()
			return nil, nil, err
		}
		return ps, func() { db.Close() }, nil
	default:
		return kvstore.NewMemoryStore(), func() {}, nil
	}
}
