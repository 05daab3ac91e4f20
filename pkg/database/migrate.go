package database

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies every pending embedded migration against databaseURL
func Migrate(databaseURL string, logger *zap.Logger) error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(databaseURL))
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	m.Log = &migrateLogger{log: logger.Sugar()}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration version: %w", err)
	}
	logger.Info("Database schema up to date",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty))

	return nil
}

// migrateURL rewrites a postgres:// DSN to the scheme of the pgx/v5 migrate driver
func migrateURL(databaseURL string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(databaseURL, prefix) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, prefix)
		}
	}
	return databaseURL
}

type migrateLogger struct {
	log *zap.SugaredLogger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.log.Infof(strings.TrimSpace(format), v...)
}

func (l *migrateLogger) Verbose() bool { return false }
