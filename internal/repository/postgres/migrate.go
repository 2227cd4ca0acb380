package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
	"github.com/goodnatureofminers/kaspa-utxo-seeder/migrations"
)

// migrateScheme is the scheme golang-migrate registers for its pgx v5 driver.
const migrateScheme = "pgx5"

// MigrateURL rewrites a postgres:// DSN into the URL form the migration driver expects.
// Keyword/value DSNs are rejected.
func MigrateURL(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("%w: parse postgres dsn: %w", model.ErrInvalidConfiguration, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql", migrateScheme:
	default:
		return "", fmt.Errorf("%w: postgres dsn must be a postgres:// url", model.ErrInvalidConfiguration)
	}
	u.Scheme = migrateScheme
	return u.String(), nil
}

// ApplyMigrations brings the schema up to date using the embedded migrations.
// Concurrent callers are serialized by the driver's advisory lock.
func (r *Repository) ApplyMigrations(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("apply_migrations", err, start)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}

	src, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	target, err := MigrateURL(r.dsn)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, target)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	m.Log = migrateLogger{logger: r.logger.Named("migrate").Sugar()}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			r.logger.Warn("migration source close error", zap.Error(srcErr))
		}
		if dbErr != nil {
			r.logger.Warn("migration database close error", zap.Error(dbErr))
		}
	}()

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("no migrations to apply")
			err = nil
			return nil
		}
		return fmt.Errorf("migrate up: %w", err)
	}

	r.logger.Info("migrations applied successfully")
	return nil
}

type migrateLogger struct {
	logger *zap.SugaredLogger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Debugf(strings.TrimSuffix(format, "\n"), v...)
}

func (l migrateLogger) Verbose() bool {
	return false
}
