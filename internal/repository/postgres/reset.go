package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// maintenanceDatabase is connected to while the target database is dropped.
const maintenanceDatabase = "postgres"

// ResetDatabase drops the database named in dsn, terminating its sessions, and creates it again empty.
func ResetDatabase(ctx context.Context, dsn string, logger *zap.Logger) error {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("parse postgres dsn: %w", err)
	}
	name := cfg.Database
	if name == "" {
		return errors.New("postgres dsn does not name a database")
	}
	if name == maintenanceDatabase {
		return fmt.Errorf("refusing to reset the %q maintenance database", maintenanceDatabase)
	}

	admin := cfg.Copy()
	admin.Database = maintenanceDatabase
	conn, err := pgx.ConnectConfig(ctx, admin)
	if err != nil {
		return fmt.Errorf("connect to maintenance database: %w", err)
	}
	defer func() {
		_ = conn.Close(context.WithoutCancel(ctx))
	}()

	ident := pgx.Identifier{name}.Sanitize()
	if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+ident+" WITH (FORCE)"); err != nil {
		return fmt.Errorf("drop database %s: %w", name, err)
	}
	logger.Info("dropped database", zap.String("database", name))

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		return fmt.Errorf("create database %s: %w", name, err)
	}
	logger.Info("created database", zap.String("database", name))
	return nil
}
