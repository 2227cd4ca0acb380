package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/network"
	"github.com/goodnatureofminers/kaspa-utxo-seeder/pkg/safe"
)

const (
	selectMetaQuery = `SELECT network_type, network_suffix, imported_at FROM meta WHERE singleton`
	metaExistsQuery = `SELECT EXISTS (SELECT 1 FROM meta)`
	insertMetaQuery = `INSERT INTO meta (network_type, network_suffix, imported_at) VALUES ($1, $2, $3)`

	uniqueViolation = "23505"
)

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GetMeta returns the import marker, or nil when the database was never seeded.
func (r *Repository) GetMeta(ctx context.Context) (record *model.MetaRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_meta", err, start)
	}()

	var (
		networkType string
		suffix      *int64
		importedAt  time.Time
	)
	err = r.conn.QueryRow(ctx, selectMetaQuery).Scan(&networkType, &suffix, &importedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select meta: %w", err)
	}

	id, err := decodeIdentity(networkType, suffix)
	if err != nil {
		return nil, err
	}
	return &model.MetaRecord{Network: id, ImportedAt: importedAt}, nil
}

// StoreMeta writes the import marker. A second write fails with model.ErrAlreadyInitialized.
func (r *Repository) StoreMeta(ctx context.Context, record model.MetaRecord) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("store_meta", err, start)
	}()

	err = insertMeta(ctx, r.conn, record)
	return err
}

func insertMeta(ctx context.Context, q execer, record model.MetaRecord) error {
	var suffix *int64
	if s, ok := record.Network.Suffix(); ok {
		v := int64(s)
		suffix = &v
	}

	_, err := q.Exec(ctx, insertMetaQuery, string(record.Network.Type()), suffix, record.ImportedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: meta row already present", model.ErrAlreadyInitialized)
	}
	if err != nil {
		return fmt.Errorf("insert meta: %w", err)
	}
	return nil
}

func metaExists(ctx context.Context, q queryRower) (bool, error) {
	var exists bool
	if err := q.QueryRow(ctx, metaExistsQuery).Scan(&exists); err != nil {
		return false, fmt.Errorf("check meta: %w", err)
	}
	return exists, nil
}

func decodeIdentity(networkType string, suffix *int64) (model.NetworkIdentity, error) {
	var s *uint32
	if suffix != nil {
		v, err := safe.Uint32(*suffix)
		if err != nil {
			return model.NetworkIdentity{}, fmt.Errorf("decode meta network suffix: %w", err)
		}
		s = &v
	}
	id, err := network.Resolve(networkType, s)
	if err != nil {
		return model.NetworkIdentity{}, fmt.Errorf("decode meta network: %w", err)
	}
	return id, nil
}
