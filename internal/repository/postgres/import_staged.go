package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
)

const (
	lockImportQuery   = `SELECT pg_advisory_lock($1)`
	unlockImportQuery = `SELECT pg_advisory_unlock($1)`

	dropStagingQuery   = `DROP TABLE IF EXISTS utxos_staging`
	createStagingQuery = `CREATE UNLOGGED TABLE utxos_staging (LIKE utxos INCLUDING DEFAULTS INCLUDING CONSTRAINTS INCLUDING INDEXES)`
	publishQuery       = `
INSERT INTO utxos (
    transaction_id,
    output_index,
    amount,
    script_public_key,
    script_public_key_version,
    script_class,
    block_daa_score,
    is_coinbase
)
SELECT
    transaction_id,
    output_index,
    amount,
    script_public_key,
    script_public_key_version,
    script_class,
    block_daa_score,
    is_coinbase
FROM utxos_staging`
)

// StagedSession copies batches concurrently into an unlogged staging table and
// publishes them into utxos with a single transaction. The session holds an
// advisory lock on a dedicated connection for its whole lifetime.
type StagedSession struct {
	mu       sync.Mutex
	lockConn *pgxpool.Conn
	copier   Conn
	done     bool
	metrics  Metrics
	logger   *zap.Logger
}

// BeginStaged waits for any concurrent importer, checks the target and
// recreates the staging table. Leftovers of a crashed run are dropped.
func (r *Repository) BeginStaged(ctx context.Context) (session *StagedSession, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("begin_staged", err, start)
	}()

	if r.pool == nil {
		return nil, errors.New("staged import requires a connection pool")
	}

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire lock connection: %w", err)
	}
	if _, err = conn.Exec(ctx, lockImportQuery, importLockKey); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire import lock: %w", err)
	}

	session = &StagedSession{
		lockConn: conn,
		copier:   r.conn,
		metrics:  r.metrics,
		logger:   r.logger.Named("stagedSession"),
	}
	if err = session.prepare(ctx); err != nil {
		session.release(ctx)
		return nil, err
	}
	return session, nil
}

func (s *StagedSession) prepare(ctx context.Context) error {
	exists, err := metaExists(ctx, s.lockConn)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: meta row already present", model.ErrAlreadyInitialized)
	}

	populated, err := utxosExist(ctx, s.lockConn)
	if err != nil {
		return err
	}
	if populated {
		return fmt.Errorf("%w: utxos table is not empty", model.ErrLoadFailure)
	}

	if _, err := s.lockConn.Exec(ctx, dropStagingQuery); err != nil {
		return fmt.Errorf("drop staging table: %w", err)
	}
	if _, err := s.lockConn.Exec(ctx, createStagingQuery); err != nil {
		return fmt.Errorf("create staging table: %w", err)
	}
	return nil
}

// InsertUTXOs copies a batch into the staging table. Safe for concurrent use.
func (s *StagedSession) InsertUTXOs(ctx context.Context, batch model.ImportBatch) (n int64, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("insert_utxos_staging", err, start)
	}()

	rows, err := utxoRows(batch)
	if err != nil {
		return 0, err
	}

	n, err = s.copier.CopyFrom(ctx, pgx.Identifier{utxosStagingTable}, utxoColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return n, fmt.Errorf("copy utxos into staging: %w", err)
	}
	return n, nil
}

// Commit publishes the staging table into utxos together with the meta row.
// The staging table is removed whether or not the publish succeeds.
func (s *StagedSession) Commit(ctx context.Context, record model.MetaRecord, expectedRows int64) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("commit_staged", err, start)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return errors.New("import session is closed")
	}
	defer func() {
		s.release(ctx)
	}()

	tx, err := s.lockConn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin publish transaction: %w", err)
	}
	defer func() {
		if err != nil {
			rollbackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), abortTimeout)
			defer cancel()
			if rbErr := tx.Rollback(rollbackCtx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				s.logger.Warn("rollback publish transaction failed", zap.Error(rbErr))
			}
		}
	}()

	populated, err := utxosExist(ctx, tx)
	if err != nil {
		return err
	}
	if populated {
		err = fmt.Errorf("%w: utxos table is not empty", model.ErrLoadFailure)
		return err
	}

	tag, err := tx.Exec(ctx, publishQuery)
	if err != nil {
		return fmt.Errorf("publish staging table: %w", err)
	}
	if tag.RowsAffected() != expectedRows {
		err = fmt.Errorf("%w: published %d rows, expected %d", model.ErrLoadFailure, tag.RowsAffected(), expectedRows)
		return err
	}

	if err = insertMeta(ctx, tx, record); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, dropStagingQuery); err != nil {
		return fmt.Errorf("drop staging table: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit publish transaction: %w", err)
	}
	return nil
}

// Abort drops the staging table and releases the import lock. It is a no-op after Commit.
func (s *StagedSession) Abort(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil
	}
	return s.release(ctx)
}

// release drops the staging table if it still exists, unlocks and returns the connection to the pool.
func (s *StagedSession) release(ctx context.Context) error {
	if s.done {
		return nil
	}
	s.done = true

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), abortTimeout)
	defer cancel()

	var errs []error
	if _, err := s.lockConn.Exec(ctx, dropStagingQuery); err != nil {
		errs = append(errs, fmt.Errorf("drop staging table: %w", err))
	}
	if _, err := s.lockConn.Exec(ctx, unlockImportQuery, importLockKey); err != nil {
		errs = append(errs, fmt.Errorf("release import lock: %w", err))
		// a connection still holding the lock must not go back to the pool
		_ = s.lockConn.Conn().Close(ctx)
	}
	s.lockConn.Release()

	if err := errors.Join(errs...); err != nil {
		s.logger.Warn("release staged session failed", zap.Error(err))
		return err
	}
	return nil
}
