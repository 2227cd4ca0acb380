package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
)

const (
	// importLockKey serializes importers targeting the same database.
	importLockKey int64 = 0x6b6173_7574786f

	lockImportTxQuery = `SELECT pg_advisory_xact_lock($1)`

	abortTimeout = 30 * time.Second
)

// TxSession writes the whole import inside one transaction. Calls are serialized.
type TxSession struct {
	mu      sync.Mutex
	tx      pgx.Tx
	done    bool
	metrics Metrics
	logger  *zap.Logger
}

// BeginTransactional opens a transaction, waits for any concurrent importer and
// verifies the target is still empty.
func (r *Repository) BeginTransactional(ctx context.Context) (session *TxSession, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("begin_transactional", err, start)
	}()

	tx, err := r.conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import transaction: %w", err)
	}
	session = &TxSession{tx: tx, metrics: r.metrics, logger: r.logger.Named("txSession")}

	if err = session.prepare(ctx); err != nil {
		session.rollback(ctx)
		return nil, err
	}
	return session, nil
}

func (s *TxSession) prepare(ctx context.Context) error {
	if _, err := s.tx.Exec(ctx, lockImportTxQuery, importLockKey); err != nil {
		return fmt.Errorf("acquire import lock: %w", err)
	}

	exists, err := metaExists(ctx, s.tx)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: meta row already present", model.ErrAlreadyInitialized)
	}

	populated, err := utxosExist(ctx, s.tx)
	if err != nil {
		return err
	}
	if populated {
		return fmt.Errorf("%w: utxos table is not empty", model.ErrLoadFailure)
	}
	return nil
}

// InsertUTXOs copies a batch into the utxos table.
func (s *TxSession) InsertUTXOs(ctx context.Context, batch model.ImportBatch) (n int64, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("insert_utxos", err, start)
	}()

	rows, err := utxoRows(batch)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return 0, errors.New("import session is closed")
	}

	n, err = s.tx.CopyFrom(ctx, pgx.Identifier{utxosTable}, utxoColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return n, fmt.Errorf("copy utxos: %w", err)
	}
	return n, nil
}

// Commit verifies the row count, stamps the meta row and commits.
// On any failure the transaction is rolled back.
func (s *TxSession) Commit(ctx context.Context, record model.MetaRecord, expectedRows int64) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("commit_transactional", err, start)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return errors.New("import session is closed")
	}
	defer func() {
		if err != nil {
			s.rollback(ctx)
		}
		s.done = true
	}()

	var count int64
	if err = s.tx.QueryRow(ctx, countUTXOsQuery).Scan(&count); err != nil {
		return fmt.Errorf("count utxos: %w", err)
	}
	if count != expectedRows {
		err = fmt.Errorf("%w: utxos table holds %d rows, expected %d", model.ErrLoadFailure, count, expectedRows)
		return err
	}

	if err = insertMeta(ctx, s.tx, record); err != nil {
		return err
	}
	if err = s.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit import transaction: %w", err)
	}
	return nil
}

// Abort rolls the transaction back. It is a no-op after Commit.
func (s *TxSession) Abort(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil
	}
	s.done = true
	return s.rollback(ctx)
}

func (s *TxSession) rollback(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), abortTimeout)
	defer cancel()

	if err := s.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		s.logger.Warn("rollback import transaction failed", zap.Error(err))
		return fmt.Errorf("rollback import transaction: %w", err)
	}
	return nil
}
