package importer

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
	"github.com/goodnatureofminers/kaspa-utxo-seeder/pkg/workerpool"
)

// LoaderConfig tunes batch loading. Zero values select defaults; InsertRPS 0 disables throttling.
type LoaderConfig struct {
	BatchSize     int
	WorkerCount   int
	InsertRPS     int
	ProgressEvery int64
}

// BatchLoader streams entries into an import session in fixed-size batches.
// Either every entry is committed together with the meta row, or nothing is.
type BatchLoader struct {
	sessions      SessionStarter
	batchSize     int
	workerCount   int
	progressEvery int64
	limiter       ratelimit.Limiter
	metrics       ImporterMetrics
	now           func() time.Time
	logger        *zap.Logger
}

func NewBatchLoader(sessions SessionStarter, cfg LoaderConfig, metrics ImporterMetrics, logger *zap.Logger) (*BatchLoader, error) {
	if sessions == nil {
		return nil, errors.New("import session starter is required")
	}
	if metrics == nil {
		return nil, errors.New("importer metrics is required")
	}
	if cfg.BatchSize < 0 || cfg.WorkerCount < 0 || cfg.InsertRPS < 0 || cfg.ProgressEvery < 0 {
		return nil, fmt.Errorf("%w: loader settings must not be negative", model.ErrInvalidConfiguration)
	}

	if cfg.BatchSize == 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = defaultWorkerCount
	}
	if cfg.ProgressEvery == 0 {
		cfg.ProgressEvery = defaultProgressEvery
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.InsertRPS > 0 {
		limiter = ratelimit.New(cfg.InsertRPS)
	}

	return &BatchLoader{
		sessions:      sessions,
		batchSize:     cfg.BatchSize,
		workerCount:   cfg.WorkerCount,
		progressEvery: cfg.ProgressEvery,
		limiter:       limiter,
		metrics:       metrics,
		now:           time.Now,
		logger:        logger.Named("loader"),
	}, nil
}

// Load drains entries into a fresh import session and commits it with the meta row for network.
// It returns the number of committed rows. The session is aborted on any failure.
func (l *BatchLoader) Load(ctx context.Context, entries EntryIterator, network model.NetworkIdentity) (int64, error) {
	session, err := l.sessions.BeginImport(ctx)
	if err != nil {
		return 0, loadError("begin import", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if abortErr := session.Abort(ctx); abortErr != nil {
			l.logger.Warn("abort import session failed", zap.Error(abortErr))
		}
	}()

	var extracted, inserted atomic.Int64
	started := time.Now()

	err = workerpool.Process(ctx, l.workerCount, l.batches(entries, &extracted), func(ctx context.Context, batch model.ImportBatch) error {
		l.limiter.Take()

		batchStarted := time.Now()
		n, err := session.InsertUTXOs(ctx, batch)
		l.metrics.ObserveLoadBatch(err, len(batch), n, batchStarted)
		if err != nil {
			return fmt.Errorf("insert batch of %d entries: %w", len(batch), err)
		}
		if n != int64(len(batch)) {
			return fmt.Errorf("%w: inserted %d rows for a batch of %d entries", model.ErrLoadFailure, n, len(batch))
		}

		l.logProgress(inserted.Add(n), n, started)
		return nil
	})
	if err != nil {
		return 0, loadError("load batches", err)
	}

	// the extractor reports read failures only after iteration stops
	if err := entries.Err(); err != nil {
		return 0, err
	}

	if extracted.Load() != inserted.Load() {
		return 0, fmt.Errorf("%w: extracted %d entries, inserted %d rows", model.ErrLoadFailure, extracted.Load(), inserted.Load())
	}

	record := model.MetaRecord{Network: network, ImportedAt: l.now().UTC()}
	if err := session.Commit(ctx, record, inserted.Load()); err != nil {
		return 0, loadError("commit import", err)
	}
	committed = true

	l.logger.Info("utxo set committed",
		zap.Int64("rows", inserted.Load()),
		zap.Duration("elapsed", time.Since(started)),
	)
	return inserted.Load(), nil
}

// batches groups entries into freshly allocated batches; workers keep them after the next one is built.
func (l *BatchLoader) batches(entries EntryIterator, extracted *atomic.Int64) iter.Seq[model.ImportBatch] {
	return func(yield func(model.ImportBatch) bool) {
		batch := make(model.ImportBatch, 0, l.batchSize)
		for entries.Next() {
			batch = append(batch, entries.Entry())
			if len(batch) < l.batchSize {
				continue
			}
			extracted.Add(int64(len(batch)))
			l.metrics.ObserveExtracted(len(batch))
			if !yield(batch) {
				return
			}
			batch = make(model.ImportBatch, 0, l.batchSize)
		}
		if len(batch) > 0 {
			extracted.Add(int64(len(batch)))
			l.metrics.ObserveExtracted(len(batch))
			yield(batch)
		}
	}
}

func (l *BatchLoader) logProgress(total, added int64, started time.Time) {
	if (total-added)/l.progressEvery == total/l.progressEvery {
		return
	}
	l.logger.Info("utxo import progress",
		zap.Int64("rows", total),
		zap.Duration("elapsed", time.Since(started)),
	)
}

// loadError wraps err into the load failure class unless it already carries a more specific class.
func loadError(op string, err error) error {
	switch {
	case errors.Is(err, model.ErrAlreadyInitialized),
		errors.Is(err, model.ErrExtractionFailure),
		errors.Is(err, model.ErrLoadFailure):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%w: %s: %w", model.ErrLoadFailure, op, err)
	}
}
