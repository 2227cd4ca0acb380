package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/kaspad/store"
	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/metrics"
	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/repository/postgres"
	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/service/importer"
)

// importUTXOs wires the storage side of the import around an already connected node client.
func importUTXOs(ctx context.Context, cfg config, identity model.NetworkIdentity, node importer.NodeClient, logger *zap.Logger) (importer.State, error) {
	strategy, err := model.ParseLoadStrategy(cfg.LoadStrategy)
	if err != nil {
		return importer.StateAborted, err
	}

	appDir := cfg.AppDir
	if appDir == "" {
		if appDir, err = store.DefaultAppDir(); err != nil {
			return importer.StateAborted, err
		}
	}

	label := identity.String()
	repo, err := postgres.NewRepository(ctx, cfg.DBURI, metrics.NewPostgresRepository(label), logger)
	if err != nil {
		return importer.StateAborted, fmt.Errorf("init repository: %w", err)
	}
	defer repo.Close()

	workers := cfg.LoadWorkers
	if strategy == model.LoadStrategyTransaction {
		// inserts on a single transaction are serialized anyway
		workers = 1
	}

	importerMetrics := metrics.NewImporter(label)
	loader, err := importer.NewBatchLoader(
		sessionStarter(repo, strategy),
		importer.LoaderConfig{
			BatchSize:   cfg.BatchSize,
			WorkerCount: workers,
			InsertRPS:   cfg.InsertRPS,
		},
		importerMetrics,
		logger,
	)
	if err != nil {
		return importer.StateAborted, err
	}

	svc, err := importer.NewService(
		importer.Config{NetworkType: cfg.Network, NetSuffix: identity.SuffixPtr(), AppDir: appDir},
		node,
		repo,
		repo,
		store.NewLocator(logger),
		extractor(store.NewExtractor(logger)),
		loader,
		importerMetrics,
		logger,
	)
	if err != nil {
		return importer.StateAborted, err
	}

	logger.Info("starting pruning point utxo import",
		zap.String("app_dir", appDir),
		zap.String("load_strategy", string(strategy)),
		zap.Int("batch_size", cfg.BatchSize),
		zap.Int("load_workers", workers),
	)
	return svc.Run(ctx)
}

func sessionStarter(repo *postgres.Repository, strategy model.LoadStrategy) importer.SessionStarter {
	return importer.SessionStarterFunc(func(ctx context.Context) (importer.ImportSession, error) {
		if strategy == model.LoadStrategyStaged {
			session, err := repo.BeginStaged(ctx)
			if err != nil {
				return nil, err
			}
			return session, nil
		}
		session, err := repo.BeginTransactional(ctx)
		if err != nil {
			return nil, err
		}
		return session, nil
	})
}

func extractor(e *store.Extractor) importer.Extractor {
	return importer.ExtractorFunc(func(location model.ConsensusStoreLocation) (importer.EntryIterator, error) {
		it, err := e.Extract(location)
		if err != nil {
			return nil, err
		}
		return it, nil
	})
}
