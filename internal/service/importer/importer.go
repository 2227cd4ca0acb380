// Package importer runs the one-shot pruning point UTXO set import.
package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/network"
)

// State is a step of an import run.
type State string

const (
	StateStart            State = "Start"
	StateIdentityResolved State = "IdentityResolved"
	StateSchemaReady      State = "SchemaReady"
	StateAlreadyImported  State = "AlreadyImported"
	StateStoreLocated     State = "StoreLocated"
	StateExtracted        State = "Extracted"
	StateLoaded           State = "Loaded"
	StateDone             State = "Done"
	StateAborted          State = "Aborted"
)

// Config is the operator input of a run.
type Config struct {
	NetworkType string
	NetSuffix   *uint32
	AppDir      string
}

type Service struct {
	cfg       Config
	node      NodeClient
	schema    Schema
	gate      MetaGate
	locator   Locator
	extractor Extractor
	loader    Loader
	metrics   ImporterMetrics
	logger    *zap.Logger
}

func NewService(
	cfg Config,
	node NodeClient,
	schema Schema,
	gate MetaGate,
	locator Locator,
	extractor Extractor,
	loader Loader,
	metrics ImporterMetrics,
	logger *zap.Logger,
) (*Service, error) {
	switch {
	case node == nil:
		return nil, errors.New("node client is required")
	case schema == nil:
		return nil, errors.New("schema is required")
	case gate == nil:
		return nil, errors.New("meta gate is required")
	case locator == nil:
		return nil, errors.New("store locator is required")
	case extractor == nil:
		return nil, errors.New("utxo extractor is required")
	case loader == nil:
		return nil, errors.New("utxo loader is required")
	case metrics == nil:
		return nil, errors.New("importer metrics is required")
	}

	return &Service{
		cfg:       cfg,
		node:      node,
		schema:    schema,
		gate:      gate,
		locator:   locator,
		extractor: extractor,
		loader:    loader,
		metrics:   metrics,
		logger:    logger.Named("importer"),
	}, nil
}

// Run executes the import once and returns the terminal state: Done, AlreadyImported or Aborted.
// Nothing is written to the target database before the node has been checked.
func (s *Service) Run(ctx context.Context) (state State, err error) {
	started := time.Now()
	state = StateStart
	defer func() {
		if err != nil {
			s.logger.Error("import aborted", zap.String("failed_after", string(state)), zap.Error(err))
			state = StateAborted
		}
		s.metrics.ObserveRun(string(state), err, started)
	}()

	identity, err := s.resolveIdentity(ctx)
	if err != nil {
		return state, err
	}
	state = StateIdentityResolved
	logger := s.logger.With(zap.String("network", identity.String()))

	if err = s.schema.ApplyMigrations(ctx); err != nil {
		return state, fmt.Errorf("apply migrations: %w", err)
	}
	if err = s.schema.SeedLookupRows(ctx); err != nil {
		return state, fmt.Errorf("seed lookup rows: %w", err)
	}
	state = StateSchemaReady

	meta, err := s.gate.GetMeta(ctx)
	if err != nil {
		return state, fmt.Errorf("read meta: %w", err)
	}
	if meta != nil {
		if err = network.Reconcile(identity, meta.Network); err != nil {
			return state, fmt.Errorf("database was seeded for another network: %w", err)
		}
		logger.Info("utxo set already imported", zap.Time("imported_at", meta.ImportedAt))
		state = StateAlreadyImported
		return state, nil
	}

	location, err := s.locator.Locate(s.cfg.AppDir, identity)
	if err != nil {
		return state, fmt.Errorf("locate consensus store: %w", err)
	}
	state = StateStoreLocated

	entries, err := s.extractor.Extract(location)
	if err != nil {
		return state, fmt.Errorf("extract utxo set: %w", err)
	}
	defer func() {
		if closeErr := entries.Close(); closeErr != nil {
			logger.Warn("close utxo iterator failed", zap.Error(closeErr))
		}
	}()
	state = StateExtracted

	rows, err := s.loader.Load(ctx, entries, identity)
	if errors.Is(err, model.ErrAlreadyInitialized) {
		logger.Info("utxo set imported by a concurrent run", zap.Error(err))
		err = nil
		state = StateAlreadyImported
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("load utxo set: %w", err)
	}
	state = StateLoaded

	logger.Info("utxo set imported",
		zap.Int64("rows", rows),
		zap.Uint64("generation", location.Generation),
		zap.Duration("elapsed", time.Since(started)),
	)
	state = StateDone
	return state, nil
}

func (s *Service) resolveIdentity(ctx context.Context) (model.NetworkIdentity, error) {
	identity, err := network.Resolve(s.cfg.NetworkType, s.cfg.NetSuffix)
	if err != nil {
		return model.NetworkIdentity{}, err
	}

	info, err := s.node.GetServerInfo(ctx)
	if err != nil {
		return model.NetworkIdentity{}, fmt.Errorf("query node: %w", err)
	}
	if !info.IsSynced {
		return model.NetworkIdentity{}, fmt.Errorf("%w: server version %s", model.ErrNotSynced, info.ServerVersion)
	}
	if err := network.Reconcile(identity, info.Network); err != nil {
		return model.NetworkIdentity{}, err
	}

	s.logger.Info("node checked",
		zap.String("network", identity.String()),
		zap.String("server_version", info.ServerVersion),
	)
	return identity, nil
}
