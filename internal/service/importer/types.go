package importer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NodeClient interface {
		GetServerInfo(ctx context.Context) (model.ServerInfo, error)
	}
	Schema interface {
		ApplyMigrations(ctx context.Context) error
		SeedLookupRows(ctx context.Context) error
	}
	MetaGate interface {
		GetMeta(ctx context.Context) (*model.MetaRecord, error)
	}
	Locator interface {
		Locate(appDir string, network model.NetworkIdentity) (model.ConsensusStoreLocation, error)
	}
	Extractor interface {
		Extract(location model.ConsensusStoreLocation) (EntryIterator, error)
	}
	EntryIterator interface {
		Next() bool
		Entry() model.UTXOEntry
		Err() error
		Close() error
	}
	Loader interface {
		Load(ctx context.Context, entries EntryIterator, network model.NetworkIdentity) (int64, error)
	}
	SessionStarter interface {
		BeginImport(ctx context.Context) (ImportSession, error)
	}
	ImportSession interface {
		InsertUTXOs(ctx context.Context, batch model.ImportBatch) (int64, error)
		Commit(ctx context.Context, record model.MetaRecord, expectedRows int64) error
		Abort(ctx context.Context) error
	}
	ImporterMetrics interface {
		ObserveExtracted(entries int)
		ObserveLoadBatch(err error, entries int, rows int64, started time.Time)
		ObserveRun(state string, err error, started time.Time)
	}
)

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(location model.ConsensusStoreLocation) (EntryIterator, error)

func (f ExtractorFunc) Extract(location model.ConsensusStoreLocation) (EntryIterator, error) {
	return f(location)
}

// SessionStarterFunc adapts a function to the SessionStarter interface.
type SessionStarterFunc func(ctx context.Context) (ImportSession, error)

func (f SessionStarterFunc) BeginImport(ctx context.Context) (ImportSession, error) {
	return f(ctx)
}
