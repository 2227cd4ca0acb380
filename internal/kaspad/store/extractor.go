package store

import (
	"fmt"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"
)

// Extractor opens consensus stores and streams their pruning point UTXO set.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor constructs an Extractor.
func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract opens the consensus store read-only and returns an iterator over its pruning point UTXO set.
// The read-only open takes a shared lock, so it fails while the node holds the store open for writing.
// Every call starts from the beginning of the set; the caller must Close the iterator.
func (e *Extractor) Extract(location model.ConsensusStoreLocation) (*UTXOIterator, error) {
	if err := requireDir(location.ConsensusDir); err != nil {
		return nil, err
	}

	db, err := leveldb.OpenFile(location.ConsensusDir, &opt.Options{
		ReadOnly:               true,
		ErrorIfMissing:         true,
		DisableSeeksCompaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open consensus store %s: %w", model.ErrExtractionFailure, location.ConsensusDir, err)
	}

	snapshot, err := db.GetSnapshot()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: snapshot consensus store: %w", model.ErrExtractionFailure, err)
	}

	updating, err := snapshot.Has(updatingPruningPointUTXOSetKey, nil)
	if err != nil {
		snapshot.Release()
		_ = db.Close()
		return nil, fmt.Errorf("%w: read update marker: %w", model.ErrExtractionFailure, err)
	}
	if updating {
		snapshot.Release()
		_ = db.Close()
		return nil, fmt.Errorf("%w: pruning point utxo set in %s is being rewritten by the node", model.ErrExtractionFailure, location.ConsensusDir)
	}

	e.logger.Info("opened consensus store",
		zap.String("dir", location.ConsensusDir),
		zap.Uint64("generation", location.Generation),
	)

	return &UTXOIterator{
		db:       db,
		snapshot: snapshot,
		cursor:   snapshot.NewIterator(util.BytesPrefix(pruningPointUTXOSetPrefix), nil),
	}, nil
}

// UTXOIterator yields pruning point UTXO entries one at a time.
//
//	for it.Next() {
//		entry := it.Entry()
//	}
//	if err := it.Err(); err != nil { ... }
//
// Once Next returns false the iterator is either exhausted or failed and stays that way.
type UTXOIterator struct {
	db       *leveldb.DB
	snapshot *leveldb.Snapshot
	cursor   iterator.Iterator

	entry     model.UTXOEntry
	count     uint64
	exhausted bool
	err       error
	closed    bool
}

// Next advances to the next entry.
func (it *UTXOIterator) Next() bool {
	if it.closed || it.exhausted || it.err != nil {
		return false
	}

	if !it.cursor.Next() {
		if err := it.cursor.Error(); err != nil {
			it.err = fmt.Errorf("%w: iterate pruning point utxo set: %w", model.ErrExtractionFailure, err)
			return false
		}
		it.exhausted = true
		return false
	}

	entry, err := DecodeEntry(it.cursor.Key(), it.cursor.Value())
	if err != nil {
		it.err = fmt.Errorf("%w: decode entry #%d: %w", model.ErrExtractionFailure, it.count, err)
		return false
	}

	it.entry = entry
	it.count++
	return true
}

// Entry returns the entry Next advanced to.
func (it *UTXOIterator) Entry() model.UTXOEntry {
	return it.entry
}

// Err returns the failure that stopped iteration, if any.
func (it *UTXOIterator) Err() error {
	return it.err
}

// Exhausted reports whether every entry of the set has been read.
func (it *UTXOIterator) Exhausted() bool {
	return it.exhausted
}

// Count returns the number of entries read so far.
func (it *UTXOIterator) Count() uint64 {
	return it.count
}

// Close releases the snapshot and closes the store. It is safe to call more than once.
func (it *UTXOIterator) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true

	it.cursor.Release()
	it.snapshot.Release()
	if err := it.db.Close(); err != nil {
		return fmt.Errorf("close consensus store: %w", err)
	}
	return nil
}
