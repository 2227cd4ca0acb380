// Package storetest builds on-disk consensus store fixtures for tests.
package storetest

import (
	"fmt"
	"os"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/kaspad/store"
	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
	"github.com/syndtr/goleveldb/leveldb"
)

// Node describes a node data directory to lay out.
type Node struct {
	AppDir     string
	Network    model.NetworkIdentity
	Generation uint64
	Entries    []model.UTXOEntry
	// Updating leaves the pruning point rewrite marker in the consensus store.
	Updating bool
}

// Write creates the meta store with its generation marker and the consensus store of that generation.
// It returns the consensus store directory.
func Write(n Node) (string, error) {
	dbDir := store.DatabaseDir(n.AppDir, n.Network)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return "", fmt.Errorf("create database dir: %w", err)
	}
	if err := store.WriteActiveGeneration(store.MetaDir(dbDir), n.Generation); err != nil {
		return "", err
	}

	dir := store.ConsensusDir(dbDir, n.Generation)
	if err := WriteConsensus(dir, n.Entries, n.Updating); err != nil {
		return "", err
	}
	return dir, nil
}

// WriteConsensus writes entries into a consensus store at dir.
func WriteConsensus(dir string, entries []model.UTXOEntry, updating bool) error {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return fmt.Errorf("open consensus store: %w", err)
	}

	batch := new(leveldb.Batch)
	for _, entry := range entries {
		value, err := store.EncodeEntry(entry)
		if err != nil {
			_ = db.Close()
			return err
		}
		batch.Put(store.EncodeKey(entry.Outpoint), value)
	}
	if updating {
		batch.Put(store.UpdatingMarkerKey(), []byte{1})
	}
	// unrelated buckets must be skipped by the extractor
	batch.Put([]byte("pruning-block-hash"), make([]byte, model.TransactionIDSize))
	batch.Put([]byte("utxo-set/unrelated"), []byte{0})

	if err := db.Write(batch, nil); err != nil {
		_ = db.Close()
		return fmt.Errorf("write consensus entries: %w", err)
	}
	return db.Close()
}

// Entry builds a standard pay-to-pubkey entry; txByte fills the transaction id.
func Entry(txByte byte, index uint32, amount uint64) model.UTXOEntry {
	var txID model.TransactionID
	for i := range txID {
		txID[i] = txByte
	}

	script := make([]byte, 0, 34)
	script = append(script, 0x20)
	for i := 0; i < 32; i++ {
		script = append(script, byte(i))
	}
	script = append(script, 0xac)

	return model.UTXOEntry{
		Outpoint:        model.Outpoint{TransactionID: txID, Index: index},
		Amount:          amount,
		ScriptPublicKey: model.ScriptPublicKey{Version: 0, Script: script},
		BlockDAAScore:   1_000 + uint64(index),
	}
}

// WriteRaw puts a single raw key/value pair into the store at dir.
func WriteRaw(dir string, key, value []byte) error {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	if err := db.Put(key, value, nil); err != nil {
		_ = db.Close()
		return fmt.Errorf("put raw entry: %w", err)
	}
	return db.Close()
}
