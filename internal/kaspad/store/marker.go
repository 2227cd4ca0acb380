// Package store reads a node's on-disk consensus databases.
//
// On-disk layout under the node's application directory:
//
//	<appDir>/kaspa-<network>/datadir                    network scoped database directory
//	<appDir>/kaspa-<network>/datadir/meta               meta LevelDB
//	    active-consensus-generation -> uint64 BE        generation currently served by the node
//	<appDir>/kaspa-<network>/datadir/consensus/consensus-NNN
//	    pruning-point-utxo-set/<txid><index BE> -> entry
//	    updating-pruning-point-utxo-set                 present while the set is being rewritten
//
// Several consensus-NNN generations may exist at once; only the one named by the meta marker is live.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

const (
	dataDirName      = "datadir"
	metaDirName      = "meta"
	consensusDirName = "consensus"

	defaultAppDirName = ".rusty-kaspa"
)

var activeGenerationKey = []byte("active-consensus-generation")

// DefaultAppDir returns the node's default application directory for the current user.
func DefaultAppDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, defaultAppDirName), nil
}

// DatabaseDir returns the network scoped database directory.
func DatabaseDir(appDir string, network model.NetworkIdentity) string {
	return filepath.Join(appDir, network.Prefixed(), dataDirName)
}

// MetaDir returns the meta sub-store directory inside a database directory.
func MetaDir(dbDir string) string {
	return filepath.Join(dbDir, metaDirName)
}

// ConsensusDir returns the consensus store directory of a generation.
func ConsensusDir(dbDir string, generation uint64) string {
	return filepath.Join(dbDir, consensusDirName, fmt.Sprintf("consensus-%03d", generation))
}

// ReadActiveGeneration reads the active generation marker from the meta sub-store.
func ReadActiveGeneration(metaDir string) (uint64, error) {
	if err := requireDir(metaDir); err != nil {
		return 0, err
	}

	db, err := leveldb.OpenFile(metaDir, &opt.Options{ReadOnly: true, ErrorIfMissing: true})
	if errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("%w: no meta store in %s: %w", model.ErrStoreNotFound, metaDir, err)
	}
	if err != nil {
		return 0, fmt.Errorf("open meta store %s: %w", metaDir, err)
	}
	defer func() {
		_ = db.Close()
	}()

	value, err := db.Get(activeGenerationKey, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, fmt.Errorf("%w: no active generation marker in %s", model.ErrStoreNotFound, metaDir)
	}
	if err != nil {
		return 0, fmt.Errorf("read active generation marker: %w", err)
	}
	if len(value) != 8 {
		return 0, fmt.Errorf("%w: malformed active generation marker (%d bytes) in %s", model.ErrStoreNotFound, len(value), metaDir)
	}

	return binary.BigEndian.Uint64(value), nil
}

// WriteActiveGeneration records generation as the live consensus store, creating the meta store if needed.
func WriteActiveGeneration(metaDir string, generation uint64) error {
	db, err := leveldb.OpenFile(metaDir, nil)
	if err != nil {
		return fmt.Errorf("open meta store %s: %w", metaDir, err)
	}

	var value [8]byte
	binary.BigEndian.PutUint64(value[:], generation)
	if err := db.Put(activeGenerationKey, value[:], nil); err != nil {
		_ = db.Close()
		return fmt.Errorf("write active generation marker: %w", err)
	}
	return db.Close()
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s does not exist", model.ErrStoreNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", model.ErrStoreNotFound, path)
	}
	return nil
}
