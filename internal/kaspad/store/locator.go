package store

import (
	"fmt"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
	"go.uber.org/zap"
)

// Locator finds the live consensus store of a node.
type Locator struct {
	logger *zap.Logger
}

// NewLocator constructs a Locator.
func NewLocator(logger *zap.Logger) *Locator {
	return &Locator{logger: logger}
}

// Locate resolves the consensus store directory of the active generation for network under appDir.
func (l *Locator) Locate(appDir string, network model.NetworkIdentity) (model.ConsensusStoreLocation, error) {
	dbDir := DatabaseDir(appDir, network)
	if err := requireDir(dbDir); err != nil {
		return model.ConsensusStoreLocation{}, fmt.Errorf("locate database dir: %w", err)
	}

	generation, err := ReadActiveGeneration(MetaDir(dbDir))
	if err != nil {
		return model.ConsensusStoreLocation{}, fmt.Errorf("locate active generation: %w", err)
	}

	consensusDir := ConsensusDir(dbDir, generation)
	if err := requireDir(consensusDir); err != nil {
		return model.ConsensusStoreLocation{}, fmt.Errorf("locate consensus dir for generation %d: %w", generation, err)
	}

	l.logger.Info("located consensus store",
		zap.String("network", network.String()),
		zap.Uint64("generation", generation),
		zap.String("dir", consensusDir),
	)

	return model.ConsensusStoreLocation{
		BaseDir:      dbDir,
		Network:      network,
		Generation:   generation,
		ConsensusDir: consensusDir,
	}, nil
}
