package postgres

import (
	"time"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
)

func (s *RepositorySuite) TestSchemaSetupIsIdempotent() {
	s.Require().NoError(s.repo.ApplyMigrations(s.testCtx))
	s.Require().NoError(s.repo.SeedLookupRows(s.testCtx))
	s.Require().NoError(s.repo.SeedLookupRows(s.testCtx))

	s.Equal(int64(len(model.NetworkTypes)), s.countRows("network_types"))
	s.Equal(int64(len(model.ScriptClasses)), s.countRows("script_classes"))
}

func (s *RepositorySuite) TestMetaGateIsWriteOnce() {
	meta, err := s.repo.GetMeta(s.testCtx)
	s.Require().NoError(err)
	s.Nil(meta)

	first := model.MetaRecord{Network: testnet11(), ImportedAt: time.Now().UTC().Truncate(time.Microsecond)}
	s.Require().NoError(s.repo.StoreMeta(s.testCtx, first))

	second := model.MetaRecord{Network: model.NewNetworkIdentity(model.Mainnet, nil), ImportedAt: time.Now().UTC()}
	s.Require().ErrorIs(s.repo.StoreMeta(s.testCtx, second), model.ErrAlreadyInitialized)

	meta, err = s.repo.GetMeta(s.testCtx)
	s.Require().NoError(err)
	s.Require().NotNil(meta)
	s.True(meta.Network.Equal(first.Network))
	s.True(meta.ImportedAt.Equal(first.ImportedAt))
	s.Equal(int64(1), s.countRows("meta"))
}

func (s *RepositorySuite) TestMetaRejectsUnknownNetworkType() {
	bogus := model.MetaRecord{Network: model.NewNetworkIdentity(model.NetworkType("moonnet"), nil), ImportedAt: time.Now()}
	s.Require().Error(s.repo.StoreMeta(s.testCtx, bogus))
	s.Equal(int64(0), s.countRows("meta"))
}
