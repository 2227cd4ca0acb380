package postgres

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
)

func (s *RepositorySuite) meta() model.MetaRecord {
	return model.MetaRecord{Network: testnet11(), ImportedAt: time.Now().UTC()}
}

func (s *RepositorySuite) rowsSource(batch model.ImportBatch) pgx.CopyFromSource {
	rows, err := utxoRows(batch)
	s.Require().NoError(err)
	return pgx.CopyFromRows(rows)
}

func (s *RepositorySuite) TestTransactionalImportCommits() {
	session, err := s.repo.BeginTransactional(s.testCtx)
	s.Require().NoError(err)

	n, err := session.InsertUTXOs(s.testCtx, newEntries(0x01, 2))
	s.Require().NoError(err)
	s.Equal(int64(2), n)
	n, err = session.InsertUTXOs(s.testCtx, newEntries(0x02, 1))
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	s.Require().NoError(session.Commit(s.testCtx, s.meta(), 3))
	s.Require().NoError(session.Abort(s.testCtx))

	s.Equal(int64(3), s.countRows("utxos"))
	meta, err := s.repo.GetMeta(s.testCtx)
	s.Require().NoError(err)
	s.Require().NotNil(meta)
	s.True(meta.Network.Equal(testnet11()))
}

func (s *RepositorySuite) TestTransactionalAbortLeavesTargetUntouched() {
	session, err := s.repo.BeginTransactional(s.testCtx)
	s.Require().NoError(err)

	_, err = session.InsertUTXOs(s.testCtx, newEntries(0x01, 5))
	s.Require().NoError(err)
	s.Require().NoError(session.Abort(s.testCtx))

	s.Equal(int64(0), s.countRows("utxos"))
	meta, err := s.repo.GetMeta(s.testCtx)
	s.Require().NoError(err)
	s.Nil(meta)
}

func (s *RepositorySuite) TestTransactionalCommitRejectsCountMismatch() {
	session, err := s.repo.BeginTransactional(s.testCtx)
	s.Require().NoError(err)

	_, err = session.InsertUTXOs(s.testCtx, newEntries(0x01, 3))
	s.Require().NoError(err)

	s.Require().ErrorIs(session.Commit(s.testCtx, s.meta(), 4), model.ErrLoadFailure)
	s.Equal(int64(0), s.countRows("utxos"))
	s.Equal(int64(0), s.countRows("meta"))
}

func (s *RepositorySuite) TestTransactionalDuplicateOutpointFails() {
	session, err := s.repo.BeginTransactional(s.testCtx)
	s.Require().NoError(err)

	_, err = session.InsertUTXOs(s.testCtx, newEntries(0x01, 2))
	s.Require().NoError(err)
	_, err = session.InsertUTXOs(s.testCtx, newEntries(0x01, 1))
	s.Require().Error(err)
	s.Require().NoError(session.Abort(s.testCtx))

	s.Equal(int64(0), s.countRows("utxos"))
}

func (s *RepositorySuite) TestBeginAfterImportIsAlreadyInitialized() {
	session, err := s.repo.BeginTransactional(s.testCtx)
	s.Require().NoError(err)
	_, err = session.InsertUTXOs(s.testCtx, newEntries(0x01, 1))
	s.Require().NoError(err)
	s.Require().NoError(session.Commit(s.testCtx, s.meta(), 1))

	_, err = s.repo.BeginTransactional(s.testCtx)
	s.Require().ErrorIs(err, model.ErrAlreadyInitialized)

	_, err = s.repo.BeginStaged(s.testCtx)
	s.Require().ErrorIs(err, model.ErrAlreadyInitialized)
}

func (s *RepositorySuite) TestConcurrentImportersOnlyOneWins() {
	first, err := s.repo.BeginTransactional(s.testCtx)
	s.Require().NoError(err)

	type result struct {
		session *TxSession
		err     error
	}
	second := make(chan result, 1)
	go func() {
		session, err := s.repo.BeginTransactional(s.testCtx)
		second <- result{session: session, err: err}
	}()

	select {
	case r := <-second:
		s.FailNow("second importer was not blocked", "err: %v", r.err)
	case <-time.After(500 * time.Millisecond):
	}

	_, err = first.InsertUTXOs(s.testCtx, newEntries(0x01, 2))
	s.Require().NoError(err)
	s.Require().NoError(first.Commit(s.testCtx, s.meta(), 2))

	r := <-second
	s.Require().ErrorIs(r.err, model.ErrAlreadyInitialized)
	s.Equal(int64(2), s.countRows("utxos"))
}

func (s *RepositorySuite) TestStagedImportPublishes() {
	session, err := s.repo.BeginStaged(s.testCtx)
	s.Require().NoError(err)
	s.True(s.tableExists("utxos_staging"))

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := byte(1); i <= 4; i++ {
		wg.Add(1)
		go func(txByte byte) {
			defer wg.Done()
			_, err := session.InsertUTXOs(s.testCtx, newEntries(txByte, 25))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	s.Equal(int64(0), s.countRows("utxos"))
	s.Require().NoError(session.Commit(s.testCtx, s.meta(), 100))

	s.Equal(int64(100), s.countRows("utxos"))
	s.Equal(int64(1), s.countRows("meta"))
	s.False(s.tableExists("utxos_staging"))
}

func (s *RepositorySuite) TestStagedAbortDropsStaging() {
	session, err := s.repo.BeginStaged(s.testCtx)
	s.Require().NoError(err)
	_, err = session.InsertUTXOs(s.testCtx, newEntries(0x01, 10))
	s.Require().NoError(err)

	s.Require().NoError(session.Abort(s.testCtx))

	s.False(s.tableExists("utxos_staging"))
	s.Equal(int64(0), s.countRows("utxos"))
	s.Equal(int64(0), s.countRows("meta"))
}

func (s *RepositorySuite) TestStagedCommitRejectsCountMismatch() {
	session, err := s.repo.BeginStaged(s.testCtx)
	s.Require().NoError(err)
	_, err = session.InsertUTXOs(s.testCtx, newEntries(0x01, 10))
	s.Require().NoError(err)

	s.Require().ErrorIs(session.Commit(s.testCtx, s.meta(), 11), model.ErrLoadFailure)

	s.Equal(int64(0), s.countRows("utxos"))
	s.Equal(int64(0), s.countRows("meta"))
	s.False(s.tableExists("utxos_staging"))
}

func (s *RepositorySuite) TestStagedDropsLeftoverStaging() {
	_, err := s.repo.pool.Exec(s.testCtx, createStagingQuery)
	s.Require().NoError(err)
	_, err = s.repo.pool.CopyFrom(s.testCtx, pgx.Identifier{utxosStagingTable}, utxoColumns, s.rowsSource(newEntries(0x09, 3)))
	s.Require().NoError(err)

	session, err := s.repo.BeginStaged(s.testCtx)
	s.Require().NoError(err)
	_, err = session.InsertUTXOs(s.testCtx, newEntries(0x01, 2))
	s.Require().NoError(err)
	s.Require().NoError(session.Commit(s.testCtx, s.meta(), 2))

	s.Equal(int64(2), s.countRows("utxos"))
}

func (s *RepositorySuite) TestStagedAbortAfterCanceledContext() {
	ctx, cancel := context.WithCancel(s.testCtx)
	session, err := s.repo.BeginStaged(ctx)
	s.Require().NoError(err)
	cancel()

	s.Require().NoError(session.Abort(ctx))
	s.False(s.tableExists("utxos_staging"))
}
