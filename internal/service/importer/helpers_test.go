package importer

import (
	"fmt"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
)

// sliceIterator replays entries and can fail after failAt entries.
type sliceIterator struct {
	entries []model.UTXOEntry
	pos     int
	failAt  int
	err     error
	closed  bool
}

func (it *sliceIterator) Next() bool {
	if it.err != nil || it.closed {
		return false
	}
	if it.failAt > 0 && it.pos == it.failAt {
		it.err = fmt.Errorf("%w: truncated entry", model.ErrExtractionFailure)
		return false
	}
	if it.pos >= len(it.entries) {
		return false
	}
	it.pos++
	return true
}

func (it *sliceIterator) Entry() model.UTXOEntry {
	return it.entries[it.pos-1]
}

func (it *sliceIterator) Err() error {
	return it.err
}

func (it *sliceIterator) Close() error {
	it.closed = true
	return nil
}

func makeEntries(count int) []model.UTXOEntry {
	entries := make([]model.UTXOEntry, 0, count)
	for i := 0; i < count; i++ {
		var txID model.TransactionID
		txID[0] = byte(i)
		entries = append(entries, model.UTXOEntry{
			Outpoint:        model.Outpoint{TransactionID: txID, Index: uint32(i)},
			Amount:          uint64(100 * (i + 1)),
			ScriptPublicKey: model.ScriptPublicKey{Script: []byte{0x51}},
			BlockDAAScore:   uint64(i),
		})
	}
	return entries
}

func testnet11() model.NetworkIdentity {
	suffix := uint32(11)
	return model.NewNetworkIdentity(model.Testnet, &suffix)
}
