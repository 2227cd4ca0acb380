package store

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/kaspanet/kaspad/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspad/domain/consensus/utils/utxo"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
)

var (
	pruningPointUTXOSetPrefix      = []byte("pruning-point-utxo-set/")
	updatingPruningPointUTXOSetKey = []byte("updating-pruning-point-utxo-set")
)

const outpointKeySize = model.TransactionIDSize + 4

// Outpoint index is big endian so keys iterate in index order within a transaction.
var outpointIndexByteOrder = binary.BigEndian

// UpdatingMarkerKey returns the key the node sets while it rewrites the pruning point UTXO set.
func UpdatingMarkerKey() []byte {
	return append([]byte(nil), updatingPruningPointUTXOSetKey...)
}

// EncodeKey returns the store key of an outpoint in the pruning point UTXO set.
func EncodeKey(outpoint model.Outpoint) []byte {
	key := make([]byte, 0, len(pruningPointUTXOSetPrefix)+outpointKeySize)
	key = append(key, pruningPointUTXOSetPrefix...)
	key = append(key, outpoint.TransactionID[:]...)
	return outpointIndexByteOrder.AppendUint32(key, outpoint.Index)
}

// EncodeEntry serializes an entry the way the node does, outpoint included.
func EncodeEntry(entry model.UTXOEntry) ([]byte, error) {
	spk := &externalapi.ScriptPublicKey{
		Script:  append([]byte(nil), entry.ScriptPublicKey.Script...),
		Version: entry.ScriptPublicKey.Version,
	}
	value, err := utxo.SerializeUTXO(
		utxo.NewUTXOEntry(entry.Amount, spk, entry.IsCoinbase, entry.BlockDAAScore),
		domainOutpoint(entry.Outpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("serialize entry %s: %w", entry.Outpoint, err)
	}
	return value, nil
}

// DecodeEntry rebuilds an entry from a store key and value. The returned entry does not alias its inputs.
func DecodeEntry(key, value []byte) (model.UTXOEntry, error) {
	if !bytes.HasPrefix(key, pruningPointUTXOSetPrefix) {
		return model.UTXOEntry{}, fmt.Errorf("key %x is outside the pruning point utxo set", key)
	}
	rawOutpoint := key[len(pruningPointUTXOSetPrefix):]
	if len(rawOutpoint) != outpointKeySize {
		return model.UTXOEntry{}, fmt.Errorf("invalid outpoint key length %d", len(rawOutpoint))
	}
	var keyed model.Outpoint
	copy(keyed.TransactionID[:], rawOutpoint[:model.TransactionIDSize])
	keyed.Index = outpointIndexByteOrder.Uint32(rawOutpoint[model.TransactionIDSize:])

	domainEntry, outpoint, err := utxo.DeserializeUTXO(value)
	if err != nil {
		return model.UTXOEntry{}, fmt.Errorf("entry %s: %w", keyed, err)
	}
	if !outpoint.Equal(domainOutpoint(keyed)) {
		return model.UTXOEntry{}, fmt.Errorf("entry %s carries outpoint %s:%d", keyed, outpoint.TransactionID.String(), outpoint.Index)
	}

	// a short script read or trailing bytes only show up as a size difference
	reencoded, err := utxo.SerializeUTXO(domainEntry, outpoint)
	if err != nil {
		return model.UTXOEntry{}, fmt.Errorf("entry %s: %w", keyed, err)
	}
	if len(reencoded) != len(value) {
		return model.UTXOEntry{}, fmt.Errorf("entry %s is %d bytes, decoded %d", keyed, len(value), len(reencoded))
	}

	spk := domainEntry.ScriptPublicKey()
	return model.UTXOEntry{
		Outpoint: keyed,
		Amount:   domainEntry.Amount(),
		ScriptPublicKey: model.ScriptPublicKey{
			Version: spk.Version,
			Script:  append([]byte(nil), spk.Script...),
		},
		BlockDAAScore: domainEntry.BlockDAAScore(),
		IsCoinbase:    domainEntry.IsCoinbase(),
	}, nil
}

func domainOutpoint(o model.Outpoint) *externalapi.DomainOutpoint {
	txID := [externalapi.DomainHashSize]byte(o.TransactionID)
	return externalapi.NewDomainOutpoint(externalapi.NewDomainTransactionIDFromByteArray(&txID), o.Index)
}
