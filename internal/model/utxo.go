package model

import (
	"encoding/hex"
	"strconv"
)

// TransactionIDSize is the length of a transaction id in bytes.
const TransactionIDSize = 32

// TransactionID is a 32-byte transaction hash.
type TransactionID [TransactionIDSize]byte

// String returns the hex encoding of the id.
func (id TransactionID) String() string {
	return hex.EncodeToString(id[:])
}

// Outpoint uniquely identifies a transaction output.
type Outpoint struct {
	TransactionID TransactionID
	Index         uint32
}

func (o Outpoint) String() string {
	return o.TransactionID.String() + ":" + strconv.FormatUint(uint64(o.Index), 10)
}

// ScriptPublicKey is a versioned locking script.
type ScriptPublicKey struct {
	Version uint16
	Script  []byte
}

// UTXOEntry is an unspent output as of the pruning point.
type UTXOEntry struct {
	Outpoint        Outpoint
	Amount          uint64
	ScriptPublicKey ScriptPublicKey
	BlockDAAScore   uint64
	IsCoinbase      bool
}

// ImportBatch groups entries written by a single bulk insert.
type ImportBatch []UTXOEntry
