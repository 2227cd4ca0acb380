// Package model defines domain models for the pruning-point UTXO import.
package model

import (
	"fmt"
	"strconv"
)

// NetworkType is the kind of Kaspa network a node runs on.
type NetworkType string

var (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
	Devnet  NetworkType = "devnet"
	Simnet  NetworkType = "simnet"
)

// NetworkTypes lists every supported network type in lookup-table order.
var NetworkTypes = []NetworkType{Mainnet, Testnet, Devnet, Simnet}

// networkPrefix is prepended to the canonical identity by the node for its data directories and RPC network names.
const networkPrefix = "kaspa-"

// NetworkIdentity identifies a network by type and optional numeric suffix.
// The zero suffix and a missing suffix are distinct identities.
type NetworkIdentity struct {
	networkType NetworkType
	suffix      uint32
	hasSuffix   bool
}

// NewNetworkIdentity builds an identity without validation; use network.Resolve for configured input.
func NewNetworkIdentity(networkType NetworkType, suffix *uint32) NetworkIdentity {
	id := NetworkIdentity{networkType: networkType}
	if suffix != nil {
		id.suffix = *suffix
		id.hasSuffix = true
	}
	return id
}

// Type returns the network type.
func (n NetworkIdentity) Type() NetworkType {
	return n.networkType
}

// Suffix returns the numeric suffix and whether one is set.
func (n NetworkIdentity) Suffix() (uint32, bool) {
	return n.suffix, n.hasSuffix
}

// SuffixPtr returns a copy of the suffix for nullable storage columns.
func (n NetworkIdentity) SuffixPtr() *uint32 {
	if !n.hasSuffix {
		return nil
	}
	s := n.suffix
	return &s
}

// Equal reports whether both type and suffix match.
func (n NetworkIdentity) Equal(other NetworkIdentity) bool {
	return n == other
}

// String returns the canonical form, e.g. "mainnet" or "testnet-11".
func (n NetworkIdentity) String() string {
	if !n.hasSuffix {
		return string(n.networkType)
	}
	return fmt.Sprintf("%s-%s", n.networkType, strconv.FormatUint(uint64(n.suffix), 10))
}

// Prefixed returns the canonical form with the node's "kaspa-" prefix, e.g. "kaspa-testnet-11".
func (n NetworkIdentity) Prefixed() string {
	return networkPrefix + n.String()
}

// NetworkPrefix is the prefix the node puts in front of canonical network names.
func NetworkPrefix() string {
	return networkPrefix
}
