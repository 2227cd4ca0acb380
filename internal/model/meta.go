package model

import "time"

// MetaRecord marks a target database as seeded for a network. It is written once.
type MetaRecord struct {
	Network    NetworkIdentity
	ImportedAt time.Time
}

// ConsensusStoreLocation points at the active consensus database generation of a node.
type ConsensusStoreLocation struct {
	BaseDir      string
	Network      NetworkIdentity
	Generation   uint64
	ConsensusDir string
}

// ServerInfo is what the import needs to know about the RPC peer.
type ServerInfo struct {
	IsSynced      bool
	Network       NetworkIdentity
	ServerVersion string
}
