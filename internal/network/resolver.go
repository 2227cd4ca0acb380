// Package network resolves and reconciles Kaspa network identities.
package network

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
)

// Resolve builds a network identity from configured values.
// Testnets must carry a suffix; every other network type forbids one.
func Resolve(networkType string, suffix *uint32) (model.NetworkIdentity, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(networkType)), model.NetworkPrefix())

	var t model.NetworkType
	for _, known := range model.NetworkTypes {
		if name == string(known) {
			t = known
			break
		}
	}
	if t == "" {
		return model.NetworkIdentity{}, fmt.Errorf("%w: unknown network type %q", model.ErrInvalidConfiguration, networkType)
	}

	switch {
	case t == model.Testnet && suffix == nil:
		return model.NetworkIdentity{}, fmt.Errorf("%w: network %s requires a suffix", model.ErrInvalidConfiguration, t)
	case t != model.Testnet && suffix != nil:
		return model.NetworkIdentity{}, fmt.Errorf("%w: network %s does not accept suffix %d", model.ErrInvalidConfiguration, t, *suffix)
	}

	return model.NewNetworkIdentity(t, suffix), nil
}

// Parse resolves a network name as reported by a node, e.g. "kaspa-testnet-11" or "mainnet".
func Parse(name string) (model.NetworkIdentity, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), model.NetworkPrefix())

	networkType, rawSuffix, hasSuffix := strings.Cut(trimmed, "-")
	if !hasSuffix {
		return Resolve(networkType, nil)
	}

	suffix, err := strconv.ParseUint(rawSuffix, 10, 32)
	if err != nil {
		return model.NetworkIdentity{}, fmt.Errorf("%w: invalid network suffix in %q", model.ErrInvalidConfiguration, name)
	}
	s := uint32(suffix)
	return Resolve(networkType, &s)
}

// Reconcile fails when the remote identity differs from the local one.
func Reconcile(local, remote model.NetworkIdentity) error {
	if !local.Equal(remote) {
		return fmt.Errorf("%w: configured %s, got %s", model.ErrNetworkMismatch, local, remote)
	}
	return nil
}
