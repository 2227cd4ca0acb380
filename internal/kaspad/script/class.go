// Package script classifies Kaspa script public keys.
package script

import (
	"github.com/kaspanet/kaspad/domain/consensus/utils/constants"
	"github.com/kaspanet/kaspad/domain/consensus/utils/txscript"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
)

// Classify returns the standard class of a script public key.
// Scripts with a version above the one the node's script engine understands are always non-standard.
func Classify(spk model.ScriptPublicKey) model.ScriptClass {
	if spk.Version > constants.MaxScriptPublicKeyVersion {
		return model.ScriptClassNonStandard
	}

	switch txscript.GetScriptClass(spk.Script) {
	case txscript.PubKeyTy:
		return model.ScriptClassPubKey
	case txscript.PubKeyECDSATy:
		return model.ScriptClassPubKeyECDSA
	case txscript.ScriptHashTy:
		return model.ScriptClassScriptHash
	default:
		return model.ScriptClassNonStandard
	}
}
