package model

// ScriptClass is the standard form of a script public key.
type ScriptClass int16

const (
	ScriptClassNonStandard ScriptClass = iota
	ScriptClassPubKey
	ScriptClassPubKeyECDSA
	ScriptClassScriptHash
)

// ScriptClasses lists every class stored in the script_classes lookup table.
var ScriptClasses = []ScriptClass{
	ScriptClassNonStandard,
	ScriptClassPubKey,
	ScriptClassPubKeyECDSA,
	ScriptClassScriptHash,
}

func (c ScriptClass) String() string {
	switch c {
	case ScriptClassPubKey:
		return "pubkey"
	case ScriptClassPubKeyECDSA:
		return "pubkeyecdsa"
	case ScriptClassScriptHash:
		return "scripthash"
	default:
		return "nonstandard"
	}
}
