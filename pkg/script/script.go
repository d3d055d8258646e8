// Package script builds and recognises the standard locking scripts that an
// address can stand for:
//
//	P2PKH:   OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG
//	P2SH:    OP_HASH160 <20-byte hash> OP_EQUAL
//	witness: <OP_0|OP_1..OP_16> <2..40-byte program>
package script

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
)

// Class is the recognised shape of a locking script.
type Class int

const (
	NonStandard Class = iota
	PubKeyHash
	ScriptHash
	WitnessProgram
)

func (c Class) String() string {
	switch c {
	case PubKeyHash:
		return "pubkeyhash"
	case ScriptHash:
		return "scripthash"
	case WitnessProgram:
		return "witness_program"
	default:
		return "nonstandard"
	}
}

// Byte offsets of the embedded data in each template.
const (
	PubKeyHashOffset     = 3 // after OP_DUP OP_HASH160 OP_DATA_20
	ScriptHashOffset     = 2 // after OP_HASH160 OP_DATA_20
	WitnessProgramOffset = 2 // after the version opcode and the push opcode
)

// witnessVersionBase is subtracted from OP_1..OP_16 to get versions 1..16.
const witnessVersionBase = txscript.OP_1 - 1

// MaxWitnessVersion is the highest witness version.
const MaxWitnessVersion = 16

// Classify reports which standard template the script matches.
func Classify(script []byte) Class {
	switch {
	case txscript.IsPayToPubKeyHash(script):
		return PubKeyHash
	case txscript.IsPayToScriptHash(script):
		return ScriptHash
	case txscript.IsWitnessProgram(script):
		return WitnessProgram
	default:
		return NonStandard
	}
}

// WitnessVersion decodes the version from a witness program's first opcode.
func WitnessVersion(op byte) (byte, bool) {
	switch {
	case op == txscript.OP_0:
		return 0, true
	case op >= txscript.OP_1 && op <= txscript.OP_16:
		return op - witnessVersionBase, true
	default:
		return 0, false
	}
}

// PayToPubKeyHash returns the P2PKH script for a 20-byte hash.
func PayToPubKeyHash(hash []byte) []byte {
	return mustScript(txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(hash).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG))
}

// PayToScriptHash returns the P2SH script for a 20-byte hash.
func PayToScriptHash(hash []byte) []byte {
	return mustScript(txscript.NewScriptBuilder().
		AddOp(txscript.OP_HASH160).
		AddData(hash).
		AddOp(txscript.OP_EQUAL))
}

// PayToWitnessProgram returns `<version> <program>`. Version 0 is pushed as
// OP_0 and 1..16 as OP_1..OP_16.
func PayToWitnessProgram(version byte, program []byte) []byte {
	return mustScript(txscript.NewScriptBuilder().
		AddInt64(int64(version)).
		AddData(program))
}

// Disasm renders a script as opcodes, for display.
func Disasm(script []byte) (string, error) {
	return txscript.DisasmString(script)
}

// mustScript finalises a builder. The templates here are far below the script
// size limit, so an error means a bug in this package.
func mustScript(b *txscript.ScriptBuilder) []byte {
	s, err := b.Script()
	if err != nil {
		panic(fmt.Sprintf("script: building standard template: %v", err))
	}
	return s
}
