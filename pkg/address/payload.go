package address

import (
	"fmt"

	"github.com/klingon-exchange/coinaddr/pkg/hashing"
	"github.com/klingon-exchange/coinaddr/pkg/helpers"
	"github.com/klingon-exchange/coinaddr/pkg/script"
	"github.com/klingon-exchange/coinaddr/pkg/segwit"
)

// PayloadKind tags which destination a Payload holds.
type PayloadKind int

const (
	PubKeyHash PayloadKind = iota
	ScriptHash
	WitnessProgram
)

func (k PayloadKind) String() string {
	switch k {
	case PubKeyHash:
		return "pubkeyhash"
	case ScriptHash:
		return "scripthash"
	case WitnessProgram:
		return "witness_program"
	default:
		return fmt.Sprintf("PayloadKind(%d)", int(k))
	}
}

// Payload is a spendable destination independent of network and text encoding.
// Hash is used by PubKeyHash and ScriptHash; Version and Program by WitnessProgram.
type Payload struct {
	Kind    PayloadKind
	Hash    hashing.Hash160
	Version byte
	Program []byte
}

// PubKeyHashPayload returns a P2PKH payload.
func PubKeyHashPayload(h hashing.Hash160) Payload {
	return Payload{Kind: PubKeyHash, Hash: h}
}

// ScriptHashPayload returns a P2SH payload.
func ScriptHashPayload(h hashing.Hash160) Payload {
	return Payload{Kind: ScriptHash, Hash: h}
}

// NewWitnessProgram checks the version and the 2..40 byte bound and returns a
// witness payload. Version 0 programs of other lengths than 20 and 32 are
// allowed here; they only fail when parsed back from text.
func NewWitnessProgram(version byte, program []byte) (Payload, error) {
	if version > segwit.MaxWitnessVersion {
		return Payload{}, &segwit.InvalidWitnessVersionError{Version: version}
	}
	if len(program) < segwit.MinProgramLen || len(program) > segwit.MaxProgramLen {
		return Payload{}, &segwit.InvalidWitnessProgramLengthError{Length: len(program)}
	}
	return Payload{
		Kind:    WitnessProgram,
		Version: version,
		Program: append([]byte(nil), program...),
	}, nil
}

// PayloadFromScript recognises a standard locking script.
func PayloadFromScript(s []byte) (Payload, bool) {
	switch script.Classify(s) {
	case script.PubKeyHash:
		h, _ := hashing.Hash160FromSlice(s[script.PubKeyHashOffset : script.PubKeyHashOffset+hashing.Hash160Size])
		return PubKeyHashPayload(h), true
	case script.ScriptHash:
		h, _ := hashing.Hash160FromSlice(s[script.ScriptHashOffset : script.ScriptHashOffset+hashing.Hash160Size])
		return ScriptHashPayload(h), true
	case script.WitnessProgram:
		version, ok := script.WitnessVersion(s[0])
		if !ok {
			return Payload{}, false
		}
		p, err := NewWitnessProgram(version, s[script.WitnessProgramOffset:])
		if err != nil {
			return Payload{}, false
		}
		return p, true
	default:
		return Payload{}, false
	}
}

// ScriptPubKey returns the canonical locking script for the payload.
func (p Payload) ScriptPubKey() []byte {
	switch p.Kind {
	case PubKeyHash:
		return script.PayToPubKeyHash(p.Hash[:])
	case ScriptHash:
		return script.PayToScriptHash(p.Hash[:])
	case WitnessProgram:
		return script.PayToWitnessProgram(p.Version, p.Program)
	default:
		return nil
	}
}

// Equal reports whether two payloads describe the same destination.
func (p Payload) Equal(o Payload) bool {
	return p.Compare(o) == 0
}

// Compare orders payloads by kind, then hash or version, then program bytes.
func (p Payload) Compare(o Payload) int {
	switch {
	case p.Kind < o.Kind:
		return -1
	case p.Kind > o.Kind:
		return 1
	}

	if p.Kind != WitnessProgram {
		return helpers.CompareBytes(p.Hash[:], o.Hash[:])
	}

	switch {
	case p.Version < o.Version:
		return -1
	case p.Version > o.Version:
		return 1
	}
	return helpers.CompareBytes(p.Program, o.Program)
}
