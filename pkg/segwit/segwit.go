// Package segwit encodes and decodes SegWit witness programs as BIP-173 bech32
// strings. Checksums and 5-bit regrouping come from btcutil/bech32; this package
// adds the BIP-141 version and length gates.
package segwit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// Separator splits the human-readable prefix from the data part.
	Separator = '1'

	MaxWitnessVersion = 16
	MinProgramLen     = 2
	MaxProgramLen     = 40

	// Program lengths allowed for version 0 (P2WPKH and P2WSH).
	V0PubKeyHashLen = 20
	V0ScriptHashLen = 32

	// MaxLength is the BIP-173 limit on a whole bech32 string.
	MaxLength = 90
	// ChecksumLen is the number of checksum characters after the data.
	ChecksumLen = 6
)

// ErrEmptyPayload is returned when the bech32 data part carries no groups.
var ErrEmptyPayload = errors.New("segwit: empty data payload")

// errBech32m reports a checksum computed with the BIP-350 constant.
var errBech32m = errors.New("bech32m checksum not accepted")

// Bech32Error wraps a failure of the underlying bech32 coding.
type Bech32Error struct {
	Err error
}

func (e *Bech32Error) Error() string {
	return "segwit: bech32: " + e.Err.Error()
}

func (e *Bech32Error) Unwrap() error {
	return e.Err
}

// InvalidWitnessVersionError is returned for versions above 16.
type InvalidWitnessVersionError struct {
	Version byte
}

func (e *InvalidWitnessVersionError) Error() string {
	return fmt.Sprintf("segwit: invalid witness version %d", e.Version)
}

// InvalidWitnessProgramLengthError is returned for programs outside [2,40] bytes.
type InvalidWitnessProgramLengthError struct {
	Length int
}

func (e *InvalidWitnessProgramLengthError) Error() string {
	return fmt.Sprintf("segwit: invalid witness program length %d", e.Length)
}

// InvalidSegwitV0ProgramLengthError is returned for version 0 programs that are
// neither 20 nor 32 bytes.
type InvalidSegwitV0ProgramLengthError struct {
	Length int
}

func (e *InvalidSegwitV0ProgramLengthError) Error() string {
	return fmt.Sprintf("segwit: invalid v0 program length %d", e.Length)
}

// Prefix returns the part of s before the last separator, or s itself when
// there is no separator.
func Prefix(s string) string {
	i := strings.LastIndexByte(s, Separator)
	if i < 0 {
		return s
	}
	return s[:i]
}

// ValidateProgram applies the BIP-141 gates in order: version range, general
// length bound, then the version 0 lengths.
func ValidateProgram(version byte, program []byte) error {
	if version > MaxWitnessVersion {
		return &InvalidWitnessVersionError{Version: version}
	}
	if len(program) < MinProgramLen || len(program) > MaxProgramLen {
		return &InvalidWitnessProgramLengthError{Length: len(program)}
	}
	if version == 0 && len(program) != V0PubKeyHashLen && len(program) != V0ScriptHashLen {
		return &InvalidSegwitV0ProgramLengthError{Length: len(program)}
	}
	return nil
}

// Encode returns the bech32 address for a witness program under hrp.
// Program lengths are not checked here; Decode enforces them. Output longer
// than MaxLength is refused since Decode would reject it.
func Encode(hrp string, version byte, program []byte) (string, error) {
	if version > MaxWitnessVersion {
		return "", &InvalidWitnessVersionError{Version: version}
	}

	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", &Bech32Error{Err: err}
	}

	data := make([]byte, 0, len(converted)+1)
	data = append(data, version)
	data = append(data, converted...)

	if n := len(hrp) + 1 + len(data) + ChecksumLen; n > MaxLength {
		return "", &Bech32Error{Err: fmt.Errorf("encoded length %d exceeds %d", n, MaxLength)}
	}

	s, err := bech32.Encode(hrp, data)
	if err != nil {
		return "", &Bech32Error{Err: err}
	}
	return s, nil
}

// Decode parses a bech32 witness address and returns its lower-case prefix,
// witness version and program.
func Decode(s string) (hrp string, version byte, program []byte, err error) {
	hrp, data, variant, err := bech32.DecodeGeneric(s)
	if err != nil {
		return "", 0, nil, &Bech32Error{Err: err}
	}
	if variant != bech32.Version0 {
		return "", 0, nil, &Bech32Error{Err: errBech32m}
	}

	if len(data) == 0 {
		return "", 0, nil, ErrEmptyPayload
	}

	version = data[0]
	if version > MaxWitnessVersion {
		return "", 0, nil, &InvalidWitnessVersionError{Version: version}
	}

	program, err = bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return "", 0, nil, &Bech32Error{Err: err}
	}

	if err := ValidateProgram(version, program); err != nil {
		return "", 0, nil, err
	}
	return hrp, version, program, nil
}
