// Package base58check implements Base58Check with version prefixes of any
// length (Zcash uses two bytes). The Base58 alphabet itself comes from btcutil.
package base58check

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/klingon-exchange/coinaddr/pkg/hashing"
	"github.com/klingon-exchange/coinaddr/pkg/helpers"
)

const (
	// MaxEncodedLen bounds the text accepted by Decode. Longer input is
	// rejected before any decoding work is done.
	MaxEncodedLen = 50

	// ChecksumLen is the number of SHA-256d bytes appended to the data.
	ChecksumLen = 4
)

// ErrorKind identifies which check failed.
type ErrorKind int

const (
	InvalidLength ErrorKind = iota + 1
	InvalidChecksum
	InvalidVersion
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidLength:
		return "invalid length"
	case InvalidChecksum:
		return "invalid checksum"
	case InvalidVersion:
		return "invalid version"
	default:
		return "unknown"
	}
}

// Error is a Base58Check decoding failure.
type Error struct {
	Kind    ErrorKind
	Length  int    // set for InvalidLength
	Version []byte // set for InvalidVersion

	// Char and Pos are set when the length failure comes from a byte outside
	// the Base58 alphabet.
	Char byte
	Pos  int
}

// Sentinels for errors.Is; they match any Error of the same kind.
var (
	ErrLength   = &Error{Kind: InvalidLength}
	ErrChecksum = &Error{Kind: InvalidChecksum}
	ErrVersion  = &Error{Kind: InvalidVersion}
)

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidLength:
		if e.Char != 0 {
			return fmt.Sprintf("base58: invalid character %q at position %d", e.Char, e.Pos)
		}
		return fmt.Sprintf("base58: invalid length %d", e.Length)
	case InvalidVersion:
		return fmt.Sprintf("base58: invalid version prefix %s", hex.EncodeToString(e.Version))
	default:
		return "base58: " + e.Kind.String()
	}
}

// Is matches on Kind only.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// LengthError reports data of an unexpected length.
func LengthError(n int) *Error {
	return &Error{Kind: InvalidLength, Length: n}
}

// VersionError reports an unrecognised version prefix.
func VersionError(version []byte) *Error {
	return &Error{Kind: InvalidVersion, Version: append([]byte(nil), version...)}
}

func characterError(s string) *Error {
	for i := 0; i < len(s); i++ {
		if len(base58.Decode(s[i:i+1])) == 0 {
			return &Error{Kind: InvalidLength, Char: s[i], Pos: i}
		}
	}
	return LengthError(0)
}

// Encode returns base58(version || payload || checksum).
func Encode(version, payload []byte) string {
	data := helpers.Concat(version, payload)
	cksum := hashing.Checksum(data)
	return base58.Encode(append(data, cksum[:]...))
}

// Decode verifies the checksum and returns version || payload.
//
// Characters outside the Base58 alphabet make the decoded data empty. That is
// reported as InvalidLength with Char and Pos naming the first offending byte.
func Decode(s string) ([]byte, error) {
	if len(s) > MaxEncodedLen {
		return nil, LengthError(len(s))
	}

	decoded := base58.Decode(s)
	if len(decoded) == 0 && s != "" {
		return nil, characterError(s)
	}
	if len(decoded) < ChecksumLen {
		return nil, LengthError(len(decoded))
	}

	data := decoded[:len(decoded)-ChecksumLen]
	var cksum [ChecksumLen]byte
	copy(cksum[:], decoded[len(decoded)-ChecksumLen:])
	if hashing.Checksum(data) != cksum {
		return nil, &Error{Kind: InvalidChecksum}
	}

	return data, nil
}
