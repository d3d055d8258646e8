// Package hashing provides the digests used by address encoding.
package hashing

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD-160 is part of the address format
)

// Hash160Size is the length of a HASH160 digest.
const Hash160Size = ripemd160.Size

// Hash160 is a 20-byte RIPEMD-160(SHA-256(x)) digest.
type Hash160 [Hash160Size]byte

// Sha256 returns SHA-256(b).
func Sha256(b []byte) [32]byte {
	return chainhash.HashH(b)
}

// Sha256d returns SHA-256(SHA-256(b)).
func Sha256d(b []byte) [32]byte {
	return chainhash.DoubleHashH(b)
}

// Ripemd160 returns RIPEMD-160(b).
func Ripemd160(b []byte) Hash160 {
	h := ripemd160.New()
	h.Write(b)

	var out Hash160
	copy(out[:], h.Sum(nil))
	return out
}

// Hash160Of returns RIPEMD-160(SHA-256(b)), the digest behind P2PKH and P2SH.
func Hash160Of(b []byte) Hash160 {
	sha := Sha256(b)
	return Ripemd160(sha[:])
}

// Checksum returns the first four bytes of SHA-256d(b).
func Checksum(b []byte) [4]byte {
	var cksum [4]byte
	h := Sha256d(b)
	copy(cksum[:], h[:4])
	return cksum
}

// Hash160FromSlice copies a 20-byte slice into a Hash160.
func Hash160FromSlice(b []byte) (Hash160, bool) {
	var h Hash160
	if len(b) != Hash160Size {
		return h, false
	}
	copy(h[:], b)
	return h, true
}
