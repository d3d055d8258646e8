package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/klingon-exchange/coinaddr/pkg/hashing"
)

// PublicKey is a secp256k1 key plus the serialization form it was given in.
// The form decides which hash the address commits to.
type PublicKey struct {
	Key        *btcec.PublicKey
	Compressed bool
}

// ParsePublicKey parses a 33-byte compressed or 65-byte uncompressed key.
func ParsePublicKey(b []byte) (PublicKey, error) {
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return PublicKey{}, fmt.Errorf("failed to parse public key: %w", err)
	}
	return PublicKey{Key: key, Compressed: len(b) == secp256k1.PubKeyBytesLenCompressed}, nil
}

// Serialize returns the key in its recorded form.
func (pk PublicKey) Serialize() []byte {
	if pk.Compressed {
		return pk.Key.SerializeCompressed()
	}
	return pk.Key.SerializeUncompressed()
}

// Hash160 returns HASH160 of the serialized key.
func (pk PublicKey) Hash160() hashing.Hash160 {
	return hashing.Hash160Of(pk.Serialize())
}
