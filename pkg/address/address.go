// Package address converts between payloads, locking scripts and text addresses
// for any registered coin profile.
//
// Key and script hashes are written as Base58Check with the profile's version
// bytes; witness programs are written as bech32 under the profile's prefix.
// Parse goes the other way and recovers the network from the prefix or version.
package address

import (
	"fmt"
	"strings"

	"github.com/klingon-exchange/coinaddr/pkg/base58check"
	"github.com/klingon-exchange/coinaddr/pkg/chain"
	"github.com/klingon-exchange/coinaddr/pkg/hashing"
	"github.com/klingon-exchange/coinaddr/pkg/helpers"
	"github.com/klingon-exchange/coinaddr/pkg/script"
	"github.com/klingon-exchange/coinaddr/pkg/segwit"
)

// Address is a payload bound to a network and a coin profile.
type Address struct {
	Payload Payload
	Network chain.Network
	Profile chain.Profile
}

// New returns an address owning copies of the payload and profile.
func New(payload Payload, net chain.Network, profile chain.Profile) *Address {
	if payload.Program != nil {
		payload.Program = append([]byte(nil), payload.Program...)
	}
	return &Address{Payload: payload, Network: net, Profile: profile.Clone()}
}

// P2PKH creates a pay-to-pubkey-hash address. Uncompressed keys are hashed in
// their uncompressed form.
func P2PKH(pk PublicKey, net chain.Network, profile chain.Profile) *Address {
	return New(PubKeyHashPayload(pk.Hash160()), net, profile)
}

// P2SH creates a pay-to-script-hash address for a redeem script.
func P2SH(redeemScript []byte, net chain.Network, profile chain.Profile) *Address {
	return New(ScriptHashPayload(hashing.Hash160Of(redeemScript)), net, profile)
}

// P2WPKH creates a native SegWit key hash address.
func P2WPKH(pk PublicKey, net chain.Network, profile chain.Profile) (*Address, error) {
	if !pk.Compressed {
		return nil, ErrUncompressedPubkey
	}
	h := pk.Hash160()
	return New(witnessPayload(0, h[:]), net, profile), nil
}

// P2SHWPKH creates a P2WPKH address nested in P2SH, payable from wallets that
// only know legacy addresses.
func P2SHWPKH(pk PublicKey, net chain.Network, profile chain.Profile) (*Address, error) {
	if !pk.Compressed {
		return nil, ErrUncompressedPubkey
	}
	h := pk.Hash160()
	redeem := script.PayToWitnessProgram(0, h[:])
	return New(ScriptHashPayload(hashing.Hash160Of(redeem)), net, profile), nil
}

// P2WSH creates a native SegWit script hash address.
func P2WSH(witnessScript []byte, net chain.Network, profile chain.Profile) *Address {
	h := hashing.Sha256(witnessScript)
	return New(witnessPayload(0, h[:]), net, profile)
}

// P2SHWSH creates a P2WSH address nested in P2SH.
func P2SHWSH(witnessScript []byte, net chain.Network, profile chain.Profile) *Address {
	h := hashing.Sha256(witnessScript)
	redeem := script.PayToWitnessProgram(0, h[:])
	return New(ScriptHashPayload(hashing.Hash160Of(redeem)), net, profile)
}

// witnessPayload builds a payload whose version and length are known to be valid.
func witnessPayload(version byte, program []byte) Payload {
	p, err := NewWitnessProgram(version, program)
	if err != nil {
		panic(fmt.Sprintf("address: witness program v%d: %v", version, err))
	}
	return p
}

// FromScript returns the address for a standard locking script.
func FromScript(s []byte, net chain.Network, profile chain.Profile) (*Address, bool) {
	payload, ok := PayloadFromScript(s)
	if !ok {
		return nil, false
	}
	return New(payload, net, profile), true
}

// Parse decodes a text address under a profile.
//
// A bech32 prefix matching the profile's testnet prefix, its mainnet prefix or
// the regtest prefix selects the bech32 path, and its result is final. Anything
// else is decoded as Base58Check, where the version bytes select the network.
// Base58 addresses never decode to signet or regtest since those share the
// testnet versions.
func Parse(s string, profile chain.Profile) (*Address, error) {
	if net, ok := bech32Network(strings.ToLower(segwit.Prefix(s)), profile); ok {
		_, version, program, err := segwit.Decode(s)
		if err != nil {
			return nil, err
		}
		p := Payload{Kind: WitnessProgram, Version: version, Program: program}
		return New(p, net, profile), nil
	}
	return parseBase58(s, profile)
}

func bech32Network(prefix string, profile chain.Profile) (chain.Network, bool) {
	switch {
	case profile.Bech32Test != chain.NoSegwit && prefix == profile.Bech32Test:
		return chain.Testnet, true
	case profile.Bech32Main != chain.NoSegwit && prefix == profile.Bech32Main:
		return chain.Mainnet, true
	case prefix == chain.RegtestBech32:
		return chain.Regtest, true
	default:
		return "", false
	}
}

func parseBase58(s string, profile chain.Profile) (*Address, error) {
	data, err := base58check.Decode(s)
	if err != nil {
		return nil, err
	}

	n := profile.PrefixLen()
	if len(data) != n+hashing.Hash160Size {
		return nil, base58check.LengthError(len(data))
	}
	version := data[:n]
	h, _ := hashing.Hash160FromSlice(data[n:])

	switch {
	case helpers.BytesEqual(version, profile.PubKeyHashMain):
		return New(PubKeyHashPayload(h), chain.Mainnet, profile), nil
	case helpers.BytesEqual(version, profile.ScriptHashMain):
		return New(ScriptHashPayload(h), chain.Mainnet, profile), nil
	case helpers.BytesEqual(version, profile.PubKeyHashTest):
		return New(PubKeyHashPayload(h), chain.Testnet, profile), nil
	case helpers.BytesEqual(version, profile.ScriptHashTest):
		return New(ScriptHashPayload(h), chain.Testnet, profile), nil
	default:
		return nil, base58check.VersionError(version)
	}
}

// ParseAny tries every registered profile in registration order and returns
// the first address that parses. On failure it returns the Bitcoin error, or
// the first error when Bitcoin is not registered.
func ParseAny(s string) (*Address, error) {
	var firstErr, btcErr error
	for _, symbol := range chain.List() {
		profile, ok := chain.Get(symbol)
		if !ok {
			continue
		}
		addr, err := Parse(s, profile)
		if err == nil {
			return addr, nil
		}
		if firstErr == nil {
			firstErr = err
		}
		if symbol == "BTC" {
			btcErr = err
		}
	}

	if btcErr != nil {
		return nil, btcErr
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, chain.ErrUnknownProfile
}

// Type classifies the address. Witness programs other than version 0 with 20
// or 32 bytes are AddressNonStandard even though they encode and parse.
func (a *Address) Type() Type {
	switch a.Payload.Kind {
	case PubKeyHash:
		return AddressP2PKH
	case ScriptHash:
		return AddressP2SH
	case WitnessProgram:
		if a.Payload.Version != 0 {
			return AddressNonStandard
		}
		switch len(a.Payload.Program) {
		case segwit.V0PubKeyHashLen:
			return AddressP2WPKH
		case segwit.V0ScriptHashLen:
			return AddressP2WSH
		}
	}
	return AddressNonStandard
}

// IsStandard reports whether Type is not AddressNonStandard.
func (a *Address) IsStandard() bool {
	return a.Type() != AddressNonStandard
}

// Encode returns the canonical text form.
func (a *Address) Encode() (string, error) {
	switch a.Payload.Kind {
	case PubKeyHash:
		return base58check.Encode(a.Profile.PubKeyHashVersion(a.Network), a.Payload.Hash[:]), nil
	case ScriptHash:
		return base58check.Encode(a.Profile.ScriptHashVersion(a.Network), a.Payload.Hash[:]), nil
	case WitnessProgram:
		hrp := a.Profile.Bech32Prefix(a.Network)
		if hrp == chain.NoSegwit {
			return "", fmt.Errorf("%w: %s %s", ErrSegwitUnsupported, a.Profile.Symbol, a.Network)
		}
		return segwit.Encode(hrp, a.Payload.Version, a.Payload.Program)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownPayload, a.Payload.Kind)
	}
}

// String returns the canonical text form, or "" when the profile cannot encode
// the payload.
func (a *Address) String() string {
	s, err := a.Encode()
	if err != nil {
		return ""
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (a *Address) MarshalText() ([]byte, error) {
	s, err := a.Encode()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// ScriptPubKey returns the locking script the address pays to.
func (a *Address) ScriptPubKey() []byte {
	return a.Payload.ScriptPubKey()
}

// WithProfile returns the same payload and network under another coin profile.
func (a *Address) WithProfile(profile chain.Profile) *Address {
	return New(a.Payload, a.Network, profile)
}

// WithNetwork returns the same payload and profile on another network.
func (a *Address) WithNetwork(net chain.Network) *Address {
	return New(a.Payload, net, a.Profile)
}

// Equal reports whether payload, network and profile all match. Two nil
// addresses are equal.
func (a *Address) Equal(o *Address) bool {
	return a.Compare(o) == 0
}

// Compare orders addresses by payload, network, then profile. A nil address
// sorts first.
func (a *Address) Compare(o *Address) int {
	switch {
	case a == nil && o == nil:
		return 0
	case a == nil:
		return -1
	case o == nil:
		return 1
	}
	if c := a.Payload.Compare(o.Payload); c != 0 {
		return c
	}
	if c := chain.CompareNetworks(a.Network, o.Network); c != 0 {
		return c
	}
	return a.Profile.Compare(o.Profile)
}
