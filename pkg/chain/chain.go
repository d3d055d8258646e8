// Package chain defines the coin profiles (version bytes and bech32 prefixes)
// that parameterise address encoding for Bitcoin-family coins.
// Built-in profiles are registered from init(); custom ones can be added with Register.
package chain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/klingon-exchange/coinaddr/pkg/helpers"
)

// Network selects which set of version bytes and prefixes an address uses.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Signet  Network = "signet"
	Regtest Network = "regtest"
)

// RegtestBech32 is the bech32 prefix used on regtest for every profile.
const RegtestBech32 = "bcrt"

// NoSegwit marks a profile without SegWit support. The parser never matches it.
const NoSegwit = ""

// MaxVersionLen is the longest Base58Check version prefix a profile may use.
const MaxVersionLen = 2

// MaxBech32PrefixLen is the longest bech32 prefix that still leaves room for a
// 40-byte witness program in a 90-character address: 90 less the separator,
// 65 data characters and 6 checksum characters.
const MaxBech32PrefixLen = 18

// ErrUnknownProfile is returned when a symbol is not registered.
var ErrUnknownProfile = errors.New("unknown coin profile")

// ParseNetwork parses a network name (case-insensitive).
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(s) {
	case "mainnet", "main", "bitcoin":
		return Mainnet, nil
	case "testnet", "test", "testnet3":
		return Testnet, nil
	case "signet":
		return Signet, nil
	case "regtest":
		return Regtest, nil
	default:
		return "", fmt.Errorf("unknown network %q", s)
	}
}

// IsMainnet reports whether the network uses the mainnet version bytes.
// Signet and regtest share testnet versions.
func (n Network) IsMainnet() bool {
	return n == Mainnet
}

func (n Network) rank() int {
	switch n {
	case Mainnet:
		return 0
	case Testnet:
		return 1
	case Signet:
		return 2
	case Regtest:
		return 3
	default:
		return 4
	}
}

// CompareNetworks orders networks mainnet < testnet < signet < regtest.
func CompareNetworks(a, b Network) int {
	ra, rb := a.rank(), b.rank()
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	}
	return strings.Compare(string(a), string(b))
}

// Profile is the address configuration of one coin family.
// Within a profile all four version prefixes share one length.
type Profile struct {
	// Identity
	Symbol string // BTC, LTC, ...
	Name   string // Bitcoin, Litecoin, ...

	// Bech32 human-readable prefixes (NoSegwit when unsupported)
	Bech32Main string
	Bech32Test string

	// Base58Check version prefixes
	PubKeyHashMain []byte
	PubKeyHashTest []byte
	ScriptHashMain []byte
	ScriptHashTest []byte
}

// PrefixLen is the length of the Base58Check version prefix.
func (p Profile) PrefixLen() int {
	return len(p.PubKeyHashMain)
}

// SupportsSegwit reports whether the profile has bech32 prefixes configured.
func (p Profile) SupportsSegwit() bool {
	return p.Bech32Main != NoSegwit || p.Bech32Test != NoSegwit
}

// PubKeyHashVersion returns the P2PKH version prefix for a network.
func (p Profile) PubKeyHashVersion(net Network) []byte {
	if net.IsMainnet() {
		return p.PubKeyHashMain
	}
	return p.PubKeyHashTest
}

// ScriptHashVersion returns the P2SH version prefix for a network.
func (p Profile) ScriptHashVersion(net Network) []byte {
	if net.IsMainnet() {
		return p.ScriptHashMain
	}
	return p.ScriptHashTest
}

// Bech32Prefix returns the human-readable prefix for a network.
// Regtest always maps to RegtestBech32.
func (p Profile) Bech32Prefix(net Network) string {
	switch net {
	case Mainnet:
		return p.Bech32Main
	case Regtest:
		return RegtestBech32
	default:
		return p.Bech32Test
	}
}

// Clone returns a deep copy, so the caller owns its version slices.
func (p Profile) Clone() Profile {
	c := p
	c.PubKeyHashMain = cloneBytes(p.PubKeyHashMain)
	c.PubKeyHashTest = cloneBytes(p.PubKeyHashTest)
	c.ScriptHashMain = cloneBytes(p.ScriptHashMain)
	c.ScriptHashTest = cloneBytes(p.ScriptHashTest)
	return c
}

// Equal reports whether two profiles are identical in every field.
func (p Profile) Equal(o Profile) bool {
	return p.Compare(o) == 0
}

// Compare orders profiles field by field.
func (p Profile) Compare(o Profile) int {
	if c := strings.Compare(p.Symbol, o.Symbol); c != 0 {
		return c
	}
	if c := strings.Compare(p.Name, o.Name); c != 0 {
		return c
	}
	if c := strings.Compare(p.Bech32Main, o.Bech32Main); c != 0 {
		return c
	}
	if c := strings.Compare(p.Bech32Test, o.Bech32Test); c != 0 {
		return c
	}
	for _, pair := range [][2][]byte{
		{p.PubKeyHashMain, o.PubKeyHashMain},
		{p.PubKeyHashTest, o.PubKeyHashTest},
		{p.ScriptHashMain, o.ScriptHashMain},
		{p.ScriptHashTest, o.ScriptHashTest},
	} {
		if c := helpers.CompareBytes(pair[0], pair[1]); c != 0 {
			return c
		}
	}
	return 0
}

// ProfileError describes why a profile failed validation.
type ProfileError struct {
	Symbol string
	Field  string
	Reason string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("profile %s: %s: %s", e.Symbol, e.Field, e.Reason)
}

// Validate checks what the codecs rely on: every version prefix is
// 1..MaxVersionLen bytes, all four share one length and are distinct, and bech32
// prefixes are short lower-case printable ASCII without the separator.
func (p Profile) Validate() error {
	if p.Symbol == "" {
		return &ProfileError{Symbol: "?", Field: "symbol", Reason: "empty"}
	}

	versions := []struct {
		field string
		value []byte
	}{
		{"pubkeyhash_main", p.PubKeyHashMain},
		{"scripthash_main", p.ScriptHashMain},
		{"pubkeyhash_test", p.PubKeyHashTest},
		{"scripthash_test", p.ScriptHashTest},
	}
	prefixLen := p.PrefixLen()
	for i, v := range versions {
		if len(v.value) == 0 || len(v.value) > MaxVersionLen {
			return &ProfileError{Symbol: p.Symbol, Field: v.field,
				Reason: fmt.Sprintf("length %d outside 1..%d", len(v.value), MaxVersionLen)}
		}
		if len(v.value) != prefixLen {
			return &ProfileError{Symbol: p.Symbol, Field: v.field,
				Reason: fmt.Sprintf("length %d differs from pubkeyhash_main length %d", len(v.value), prefixLen)}
		}
		for _, prev := range versions[:i] {
			if helpers.BytesEqual(prev.value, v.value) {
				return &ProfileError{Symbol: p.Symbol, Field: v.field,
					Reason: "same version bytes as " + prev.field}
			}
		}
	}

	if err := validateBech32Prefix(p.Bech32Main); err != nil {
		return &ProfileError{Symbol: p.Symbol, Field: "bech32_main", Reason: err.Error()}
	}
	if err := validateBech32Prefix(p.Bech32Test); err != nil {
		return &ProfileError{Symbol: p.Symbol, Field: "bech32_test", Reason: err.Error()}
	}
	if p.Bech32Main != NoSegwit && p.Bech32Main == p.Bech32Test {
		return &ProfileError{Symbol: p.Symbol, Field: "bech32_test", Reason: "same prefix as bech32_main"}
	}
	return nil
}

func validateBech32Prefix(hrp string) error {
	if hrp == NoSegwit {
		return nil
	}
	if len(hrp) > MaxBech32PrefixLen {
		return fmt.Errorf("prefix longer than %d characters", MaxBech32PrefixLen)
	}
	for i := 0; i < len(hrp); i++ {
		c := hrp[i]
		if c < 33 || c > 126 {
			return fmt.Errorf("invalid character 0x%02x", c)
		}
		if c >= 'A' && c <= 'Z' {
			return fmt.Errorf("prefix must be lower case")
		}
		if c == '1' {
			return fmt.Errorf("prefix must not contain the separator '1'")
		}
	}
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

// Registry of profiles indexed by symbol, in registration order.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]Profile)
	order      []string
)

// Register validates a profile and adds it to the registry, replacing any
// profile with the same symbol.
func Register(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	symbol := strings.ToUpper(p.Symbol)
	if _, ok := registry[symbol]; !ok {
		order = append(order, symbol)
	}
	registry[symbol] = p.Clone()
	return nil
}

// mustRegister is used for the built-in profiles.
func mustRegister(p Profile) {
	if err := Register(p); err != nil {
		panic(err)
	}
}

// Get returns a copy of the profile registered under symbol (case-insensitive).
func Get(symbol string) (Profile, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	p, ok := registry[strings.ToUpper(symbol)]
	if !ok {
		return Profile{}, false
	}
	return p.Clone(), true
}

// Lookup is Get with an error for unknown symbols.
func Lookup(symbol string) (Profile, error) {
	p, ok := Get(symbol)
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownProfile, symbol)
	}
	return p, nil
}

// List returns the registered symbols in registration order.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return append([]string(nil), order...)
}

// ListSorted returns the registered symbols sorted alphabetically.
func ListSorted() []string {
	symbols := List()
	sort.Strings(symbols)
	return symbols
}

// IsSupported returns true if the symbol is registered.
func IsSupported(symbol string) bool {
	_, ok := Get(symbol)
	return ok
}
