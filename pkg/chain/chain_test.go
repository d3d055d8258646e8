package chain

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestBuiltinProfilesRegistered(t *testing.T) {
	expected := []string{"BTC", "LTC", "DASH", "ZEC", "DOGE"}

	for _, symbol := range expected {
		if !IsSupported(symbol) {
			t.Errorf("expected %s to be registered", symbol)
		}
	}
	if len(List()) < len(expected) {
		t.Errorf("List() = %v, want at least %d entries", List(), len(expected))
	}
}

func TestListSorted(t *testing.T) {
	sorted := ListSorted()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] > sorted[i] {
			t.Errorf("ListSorted() = %v, not sorted", sorted)
			break
		}
	}
	if len(sorted) != len(List()) {
		t.Errorf("ListSorted() has %d entries, List() has %d", len(sorted), len(List()))
	}
}

func TestBuiltinProfilesValid(t *testing.T) {
	for _, p := range []Profile{Bitcoin(), Litecoin(), Dash(), Zcash(), Dogecoin()} {
		if err := p.Validate(); err != nil {
			t.Errorf("%s: Validate() error = %v", p.Symbol, err)
		}
	}
}

func TestProfileValues(t *testing.T) {
	tests := []struct {
		profile    Profile
		bech32Main string
		bech32Test string
		pkhMain    []byte
		shMain     []byte
		pkhTest    []byte
		shTest     []byte
		segwit     bool
	}{
		{Bitcoin(), "bc", "tb", []byte{0}, []byte{5}, []byte{111}, []byte{196}, true},
		{Litecoin(), "ltc", "tltc", []byte{48}, []byte{50}, []byte{111}, []byte{58}, true},
		{Dash(), NoSegwit, NoSegwit, []byte{76}, []byte{16}, []byte{140}, []byte{19}, false},
		{Zcash(), NoSegwit, NoSegwit, []byte{28, 184}, []byte{28, 189}, []byte{29, 37}, []byte{28, 186}, false},
		{Dogecoin(), NoSegwit, NoSegwit, []byte{30}, []byte{22}, []byte{113}, []byte{196}, false},
	}

	for _, tc := range tests {
		t.Run(tc.profile.Symbol, func(t *testing.T) {
			p := tc.profile
			if p.Bech32Main != tc.bech32Main || p.Bech32Test != tc.bech32Test {
				t.Errorf("bech32 = %q/%q, want %q/%q", p.Bech32Main, p.Bech32Test, tc.bech32Main, tc.bech32Test)
			}
			if !bytes.Equal(p.PubKeyHashMain, tc.pkhMain) {
				t.Errorf("PubKeyHashMain = %x, want %x", p.PubKeyHashMain, tc.pkhMain)
			}
			if !bytes.Equal(p.ScriptHashMain, tc.shMain) {
				t.Errorf("ScriptHashMain = %x, want %x", p.ScriptHashMain, tc.shMain)
			}
			if !bytes.Equal(p.PubKeyHashTest, tc.pkhTest) {
				t.Errorf("PubKeyHashTest = %x, want %x", p.PubKeyHashTest, tc.pkhTest)
			}
			if !bytes.Equal(p.ScriptHashTest, tc.shTest) {
				t.Errorf("ScriptHashTest = %x, want %x", p.ScriptHashTest, tc.shTest)
			}
			if p.SupportsSegwit() != tc.segwit {
				t.Errorf("SupportsSegwit() = %v, want %v", p.SupportsSegwit(), tc.segwit)
			}
		})
	}
}

func TestPrefixLen(t *testing.T) {
	if got := Bitcoin().PrefixLen(); got != 1 {
		t.Errorf("Bitcoin PrefixLen = %d, want 1", got)
	}
	if got := Zcash().PrefixLen(); got != 2 {
		t.Errorf("Zcash PrefixLen = %d, want 2", got)
	}
}

func TestVersionSelection(t *testing.T) {
	p := Bitcoin()

	tests := []struct {
		network Network
		pkh     byte
		sh      byte
		hrp     string
	}{
		{Mainnet, 0x00, 0x05, "bc"},
		{Testnet, 0x6f, 0xc4, "tb"},
		{Signet, 0x6f, 0xc4, "tb"},
		{Regtest, 0x6f, 0xc4, "bcrt"},
	}

	for _, tc := range tests {
		t.Run(string(tc.network), func(t *testing.T) {
			if got := p.PubKeyHashVersion(tc.network); !bytes.Equal(got, []byte{tc.pkh}) {
				t.Errorf("PubKeyHashVersion = %x, want %02x", got, tc.pkh)
			}
			if got := p.ScriptHashVersion(tc.network); !bytes.Equal(got, []byte{tc.sh}) {
				t.Errorf("ScriptHashVersion = %x, want %02x", got, tc.sh)
			}
			if got := p.Bech32Prefix(tc.network); got != tc.hrp {
				t.Errorf("Bech32Prefix = %s, want %s", got, tc.hrp)
			}
		})
	}

	// Regtest ignores the profile's prefixes entirely.
	if got := Dash().Bech32Prefix(Regtest); got != RegtestBech32 {
		t.Errorf("Dash regtest prefix = %q, want %q", got, RegtestBech32)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Profile)
		field  string
	}{
		{"mixed length", func(p *Profile) { p.ScriptHashTest = []byte{0x1c} }, "scripthash_test"},
		{"empty version", func(p *Profile) { p.ScriptHashMain = nil }, "scripthash_main"},
		{"too long", func(p *Profile) {
			p.PubKeyHashMain = []byte{1, 2, 3}
		}, "pubkeyhash_main"},
		{"duplicate version", func(p *Profile) { p.PubKeyHashTest = []byte{0x1c, 0xb8} }, "pubkeyhash_test"},
		{"upper case prefix", func(p *Profile) { p.Bech32Main = "ZC" }, "bech32_main"},
		{"separator in prefix", func(p *Profile) { p.Bech32Test = "z1" }, "bech32_test"},
		{"prefix too long", func(p *Profile) { p.Bech32Main = strings.Repeat("z", MaxBech32PrefixLen+1) }, "bech32_main"},
		{"same prefixes", func(p *Profile) { p.Bech32Main, p.Bech32Test = "zs", "zs" }, "bech32_test"},
		{"empty symbol", func(p *Profile) { p.Symbol = "" }, "symbol"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Zcash()
			tc.mutate(&p)
			err := p.Validate()
			var perr *ProfileError
			if !errors.As(err, &perr) {
				t.Fatalf("Validate() error = %v, want *ProfileError", err)
			}
			if perr.Field != tc.field {
				t.Errorf("Field = %s, want %s", perr.Field, tc.field)
			}
		})
	}
}

func TestValidateLongestPrefix(t *testing.T) {
	p := Zcash()
	p.Bech32Main = strings.Repeat("z", MaxBech32PrefixLen)
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := Bitcoin()
	c := p.Clone()
	c.PubKeyHashMain[0] = 0xff

	if p.PubKeyHashMain[0] != 0x00 {
		t.Error("Clone shares version slices with the original")
	}
	if p.Equal(c) {
		t.Error("modified clone should not equal the original")
	}
}

func TestProfileEqualCompare(t *testing.T) {
	if !Bitcoin().Equal(Bitcoin()) {
		t.Error("Bitcoin() should equal Bitcoin()")
	}
	if Bitcoin().Equal(Litecoin()) {
		t.Error("Bitcoin() should not equal Litecoin()")
	}
	if Bitcoin().Compare(Litecoin()) >= 0 {
		t.Error("BTC should sort before LTC")
	}
	if Litecoin().Compare(Bitcoin()) <= 0 {
		t.Error("LTC should sort after BTC")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	p, ok := Get("btc")
	if !ok {
		t.Fatal("btc should be found case-insensitively")
	}
	p.PubKeyHashMain[0] = 0x42

	again, _ := Get("BTC")
	if again.PubKeyHashMain[0] != 0x00 {
		t.Error("registry entry was modified through a returned profile")
	}
}

func TestRegisterCustom(t *testing.T) {
	custom := Profile{
		Symbol:         "TST",
		Name:           "Test Coin",
		Bech32Main:     "tst",
		Bech32Test:     "ttst",
		PubKeyHashMain: []byte{0x41},
		ScriptHashMain: []byte{0x42},
		PubKeyHashTest: []byte{0x43},
		ScriptHashTest: []byte{0x44},
	}
	if err := Register(custom); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if !IsSupported("TST") {
		t.Error("TST should be registered")
	}

	bad := custom
	bad.Symbol = "BAD"
	bad.ScriptHashTest = []byte{0x44, 0x45}
	if err := Register(bad); err == nil {
		t.Error("Register() should reject an invalid profile")
	}
	if IsSupported("BAD") {
		t.Error("BAD should not be registered")
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("INVALID")
	if !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("Lookup(INVALID) error = %v, want ErrUnknownProfile", err)
	}
}

func TestParseNetwork(t *testing.T) {
	tests := []struct {
		input   string
		want    Network
		wantErr bool
	}{
		{"mainnet", Mainnet, false},
		{"MAINNET", Mainnet, false},
		{"testnet", Testnet, false},
		{"signet", Signet, false},
		{"regtest", Regtest, false},
		{"moonnet", "", true},
	}

	for _, tc := range tests {
		got, err := ParseNetwork(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseNetwork(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseNetwork(%q) = %s, %v, want %s", tc.input, got, err, tc.want)
		}
	}
}

func TestCompareNetworks(t *testing.T) {
	ordered := []Network{Mainnet, Testnet, Signet, Regtest}
	for i := 1; i < len(ordered); i++ {
		if CompareNetworks(ordered[i-1], ordered[i]) >= 0 {
			t.Errorf("%s should sort before %s", ordered[i-1], ordered[i])
		}
	}
	if CompareNetworks(Testnet, Testnet) != 0 {
		t.Error("CompareNetworks(testnet, testnet) should be 0")
	}
}

func TestChainParams(t *testing.T) {
	params, err := Litecoin().ChainParams(Mainnet)
	if err != nil {
		t.Fatalf("ChainParams() error = %v", err)
	}
	if params.PubKeyHashAddrID != 0x30 {
		t.Errorf("PubKeyHashAddrID = 0x%X, want 0x30", params.PubKeyHashAddrID)
	}
	if params.ScriptHashAddrID != 0x32 {
		t.Errorf("ScriptHashAddrID = 0x%X, want 0x32", params.ScriptHashAddrID)
	}
	if params.Bech32HRPSegwit != "ltc" {
		t.Errorf("Bech32HRPSegwit = %s, want ltc", params.Bech32HRPSegwit)
	}

	testParams, _ := Litecoin().ChainParams(Testnet)
	if testParams.ScriptHashAddrID != 0x3A {
		t.Errorf("testnet ScriptHashAddrID = 0x%X, want 0x3A", testParams.ScriptHashAddrID)
	}

	if _, err := Zcash().ChainParams(Mainnet); err == nil {
		t.Error("ChainParams() should fail for two-byte versions")
	}
}
