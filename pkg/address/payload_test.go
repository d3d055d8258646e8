package address

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/klingon-exchange/coinaddr/pkg/helpers"
	"github.com/klingon-exchange/coinaddr/pkg/segwit"
)

func TestPayloadFromScript(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		kind    PayloadKind
		version byte
		data    string
	}{
		{"p2pkh", "76a914" + sampleHash + "88ac", PubKeyHash, 0, sampleHash},
		{"p2sh", "a914" + sampleHash + "87", ScriptHash, 0, sampleHash},
		{"v0 key hash", "0014" + bip173Hash, WitnessProgram, 0, bip173Hash},
		{"v16", "6002751e", WitnessProgram, 16, "751e"},
		{"v1 32 bytes", "5120" + sampleHash + "000000000000000000000000", WitnessProgram, 1, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := helpers.MustHexToBytes(tc.script)
			p, ok := PayloadFromScript(s)
			if !ok {
				t.Fatalf("PayloadFromScript(%s) not recognised", tc.script)
			}
			if p.Kind != tc.kind {
				t.Errorf("Kind = %s, want %s", p.Kind, tc.kind)
			}

			switch tc.kind {
			case WitnessProgram:
				if p.Version != tc.version {
					t.Errorf("Version = %d, want %d", p.Version, tc.version)
				}
				if tc.data != "" && hex.EncodeToString(p.Program) != tc.data {
					t.Errorf("Program = %x, want %s", p.Program, tc.data)
				}
			default:
				if hex.EncodeToString(p.Hash[:]) != tc.data {
					t.Errorf("Hash = %x, want %s", p.Hash, tc.data)
				}
			}

			if got := hex.EncodeToString(p.ScriptPubKey()); got != tc.script {
				t.Errorf("ScriptPubKey() = %s, want %s", got, tc.script)
			}
		})
	}
}

func TestPayloadFromScriptUnrecognised(t *testing.T) {
	scripts := []string{
		"",
		"6a04deadbeef",               // OP_RETURN
		"76a914" + sampleHash + "88", // truncated P2PKH
		"a914" + sampleHash + "88",   // P2SH with OP_EQUALVERIFY
		"0001ff",                     // one-byte witness program
		"21" + segwitKey + "ac",      // P2PK
		"5102751e00",                 // push length disagrees with script
	}

	for _, s := range scripts {
		if p, ok := PayloadFromScript(helpers.MustHexToBytes(s)); ok {
			t.Errorf("PayloadFromScript(%s) = %+v, want not recognised", s, p)
		}
	}
}

func TestNewWitnessProgram(t *testing.T) {
	if _, err := NewWitnessProgram(17, make([]byte, 20)); err == nil {
		t.Error("version 17 should be rejected")
	}

	_, err := NewWitnessProgram(0, make([]byte, 41))
	var lerr *segwit.InvalidWitnessProgramLengthError
	if !errors.As(err, &lerr) || lerr.Length != 41 {
		t.Errorf("41-byte program error = %v, want length error", err)
	}

	// Non-standard v0 lengths can still be built directly.
	p, err := NewWitnessProgram(0, make([]byte, 25))
	if err != nil {
		t.Fatalf("v0 25-byte program error = %v", err)
	}
	if len(p.Program) != 25 {
		t.Errorf("Program length = %d, want 25", len(p.Program))
	}
}

func TestPayloadCompare(t *testing.T) {
	h := mustHash(sampleHash)
	pkh := PubKeyHashPayload(h)
	sh := ScriptHashPayload(h)
	v0, _ := NewWitnessProgram(0, h[:])
	v1, _ := NewWitnessProgram(1, h[:])
	v1long, _ := NewWitnessProgram(1, append(h[:], 0x00))

	ordered := []Payload{pkh, sh, v0, v1, v1long}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Compare(ordered[i]) >= 0 {
			t.Errorf("%s v%d should sort before %s v%d", ordered[i-1].Kind, ordered[i-1].Version, ordered[i].Kind, ordered[i].Version)
		}
	}

	if !pkh.Equal(PubKeyHashPayload(h)) {
		t.Error("identical payloads should be equal")
	}
	if pkh.Equal(sh) {
		t.Error("pubkey hash and script hash with the same bytes should differ")
	}
}
