package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/klingon-exchange/coinaddr/pkg/chain"
	"github.com/klingon-exchange/coinaddr/pkg/segwit"
)

// BtcutilAddress converts the address to btcutil's representation so it can be
// handed to btcd code such as txscript.PayToAddrScript. Only profiles with
// single-byte versions and version 0 witness programs convert.
func (a *Address) BtcutilAddress() (btcutil.Address, error) {
	params, err := a.Profile.ChainParams(a.Network)
	if err != nil {
		return nil, err
	}

	p := a.Payload
	switch p.Kind {
	case PubKeyHash:
		return btcutil.NewAddressPubKeyHash(p.Hash[:], params)
	case ScriptHash:
		return btcutil.NewAddressScriptHashFromHash(p.Hash[:], params)
	case WitnessProgram:
		if params.Bech32HRPSegwit == chain.NoSegwit {
			return nil, fmt.Errorf("%w: %s %s", ErrSegwitUnsupported, a.Profile.Symbol, a.Network)
		}
		if p.Version != 0 {
			return nil, fmt.Errorf("btcutil: witness version %d has no bech32 address type", p.Version)
		}
		switch len(p.Program) {
		case segwit.V0PubKeyHashLen:
			return btcutil.NewAddressWitnessPubKeyHash(p.Program, params)
		case segwit.V0ScriptHashLen:
			return btcutil.NewAddressWitnessScriptHash(p.Program, params)
		}
		return nil, &segwit.InvalidSegwitV0ProgramLengthError{Length: len(p.Program)}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPayload, p.Kind)
	}
}
