package chain

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

// ChainParams converts the profile to btcd's chaincfg.Params for one network so
// it can be handed to btcutil. Only single-byte version prefixes fit chaincfg.
func (p Profile) ChainParams(net Network) (*chaincfg.Params, error) {
	if p.PrefixLen() != 1 {
		return nil, fmt.Errorf("profile %s: chaincfg.Params needs 1-byte versions, have %d", p.Symbol, p.PrefixLen())
	}

	return &chaincfg.Params{
		Name: p.Name + " " + string(net),

		// Address encoding
		PubKeyHashAddrID: p.PubKeyHashVersion(net)[0],
		ScriptHashAddrID: p.ScriptHashVersion(net)[0],

		// Bech32
		Bech32HRPSegwit: p.Bech32Prefix(net),
	}, nil
}
