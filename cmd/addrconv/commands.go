package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/klingon-exchange/coinaddr/pkg/address"
	"github.com/klingon-exchange/coinaddr/pkg/chain"
	"github.com/klingon-exchange/coinaddr/pkg/helpers"
	"github.com/klingon-exchange/coinaddr/pkg/script"
)

// output is anything a command prints.
type output interface {
	write(w io.Writer, asJSON bool) error
}

// addressInfo describes one address.
type addressInfo struct {
	Address        string        `json:"address"`
	Coin           string        `json:"coin"`
	Network        chain.Network `json:"network"`
	Type           address.Type  `json:"type"`
	ScriptPubKey   string        `json:"script_pubkey"`
	Asm            string        `json:"asm,omitempty"`
	Hash           string        `json:"hash,omitempty"`
	WitnessVersion *byte         `json:"witness_version,omitempty"`
	WitnessProgram string        `json:"witness_program,omitempty"`
}

func describe(addr *address.Address) (*addressInfo, error) {
	s, err := addr.Encode()
	if err != nil {
		return nil, err
	}

	spk := addr.ScriptPubKey()
	info := &addressInfo{
		Address:      s,
		Coin:         addr.Profile.Symbol,
		Network:      addr.Network,
		Type:         addr.Type(),
		ScriptPubKey: helpers.BytesToHex(spk),
	}
	if asm, err := script.Disasm(spk); err == nil {
		info.Asm = asm
	}

	p := addr.Payload
	if p.Kind == address.WitnessProgram {
		v := p.Version
		info.WitnessVersion = &v
		info.WitnessProgram = helpers.BytesToHex(p.Program)
	} else {
		info.Hash = helpers.BytesToHex(p.Hash[:])
	}
	return info, nil
}

func (a *addressInfo) write(w io.Writer, asJSON bool) error {
	if asJSON {
		return writeJSON(w, a)
	}

	fmt.Fprintf(w, "address:        %s\n", a.Address)
	fmt.Fprintf(w, "coin:           %s\n", a.Coin)
	fmt.Fprintf(w, "network:        %s\n", a.Network)
	fmt.Fprintf(w, "type:           %s\n", a.Type)
	fmt.Fprintf(w, "script_pubkey:  %s\n", a.ScriptPubKey)
	if a.Asm != "" {
		fmt.Fprintf(w, "asm:            %s\n", a.Asm)
	}
	if a.Hash != "" {
		fmt.Fprintf(w, "hash:           %s\n", a.Hash)
	}
	if a.WitnessVersion != nil {
		fmt.Fprintf(w, "witness:        v%d %s\n", *a.WitnessVersion, a.WitnessProgram)
	}
	return nil
}

// coinInfo describes one registered profile.
type coinInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Segwit bool   `json:"segwit"`
}

type coinList []coinInfo

func (c coinList) write(w io.Writer, asJSON bool) error {
	if asJSON {
		return writeJSON(w, c)
	}
	for _, ci := range c {
		segwit := "no"
		if ci.Segwit {
			segwit = "yes"
		}
		fmt.Fprintf(w, "%-6s %-12s segwit=%s\n", ci.Symbol, ci.Name, segwit)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func dispatch(cmd string, args []string, opts *options) (output, error) {
	switch cmd {
	case "parse":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: parse takes one address", errUsage)
		}
		return cmdParse(args[0], opts)
	case "script":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: script takes one hex script", errUsage)
		}
		return cmdScript(args[0], opts)
	case "convert":
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: convert takes an address and a coin symbol", errUsage)
		}
		return cmdConvert(args[0], args[1], opts)
	case "pubkey":
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: pubkey takes a hex key and an address type", errUsage)
		}
		return cmdPubKey(args[0], args[1], opts)
	case "coins":
		return cmdCoins(), nil
	default:
		return nil, fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// parseInput parses under the chosen profile, or under any registered profile
// when -coin was not given.
func parseInput(s string, opts *options) (*address.Address, error) {
	if opts.explicit {
		return address.Parse(s, opts.profile)
	}
	return address.ParseAny(s)
}

func cmdParse(s string, opts *options) (output, error) {
	addr, err := parseInput(strings.TrimSpace(s), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse address: %w", err)
	}
	opts.log.Debug("Parsed address", "coin", addr.Profile.Symbol, "type", addr.Type())
	return describe(addr)
}

func cmdScript(hexScript string, opts *options) (output, error) {
	s, err := helpers.HexToBytes(hexScript)
	if err != nil {
		return nil, fmt.Errorf("invalid script hex: %w", err)
	}
	addr, ok := address.FromScript(s, opts.network, opts.profile)
	if !ok {
		return nil, fmt.Errorf("script %s is not a standard address script", hexScript)
	}
	return describe(addr)
}

func cmdConvert(s, symbol string, opts *options) (output, error) {
	addr, err := parseInput(strings.TrimSpace(s), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse address: %w", err)
	}
	target, err := chain.Lookup(symbol)
	if err != nil {
		return nil, err
	}
	opts.log.Debug("Converting address", "from", addr.Profile.Symbol, "to", target.Symbol, "network", addr.Network)
	return describe(addr.WithProfile(target))
}

func cmdPubKey(hexKey, kind string, opts *options) (output, error) {
	raw, err := helpers.HexToBytes(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid public key hex: %w", err)
	}
	pk, err := address.ParsePublicKey(raw)
	if err != nil {
		return nil, err
	}

	var addr *address.Address
	switch strings.ToLower(kind) {
	case "p2pkh":
		addr = address.P2PKH(pk, opts.network, opts.profile)
	case "p2wpkh":
		addr, err = address.P2WPKH(pk, opts.network, opts.profile)
	case "p2sh-p2wpkh":
		addr, err = address.P2SHWPKH(pk, opts.network, opts.profile)
	default:
		return nil, fmt.Errorf("%w: unknown address type %q", errUsage, kind)
	}
	if err != nil {
		return nil, err
	}
	return describe(addr)
}

func cmdCoins() output {
	var list coinList
	for _, symbol := range chain.ListSorted() {
		p, ok := chain.Get(symbol)
		if !ok {
			continue
		}
		list = append(list, coinInfo{Symbol: p.Symbol, Name: p.Name, Segwit: p.SupportsSegwit()})
	}
	return list
}
