package address

import (
	"fmt"
	"strings"
)

// Type is the standard template an address stands for.
type Type string

const (
	AddressP2PKH       Type = "p2pkh"  // Legacy (1...)
	AddressP2SH        Type = "p2sh"   // Script hash (3...)
	AddressP2WPKH      Type = "p2wpkh" // Native SegWit key hash (bc1q..., 20 bytes)
	AddressP2WSH       Type = "p2wsh"  // Native SegWit script hash (bc1q..., 32 bytes)
	AddressNonStandard Type = "nonstandard"
)

func (t Type) String() string {
	return string(t)
}

// ParseType parses one of the four standard type names.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(s)); t {
	case AddressP2PKH, AddressP2SH, AddressP2WPKH, AddressP2WSH:
		return t, nil
	default:
		return "", fmt.Errorf("unknown address type %q", s)
	}
}
