// Package helpers provides common utility functions used across the codebase.
package helpers

import (
	"encoding/hex"
	"strings"
)

// HexToBytes converts a hex string (with or without 0x prefix) to bytes.
// Surrounding whitespace is ignored.
func HexToBytes(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	return hex.DecodeString(s)
}

// MustHexToBytes is HexToBytes for constants known to be valid. It panics on bad input.
func MustHexToBytes(s string) []byte {
	b, err := HexToBytes(s)
	if err != nil {
		panic(err)
	}
	return b
}

// BytesToHex converts bytes to a lower-case hex string without prefix.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}
