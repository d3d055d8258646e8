package chain

func init() {
	mustRegister(Zcash())
}

// Zcash returns the profile for Zcash transparent addresses.
// Zcash uses two-byte version prefixes (Zcash protocol, section 5.6.1).
func Zcash() Profile {
	return Profile{
		Symbol: "ZEC",
		Name:   "Zcash",

		Bech32Main: NoSegwit,
		Bech32Test: NoSegwit,

		PubKeyHashMain: []byte{0x1c, 0xb8}, // t1...
		ScriptHashMain: []byte{0x1c, 0xbd}, // t3...
		PubKeyHashTest: []byte{0x1d, 0x25}, // tm...
		ScriptHashTest: []byte{0x1c, 0xba}, // t2...
	}
}
