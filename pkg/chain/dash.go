package chain

func init() {
	mustRegister(Dash())
}

// Dash returns the Dash profile. Dash has no SegWit.
func Dash() Profile {
	return Profile{
		Symbol: "DASH",
		Name:   "Dash",

		Bech32Main: NoSegwit,
		Bech32Test: NoSegwit,

		PubKeyHashMain: []byte{0x4c}, // X...
		ScriptHashMain: []byte{0x10}, // 7...
		PubKeyHashTest: []byte{0x8c}, // y...
		ScriptHashTest: []byte{0x13}, // 8 or 9
	}
}
