package chain

func init() {
	mustRegister(Litecoin())
}

// Litecoin returns the Litecoin profile.
func Litecoin() Profile {
	return Profile{
		Symbol: "LTC",
		Name:   "Litecoin",

		Bech32Main: "ltc",
		Bech32Test: "tltc",

		PubKeyHashMain: []byte{0x30}, // L...
		ScriptHashMain: []byte{0x32}, // M...
		PubKeyHashTest: []byte{0x6f}, // m or n
		ScriptHashTest: []byte{0x3a}, // Q...
	}
}
