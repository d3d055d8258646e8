package chain

func init() {
	mustRegister(Bitcoin())
}

// Bitcoin returns the Bitcoin profile.
func Bitcoin() Profile {
	return Profile{
		Symbol: "BTC",
		Name:   "Bitcoin",

		Bech32Main: "bc",
		Bech32Test: "tb",

		PubKeyHashMain: []byte{0x00}, // 1...
		ScriptHashMain: []byte{0x05}, // 3...
		PubKeyHashTest: []byte{0x6f}, // m or n
		ScriptHashTest: []byte{0xc4}, // 2...
	}
}
