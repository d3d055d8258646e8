package chain

func init() {
	mustRegister(Dogecoin())
}

// Dogecoin returns the Dogecoin profile. Dogecoin has no SegWit.
func Dogecoin() Profile {
	return Profile{
		Symbol: "DOGE",
		Name:   "Dogecoin",

		Bech32Main: NoSegwit,
		Bech32Test: NoSegwit,

		PubKeyHashMain: []byte{0x1e}, // D...
		ScriptHashMain: []byte{0x16}, // 9 or A
		PubKeyHashTest: []byte{0x71}, // n...
		ScriptHashTest: []byte{0xc4}, // 2...
	}
}
