package address

import "errors"

var (
	// ErrUncompressedPubkey is returned when a SegWit template is asked to
	// commit to an uncompressed public key.
	ErrUncompressedPubkey = errors.New("uncompressed pubkey not allowed in segwit script")

	// ErrSegwitUnsupported is returned when a witness payload is encoded under a
	// profile with no bech32 prefix for the network.
	ErrSegwitUnsupported = errors.New("profile has no segwit prefix")

	// ErrUnknownPayload is returned for a Payload whose kind is not recognised.
	ErrUnknownPayload = errors.New("unknown payload kind")
)
