package test

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gomove/ledger"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline. A leading 0x prefix is allowed.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	hexData = strings.TrimPrefix(hexData, "0x")
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// DecodeBase64String is the equivalent of DecodeHexString for the base64
// transmission form used in view requests and messages.
func DecodeBase64String(base64Data string) []byte {
	decoded, err := base64.StdEncoding.DecodeString(
		strings.TrimSpace(base64Data),
	)
	if err != nil {
		panic(fmt.Sprintf("error decoding base64: %s", err))
	}
	return decoded
}

// MustAccAddress parses an account address in hex or bech32 form. It panics
// on invalid input, which makes it usable inline in fixtures.
func MustAccAddress(address string) ledger.AccAddress {
	ret, err := ledger.NewAccAddress(address)
	if err != nil {
		panic(fmt.Sprintf("error parsing address: %s", err))
	}
	return ret
}
