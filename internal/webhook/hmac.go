package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

const hmacSignatureKey = "hmacSignature"

// signingString builds the colon-joined payload the processor signs.
// Field order is fixed by the processor's HMAC scheme; backslashes and colons
// inside values are escaped so the join stays unambiguous.
func signingString(item Item) string {
	fields := []string{
		item.PSPReference,
		item.OriginalReference,
		item.MerchantAccountCode,
		item.MerchantReference,
		strconv.FormatInt(item.Amount.Value, 10),
		item.Amount.Currency,
		item.EventCode,
		item.Success,
	}
	escaped := make([]string, len(fields))
	for i, f := range fields {
		f = strings.ReplaceAll(f, `\`, `\\`)
		escaped[i] = strings.ReplaceAll(f, ":", `\:`)
	}
	return strings.Join(escaped, ":")
}

// verifySignature checks the item's HMAC-SHA256 signature against the
// site's hex-encoded signing key.
func verifySignature(item Item, hexKey string) error {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return fmt.Errorf("decode hmac key: %w", err)
	}

	got := item.AdditionalData[hmacSignatureKey]
	if got == "" {
		return fmt.Errorf("notification carries no %s", hmacSignatureKey)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(signingString(item)))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(got), []byte(want)) {
		return fmt.Errorf("hmac signature mismatch for %s", item.PSPReference)
	}
	return nil
}
