package gateway

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"sort"
	"strings"
)

// Fields never covered by the signature itself.
var unsignedFields = map[string]bool{
	"signature":                 true,
	"response_signature_string": true,
}

// Signature computes the gateway's request signature: the SHA-1 of the
// secret key followed by every non-empty parameter value ordered by key,
// joined with "|".
func Signature(secretKey string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" || unsignedFields[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+1)
	parts = append(parts, secretKey)
	for _, k := range keys {
		parts = append(parts, params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

func (c *HTTPGatewayClient) Sign(params map[string]string) string {
	return Signature(c.secretKey, params)
}

// VerifySignature checks the signature carried in params, typically a
// server callback, against the merchant's secret.
func (c *HTTPGatewayClient) VerifySignature(params map[string]string) bool {
	got := params["signature"]
	if got == "" {
		return false
	}
	want := c.Sign(params)
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(got)), []byte(want)) == 1
}
