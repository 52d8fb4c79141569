// Package redirect decides whether a navigation inside the authentication
// surface ends the step-up flow, and reads the result the gateway embeds in
// its terminal redirect.
package redirect

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
)

// Kind names the matcher that recognised a terminal navigation.
type Kind string

const (
	KindNone           Kind = ""
	KindRedirectPrefix Kind = "redirect_prefix"
	KindTokenPath      Kind = "token_path"
	KindCallbackOrigin Kind = "callback_origin"
)

// Target describes where one authentication attempt is expected to end.
type Target struct {
	RedirectDomain string
	GatewayHost    string
	CallbackOrigin string
}

// RedirectPrefix is the synthetic URL the gateway navigates to with the
// result appended after the fragment marker.
func (t Target) RedirectPrefix() string {
	return "http://secure-redirect." + t.RedirectDomain + "/submit/#"
}

func (t Target) tokenPathPrefix() string {
	return strings.TrimRight(t.GatewayHost, "/") + "/api/checkout?token="
}

// Classification is the verdict on a single navigated URL. Payload is only
// ever set for redirect-prefix matches whose suffix parsed as a JSON object.
type Classification struct {
	Terminal bool
	Kind     Kind
	Payload  map[string]any
}

// Matcher recognises one family of terminal URLs.
type Matcher struct {
	Kind  Kind
	Match func(rawURL string) (bool, map[string]any)
}

// Matchers returns the terminal URL matchers for t in evaluation order.
func Matchers(t Target) []Matcher {
	return []Matcher{
		{Kind: KindRedirectPrefix, Match: matchRedirectPrefix(t.RedirectPrefix())},
		{Kind: KindTokenPath, Match: matchPrefix(t.tokenPathPrefix())},
		{Kind: KindCallbackOrigin, Match: matchOrigin(t.CallbackOrigin)},
	}
}

// Classify runs the matchers for t against rawURL; the first match wins.
func Classify(rawURL string, t Target) Classification {
	return ClassifyWith(rawURL, Matchers(t))
}

func ClassifyWith(rawURL string, matchers []Matcher) Classification {
	if rawURL == "" {
		return Classification{}
	}
	for _, m := range matchers {
		if ok, payload := m.Match(rawURL); ok {
			return Classification{Terminal: true, Kind: m.Kind, Payload: payload}
		}
	}
	return Classification{}
}

func matchRedirectPrefix(prefix string) func(string) (bool, map[string]any) {
	return func(rawURL string) (bool, map[string]any) {
		if !strings.HasPrefix(rawURL, prefix) {
			return false, nil
		}
		return true, ParsePayload(rawURL[len(prefix):])
	}
}

func matchPrefix(prefix string) func(string) (bool, map[string]any) {
	return func(rawURL string) (bool, map[string]any) {
		return strings.HasPrefix(rawURL, prefix), nil
	}
}

func matchOrigin(origin string) func(string) (bool, map[string]any) {
	want, err := url.Parse(origin)
	if err != nil || want.Scheme == "" || want.Host == "" {
		return func(string) (bool, map[string]any) { return false, nil }
	}

	return func(rawURL string) (bool, map[string]any) {
		got, err := url.Parse(rawURL)
		if err != nil {
			return false, nil
		}
		same := strings.EqualFold(got.Scheme, want.Scheme) &&
			strings.EqualFold(got.Hostname(), want.Hostname())
		return same, nil
	}
}

// ParsePayload reads the JSON object trailing a redirect prefix, first as
// is and then percent-decoded. It returns nil when neither parses.
func ParsePayload(suffix string) map[string]any {
	if payload := decodeObject(suffix); payload != nil {
		return payload
	}
	return decodeObject(unescapeLenient(suffix))
}

// unescapeLenient decodes every well-formed %XX escape and keeps malformed
// ones verbatim, so a stray '%' in a value does not void the whole payload.
func unescapeLenient(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func decodeObject(s string) map[string]any {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()

	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil
	}
	if dec.More() {
		return nil
	}
	return out
}
