package github

import (
	"encoding/base64"
	"strings"
)

// EncodeBlob encodes file content for the Contents API content field.
func EncodeBlob(text []byte) string {
	return base64.StdEncoding.EncodeToString(text)
}

// DecodeBlob decodes a content field. The API returns base64 wrapped with
// newlines, so whitespace is stripped before decoding.
func DecodeBlob(enc string) ([]byte, error) {
	enc = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, enc)
	return base64.StdEncoding.DecodeString(enc)
}
