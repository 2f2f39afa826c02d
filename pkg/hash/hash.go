// Package hash provides hashing utilities for argument fingerprints.
package hash

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"strconv"
)

// ShortHash returns the first 8 characters of the MD5 hash of s.
func ShortHash(s string) string {
	return MD5Sum(s)[:8]
}

// TokensHash returns the full MD5 hash of a token list. Each token is
// length-prefixed, so ["ab"] and ["a", "b"] hash differently.
func TokensHash(tokens []string) string {
	hasher := md5.New()
	for _, tok := range tokens {
		_, _ = io.WriteString(hasher, strconv.Itoa(len(tok)))
		_, _ = io.WriteString(hasher, ":")
		_, _ = io.WriteString(hasher, tok)
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// MD5Sum returns the full MD5 hash of a string.
func MD5Sum(s string) string {
	hasher := md5.New()
	_, _ = io.WriteString(hasher, s)
	return hex.EncodeToString(hasher.Sum(nil))
}
