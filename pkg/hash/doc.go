// Package hash provides stable digests for parsed argument sets.
//
// A cache layer in front of nix-shell needs a key that changes whenever
// anything that affects the shell environment changes. This package turns
// token lists into such keys:
//   - TokensHash: MD5 over a length-prefixed token list
//   - ShortHash: first 8 characters of MD5(s)
//   - MD5Sum: full MD5 of a string
//
// Example usage:
//
//	key := hash.ShortHash(hash.TokensHash([]string{"-p", "hello"}))
//	// Returns 8 hex characters, e.g. "3f2a9c01"
package hash
