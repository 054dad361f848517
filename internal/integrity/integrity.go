// Package integrity computes and checks Subresource Integrity values
// ("sha384-<base64>") and describes the optional hash library script that
// pages load from a CDN.
package integrity

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"strings"
)

// Algorithm is an SRI hash algorithm.
type Algorithm string

const (
	SHA256 Algorithm = "sha256"
	SHA384 Algorithm = "sha384"
	SHA512 Algorithm = "sha512"
)

var (
	// ErrMismatch is returned when no listed hash matches the data.
	ErrMismatch = errors.New("integrity mismatch")
	// ErrNoHashes is returned when the integrity value holds no usable hash.
	ErrNoHashes = errors.New("no supported integrity hashes")
)

// strength orders algorithms; only the strongest listed one is checked.
var strength = map[Algorithm]int{SHA256: 1, SHA384: 2, SHA512: 3}

func newHash(alg Algorithm) (hash.Hash, error) {
	switch alg {
	case SHA256:
		return sha256.New(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("unsupported integrity algorithm %q", alg)
	}
}

// Compute returns the SRI value of data for alg.
func Compute(alg Algorithm, data []byte) (string, error) {
	h, err := newHash(alg)
	if err != nil {
		return "", err
	}
	h.Write(data)
	return string(alg) + "-" + base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}

type entry struct {
	alg    Algorithm
	digest string
}

// parse splits an integrity attribute into its supported entries. Options
// after "?" are ignored, unknown algorithms are skipped.
func parse(value string) []entry {
	var entries []entry
	for _, token := range strings.Fields(value) {
		alg, digest, ok := strings.Cut(token, "-")
		if !ok {
			continue
		}
		if i := strings.IndexByte(digest, '?'); i >= 0 {
			digest = digest[:i]
		}
		if _, known := strength[Algorithm(alg)]; !known || digest == "" {
			continue
		}
		entries = append(entries, entry{alg: Algorithm(alg), digest: digest})
	}
	return entries
}

// Verify checks data against an integrity attribute value. Only hashes of
// the strongest listed algorithm are considered; any one of them may match.
func Verify(expected string, data []byte) error {
	entries := parse(expected)
	if len(entries) == 0 {
		return ErrNoHashes
	}

	best := entries[0].alg
	for _, e := range entries[1:] {
		if strength[e.alg] > strength[best] {
			best = e.alg
		}
	}

	actual, err := Compute(best, data)
	if err != nil {
		return err
	}
	_, actualDigest, _ := strings.Cut(actual, "-")
	for _, e := range entries {
		if e.alg != best {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(e.digest), []byte(actualDigest)) == 1 {
			return nil
		}
	}
	return fmt.Errorf("%w: got %s", ErrMismatch, actual)
}
