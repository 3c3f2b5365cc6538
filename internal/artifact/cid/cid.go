// Package cid extracts and validates base58 multihash content identifiers embedded in binary payloads.
package cid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
)

const (
	alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	minLength   = 40
	maxLength   = 62
	leadingChar = 'Q'
)

var (
	// ErrPairMismatch reports CID and task id sequences of different lengths.
	ErrPairMismatch = errors.New("cid and task id counts differ")
	// ErrInvalid reports a string that is not an acceptable CID.
	ErrInvalid = errors.New("invalid cid")
)

// Prefix is a multihash header: hash function code followed by digest length.
type Prefix struct {
	Code   byte
	Length byte
}

// KnownPrefixes lists the multihash headers searched for by Extract.
var KnownPrefixes = []Prefix{
	{Code: 0x12, Length: 0x20}, // sha2-256
}

// Extract returns every valid CID found at non-overlapping multihash prefix occurrences in data,
// in order of appearance. Candidates failing Validate are dropped.
func Extract(data []byte) []string {
	var out []string
	for i := 0; i+2 <= len(data); {
		if n, cid := match(data, i); n > 0 {
			out = append(out, cid)
			i += n
			continue
		}
		i++
	}
	return out
}

func match(data []byte, i int) (int, string) {
	for _, p := range KnownPrefixes {
		if data[i] != p.Code || data[i+1] != p.Length {
			continue
		}
		end := i + 2 + int(p.Length)
		if end > len(data) {
			continue
		}
		candidate := Encode(data[i:end])
		if Validate(candidate) != nil {
			continue
		}
		return end - i, candidate
	}
	return 0, ""
}

// Encode base58-encodes a raw multihash.
func Encode(multihash []byte) string {
	return base58.Encode(multihash)
}

// Validate checks the leading character, length and alphabet of a candidate CID.
func Validate(s string) error {
	if len(s) < minLength || len(s) > maxLength {
		return fmt.Errorf("%w: length %d outside [%d,%d]", ErrInvalid, len(s), minLength, maxLength)
	}
	if s[0] != leadingChar {
		return fmt.Errorf("%w: leading character %q", ErrInvalid, s[0])
	}
	if i := strings.IndexFunc(s, func(r rune) bool { return !strings.ContainsRune(alphabet, r) }); i >= 0 {
		return fmt.Errorf("%w: character %q at %d outside base58 alphabet", ErrInvalid, s[i], i)
	}
	return nil
}

// Digest decodes a CID and returns the digest bytes without the multihash header.
func Digest(s string) ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	raw := base58.Decode(s)
	for _, p := range KnownPrefixes {
		if len(raw) == 2+int(p.Length) && raw[0] == p.Code && raw[1] == p.Length {
			return raw[2:], nil
		}
	}
	return nil, fmt.Errorf("%w: unknown multihash header", ErrInvalid)
}

// Pair zips CIDs and task ids by position.
func Pair(cids []string, taskIDs []common.Hash) ([]model.SolutionPair, error) {
	if len(cids) != len(taskIDs) {
		return nil, fmt.Errorf("%w: %d cids, %d task ids", ErrPairMismatch, len(cids), len(taskIDs))
	}
	pairs := make([]model.SolutionPair, 0, len(cids))
	for i := range cids {
		pairs = append(pairs, model.SolutionPair{CID: cids[i], TaskID: taskIDs[i]})
	}
	return pairs, nil
}
