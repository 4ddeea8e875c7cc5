package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/speps/go-hashids/v2"
)

// hexPrefixLen is the number of leading hex digits of the digest that feed
// the encoding. 16 digits cover the first 64 bits of the hash.
const hexPrefixLen = 16

// Generator derives short codes from URL strings. Codes are deterministic
// for a fixed salt and minimum length: the same input always produces the
// same code, which is what makes create-time deduplication possible.
type Generator struct {
	hashID *hashids.HashID
}

// New creates a Generator with the given salt and minimum code length.
// Changing either changes all future codes but leaves stored ones valid.
func New(salt string, minLength int) (*Generator, error) {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = minLength

	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hashids: %w", err)
	}

	return &Generator{hashID: h}, nil
}

// Encode generates a short code for the given input string.
// The input is hashed with SHA-256, the first 16 hex digits are taken as a
// 64-bit integer, and that integer is encoded with the salted alphabet.
// Hashids only accepts non-negative int64 values, so the 64-bit prefix is
// split into its two 32-bit halves before encoding.
func (g *Generator) Encode(input string) (string, error) {
	digest := sha256.Sum256([]byte(input))
	hexDigest := hex.EncodeToString(digest[:])

	n, err := strconv.ParseUint(hexDigest[:hexPrefixLen], 16, 64)
	if err != nil {
		return "", fmt.Errorf("failed to parse digest prefix: %w", err)
	}

	code, err := g.hashID.EncodeInt64([]int64{int64(n >> 32), int64(n & 0xFFFFFFFF)})
	if err != nil {
		return "", fmt.Errorf("failed to encode short code: %w", err)
	}

	return code, nil
}
