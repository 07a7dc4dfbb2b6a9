package core

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Short returns the first 12 hex digits, enough to tell datasets apart in logs
func (h Hash) Short() string {
	if len(h) <= 12 {
		return string(h)
	}
	return string(h[:12])
}

// HashRecords fingerprints tabular content. Cells are unit-separated and rows record-separated
// so that shifting text between cells changes the hash.
func HashRecords(records [][]string) Hash {
	var data strings.Builder
	for _, record := range records {
		data.WriteString(strings.Join(record, "\x1f"))
		data.WriteByte('\x1e')
	}
	return NewHash([]byte(data.String()))
}
