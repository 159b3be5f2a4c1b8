// Package randid generates short random identifiers.
package randid

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random lowercase alphanumeric string of the given
// length. Identifiers are collision-resistant enough for addressing items
// within a single process; they are not globally unique.
func Generate(length int) string {
	if length <= 0 {
		return ""
	}

	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform RNG is broken;
			// nothing sensible to fall back to.
			panic(err)
		}
		b[i] = alphabet[n.Int64()]
	}

	return string(b)
}
