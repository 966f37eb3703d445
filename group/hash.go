package group

import (
	"crypto/sha512"

	"github.com/gtank/ristretto255"
)

// HashSize is the digest size this package expects for hash-to-group and
// hash-to-scalar operations (SHA-512).
const HashSize = 64

// ElementFromHash deterministically and injectively maps a 64-byte digest
// into the group. Two distinct digests map to distinct elements with
// overwhelming probability; the same digest always maps to the same element.
func ElementFromHash(h [HashSize]byte) Element {
	return elementFromPoint(ristretto255.NewElement().FromUniformBytes(h[:]))
}

// Sha512 hashes data with SHA-512, returning the fixed-size digest this
// package's hash-to-group and hash-to-scalar functions expect.
func Sha512(data ...[]byte) [HashSize]byte {
	h := sha512.New()
	for _, d := range data {
		h.Write(d)
	}
	var out [HashSize]byte
	copy(out[:], h.Sum(nil))
	return out
}
