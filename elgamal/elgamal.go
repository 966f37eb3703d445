// Package elgamal implements ElGamal encryption over the ristretto255 group
// exposed by package group. Ciphertexts use the two-element encoding: the
// receiver's public key is not carried in the ciphertext, so callers that
// need to rerandomize a ciphertext (Rerandomize, RRSK) without decrypting it
// must supply that public key out of band (see package primitives).
package elgamal

import (
	"fmt"
	"io"

	"github.com/jobdoesburg/pep-go/group"
)

// Size is the length in bytes of an encoded ciphertext: 32 bytes for B, 32
// for C.
const Size = 2 * group.ElementSize

// ErrIdentityPublicKey is returned by Encrypt when asked to encrypt under the
// group identity, which would make the ciphertext's second component equal
// the plaintext in the clear.
var ErrIdentityPublicKey = fmt.Errorf("elgamal: refusing to encrypt under the identity public key")

// Ciphertext is an ElGamal pair (B, C). Decrypting with the secret key y
// behind the public key used for Encrypt yields C - y*B.
type Ciphertext struct {
	B group.Element
	C group.Element
}

// Encrypt encrypts msg under publicKey, sampling a fresh random factor r
// from rand. It fails only if publicKey is the identity element or rand
// cannot supply enough randomness.
func Encrypt(msg group.Element, publicKey group.Element, rand io.Reader) (Ciphertext, error) {
	if publicKey.IsIdentity() {
		return Ciphertext{}, ErrIdentityPublicKey
	}

	r, err := group.RandomScalarNonZero(rand)
	if err != nil {
		return Ciphertext{}, err
	}

	return Ciphertext{
		B: group.MulBase(r),
		C: group.Add(msg, group.Mul(r, publicKey)),
	}, nil
}

// Decrypt recovers the plaintext group element of a ciphertext encrypted
// under secretKey*G.
func Decrypt(c Ciphertext, secretKey group.ScalarNonZero) group.Element {
	return group.Sub(c.C, group.Mul(secretKey, c.B))
}

// Encode returns the canonical 64-byte B‖C encoding of c.
func (c Ciphertext) Encode() [Size]byte {
	var out [Size]byte
	b := c.B.Encode()
	cc := c.C.Encode()
	copy(out[:group.ElementSize], b[:])
	copy(out[group.ElementSize:], cc[:])
	return out
}

// Decode parses a canonical 64-byte ciphertext encoding.
func Decode(v [Size]byte) (Ciphertext, bool) {
	var bBytes, cBytes [group.ElementSize]byte
	copy(bBytes[:], v[:group.ElementSize])
	copy(cBytes[:], v[group.ElementSize:])

	b, ok := group.Decode(bBytes)
	if !ok {
		return Ciphertext{}, false
	}
	c, ok := group.Decode(cBytes)
	if !ok {
		return Ciphertext{}, false
	}
	return Ciphertext{B: b, C: c}, true
}

// DecodeFromSlice is Decode for a variable-length slice.
func DecodeFromSlice(v []byte) (Ciphertext, bool) {
	if len(v) != Size {
		return Ciphertext{}, false
	}
	var arr [Size]byte
	copy(arr[:], v)
	return Decode(arr)
}
