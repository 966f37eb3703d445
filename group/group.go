// Package group wraps the ristretto255 prime-order group (Ristretto-compressed
// Curve25519) in the narrow vocabulary the PEP primitives need: group elements,
// non-zero scalars, and zero-allowed scalars, each with canonical 32-byte
// encodings and constant-time arithmetic inherited from the underlying curve
// libraries.
package group

import (
	"errors"
	"io"

	"github.com/gtank/ristretto255"
)

// ElementSize is the length in bytes of a canonical group element encoding.
const ElementSize = 32

// ErrRandomSource is returned when the caller-supplied randomness source
// fails to produce enough bytes.
var ErrRandomSource = errors.New("group: random source exhausted")

// Element is a point on the ristretto255 group.
type Element struct {
	p *ristretto255.Element
}

// G is the standard generator of the group.
var G = Element{p: ristretto255.NewGeneratorElement()}

// Identity returns the group's identity element.
func Identity() Element {
	return Element{p: ristretto255.NewIdentityElement()}
}

func elementFromPoint(p *ristretto255.Element) Element {
	return Element{p: p}
}

// RandomElement samples a uniformly random group element from rand.
func RandomElement(rand io.Reader) (Element, error) {
	var buf [64]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return Element{}, ErrRandomSource
	}
	return elementFromPoint(ristretto255.NewElement().FromUniformBytes(buf[:])), nil
}

// Add returns a+b.
func Add(a, b Element) Element {
	return elementFromPoint(ristretto255.NewElement().Add(a.p, b.p))
}

// Sub returns a-b.
func Sub(a, b Element) Element {
	return elementFromPoint(ristretto255.NewElement().Subtract(a.p, b.p))
}

// Neg returns -a.
func Neg(a Element) Element {
	return elementFromPoint(ristretto255.NewElement().Negate(a.p))
}

// Mul returns s*p (scalar multiplication).
func Mul(s ScalarLike, p Element) Element {
	return elementFromPoint(ristretto255.NewElement().ScalarMult(s.scalar(), p.p))
}

// MulBase returns s*G.
func MulBase(s ScalarLike) Element {
	return elementFromPoint(ristretto255.NewElement().ScalarBaseMult(s.scalar()))
}

// Equal reports whether a and b represent the same group element. This
// comparison is over public data (ciphertext components, commitments), so it
// need not be constant-time; the underlying library performs it in constant
// time regardless.
func (a Element) Equal(b Element) bool {
	return a.p.Equal(b.p) == 1
}

// IsIdentity reports whether a is the group identity.
func (a Element) IsIdentity() bool {
	return a.Equal(Identity())
}

// Encode returns the canonical 32-byte encoding of a.
func (a Element) Encode() [ElementSize]byte {
	var out [ElementSize]byte
	copy(out[:], a.p.Encode(nil))
	return out
}

// Decode parses a canonical 32-byte element encoding. It returns false if the
// bytes are not a canonical encoding of a valid group element.
func Decode(b [ElementSize]byte) (Element, bool) {
	p := ristretto255.NewElement()
	if err := p.Decode(b[:]); err != nil {
		return Element{}, false
	}
	return elementFromPoint(p), true
}

// DecodeFromSlice is Decode for a variable-length slice; it fails fast if the
// slice is not exactly ElementSize bytes long.
func DecodeFromSlice(b []byte) (Element, bool) {
	if len(b) != ElementSize {
		return Element{}, false
	}
	var arr [ElementSize]byte
	copy(arr[:], b)
	return Decode(arr)
}
