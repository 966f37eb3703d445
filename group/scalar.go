package group

import (
	"io"

	edwards25519 "filippo.io/edwards25519"
	"github.com/gtank/ristretto255"
)

// ScalarSize is the length in bytes of a canonical scalar encoding.
const ScalarSize = 32

// ScalarLike is implemented by both scalar types so that group arithmetic
// helpers (Mul, MulBase) accept either one.
type ScalarLike interface {
	scalar() *ristretto255.Scalar
}

// ScalarNonZero is an integer mod the group order ℓ, guaranteed never to be
// zero. It is the type used for every secret key, rerandomization factor,
// pseudonymization factor and rekey factor in the system.
type ScalarNonZero struct {
	s *ristretto255.Scalar
}

// ScalarCanBeZero is an integer mod ℓ with no non-zero guarantee. It appears
// only inside zero-knowledge proof responses, where a zero response is a
// legitimate (if statistically rare) outcome.
type ScalarCanBeZero struct {
	s *ristretto255.Scalar
}

func (s ScalarNonZero) scalar() *ristretto255.Scalar   { return s.s }
func (s ScalarCanBeZero) scalar() *ristretto255.Scalar { return s.s }

func scalarOne() *ristretto255.Scalar {
	var one [ScalarSize]byte
	one[0] = 1
	sc := ristretto255.NewScalar()
	// A canonical encoding of 1 always decodes successfully.
	if err := sc.Decode(one[:]); err != nil {
		panic("group: canonical encoding of 1 rejected by scalar decoder")
	}
	return sc
}

// One returns the multiplicative identity scalar.
func One() ScalarNonZero {
	return ScalarNonZero{s: scalarOne()}
}

func nonZeroFromScalar(sc *ristretto255.Scalar) ScalarNonZero {
	return ScalarNonZero{s: sc}
}

func isZero(sc *ristretto255.Scalar) bool {
	return sc.Equal(ristretto255.NewScalar().Zero()) == 1
}

// RandomScalarNonZero samples a uniformly random non-zero scalar from rand,
// resampling in the vanishingly unlikely event the draw is zero.
func RandomScalarNonZero(rand io.Reader) (ScalarNonZero, error) {
	for {
		var buf [64]byte
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return ScalarNonZero{}, ErrRandomSource
		}
		sc := ristretto255.NewScalar().FromUniformBytes(buf[:])
		if !isZero(sc) {
			return nonZeroFromScalar(sc), nil
		}
	}
}

// ScalarNonZeroFromHash reduces a 64-byte hash digest into Z_ℓ. The wide
// reduction itself is performed by edwards25519's scalar field (the same
// scalar field ristretto255 operates over), then re-decoded into a
// ristretto255 scalar for use in group arithmetic.
//
// If the reduction lands exactly on zero -- which happens with probability
// 1/ℓ, i.e. never in practice, but is a value the hash function could in
// principle produce -- this falls back to One() rather than failing, since
// factor derivation (§4.4) is a pure function of its inputs with no failure
// channel available to its callers. This fallback is documented in DESIGN.md.
func ScalarNonZeroFromHash(h [64]byte) ScalarNonZero {
	wide, err := new(edwards25519.Scalar).SetUniformBytes(h[:])
	if err != nil {
		// SetUniformBytes only fails on wrong input length; h is fixed-size.
		panic("group: unreachable wide-reduction failure")
	}
	sc := ristretto255.NewScalar()
	if err := sc.Decode(wide.Bytes()); err != nil {
		panic("group: edwards25519 canonical scalar rejected by ristretto255 decoder")
	}
	if isZero(sc) {
		return One()
	}
	return nonZeroFromScalar(sc)
}

// Invert returns the multiplicative inverse of s modulo ℓ. Defined only on
// ScalarNonZero, since zero has no inverse.
func (s ScalarNonZero) Invert() ScalarNonZero {
	return nonZeroFromScalar(ristretto255.NewScalar().Invert(s.s))
}

// MulScalar returns a*b, still guaranteed non-zero since ℓ is prime and
// neither operand is zero.
func (a ScalarNonZero) MulScalar(b ScalarNonZero) ScalarNonZero {
	return nonZeroFromScalar(ristretto255.NewScalar().Multiply(a.s, b.s))
}

// Equal reports whether a and b represent the same scalar.
func (a ScalarNonZero) Equal(b ScalarNonZero) bool {
	return a.s.Equal(b.s) == 1
}

// Encode returns the canonical little-endian 32-byte encoding of s.
func (s ScalarNonZero) Encode() [ScalarSize]byte {
	var out [ScalarSize]byte
	copy(out[:], s.s.Encode(nil))
	return out
}

// DecodeScalarNonZero parses a canonical scalar encoding, rejecting both
// non-canonical byte strings and the zero scalar.
func DecodeScalarNonZero(b [ScalarSize]byte) (ScalarNonZero, bool) {
	sc := ristretto255.NewScalar()
	if err := sc.Decode(b[:]); err != nil {
		return ScalarNonZero{}, false
	}
	if isZero(sc) {
		return ScalarNonZero{}, false
	}
	return nonZeroFromScalar(sc), true
}

// AsCanBeZero widens a non-zero scalar into the zero-allowed type, used when
// assembling a zero-knowledge proof response.
func (s ScalarNonZero) AsCanBeZero() ScalarCanBeZero {
	return ScalarCanBeZero{s: ristretto255.NewScalar().Set(s.s)}
}

// Zero returns the additive identity scalar.
func Zero() ScalarCanBeZero {
	return ScalarCanBeZero{s: ristretto255.NewScalar().Zero()}
}

// Add returns a+b.
func (a ScalarCanBeZero) Add(b ScalarCanBeZero) ScalarCanBeZero {
	return ScalarCanBeZero{s: ristretto255.NewScalar().Add(a.s, b.s)}
}

// Mul returns a*b.
func (a ScalarCanBeZero) Mul(b ScalarCanBeZero) ScalarCanBeZero {
	return ScalarCanBeZero{s: ristretto255.NewScalar().Multiply(a.s, b.s)}
}

// Equal reports whether a and b represent the same scalar.
func (a ScalarCanBeZero) Equal(b ScalarCanBeZero) bool {
	return a.s.Equal(b.s) == 1
}

// Encode returns the canonical little-endian 32-byte encoding of s.
func (s ScalarCanBeZero) Encode() [ScalarSize]byte {
	var out [ScalarSize]byte
	copy(out[:], s.s.Encode(nil))
	return out
}

// DecodeScalarCanBeZero parses a canonical scalar encoding.
func DecodeScalarCanBeZero(b [ScalarSize]byte) (ScalarCanBeZero, bool) {
	sc := ristretto255.NewScalar()
	if err := sc.Decode(b[:]); err != nil {
		return ScalarCanBeZero{}, false
	}
	return ScalarCanBeZero{s: sc}, true
}

// TryNonZero narrows a zero-allowed scalar into ScalarNonZero, failing if the
// value happens to be zero.
func (s ScalarCanBeZero) TryNonZero() (ScalarNonZero, bool) {
	if isZero(s.s) {
		return ScalarNonZero{}, false
	}
	return nonZeroFromScalar(ristretto255.NewScalar().Set(s.s)), true
}
