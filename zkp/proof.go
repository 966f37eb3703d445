// Package zkp implements a non-interactive, Fiat-Shamir-transformed
// discrete-log equality proof: given public M, A = a*G and N, a prover who
// knows a can convince a verifier that N = a*M without revealing a.
// Signatures reuse the same construction with M set to the message point.
package zkp

import (
	"io"

	"github.com/jobdoesburg/pep-go/group"
)

// Size is the length in bytes of an encoded proof: N, C1, C2 (32 bytes each)
// and s (32 bytes).
const Size = 3*group.ElementSize + group.ScalarSize

// Proof attests that N = a*M for some scalar a whose corresponding public
// commitment A = a*G was given to the verifier out of band.
type Proof struct {
	N  group.Element
	C1 group.Element
	C2 group.Element
	S  group.ScalarCanBeZero
}

func challenge(a, m, n, c1, c2 group.Element) group.ScalarNonZero {
	ae := a.Encode()
	me := m.Encode()
	ne := n.Encode()
	c1e := c1.Encode()
	c2e := c2.Encode()
	h := group.Sha512(ae[:], me[:], ne[:], c1e[:], c2e[:])
	return group.ScalarNonZeroFromHash(h)
}

// CreateProof proves knowledge of a such that N = a*M, returning the public
// commitment A = a*G alongside the proof. rand supplies the prover's
// per-proof randomness.
func CreateProof(a group.ScalarNonZero, m group.Element, rand io.Reader) (group.Element, Proof, error) {
	r, err := group.RandomScalarNonZero(rand)
	if err != nil {
		return group.Element{}, Proof{}, err
	}

	ga := group.MulBase(a)
	gn := group.Mul(a, m)
	gc1 := group.MulBase(r)
	gc2 := group.Mul(r, m)

	e := challenge(ga, m, gn, gc1, gc2)
	s := a.MulScalar(e).AsCanBeZero().Add(r.AsCanBeZero())

	return ga, Proof{N: gn, C1: gc1, C2: gc2, S: s}, nil
}

// VerifyProof checks that p attests N = a*M for the public commitment
// a = a*G, recomputing the Fiat-Shamir challenge from all five public
// values. Both component equalities must hold for the proof to verify.
func VerifyProof(a, m group.Element, p Proof) bool {
	e := challenge(a, m, p.N, p.C1, p.C2)

	left1 := group.MulBase(p.S)
	right1 := group.Add(group.Mul(e, a), p.C1)

	left2 := group.Mul(p.S, m)
	right2 := group.Add(group.Mul(e, p.N), p.C2)

	return left1.Equal(right1) && left2.Equal(right2)
}

// Encode returns the canonical 128-byte N‖C1‖C2‖S encoding of p.
func (p Proof) Encode() [Size]byte {
	var out [Size]byte
	n := p.N.Encode()
	c1 := p.C1.Encode()
	c2 := p.C2.Encode()
	s := p.S.Encode()
	off := 0
	off += copy(out[off:], n[:])
	off += copy(out[off:], c1[:])
	off += copy(out[off:], c2[:])
	copy(out[off:], s[:])
	return out
}

// Decode parses a canonical 128-byte proof encoding.
func Decode(v [Size]byte) (Proof, bool) {
	var nBytes, c1Bytes, c2Bytes [group.ElementSize]byte
	var sBytes [group.ScalarSize]byte
	off := 0
	copy(nBytes[:], v[off:off+group.ElementSize])
	off += group.ElementSize
	copy(c1Bytes[:], v[off:off+group.ElementSize])
	off += group.ElementSize
	copy(c2Bytes[:], v[off:off+group.ElementSize])
	off += group.ElementSize
	copy(sBytes[:], v[off:off+group.ScalarSize])

	n, ok := group.Decode(nBytes)
	if !ok {
		return Proof{}, false
	}
	c1, ok := group.Decode(c1Bytes)
	if !ok {
		return Proof{}, false
	}
	c2, ok := group.Decode(c2Bytes)
	if !ok {
		return Proof{}, false
	}
	s, ok := group.DecodeScalarCanBeZero(sBytes)
	if !ok {
		return Proof{}, false
	}
	return Proof{N: n, C1: c1, C2: c2, S: s}, true
}

// Sign produces a Fiat-Shamir signature of message under secretKey, reusing
// the discrete-log equality proof with M set to message.
func Sign(message group.Element, secretKey group.ScalarNonZero, rand io.Reader) (Proof, error) {
	_, p, err := CreateProof(secretKey, message, rand)
	return p, err
}

// Verify checks a signature produced by Sign against the signer's public
// key.
func Verify(message group.Element, p Proof, publicKey group.Element) bool {
	return VerifyProof(publicKey, message, p)
}
