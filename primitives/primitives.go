// Package primitives implements the PEP transformation primitives:
// rerandomize, reshuffle, rekey, and their rsk/rrsk combinations, plus the
// "from/to" variants used to move a ciphertext between two contexts in one
// step. Every function here is pure and total on its domain; none of them
// decrypt anything.
package primitives

import (
	"github.com/jobdoesburg/pep-go/elgamal"
	"github.com/jobdoesburg/pep-go/group"
)

// Rerandomize changes a ciphertext's representation using factor r without
// changing what it decrypts to. gy is the public key the ciphertext was
// encrypted under (the two-element ElGamal encoding does not carry it).
func Rerandomize(m elgamal.Ciphertext, gy group.Element, r group.ScalarNonZero) elgamal.Ciphertext {
	return elgamal.Ciphertext{
		B: group.Add(group.MulBase(r), m.B),
		C: group.Add(group.Mul(r, gy), m.C),
	}
}

// Reshuffle changes a ciphertext's representation using factor s so that it
// decrypts to s*plaintext under the same key.
func Reshuffle(m elgamal.Ciphertext, s group.ScalarNonZero) elgamal.Ciphertext {
	return elgamal.Ciphertext{
		B: group.Mul(s, m.B),
		C: group.Mul(s, m.C),
	}
}

// Rekey changes which secret key opens a ciphertext: the result decrypts
// correctly under k*y if m decrypts correctly under y.
func Rekey(m elgamal.Ciphertext, k group.ScalarNonZero) elgamal.Ciphertext {
	return elgamal.Ciphertext{
		B: group.Mul(k.Invert(), m.B),
		C: m.C,
	}
}

// RSK combines Reshuffle(s) and Rekey(k) in one pass.
func RSK(m elgamal.Ciphertext, s, k group.ScalarNonZero) elgamal.Ciphertext {
	return elgamal.Ciphertext{
		B: group.Mul(s.MulScalar(k.Invert()), m.B),
		C: group.Mul(s, m.C),
	}
}

// RRSK combines Rerandomize(r), Reshuffle(s) and Rekey(k) in one pass. gy is
// the public key the ciphertext was encrypted under.
func RRSK(m elgamal.Ciphertext, gy group.Element, r, s, k group.ScalarNonZero) elgamal.Ciphertext {
	ski := s.MulScalar(k.Invert())
	return elgamal.Ciphertext{
		B: group.Add(group.Mul(ski, m.B), group.Mul(ski, group.MulBase(r))),
		C: group.Add(group.Mul(s.MulScalar(r), gy), group.Mul(s, m.C)),
	}
}

// ReshuffleFromTo is Reshuffle with a factor sFrom^-1 * sTo, used to move a
// ciphertext from a context keyed by sFrom to one keyed by sTo in one step.
func ReshuffleFromTo(m elgamal.Ciphertext, sFrom, sTo group.ScalarNonZero) elgamal.Ciphertext {
	return Reshuffle(m, sFrom.Invert().MulScalar(sTo))
}

// RekeyFromTo is Rekey with a factor kFrom^-1 * kTo.
func RekeyFromTo(m elgamal.Ciphertext, kFrom, kTo group.ScalarNonZero) elgamal.Ciphertext {
	return Rekey(m, kFrom.Invert().MulScalar(kTo))
}

// RSKFromTo is RSK with reshuffle factor sFrom^-1*sTo and rekey factor
// kFrom^-1*kTo.
func RSKFromTo(m elgamal.Ciphertext, sFrom, sTo, kFrom, kTo group.ScalarNonZero) elgamal.Ciphertext {
	s := sFrom.Invert().MulScalar(sTo)
	k := kFrom.Invert().MulScalar(kTo)
	return RSK(m, s, k)
}

// RRSKFromTo is RRSK with reshuffle factor sFrom^-1*sTo and rekey factor
// kFrom^-1*kTo.
func RRSKFromTo(m elgamal.Ciphertext, gy group.Element, r, sFrom, sTo, kFrom, kTo group.ScalarNonZero) elgamal.Ciphertext {
	s := sFrom.Invert().MulScalar(sTo)
	k := kFrom.Invert().MulScalar(kTo)
	return RRSK(m, gy, r, s, k)
}
