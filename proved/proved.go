// Package proved pairs each PEP primitive with a Schnorr/Fiat-Shamir proof
// binding the hidden transformation factor(s) to a public commitment, so a
// verifier who is given only the old ciphertext, the new ciphertext, and the
// commitment(s) -- never the factor(s) themselves -- can check the
// transformation was performed honestly.
//
// Each proof here is package zkp's discrete-log equality proof applied to
// one ciphertext component. Reshuffle and RSK attest their factor on the
// ciphertext's C component (reshuffle leaves C as a straightforward
// newC = s*oldC, whichever of the two factors is involved); Rekey attests
// on B, using the inverse relation oldB = k*newB since rekey moves B by
// k^-1. RRSK's proof additionally requires the caller to reveal its
// rerandomization factor r to the verifier -- see VerifyProvedRRSK's doc
// comment and DESIGN.md for why that one factor falls outside the hidden set.
package proved

import (
	"io"

	"github.com/jobdoesburg/pep-go/elgamal"
	"github.com/jobdoesburg/pep-go/group"
	"github.com/jobdoesburg/pep-go/primitives"
	"github.com/jobdoesburg/pep-go/zkp"
)

// ProvedRekey rekeys m by k and returns the new ciphertext together with a
// public commitment to k and a proof that the rekey was applied honestly.
func ProvedRekey(m elgamal.Ciphertext, k group.ScalarNonZero, rand io.Reader) (elgamal.Ciphertext, group.Element, zkp.Proof, error) {
	newCt := primitives.Rekey(m, k)
	commitment, proof, err := zkp.CreateProof(k, newCt.B, rand)
	if err != nil {
		return elgamal.Ciphertext{}, group.Element{}, zkp.Proof{}, err
	}
	return newCt, commitment, proof, nil
}

// VerifyProvedRekey checks that newCt is a valid rekeying of oldCt under the
// factor committed to by kCommitment.
func VerifyProvedRekey(oldCt, newCt elgamal.Ciphertext, kCommitment group.Element, proof zkp.Proof) bool {
	return proof.N.Equal(oldCt.B) && zkp.VerifyProof(kCommitment, newCt.B, proof)
}

// ProvedReshuffle reshuffles m by s and returns the new ciphertext together
// with a public commitment to s and a proof that the reshuffle was applied
// honestly.
func ProvedReshuffle(m elgamal.Ciphertext, s group.ScalarNonZero, rand io.Reader) (elgamal.Ciphertext, group.Element, zkp.Proof, error) {
	newCt := primitives.Reshuffle(m, s)
	commitment, proof, err := zkp.CreateProof(s, m.C, rand)
	if err != nil {
		return elgamal.Ciphertext{}, group.Element{}, zkp.Proof{}, err
	}
	return newCt, commitment, proof, nil
}

// VerifyProvedReshuffle checks that newCt is a valid reshuffling of oldCt
// under the factor committed to by sCommitment.
func VerifyProvedReshuffle(oldCt, newCt elgamal.Ciphertext, sCommitment group.Element, proof zkp.Proof) bool {
	return proof.N.Equal(newCt.C) && zkp.VerifyProof(sCommitment, oldCt.C, proof)
}

// RSKProof bundles the two component proofs RSK requires: one attesting the
// reshuffle factor s (over the C component), one attesting the combined
// s*k^-1 factor RSK applies to the B component.
type RSKProof struct {
	SCommitment   group.Element
	SProof        zkp.Proof
	SKICommitment group.Element
	SKIProof      zkp.Proof
}

// ProvedRSK applies RSK(m, s, k) and returns the new ciphertext together
// with an RSKProof attesting both factors.
func ProvedRSK(m elgamal.Ciphertext, s, k group.ScalarNonZero, rand io.Reader) (elgamal.Ciphertext, RSKProof, error) {
	newCt := primitives.RSK(m, s, k)

	sCommitment, sProof, err := zkp.CreateProof(s, m.C, rand)
	if err != nil {
		return elgamal.Ciphertext{}, RSKProof{}, err
	}

	ski := s.MulScalar(k.Invert())
	skiCommitment, skiProof, err := zkp.CreateProof(ski, m.B, rand)
	if err != nil {
		return elgamal.Ciphertext{}, RSKProof{}, err
	}

	return newCt, RSKProof{
		SCommitment:   sCommitment,
		SProof:        sProof,
		SKICommitment: skiCommitment,
		SKIProof:      skiProof,
	}, nil
}

// VerifyProvedRSK checks that newCt is a valid RSK of oldCt under the
// factors committed to in proof.
func VerifyProvedRSK(oldCt, newCt elgamal.Ciphertext, proof RSKProof) bool {
	reshuffleOK := proof.SProof.N.Equal(newCt.C) && zkp.VerifyProof(proof.SCommitment, oldCt.C, proof.SProof)
	rekeyOK := proof.SKIProof.N.Equal(newCt.B) && zkp.VerifyProof(proof.SKICommitment, oldCt.B, proof.SKIProof)
	return reshuffleOK && rekeyOK
}

// ProvedRRSK applies RRSK(m, gy, r, s, k) and returns the new ciphertext
// together with a proof attesting s and k. Unlike the other proved
// primitives, the rerandomization factor r is NOT hidden behind a
// commitment: RRSK entangles r and the rekey factor multiplicatively inside
// a single group element (ski*r*G), which a plain Schnorr/DLEQ proof cannot
// attest to without revealing one of the two factors involved in the
// product. This implementation reveals r to the verifier and proves only s
// and k as hidden factors; see DESIGN.md for the full reasoning.
func ProvedRRSK(m elgamal.Ciphertext, gy group.Element, r, s, k group.ScalarNonZero, rand io.Reader) (elgamal.Ciphertext, RSKProof, error) {
	rerandomized := primitives.Rerandomize(m, gy, r)
	newCt, proof, err := ProvedRSK(rerandomized, s, k, rand)
	if err != nil {
		return elgamal.Ciphertext{}, RSKProof{}, err
	}
	return newCt, proof, nil
}

// VerifyProvedRRSK checks that newCt is a valid RRSK of oldCt under the
// given (revealed) rerandomization factor r and the s, k factors committed
// to in proof.
func VerifyProvedRRSK(oldCt, newCt elgamal.Ciphertext, gy group.Element, r group.ScalarNonZero, proof RSKProof) bool {
	rerandomized := primitives.Rerandomize(oldCt, gy, r)
	return VerifyProvedRSK(rerandomized, newCt, proof)
}

// ProvedRekeyFromTo rekeys m from kFrom to kTo and proves the combined
// factor kFrom^-1*kTo.
func ProvedRekeyFromTo(m elgamal.Ciphertext, kFrom, kTo group.ScalarNonZero, rand io.Reader) (elgamal.Ciphertext, group.Element, zkp.Proof, error) {
	return ProvedRekey(m, kFrom.Invert().MulScalar(kTo), rand)
}

// ProvedReshuffleFromTo reshuffles m from sFrom to sTo and proves the
// combined factor sFrom^-1*sTo.
func ProvedReshuffleFromTo(m elgamal.Ciphertext, sFrom, sTo group.ScalarNonZero, rand io.Reader) (elgamal.Ciphertext, group.Element, zkp.Proof, error) {
	return ProvedReshuffle(m, sFrom.Invert().MulScalar(sTo), rand)
}

// ProvedRSKFromTo applies RSK from (sFrom, kFrom) to (sTo, kTo) and proves
// both combined factors.
func ProvedRSKFromTo(m elgamal.Ciphertext, sFrom, sTo, kFrom, kTo group.ScalarNonZero, rand io.Reader) (elgamal.Ciphertext, RSKProof, error) {
	s := sFrom.Invert().MulScalar(sTo)
	k := kFrom.Invert().MulScalar(kTo)
	return ProvedRSK(m, s, k, rand)
}
