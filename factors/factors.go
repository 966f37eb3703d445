// Package factors derives the deterministic, non-zero scalars that drive
// pseudonymization and rekeying: the same secret and context always produce
// the same factor, and different domains (pseudonymisation vs. decryption)
// never share a hash input.
package factors

import (
	"github.com/jobdoesburg/pep-go/group"
)

const (
	domainPseudonym  = "pseudonym"
	domainDecryption = "decryption"
)

// MakeFactor derives a non-zero scalar from domain, secret and context by
// hashing domain || "|" || secret || "|" || context with SHA-512 and
// reducing the digest into Z_ℓ. The hash input is the plain concatenation
// of the five parts; the "|" separators mark the boundaries, but an input
// that itself contains "|" can shift a boundary, so two triples can share a
// hash input in that case.
func MakeFactor(domain, secret, context []byte) group.ScalarNonZero {
	h := group.Sha512(domain, []byte("|"), secret, []byte("|"), context)
	return group.ScalarNonZeroFromHash(h)
}

// MakePseudonymizationFactor derives the factor used to reshuffle a
// pseudonym's ciphertext between two pseudonymisation contexts.
func MakePseudonymizationFactor(secret, context []byte) group.ScalarNonZero {
	return MakeFactor([]byte(domainPseudonym), secret, context)
}

// MakeRekeyFactor derives the factor used to rekey a ciphertext between two
// encryption contexts.
func MakeRekeyFactor(secret, context []byte) group.ScalarNonZero {
	return MakeFactor([]byte(domainDecryption), secret, context)
}

// MakeDecryptionFactor is an alias for MakeRekeyFactor, kept because both
// names appear across the PEP literature and callers for the two
// vocabularies: "rekey" (transform a ciphertext between keys) and "decrypt"
// (derive the key a given session can decrypt with) are the same operation
// viewed from two directions.
func MakeDecryptionFactor(secret, context []byte) group.ScalarNonZero {
	return MakeRekeyFactor(secret, context)
}
