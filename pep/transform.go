package pep

import (
	"io"

	"github.com/jobdoesburg/pep-go/factors"
	"github.com/jobdoesburg/pep-go/group"
	"github.com/jobdoesburg/pep-go/primitives"
)

// RekeyInfo is the combined rekey factor that moves an encrypted value from
// one encryption context to another.
type RekeyInfo struct{ k group.ScalarNonZero }

// NewRekeyInfo derives the factor that rekeys from the "from" encryption
// context to the "to" encryption context, both mixed with secret.
func NewRekeyInfo(from, to EncryptionContext, secret EncryptionSecret) RekeyInfo {
	kFrom := factors.MakeRekeyFactor(secret.bytes(), from.bytes())
	kTo := factors.MakeRekeyFactor(secret.bytes(), to.bytes())
	return RekeyInfo{k: kFrom.Invert().MulScalar(kTo)}
}

// Reverse returns the factor that undoes this rekeying, moving a value back
// from the "to" context to the "from" context.
func (r RekeyInfo) Reverse() RekeyInfo { return RekeyInfo{k: r.k.Invert()} }

// NewRekeyInfoFromGlobal derives the factor that rekeys a value encrypted
// directly under the global key into the given session's encryption
// context -- the counterpart to MakeSessionKeys, which derives that
// session's secret key as the same factor times the global secret key.
func NewRekeyInfoFromGlobal(to EncryptionContext, secret EncryptionSecret) RekeyInfo {
	return RekeyInfo{k: factors.MakeRekeyFactor(secret.bytes(), to.bytes())}
}

// PseudonymizationInfo is the combined reshuffle and rekey factors that move
// an encrypted pseudonym from one (pseudonymization context, encryption
// context) pair to another.
type PseudonymizationInfo struct {
	s group.ScalarNonZero
	k group.ScalarNonZero
}

// NewPseudonymizationInfo derives the factors that pseudonymize from
// (pseudoFrom, encFrom) to (pseudoTo, encTo), mixed with their respective
// secrets.
func NewPseudonymizationInfo(
	pseudoFrom, pseudoTo PseudonymizationContext,
	encFrom, encTo EncryptionContext,
	pseudoSecret PseudonymizationSecret,
	encSecret EncryptionSecret,
) PseudonymizationInfo {
	sFrom := factors.MakePseudonymizationFactor(pseudoSecret.bytes(), pseudoFrom.bytes())
	sTo := factors.MakePseudonymizationFactor(pseudoSecret.bytes(), pseudoTo.bytes())
	kFrom := factors.MakeRekeyFactor(encSecret.bytes(), encFrom.bytes())
	kTo := factors.MakeRekeyFactor(encSecret.bytes(), encTo.bytes())
	return PseudonymizationInfo{
		s: sFrom.Invert().MulScalar(sTo),
		k: kFrom.Invert().MulScalar(kTo),
	}
}

// Reverse returns the factors that undo this pseudonymization.
func (p PseudonymizationInfo) Reverse() PseudonymizationInfo {
	return PseudonymizationInfo{s: p.s.Invert(), k: p.k.Invert()}
}

// NewPseudonymizationInfoFromGlobal derives the factors that pseudonymize a
// pseudonym encrypted directly under the global key (and therefore not yet
// scoped to any pseudonymization or encryption context) into
// (pseudoTo, encTo). This is the pseudonym-specific counterpart to
// NewRekeyInfoFromGlobal: both apply only the "to" side factor, since there
// is no "from" context to invert.
func NewPseudonymizationInfoFromGlobal(
	pseudoTo PseudonymizationContext,
	encTo EncryptionContext,
	pseudoSecret PseudonymizationSecret,
	encSecret EncryptionSecret,
) PseudonymizationInfo {
	return PseudonymizationInfo{
		s: factors.MakePseudonymizationFactor(pseudoSecret.bytes(), pseudoTo.bytes()),
		k: factors.MakeRekeyFactor(encSecret.bytes(), encTo.bytes()),
	}
}

// RerandomizeEncryptedPseudonym rerandomizes e under publicKey without
// changing the pseudonym it decrypts to.
func RerandomizeEncryptedPseudonym(e EncryptedPseudonym, publicKey GlobalPublicKey, rand io.Reader) (EncryptedPseudonym, error) {
	r, err := group.RandomScalarNonZero(rand)
	if err != nil {
		return EncryptedPseudonym{}, err
	}
	return EncryptedPseudonym{ciphertext: primitives.Rerandomize(e.ciphertext, publicKey.value, r)}, nil
}

// RerandomizeEncryptedData rerandomizes e under publicKey without changing
// the data point it decrypts to.
func RerandomizeEncryptedData(e EncryptedDataPoint, publicKey GlobalPublicKey, rand io.Reader) (EncryptedDataPoint, error) {
	r, err := group.RandomScalarNonZero(rand)
	if err != nil {
		return EncryptedDataPoint{}, err
	}
	return EncryptedDataPoint{ciphertext: primitives.Rerandomize(e.ciphertext, publicKey.value, r)}, nil
}

// Pseudonymize moves e from one pseudonymization and encryption context to
// another, without ever decrypting it.
func Pseudonymize(e EncryptedPseudonym, info PseudonymizationInfo) EncryptedPseudonym {
	return EncryptedPseudonym{ciphertext: primitives.RSK(e.ciphertext, info.s, info.k)}
}

// Rekey moves e from one encryption context to another, without ever
// decrypting it.
func Rekey(e EncryptedDataPoint, info RekeyInfo) EncryptedDataPoint {
	return EncryptedDataPoint{ciphertext: primitives.Rekey(e.ciphertext, info.k)}
}

// RekeyPseudonym moves an encrypted pseudonym between encryption contexts
// without changing its pseudonymization context -- e.g. handing a pseudonym
// already scoped to the right domain to a different session.
func RekeyPseudonym(e EncryptedPseudonym, info RekeyInfo) EncryptedPseudonym {
	return EncryptedPseudonym{ciphertext: primitives.Rekey(e.ciphertext, info.k)}
}
