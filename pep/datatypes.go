package pep

import (
	"fmt"
	"io"

	"github.com/jobdoesburg/pep-go/elgamal"
	"github.com/jobdoesburg/pep-go/group"
)

// Pseudonym is a plaintext identity pseudonym: a curve point. When
// constructed from a 16-byte payload (typically a UUID) via the Lizard
// encoding it can round-trip back to that payload after decryption; when
// hashed from an identifier string it cannot.
type Pseudonym struct{ value group.Element }

// NewPseudonymFromBytes embeds a 16-byte payload as a pseudonym.
func NewPseudonymFromBytes(payload [16]byte) Pseudonym {
	return Pseudonym{value: group.DecodeLizard(payload)}
}

// NewPseudonymFromPoint wraps an arbitrary curve point directly as a
// pseudonym, bypassing the Lizard encoding -- used when the point did not
// originate from a 16-byte payload (e.g. it is itself the output of a prior
// rerandomization).
func NewPseudonymFromPoint(value group.Element) Pseudonym { return Pseudonym{value: value} }

// NewPseudonymFromIdentity hashes an identifier string (e.g. a patient
// number, an email address) directly into a pseudonym via the group's
// hash-to-element map -- the same one-way construction NewDataPointFromBytes
// uses for data points, not the Lizard embedding. This is the canonical way
// to turn a stable identifier into a pseudonym: it is deterministic (the
// same identity string always yields the same pseudonym) and one-way, so
// AsBytes cannot recover the identity from it.
func NewPseudonymFromIdentity(identity string) Pseudonym {
	return Pseudonym{value: group.ElementFromHash(group.Sha512([]byte(identity)))}
}

// AsPoint returns the pseudonym's underlying curve point.
func (p Pseudonym) AsPoint() group.Element { return p.value }

// AsBytes recovers the pseudonym's original 16-byte payload, if it was
// constructed via NewPseudonymFromBytes (or round-tripped through
// encryption and back). Rerandomize and Rekey leave the plaintext point
// unchanged; Reshuffle (and so Pseudonymize) multiplies it by a factor and
// moves it off the Lizard-decodable subset unless undone by its inverse.
func (p Pseudonym) AsBytes() ([16]byte, bool) { return p.value.EncodeLizard() }

// DataPoint is a plaintext payload encrypted for secure storage or
// processing without an expectation of recovering a fixed-size identifier
// from it; arbitrary-length data is folded into a curve point via the
// group's hash-to-element map, which is one-way.
type DataPoint struct{ value group.Element }

// NewDataPointFromPoint wraps an arbitrary curve point as a data point.
func NewDataPointFromPoint(value group.Element) DataPoint { return DataPoint{value: value} }

// NewDataPointFromBytes folds arbitrary-length data into a data point via
// the group's hash-to-element map. This is one-way: AsPoint is the only
// accessor, there is no AsBytes.
func NewDataPointFromBytes(data []byte) DataPoint {
	return DataPoint{value: group.ElementFromHash(group.Sha512(data))}
}

// AsPoint returns the data point's underlying curve point.
func (d DataPoint) AsPoint() group.Element { return d.value }

// EncryptedPseudonym is a pseudonym encrypted under a global or session
// public key.
type EncryptedPseudonym struct{ ciphertext elgamal.Ciphertext }

// EncryptedDataPoint is a data point encrypted under a global or session
// public key.
type EncryptedDataPoint struct{ ciphertext elgamal.Ciphertext }

// EncryptPseudonym encrypts p under publicKey.
func EncryptPseudonym(p Pseudonym, publicKey GlobalPublicKey, rand io.Reader) (EncryptedPseudonym, error) {
	ct, err := elgamal.Encrypt(p.value, publicKey.value, rand)
	if err != nil {
		return EncryptedPseudonym{}, fmt.Errorf("pep: encrypt pseudonym: %w", err)
	}
	return EncryptedPseudonym{ciphertext: ct}, nil
}

// DecryptPseudonym decrypts e under secretKey. The caller is responsible
// for having rekeyed e into the context matching secretKey beforehand.
func DecryptPseudonym(e EncryptedPseudonym, secretKey SessionSecretKey) Pseudonym {
	return Pseudonym{value: elgamal.Decrypt(e.ciphertext, secretKey.value)}
}

// EncryptData encrypts d under publicKey.
func EncryptData(d DataPoint, publicKey GlobalPublicKey, rand io.Reader) (EncryptedDataPoint, error) {
	ct, err := elgamal.Encrypt(d.value, publicKey.value, rand)
	if err != nil {
		return EncryptedDataPoint{}, fmt.Errorf("pep: encrypt data point: %w", err)
	}
	return EncryptedDataPoint{ciphertext: ct}, nil
}

// DecryptData decrypts e under secretKey.
func DecryptData(e EncryptedDataPoint, secretKey SessionSecretKey) DataPoint {
	return DataPoint{value: elgamal.Decrypt(e.ciphertext, secretKey.value)}
}

// Encode returns the canonical 64-byte encoding of e.
func (e EncryptedPseudonym) Encode() [elgamal.Size]byte { return e.ciphertext.Encode() }

// DecodeEncryptedPseudonym parses a canonical 64-byte ciphertext encoding.
func DecodeEncryptedPseudonym(v [elgamal.Size]byte) (EncryptedPseudonym, bool) {
	ct, ok := elgamal.Decode(v)
	if !ok {
		return EncryptedPseudonym{}, false
	}
	return EncryptedPseudonym{ciphertext: ct}, true
}

// Encode returns the canonical 64-byte encoding of e.
func (e EncryptedDataPoint) Encode() [elgamal.Size]byte { return e.ciphertext.Encode() }

// DecodeEncryptedDataPoint parses a canonical 64-byte ciphertext encoding.
func DecodeEncryptedDataPoint(v [elgamal.Size]byte) (EncryptedDataPoint, bool) {
	ct, ok := elgamal.Decode(v)
	if !ok {
		return EncryptedDataPoint{}, false
	}
	return EncryptedDataPoint{ciphertext: ct}, true
}
