// Package pep is the high-level PEP API: typed pseudonyms and data points,
// their encrypted forms, global and session keys, and the composite
// transformation factors that move an encrypted pseudonym or data point
// between pseudonymisation and encryption contexts.
package pep

import (
	"io"

	"github.com/jobdoesburg/pep-go/factors"
	"github.com/jobdoesburg/pep-go/group"
)

// GlobalPublicKey is the single, long-lived public key every client
// encrypts pseudonyms and data points under.
type GlobalPublicKey struct{ value group.Element }

// GlobalSecretKey is held by exactly one party: the system operator who
// mints session keys and never uses it to decrypt directly.
type GlobalSecretKey struct{ value group.ScalarNonZero }

// SessionPublicKey is a context-specific public key derived from the global
// key, under which a session's transcryptor re-encrypts data for a
// particular consumer.
type SessionPublicKey struct{ value group.Element }

// SessionSecretKey decrypts ciphertexts rekeyed into its session's context.
type SessionSecretKey struct{ value group.ScalarNonZero }

// Value returns the underlying group element of a public key.
func (k GlobalPublicKey) Value() group.Element { return k.value }

// Value returns the underlying group element of a public key.
func (k SessionPublicKey) Value() group.Element { return k.value }

// Value returns the underlying scalar of a secret key. Exported for callers
// that need to pass a secret key to a lower-level primitive directly (e.g.
// the peppy CLI); it is never logged or printed by this package.
func (k GlobalSecretKey) Value() group.ScalarNonZero { return k.value }

// Value returns the underlying scalar of a secret key.
func (k SessionSecretKey) Value() group.ScalarNonZero { return k.value }

// EncodeGlobalPublicKey returns the canonical 32-byte encoding of pk.
func EncodeGlobalPublicKey(pk GlobalPublicKey) [group.ElementSize]byte { return pk.value.Encode() }

// DecodeGlobalPublicKey parses a canonical 32-byte public key encoding.
func DecodeGlobalPublicKey(b [group.ElementSize]byte) (GlobalPublicKey, bool) {
	el, ok := group.Decode(b)
	if !ok {
		return GlobalPublicKey{}, false
	}
	return GlobalPublicKey{value: el}, true
}

// EncodeGlobalSecretKey returns the canonical 32-byte encoding of sk.
func EncodeGlobalSecretKey(sk GlobalSecretKey) [group.ScalarSize]byte { return sk.value.Encode() }

// DecodeGlobalSecretKey parses a canonical 32-byte secret key encoding,
// rejecting the zero scalar.
func DecodeGlobalSecretKey(b [group.ScalarSize]byte) (GlobalSecretKey, bool) {
	s, ok := group.DecodeScalarNonZero(b)
	if !ok {
		return GlobalSecretKey{}, false
	}
	return GlobalSecretKey{value: s}, true
}

// MakeGlobalKeys generates a fresh global key pair.
func MakeGlobalKeys(rand io.Reader) (GlobalPublicKey, GlobalSecretKey, error) {
	sk, err := group.RandomScalarNonZero(rand)
	if err != nil {
		return GlobalPublicKey{}, GlobalSecretKey{}, err
	}
	pk := group.MulBase(sk)
	return GlobalPublicKey{value: pk}, GlobalSecretKey{value: sk}, nil
}

// NewSessionSecretKeyFromScalar wraps a raw scalar as a session secret key
// directly, for callers (such as the peppy CLI) that received a decryption
// key out of band rather than deriving it via MakeSessionKeys.
func NewSessionSecretKeyFromScalar(s group.ScalarNonZero) SessionSecretKey {
	return SessionSecretKey{value: s}
}

// MakeSessionKeys derives a session key pair from the global secret key, an
// encryption context, and an encryption secret: k = MakeRekeyFactor(secret,
// context); session secret = k * global secret.
func MakeSessionKeys(global GlobalSecretKey, context EncryptionContext, secret EncryptionSecret) (SessionPublicKey, SessionSecretKey) {
	k := factors.MakeRekeyFactor(secret.bytes(), context.bytes())
	sk := k.MulScalar(global.value)
	pk := group.MulBase(sk)
	return SessionPublicKey{value: pk}, SessionSecretKey{value: sk}
}
