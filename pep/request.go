package pep

import (
	"github.com/google/uuid"
)

// PseudonymizationRequest bundles an encrypted pseudonym with the
// already-derived factors a transcryptor should apply to it, tagged with a
// caller-supplied request ID for audit correlation across logs. The
// request ID is never mixed into any factor derivation -- it identifies
// the request, not the cryptographic transformation, so callers are
// expected to supply their own (e.g. one threaded through from an incoming
// RPC's trace ID) rather than have one minted implicitly here.
type PseudonymizationRequest struct {
	RequestID uuid.UUID
	Encrypted EncryptedPseudonym
	Info      PseudonymizationInfo
}

// NewPseudonymizationRequest stamps requestID onto encrypted and info.
func NewPseudonymizationRequest(requestID uuid.UUID, encrypted EncryptedPseudonym, info PseudonymizationInfo) PseudonymizationRequest {
	return PseudonymizationRequest{RequestID: requestID, Encrypted: encrypted, Info: info}
}

// Apply pseudonymizes the request's encrypted pseudonym using its factors.
func (r PseudonymizationRequest) Apply() EncryptedPseudonym {
	return Pseudonymize(r.Encrypted, r.Info)
}
