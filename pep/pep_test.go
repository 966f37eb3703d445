package pep

import (
	"crypto/rand"
	"testing"

	"github.com/google/uuid"
)

func TestGlobalAndSessionKeyEncryptDecrypt(t *testing.T) {
	globalPk, globalSk, err := MakeGlobalKeys(rand.Reader)
	if err != nil {
		t.Fatalf("MakeGlobalKeys: %v", err)
	}

	encCtx := NewEncryptionContext("study-2026")
	encSecret := NewEncryptionSecret([]byte("operator-encryption-secret"))
	_, sessionSk := MakeSessionKeys(globalSk, encCtx, encSecret)

	payload := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	pseudonym := NewPseudonymFromBytes(payload)

	encrypted, err := EncryptPseudonym(pseudonym, globalPk, rand.Reader)
	if err != nil {
		t.Fatalf("EncryptPseudonym: %v", err)
	}

	rekeyed := RekeyPseudonym(encrypted, NewRekeyInfoFromGlobal(encCtx, encSecret))

	decrypted := DecryptPseudonym(rekeyed, sessionSk)
	if !decrypted.AsPoint().Equal(pseudonym.AsPoint()) {
		t.Fatalf("decrypted pseudonym does not match original")
	}

	got, ok := decrypted.AsBytes()
	if !ok {
		t.Fatalf("AsBytes failed to decode a Lizard-embedded pseudonym")
	}
	if got != payload {
		t.Errorf("AsBytes = %v, want %v", got, payload)
	}
}

func TestPseudonymizationInfoReverse(t *testing.T) {
	pseudoFrom := NewPseudonymizationContext("org-a")
	pseudoTo := NewPseudonymizationContext("org-b")
	encCtx := NewEncryptionContext("session-1")
	pseudoSecret := NewPseudonymizationSecret([]byte("pseudonym-secret"))
	encSecret := NewEncryptionSecret([]byte("encryption-secret"))

	globalPk, globalSk, err := MakeGlobalKeys(rand.Reader)
	if err != nil {
		t.Fatalf("MakeGlobalKeys: %v", err)
	}
	_, sessionSk := MakeSessionKeys(globalSk, encCtx, encSecret)

	payload := [16]byte{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}
	pseudonym := NewPseudonymFromBytes(payload)
	encrypted, err := EncryptPseudonym(pseudonym, globalPk, rand.Reader)
	if err != nil {
		t.Fatalf("EncryptPseudonym: %v", err)
	}
	rekeyed := RekeyPseudonym(encrypted, NewRekeyInfoFromGlobal(encCtx, encSecret))

	info := NewPseudonymizationInfo(pseudoFrom, pseudoTo, encCtx, encCtx, pseudoSecret, encSecret)
	forward := Pseudonymize(rekeyed, info)
	back := Pseudonymize(forward, info.Reverse())

	decrypted := DecryptPseudonym(back, sessionSk)
	if !decrypted.AsPoint().Equal(pseudonym.AsPoint()) {
		t.Errorf("reversing a pseudonymization did not recover the original pseudonym")
	}

	forwardDecrypted := DecryptPseudonym(forward, sessionSk)
	if forwardDecrypted.AsPoint().Equal(pseudonym.AsPoint()) {
		t.Errorf("pseudonymizing into a different context left the pseudonym unchanged")
	}
}

func TestPseudonymizationRequestApply(t *testing.T) {
	globalPk, _, err := MakeGlobalKeys(rand.Reader)
	if err != nil {
		t.Fatalf("MakeGlobalKeys: %v", err)
	}

	payload := [16]byte{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	pseudonym := NewPseudonymFromBytes(payload)
	encrypted, err := EncryptPseudonym(pseudonym, globalPk, rand.Reader)
	if err != nil {
		t.Fatalf("EncryptPseudonym: %v", err)
	}

	pseudoSecret := NewPseudonymizationSecret([]byte("secret"))
	encSecret := NewEncryptionSecret([]byte("secret"))
	encCtx := NewEncryptionContext("ctx")

	info := NewPseudonymizationInfo(
		NewPseudonymizationContext("from"), NewPseudonymizationContext("to"),
		encCtx, encCtx,
		pseudoSecret, encSecret,
	)
	requestID := uuid.New()
	req := NewPseudonymizationRequest(requestID, encrypted, info)
	if req.RequestID != requestID {
		t.Fatalf("request did not retain the caller-supplied request ID")
	}

	result := req.Apply()
	if result.Encode() == encrypted.Encode() {
		t.Errorf("pseudonymization did not change the ciphertext")
	}
}

func TestEncryptionSecretStringIsRedacted(t *testing.T) {
	s := NewEncryptionSecret([]byte("super-secret-value"))
	if got := s.String(); got == "super-secret-value" {
		t.Errorf("String() leaked the secret value")
	}
}

func TestPseudonymizationSecretStringIsRedacted(t *testing.T) {
	s := NewPseudonymizationSecret([]byte("super-secret-value"))
	if got := s.String(); got == "super-secret-value" {
		t.Errorf("String() leaked the secret value")
	}
}

func TestDataPointEncryptDecrypt(t *testing.T) {
	globalPk, globalSk, err := MakeGlobalKeys(rand.Reader)
	if err != nil {
		t.Fatalf("MakeGlobalKeys: %v", err)
	}
	encCtx := NewEncryptionContext("data-session")
	encSecret := NewEncryptionSecret([]byte("data-secret"))
	_, sessionSk := MakeSessionKeys(globalSk, encCtx, encSecret)

	dp := NewDataPointFromBytes([]byte("arbitrary clinical payload"))
	encrypted, err := EncryptData(dp, globalPk, rand.Reader)
	if err != nil {
		t.Fatalf("EncryptData: %v", err)
	}

	rekeyed := Rekey(encrypted, NewRekeyInfoFromGlobal(encCtx, encSecret))

	decrypted := DecryptData(rekeyed, sessionSk)
	if !decrypted.AsPoint().Equal(dp.AsPoint()) {
		t.Errorf("decrypted data point does not match original")
	}
}

func TestRerandomizeEncryptedPseudonymPreservesPlaintext(t *testing.T) {
	globalPk, globalSk, err := MakeGlobalKeys(rand.Reader)
	if err != nil {
		t.Fatalf("MakeGlobalKeys: %v", err)
	}

	payload := [16]byte{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2}
	pseudonym := NewPseudonymFromBytes(payload)
	encrypted, err := EncryptPseudonym(pseudonym, globalPk, rand.Reader)
	if err != nil {
		t.Fatalf("EncryptPseudonym: %v", err)
	}

	rerandomized, err := RerandomizeEncryptedPseudonym(encrypted, globalPk, rand.Reader)
	if err != nil {
		t.Fatalf("RerandomizeEncryptedPseudonym: %v", err)
	}
	if rerandomized.Encode() == encrypted.Encode() {
		t.Errorf("rerandomization did not change the ciphertext encoding")
	}

	decrypted := DecryptPseudonym(rerandomized, NewSessionSecretKeyFromScalar(globalSk.value))
	if !decrypted.AsPoint().Equal(pseudonym.AsPoint()) {
		t.Errorf("rerandomization changed the decrypted plaintext")
	}
}

func TestRerandomizeEncryptedDataPreservesPlaintext(t *testing.T) {
	globalPk, globalSk, err := MakeGlobalKeys(rand.Reader)
	if err != nil {
		t.Fatalf("MakeGlobalKeys: %v", err)
	}

	dp := NewDataPointFromBytes([]byte("lab result payload"))
	encrypted, err := EncryptData(dp, globalPk, rand.Reader)
	if err != nil {
		t.Fatalf("EncryptData: %v", err)
	}

	rerandomized, err := RerandomizeEncryptedData(encrypted, globalPk, rand.Reader)
	if err != nil {
		t.Fatalf("RerandomizeEncryptedData: %v", err)
	}
	if rerandomized.Encode() == encrypted.Encode() {
		t.Errorf("rerandomization did not change the ciphertext encoding")
	}

	decrypted := DecryptData(rerandomized, NewSessionSecretKeyFromScalar(globalSk.value))
	if !decrypted.AsPoint().Equal(dp.AsPoint()) {
		t.Errorf("rerandomization changed the decrypted plaintext")
	}
}
