package main

import (
	"crypto/rand"
	"fmt"

	"github.com/jobdoesburg/pep-go/pep"
)

func main() {
	fmt.Println("Generating global keys...")
	globalPk, globalSk, err := pep.MakeGlobalKeys(rand.Reader)
	if err != nil {
		fmt.Printf("Key generation failed: %v\n", err)
		return
	}
	pkEnc := pep.EncodeGlobalPublicKey(globalPk)
	fmt.Printf("Public global key: %x\n", pkEnc)

	fmt.Println("\n---------------\n")

	identity := [16]byte{}
	copy(identity[:], []byte("alice-patient-42"))
	pseudonym := pep.NewPseudonymFromBytes(identity)

	encrypted, err := pep.EncryptPseudonym(pseudonym, globalPk, rand.Reader)
	if err != nil {
		fmt.Printf("Encryption failed: %v\n", err)
		return
	}
	enc := encrypted.Encode()
	fmt.Printf("Encrypted global pseudonym: %x\n", enc)

	fmt.Println("\n---------------\n")

	studySecret := pep.NewPseudonymizationSecret([]byte("operator-pseudonymization-secret"))
	sessionSecret := pep.NewEncryptionSecret([]byte("operator-encryption-secret"))
	studyContext := pep.NewPseudonymizationContext("study-alpha")
	sessionContext := pep.NewEncryptionContext("session-2026-07-31")

	info := pep.NewPseudonymizationInfoFromGlobal(studyContext, sessionContext, studySecret, sessionSecret)
	local := pep.Pseudonymize(encrypted, info)
	localEnc := local.Encode()
	fmt.Printf("Local pseudonym for %q: %x\n", studyContext, localEnc)

	fmt.Println("\n---------------\n")

	_, sessionSk := pep.MakeSessionKeys(globalSk, sessionContext, sessionSecret)
	decrypted := pep.DecryptPseudonym(local, sessionSk)
	decryptedEnc := decrypted.AsPoint().Encode()
	fmt.Printf("Decrypted local pseudonym: %x\n", decryptedEnc)

	// The local pseudonym is the identity point scaled by the study's
	// pseudonymisation factor, so it does not decode back to the payload.
	// Reversing the pseudonymisation returns the global pseudonym, which does.
	global := pep.Pseudonymize(local, info.Reverse())
	original := pep.DecryptPseudonym(global, pep.NewSessionSecretKeyFromScalar(globalSk.Value()))

	recovered, ok := original.AsBytes()
	if !ok {
		fmt.Println("Failed to recover the original identity payload")
		return
	}
	fmt.Printf("Recovered identity payload: %q\n", recovered)

	if recovered == identity {
		fmt.Println("Recovered == Identity")
	} else {
		fmt.Println("Recovered != Identity")
	}
}
