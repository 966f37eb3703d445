// Command peppy performs operations on PEP pseudonyms from the command
// line: generate system keys, generate an encrypted global pseudonym,
// convert an encrypted global pseudonym to an encrypted local pseudonym,
// make a local decryption key, decrypt a local pseudonym, rerandomize a
// pseudonym, and benchmark the primitives.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/jobdoesburg/pep-go/elgamal"
	"github.com/jobdoesburg/pep-go/factors"
	"github.com/jobdoesburg/pep-go/group"
	"github.com/jobdoesburg/pep-go/pep"
	"github.com/jobdoesburg/pep-go/primitives"
	"github.com/urfave/cli/v2"
)

func decodeHex32(s string) ([32]byte, error) {
	var out [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("invalid hex: %w", err)
	}
	if len(raw) != 32 {
		return out, fmt.Errorf("expected 32 bytes, got %d", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}

func decodeHex64(s string) ([64]byte, error) {
	var out [64]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("invalid hex: %w", err)
	}
	if len(raw) != 64 {
		return out, fmt.Errorf("expected 64 bytes, got %d", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}

func main() {
	app := &cli.App{
		Name:        "peppy",
		Usage:       "operations on PEP pseudonyms",
		Description: "Perform operations on PEP pseudonyms: generate new system keys, generate an encrypted global PEP pseudonym, convert an encrypted global PEP pseudonym to an encrypted local PEP pseudonym, and decrypt an encrypted local PEP pseudonym to a (stable) local PEP pseudonym.",
		Commands: []*cli.Command{
			generateGlobalKeysCommand(),
			generatePseudonymCommand(),
			convertToLocalPseudonymCommand(),
			makeLocalDecryptionKeyCommand(),
			decryptLocalPseudonymCommand(),
			rerandomizePseudonymCommand(),
			benchCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generateGlobalKeysCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate-global-keys",
		Usage: "outputs a public global key and a secret global key (use once)",
		Action: func(c *cli.Context) error {
			pk, sk, err := pep.MakeGlobalKeys(rand.Reader)
			if err != nil {
				return err
			}
			pkEnc := pep.EncodeGlobalPublicKey(pk)
			skEnc := pep.EncodeGlobalSecretKey(sk)
			fmt.Fprint(os.Stderr, "Public global key: ")
			fmt.Println(hex.EncodeToString(pkEnc[:]))
			fmt.Fprint(os.Stderr, "Secret global key: ")
			fmt.Println(hex.EncodeToString(skEnc[:]))
			return nil
		},
	}
}

func generatePseudonymCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate-pseudonym",
		Usage:     "generates an encrypted global pseudonym",
		ArgsUsage: "identity global-public-key",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("expected 2 arguments: identity global-public-key")
			}
			identity := c.Args().Get(0)
			pkBytes, err := decodeHex32(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("global-public-key: %w", err)
			}
			pk, ok := pep.DecodeGlobalPublicKey(pkBytes)
			if !ok {
				return fmt.Errorf("global-public-key: not a valid public key")
			}

			pseudonym := pep.NewPseudonymFromIdentity(identity)
			encrypted, err := pep.EncryptPseudonym(pseudonym, pk, rand.Reader)
			if err != nil {
				return err
			}
			enc := encrypted.Encode()
			fmt.Println(hex.EncodeToString(enc[:]))
			return nil
		},
	}
}

func convertToLocalPseudonymCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert-to-local-pseudonym",
		Usage:     "converts a global encrypted pseudonym to a local encrypted pseudonym",
		ArgsUsage: "global-pseudonym server-secret decryption-context pseudonymisation-context",
		Description: "Converts a global encrypted pseudonym to a local encrypted pseudonym, decryptable by anybody that has the secret key as generated by make-local-decryption-key with the same decryption-context. The pseudonyms are stable if the same pseudonymisation context is given. The server secret should be a random string so the pseudonymisation and decryption factors are not guessable.",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 4 {
				return fmt.Errorf("expected 4 arguments: global-pseudonym server-secret decryption-context pseudonymisation-context")
			}
			ctBytes, err := decodeHex64(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("global-pseudonym: %w", err)
			}
			globalEncrypted, ok := pep.DecodeEncryptedPseudonym(ctBytes)
			if !ok {
				return fmt.Errorf("global-pseudonym: not a valid ciphertext")
			}

			serverSecret := c.Args().Get(1)
			decryptionContext := c.Args().Get(2)
			pseudonymisationContext := c.Args().Get(3)

			info := pep.NewPseudonymizationInfoFromGlobal(
				pep.NewPseudonymizationContext(pseudonymisationContext),
				pep.NewEncryptionContext(decryptionContext),
				pep.NewPseudonymizationSecret([]byte(serverSecret)),
				pep.NewEncryptionSecret([]byte(serverSecret)),
			)
			local := pep.Pseudonymize(globalEncrypted, info)
			enc := local.Encode()
			fmt.Println(hex.EncodeToString(enc[:]))
			return nil
		},
	}
}

func makeLocalDecryptionKeyCommand() *cli.Command {
	return &cli.Command{
		Name:      "make-local-decryption-key",
		Usage:     "creates a key that a party can use to decrypt an encrypted local pseudonym",
		ArgsUsage: "global-secret-key server-secret decryption-context",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 3 {
				return fmt.Errorf("expected 3 arguments: global-secret-key server-secret decryption-context")
			}
			skBytes, err := decodeHex32(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("global-secret-key: %w", err)
			}
			globalSk, ok := pep.DecodeGlobalSecretKey(skBytes)
			if !ok {
				return fmt.Errorf("global-secret-key: should not be zero")
			}

			serverSecret := c.Args().Get(1)
			decryptionContext := c.Args().Get(2)

			_, sessionSk := pep.MakeSessionKeys(
				globalSk,
				pep.NewEncryptionContext(decryptionContext),
				pep.NewEncryptionSecret([]byte(serverSecret)),
			)
			skEnc := sessionSk.Value().Encode()
			fmt.Println(hex.EncodeToString(skEnc[:]))
			return nil
		},
	}
}

func decryptLocalPseudonymCommand() *cli.Command {
	return &cli.Command{
		Name:      "decrypt-local-pseudonym",
		Usage:     "decrypts the local encrypted pseudonym with a local decryption key",
		ArgsUsage: "pseudonym local-decryption-key",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("expected 2 arguments: pseudonym local-decryption-key")
			}
			ctBytes, err := decodeHex64(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("pseudonym: %w", err)
			}
			encrypted, ok := pep.DecodeEncryptedPseudonym(ctBytes)
			if !ok {
				return fmt.Errorf("pseudonym: not a valid ciphertext")
			}

			skBytes, err := decodeHex32(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("local-decryption-key: %w", err)
			}
			sk, ok := group.DecodeScalarNonZero(skBytes)
			if !ok {
				return fmt.Errorf("local-decryption-key: should not be zero")
			}

			decrypted := pep.DecryptPseudonym(encrypted, pep.NewSessionSecretKeyFromScalar(sk))
			enc := decrypted.AsPoint().Encode()
			fmt.Println(hex.EncodeToString(enc[:]))
			return nil
		},
	}
}

func rerandomizePseudonymCommand() *cli.Command {
	return &cli.Command{
		Name:      "rerandomize-pseudonym",
		Usage:     "rerandomizes an encrypted pseudonym, global or local",
		ArgsUsage: "pseudonym public-key",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("expected 2 arguments: pseudonym public-key")
			}
			ctBytes, err := decodeHex64(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("pseudonym: %w", err)
			}
			encrypted, ok := pep.DecodeEncryptedPseudonym(ctBytes)
			if !ok {
				return fmt.Errorf("pseudonym: not a valid ciphertext")
			}

			pkBytes, err := decodeHex32(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("public-key: %w", err)
			}
			pk, ok := pep.DecodeGlobalPublicKey(pkBytes)
			if !ok {
				return fmt.Errorf("public-key: not a valid public key")
			}

			rerandomized, err := pep.RerandomizeEncryptedPseudonym(encrypted, pk, rand.Reader)
			if err != nil {
				return err
			}
			enc := rerandomized.Encode()
			fmt.Println(hex.EncodeToString(enc[:]))
			return nil
		},
	}
}

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:      "bench",
		Usage:     "benchmarks rerandomize, reshuffle, rekey, rsk and factor derivation for n iterations",
		ArgsUsage: "n",
		Action: func(c *cli.Context) error {
			n := 1000
			if c.Args().Len() == 1 {
				if _, err := fmt.Sscanf(c.Args().Get(0), "%d", &n); err != nil {
					return fmt.Errorf("n: %w", err)
				}
			}

			pk, _, err := pep.MakeGlobalKeys(rand.Reader)
			if err != nil {
				return err
			}
			pseudonym := pep.NewPseudonymFromIdentity("bench")
			encrypted, err := pep.EncryptPseudonym(pseudonym, pk, rand.Reader)
			if err != nil {
				return err
			}
			ct := encrypted.Encode()
			ciphertext, ok := elgamal.Decode(ct)
			if !ok {
				return fmt.Errorf("bench: internal encode/decode mismatch")
			}

			s, err := group.RandomScalarNonZero(rand.Reader)
			if err != nil {
				return err
			}
			k, err := group.RandomScalarNonZero(rand.Reader)
			if err != nil {
				return err
			}
			r, err := group.RandomScalarNonZero(rand.Reader)
			if err != nil {
				return err
			}

			start := time.Now()
			for i := 0; i < n; i++ {
				ciphertext = primitives.Rerandomize(ciphertext, pk.Value(), r)
			}
			fmt.Printf("rerandomize: %v/op\n", time.Since(start)/time.Duration(n))

			start = time.Now()
			for i := 0; i < n; i++ {
				ciphertext = primitives.Reshuffle(ciphertext, s)
			}
			fmt.Printf("reshuffle:   %v/op\n", time.Since(start)/time.Duration(n))

			start = time.Now()
			for i := 0; i < n; i++ {
				ciphertext = primitives.Rekey(ciphertext, k)
			}
			fmt.Printf("rekey:       %v/op\n", time.Since(start)/time.Duration(n))

			start = time.Now()
			for i := 0; i < n; i++ {
				ciphertext = primitives.RSK(ciphertext, s, k)
			}
			fmt.Printf("rsk:         %v/op\n", time.Since(start)/time.Duration(n))

			domain := []byte("bench-context")
			secret := []byte("bench-secret")
			var factor group.ScalarNonZero

			start = time.Now()
			for i := 0; i < n; i++ {
				factor = factors.MakeFactor(domain, secret, domain)
			}
			fmt.Printf("make-factor: %v/op\n", time.Since(start)/time.Duration(n))

			start = time.Now()
			for i := 0; i < n; i++ {
				factor = factors.DeriveFastFactor(domain, secret, domain)
			}
			fmt.Printf("fast-factor: %v/op\n", time.Since(start)/time.Duration(n))
			_ = factor

			return nil
		},
	}
}
