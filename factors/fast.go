package factors

import (
	"github.com/jobdoesburg/pep-go/group"
	"lukechampine.com/blake3"
)

// DeriveFastFactor is a BLAKE3-backed alternative to MakeFactor, used only by
// the peppy CLI's throughput benchmark (see cmd/peppy). It is deliberately
// kept out of the pseudonymization and rekey code paths: the 64-byte
// SHA-512 construction mandated by §4.4 is what every stored or transmitted
// factor must use, and swapping the hash would silently change every
// derived factor for a given (secret, context) pair.
func DeriveFastFactor(domain, secret, context []byte) group.ScalarNonZero {
	h := blake3.New(64, nil)
	h.Write(domain)
	h.Write([]byte("|"))
	h.Write(secret)
	h.Write([]byte("|"))
	h.Write(context)

	var digest [group.HashSize]byte
	copy(digest[:], h.Sum(nil))
	return group.ScalarNonZeroFromHash(digest)
}
