package primitives

import (
	"crypto/rand"
	"testing"

	"github.com/jobdoesburg/pep-go/elgamal"
	"github.com/jobdoesburg/pep-go/group"
)

func randomScalar(t *testing.T) group.ScalarNonZero {
	t.Helper()
	s, err := group.RandomScalarNonZero(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalarNonZero: %v", err)
	}
	return s
}

func randomElement(t *testing.T) group.Element {
	t.Helper()
	el, err := group.RandomElement(rand.Reader)
	if err != nil {
		t.Fatalf("RandomElement: %v", err)
	}
	return el
}

func TestRerandomizePreservesPlaintext(t *testing.T) {
	y := randomScalar(t)
	gy := group.MulBase(y)
	r := randomScalar(t)
	m := randomElement(t)

	ct, err := elgamal.Encrypt(m, gy, rand.Reader)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	rerandomized := Rerandomize(ct, gy, r)
	if !elgamal.Decrypt(rerandomized, y).Equal(m) {
		t.Errorf("decrypt(rerandomize(E, r), y) != decrypt(E, y)")
	}
	if rerandomized.B.Equal(ct.B) {
		t.Errorf("rerandomize did not change the ciphertext representation")
	}
}

func TestReshuffleScalesPlaintext(t *testing.T) {
	y := randomScalar(t)
	gy := group.MulBase(y)
	s := randomScalar(t)
	m := randomElement(t)

	ct, err := elgamal.Encrypt(m, gy, rand.Reader)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	reshuffled := Reshuffle(ct, s)
	decrypted := elgamal.Decrypt(reshuffled, y)
	if !decrypted.Equal(group.Mul(s, m)) {
		t.Errorf("decrypt(reshuffle(E, s), y) != s*m")
	}
}

func TestRekeyChangesDecryptionKey(t *testing.T) {
	y := randomScalar(t)
	gy := group.MulBase(y)
	k := randomScalar(t)
	m := randomElement(t)

	ct, err := elgamal.Encrypt(m, gy, rand.Reader)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	rekeyed := Rekey(ct, k)
	decrypted := elgamal.Decrypt(rekeyed, k.MulScalar(y))
	if !decrypted.Equal(m) {
		t.Errorf("decrypt(rekey(E, k), k*y) != m")
	}

	// Decryption under the original key must not recover m anymore.
	wrongDecrypt := elgamal.Decrypt(rekeyed, y)
	if wrongDecrypt.Equal(m) {
		t.Errorf("rekeyed ciphertext still decrypts under the original key")
	}
}

func TestRSK(t *testing.T) {
	y := randomScalar(t)
	gy := group.MulBase(y)
	s := randomScalar(t)
	k := randomScalar(t)
	m := randomElement(t)

	ct, err := elgamal.Encrypt(m, gy, rand.Reader)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	rsked := RSK(ct, s, k)
	decrypted := elgamal.Decrypt(rsked, k.MulScalar(y))
	if !decrypted.Equal(group.Mul(s, m)) {
		t.Errorf("decrypt(rsk(E, s, k), k*y) != s*m")
	}
}

func TestRekeyFromTo(t *testing.T) {
	y := randomScalar(t)
	gy := group.MulBase(y)
	kFrom := randomScalar(t)
	kTo := randomScalar(t)
	m := randomElement(t)

	ct, err := elgamal.Encrypt(m, group.Mul(kFrom, gy), rand.Reader)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	rekeyed := RekeyFromTo(ct, kFrom, kTo)
	decrypted := elgamal.Decrypt(rekeyed, kTo.MulScalar(y))
	if !decrypted.Equal(m) {
		t.Errorf("decrypt(rekeyFromTo(E, kFrom, kTo), kTo*y) != m")
	}
}

func TestReshuffleFromTo(t *testing.T) {
	y := randomScalar(t)
	gy := group.MulBase(y)
	sFrom := randomScalar(t)
	sTo := randomScalar(t)
	m := randomElement(t)

	ct, err := elgamal.Encrypt(m, gy, rand.Reader)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	reshuffled := ReshuffleFromTo(ct, sFrom, sTo)
	decrypted := elgamal.Decrypt(reshuffled, y)
	want := group.Mul(sFrom.Invert().MulScalar(sTo), m)
	if !decrypted.Equal(want) {
		t.Errorf("decrypt(reshuffleFromTo(E, sFrom, sTo), y) != sFrom^-1*sTo*m")
	}
}

func TestRSKFromTo(t *testing.T) {
	y := randomScalar(t)
	gy := group.MulBase(y)
	sFrom := randomScalar(t)
	sTo := randomScalar(t)
	kFrom := randomScalar(t)
	kTo := randomScalar(t)
	m := randomElement(t)

	ct, err := elgamal.Encrypt(m, group.Mul(kFrom, gy), rand.Reader)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	rsked := RSKFromTo(ct, sFrom, sTo, kFrom, kTo)
	decrypted := elgamal.Decrypt(rsked, kTo.MulScalar(y))
	want := group.Mul(sFrom.Invert().MulScalar(sTo), m)
	if !decrypted.Equal(want) {
		t.Errorf("decrypt(rskFromTo(E, ...), kTo*y) != sFrom^-1*sTo*m")
	}
}

func TestRSKFromToIsReversible(t *testing.T) {
	// rsk_from_to(a,b,p,q) followed by rsk_from_to(b,a,q,p) returns the
	// ciphertext to decrypting to the same plaintext under the original key.
	y := randomScalar(t)
	gy := group.MulBase(y)
	a := randomScalar(t)
	b := randomScalar(t)
	p := randomScalar(t)
	q := randomScalar(t)
	m := randomElement(t)

	ct, err := elgamal.Encrypt(m, group.Mul(p, gy), rand.Reader)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	forward := RSKFromTo(ct, a, b, p, q)
	back := RSKFromTo(forward, b, a, q, p)

	decrypted := elgamal.Decrypt(back, p.MulScalar(y))
	if !decrypted.Equal(m) {
		t.Errorf("round-tripping rsk_from_to did not recover the original plaintext")
	}
}

func TestRRSK(t *testing.T) {
	y := randomScalar(t)
	gy := group.MulBase(y)
	r := randomScalar(t)
	s := randomScalar(t)
	k := randomScalar(t)
	m := randomElement(t)

	ct, err := elgamal.Encrypt(m, gy, rand.Reader)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	rrsked := RRSK(ct, gy, r, s, k)
	decrypted := elgamal.Decrypt(rrsked, k.MulScalar(y))
	if !decrypted.Equal(group.Mul(s, m)) {
		t.Errorf("decrypt(rrsk(E, r, s, k), k*y) != s*m")
	}
}
