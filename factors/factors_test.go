package factors

import "testing"

func TestMakeFactorDeterministic(t *testing.T) {
	a := MakeFactor([]byte("pseudonym"), []byte("secret"), []byte("context"))
	b := MakeFactor([]byte("pseudonym"), []byte("secret"), []byte("context"))
	if !a.Equal(b) {
		t.Errorf("MakeFactor is not a pure function of its arguments")
	}
}

func TestDomainSeparation(t *testing.T) {
	p := MakePseudonymizationFactor([]byte("secret"), []byte("context"))
	d := MakeRekeyFactor([]byte("secret"), []byte("context"))
	if p.Equal(d) {
		t.Errorf("pseudonymization and rekey factors collided for the same secret/context")
	}
}

func TestMakeDecryptionFactorIsRekeyFactorAlias(t *testing.T) {
	a := MakeRekeyFactor([]byte("s"), []byte("c"))
	b := MakeDecryptionFactor([]byte("s"), []byte("c"))
	if !a.Equal(b) {
		t.Errorf("MakeDecryptionFactor diverged from MakeRekeyFactor")
	}
}

func TestDifferentContextsDifferentFactors(t *testing.T) {
	a := MakePseudonymizationFactor([]byte("secret"), []byte("context-a"))
	b := MakePseudonymizationFactor([]byte("secret"), []byte("context-b"))
	if a.Equal(b) {
		t.Errorf("distinct contexts produced the same factor")
	}
}

func TestFastFactorDeterministic(t *testing.T) {
	a := DeriveFastFactor([]byte("pseudonym"), []byte("secret"), []byte("context"))
	b := DeriveFastFactor([]byte("pseudonym"), []byte("secret"), []byte("context"))
	if !a.Equal(b) {
		t.Errorf("DeriveFastFactor is not a pure function of its arguments")
	}
}

func TestFastFactorDivergesFromStandard(t *testing.T) {
	a := MakeFactor([]byte("pseudonym"), []byte("secret"), []byte("context"))
	b := DeriveFastFactor([]byte("pseudonym"), []byte("secret"), []byte("context"))
	if a.Equal(b) {
		t.Errorf("the benchmarking hash must not coincide with the mandated SHA-512 construction")
	}
}
