package group

import (
	"crypto/rand"
	"testing"
)

func TestLizardRoundTrip(t *testing.T) {
	var payload [16]byte
	if _, err := rand.Read(payload[:]); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}

	el := DecodeLizard(payload)
	recovered, ok := el.EncodeLizard()
	if !ok {
		t.Fatalf("EncodeLizard failed on an element produced by DecodeLizard")
	}
	if recovered != payload {
		t.Errorf("lizard round trip changed the payload: got %x, want %x", recovered, payload)
	}
}

func TestLizardEncodeFailsOutsideInjectableSubset(t *testing.T) {
	el, err := RandomElement(rand.Reader)
	if err != nil {
		t.Fatalf("RandomElement: %v", err)
	}
	if _, ok := el.EncodeLizard(); ok {
		t.Errorf("EncodeLizard unexpectedly succeeded on a uniformly random element")
	}
}

func TestLizardDistinctPayloadsDistinctElements(t *testing.T) {
	var p1, p2 [16]byte
	p1[0] = 1
	p2[0] = 2
	e1 := DecodeLizard(p1)
	e2 := DecodeLizard(p2)
	if e1.Equal(e2) {
		t.Errorf("distinct payloads decoded to the same element")
	}
}
