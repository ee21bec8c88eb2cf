package irc

import "testing"

func TestNewAtomUnknownSymbol(t *testing.T) {
	if _, err := NewAtom("Xx", 0); err == nil {
		t.Error("expected an error for an unknown element symbol")
	}
}

func TestAtomRadii(t *testing.T) {
	a, err := NewAtom("O", 0)
	if err != nil {
		t.Fatalf("NewAtom: %v", err)
	}
	if a.CovalentRadius() <= 0 {
		t.Errorf("expected a positive covalent radius, got %v", a.CovalentRadius())
	}
	if a.VdwRadius() <= a.CovalentRadius() {
		t.Errorf("expected van der Waals radius > covalent radius")
	}
	if !a.HydrogenBondCapable() {
		t.Error("expected oxygen to be hydrogen-bond capable")
	}
}

func TestAtomIsHydrogen(t *testing.T) {
	h, _ := NewAtom("H", 0)
	o, _ := NewAtom("O", 1)
	if !h.IsHydrogen() {
		t.Error("expected H.IsHydrogen() to be true")
	}
	if o.IsHydrogen() {
		t.Error("expected O.IsHydrogen() to be false")
	}
}
