package irc

import (
	"testing"

	v3 "github.com/rmera/goirc/v3"
)

func TestNewMoleculeShapeMismatch(t *testing.T) {
	atoms := []*Atom{{Symbol: "H", Id: 0}, {Symbol: "H", Id: 1}}
	geom := v3.ZeroVecs(1)
	if _, err := NewMolecule(atoms, geom); err == nil {
		t.Error("expected an error when atom count and geometry row count disagree")
	}
}

func TestMoleculeCopyIsIndependent(t *testing.T) {
	mol := mustMol(t, []string{"H", "H"}, []float64{0, 0, 0, 0, 0, 0.74})
	cp := mol.Copy()
	cp.Geom.Set(0, 0, 99)
	if mol.Geom.At(0, 0) == 99 {
		t.Error("Copy should not alias the original geometry")
	}
}

func TestToBohr(t *testing.T) {
	geom, _ := v3.NewVecs([]float64{1, 0, 0})
	ToBohr(geom)
	want := A2Bohr
	if geom.At(0, 0) != want {
		t.Errorf("ToBohr: got %v, want %v", geom.At(0, 0), want)
	}
}
