package irc

import (
	"sort"
	"testing"
)

func TestRunPooledSequential(t *testing.T) {
	Parallel = false
	var got []int
	runPooled(5, func(i int) { got = append(got, i) })
	if len(got) != 5 {
		t.Fatalf("expected 5 calls, got %d", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("sequential mode should preserve order: got %v", got)
		}
	}
}

func TestRunPooledConcurrent(t *testing.T) {
	Parallel = true
	defer func() { Parallel = false }()

	n := 64
	out := make([]int, n)
	runPooled(n, func(i int) { out[i] = i * i })

	seen := make([]int, n)
	copy(seen, out)
	sort.Ints(seen)
	for i := 0; i < n; i++ {
		if out[i] != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], i*i)
		}
	}
}

func TestWilsonBMatrixParallelMatchesSequential(t *testing.T) {
	mol := mustMol(t, []string{"O", "H", "H"}, []float64{
		0.000000, 0.000000, 0.117300,
		0.000000, 0.757200, -0.469200,
		0.000000, -0.757200, -0.469200,
	})
	g, err := InferConnectivity(mol)
	if err != nil {
		t.Fatalf("InferConnectivity: %v", err)
	}
	coords := EnumerateCoordinates(g, mol.Geom)

	Parallel = false
	seq := WilsonBMatrix(coords, mol.Geom)

	Parallel = true
	defer func() { Parallel = false }()
	par := WilsonBMatrix(coords, mol.Geom)

	r, c := seq.Dims()
	pr, pc := par.Dims()
	if r != pr || c != pc {
		t.Fatalf("shape mismatch: sequential %dx%d, parallel %dx%d", r, c, pr, pc)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if got, want := par.At(i, j), seq.At(i, j); got != want {
				t.Errorf("B[%d,%d]: parallel=%v sequential=%v", i, j, got, want)
			}
		}
	}
}
