/*
 * graph.go, part of goirc.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package irc

import (
	"math"

	v3 "github.com/rmera/goirc/v3"
	"go.uber.org/zap"
)

// Edge is a single inferred connection between two atoms, carrying the
// distance (in Bohr) that justified it and the phase that found it, so
// callers and tests can tell a covalent bond from a stitched-fragment
// contact or a hydrogen bond.
type Edge struct {
	I, J int
	Dist float64
	Kind BondKind
}

// BondKind classifies how an Edge was found.
type BondKind int

const (
	Covalent BondKind = iota
	FragmentLink
	HydrogenBond
)

// Graph is the molecule's bond graph: a plain adjacency list, the
// representation spec'd for this package instead of a graph library, so
// that the BFS below is the whole dependency.
type Graph struct {
	Adj   [][]int
	Edges []Edge
}

// NewGraph allocates an n-atom empty Graph.
func NewGraph(n int) *Graph {
	return &Graph{Adj: make([][]int, n)}
}

func (g *Graph) addEdge(i, j int, dist float64, kind BondKind) {
	for _, k := range g.Adj[i] {
		if k == j {
			return // already connected, e.g. covalent phase found it first
		}
	}
	g.Adj[i] = append(g.Adj[i], j)
	g.Adj[j] = append(g.Adj[j], i)
	g.Edges = append(g.Edges, Edge{I: i, J: j, Dist: dist, Kind: kind})
}

// Connected reports whether i and j are directly bonded.
func (g *Graph) Connected(i, j int) bool {
	for _, k := range g.Adj[i] {
		if k == j {
			return true
		}
	}
	return false
}

// components returns, for each atom, the index of its connected
// component, plus the total component count.
func (g *Graph) components() ([]int, int) {
	n := len(g.Adj)
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	nc := 0
	for start := 0; start < n; start++ {
		if comp[start] != -1 {
			continue
		}
		queue := []int{start}
		comp[start] = nc
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range g.Adj[cur] {
				if comp[nb] == -1 {
					comp[nb] = nc
					queue = append(queue, nb)
				}
			}
		}
		nc++
	}
	return comp, nc
}

// GraphDistances returns the all-pairs shortest-path (in number of
// bonds) matrix for g, computed with one BFS per atom. Unreachable pairs
// (a disconnected graph) get -1.
func (g *Graph) GraphDistances() [][]int {
	n := len(g.Adj)
	dist := make([][]int, n)
	runPooled(n, func(s int) {
		d := make([]int, n)
		for i := range d {
			d[i] = -1
		}
		d[s] = 0
		queue := []int{s}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range g.Adj[cur] {
				if d[nb] == -1 {
					d[nb] = d[cur] + 1
					queue = append(queue, nb)
				}
			}
		}
		dist[s] = d
	})
	return dist
}

// ConnectivityResult bundles a molecule's inferred bond graph together
// with the full redundant coordinate set it implies, split out by kind
// for callers that want bonds, angles, dihedrals, linear angles and
// out-of-plane bends as separate lists rather than one flat slice.
type ConnectivityResult struct {
	Graph         *Graph
	GraphDistance [][]int
	Bonds         []Coordinate
	Angles        []Coordinate
	Dihedrals     []Coordinate
	LinearAngles  []Coordinate
	OOPBends      []Coordinate
}

// Connectivity is the library's single entry point from a Molecule to
// its full internal-coordinate description: it runs InferConnectivity,
// then EnumerateCoordinates, then splits the result by CoordKind.
func Connectivity(M *Molecule) (*ConnectivityResult, error) {
	g, err := InferConnectivity(M)
	if err != nil {
		return nil, err
	}
	coords := EnumerateCoordinates(g, M.Geom)

	r := &ConnectivityResult{Graph: g, GraphDistance: g.GraphDistances()}
	for _, c := range coords {
		switch c.Kind {
		case BondCoord:
			r.Bonds = append(r.Bonds, c)
		case AngleCoord:
			r.Angles = append(r.Angles, c)
		case DihedralCoord:
			r.Dihedrals = append(r.Dihedrals, c)
		case LinearAngleCoord:
			r.LinearAngles = append(r.LinearAngles, c)
		case OutOfPlaneBendCoord:
			r.OOPBends = append(r.OOPBends, c)
		}
	}
	return r, nil
}

// InferConnectivity builds the bond graph for M in three phases: a
// covalent-distance pass, a fragment-stitching pass that joins whatever
// the first pass left disconnected, and a geometric hydrogen-bond pass.
// It returns a DisconnectedGraph error if fragment-stitching still
// leaves more than one component.
func InferConnectivity(M *Molecule) (*Graph, error) {
	n := M.Len()
	g := NewGraph(n)
	geom := M.Geom

	dist := func(i, j int) float64 {
		d := v3.ZeroVecs(1)
		d.Sub(geom.VecView(j), geom.VecView(i))
		return d.Norm()
	}

	// Phase 1: covalent bonds by distance cutoff.
	for i := 0; i < n; i++ {
		ri, _ := CovalentRadius(M.Atoms[i].Symbol)
		for j := i + 1; j < n; j++ {
			rj, _ := CovalentRadius(M.Atoms[j].Symbol)
			cutoff := CovalentBondFactor * (ri + rj) * A2Bohr
			d := dist(i, j)
			if d < cutoff {
				g.addEdge(i, j, d, Covalent)
			}
		}
	}

	// Phase 2: fragment stitching. Computed once over the partition left
	// by phase 1: for every pair of components (I, J), find the closest
	// cross pair (k*, l*), add that edge, then add every other (k in I,
	// l in J) whose own distance is below min(FragmentStitchFactor*d*,
	// 2 angstrom), so a
	// fragment pair brought together by a single close contact doesn't
	// get an unrealistically sparse join.
	comp, nc := g.components()
	members := make([][]int, nc)
	for i := 0; i < n; i++ {
		members[comp[i]] = append(members[comp[i]], i)
	}
	for ci := 0; ci < nc; ci++ {
		for cj := ci + 1; cj < nc; cj++ {
			bestI, bestJ, bestD := -1, -1, math.MaxFloat64
			for _, i := range members[ci] {
				for _, j := range members[cj] {
					d := dist(i, j)
					if d < bestD {
						bestD, bestI, bestJ = d, i, j
					}
				}
			}
			if bestI == -1 {
				continue // one of the fragments is empty, shouldn't happen
			}
			log.Debug("stitching disconnected fragments",
				zap.Int("atom_i", bestI), zap.Int("atom_j", bestJ), zap.Float64("dist_bohr", bestD))
			g.addEdge(bestI, bestJ, bestD, FragmentLink)
			cutoff := math.Min(FragmentStitchFactor*bestD, 2.0*A2Bohr)
			for _, i := range members[ci] {
				for _, j := range members[cj] {
					if i == bestI && j == bestJ {
						continue
					}
					d := dist(i, j)
					if d < cutoff {
						g.addEdge(i, j, d, FragmentLink)
					}
				}
			}
		}
	}

	if _, nc := g.components(); nc > 1 {
		return nil, Errorf(DisconnectedGraph, "connectivity inference left %d fragments unconnected", nc)
	}

	// Phase 3: hydrogen bonds. A candidate is H bonded to a donor heavy
	// atom D, within range of an acceptor heavy atom A it is not already
	// bonded to, with the D-H...A angle above the minimum.
	for h := 0; h < n; h++ {
		if !M.Atoms[h].IsHydrogen() {
			continue
		}
		var donor int = -1
		for _, nb := range g.Adj[h] {
			if M.Atoms[nb].HydrogenBondCapable() {
				donor = nb
				break
			}
		}
		if donor == -1 {
			continue
		}
		for a := 0; a < n; a++ {
			if a == h || a == donor || !M.Atoms[a].HydrogenBondCapable() {
				continue
			}
			covH, _ := CovalentRadius(M.Atoms[h].Symbol)
			covA, _ := CovalentRadius(M.Atoms[a].Symbol)
			if dist(h, a) <= (covH+covA)*A2Bohr {
				continue // already covalently bonded, per the literal per-pair distance formula
			}
			rh, _ := VdwRadius(M.Atoms[h].Symbol)
			ra, _ := VdwRadius(M.Atoms[a].Symbol)
			cutoff := HydrogenBondFactor * (rh + ra) * A2Bohr
			d := dist(h, a)
			if d >= cutoff {
				continue
			}
			vDH := v3.ZeroVecs(1)
			vDH.Sub(geom.VecView(h), geom.VecView(donor))
			vHA := v3.ZeroVecs(1)
			vHA.Sub(geom.VecView(a), geom.VecView(h))
			cosang := vDH.Dot(vHA) / (vDH.Norm() * vHA.Norm())
			if cosang < -1 {
				cosang = -1
			}
			if cosang > 1 {
				cosang = 1
			}
			angle := math.Acos(-cosang) // angle at H between H->D and H->A
			if angle > HydrogenBondMinAngle {
				g.addEdge(h, a, d, HydrogenBond)
			}
		}
	}

	return g, nil
}
