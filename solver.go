package seamcarver

import (
	"math"

	"github.com/esimov/seamcarver/utils"
)

// solve returns the minimum energy seam of the graph, or nil if the sink
// cannot be reached from the source.
//
// Nodes are visited in increasing id order, which is a topological order of
// the graph, and their out-edges are relaxed eagerly. On equal distances the
// first relaxed edge wins.
func solve(g *seamGraph) Seam {
	n := g.order()
	distTo := make([]float64, n)
	edgeTo := make([]int, n)
	for v := 0; v < n; v++ {
		distTo[v] = math.Inf(1)
		edgeTo[v] = -1
	}
	distTo[g.source()] = 0

	for v := 0; v < n; v++ {
		if math.IsInf(distTo[v], 1) {
			continue
		}
		for _, e := range g.adj[v] {
			if d := distTo[v] + e.weight; d < distTo[e.to] {
				distTo[e.to] = d
				edgeTo[e.to] = v
			}
		}
	}

	if edgeTo[g.sink()] < 0 {
		return nil
	}

	// Walk the predecessor links back from the sink, dropping both synthetic nodes.
	seam := make(Seam, g.lines)
	i := g.lines - 1
	for v := edgeTo[g.sink()]; v != g.source(); v = edgeTo[v] {
		if v < 0 || i < 0 {
			return nil
		}
		seam[i] = g.position(v)
		i--
	}
	if i != -1 {
		return nil
	}
	normalizeEnds(seam)

	return seam
}

// normalizeEnds pins the first and the last entry of a seam to one position
// before their inner neighbour, clamped at 0. Both ends lie on border pixels,
// which share the same energy, so the total seam energy does not change.
func normalizeEnds(seam Seam) {
	n := len(seam)
	if n < 3 {
		return
	}
	seam[0] = utils.Max(seam[1]-1, 0)
	seam[n-1] = utils.Max(seam[n-2]-1, 0)
}
