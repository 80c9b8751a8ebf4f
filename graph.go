package seamcarver

import "fmt"

// Orientation selects the direction of a seam.
type Orientation int

const (
	// Vertical seams run from the top row to the bottom row, one pixel per row.
	Vertical Orientation = iota
	// Horizontal seams run from the left column to the right column, one pixel per column.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// edge is a weighted directed edge of the seam graph.
type edge struct {
	to     int
	weight float64
}

// seamGraph is the directed acyclic graph of all the seams of one orientation.
//
// Node 0 is a synthetic source and the last node a synthetic sink. Every other
// node maps to a pixel: node 1 + i*span + p is position p of line i, where a
// line is a row for vertical seams and a column for horizontal seams. Since
// edges only lead from line i to line i+1, increasing node ids are a
// topological order.
type seamGraph struct {
	lines int
	span  int
	adj   [][]edge
}

func (g *seamGraph) order() int { return len(g.adj) }

func (g *seamGraph) source() int { return 0 }

func (g *seamGraph) sink() int { return len(g.adj) - 1 }

// node returns the id of the node at position p of line i.
func (g *seamGraph) node(i, p int) int {
	return 1 + i*g.span + p
}

// position decodes the pixel position of a non-synthetic node.
func (g *seamGraph) position(v int) int {
	return (v - 1) % g.span
}

func (g *seamGraph) addEdge(from, to int, weight float64) {
	g.adj[from] = append(g.adj[from], edge{to: to, weight: weight})
}

// buildSeamGraph builds the seam graph of the given orientation from the
// current energy field.
//
// The source is connected to every node of the first line and every node of
// the last line to the sink. Every other node is connected to the node
// directly below it (or to its right for horizontal seams) and to its two
// diagonal neighbours, clipped at the image boundary. An edge is weighted by
// the energy of its destination pixel; edges into the sink weigh nothing.
func buildSeamGraph(ef *energyField, o Orientation) *seamGraph {
	lines, span := ef.layout(o)
	g := &seamGraph{
		lines: lines,
		span:  span,
		adj:   make([][]edge, lines*span+2),
	}
	for v := range g.adj {
		g.adj[v] = make([]edge, 0, 3)
	}

	for p := 0; p < span; p++ {
		g.addEdge(g.source(), g.node(0, p), ef.lineEnergy(o, 0, p))
	}

	for i := 0; i < lines-1; i++ {
		for p := 0; p < span; p++ {
			from := g.node(i, p)
			for q := p - 1; q <= p+1; q++ {
				if q < 0 || q >= span {
					continue
				}
				g.addEdge(from, g.node(i+1, q), ef.lineEnergy(o, i+1, q))
			}
		}
	}

	for p := 0; p < span; p++ {
		g.addEdge(g.node(lines-1, p), g.sink(), 0)
	}
	return g
}
