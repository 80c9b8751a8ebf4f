package seamcarver

import (
	"math"

	"github.com/esimov/seamcarver/utils"
)

// solveDynamic finds the minimum energy seam without materializing the seam
// graph. It is equivalent to solve(buildSeamGraph(ef, o)):
//
//   - traverse the lines from the second to the last one and compute the
//     cumulative minimum energy M for all the possible connected seams ending
//     at each entry (i, p);
//   - M(i, p) is the pixel energy summed with the lowest M of the three
//     neighbouring entries on the previous line;
//   - backtrack from the lowest entry of the last line.
func solveDynamic(ef *energyField, o Orientation) Seam {
	lines, span := ef.layout(o)
	cost := make([]float64, lines*span)

	for p := 0; p < span; p++ {
		cost[p] = ef.lineEnergy(o, 0, p)
	}
	for i := 1; i < lines; i++ {
		prev := cost[(i-1)*span : i*span]
		for p := 0; p < span; p++ {
			min := math.Inf(1)
			for q := utils.Max(p-1, 0); q <= utils.Min(p+1, span-1); q++ {
				min = math.Min(min, prev[q])
			}
			cost[i*span+p] = ef.lineEnergy(o, i, p) + min
		}
	}

	// Find the lowest cumulative energy on the last line.
	last := cost[(lines-1)*span:]
	px := 0
	for p := 1; p < span; p++ {
		if last[p] < last[px] {
			px = p
		}
	}

	seam := make(Seam, lines)
	seam[lines-1] = px

	// Walk up in the table and follow the lowest of the three parents,
	// preferring the leftmost one on equal cost.
	for i := lines - 2; i >= 0; i-- {
		row := cost[i*span : (i+1)*span]
		best := utils.Max(px-1, 0)
		for q := best + 1; q <= utils.Min(px+1, span-1); q++ {
			if row[q] < row[best] {
				best = q
			}
		}
		px = best
		seam[i] = px
	}
	normalizeEnds(seam)

	return seam
}
