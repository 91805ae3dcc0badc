package deltastep

import "github.com/katalvlaran/deltastep/csr"

// SuggestDelta returns max(1, avgEdgeWeight/avgOutDegree).
//
// The value is advisory: any Δ > 0 yields identical distances, only the
// amount of re-relaxation and available parallelism change. A nil graph or a
// graph without edges yields 1.
func SuggestDelta(g *csr.Graph) float32 {
	if g == nil || g.NumEdges() == 0 || g.NumNodes() == 0 {
		return 1
	}
	m := float64(g.NumEdges())
	avgWeight := g.TotalWeight() / m
	avgDegree := m / float64(g.NumNodes())

	return float32(max(1.0, avgWeight/avgDegree))
}
