// Package converters provides two-way adapters between csr.Graph and
// gonum's graph packages.
//
//   - FromGonum compacts any gonum graph.Weighted into a csr.Graph, renumbering
//     node ids densely in ascending id order.
//   - ToGonum expands a csr.Graph into a simple.WeightedDirectedGraph so gonum
//     algorithms (path.DijkstraFrom, network.PageRank, ...) can run on it.
//
// Use converters to feed road networks or other graphs already held in gonum
// into the delta-stepping engines, or to cross-check results against gonum.
package converters
