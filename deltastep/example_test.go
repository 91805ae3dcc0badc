package deltastep_test

import (
	"fmt"

	"github.com/katalvlaran/deltastep/csr"
	"github.com/katalvlaran/deltastep/deltastep"
)

// ExampleDeltaStepping runs the sequential engine on a small directed graph.
//
//	0 ──1──► 1 ──2──► 2 ──1──► 3
//	 └─────────4───────┘
func ExampleDeltaStepping() {
	a := csr.NewAdjacencyList(4)
	_ = a.AddEdge(0, 1, 1)
	_ = a.AddEdge(0, 2, 4)
	_ = a.AddEdge(1, 2, 2)
	_ = a.AddEdge(2, 3, 1)

	dist, err := deltastep.DeltaStepping(a.ToCSR(), 0, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: [0 1 3 4]
}

// ExampleParallelDeltaStepping shows that unreachable vertices stay at +Inf
// and that the worker count does not change the answer.
func ExampleParallelDeltaStepping() {
	a := csr.NewAdjacencyList(4)
	_ = a.AddUndirectedEdge(0, 1, 2.5)
	_ = a.AddUndirectedEdge(1, 2, 0.5)

	g := a.ToCSR()
	dist, _ := deltastep.ParallelDeltaStepping(g, 0, deltastep.SuggestDelta(g), 4)
	fmt.Println(dist)
	// Output: [0 2.5 3 +Inf]
}

// ExampleRun collects statistics alongside the distances.
func ExampleRun() {
	a := csr.NewAdjacencyList(3)
	_ = a.AddEdge(0, 1, 0.5)
	_ = a.AddEdge(1, 2, 3)

	res, _ := deltastep.Run(a.ToCSR(), 0, 1)
	fmt.Printf("dist=%v light=%d heavy=%d reached=%d\n",
		res.Dist, res.Stats.LightRelaxations, res.Stats.HeavyRelaxations, res.Stats.Reached)
	// Output: dist=[0 0.5 3.5] light=1 heavy=1 reached=3
}
