package graphprep_test

import (
	"fmt"

	"github.com/katalvlaran/forceviz/graphprep"
)

// ExampleBuild preprocesses a small raw graph: degrees and neighbor sets
// come from the retained links, and the isolated node sits at the
// minimum radius.
func ExampleBuild() {
	nodes := []graphprep.RawNode{
		{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"},
	}
	links := []graphprep.RawLink{
		{Source: "1", Target: "2"},
		{Source: "1", Target: "3"},
		{Source: "1", Target: "4"},
		{Source: "2", Target: "3"},
	}

	g, err := graphprep.Build(nodes, links, graphprep.DefaultBuildOptions())
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	hub, _ := g.NodeByID("1")
	lone, _ := g.NodeByID("5")
	neighbors, _ := g.NeighborIDs("1")

	fmt.Println("nodes:", g.NodeCount())
	fmt.Println("links:", g.LinkCount())
	fmt.Println("degree(1):", hub.Degree)
	fmt.Println("neighbors(1):", neighbors)
	fmt.Println("radius(5):", lone.Radius)
	// Output:
	// nodes: 5
	// links: 4
	// degree(1): 3
	// neighbors(1): [2 3 4]
	// radius(5): 4
}
