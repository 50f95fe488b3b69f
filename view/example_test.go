package view_test

import (
	"fmt"

	"github.com/katalvlaran/forceviz/graphprep"
	"github.com/katalvlaran/forceviz/view"
)

// ExampleByDegree filters out the hub of a small graph and keeps only
// the low-degree periphery, dropping every link that touched the hub.
func ExampleByDegree() {
	nodes := []graphprep.RawNode{
		{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"},
	}
	links := []graphprep.RawLink{
		{Source: "1", Target: "2"},
		{Source: "1", Target: "3"},
		{Source: "1", Target: "4"},
		{Source: "2", Target: "3"},
	}
	g, _ := graphprep.Build(nodes, links, graphprep.DefaultBuildOptions())

	sub := view.ByDegree(g, 2)
	for _, n := range sub.Nodes {
		fmt.Println("visible:", n.ID)
	}
	fmt.Println("links:", sub.LinkCount())
	// Output:
	// visible: 2
	// visible: 3
	// visible: 4
	// visible: 5
	// links: 1
}
