package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/forceviz/graphprep"
	"github.com/katalvlaran/forceviz/internal/ui"
)

func statsCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats <graph.json>",
		Short: "Show degree statistics for a graph document",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			raw, err := graphprep.DecodeGraph(in)
			if err != nil {
				return err
			}
			if len(raw.Nodes) == 0 {
				fmt.Println("  Empty graph: no nodes.")
				return nil
			}

			// Keep the whole graph: stats are about the raw input, so the
			// working-set cap is lifted to the full node count.
			bopts := graphprep.DefaultBuildOptions()
			bopts.MaxNodes = len(raw.Nodes)
			g, err := graphprep.Build(raw.Nodes, raw.Links, bopts)
			if err != nil {
				return err
			}

			ui.Banner("degree statistics")

			nodes := append([]*graphprep.Node(nil), g.Nodes()...)
			sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Degree > nodes[j].Degree })

			var total int
			for _, n := range nodes {
				total += n.Degree
			}
			fmt.Printf("  Nodes:       %d\n", g.NodeCount())
			fmt.Printf("  Links:       %d\n", g.LinkCount())
			fmt.Printf("  Max degree:  %d\n", nodes[0].Degree)
			fmt.Printf("  Mean degree: %.2f\n\n", float64(total)/float64(g.NodeCount()))

			if top > len(nodes) {
				top = len(nodes)
			}
			rows := make([][]string, 0, top)
			for _, n := range nodes[:top] {
				rows = append(rows, []string{
					n.ID,
					fmt.Sprintf("%d", n.Degree),
					fmt.Sprintf("%d", n.NeighborCount()),
					fmt.Sprintf("%.1f", n.Radius),
				})
			}
			ui.Table([]string{"Node", "Degree", "Neighbors", "Radius"}, rows)

			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().IntVarP(&top, "top", "n", 10, "How many top-degree nodes to list")

	return cmd
}
