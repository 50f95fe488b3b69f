package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/forceviz/graphprep"
	"github.com/katalvlaran/forceviz/internal/ui"
)

func convertCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "convert <edgelist>",
		Short: "Convert a SNAP-style edge list into a graph JSON document",
		Long: "Read a whitespace-separated \"source target\" edge list (e.g. a SNAP\n" +
			"dataset such as facebook_combined.txt) and write the equivalent\n" +
			"{\"nodes\":[...],\"links\":[...]} JSON document.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			raw, err := graphprep.DecodeEdgeList(in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			var f *os.File
			if out != "" {
				if f, err = os.Create(out); err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err = graphprep.EncodeGraph(w, raw); err != nil {
				return err
			}

			if out != "" {
				ui.Good.Fprintf(cmd.ErrOrStderr(), "  Wrote %s\n", out)
				fmt.Fprintf(cmd.ErrOrStderr(), "  Nodes: %d  Links: %d\n", len(raw.Nodes), len(raw.Links))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}
