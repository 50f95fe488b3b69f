package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/forceviz/forcesim"
	"github.com/katalvlaran/forceviz/graphprep"
	"github.com/katalvlaran/forceviz/internal/ui"
	"github.com/katalvlaran/forceviz/view"
)

// defaultMaxTicks caps a layout run well past the default cooling
// schedule (~300 ticks from alpha 1.0) so a run always terminates.
const defaultMaxTicks = 1000

func layoutCmd() *cobra.Command {
	var (
		out      string
		format   string
		maxTicks int
	)

	cmd := &cobra.Command{
		Use:   "layout <graph.json>",
		Short: "Compute a converged force-directed layout and export positions",
		Long: "Load a {\"nodes\":[...],\"links\":[...]} graph document, truncate it to\n" +
			"the working-set size, run the force simulation until it settles, and\n" +
			"write the node-id → position snapshot as JSON or YAML.",
		Args: cobra.ExactArgs(1),
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

			bopts := graphprep.DefaultBuildOptions()
			bopts.MaxNodes = viper.GetInt("max-nodes")
			bopts.Width = viper.GetFloat64("width")
			bopts.Height = viper.GetFloat64("height")
			bopts.Seed = viper.GetInt64("seed")

			g, err := graphprep.Build(raw.Nodes, raw.Links, bopts)
			if err != nil {
				return err
			}

			fopts := forcesim.DefaultOptions()
			fopts.ChargeStrength = viper.GetFloat64("charge")
			fopts.LinkDistance = viper.GetFloat64("link-distance")
			fopts.CenterX = bopts.Width / 2
			fopts.CenterY = bopts.Height / 2

			eng, err := forcesim.NewEngine(view.All(g), fopts)
			if err != nil {
				return err
			}
			ticks := eng.Run(maxTicks)
			snapshot := eng.Snapshot()

			w := cmd.OutOrStdout()
			var f *os.File
			if out != "" {
				if f, err = os.Create(out); err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			switch format {
			case "yaml":
				err = yaml.NewEncoder(w).Encode(snapshot)
			default:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				err = enc.Encode(snapshot)
			}
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()
			if eng.Settled() {
				ui.Good.Fprintf(stderr, "  Settled after %d ticks\n", ticks)
			} else {
				ui.Warn.Fprintf(stderr, "  Tick cap (%d) reached before settling\n", maxTicks)
			}
			fmt.Fprintf(stderr, "  Nodes: %d (of %d raw)  Links: %d  Alpha: %.5f\n",
				g.NodeCount(), len(raw.Nodes), g.LinkCount(), eng.State().Alpha)
			if out != "" {
				ui.Good.Fprintf(stderr, "  Wrote %s\n", out)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	flags.StringVarP(&format, "format", "f", "json", "Snapshot format: json or yaml")
	flags.IntVar(&maxTicks, "max-ticks", defaultMaxTicks, "Hard cap on simulation ticks")
	flags.Int("max-nodes", graphprep.DefaultMaxNodes, "Working-set size; extra nodes dropped by degree rank")
	flags.Float64("width", graphprep.DefaultWidth, "Layout width")
	flags.Float64("height", graphprep.DefaultHeight, "Layout height")
	flags.Int64("seed", 0, "Seed for initial positions (0 = fixed default stream)")
	flags.Float64("charge", forcesim.DefaultChargeStrength, "Many-body strength (negative repels)")
	flags.Float64("link-distance", forcesim.DefaultLinkDistance, "Target link separation")
	for _, name := range []string{"max-nodes", "width", "height", "seed", "charge", "link-distance"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	return cmd
}
