// Package cli wires the forceviz command tree: convert, layout, stats.
//
// Configuration precedence follows the usual viper merge: command-line
// flags override FORCEVIZ_* environment variables, which override the
// optional forceviz.yaml config file in the working directory or $HOME.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/forceviz/internal/ui"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "forceviz",
	Short:   "forceviz — force-directed graph layout from the command line",
	Long:    ui.Brand.Sprint("forceviz") + " — preprocess large graphs and compute stable 2-D layouts\n" + ui.Subtle.Sprint("Convert edge lists, run the force simulation to convergence, export positions"),
	Version: version,
}

func init() {
	rootCmd.SetVersionTemplate("forceviz {{ .Version }}\n")

	viper.SetConfigName("forceviz")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("forceviz")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	// A missing config file is fine; only flags and env apply then.
	_ = viper.ReadInConfig()

	rootCmd.AddCommand(
		convertCmd(),
		layoutCmd(),
		statsCmd(),
	)
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
