// Command forceviz preprocesses node/edge graphs and computes stable
// force-directed layouts from the command line.
package main

import "github.com/katalvlaran/forceviz/internal/cli"

func main() {
	cli.Execute()
}
