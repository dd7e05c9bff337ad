// Command graphgen synthesizes a scaled-up, statistically similar graph
// from a node/edge TSV corpus, driven by a key=value configuration file.
package main

import (
	"github.com/katalvlaran/graphgen/cmd/graphgen/cmd"
)

func main() {
	cmd.Execute()
}
