// Command linefit fits a least-squares line to (x, y) samples, prints the
// coefficients and renders a scatter plot with the fitted line.
//
// With no flags it fits the built-in nine-sample demo set and writes
// ./images/plots/scatter_plot.png.
package main

import (
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr, defaultRenderer)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
