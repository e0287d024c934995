// Package main is the entry point for the stepgraph CLI.
package main

import (
	"github.com/katalvlaran/stepgraph/internal/cmd"
)

func main() {
	cmd.Execute()
}
