// Package main is the entry point for the wordle-demo CLI.
package main

import (
	"os"

	"github.com/f3rmion/wordle-demo/cmd/wordle-demo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
