package main

import (
	"os"

	"pathfinders-assessment/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
