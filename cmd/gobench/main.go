package main

import (
	"os"

	"github.com/lukasrand/gobench/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
