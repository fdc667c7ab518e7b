package main

import (
	"os"

	"github.com/gokatarajesh/fact-frenzy/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
