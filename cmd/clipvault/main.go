package main

import (
	"fmt"
	"os"

	"github.com/Yuzc-001/clipvault/internal/cli"
)

// version is overridden at build time via -ldflags.
var version = "0.2.0"

func main() {
	if err := cli.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
