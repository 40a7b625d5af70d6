// plat-respond CLI - email response template tool
package main

import (
	"fmt"
	"os"

	"github.com/joeblew999/plat-respond/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
