package main

import (
	"os"

	"github.com/openathletics/flextime/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
