package main

import (
	"os"

	"github.com/docentlabs/docent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
