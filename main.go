package main

import (
	"os"

	"github.com/sebrandon1/genpr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
