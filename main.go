package main

import (
	"os"

	"github.com/grooveapp/groove/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
