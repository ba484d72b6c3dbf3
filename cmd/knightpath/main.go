package main

import (
	"os"

	"github.com/katalvlaran/knightpath/cmd/knightpath/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
