package main

import (
	"os"

	"cardreveal/cmd/cardreveal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
