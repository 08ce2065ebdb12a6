package main

import (
	"os"

	"github.com/genricoloni/promocast/cmd/promocast/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
