package main

import (
	"os"

	"birchwood/cmd/birchwood/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
