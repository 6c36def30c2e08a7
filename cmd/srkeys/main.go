package main

import (
	"os"

	"srkeys/cmd/srkeys/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
