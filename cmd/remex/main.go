package main

import (
	"os"

	"github.com/remexlang/remex/cmd/remex/command"
)

func main() {
	if err := command.Root.Execute(); err != nil {
		os.Exit(1)
	}
}
