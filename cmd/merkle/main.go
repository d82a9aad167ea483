package main

import (
	"os"

	"github.com/mgr-inz-rafal/merkle-tree/cmd/merkle/commands"
)

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
