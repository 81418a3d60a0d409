package main

import (
	"os"

	"github.com/kingler-db/kingler-go/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
