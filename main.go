package main

import (
	"os"

	"github.com/abhisek/foundry/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
