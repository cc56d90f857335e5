package main

import (
	"os"

	"github.com/msto63/mdw-chronos/cmd/chronos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
