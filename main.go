package main

import (
	"os"

	"github.com/mvoronov/mathmage/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
