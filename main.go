package main

import (
	"os"

	"ebs-image-builder/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		os.Exit(1)
	}
}
