// Package main is the entry point for the sheetvault admin CLI binary.
package main

import (
	"os"

	cli "sheetvault/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
