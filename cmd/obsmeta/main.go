package main

import (
	"os"

	"github.com/hashicorp-forge/obsmeta/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
