package main

import (
	"os"

	"github.com/YasinAHA/calculator-mcp/pkg/cli"
)

// Version is set during build
var Version = "dev"

func main() {
	os.Exit(cli.Execute(Version, os.Args[1:], os.Stdout, os.Stderr))
}
