// Package main provides the entry point for the coursemap CLI tool.
package main

import (
	"github.com/coursemap/coursemap/cmd/coursemap/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
