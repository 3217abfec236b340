package main

import (
	"os"

	"github.com/mordilloSan/glyphlog/internal/cli"
)

// Usage:
//
//	glyphlog demo
//	glyphlog log --level info --at warning "disk almost full"
//	GLYPHLOG_FILE=./app.log glyphlog static "starting up"
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
