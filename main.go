// Package main is the entry point for the genius CLI.
package main

import "github.com/codebase-genius/genius/cmd"

func main() {
	cmd.Execute()
}
