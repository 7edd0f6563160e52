// Package main is the entry point for the frontcheck CLI.
package main

import "frontcheck.dev/pkg/frontcheck/cmd"

func main() {
	cmd.Execute()
}
