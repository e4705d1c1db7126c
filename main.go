// Package main is the entry point for the runwrapped CLI tool, which turns a
// Netrunner play-history export into "year in review" statistics.
package main

import "github.com/arasv/runwrapped/cmd"

func main() {
	cmd.Execute()
}
