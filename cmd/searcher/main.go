// Package main is the entry point for the Amadeus flight searcher.
package main

import "github.com/ray66rus/amadeus-searcher/internal/cli"

func main() {
	cli.Execute()
}
