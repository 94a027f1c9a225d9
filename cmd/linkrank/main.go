// Package main provides the entry point for the LinkRank CLI.
//
// LinkRank estimates the relative importance (PageRank) of pages in a
// closed corpus of interlinked HTML documents, using both a random-surfer
// simulation and deterministic fixed-point iteration.
//
// Usage:
//
//	linkrank rank <corpus-directory>
//
// See --help for all available options.
package main

// main is the entry point for LinkRank.
func main() {
	Execute()
}
