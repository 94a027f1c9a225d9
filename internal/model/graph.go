package model

import (
	"slices"
	"sort"
)

// Graph is a directed link graph over a closed corpus of pages.
// Each page is identified by an opaque string (typically a filename),
// and maps to the set of pages it links to.
//
// Invariant: after PruneExternal, every link target is itself a page in
// the graph. A page whose outbound set is empty is a "dangling" page.
//
// Design decision: We wrap the underlying map rather than exporting a
// map type because:
//  1. Self-link exclusion is enforced in one place (AddLink)
//  2. Pages() can guarantee a stable sorted order for deterministic output
//  3. The intra-corpus invariant has a single owner (PruneExternal)
type Graph struct {
	// links maps a page to its set of outbound link targets.
	links map[string]map[string]struct{}
}

// NewGraph creates an empty link graph.
func NewGraph() *Graph {
	return &Graph{links: make(map[string]map[string]struct{})}
}

// AddPage registers a page with no outbound links.
// Adding an existing page is a no-op and preserves its links.
func (g *Graph) AddPage(page string) {
	if _, ok := g.links[page]; !ok {
		g.links[page] = make(map[string]struct{})
	}
}

// AddLink records a directed link from one page to another.
// The source page is registered if it is not already present.
// Self-links are ignored because a page linking to itself carries no
// ranking information in this model.
//
// Note: the target is NOT registered as a page. Link targets that never
// appear as corpus pages are removed by PruneExternal.
func (g *Graph) AddLink(from, to string) {
	if from == to {
		return
	}
	g.AddPage(from)
	g.links[from][to] = struct{}{}
}

// PruneExternal removes every link whose target is not a page in the
// graph. This establishes the intra-corpus invariant: only links between
// corpus pages survive.
func (g *Graph) PruneExternal() {
	for page, targets := range g.links {
		for target := range targets {
			if _, ok := g.links[target]; !ok {
				delete(g.links[page], target)
			}
		}
	}
}

// Len returns the number of pages in the graph.
func (g *Graph) Len() int {
	return len(g.links)
}

// Pages returns all page identifiers in sorted order.
// Sorted order keeps iteration and output deterministic.
func (g *Graph) Pages() []string {
	pages := make([]string, 0, len(g.links))
	for page := range g.links {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	return pages
}

// Links returns the outbound link targets of a page in sorted order.
// It returns nil if the page is not in the graph.
func (g *Graph) Links(page string) []string {
	targets, ok := g.links[page]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(targets))
	for target := range targets {
		out = append(out, target)
	}
	slices.Sort(out)
	return out
}

// HasPage reports whether the page is part of the graph.
func (g *Graph) HasPage(page string) bool {
	_, ok := g.links[page]
	return ok
}

// HasLink reports whether a directed link exists from one page to another.
func (g *Graph) HasLink(from, to string) bool {
	_, ok := g.links[from][to]
	return ok
}

// OutDegree returns the number of outbound links of a page.
func (g *Graph) OutDegree(page string) int {
	return len(g.links[page])
}

// IsDangling reports whether the page has no outbound links.
// Dangling pages are treated as linking uniformly to every page,
// themselves included, by both estimators.
func (g *Graph) IsDangling(page string) bool {
	return len(g.links[page]) == 0
}
