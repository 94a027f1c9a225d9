package model

import (
	"reflect"
	"testing"
)

// TestGraph tests link graph construction and the intra-corpus invariant.
func TestGraph(t *testing.T) {
	t.Parallel()

	t.Run("pages are returned in sorted order", func(t *testing.T) {
		t.Parallel()

		g := NewGraph()
		g.AddPage("c.html")
		g.AddPage("a.html")
		g.AddPage("b.html")

		want := []string{"a.html", "b.html", "c.html"}
		if got := g.Pages(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("self links are ignored", func(t *testing.T) {
		t.Parallel()

		g := NewGraph()
		g.AddLink("a.html", "a.html")
		g.AddLink("a.html", "b.html")
		g.AddPage("b.html")

		if g.HasLink("a.html", "a.html") {
			t.Error("expected self link to be dropped")
		}
		if !g.HasLink("a.html", "b.html") {
			t.Error("expected link a.html -> b.html")
		}
		if got := g.OutDegree("a.html"); got != 1 {
			t.Errorf("expected out-degree 1, got %d", got)
		}
	})

	t.Run("adding an existing page preserves its links", func(t *testing.T) {
		t.Parallel()

		g := NewGraph()
		g.AddLink("a.html", "b.html")
		g.AddPage("a.html")
		g.AddPage("b.html")

		if !g.HasLink("a.html", "b.html") {
			t.Error("expected link to survive AddPage on existing page")
		}
	})

	t.Run("prune removes links to pages outside the corpus", func(t *testing.T) {
		t.Parallel()

		g := NewGraph()
		g.AddLink("a.html", "b.html")
		g.AddLink("a.html", "https://example.com/external")
		g.AddPage("b.html")
		g.PruneExternal()

		if g.Len() != 2 {
			t.Fatalf("expected 2 pages, got %d", g.Len())
		}
		if got := g.Links("a.html"); !reflect.DeepEqual(got, []string{"b.html"}) {
			t.Errorf("expected only intra-corpus link, got %v", got)
		}
	})

	t.Run("dangling detection", func(t *testing.T) {
		t.Parallel()

		g := NewGraph()
		g.AddLink("a.html", "b.html")
		g.AddPage("b.html")

		if g.IsDangling("a.html") {
			t.Error("a.html has outbound links, should not be dangling")
		}
		if !g.IsDangling("b.html") {
			t.Error("b.html has no outbound links, should be dangling")
		}
	})

	t.Run("links of unknown page are nil", func(t *testing.T) {
		t.Parallel()

		g := NewGraph()
		if got := g.Links("missing.html"); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
		if g.HasPage("missing.html") {
			t.Error("expected HasPage to be false")
		}
	})
}
