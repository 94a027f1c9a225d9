package rank

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// TestSample tests the random-walk sampling estimator.
func TestSample(t *testing.T) {
	t.Parallel()

	t.Run("single sample puts all mass on one page", func(t *testing.T) {
		t.Parallel()

		g := buildGraph(t, map[string][]string{
			"a.html": {"b.html"},
			"b.html": {"c.html"},
			"c.html": {"a.html"},
		})

		dist, err := Sample(g, 0.85, 1, WithSeed(7))
		if err != nil {
			t.Fatalf("sample failed: %v", err)
		}

		if len(dist) != g.Len() {
			t.Fatalf("expected %d pages in result, got %d", g.Len(), len(dist))
		}
		var ones, zeros int
		for page, v := range dist {
			switch v {
			case 1.0:
				ones++
			case 0.0:
				zeros++
			default:
				t.Errorf("page %q got %v, want 0 or 1", page, v)
			}
		}
		if ones != 1 || zeros != g.Len()-1 {
			t.Errorf("expected exactly one visited page, got %d ones and %d zeros", ones, zeros)
		}
	})

	t.Run("every page appears in the estimate", func(t *testing.T) {
		t.Parallel()

		g := buildGraph(t, map[string][]string{
			"a.html": {"b.html"},
			"b.html": {"a.html"},
			"c.html": {},
			"d.html": {"a.html"},
		})

		dist, err := Sample(g, 0.85, 100, WithSeed(1))
		if err != nil {
			t.Fatalf("sample failed: %v", err)
		}
		for _, page := range g.Pages() {
			if _, ok := dist[page]; !ok {
				t.Errorf("page %q missing from sampling estimate", page)
			}
		}
		if sum := dist.Sum(); !scalar.EqualWithinAbs(sum, 1.0, 1e-9) {
			t.Errorf("estimate sums to %.12f, want 1.0", sum)
		}
	})

	t.Run("reproducible with fixed seed", func(t *testing.T) {
		t.Parallel()

		g := buildGraph(t, map[string][]string{
			"a.html": {"b.html", "c.html"},
			"b.html": {"c.html"},
			"c.html": {"a.html"},
		})

		first, err := Sample(g, 0.85, 1000, WithSeed(42))
		if err != nil {
			t.Fatalf("first sample failed: %v", err)
		}
		second, err := Sample(g, 0.85, 1000, WithSeed(42))
		if err != nil {
			t.Fatalf("second sample failed: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("same seed produced different estimates: %v vs %v", first, second)
		}
	})

	t.Run("converges toward the iterative estimate", func(t *testing.T) {
		t.Parallel()

		g := buildGraph(t, map[string][]string{
			"1.html": {"2.html"},
			"2.html": {"1.html", "3.html"},
			"3.html": {"2.html", "4.html"},
			"4.html": {"2.html"},
		})

		iterated, _, err := Iterate(g, 0.85, WithTolerance(1e-6))
		if err != nil {
			t.Fatalf("iterate failed: %v", err)
		}

		sampled, err := Sample(g, 0.85, 200000, WithSeed(1))
		if err != nil {
			t.Fatalf("sample failed: %v", err)
		}

		for _, page := range g.Pages() {
			if diff := math.Abs(sampled[page] - iterated[page]); diff > 0.02 {
				t.Errorf("page %q: sampled %.4f vs iterated %.4f (diff %.4f > 0.02)",
					page, sampled[page], iterated[page], diff)
			}
		}
	})

	t.Run("rejects non-positive sample count", func(t *testing.T) {
		t.Parallel()

		g := buildGraph(t, map[string][]string{"a.html": {}})
		for _, n := range []int{0, -1} {
			if _, err := Sample(g, 0.85, n); !errors.Is(err, ErrInvalidSampleCount) {
				t.Errorf("n=%d: expected ErrInvalidSampleCount, got %v", n, err)
			}
		}
	})

	t.Run("rejects empty graph and bad damping", func(t *testing.T) {
		t.Parallel()

		if _, err := Sample(nil, 0.85, 10); !errors.Is(err, ErrEmptyGraph) {
			t.Errorf("expected ErrEmptyGraph, got %v", err)
		}
		g := buildGraph(t, map[string][]string{"a.html": {}})
		if _, err := Sample(g, 0, 10); !errors.Is(err, ErrInvalidDamping) {
			t.Errorf("expected ErrInvalidDamping, got %v", err)
		}
	})
}
