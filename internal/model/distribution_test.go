package model

import (
	"math"
	"reflect"
	"testing"
)

// TestDistribution tests the Distribution helpers.
func TestDistribution(t *testing.T) {
	t.Parallel()

	t.Run("sum", func(t *testing.T) {
		t.Parallel()

		d := Distribution{"a.html": 0.25, "b.html": 0.5, "c.html": 0.25}
		if got := d.Sum(); math.Abs(got-1.0) > 1e-12 {
			t.Errorf("expected sum 1.0, got %v", got)
		}
		if got := (Distribution{}).Sum(); got != 0 {
			t.Errorf("expected empty sum 0, got %v", got)
		}
	})

	t.Run("pages are sorted", func(t *testing.T) {
		t.Parallel()

		d := Distribution{"c.html": 0.1, "a.html": 0.2, "b.html": 0.7}
		want := []string{"a.html", "b.html", "c.html"}
		if got := d.Pages(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("clone is independent", func(t *testing.T) {
		t.Parallel()

		d := Distribution{"a.html": 0.5, "b.html": 0.5}
		c := d.Clone()
		c["a.html"] = 0.9

		if d["a.html"] != 0.5 {
			t.Errorf("mutating clone changed original: %v", d["a.html"])
		}
	})
}
