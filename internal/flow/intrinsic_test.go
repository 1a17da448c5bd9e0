package flow

import "testing"

func TestIntrinsics_EstimateFollowsBoundedness(t *testing.T) {
	type tc struct {
		opts  Options
		query func(e *Engine, items []Item) float64
		want  float64
	}

	// Three 100x40 children, spacing 10. As a row they need 320x40; as
	// a column 100x140.
	newChildren := func() []Item {
		return asItems(fixed(100, 40), fixed(100, 40), fixed(100, 40))
	}
	spaced := func(primary Axis) Options {
		o := DefaultOptions()
		o.Primary = primary
		o.Spacing = 10
		return o
	}

	tests := map[string]tc{
		"width query, unbounded height, sums the row": {
			opts: spaced(Horizontal),
			query: func(e *Engine, items []Item) float64 {
				return e.MinIntrinsicWidth(items, Inf)
			},
			want: 320,
		},
		"width query, bounded height, widest column child": {
			// A finite height with an unconstrained width is the shape
			// of a vertical pass, so the estimate stacks.
			opts: spaced(Horizontal),
			query: func(e *Engine, items []Item) float64 {
				return e.MinIntrinsicWidth(items, 50)
			},
			want: 100,
		},
		"height query, bounded width, tallest row child": {
			opts: spaced(Horizontal),
			query: func(e *Engine, items []Item) float64 {
				return e.MinIntrinsicHeight(items, 350)
			},
			want: 40,
		},
		"height query, unbounded width, tallest row child": {
			opts: spaced(Horizontal),
			query: func(e *Engine, items []Item) float64 {
				return e.MaxIntrinsicHeight(items, Inf)
			},
			want: 40,
		},
		"vertical primary sums the column when unbounded": {
			opts: spaced(Vertical),
			query: func(e *Engine, items []Item) float64 {
				return e.MaxIntrinsicHeight(items, Inf)
			},
			want: 140,
		},
		"vertical primary defers to a bounded width": {
			// Height queried and unbounded, width given and finite: the
			// estimate falls back to the row, so the tallest child wins.
			opts: spaced(Vertical),
			query: func(e *Engine, items []Item) float64 {
				return e.MinIntrinsicHeight(items, 350)
			},
			want: 40,
		},
		"prefer-primary never defers": {
			opts: func() Options {
				o := spaced(Horizontal)
				o.Strategy = StrategyPreferPrimary
				return o
			}(),
			query: func(e *Engine, items []Item) float64 {
				return e.MinIntrinsicWidth(items, 50)
			},
			want: 320,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := mustEngine(t, tt.opts)
			if got := tt.query(e, newChildren()); got != tt.want {
				t.Errorf("intrinsic = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntrinsics_ConsistentWithCommittedAxis(t *testing.T) {
	opts := DefaultOptions()
	opts.Spacing = 10
	e := mustEngine(t, opts)
	children := asItems(fixed(100, 40), fixed(100, 40), fixed(100, 40))

	// Commit a column by squeezing the width.
	res := e.Layout(Loose(150, 1000), children)
	if res.Axis != Vertical {
		t.Fatalf("axis = %v, want vertical", res.Axis)
	}

	// Every estimate now answers for the column, whatever the
	// boundedness of the query.
	if got := e.MaxIntrinsicHeight(children, 350); got != 140 {
		t.Errorf("MaxIntrinsicHeight = %v, want 140 (column sum)", got)
	}
	if got := e.MinIntrinsicHeight(children, Inf); got != 140 {
		t.Errorf("MinIntrinsicHeight = %v, want 140 (column sum)", got)
	}
	if got := e.MaxIntrinsicWidth(children, 50); got != 100 {
		t.Errorf("MaxIntrinsicWidth = %v, want 100 (widest child)", got)
	}
}

func TestIntrinsics_UsePerAxisSpacing(t *testing.T) {
	h := 25.0
	opts := DefaultOptions()
	opts.Spacing = 10
	opts.HorizontalSpacing = &h
	e := mustEngine(t, opts)
	children := asItems(fixed(100, 40), fixed(100, 40), fixed(100, 40))

	if got := e.MaxIntrinsicWidth(children, Inf); got != 350 {
		t.Errorf("MaxIntrinsicWidth = %v, want 350 (two gaps of 25)", got)
	}
}

func TestIntrinsics_DoNotCommit(t *testing.T) {
	e := mustEngine(t, DefaultOptions())
	children := asItems(fixed(100, 40))

	e.MinIntrinsicWidth(children, 50)
	e.MaxIntrinsicHeight(children, 350)

	if _, committed := e.Axis(); committed {
		t.Error("intrinsic queries committed an axis")
	}
}
