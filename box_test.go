package axisflow

import "testing"

func TestBox_LayoutCommitsConstrainedSize(t *testing.T) {
	tests := map[string]struct {
		box  *Box
		cs   Constraints
		want Size
	}{
		"preferred size under loose constraints": {
			box:  NewBox(WithSize(100, 40)),
			cs:   Loose(500, 500),
			want: Size{Width: 100, Height: 40},
		},
		"clamped by the width bound": {
			box:  NewBox(WithSize(100, 40)),
			cs:   Loose(60, Inf),
			want: Size{Width: 60, Height: 40},
		},
		"raised to the constraint minimum": {
			box:  NewBox(WithSize(10, 10)),
			cs:   Constraints{Min: Size{Width: 50, Height: 20}, Max: Size{Width: Inf, Height: Inf}},
			want: Size{Width: 50, Height: 20},
		},
		"min size floors the preferred size": {
			box:  NewBox(WithSize(10, 10), WithMinSize(80, 30)),
			cs:   Unbounded(),
			want: Size{Width: 80, Height: 30},
		},
		"zero box collapses": {
			box:  NewBox(),
			cs:   Loose(500, 500),
			want: Size{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.box.Layout(tt.cs)
			if got != tt.want {
				t.Errorf("Layout = %+v, want %+v", got, tt.want)
			}
			if tt.box.Size() != tt.want {
				t.Errorf("Size after Layout = %+v, want %+v", tt.box.Size(), tt.want)
			}
		})
	}
}

func TestBox_MeasureDoesNotCommit(t *testing.T) {
	b := NewBox(WithSize(100, 40))

	got := b.Measure(Loose(60, Inf))
	if got != (Size{Width: 60, Height: 40}) {
		t.Errorf("Measure = %+v, want {60 40}", got)
	}
	if b.Size() != (Size{}) {
		t.Errorf("Size after Measure = %+v, want zero", b.Size())
	}
}

func TestBox_Intrinsics(t *testing.T) {
	b := NewBox(WithSize(100, 40), WithMinSize(30, 8))

	if got := b.MinIntrinsicWidth(Inf); got != 30 {
		t.Errorf("MinIntrinsicWidth = %v, want 30", got)
	}
	if got := b.MaxIntrinsicWidth(Inf); got != 100 {
		t.Errorf("MaxIntrinsicWidth = %v, want 100", got)
	}
	if got := b.MinIntrinsicHeight(Inf); got != 8 {
		t.Errorf("MinIntrinsicHeight = %v, want 8", got)
	}
	if got := b.MaxIntrinsicHeight(Inf); got != 40 {
		t.Errorf("MaxIntrinsicHeight = %v, want 40", got)
	}

	// Without a configured minimum the preferred extent is also the floor.
	plain := NewBox(WithSize(100, 40))
	if got := plain.MinIntrinsicWidth(Inf); got != 100 {
		t.Errorf("MinIntrinsicWidth without min = %v, want 100", got)
	}
}

func TestBox_StringIncludesLabel(t *testing.T) {
	b := NewBox(WithSize(100, 40), WithLabel("nav"))
	b.Layout(Unbounded())
	b.SetOffset(Point{X: 10, Y: 5})

	want := "box[nav] 100x40 @(10,5)"
	if got := b.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
