package flow

import "testing"

// fakeItem is a minimal Item implementation for driving the engine in
// tests: a rigid box with a preferred size, clamped by whatever
// constraint it is given. Call counters separate committed layout from
// dry measurement.
type fakeItem struct {
	size     Size
	laidSize Size
	offset   Point
	laidOut  int
	measured int
}

// fixed creates a fakeItem with the given preferred size.
func fixed(w, h float64) *fakeItem {
	return &fakeItem{size: Size{Width: w, Height: h}}
}

func (f *fakeItem) Layout(cs Constraints) Size {
	f.laidOut++
	f.laidSize = cs.Constrain(f.size)
	return f.laidSize
}

func (f *fakeItem) Measure(cs Constraints) Size {
	f.measured++
	return cs.Constrain(f.size)
}

func (f *fakeItem) MinIntrinsicWidth(height float64) float64 { return f.size.Width }
func (f *fakeItem) MaxIntrinsicWidth(height float64) float64 { return f.size.Width }
func (f *fakeItem) MinIntrinsicHeight(width float64) float64 { return f.size.Height }
func (f *fakeItem) MaxIntrinsicHeight(width float64) float64 { return f.size.Height }
func (f *fakeItem) SetOffset(p Point)                        { f.offset = p }
func (f *fakeItem) Offset() Point                            { return f.offset }
func (f *fakeItem) Size() Size                               { return f.laidSize }

// areaItem preserves a fixed area: the shorter its cross cap, the
// longer it measures on the main axis. Its intrinsic answers stay at
// the natural size, so layout-based and intrinsic-based fit tests
// disagree about it.
type areaItem struct {
	fakeItem
	area float64
}

func withArea(naturalW, naturalH float64) *areaItem {
	return &areaItem{
		fakeItem: fakeItem{size: Size{Width: naturalW, Height: naturalH}},
		area:     naturalW * naturalH,
	}
}

func (a *areaItem) measureSize(cs Constraints) Size {
	h := a.size.Height
	if cs.Max.Height < h {
		h = cs.Max.Height
	}
	w := a.size.Width
	if h > 0 && h < a.size.Height {
		w = a.area / h
	}
	return cs.Constrain(Size{Width: w, Height: h})
}

func (a *areaItem) Layout(cs Constraints) Size {
	a.laidOut++
	a.laidSize = a.measureSize(cs)
	return a.laidSize
}

func (a *areaItem) Measure(cs Constraints) Size {
	a.measured++
	return a.measureSize(cs)
}

// rigidItem reports its preferred size no matter the constraint, the
// way a misbehaving child would. The engine must still detect the
// resulting cross overflow rather than trust the cap it handed out.
type rigidItem struct {
	fakeItem
}

func rigid(w, h float64) *rigidItem {
	return &rigidItem{fakeItem{size: Size{Width: w, Height: h}}}
}

func (r *rigidItem) Layout(cs Constraints) Size {
	r.laidOut++
	r.laidSize = r.size
	return r.laidSize
}

func (r *rigidItem) Measure(cs Constraints) Size {
	r.measured++
	return r.size
}

// asItems converts fakes to the engine's child slice.
func asItems(fakes ...*fakeItem) []Item {
	out := make([]Item, len(fakes))
	for i, f := range fakes {
		out[i] = f
	}
	return out
}

func TestFakeItem_ImplementsItem(t *testing.T) {
	var _ Item = (*fakeItem)(nil)
	var _ Item = (*areaItem)(nil)
	var _ Item = (*rigidItem)(nil)
}

func TestFakeItem_RespectsConstraints(t *testing.T) {
	f := fixed(100, 40)

	got := f.Layout(Loose(60, Inf))
	if got.Width != 60 || got.Height != 40 {
		t.Errorf("Layout under capped width = %+v, want {60 40}", got)
	}
	if f.laidOut != 1 || f.measured != 0 {
		t.Errorf("call counts = (%d, %d), want (1, 0)", f.laidOut, f.measured)
	}

	got = f.Measure(Unbounded())
	if got.Width != 100 || got.Height != 40 {
		t.Errorf("Measure unbounded = %+v, want {100 40}", got)
	}
	if f.measured != 1 {
		t.Errorf("measured = %d, want 1", f.measured)
	}
}

func TestAreaItem_TradesWidthForHeight(t *testing.T) {
	a := withArea(100, 100)

	got := a.Measure(Loose(Inf, 50))
	if got.Width != 200 || got.Height != 50 {
		t.Errorf("Measure with height cap 50 = %+v, want {200 50}", got)
	}
	if w := a.MaxIntrinsicWidth(50); w != 100 {
		t.Errorf("MaxIntrinsicWidth(50) = %v, want natural 100", w)
	}
}
