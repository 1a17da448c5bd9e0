package flow

// Item is the child box abstraction the engine works against. The host
// tree owns the items and their order; the engine only reads measured
// sizes and writes assigned offsets, holding no reference to an Item
// beyond the current pass.
type Item interface {
	// Layout sizes the item against cs and commits the result as its
	// actual layout.
	Layout(cs Constraints) Size

	// Measure reports the size Layout would produce under cs without
	// committing it.
	Measure(cs Constraints) Size

	// MinIntrinsicWidth returns the smallest width at which the item's
	// content still renders correctly given the height. The height may
	// be Inf.
	MinIntrinsicWidth(height float64) float64

	// MaxIntrinsicWidth returns the width beyond which growing no
	// longer changes the item's preferred rendering given the height.
	MaxIntrinsicWidth(height float64) float64

	// MinIntrinsicHeight is the height analog of MinIntrinsicWidth.
	MinIntrinsicHeight(width float64) float64

	// MaxIntrinsicHeight is the height analog of MaxIntrinsicWidth.
	MaxIntrinsicHeight(width float64) float64

	// SetOffset stores the item's position relative to the container
	// origin. The engine writes it once per arrangement pass.
	SetOffset(Point)

	// Offset returns the last stored position.
	Offset() Point

	// Size returns the size committed by the last Layout, or the zero
	// Size before any. The engine never calls it; hosts read it back
	// when painting.
	Size() Size
}
