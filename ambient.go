package axisflow

// ambientDir is the package-wide text direction for containers that
// never pin an explicit one. Like every layout entry point it assumes
// a single goroutine.
var ambientDir = LTR

// AmbientDirection returns the package-wide default text direction.
func AmbientDirection() TextDirection {
	return ambientDir
}

// SetAmbientDirection changes the package-wide default text direction.
// Containers without an explicit direction pick it up on their next
// pass; no relayout is forced.
func SetAmbientDirection(d TextDirection) {
	ambientDir = d
}
