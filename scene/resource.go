// Package scene turns a layout's per-component state into a renderer-agnostic
// two-layer entity list. It owns no pixels itself: all drawing primitives
// (paths, images) are opaque handles produced by a host-supplied
// ResourceAllocator, so any backend (GPU, software, SVG) can implement
// ResourceAllocator and consume a Scene.
package scene

// Handle is a reference-counted opaque resource id: a Path or an Image.
// Equality is by ID, not by value, so the scene builder can dedupe
// identical resources across frames the way it dedupes icons in the
// layout's ImageCache. The generic parameter only distinguishes Path
// handles from Image handles at compile time; it carries no data.
type Handle[T any] struct {
	ID       uint64
	refcount *int
}

// NewHandle wraps id in a Handle with an initial refcount of 1.
func NewHandle[T any](id uint64) Handle[T] {
	rc := 1
	return Handle[T]{ID: id, refcount: &rc}
}

// Clone increments the refcount and returns a handle referring to the same
// resource.
func (h Handle[T]) Clone() Handle[T] {
	if h.refcount != nil {
		*h.refcount++
	}
	return h
}

// Release decrements the refcount, returning true if it reached zero (the
// caller should free the underlying resource).
func (h Handle[T]) Release() bool {
	if h.refcount == nil {
		return false
	}
	*h.refcount--
	return *h.refcount <= 0
}

// RefCount reports the current reference count.
func (h Handle[T]) RefCount() int {
	if h.refcount == nil {
		return 0
	}
	return *h.refcount
}

type pathTag struct{}
type imageTag struct{}

// Path is an opaque, reference-counted path resource handle.
type Path = Handle[pathTag]

// Image is an opaque, reference-counted image resource handle.
type Image = Handle[imageTag]

// NewPath wraps id as a Path handle. Exported so a host's ResourceAllocator
// (living outside this package) can mint handles for the geometry it
// allocates internally, since pathTag/imageTag are deliberately unexported.
func NewPath(id uint64) Path { return NewHandle[pathTag](id) }

// NewImage wraps id as an Image handle, the Image counterpart of NewPath.
func NewImage(id uint64) Image { return NewHandle[imageTag](id) }

// PathBuilder accumulates path segments; Finish hands the built path to
// the allocator backing it. Coordinates are in the scene's design units.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CurveTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
	Finish() Path
}

// ResourceAllocator is the host-supplied backend the scene builder draws
// resources from. Implementations live outside this module (GPU rasterizer,
// software rasterizer, SVG emitter); only the interface is specified here.
type ResourceAllocator interface {
	PathBuilder() PathBuilder
	CreateImage(width, height int, rgba8 []byte) Image
}

// bezierCircleK is the Spencer-Mortensen constant: the control-point
// distance, as a fraction of the radius, that makes a cubic Bézier best
// approximate a quarter circle.
const bezierCircleK = 0.551915

// BuildCircle is the default circle implementation every ResourceAllocator
// gets for free: four cubic Béziers swept around (x, y) at radius r.
func BuildCircle(alloc ResourceAllocator, x, y, r float64) Path {
	b := alloc.PathBuilder()
	k := r * bezierCircleK

	b.MoveTo(x+r, y)
	b.CurveTo(x+r, y+k, x+k, y+r, x, y+r)
	b.CurveTo(x-k, y+r, x-r, y+k, x-r, y)
	b.CurveTo(x-r, y-k, x-k, y-r, x, y-r)
	b.CurveTo(x+k, y-r, x+r, y-k, x+r, y)
	b.Close()

	return b.Finish()
}
