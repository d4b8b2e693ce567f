package bridge

import "image/color"

// DisplayObject is a renderable scene-graph entry. The bridge borrows these
// references; it never constructs or frees them itself.
type DisplayObject interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	Rotation() float64
	SetRotation(r float64)
	// Size returns the object's bounding box.
	Size() (w, h float64)
	// Origin returns the normalized pivot offset from the object's center,
	// 0 meaning the pivot sits at the center.
	Origin() (x, y float64)
}

// Scene is the display engine's side of the pairing: a render tree with a
// per-frame notification and an engine-owned destruction path.
type Scene interface {
	// OnFrame registers fn to run once per frame and returns a cancel func
	// that removes the registration.
	OnFrame(fn func()) (cancel func())
	// NewDebugSurface allocates a persistent drawing layer in the render tree.
	NewDebugSurface() DebugSurface
	// Destroy removes obj from the render tree through the engine's own path.
	Destroy(obj DisplayObject)
}

// DebugSurface is a persistent line-drawing layer for debug collision geometry.
type DebugSurface interface {
	Clear()
	Line(x1, y1, x2, y2 float64, c color.Color)
}
