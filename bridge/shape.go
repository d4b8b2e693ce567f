package bridge

import (
	"github.com/jakecoffman/cp"
)

// ShapeKind names a collider shape resolved from a display object's bounding
// box. Kinds without a built-in constructor resolve to an unsupported variant;
// callers needing them pass a Custom spec instead.
type ShapeKind int

const (
	Box ShapeKind = iota
	Ball
	Capsule
	Triangle
	RoundedBox
	RoundedTriangle
	Mesh
	HalfSpace
	Segment
	ConvexPolygon
	RoundedConvexPolygon
)

func (k ShapeKind) String() string {
	switch k {
	case Box:
		return "box"
	case Ball:
		return "ball"
	case Capsule:
		return "capsule"
	case Triangle:
		return "triangle"
	case RoundedBox:
		return "rounded_box"
	case RoundedTriangle:
		return "rounded_triangle"
	case Mesh:
		return "mesh"
	case HalfSpace:
		return "half_space"
	case Segment:
		return "segment"
	case ConvexPolygon:
		return "convex_polygon"
	case RoundedConvexPolygon:
		return "rounded_convex_polygon"
	}
	return "unknown"
}

// cornerRadius is the fixed rounding applied to the rounded shape kinds.
const cornerRadius = 4.0

// ShapeSpec resolves a collider for a body given the display bounding box.
// ShapeKind values resolve through the built-in constructor table; Custom
// wraps a caller-built collider.
type ShapeSpec interface {
	resolve(w, h float64) shapeDef
}

// shapeDef is the resolved tagged variant: either unsupported, or a pair of
// pure constructors for the collider and its moment of inertia.
type shapeDef struct {
	unsupported bool
	build       func(body *cp.Body) *cp.Shape
	moment      func(mass float64) float64
}

// Custom is the pre-built collider descriptor path. Build attaches the shape
// to the body; Moment may be zero, in which case a box moment over the display
// bounds is used.
type Custom struct {
	Build  func(body *cp.Body) *cp.Shape
	Moment float64
}

func (c Custom) resolve(w, h float64) shapeDef {
	if c.Build == nil {
		return shapeDef{unsupported: true}
	}
	moment := c.Moment
	return shapeDef{
		build: c.Build,
		moment: func(mass float64) float64 {
			if moment > 0 {
				return moment
			}
			return cp.MomentForBox(mass, w, h)
		},
	}
}

func (k ShapeKind) resolve(w, h float64) shapeDef {
	builder, ok := shapeBuilders[k]
	if !ok {
		return shapeDef{unsupported: true}
	}
	return builder(w, h)
}

// shapeBuilders maps each supported kind to a pure (bounds) -> shapeDef
// constructor. Kinds absent here are unsupported.
var shapeBuilders = map[ShapeKind]func(w, h float64) shapeDef{
	Box:             func(w, h float64) shapeDef { return boxDef(w, h, 0) },
	RoundedBox:      func(w, h float64) shapeDef { return boxDef(w, h, cornerRadius) },
	Triangle:        func(w, h float64) shapeDef { return triangleDef(w, h, 0) },
	RoundedTriangle: func(w, h float64) shapeDef { return triangleDef(w, h, cornerRadius) },
	Ball: func(w, h float64) shapeDef {
		radius := w / 2
		return shapeDef{
			build: func(body *cp.Body) *cp.Shape {
				return cp.NewCircle(body, radius, cp.Vector{})
			},
			moment: func(mass float64) float64 {
				return cp.MomentForCircle(mass, 0, radius, cp.Vector{})
			},
		}
	},
	Capsule: func(w, h float64) shapeDef {
		// Vertical fat segment: half-height a quarter of the display width,
		// end-cap radius half of it.
		halfHeight := w / 4
		radius := w / 2
		a := cp.Vector{X: 0, Y: -halfHeight}
		b := cp.Vector{X: 0, Y: halfHeight}
		return shapeDef{
			build: func(body *cp.Body) *cp.Shape {
				return cp.NewSegment(body, a, b, radius)
			},
			moment: func(mass float64) float64 {
				return cp.MomentForSegment(mass, a, b, radius)
			},
		}
	},
}

func boxDef(w, h, radius float64) shapeDef {
	return shapeDef{
		build: func(body *cp.Body) *cp.Shape {
			return cp.NewBox(body, w, h, radius)
		},
		moment: func(mass float64) float64 {
			return cp.MomentForBox(mass, w, h)
		},
	}
}

func triangleDef(w, h, radius float64) shapeDef {
	// Isoceles triangle inscribed in the bounding box: apex at top-center,
	// base corners at bottom-left and bottom-right (screen-down coordinates).
	verts := []cp.Vector{
		{X: -w / 2, Y: h / 2},
		{X: w / 2, Y: h / 2},
		{X: 0, Y: -h / 2},
	}
	return shapeDef{
		build: func(body *cp.Body) *cp.Shape {
			return cp.NewPolyShapeRaw(body, 3, verts, radius)
		},
		moment: func(mass float64) float64 {
			return cp.MomentForPoly(mass, 3, verts, cp.Vector{}, radius)
		},
	}
}
