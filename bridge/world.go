package bridge

import (
	"log"

	"github.com/jakecoffman/cp"
)

// BodyKind selects how a body participates in the simulation.
type BodyKind int

const (
	// Dynamic bodies are fully simulated.
	Dynamic BodyKind = iota
	// Fixed bodies never move.
	Fixed
	// KinematicPosition bodies are driven by externally set target positions.
	KinematicPosition
	// KinematicVelocity bodies are driven by externally set velocities.
	KinematicVelocity
)

func (k BodyKind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case Fixed:
		return "fixed"
	case KinematicPosition:
		return "kinematic_position"
	case KinematicVelocity:
		return "kinematic_velocity"
	}
	return "unknown"
}

// Options configures Attach. The zero value is a dynamic body with a box
// collider sized to the display object's bounding box.
type Options struct {
	Kind  BodyKind
	Shape ShapeSpec
	// Mirror copies the display transform into the body each frame instead of
	// the other way around. Only defined for KinematicPosition bodies.
	Mirror bool
}

// Association pairs one display object with the rigid body and collider
// created for it. The bridge owns Body and Collider; Display is borrowed.
type Association struct {
	Display  DisplayObject
	Body     *cp.Body
	Collider *cp.Shape

	kind         BodyKind
	mirror       bool
	mirrorWarned bool
	id           uint64
}

const (
	// collisionTypeBridge is stamped on every collider the bridge creates so
	// the collision queue's wildcard handlers see them.
	collisionTypeBridge cp.CollisionType = iota + 1
)

const (
	timeStep        = 1.0 / 60.0
	defaultMass     = 1.0
	defaultFriction = 0.8
)

// World owns one Chipmunk space bound to one scene and keeps the list of
// display-object/body associations in sync once per frame. All methods are
// single-threaded by contract, called from the scene's frame callback context.
type World struct {
	space       *cp.Space
	scene       Scene
	surface     DebugSurface
	cancelFrame func()

	nextID uint64
	byID   map[uint64]*Association
	order  []uint64

	debug         bool
	queue         *CollisionQueue
	handlersReady bool
	closed        bool
}

// NewWorld creates a simulation with the given gravity and subscribes the
// per-frame synchronization step to the scene.
func NewWorld(gravity cp.Vector, scene Scene) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(gravity)

	w := &World{
		space: space,
		scene: scene,
		byID:  make(map[uint64]*Association),
	}
	if scene != nil {
		w.surface = scene.NewDebugSurface()
		w.cancelFrame = scene.OnFrame(w.step)
	}
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Attach creates a body and collider for obj, initialized from its current
// transform, and registers the pairing for per-frame synchronization. A nil
// opts attaches a dynamic body with a box collider sized to obj's bounds.
// Attaching the same display object twice creates two independently
// synchronized associations; nothing guards against it.
func (w *World) Attach(obj DisplayObject, opts *Options) *Association {
	if w == nil || w.space == nil || obj == nil {
		return nil
	}

	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Shape == nil {
		o.Shape = Box
	}

	bw, bh := obj.Size()
	def := o.Shape.resolve(bw, bh)
	if def.unsupported {
		if kind, ok := o.Shape.(ShapeKind); ok {
			log.Printf("World: no built-in collider for shape kind %q, attaching without one (pass a Custom spec instead)", kind)
		} else {
			log.Printf("World: shape spec resolved to no collider, attaching without one")
		}
	}

	var body *cp.Body
	switch o.Kind {
	case Fixed:
		body = cp.NewStaticBody()
	case KinematicPosition, KinematicVelocity:
		body = cp.NewKinematicBody()
	default:
		moment := cp.MomentForBox(defaultMass, bw, bh)
		if def.moment != nil {
			moment = def.moment(defaultMass)
		}
		body = cp.NewBody(defaultMass, moment)
	}

	x, y := obj.Position()
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetAngle(obj.Rotation())
	w.space.AddBody(body)

	var shape *cp.Shape
	if def.build != nil {
		shape = def.build(body)
		shape.SetFriction(defaultFriction)
		shape.SetCollisionType(collisionTypeBridge)
		w.space.AddShape(shape)
	}

	id := w.nextID
	w.nextID++
	a := &Association{
		Display:  obj,
		Body:     body,
		Collider: shape,
		kind:     o.Kind,
		mirror:   o.Mirror,
		id:       id,
	}
	w.byID[id] = a
	// Newest first: sync order is reverse-of-attachment.
	w.order = append([]uint64{id}, w.order...)
	return a
}

// Detach removes the first association matching obj by reference: the body and
// collider leave the simulation, then obj is destroyed through the scene.
// Detaching an unregistered object is a no-op.
func (w *World) Detach(obj DisplayObject) {
	if w == nil || obj == nil {
		return
	}
	for i, id := range w.order {
		a := w.byID[id]
		if a == nil || a.Display != obj {
			continue
		}
		if w.space != nil {
			if a.Collider != nil {
				w.space.RemoveShape(a.Collider)
			}
			w.space.RemoveBody(a.Body)
		}
		if w.scene != nil {
			w.scene.Destroy(obj)
		}
		delete(w.byID, id)
		w.order = append(w.order[:i], w.order[i+1:]...)
		return
	}
}

// SetDebug toggles debug collision-geometry rendering. Disabling clears the
// surface immediately so stale geometry does not persist on screen.
func (w *World) SetDebug(enabled bool) {
	if w == nil {
		return
	}
	w.debug = enabled
	if !enabled && w.surface != nil {
		w.surface.Clear()
	}
}

// Close releases the simulation and cancels the per-frame subscription.
// Bodies and colliders are not individually released; display objects belong
// to the scene and are untouched.
func (w *World) Close() {
	if w == nil || w.closed {
		return
	}
	w.closed = true
	if w.cancelFrame != nil {
		w.cancelFrame()
		w.cancelFrame = nil
	}
	w.space = nil
	w.queue = nil
}

// step runs once per scene frame: advance the simulation, drain collision
// events, copy transforms in each association's configured direction, then
// redraw debug geometry.
func (w *World) step() {
	if w == nil || w.space == nil {
		return
	}

	w.space.Step(timeStep)
	if q := w.queue; q != nil {
		q.drain()
	}

	for _, id := range w.order {
		a := w.byID[id]
		if a == nil {
			continue
		}
		w.sync(a)
	}

	if w.debug && w.surface != nil {
		w.surface.Clear()
		cp.DrawSpace(w.space, &surfaceDrawer{surface: w.surface})
	}
}

func (w *World) sync(a *Association) {
	if a.kind == Fixed {
		return
	}

	if a.mirror {
		if a.kind == KinematicPosition {
			x, y := a.Display.Position()
			dw, _ := a.Display.Size()
			ox, _ := a.Display.Origin()
			// Shift by half the display width scaled by the horizontal origin
			// offset so non-center pivots land where the sprite is drawn.
			a.Body.SetPosition(cp.Vector{X: x + dw/2*ox, Y: y})
			a.Body.SetAngle(a.Display.Rotation())
			// Kinematic position updates do not propagate to attached
			// colliders until the next step; reindex so they pick up the new
			// transform now.
			w.space.ReindexShapesForBody(a.Body)
			return
		}
		if !a.mirrorWarned {
			log.Printf("World: transform mirroring is only defined for kinematic position-based bodies, %s body stays engine-driven", a.kind)
			a.mirrorWarned = true
		}
		return
	}

	pos := a.Body.Position()
	a.Display.SetPosition(pos.X, pos.Y)
	a.Display.SetRotation(a.Body.Angle())
}
