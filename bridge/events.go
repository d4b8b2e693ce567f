package bridge

import (
	"log"

	"github.com/jakecoffman/cp"
)

// CollisionEvent is one contact transition between two bridge-created
// colliders. Begin is false for separations.
type CollisionEvent struct {
	A, B  *cp.Shape
	Begin bool
}

// CollisionQueue buffers contact events collected during a simulation step.
// The world drains it after each step; without a Handler the events are only
// logged. This is the extension point for consumers, not a completed feature.
type CollisionQueue struct {
	Handler func(CollisionEvent)

	events []CollisionEvent
}

// NewCollisionQueue makes the world collect contact events during subsequent
// steps and returns the queue plus a release func. Only one queue is active at
// a time; creating a new one replaces the prior.
func (w *World) NewCollisionQueue() (*CollisionQueue, func()) {
	if w == nil || w.space == nil {
		return nil, func() {}
	}
	w.ensureCollisionHandlers()
	q := &CollisionQueue{}
	w.queue = q
	release := func() {
		if w.queue == q {
			w.queue = nil
		}
	}
	return q, release
}

func (w *World) ensureCollisionHandlers() {
	if w.handlersReady || w.space == nil {
		return
	}

	handler := w.space.NewWildcardCollisionHandler(collisionTypeBridge)
	handler.UserData = w
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil || world.queue == nil {
			return true
		}
		a, b := arb.Shapes()
		world.queue.push(CollisionEvent{A: a, B: b, Begin: true})
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		world, ok := userData.(*World)
		if !ok || world == nil || world.queue == nil {
			return
		}
		a, b := arb.Shapes()
		world.queue.push(CollisionEvent{A: a, B: b})
	}

	w.handlersReady = true
}

func (q *CollisionQueue) push(ev CollisionEvent) {
	q.events = append(q.events, ev)
}

func (q *CollisionQueue) drain() {
	if len(q.events) == 0 {
		return
	}
	events := q.events
	q.events = nil
	for _, ev := range events {
		if q.Handler != nil {
			q.Handler(ev)
			continue
		}
		verb := "separate"
		if ev.Begin {
			verb = "begin"
		}
		log.Printf("World: collision %s between %p and %p", verb, ev.A, ev.B)
	}
}
