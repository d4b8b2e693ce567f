package bridge

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCollisionQueueCollectsContacts(t *testing.T) {
	w, scene := newTestWorld(cp.Vector{Y: 100})

	floor := &fakeObject{x: 0, y: 100, w: 200, h: 20}
	w.Attach(floor, &Options{Kind: Fixed})

	ball := &fakeObject{x: 0, y: 0, w: 20, h: 20}
	w.Attach(ball, &Options{Shape: Ball})

	queue, release := w.NewCollisionQueue()
	defer release()

	var begins int
	queue.Handler = func(ev CollisionEvent) {
		if ev.Begin {
			begins++
		}
		if ev.A == nil || ev.B == nil {
			t.Fatal("collision event with nil shape")
		}
	}

	for i := 0; i < 300; i++ {
		scene.step()
	}
	if begins == 0 {
		t.Fatal("expected at least one contact begin event for a ball dropped on a floor")
	}
}

func TestCollisionQueueReplacement(t *testing.T) {
	w, _ := newTestWorld(cp.Vector{})

	first, releaseFirst := w.NewCollisionQueue()
	second, _ := w.NewCollisionQueue()
	if w.queue != second {
		t.Fatal("a new queue should replace the prior one")
	}

	// Releasing a superseded queue must not detach the active one.
	releaseFirst()
	if w.queue != second {
		t.Fatal("releasing a stale queue detached the active one")
	}
	_ = first
}

func TestCollisionQueueRelease(t *testing.T) {
	w, scene := newTestWorld(cp.Vector{Y: 100})
	w.Attach(&fakeObject{y: 30, w: 100, h: 10}, &Options{Kind: Fixed})
	w.Attach(&fakeObject{w: 10, h: 10}, nil)

	queue, release := w.NewCollisionQueue()
	release()
	if w.queue != nil {
		t.Fatal("release should detach the queue")
	}

	var events int
	queue.Handler = func(CollisionEvent) { events++ }
	for i := 0; i < 120; i++ {
		scene.step()
	}
	if events != 0 {
		t.Fatalf("released queue received %d events", events)
	}
}

func TestCollisionQueueDefaultHandlingDoesNotDropEvents(t *testing.T) {
	// Without a Handler the drain only logs; the buffer must still empty so it
	// does not grow across frames.
	w, scene := newTestWorld(cp.Vector{Y: 100})
	w.Attach(&fakeObject{y: 30, w: 100, h: 10}, &Options{Kind: Fixed})
	w.Attach(&fakeObject{w: 10, h: 10}, nil)

	queue, release := w.NewCollisionQueue()
	defer release()

	for i := 0; i < 120; i++ {
		scene.step()
		if len(queue.events) != 0 {
			t.Fatalf("frame %d: %d events left after drain", i, len(queue.events))
		}
	}
}
