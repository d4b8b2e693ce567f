package obj

import (
	"testing"

	"physbridge/bridge"
)

func TestSceneAddDestroy(t *testing.T) {
	s := NewScene(100, 100)
	a := s.Add(&Sprite{Name: "a", X: 10, Y: 10, W: 4, H: 4})
	b := s.Add(&Sprite{Name: "b", X: 20, Y: 20, W: 4, H: 4})

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}

	s.Destroy(a)
	if s.Len() != 1 {
		t.Fatalf("Len after destroy = %d, want 1", s.Len())
	}
	if s.sprites[0] != b {
		t.Fatal("wrong sprite removed")
	}

	// Destroying again, or destroying a foreign object, is a no-op.
	s.Destroy(a)
	s.Destroy(&Sprite{})
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
}

func TestSceneOnFrame(t *testing.T) {
	s := NewScene(100, 100)

	var order []string
	cancelFirst := s.OnFrame(func() { order = append(order, "first") })
	s.OnFrame(func() { order = append(order, "second") })

	s.Update()
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("callback order = %v", order)
	}

	cancelFirst()
	cancelFirst() // cancel is idempotent
	order = nil
	s.Update()
	if len(order) != 1 || order[0] != "second" {
		t.Fatalf("callbacks after cancel = %v", order)
	}
}

func TestSceneOnFrameCancelDuringUpdate(t *testing.T) {
	s := NewScene(100, 100)

	calls := 0
	var cancel func()
	cancel = s.OnFrame(func() {
		calls++
		cancel()
	})
	s.OnFrame(func() { calls++ })

	s.Update()
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	s.Update()
	if calls != 3 {
		t.Fatalf("calls after self-cancel = %d, want 3", calls)
	}
}

func TestSceneAt(t *testing.T) {
	s := NewScene(100, 100)
	bottom := s.Add(&Sprite{Name: "bottom", X: 50, Y: 50, W: 20, H: 20})
	top := s.Add(&Sprite{Name: "top", X: 55, Y: 50, W: 10, H: 10})

	if got := s.At(55, 50); got != top {
		t.Fatalf("At(55,50) = %v, want topmost sprite", got)
	}
	if got := s.At(42, 50); got != bottom {
		t.Fatalf("At(42,50) = %v, want bottom sprite", got)
	}
	if got := s.At(0, 0); got != nil {
		t.Fatalf("At(0,0) = %v, want nil", got)
	}
}

func TestSpriteImplementsDisplayObject(t *testing.T) {
	var obj bridge.DisplayObject = &Sprite{X: 1, Y: 2, Rot: 0.5, W: 3, H: 4, OriginX: 0.5}

	if x, y := obj.Position(); x != 1 || y != 2 {
		t.Fatalf("Position = (%v, %v)", x, y)
	}
	obj.SetPosition(9, 8)
	if x, y := obj.Position(); x != 9 || y != 8 {
		t.Fatalf("Position after set = (%v, %v)", x, y)
	}
	obj.SetRotation(1.25)
	if obj.Rotation() != 1.25 {
		t.Fatalf("Rotation = %v", obj.Rotation())
	}
	if w, h := obj.Size(); w != 3 || h != 4 {
		t.Fatalf("Size = (%v, %v)", w, h)
	}
	if ox, _ := obj.Origin(); ox != 0.5 {
		t.Fatalf("Origin x = %v", ox)
	}
}

func TestDebugSurfaceBeforeGameLoop(t *testing.T) {
	// The surface must be safe to create and clear before any image exists.
	s := NewScene(100, 100)
	surface := s.NewDebugSurface()
	surface.Clear()

	if s.NewDebugSurface() != surface {
		t.Fatal("NewDebugSurface should reuse the scene's layer")
	}
}
