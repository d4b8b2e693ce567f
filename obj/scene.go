package obj

import (
	"github.com/hajimehoshi/ebiten/v2"

	"physbridge/bridge"
)

var _ bridge.Scene = (*Scene)(nil)

type frameEntry struct {
	id int
	fn func()
}

// Scene is the Ebitengine side of the pairing: an ordered render tree of
// sprites, a per-frame callback registry, and a debug drawing layer. The host
// game calls Update and Draw from its own loop.
type Scene struct {
	width, height int

	sprites []*Sprite
	frames  []frameEntry
	nextID  int
	surface *Surface
}

func NewScene(width, height int) *Scene {
	return &Scene{width: width, height: height}
}

// Add inserts the sprite into the render tree and returns it.
func (s *Scene) Add(sprite *Sprite) *Sprite {
	if s == nil || sprite == nil {
		return sprite
	}
	s.sprites = append(s.sprites, sprite)
	return sprite
}

// Len returns the number of sprites in the render tree.
func (s *Scene) Len() int {
	if s == nil {
		return 0
	}
	return len(s.sprites)
}

// At returns the topmost sprite whose bounding box contains the point.
func (s *Scene) At(x, y float64) *Sprite {
	if s == nil {
		return nil
	}
	for i := len(s.sprites) - 1; i >= 0; i-- {
		if s.sprites[i].Contains(x, y) {
			return s.sprites[i]
		}
	}
	return nil
}

// OnFrame registers fn to run on every scene update. The returned cancel func
// removes the registration.
func (s *Scene) OnFrame(fn func()) func() {
	if s == nil || fn == nil {
		return func() {}
	}
	id := s.nextID
	s.nextID++
	s.frames = append(s.frames, frameEntry{id: id, fn: fn})
	return func() {
		for i, entry := range s.frames {
			if entry.id == id {
				s.frames = append(s.frames[:i], s.frames[i+1:]...)
				return
			}
		}
	}
}

// NewDebugSurface allocates the scene's persistent debug layer, drawn above
// the sprites.
func (s *Scene) NewDebugSurface() bridge.DebugSurface {
	if s.surface == nil {
		s.surface = &Surface{width: s.width, height: s.height}
	}
	return s.surface
}

// Destroy removes the display object from the render tree. Objects that are
// not sprites of this scene are ignored.
func (s *Scene) Destroy(obj bridge.DisplayObject) {
	if s == nil {
		return
	}
	for i, sprite := range s.sprites {
		if bridge.DisplayObject(sprite) == obj {
			s.sprites = append(s.sprites[:i], s.sprites[i+1:]...)
			return
		}
	}
}

// Update fires the per-frame callbacks in registration order.
func (s *Scene) Update() {
	if s == nil {
		return
	}
	// Callbacks may cancel themselves; iterate a snapshot.
	entries := make([]frameEntry, len(s.frames))
	copy(entries, s.frames)
	for _, entry := range entries {
		entry.fn()
	}
}

// Draw renders the sprites, then the debug layer on top.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s == nil || screen == nil {
		return
	}
	for _, sprite := range s.sprites {
		sprite.Draw(screen)
	}
	if s.surface != nil {
		s.surface.Draw(screen)
	}
}
