package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Surface is a persistent debug drawing layer backed by an offscreen image.
// The image is allocated on first draw so a scene can be built before the
// game loop starts.
type Surface struct {
	width, height int
	img           *ebiten.Image
}

func (s *Surface) Clear() {
	if s == nil || s.img == nil {
		return
	}
	s.img.Clear()
}

func (s *Surface) Line(x1, y1, x2, y2 float64, c color.Color) {
	if s == nil {
		return
	}
	if s.img == nil {
		s.img = ebiten.NewImage(s.width, s.height)
	}
	ebitenutil.DrawLine(s.img, x1, y1, x2, y2, c)
}

// Draw composites the layer onto screen.
func (s *Surface) Draw(screen *ebiten.Image) {
	if s == nil || s.img == nil || screen == nil {
		return
	}
	screen.DrawImage(s.img, nil)
}
