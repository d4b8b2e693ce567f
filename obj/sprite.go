package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"
)

// Sprite is a display object in the scene's render tree. X and Y are the
// sprite's center; OriginX/OriginY express a normalized pivot offset from the
// center for callers that draw off-center.
type Sprite struct {
	Name string

	X, Y float64
	Rot  float64
	W, H float64

	OriginX, OriginY float64

	// Image is drawn scaled to W x H when set; otherwise the sprite renders
	// as a flat-colored rectangle.
	Image *ebiten.Image
	Color color.Color
}

func (s *Sprite) Position() (float64, float64) { return s.X, s.Y }

func (s *Sprite) SetPosition(x, y float64) { s.X, s.Y = x, y }

func (s *Sprite) Rotation() float64 { return s.Rot }

func (s *Sprite) SetRotation(r float64) { s.Rot = r }

func (s *Sprite) Size() (float64, float64) { return s.W, s.H }

func (s *Sprite) Origin() (float64, float64) { return s.OriginX, s.OriginY }

// Contains reports whether the point lies inside the sprite's bounding box.
func (s *Sprite) Contains(x, y float64) bool {
	return x >= s.X-s.W/2 && x <= s.X+s.W/2 && y >= s.Y-s.H/2 && y <= s.Y+s.H/2
}

// Draw renders the sprite onto screen.
func (s *Sprite) Draw(screen *ebiten.Image) {
	if s == nil || screen == nil {
		return
	}

	if s.Image == nil {
		c := s.Color
		if c == nil {
			c = colornames.Hotpink
		}
		ebitenutil.DrawRect(screen, s.X-s.W/2, s.Y-s.H/2, s.W, s.H, c)
		return
	}

	bounds := s.Image.Bounds()
	iw := float64(bounds.Dx())
	ih := float64(bounds.Dy())
	if iw == 0 || ih == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(s.W/iw, s.H/ih)
	op.GeoM.Rotate(s.Rot)
	op.GeoM.Translate(s.X, s.Y)
	screen.DrawImage(s.Image, op)
}
