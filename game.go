package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"physbridge/bridge"
	"physbridge/obj"
	"physbridge/prefabs"
	"physbridge/script"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

type mover struct {
	sprite  *obj.Sprite
	runtime *script.Mover
}

type Game struct {
	frames   int
	specName string
	debug    bool

	scene   *obj.Scene
	world   *bridge.World
	movers  []*mover
	watcher *prefabs.Watcher
}

func NewGame(specName string, debug bool) (*Game, error) {
	g := &Game{specName: specName, debug: debug}
	if err := g.loadWorld(); err != nil {
		return nil, err
	}

	watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
	if err != nil {
		log.Printf("Game: prefab hot-reload disabled: %v", err)
	} else {
		g.watcher = watcher
	}
	return g, nil
}

func (g *Game) loadWorld() error {
	spec, err := prefabs.LoadWorldSpec(g.specName)
	if err != nil {
		return fmt.Errorf("load world spec: %w", err)
	}

	if g.world != nil {
		g.world.Close()
	}
	g.scene = obj.NewScene(screenWidth, screenHeight)
	g.world = bridge.NewWorld(cp.Vector{X: spec.Gravity.X, Y: spec.Gravity.Y}, g.scene)
	g.debug = g.debug || spec.Debug
	g.world.SetDebug(g.debug)
	g.movers = nil

	for _, b := range spec.Bodies {
		sprite := &obj.Sprite{
			Name:  b.Name,
			X:     b.X,
			Y:     b.Y,
			Rot:   b.Rotation,
			W:     b.Width,
			H:     b.Height,
			Color: spriteColor(b.Color),
		}
		g.scene.Add(sprite)
		g.world.Attach(sprite, &bridge.Options{
			Kind:   parseKind(b.Kind),
			Shape:  parseShape(b.Shape),
			Mirror: b.Mirror,
		})

		if b.Script == "" {
			continue
		}
		src, err := prefabs.LoadScript(b.Script)
		if err != nil {
			log.Printf("Game: load mover script %s: %v", b.Script, err)
			continue
		}
		runtime, err := script.NewMover(src)
		if err != nil {
			log.Printf("Game: compile mover script %s: %v", b.Script, err)
			continue
		}
		g.movers = append(g.movers, &mover{sprite: sprite, runtime: runtime})
	}
	return nil
}

func (g *Game) Update() error {
	g.frames++
	t := float64(g.frames) / 60.0

	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
		g.world.SetDebug(g.debug)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.spawnBall()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		if sprite := g.scene.At(float64(cx), float64(cy)); sprite != nil {
			g.world.Detach(sprite)
		}
	}

	for _, m := range g.movers {
		x, y, err := m.runtime.Step(m.sprite.X, m.sprite.Y, t)
		if err != nil {
			log.Printf("Game: mover %s: %v", m.sprite.Name, err)
			continue
		}
		m.sprite.SetPosition(x, y)
	}

	// Fires the bridge's per-frame step.
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)
	g.scene.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.2f  sprites: %d\n[D] debug  [Space] spawn ball  [Click] remove",
		ebiten.ActualFPS(), g.scene.Len()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.world != nil {
		g.world.Close()
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Game: %s changed, reloading world", name)
			if err := g.loadWorld(); err != nil {
				log.Printf("Game: reload failed: %v", err)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Game: prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) spawnBall() {
	size := 24 + rand.Float64()*24
	sprite := &obj.Sprite{
		Name:  "spawned",
		X:     120 + rand.Float64()*(screenWidth-240),
		Y:     40,
		W:     size,
		H:     size,
		Color: colornames.Tomato,
	}
	g.scene.Add(sprite)
	g.world.Attach(sprite, &bridge.Options{Shape: bridge.Ball})
}

func parseKind(s string) bridge.BodyKind {
	switch s {
	case "", "dynamic":
		return bridge.Dynamic
	case "fixed", "static":
		return bridge.Fixed
	case "kinematic_position":
		return bridge.KinematicPosition
	case "kinematic_velocity":
		return bridge.KinematicVelocity
	}
	log.Printf("Game: unknown body kind %q, using dynamic", s)
	return bridge.Dynamic
}

func parseShape(s string) bridge.ShapeSpec {
	switch s {
	case "", "box":
		return bridge.Box
	case "ball":
		return bridge.Ball
	case "capsule":
		return bridge.Capsule
	case "triangle":
		return bridge.Triangle
	case "rounded_box":
		return bridge.RoundedBox
	case "rounded_triangle":
		return bridge.RoundedTriangle
	case "mesh":
		return bridge.Mesh
	case "half_space":
		return bridge.HalfSpace
	case "segment":
		return bridge.Segment
	case "convex_polygon":
		return bridge.ConvexPolygon
	case "rounded_convex_polygon":
		return bridge.RoundedConvexPolygon
	}
	log.Printf("Game: unknown shape %q, using box", s)
	return bridge.Box
}

func spriteColor(name string) color.Color {
	if name == "" {
		return colornames.Hotpink
	}
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	log.Printf("Game: unknown color %q", name)
	return colornames.Hotpink
}
