//go:build ebiten

package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"openbox/internal/core"
	"openbox/internal/render"
	"openbox/internal/sandbox"
	"openbox/internal/ui"
)

// toolKeys maps the number row to placeable kinds, in the historical
// order.
var toolKeys = []struct {
	key  ebiten.Key
	kind core.Kind
}{
	{ebiten.KeyDigit1, core.Sand},
	{ebiten.KeyDigit2, core.Water},
	{ebiten.KeyDigit3, core.Wall},
	{ebiten.KeyDigit4, core.Fire},
	{ebiten.KeyDigit5, core.Lava},
	{ebiten.KeyDigit6, core.Ice},
	{ebiten.KeyDigit7, core.Oil},
	{ebiten.KeyDigit8, core.Acid},
	{ebiten.KeyDigit9, core.Wood},
}

const (
	minBrush = 1
	maxBrush = 20
	minZoom  = 0.1
	maxZoom  = 3.0
)

// Game adapts the sandbox world to the ebiten.Game interface: it owns the
// camera, the current tool and the input handling, and drives one world
// tick per update while running.
type Game struct {
	world   *sandbox.World
	painter *render.GridPainter
	overlay *ui.Overlay
	cfg     Config

	tool      core.Kind
	brush     int
	showDebug bool
	tickOnce  bool
	seed      int64

	zoom       float64
	offX, offY float64
	prevCX     int
	prevCY     int
}

// New constructs a Game for the provided world.
func New(world *sandbox.World, cfg Config) *Game {
	size := world.Size()
	return &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(world),
		cfg:     cfg,
		tool:    core.Sand,
		brush:   3,
		seed:    cfg.Seed,
		zoom:    1,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, tk := range toolKeys {
		if inpututil.IsKeyJustPressed(tk.key) {
			g.tool = tk.kind
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyLeftBracket) && g.brush > minBrush {
		g.brush--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRightBracket) && g.brush < maxBrush {
		g.brush++
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.world.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.world.SaveFile(g.cfg.SavePath); err != nil {
			log.Printf("save: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := g.world.LoadFile(g.cfg.SavePath); err != nil {
			log.Printf("load: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.world.ToggleSymmetry()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}

	g.updateWind()
	g.updateCamera()
	g.updateBrush()

	if !g.world.Paused() || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) updateWind() {
	wx, wy := 0.0, 0.0
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		wx = -0.1
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		wx = 0.1
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		wy = -0.1
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		wy = 0.1
	}
	g.world.SetWind(wx, wy)
}

func (g *Game) updateCamera() {
	cx, cy := ebiten.CursorPosition()
	defer func() { g.prevCX, g.prevCY = cx, cy }()

	if !ebiten.IsKeyPressed(ebiten.KeyControl) {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.offX -= float64(cx - g.prevCX)
		g.offY -= float64(cy - g.prevCY)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.zoom += wy * 0.05
		if g.zoom < minZoom {
			g.zoom = minZoom
		}
		if g.zoom > maxZoom {
			g.zoom = maxZoom
		}
	}
}

func (g *Game) updateBrush() {
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		return
	}
	cx, cy := ebiten.CursorPosition()
	gx, gy := g.view().CellOf(float64(cx), float64(cy))
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.world.Paint(gx, gy, g.tool, g.brush)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.world.Erase(gx, gy, g.brush)
	}
}

func (g *Game) view() ui.View {
	return ui.View{
		OffsetX: g.offX,
		OffsetY: g.offY,
		Scale:   float64(g.cfg.CellSize) * g.zoom,
	}
}

// Draw renders the current world state and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	v := g.view()
	g.painter.Blit(screen, g.world, v.OffsetX, v.OffsetY, v.Scale)

	cx, cy := ebiten.CursorPosition()
	gx, gy := v.CellOf(float64(cx), float64(cy))
	if !g.world.Grid().InBounds(gx, gy) {
		gx, gy = -1, -1
	}
	g.overlay.Draw(screen, v, ui.Status{
		Tool:     g.tool.String(),
		Brush:    g.brush,
		Paused:   g.world.Paused(),
		Symmetry: g.world.Symmetry(),
		Debug:    g.showDebug,
		CursorX:  gx,
		CursorY:  gy,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenW, g.cfg.ScreenH
}
