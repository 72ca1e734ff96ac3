package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particle-field/internal/backdrop"
	"github.com/olivierh59500/particle-field/internal/config"
	"github.com/olivierh59500/particle-field/internal/field"
)

// Simulation struct: Holds the window state around the particle field
type Simulation struct {
	Width, Height float64
	Config        config.Config
	ConfigFile    string
	Field         *field.Field
	Backdrop      *backdrop.Backdrop
	Pointer       field.Pointer
	Paused        bool
	ShowBackdrop  bool
	TickCount     int

	frame          field.DrawList // Last tick, replayed by Draw
	layoutW        int            // Size reported by Layout, applied in Update
	layoutH        int
	cursorX        int // Cursor at the previous tick
	cursorY        int
	cursorKnown    bool
	pendingRebuild bool
}

// NewSimulation creates a new simulation instance
func NewSimulation(cfg config.Config) *Simulation {
	rng := cfg.RNG()
	s := &Simulation{
		Width:        float64(cfg.Width),
		Height:       float64(cfg.Height),
		Config:       cfg,
		ConfigFile:   config.DefaultFile,
		Field:        field.New(cfg.Placement(), rng),
		Backdrop:     backdrop.New(rng.Int63()),
		ShowBackdrop: cfg.Backdrop,
		layoutW:      cfg.Width,
		layoutH:      cfg.Height,
	}
	s.Field.Rebuild(s.bounds())

	return s
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	if err := s.handleInput(); err != nil {
		return err
	}

	if s.layoutW != int(s.Width) || s.layoutH != int(s.Height) {
		s.resize(s.layoutW, s.layoutH)
	}
	if s.pendingRebuild {
		s.Field.Rebuild(s.bounds())
		s.pendingRebuild = false
	}

	if s.Paused {
		return nil
	}

	s.tick()
	return nil
}

// tick advances the field once, recording the frame for Draw
func (s *Simulation) tick() {
	s.Field.Step(s.Pointer, s.bounds(), &s.frame)
	s.TickCount++
}

// Draw is called each frame by Ebitengine
func (s *Simulation) Draw(screen *ebiten.Image) {
	s.frame.Replay(&screenCanvas{
		screen:   screen,
		backdrop: s.backdropLayer(),
		t:        float64(s.TickCount),
	})
}

// Layout follows the window so a resize rebuilds the field
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.layoutW, s.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// handleInput processes keyboard and mouse input
func (s *Simulation) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.Paused = !s.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.ShowBackdrop = !s.ShowBackdrop
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.saveConfig()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		s.loadConfig()
	}

	mx, my := ebiten.CursorPosition()
	s.moveCursor(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.click()
	}
	return nil
}

// moveCursor tracks the pointer. Ebitengine reports a position before the
// mouse has moved, so the pointer only becomes set on the first change.
func (s *Simulation) moveCursor(mx, my int) {
	if !s.cursorKnown {
		s.cursorX, s.cursorY = mx, my
		s.cursorKnown = true
		return
	}
	if s.Pointer.Set || mx != s.cursorX || my != s.cursorY {
		s.Pointer = field.Pointer{X: float64(mx), Y: float64(my), Set: true}
	}
	s.cursorX, s.cursorY = mx, my
}

// click picks a new palette and rebuilds the scene
func (s *Simulation) click() {
	s.Field.Reseed()
	s.pendingRebuild = true
}

// resize adopts the new surface size and rebuilds the scene
func (s *Simulation) resize(w, h int) {
	s.Width, s.Height = float64(w), float64(h)
	s.pendingRebuild = true
}

// saveConfig saves to JSON
func (s *Simulation) saveConfig() {
	cfg := s.Config
	cfg.Backdrop = s.ShowBackdrop
	if err := cfg.Save(s.ConfigFile); err != nil {
		log.Printf("save settings: %v", err)
		return
	}
	s.Config = cfg
}

// loadConfig loads from JSON and rebuilds with the loaded scene
func (s *Simulation) loadConfig() {
	cfg, err := config.Load(s.ConfigFile)
	if err != nil {
		log.Printf("load settings: %v", err)
		return
	}
	s.Config = cfg
	s.ShowBackdrop = cfg.Backdrop
	s.Field.SetPlacement(cfg.Placement())
	s.pendingRebuild = true
}

func (s *Simulation) bounds() field.Bounds {
	return field.Bounds{Width: s.Width, Height: s.Height}
}

func (s *Simulation) backdropLayer() *backdrop.Backdrop {
	if !s.ShowBackdrop {
		return nil
	}
	return s.Backdrop
}

// screenCanvas draws field frames onto an Ebitengine image
type screenCanvas struct {
	screen   *ebiten.Image
	backdrop *backdrop.Backdrop
	t        float64
}

func (c *screenCanvas) Clear(b field.Bounds) {
	c.screen.Clear()
	if c.backdrop == nil {
		return
	}
	for _, tile := range c.backdrop.Tiles(b.Width, b.Height, c.t) {
		v := uint8(tile.Intensity * 40)
		col := color.RGBA{v / 2, v / 2, v, 255}
		vector.DrawFilledRect(c.screen, float32(tile.X), float32(tile.Y), float32(tile.Size), float32(tile.Size), col, false)
	}
}

func (c *screenCanvas) FillCircle(x, y, radius float64, fill color.RGBA, alpha float64) {
	col := color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: uint8(alpha * 255)}
	vector.DrawFilledCircle(c.screen, float32(x), float32(y), float32(radius), col, true)
}
