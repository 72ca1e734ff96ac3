package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particle-field/internal/config"
	"github.com/olivierh59500/particle-field/internal/field"
)

// App runs the field on a terminal. All state is owned by the Run loop;
// events are pumped from another goroutine but handled on the loop.
type App struct {
	screen  tcell.Screen
	surface *Surface
	field   *field.Field
	pointer field.Pointer
	buttons tcell.ButtonMask
	tick    time.Duration
}

// New builds an App on an initialised screen and places the first scene
func New(screen tcell.Screen, cfg config.Config) *App {
	screen.EnableMouse(tcell.MouseMotionEvents)

	a := &App{
		screen:  screen,
		surface: NewSurface(screen, cfg.CellWidth, cfg.CellHeight, cfg.MaxRadius),
		field:   field.New(cfg.Placement(), cfg.RNG()),
		tick:    time.Second / time.Duration(cfg.TPS),
	}
	a.field.Rebuild(a.surface.Bounds())
	return a
}

// HandleEvent applies one terminal event and reports whether to keep running
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev.Key(), ev.Rune()) {
			return false
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		a.mouse(col, row, ev.Buttons())

	case *tcell.EventResize:
		a.screen.Sync()
		a.field.Rebuild(a.surface.Bounds())
	}

	return true
}

func isQuit(k tcell.Key, r rune) bool {
	return k == tcell.KeyEscape || k == tcell.KeyCtrlC || (k == tcell.KeyRune && r == 'q')
}

// mouse moves the pointer; a fresh primary press reseeds and rebuilds
func (a *App) mouse(col, row int, buttons tcell.ButtonMask) {
	x, y := a.surface.ToSurface(col, row)
	a.pointer = field.Pointer{X: x, Y: y, Set: true}

	if buttons&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0 {
		a.field.Reseed()
		a.field.Rebuild(a.surface.Bounds())
	}
	a.buttons = buttons
}

// Frame advances the field once and shows it
func (a *App) Frame() {
	a.field.Step(a.pointer, a.surface.Bounds(), a.surface)
	a.screen.Show()
}

// Run ticks frames until ctx is done or a quit key arrives
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.Frame()
		}
	}
}

func (a *App) Field() *field.Field { return a.field }
func (a *App) Pointer() field.Pointer { return a.pointer }
func (a *App) Surface() *Surface { return a.surface }
