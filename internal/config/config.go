package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/olivierh59500/particle-field/internal/field"
)

// Field constants
const (
	WindowWidth  = 800
	WindowHeight = 600

	ParticleCount  = 900
	ParticleRadius = 5.0
	MaxRadius      = 8.0

	// Terminal surfaces are smaller; see CellWidth/CellHeight
	TerminalParticleCount = 250

	TPS = 60 // Target ticks per second

	// Resamples shared by one rebuild before placement is relaxed
	PlacementAttempts = 10000

	// Surface units covered by one terminal cell
	CellWidth  = 8
	CellHeight = 16

	// DefaultFile is where S/L save and load settings
	DefaultFile = "particles.json"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the tunables shared by both surfaces.
type Config struct {
	Width                int     `json:"width"`
	Height               int     `json:"height"`
	Count                int     `json:"count"`
	Radius               float64 `json:"radius"`
	MaxRadius            float64 `json:"max_radius"`
	TPS                  int     `json:"tps"`
	Seed                 int64   `json:"seed"`
	MaxPlacementAttempts int     `json:"max_placement_attempts"`
	Backdrop             bool    `json:"backdrop"`
	CellWidth            int     `json:"cell_width"`
	CellHeight           int     `json:"cell_height"`
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		Width:                WindowWidth,
		Height:               WindowHeight,
		Count:                ParticleCount,
		Radius:               ParticleRadius,
		MaxRadius:            MaxRadius,
		TPS:                  TPS,
		MaxPlacementAttempts: PlacementAttempts,
		CellWidth:            CellWidth,
		CellHeight:           CellHeight,
	}
}

// RegisterFlags binds every field to fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Window width")
	fs.IntVar(&c.Height, "height", c.Height, "Window height")
	fs.IntVar(&c.Count, "count", c.Count, "Number of particles")
	fs.Float64Var(&c.Radius, "radius", c.Radius, "Resting particle radius")
	fs.Float64Var(&c.MaxRadius, "max-radius", c.MaxRadius, "Radius growth stops once this is reached")
	fs.IntVar(&c.TPS, "tps", c.TPS, "Simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Random seed (0 = time based)")
	fs.IntVar(&c.MaxPlacementAttempts, "attempts", c.MaxPlacementAttempts, "Placement resamples per rebuild before relaxing (0 = unbounded)")
	fs.BoolVar(&c.Backdrop, "backdrop", c.Backdrop, "Draw the noise backdrop")
	fs.IntVar(&c.CellWidth, "cell-width", c.CellWidth, "Surface units per terminal column")
	fs.IntVar(&c.CellHeight, "cell-height", c.CellHeight, "Surface units per terminal row")
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Count <= 0:
		return fmt.Errorf("%w: count %d", ErrInvalid, c.Count)
	case c.Radius <= 0:
		return fmt.Errorf("%w: radius %g", ErrInvalid, c.Radius)
	case float64(c.Width) < 2*c.Radius || float64(c.Height) < 2*c.Radius:
		return fmt.Errorf("%w: size %dx%d cannot hold radius %g", ErrInvalid, c.Width, c.Height, c.Radius)
	case c.MaxRadius < c.Radius:
		return fmt.Errorf("%w: max radius %g below radius %g", ErrInvalid, c.MaxRadius, c.Radius)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	case c.MaxPlacementAttempts < 0:
		return fmt.Errorf("%w: attempts %d", ErrInvalid, c.MaxPlacementAttempts)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("%w: cell %dx%d", ErrInvalid, c.CellWidth, c.CellHeight)
	}
	return nil
}

// RNG returns a source seeded from Seed, or from the clock when Seed is 0.
func (c Config) RNG() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Placement is the scene description handed to the field
func (c Config) Placement() field.Placement {
	return field.Placement{
		Count:       c.Count,
		Radius:      c.Radius,
		MaxRadius:   c.MaxRadius,
		MaxAttempts: c.MaxPlacementAttempts,
	}
}

// Save writes the settings as JSON.
func (c Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load reads JSON settings on top of Default and validates the result.
func Load(filename string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config %s: %w", filename, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}
