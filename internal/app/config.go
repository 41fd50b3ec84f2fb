package app

import (
	"encoding/json"
	"os"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/patterns"
)

// Config represents the command-line parameters for the front-ends.
type Config struct {
	Name    string `json:"name"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Scale   int    `json:"scale"`
	TPS     int    `json:"tps"`
	Seed    int64  `json:"seed"`
	Pattern string `json:"pattern"`

	File string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Name:   "Game of Life",
		Width:  200,
		Height: 120,
		Scale:  4,
		TPS:    core.DefaultTPS,
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.String(&c.File, "c", "config", "JSON file with default settings, flags take precedence")
	p.String(&c.Name, "", "name", "simulation name shown in the title")
	p.Int(&c.Width, "x", "width", "grid width in cells")
	p.Int(&c.Height, "y", "height", "grid height in cells")
	p.Int(&c.Scale, "s", "scale", "pixel scale multiplier")
	p.Int(&c.TPS, "t", "tps", "generations per second while running")
	p.Int64(&c.Seed, "r", "seed", "seed for randomization, 0 picks one from the clock")
	p.String(&c.Pattern, "p", "pattern", "start from a named pattern on an empty grid instead of noise")
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(life.ErrInvalidDimensions, "config %dx%d", c.Width, c.Height)
	case c.Scale <= 0:
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Pattern != "" {
		if _, err := patterns.Lookup(c.Pattern); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfig overlays the JSON file at filename onto c.
func LoadConfig(filename string, c *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Resolve builds a Config from defaults, an optional JSON file named by
// --config, and finally the command-line flags in args.
func Resolve(name, descr string, args []string) (*Config, error) {
	cfg := NewConfig()
	if err := newParser(name, descr, cfg).ParseArgs(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}
	if cfg.File != "" {
		file := cfg.File
		cfg = NewConfig()
		if err := LoadConfig(file, cfg); err != nil {
			return nil, err
		}
		// Flags win over the file.
		if err := newParser(name, descr, cfg).ParseArgs(args); err != nil {
			return nil, errors.Wrap(err, "parse flags")
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newParser(name, descr string, cfg *Config) *flaggy.Parser {
	p := flaggy.NewParser(name)
	p.Description = descr
	p.ShowVersionWithVersionFlag = false
	cfg.Bind(p)
	return p
}

// NewSimulation constructs the simulation described by cfg. With a pattern
// set, the grid is cleared and the pattern is stamped in the middle.
func NewSimulation(cfg *Config) (*life.Simulation, error) {
	var opts []life.Option
	if cfg.Seed != 0 {
		opts = append(opts, life.WithSeed(cfg.Seed))
	}
	sim, err := life.New(cfg.Name, cfg.Width, cfg.Height, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Pattern != "" {
		p, err := patterns.Lookup(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		sim.Clear()
		pw, ph := p.Bounds()
		sim.Stamp(p, (cfg.Width-pw)/2, (cfg.Height-ph)/2)
	}
	return sim, nil
}
