// Package config holds the command-line and file configuration shared by the
// lifegrid commands.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// UI modes accepted by -ui.
const (
	UITerminal = "tui"
	UIHeadless = "headless"
)

// Placement stamps a pattern onto the grid at startup. File, when set, takes
// precedence over Name. A Centered placement ignores Row and Col and puts the
// pattern in the middle of the grid.
type Placement struct {
	Name     string
	File     string
	Row      int
	Col      int
	Centered bool
}

// Config represents the command-line parameters for the application.
type Config struct {
	Rows        int
	Cols        int
	Seed        int64
	Density     float64
	Interval    time.Duration
	Generations int
	UI          string
	Scale       int
	LogLevel    string
	LogFile     string
	File        string
	Patterns    []Placement
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Rows:     50,
		Cols:     50,
		Seed:     42,
		Density:  0.3,
		Interval: 200 * time.Millisecond,
		UI:       UITerminal,
		Scale:    10,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "HCL configuration file")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize")
	fs.Float64Var(&c.Density, "density", c.Density, "live probability used by randomize")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to run in headless mode (0 = until interrupted)")
	fs.StringVar(&c.UI, "ui", c.UI, "driver to use: tui or headless")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file instead of stderr")
	fs.Var((*placementList)(&c.Patterns), "pattern", "seed pattern as name@row,col, or name to centre it (repeatable)")
}

// Parse builds a Config from defaults, then the file named by -config, then
// any flags given explicitly in args.
func Parse(name string, args []string, out io.Writer) (Config, error) {
	cfg := DefaultConfig()
	if err := parseFlags(name, args, out, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.File == "" {
		return cfg, cfg.Validate()
	}

	fromFile := DefaultConfig()
	if err := LoadFile(cfg.File, &fromFile); err != nil {
		return Config{}, err
	}
	filePatterns := fromFile.Patterns
	fromFile.Patterns = nil
	// Second pass lets explicit flags override file values.
	if err := parseFlags(name, args, io.Discard, &fromFile); err != nil {
		return Config{}, err
	}
	fromFile.Patterns = append(filePatterns, fromFile.Patterns...)
	return fromFile, fromFile.Validate()
}

func parseFlags(name string, args []string, out io.Writer, cfg *Config) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	cfg.Bind(fs)
	return fs.Parse(args)
}

// Validate reports every invalid setting joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Rows <= 0 || c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("density %v outside [0,1]", c.Density))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval must be positive, got %v", c.Interval))
	}
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations must not be negative, got %d", c.Generations))
	}
	if c.UI != UITerminal && c.UI != UIHeadless {
		errs = append(errs, fmt.Errorf("unknown ui %q", c.UI))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

type placementList []Placement

func (l *placementList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, p := range *l {
		if p.Centered {
			parts[i] = p.Name
			continue
		}
		parts[i] = fmt.Sprintf("%s@%d,%d", p.Name, p.Row, p.Col)
	}
	return strings.Join(parts, " ")
}

// Set parses name@row,col. A bare name is centred on the grid.
func (l *placementList) Set(v string) error {
	name, pos, hasPos := strings.Cut(v, "@")
	if name == "" {
		return fmt.Errorf("pattern %q: missing name", v)
	}
	p := Placement{Name: name, Centered: !hasPos}
	if hasPos {
		rs, cs, ok := strings.Cut(pos, ",")
		if !ok {
			return fmt.Errorf("pattern %q: position must be row,col", v)
		}
		var err error
		if p.Row, err = strconv.Atoi(strings.TrimSpace(rs)); err != nil {
			return fmt.Errorf("pattern %q: bad row: %w", v, err)
		}
		if p.Col, err = strconv.Atoi(strings.TrimSpace(cs)); err != nil {
			return fmt.Errorf("pattern %q: bad col: %w", v, err)
		}
	}
	*l = append(*l, p)
	return nil
}
