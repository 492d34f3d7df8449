// SPDX-License-Identifier: MIT

// Package config loads coilfield settings from defaults, an optional config
// file, COILFIELD_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/coilfield/biotsavart"
	"github.com/katalvlaran/coilfield/coil"
	"github.com/katalvlaran/coilfield/grid"
	"github.com/katalvlaran/coilfield/sweep"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. COILFIELD_GRID_RESOLUTION.
const EnvPrefix = "COILFIELD"

// Preset names accepted by CoilConfig.Preset.
const (
	PresetSingle    = "single"
	PresetPair      = "pair"
	PresetHelmholtz = "helmholtz"
	PresetMaxwell   = "maxwell"
	PresetToroidal  = "toroidal"
	PresetFile      = "file"
)

// ErrInvalid marks a configuration that fails Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the fully resolved application configuration.
type Config struct {
	Coil   CoilConfig   `mapstructure:"coil"`
	Grid   GridConfig   `mapstructure:"grid"`
	Solver SolverConfig `mapstructure:"solver"`
	Plasma PlasmaConfig `mapstructure:"plasma"`
	Sweep  SweepConfig  `mapstructure:"sweep"`
	Store  StoreConfig  `mapstructure:"store"`
	Log    LogConfig    `mapstructure:"log"`

	// ConfigPath is the file actually read, empty when none was found.
	ConfigPath string `mapstructure:"-"`
}

// CoilConfig selects and parameterizes the coil arrangement.
type CoilConfig struct {
	Preset      string  `mapstructure:"preset"`
	Radius      float64 `mapstructure:"radius"`
	Current     float64 `mapstructure:"current"`
	Turns       int     `mapstructure:"turns"`
	Separation  float64 `mapstructure:"separation"` // pair preset; 0 ⇒ radius
	MajorRadius float64 `mapstructure:"majorRadius"`
	MinorRadius float64 `mapstructure:"minorRadius"`
	Coils       int     `mapstructure:"coils"`
	File        string  `mapstructure:"file"` // YAML coil set for the file preset
}

// GridConfig describes the observation plane.
type GridConfig struct {
	Extent     float64 `mapstructure:"extent"`
	Resolution int     `mapstructure:"resolution"`
	Plane      string  `mapstructure:"plane"`
}

// SolverConfig tunes the Biot–Savart evaluator.
type SolverConfig struct {
	Segments   int  `mapstructure:"segments"`
	ChunkSize  int  `mapstructure:"chunkSize"`
	Workers    int  `mapstructure:"workers"`
	ClampTurns bool `mapstructure:"clampTurns"`
}

// PlasmaConfig feeds the toy beta estimate.
type PlasmaConfig struct {
	Pressure float64 `mapstructure:"pressure"` // Pa
}

// SweepConfig sets the Helmholtz-pair separation range as multiples of
// the coil radius, and the half-width of the sampled plane.
type SweepConfig struct {
	FromRatio float64 `mapstructure:"fromRatio"`
	ToRatio   float64 `mapstructure:"toRatio"`
	Steps     int     `mapstructure:"steps"`
	Extent    float64 `mapstructure:"extent"`
}

// StoreConfig locates the run database.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig configures slog.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("coil.preset", PresetSingle)
	v.SetDefault("coil.radius", coil.DefaultRadius)
	v.SetDefault("coil.current", coil.DefaultCurrent)
	v.SetDefault("coil.turns", coil.DefaultTurns)
	v.SetDefault("coil.separation", 0.0)
	v.SetDefault("coil.majorRadius", coil.DefaultMajorRadius)
	v.SetDefault("coil.minorRadius", coil.DefaultMinorRadius)
	v.SetDefault("coil.coils", coil.DefaultRingCoils)
	v.SetDefault("coil.file", "")

	v.SetDefault("grid.extent", 0.5)
	v.SetDefault("grid.resolution", 121)
	v.SetDefault("grid.plane", grid.XZ.String())

	v.SetDefault("solver.segments", biotsavart.DefaultSegments)
	v.SetDefault("solver.chunkSize", biotsavart.DefaultChunkSize)
	v.SetDefault("solver.workers", 0)
	v.SetDefault("solver.clampTurns", biotsavart.DefaultClampTurns)

	v.SetDefault("plasma.pressure", 200.0)

	v.SetDefault("sweep.fromRatio", sweep.DefaultFromRatio)
	v.SetDefault("sweep.toRatio", sweep.DefaultToRatio)
	v.SetDefault("sweep.steps", sweep.DefaultSteps)
	v.SetDefault("sweep.extent", sweep.DefaultExtent)

	v.SetDefault("store.path", "coilfield.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
}

// Load resolves a Config from v. When path is non-empty the file must
// exist; otherwise a missing file is not an error. Environment variables
// with EnvPrefix override file values.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}

// Validate checks ranges that the solver and presets would otherwise reject
// later with less context.
func (c Config) Validate() error {
	var errs []error
	switch c.Coil.Preset {
	case PresetSingle, PresetPair, PresetHelmholtz, PresetMaxwell, PresetToroidal:
	case PresetFile:
		if strings.TrimSpace(c.Coil.File) == "" {
			errs = append(errs, errors.New("coil.file is required for the file preset"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown coil.preset %q", c.Coil.Preset))
	}
	if c.Grid.Extent <= 0 {
		errs = append(errs, fmt.Errorf("grid.extent must be > 0, got %g", c.Grid.Extent))
	}
	if c.Grid.Resolution < 1 {
		errs = append(errs, fmt.Errorf("grid.resolution must be >= 1, got %d", c.Grid.Resolution))
	}
	if _, err := grid.ParsePlane(c.Grid.Plane); err != nil {
		errs = append(errs, err)
	}
	if c.Solver.Segments < 3 {
		errs = append(errs, fmt.Errorf("solver.segments must be >= 3, got %d", c.Solver.Segments))
	}
	if c.Solver.ChunkSize < 1 {
		errs = append(errs, fmt.Errorf("solver.chunkSize must be >= 1, got %d", c.Solver.ChunkSize))
	}
	if c.Solver.Workers < 0 {
		errs = append(errs, fmt.Errorf("solver.workers must be >= 0, got %d", c.Solver.Workers))
	}
	if c.Sweep.Steps < 1 {
		errs = append(errs, fmt.Errorf("sweep.steps must be >= 1, got %d", c.Sweep.Steps))
	}
	if c.Sweep.Extent <= 0 {
		errs = append(errs, fmt.Errorf("sweep.extent must be > 0, got %g", c.Sweep.Extent))
	}
	if c.Plasma.Pressure < 0 {
		errs = append(errs, fmt.Errorf("plasma.pressure must be >= 0, got %g", c.Plasma.Pressure))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}

// Separations expands the sweep section for the configured coil radius.
func (c Config) Separations() ([]float64, error) {
	return sweep.Separations(c.Coil.Radius, c.Sweep.FromRatio, c.Sweep.ToRatio, c.Sweep.Steps)
}

// SolverOptions converts the solver section into biotsavart options.
// Call Validate first; invalid values panic inside the option constructors.
func (c Config) SolverOptions() []biotsavart.Option {
	opts := []biotsavart.Option{
		biotsavart.WithSegments(c.Solver.Segments),
		biotsavart.WithChunkSize(c.Solver.ChunkSize),
		biotsavart.WithWorkers(c.Solver.Workers),
	}
	if c.Solver.ClampTurns {
		opts = append(opts, biotsavart.WithClampTurns())
	}

	return opts
}

// PlaneGrid builds the observation grid described by the grid section.
func (c Config) PlaneGrid() (*grid.PlaneGrid, error) {
	plane, err := grid.ParsePlane(c.Grid.Plane)
	if err != nil {
		return nil, err
	}

	return grid.NewPlaneGrid(c.Grid.Extent, c.Grid.Resolution, plane)
}

// SweepGrid is PlaneGrid with the sweep section's extent.
func (c Config) SweepGrid() (*grid.PlaneGrid, error) {
	plane, err := grid.ParsePlane(c.Grid.Plane)
	if err != nil {
		return nil, err
	}

	return grid.NewPlaneGrid(c.Sweep.Extent, c.Grid.Resolution, plane)
}

// Turns returns the configured turns, clamped to >= 1 when
// solver.clampTurns is set.
func (c Config) Turns() int {
	if c.Solver.ClampTurns {
		return coil.ClampTurns(c.Coil.Turns)
	}

	return c.Coil.Turns
}

// Loops resolves the coil preset into loops. Every preset, the toroidal
// ring included, uses coil.turns; with solver.clampTurns, turns < 1 become 1
// here, before loop validation.
func (c Config) Loops() ([]coil.Loop, error) {
	k := c.Coil
	turns := c.Turns()
	switch k.Preset {
	case PresetSingle:
		return coil.SingleLoop(k.Radius, k.Current, turns)
	case PresetPair:
		sep := k.Separation
		if sep == 0 {
			sep = k.Radius
		}
		return coil.CoaxialPair(k.Radius, k.Current, turns, sep)
	case PresetHelmholtz:
		return coil.HelmholtzPair(k.Radius, k.Current, turns)
	case PresetMaxwell:
		return coil.MaxwellPair(k.Radius, k.Current, turns)
	case PresetToroidal:
		return coil.ToroidalRing(k.MajorRadius, k.MinorRadius, k.Current, turns, k.Coils)
	case PresetFile:
		if c.Solver.ClampTurns {
			return coil.ReadSetFile(k.File, coil.WithClampedTurns())
		}
		return coil.ReadSetFile(k.File)
	default:
		return nil, fmt.Errorf("%w: unknown coil.preset %q", ErrInvalid, k.Preset)
	}
}
