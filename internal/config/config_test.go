// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/coilfield/biotsavart"
	"github.com/katalvlaran/coilfield/coil"
	"github.com/katalvlaran/coilfield/grid"
	"github.com/katalvlaran/coilfield/internal/config"
	"github.com/katalvlaran/coilfield/sweep"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	want := config.CoilConfig{
		Preset:      config.PresetSingle,
		Radius:      coil.DefaultRadius,
		Current:     coil.DefaultCurrent,
		Turns:       coil.DefaultTurns,
		MajorRadius: coil.DefaultMajorRadius,
		MinorRadius: coil.DefaultMinorRadius,
		Coils:       coil.DefaultRingCoils,
	}
	if diff := cmp.Diff(want, cfg.Coil); diff != "" {
		t.Errorf("coil defaults mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, config.GridConfig{Extent: 0.5, Resolution: 121, Plane: "xz"}, cfg.Grid)
	assert.Equal(t, biotsavart.DefaultSegments, cfg.Solver.Segments)
	assert.Equal(t, sweep.DefaultExtent, cfg.Sweep.Extent)
	assert.Equal(t, "coilfield.db", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.ConfigPath)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coilfield.yaml")
	body := []byte(`
coil:
  preset: maxwell
  radius: 0.1
grid:
  resolution: 31
  plane: xy
solver:
  chunkSize: 64
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))
	t.Setenv("COILFIELD_GRID_EXTENT", "0.25")

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, path, cfg.ConfigPath)
	assert.Equal(t, config.PresetMaxwell, cfg.Coil.Preset)
	assert.Equal(t, 0.1, cfg.Coil.Radius)
	assert.Equal(t, config.GridConfig{Extent: 0.25, Resolution: 31, Plane: "xy"}, cfg.Grid)
	assert.Equal(t, 64, cfg.Solver.ChunkSize)

	loops, err := cfg.Loops()
	require.NoError(t, err)
	require.Len(t, loops, 2)

	g, err := cfg.PlaneGrid()
	require.NoError(t, err)
	assert.Equal(t, grid.XY, g.Plane)
	assert.Equal(t, 31*31, g.Len())

	o := biotsavart.NewOptions(cfg.SolverOptions()...)
	assert.Equal(t, 64, o.ChunkSize())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_CollectsAll(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	cfg.Coil.Preset = "dipole"
	cfg.Grid.Extent = 0
	cfg.Solver.Segments = 2
	err = cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), `unknown coil.preset "dipole"`)
	assert.Contains(t, err.Error(), "grid.extent")
	assert.Contains(t, err.Error(), "solver.segments")

	cfg, _ = config.Load(viper.New(), "")
	cfg.Coil.Preset = config.PresetFile
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}

func TestLoops_Presets(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	cases := map[string]int{
		config.PresetSingle:    1,
		config.PresetPair:      2,
		config.PresetHelmholtz: 2,
		config.PresetMaxwell:   2,
		config.PresetToroidal:  coil.DefaultRingCoils,
	}
	for preset, n := range cases {
		t.Run(preset, func(t *testing.T) {
			c := cfg
			c.Coil.Preset = preset
			loops, err := c.Loops()
			require.NoError(t, err)
			assert.Len(t, loops, n)
		})
	}

	// pair with zero separation falls back to the radius, i.e. Helmholtz spacing
	c := cfg
	c.Coil.Preset = config.PresetPair
	pair, err := c.Loops()
	require.NoError(t, err)
	c.Coil.Preset = config.PresetHelmholtz
	helm, err := c.Loops()
	require.NoError(t, err)
	assert.Equal(t, helm, pair)
}

func TestLoops_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.yaml")
	body := []byte(`loops:
  - center: [0, 0, 0]
    axis: [0, 0, 1]
    radius: 0.3
    current: 5
    turns: 2
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	cfg.Coil.Preset = config.PresetFile
	cfg.Coil.File = path
	require.NoError(t, cfg.Validate())

	loops, err := cfg.Loops()
	require.NoError(t, err)
	require.Len(t, loops, 1)
	assert.Equal(t, 0.3, loops[0].Radius)
	assert.Equal(t, 2, loops[0].Turns)
}

func TestSeparations(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	seps, err := cfg.Separations()
	require.NoError(t, err)
	require.Len(t, seps, 15)
	assert.InDelta(t, 0.2*coil.DefaultRadius, seps[0], 1e-15)
	assert.InDelta(t, 2.0*coil.DefaultRadius, seps[14], 1e-15)
}

func TestLoops_ClampTurns(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	cfg.Coil.Turns = 0

	for _, preset := range []string{config.PresetSingle, config.PresetHelmholtz, config.PresetToroidal} {
		c := cfg
		c.Coil.Preset = preset
		_, err := c.Loops()
		assert.ErrorIs(t, err, coil.ErrInvalidTurns, preset)

		c.Solver.ClampTurns = true
		loops, err := c.Loops()
		require.NoError(t, err, preset)
		for _, l := range loops {
			assert.Equal(t, 1, l.Turns, preset)
		}
	}

	cfg.Coil.Turns = -5
	cfg.Solver.ClampTurns = true
	assert.Equal(t, 1, cfg.Turns())
	cfg.Coil.Turns = 7
	assert.Equal(t, 7, cfg.Turns())
}

func TestLoops_ClampTurnsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.yaml")
	require.NoError(t, os.WriteFile(path, []byte("loops:\n  - axis: [0, 1, 0]\n    radius: 0.1\n    turns: 0\n"), 0o600))

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	cfg.Coil.Preset = config.PresetFile
	cfg.Coil.File = path

	_, err = cfg.Loops()
	assert.ErrorIs(t, err, coil.ErrInvalidTurns)

	cfg.Solver.ClampTurns = true
	loops, err := cfg.Loops()
	require.NoError(t, err)
	require.Len(t, loops, 1)
	assert.Equal(t, 1, loops[0].Turns)
}

func TestLoops_ToroidalUsesSharedTurns(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	cfg.Coil.Preset = config.PresetToroidal
	cfg.Coil.Turns = 7
	cfg.Coil.Coils = 4

	loops, err := cfg.Loops()
	require.NoError(t, err)
	require.Len(t, loops, 4)
	for _, l := range loops {
		assert.Equal(t, 7, l.Turns)
		assert.Equal(t, coil.DefaultMinorRadius, l.Radius)
	}
}

func TestSweepGrid(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	g, err := cfg.SweepGrid()
	require.NoError(t, err)
	assert.Equal(t, sweep.DefaultExtent, g.Extent)

	p, err := cfg.PlaneGrid()
	require.NoError(t, err)
	assert.Equal(t, 0.5, p.Extent)

	cfg.Sweep.Extent = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}
