// SPDX-License-Identifier: MIT

// Package cli implements the coilfield command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/katalvlaran/coilfield/biotsavart"
	"github.com/katalvlaran/coilfield/coil"
	"github.com/katalvlaran/coilfield/internal/config"
	"github.com/katalvlaran/coilfield/internal/logging"
	"github.com/katalvlaran/coilfield/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configKeyAnnotation on a flag overrides its flagKeys entry for one
// command.
const configKeyAnnotation = "coilfield/config-key"

// flagKeys maps command-line flag names to configuration keys. Flags are
// bound lazily for the command being executed, so commands sharing a flag
// name do not shadow each other.
var flagKeys = map[string]string{
	"log-level":    "log.level",
	"log-format":   "log.format",
	"log-file":     "log.file",
	"store":        "store.path",
	"preset":       "coil.preset",
	"radius":       "coil.radius",
	"current":      "coil.current",
	"turns":        "coil.turns",
	"separation":   "coil.separation",
	"coils-file":   "coil.file",
	"major-radius": "coil.majorRadius",
	"minor-radius": "coil.minorRadius",
	"coils":        "coil.coils",
	"extent":       "grid.extent",
	"resolution":   "grid.resolution",
	"plane":        "grid.plane",
	"segments":     "solver.segments",
	"chunk":        "solver.chunkSize",
	"workers":      "solver.workers",
	"clamp-turns":  "solver.clampTurns",
	"pressure":     "plasma.pressure",
	"from":         "sweep.fromRatio",
	"to":           "sweep.toRatio",
	"steps":        "sweep.steps",
}

// app carries per-invocation state shared by subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:          "coilfield",
		Short:        "coilfield: Biot–Savart field solver for circular current loops",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml, json or toml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", logging.FormatText, "log format: text or json")
	pf.String("log-file", "", "also append logs to this file")
	pf.String("store", "coilfield.db", "SQLite database for saved runs")

	root.AddCommand(
		newSliceCmd(a),
		newSweepCmd(a),
		newRunsCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the CLI and exits with status 1 on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// load binds the executing command's flags, resolves the configuration
// (flags > env > file > defaults), validates it and installs the logger.
func (a *app) load(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if keys := f.Annotations[configKeyAnnotation]; len(keys) == 1 {
			key, ok = keys[0], true
		}
		if ok && bindErr == nil {
			bindErr = a.v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return fmt.Errorf("bind flags: %w", bindErr)
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logging.Init(cfg.Log.File, cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	a.cfg = cfg

	return nil
}

// openStore opens the configured run database.
func (a *app) openStore() (*store.DB, error) {
	return store.Open(a.cfg.Store.Path)
}

// addCoilFlags registers the flags shared by commands that build loops.
func addCoilFlags(fs *pflag.FlagSet) {
	fs.Float64("radius", coil.DefaultRadius, "loop radius in metres")
	fs.Float64("current", coil.DefaultCurrent, "current per turn in amperes")
	fs.Int("turns", coil.DefaultTurns, "turns per loop")
	fs.Bool("clamp-turns", false, "treat loops with turns < 1 as one turn instead of failing")
}

// addGridFlags registers observation-plane and solver flags.
func addGridFlags(fs *pflag.FlagSet, extent float64) {
	fs.Float64("extent", extent, "half-width of the square observation plane in metres")
	fs.Int("resolution", 121, "samples per plane axis")
	fs.String("plane", "xz", "observation plane: xz, xy or yz")
	fs.Int("segments", biotsavart.DefaultSegments, "segments per loop")
	fs.Int("chunk", biotsavart.DefaultChunkSize, "segments summed per batch")
	fs.Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
}
