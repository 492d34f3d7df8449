// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/coilfield/biotsavart"
	"github.com/katalvlaran/coilfield/coil"
	"github.com/katalvlaran/coilfield/geom"
	"github.com/katalvlaran/coilfield/grid"
	"github.com/katalvlaran/coilfield/internal/store"
	"github.com/katalvlaran/coilfield/metrics"
	"github.com/spf13/cobra"
)

func newSliceCmd(a *app) *cobra.Command {
	var (
		save    bool
		csvPath string
	)

	cmd := &cobra.Command{
		Use:   "slice",
		Short: "Solve a coil preset over a plane and summarize |B|",
		Long: `Evaluates the magnetic field of the configured coil arrangement on a
square plane grid and prints the centre field, mean and peak |B|, the
uniformity score and a toy plasma beta estimate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			loops, err := cfg.Loops()
			if err != nil {
				return err
			}
			g, err := cfg.PlaneGrid()
			if err != nil {
				return err
			}

			start := time.Now()
			b, err := biotsavart.EvaluateContext(cmd.Context(), loops, g.Points, cfg.SolverOptions()...)
			if err != nil {
				return err
			}
			slog.Info("slice solved",
				"preset", cfg.Coil.Preset,
				"loops", len(loops),
				"points", g.Len(),
				"elapsed", time.Since(start))

			sum, err := metrics.Summarize(b, g.Center(), cfg.Plasma.Pressure)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			field(w, "Preset", "%s (%d loops)", cfg.Coil.Preset, len(loops))
			field(w, "Plane", "%s ±%g m, %d×%d", g.Plane, g.Extent, g.Resolution, g.Resolution)
			field(w, "Centre |B|", "%.4e T", sum.CenterB)
			field(w, "Mean |B|", "%.4e T", sum.MeanB)
			field(w, "Max |B|", "%.4e T", sum.MaxB)
			field(w, "Uniformity", "%.4f", sum.Uniformity)
			field(w, "Beta", "%.4g", sum.Beta)

			if csvPath != "" {
				if err := writeFieldCSV(csvPath, g, b); err != nil {
					return err
				}
				field(w, "CSV", "%s", csvPath)
			}

			if save {
				db, err := a.openStore()
				if err != nil {
					return err
				}
				defer db.Close()
				run, err := db.SaveRun(store.Run{
					Kind:       store.KindSlice,
					Preset:     cfg.Coil.Preset,
					Loops:      loops,
					Plane:      g.Plane.String(),
					Extent:     g.Extent,
					Resolution: g.Resolution,
					Segments:   cfg.Solver.Segments,
					Summary:    sum,
				})
				if err != nil {
					return err
				}
				field(w, "Saved", "%s", run.ID)
			}

			return nil
		},
	}

	fs := cmd.Flags()
	fs.String("preset", "single", "coil preset: single, pair, helmholtz, maxwell, toroidal, file")
	addCoilFlags(fs)
	fs.Float64("separation", 0, "pair preset separation in metres (0 = radius)")
	fs.String("coils-file", "", "YAML coil set for the file preset")
	fs.Float64("major-radius", coil.DefaultMajorRadius, "toroidal preset ring radius in metres")
	fs.Float64("minor-radius", coil.DefaultMinorRadius, "toroidal preset coil radius in metres")
	fs.Int("coils", coil.DefaultRingCoils, "toroidal preset coil count")
	addGridFlags(fs, 0.5)
	fs.Float64("pressure", 200, "plasma pressure in pascals for the beta estimate")
	fs.BoolVar(&save, "save", false, "persist the run summary to the store")
	fs.StringVar(&csvPath, "csv", "", "write u,v,bx,by,bz,b per grid point to this file")

	return cmd
}

// writeFieldCSV dumps the sampled field, one row per grid point in
// row-major order.
func writeFieldCSV(path string, g *grid.PlaneGrid, b []geom.Vec3) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"u", "v", "bx", "by", "bz", "b"}); err != nil {
		return err
	}
	ff := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	for k, v := range b {
		u, vv := g.UV(k)
		if err := cw.Write([]string{ff(u), ff(vv), ff(v.X), ff(v.Y), ff(v.Z), ff(v.Norm())}); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	return f.Close()
}
