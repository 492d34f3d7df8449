// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/katalvlaran/coilfield/coil"
	"github.com/katalvlaran/coilfield/internal/store"
	"github.com/katalvlaran/coilfield/sweep"
	"github.com/spf13/cobra"
)

func newSweepCmd(a *app) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep the separation of a coaxial pair and report uniformity",
		Long: `Evaluates a coaxial pair of identical loops at evenly spaced separations
between --from and --to times the radius and prints the uniformity score and
centre field of each step. The most uniform step is highlighted. The plane
defaults to a ±0.3 m half-width (sweep.extent), independent of grid.extent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			seps, err := cfg.Separations()
			if err != nil {
				return err
			}
			g, err := cfg.SweepGrid()
			if err != nil {
				return err
			}

			pts, err := sweep.Run(cmd.Context(), sweep.Config{
				Radius:      cfg.Coil.Radius,
				Current:     cfg.Coil.Current,
				Turns:       cfg.Turns(),
				Separations: seps,
				Solver:      cfg.SolverOptions(),
				Logger:      slog.Default(),
			}, g.Points, g.Center())
			if err != nil {
				return err
			}
			best, _ := sweep.Best(pts)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SEPARATION [m]\tSEP/R\tUNIFORMITY\tCENTRE |B| [T]\t")
			for _, p := range pts {
				mark := ""
				if p == best {
					mark = bestStyle("best")
				}
				fmt.Fprintf(tw, "%.4f\t%.3f\t%.4f\t%.4e\t%s\n",
					p.Separation, p.Separation/cfg.Coil.Radius, p.Uniformity, p.CenterB, mark)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if save {
				db, err := a.openStore()
				if err != nil {
					return err
				}
				defer db.Close()
				loops, err := sweepLoops(cfg.Coil.Radius, cfg.Coil.Current, cfg.Turns(), best.Separation)
				if err != nil {
					return err
				}
				run, err := db.SaveSweep(store.Run{
					Preset:     "pair",
					Loops:      loops,
					Plane:      g.Plane.String(),
					Extent:     g.Extent,
					Resolution: g.Resolution,
					Segments:   cfg.Solver.Segments,
				}, pts)
				if err != nil {
					return err
				}
				field(cmd.OutOrStdout(), "Saved", "%s", run.ID)
			}

			return nil
		},
	}

	fs := cmd.Flags()
	addCoilFlags(fs)
	fs.Float64("from", sweep.DefaultFromRatio, "first separation as a multiple of the radius")
	fs.Float64("to", sweep.DefaultToRatio, "last separation as a multiple of the radius")
	fs.Int("steps", sweep.DefaultSteps, "number of separations")
	addGridFlags(fs, sweep.DefaultExtent)
	_ = fs.SetAnnotation("extent", configKeyAnnotation, []string{"sweep.extent"})
	fs.BoolVar(&save, "save", false, "persist the sweep to the store")

	return cmd
}

// sweepLoops rebuilds the pair recorded with a sweep run.
func sweepLoops(radius, current float64, turns int, separation float64) ([]coil.Loop, error) {
	if separation <= 0 {
		separation = radius
	}

	return coil.CoaxialPair(radius, current, turns, separation)
}
