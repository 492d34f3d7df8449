// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/coilfield/internal/store"
	"github.com/spf13/cobra"
)

func newRunsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs [id]",
		Short: "List saved runs, or show one run in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			if len(args) == 1 {
				return showRun(cmd, db, args[0])
			}

			runs, err := db.ListRuns(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), warnStyle("no saved runs"))
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tKIND\tPRESET\tLOOPS\tCENTRE |B| [T]\tUNIFORMITY")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%.4e\t%.4f\n",
					r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Kind, r.Preset,
					len(r.Loops), r.Summary.CenterB, r.Summary.Uniformity)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to list (0 = all)")

	return cmd
}

func showRun(cmd *cobra.Command, db *store.DB, id string) error {
	r, err := db.GetRun(id)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	field(w, "ID", "%s", r.ID)
	field(w, "Created", "%s", r.CreatedAt.Local().Format(time.RFC3339))
	field(w, "Kind", "%s", r.Kind)
	field(w, "Preset", "%s (%d loops)", r.Preset, len(r.Loops))
	field(w, "Plane", "%s ±%g m, %d×%d, %d segments", r.Plane, r.Extent, r.Resolution, r.Resolution, r.Segments)

	if r.Kind != store.KindSweep {
		field(w, "Centre |B|", "%.4e T", r.Summary.CenterB)
		field(w, "Mean |B|", "%.4e T", r.Summary.MeanB)
		field(w, "Max |B|", "%.4e T", r.Summary.MaxB)
		field(w, "Uniformity", "%.4f", r.Summary.Uniformity)
		field(w, "Beta", "%.4g", r.Summary.Beta)
		return nil
	}

	pts, err := db.GetSweep(r.ID)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEPARATION [m]\tUNIFORMITY\tCENTRE |B| [T]")
	for _, p := range pts {
		fmt.Fprintf(tw, "%.4f\t%.4f\t%.4e\n", p.Separation, p.Uniformity, p.CenterB)
	}

	return tw.Flush()
}
