package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/cinderella-arcs/dsp/filter/savgol"
	"github.com/cwbudde/cinderella-arcs/narrative"
	"github.com/cwbudde/cinderella-arcs/stats/series"
)

func newStatsCmd(a *app) *cobra.Command {
	var window int
	cmd := &cobra.Command{
		Use:   "stats [variant ...]",
		Short: "Print summary statistics of raw and smoothed scores",
		Long: `Prints length, moments, extremes and sign changes of each variant's
raw scores and of the scores smoothed with --window. Without arguments all
variants are listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("window") {
				window = a.cfg.Smoothing.MediumWindow
			}
			vs, err := resolveVariants(args)
			if err != nil {
				return err
			}

			order := savgol.WithOrder(a.cfg.Smoothing.Order)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Variant\tSeries\tClauses\tMean\tStdDev\tSkew\tMin (pos)\tMax (pos)\tChanges\tPos\tNeg\tNeutral\n")
			fmt.Fprintf(tw, "-------\t------\t-------\t----\t------\t----\t---------\t---------\t-------\t---\t---\t-------\n")
			for _, v := range vs {
				rows := []struct {
					name string
					data []float64
				}{
					{"raw", v.Values()},
					{fmt.Sprintf("w=%d", window), v.Smoothed(window, order)},
				}
				for _, r := range rows {
					s := series.Calculate(r.data)
					fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\t%.3f\t%.3f\t%.2f (%d)\t%.2f (%d)\t%d\t%.2f\t%.2f\t%.2f\n",
						v.Label(), r.name, s.Length,
						s.Mean, s.StdDev, s.Skewness,
						s.Min, s.MinPos+1, s.Max, s.MaxPos+1,
						s.SignChanges, s.Positive, s.Negative, s.Neutral)
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&window, "window", "w", savgol.DefaultWindow, "smoothing window")
	return cmd
}

// resolveVariants maps keys to variants; no keys selects all of them.
func resolveVariants(keys []string) ([]*narrative.Variant, error) {
	if len(keys) == 0 {
		return narrative.All(), nil
	}
	vs := make([]*narrative.Variant, 0, len(keys))
	for _, k := range keys {
		v, err := narrative.Lookup(k)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}
