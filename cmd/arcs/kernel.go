package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/cinderella-arcs/dsp/filter/savgol"
)

func newKernelCmd(a *app) *cobra.Command {
	var (
		windows []int
		order   int
		coeffs  bool
	)
	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Print frequency-domain properties of smoothing kernels",
		Long: `Designs the Savitzky-Golay kernel for each window and prints its DC gain,
white-noise gain, -3 dB cutoff, first null and highest stopband ripple.
Frequencies are in cycles per clause (Nyquist = 0.5).`,
		Example: `  arcs kernel
  arcs kernel --window 5,7,9 --order 4 --coeffs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("order") {
				order = a.cfg.Smoothing.Order
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Window\tOrder\tDC Gain\tNoise Gain\tCutoff -3dB\tFirst Null\tStopband [dB]\n")
			fmt.Fprintf(tw, "------\t-----\t-------\t----------\t-----------\t----------\t-------------\n")

			var designs [][]float64
			for _, w := range windows {
				s, err := savgol.New(w, savgol.WithOrder(order))
				if err != nil {
					return fmt.Errorf("window %d: %w", w, err)
				}
				c := s.Coefficients()
				an, err := savgol.Analyze(c)
				if err != nil {
					return fmt.Errorf("window %d: %w", w, err)
				}
				a.logger.Debug("Kernel analysed", zap.Int("window", s.Window()), zap.Int("order", s.Order()))

				fmt.Fprintf(tw, "%d\t%d\t%.6f\t%.4f\t%.4f\t%.4f\t%.2f\n",
					s.Window(), s.Order(),
					an.DCGain, an.NoiseGain, an.Cutoff3dB, an.FirstNull, an.StopbandPeakdB)
				designs = append(designs, c)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if coeffs {
				w := cmd.OutOrStdout()
				for _, c := range designs {
					parts := make([]string, len(c))
					for i, x := range c {
						parts[i] = fmt.Sprintf("%.6f", x)
					}
					fmt.Fprintf(w, "\nw=%d: %s\n", len(c), strings.Join(parts, " "))
				}
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVarP(&windows, "window", "w", []int{5, savgol.DefaultWindow, 9, 15}, "window sizes")
	cmd.Flags().IntVar(&order, "order", savgol.DefaultOrder, "polynomial order")
	cmd.Flags().BoolVar(&coeffs, "coeffs", false, "also print the coefficients")
	return cmd
}
