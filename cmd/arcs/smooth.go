package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/cinderella-arcs/dsp/filter/savgol"
	"github.com/cwbudde/cinderella-arcs/narrative"
)

func newSmoothCmd(a *app) *cobra.Command {
	var window, order int
	cmd := &cobra.Command{
		Use:   "smooth <variant|->",
		Short: "Print raw and smoothed scores clause by clause",
		Long: `Prints one row per clause: the clause number, the raw score and the
smoothed value. Pass "-" to smooth whitespace-separated numbers from stdin.`,
		Example: `  arcs smooth perrault --window 9
  echo "1 -2 3 0 4 -1 2 5" | arcs smooth - --window 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("window") {
				window = a.cfg.Smoothing.MediumWindow
			}
			if !cmd.Flags().Changed("order") {
				order = a.cfg.Smoothing.Order
			}
			sm, err := savgol.New(window, savgol.WithOrder(order))
			if err != nil {
				return err
			}

			var raw []float64
			if args[0] == "-" {
				if raw, err = readValues(cmd.InOrStdin()); err != nil {
					return err
				}
			} else {
				v, err := narrative.Lookup(args[0])
				if err != nil {
					return err
				}
				raw = v.Values()
			}
			if len(raw) < sm.Window() {
				a.logger.Warn("Series shorter than window, returned unchanged",
					zap.Int("length", len(raw)),
					zap.Int("window", sm.Window()))
			}

			smooth := sm.Process(raw)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(tw, "clause\traw\tsmoothed\t\n")
			for i := range raw {
				fmt.Fprintf(tw, "%d\t%g\t%.4f\t\n", i+1, raw[i], smooth[i])
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&window, "window", "w", savgol.DefaultWindow, "window size (even sizes are rounded up)")
	cmd.Flags().IntVar(&order, "order", savgol.DefaultOrder, "polynomial order")
	return cmd
}

// readValues parses whitespace-separated numbers.
func readValues(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var out []float64
	for sc.Scan() {
		x, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", sc.Text(), err)
		}
		out = append(out, x)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return out, nil
}
