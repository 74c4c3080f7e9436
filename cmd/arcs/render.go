package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/cinderella-arcs/chart"
	"github.com/cwbudde/cinderella-arcs/narrative"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		out      string
		format   string
		dpi      float64
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the five sentiment-arc figures",
		Long: `Renders one figure per variant (raw scores, medium and heavy smoothing,
annotated key moments) and the comparative figure of all variants.

Flags override the configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			flags := cmd.Flags()
			if flags.Changed("out") {
				cfg.OutputDir = out
			}
			if flags.Changed("format") {
				cfg.Format = format
			}
			if flags.Changed("dpi") {
				cfg.DPI = dpi
			}
			if flags.Changed("parallel") {
				cfg.Parallel = parallel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			f, err := chart.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			vs := narrative.All()
			for _, v := range vs {
				fmt.Fprintf(w, "%s: %d clauses\n", v.Label(), v.Len())
			}

			figs := chart.Figures(vs, cfg.ChartOptions())
			a.logger.Debug("Rendering figures",
				zap.Int("count", len(figs)),
				zap.Float64("dpi", cfg.DPI),
				zap.Int("parallel", cfg.Parallel))

			paths, err := chart.RenderAll(cmd.Context(), figs, cfg.OutputDir, f, cfg.Parallel)
			if err != nil {
				return fmt.Errorf("failed to render figures: %w", err)
			}
			for _, p := range paths {
				a.logger.Info("Saved figure", zap.String("file", p))
				fmt.Fprintf(w, "Saved %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	cmd.Flags().StringVarP(&format, "format", "f", "png", "image format (png, svg)")
	cmd.Flags().Float64Var(&dpi, "dpi", 300, "pixel density")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0, "figures rendered at once (0 = all)")
	return cmd
}
