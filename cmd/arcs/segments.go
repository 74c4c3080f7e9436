package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/cinderella-arcs/narrative"
	"github.com/cwbudde/cinderella-arcs/stats/series"
)

func newSegmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "segments <variant>",
		Short: "Print the narrative segments and annotated moments of a variant",
		Long: `Lists the named clause ranges of a variant with their mean sentiment,
followed by the annotated key moments and their original-language glosses.
Segments marked "+" were added in that edition.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := narrative.Lookup(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s, %s (%d clauses)\n\n", v.Label(), v.Origin, v.Len())

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Segment\tClauses\tLen\tMean\tMin\tMax\t\n")
			fmt.Fprintf(tw, "-------\t-------\t---\t----\t---\t---\t\n")
			for _, s := range v.Segments() {
				st := series.Calculate(series.Ints(v.SegmentScores(s)))
				mark := ""
				if s.Added {
					mark = "+"
				}
				fmt.Fprintf(tw, "%s\t%d-%d\t%d\t%+.2f\t%.0f\t%.0f\t%s\n",
					s.Name, s.From, s.To, s.Len(), st.Mean, st.Min, st.Max, mark)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if ann := v.Annotations(); len(ann) > 0 {
				fmt.Fprintf(w, "\nKey moments:\n")
				for _, an := range ann {
					seg := ""
					if s, ok := v.SegmentAt(an.Clause); ok {
						seg = " [" + s.Name + "]"
					}
					fmt.Fprintf(w, "  %3d  %+d  %s%s\n", an.Clause, an.Sentiment, an.Label, seg)
					if an.Gloss != "" {
						fmt.Fprintf(w, "           %s\n", an.Gloss)
					}
				}
			}
			return nil
		},
	}
}
