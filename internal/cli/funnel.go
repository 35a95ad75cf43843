package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	analyticsuc "quiz-analytics-service/internal/analytics/core/usecase"
	"quiz-analytics-service/internal/facade"
)

func newFunnelCmd(opts *rootOptions) *cobra.Command {
	var (
		rng    rangeFlags
		testID string
		steps  string
	)

	cmd := &cobra.Command{
		Use:   "funnel",
		Short: "Show the conversion funnel",
		Long: `Show step counts, rates and drop-off for the funnel.

Examples:
  analyticsctl funnel --from 2026-10-01 --to 2026-10-07
  analyticsctl funnel --test-id 7d1c... --steps test_start,test_complete`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rng.resolve(opts.now())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return opts.withAnalytics(ctx, func(a Analytics) error {
				report, err := a.GetFunnelReport(ctx, analyticsuc.GetFunnelInput{
					Range:  r,
					TestID: testID,
					Steps:  facade.ParseSteps(steps),
				})
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%-14s  %-8s  %-8s  %s\n", "STEP", "COUNT", "RATE", "DROPOFF")
				fmt.Fprintln(out, strings.Repeat("─", 44))
				for _, s := range report.Steps {
					fmt.Fprintf(out, "%-14s  %-8d  %-8s  %s\n", s.Step, s.Count, formatPercent(s.Rate), formatPercent(s.Dropoff))
				}

				if len(report.Shares) > 0 {
					fmt.Fprintln(out)
					fmt.Fprintf(out, "%-14s  %s\n", "SHARED VIA", "COUNT")
					for _, s := range report.Shares {
						fmt.Fprintf(out, "%-14s  %d\n", s.ShareChannel, s.Count)
					}
				}
				return nil
			})
		},
	}

	rng.register(cmd)
	cmd.Flags().StringVar(&testID, "test-id", "", "scope the funnel to one test")
	cmd.Flags().StringVar(&steps, "steps", "", "comma separated steps to report")

	return cmd
}
