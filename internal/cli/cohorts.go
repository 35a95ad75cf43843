package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	analytics "quiz-analytics-service/internal/analytics/core/domain"
	"quiz-analytics-service/internal/facade"
)

const cohortSheet = "Cohorts"

func newCohortsCmd(opts *rootOptions) *cobra.Command {
	var (
		weeks    int
		xlsxPath string
	)

	cmd := &cobra.Command{
		Use:   "cohorts",
		Short: "Show weekly retention cohorts",
		Long: `Show the retention grid of the last N signup weeks. Weeks that have
not elapsed yet are left blank.

Examples:
  analyticsctl cohorts --weeks 12
  analyticsctl cohorts --xlsx retention.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return opts.withAnalytics(ctx, func(a Analytics) error {
				buckets, err := a.GetCohorts(ctx, weeks)
				if err != nil {
					return err
				}

				if xlsxPath != "" {
					if err := writeCohortWorkbook(xlsxPath, buckets, weeks); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "wrote %d cohorts to %s\n", len(buckets), xlsxPath)
					return nil
				}

				printCohorts(cmd, buckets, weeks)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&weeks, "weeks", "w", facade.DefaultCohortWeeks, "number of signup weeks (1-52)")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the grid to an Excel workbook instead of stdout")

	return cmd
}

func printCohorts(cmd *cobra.Command, buckets []analytics.CohortBucket, weeks int) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%-10s  %-6s", "COHORT", "USERS")
	for w := 0; w < weeks; w++ {
		fmt.Fprintf(out, "  %-6s", fmt.Sprintf("W%d", w))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("─", 18+8*weeks))

	for _, b := range buckets {
		fmt.Fprintf(out, "%-10s  %-6d", b.Week, b.Users)
		for _, v := range b.Retention {
			cell := "-"
			if v != nil {
				cell = formatPercent(*v)
			}
			fmt.Fprintf(out, "  %-6s", cell)
		}
		fmt.Fprintln(out)
	}
}

func writeCohortWorkbook(path string, buckets []analytics.CohortBucket, weeks int) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", cohortSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []any{"cohort", "week_start", "users"}
	for w := 0; w < weeks; w++ {
		header = append(header, fmt.Sprintf("week_%d", w))
	}
	if err := f.SetSheetRow(cohortSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, b := range buckets {
		row := []any{b.Week, b.WeekStart.Format(dateLayout), b.Users}
		for _, v := range b.Retention {
			if v == nil {
				row = append(row, nil)
				continue
			}
			row = append(row, *v)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(cohortSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write cohort %s: %w", b.Week, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
