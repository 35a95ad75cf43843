// Package cli is the analyticsctl command tree. Every command reads through
// the facade, the same entry point the HTTP API uses.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	analytics "quiz-analytics-service/internal/analytics/core/domain"
	analyticsuc "quiz-analytics-service/internal/analytics/core/usecase"
	results "quiz-analytics-service/internal/results/core/domain"
)

const dateLayout = "2006-01-02"

// Analytics is the part of the facade the commands use.
type Analytics interface {
	GetFunnelReport(ctx context.Context, in analyticsuc.GetFunnelInput) (*analytics.FunnelReport, error)
	GetCohorts(ctx context.Context, weeks int) ([]analytics.CohortBucket, error)
	GetChannelShare(ctx context.Context, r analytics.DateRange) ([]analytics.ChannelShareRow, error)
	GetChannelConversion(ctx context.Context, r analytics.DateRange) ([]analytics.ChannelConversionRow, error)
	GetDeviceBreakdown(ctx context.Context, r analytics.DateRange) ([]analytics.DeviceRow, error)
	ResolveSession(ctx context.Context, testID, sessionID string) (*results.TestResult, error)
}

// Opener connects to the store behind dsn. The returned closer is called once
// the command finishes.
type Opener func(ctx context.Context, dsn string, verbose bool) (Analytics, io.Closer, error)

type rootOptions struct {
	dsn     string
	verbose bool
	open    Opener
	now     func() time.Time
}

// withAnalytics opens the store, runs fn and closes the store.
func (o *rootOptions) withAnalytics(ctx context.Context, fn func(Analytics) error) error {
	if o.dsn == "" {
		return fmt.Errorf("no database configured: pass --dsn or set POSTGRES_DSN")
	}

	a, closer, err := o.open(ctx, o.dsn, o.verbose)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closer.Close()

	return fn(a)
}

// NewRootCmd builds the command tree on top of open.
func NewRootCmd(open Opener) *cobra.Command {
	return newRootCmd(open, time.Now)
}

func newRootCmd(open Opener, now func() time.Time) *cobra.Command {
	opts := &rootOptions{open: open, now: now}

	root := &cobra.Command{
		Use:           "analyticsctl",
		Short:         "Quiz analytics from the command line",
		Long:          `Reports the funnel, cohort retention and channel metrics, and resolves session results, straight from Postgres.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.dsn, "dsn", os.Getenv("POSTGRES_DSN"), "postgres connection string")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newFunnelCmd(opts),
		newCohortsCmd(opts),
		newChannelsCmd(opts),
		newResolveCmd(opts),
	)

	return root
}

// Execute runs the command tree against Postgres.
func Execute() error {
	root := NewRootCmd(OpenPostgres)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

type rangeFlags struct {
	from string
	to   string
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "first day, YYYY-MM-DD (default 7 days ago)")
	cmd.Flags().StringVar(&f.to, "to", "", "last day, YYYY-MM-DD, inclusive (default today)")
}

// resolve turns the day flags into an inclusive UTC range covering whole days.
func (f *rangeFlags) resolve(now time.Time) (analytics.DateRange, error) {
	today := now.UTC().Truncate(24 * time.Hour)

	to := today
	if f.to != "" {
		t, err := time.Parse(dateLayout, f.to)
		if err != nil {
			return analytics.DateRange{}, fmt.Errorf("invalid --to %q: want YYYY-MM-DD", f.to)
		}
		to = t
	}

	from := to.AddDate(0, 0, -7)
	if f.from != "" {
		t, err := time.Parse(dateLayout, f.from)
		if err != nil {
			return analytics.DateRange{}, fmt.Errorf("invalid --from %q: want YYYY-MM-DD", f.from)
		}
		from = t
	}

	return analytics.DateRange{From: from, To: to.Add(24*time.Hour - time.Nanosecond)}, nil
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
