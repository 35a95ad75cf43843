package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newChannelsCmd(opts *rootOptions) *cobra.Command {
	var (
		rng  rangeFlags
		view string
	)

	cmd := &cobra.Command{
		Use:   "channels",
		Short: "Show acquisition channel metrics",
		Long: `Show per-channel session share, conversion, or the device breakdown.

Examples:
  analyticsctl channels --view share
  analyticsctl channels --view devices --from 2026-10-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if view != "share" && view != "conversion" && view != "devices" {
				return fmt.Errorf("invalid view %q: must be share, conversion or devices", view)
			}

			r, err := rng.resolve(opts.now())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			return opts.withAnalytics(ctx, func(a Analytics) error {
				switch view {
				case "share":
					rows, err := a.GetChannelShare(ctx, r)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%-10s  %-8s  %-9s  %s\n", "CHANNEL", "SESSIONS", "CONVERTED", "SHARE")
					fmt.Fprintln(out, strings.Repeat("─", 42))
					for _, row := range rows {
						fmt.Fprintf(out, "%-10s  %-8d  %-9d  %s\n", row.Channel, row.Sessions, row.ConvertedSessions, formatPercent(row.Share))
					}

				case "conversion":
					rows, err := a.GetChannelConversion(ctx, r)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%-10s  %-8s  %-11s  %s\n", "CHANNEL", "SESSIONS", "COMPLETIONS", "RATE")
					fmt.Fprintln(out, strings.Repeat("─", 44))
					for _, row := range rows {
						fmt.Fprintf(out, "%-10s  %-8d  %-11d  %s\n", row.Channel, row.Sessions, row.Completions, formatPercent(row.ConversionRate))
					}

				case "devices":
					rows, err := a.GetDeviceBreakdown(ctx, r)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%-10s  %-8s  %-11s  %s\n", "DEVICE", "SESSIONS", "COMPLETIONS", "RATE")
					fmt.Fprintln(out, strings.Repeat("─", 44))
					for _, row := range rows {
						fmt.Fprintf(out, "%-10s  %-8d  %-11d  %s\n", row.DeviceType, row.Sessions, row.Completions, formatPercent(row.ConversionRate))
					}
				}
				return nil
			})
		},
	}

	rng.register(cmd)
	cmd.Flags().StringVar(&view, "view", "conversion", "share, conversion or devices")

	return cmd
}
