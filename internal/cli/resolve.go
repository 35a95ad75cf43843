package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <test-id> <session-id>",
		Short: "Resolve the result of a finished session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			testID, sessionID := args[0], args[1]

			ctx := cmd.Context()
			return opts.withAnalytics(ctx, func(a Analytics) error {
				res, err := a.ResolveSession(ctx, testID, sessionID)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if res == nil {
					fmt.Fprintln(out, "no matching result")
					return nil
				}
				fmt.Fprintf(out, "RESULT: %s\n", res.ID)
				fmt.Fprintf(out, "TITLE:  %s\n", res.Title)
				fmt.Fprintf(out, "ORDER:  %d\n", res.Order)
				return nil
			})
		},
	}
}
