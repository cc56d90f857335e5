package cmd

import (
	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand <timex>",
	Short: "Expand a range into start, end and duration",
	Long: `Expands a date, time or date-time range into start, end and duration.

Examples:
  chronos expand 2017-W37
  chronos expand TNI
  chronos expand "(2017-09-27,2017-09-29,P2D)"`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	r, err := svc.Expand(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]string{
			"timex":    r.Timex,
			"kind":     r.Kind,
			"start":    r.Start,
			"end":      r.End,
			"duration": r.Duration,
		})
	}
	printBlock(cmd.OutOrStdout(), r.Timex, []field{
		{"kind", r.Kind},
		{"start", r.Start},
		{"end", r.End},
		{"duration", r.Duration},
	})
	return nil
}
