package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveRef string

var resolveCmd = &cobra.Command{
	Use:   "resolve <timex>...",
	Short: "Resolve TIMEX values against a reference date",
	Long: `Resolves TIMEX values into concrete dates, times and ranges.
Ambiguous values such as weekdays yield the past and the future candidate.

Examples:
  chronos resolve XXXX-WXX-5 --ref 2024-01-10
  chronos resolve 2017-W37 TMO PT2H
  chronos resolve --ref "2024-01-10 14:30" PRESENT_REF`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVar(&resolveRef, "ref", "", "reference date (default: now)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	ref, err := svc.ParseReference(resolveRef)
	if err != nil {
		return err
	}

	resolution, err := svc.Resolve(cmd.Context(), args, ref)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resolution)
	}

	w := cmd.OutOrStdout()
	if len(resolution.Values) == 0 {
		fmt.Fprintln(w, typeStyle.Render("no values"))
		return nil
	}
	for _, e := range resolution.Values {
		value := e.Value
		if value == "" {
			value = e.Start + " - " + e.End
		}
		fmt.Fprintf(w, "%s %s %s\n",
			keyStyle.Render(e.Timex), typeStyle.Render(fmt.Sprintf("%-13s", e.Type)), valueStyle.Render(value))
	}
	return nil
}
