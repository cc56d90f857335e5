package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <timex>...",
	Short: "Parse TIMEX values and show their types",
	Long: `Parses TIMEX values and prints the canonical form and inferred types.

Examples:
  chronos parse 2017-09-27T14:30
  chronos parse XXXX-09-WXX-2 "(T14,T16,PT2H)"
  chronos parse --json PRESENT_REF`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

type parseOutput struct {
	Timex     string   `json:"timex"`
	Canonical string   `json:"canonical"`
	Types     []string `json:"types"`
}

func runParse(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	results := make([]parseOutput, 0, len(args))
	for _, arg := range args {
		r, err := svc.Parse(cmd.Context(), arg)
		if err != nil {
			return err
		}
		results = append(results, parseOutput{Timex: r.Timex, Canonical: r.Canonical, Types: r.Types})
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), results)
	}
	for _, r := range results {
		printBlock(cmd.OutOrStdout(), r.Timex, []field{
			{"canonical", r.Canonical},
			{"types", strings.Join(r.Types, ", ")},
		})
	}
	return nil
}
