package cmd

import (
	"github.com/spf13/cobra"
)

var (
	evaluateCandidates  []string
	evaluateConstraints []string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Narrow candidate TIMEX values by constraints",
	Long: `Resolves candidate TIMEX values against date range, time and time
range constraints.

Examples:
  chronos evaluate --candidate XXXX-WXX-3 --constraint "(2017-09-01,2017-09-15,P14D)"
  chronos evaluate -c XXXX-WXX-3T04 -c XXXX-WXX-3T16 \
      -k "(2017-09-01,2017-09-08,P7D)" -k "(T14,T18,PT4H)"`,
	Args: cobra.NoArgs,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().StringArrayVarP(&evaluateCandidates, "candidate", "c", nil, "candidate TIMEX (repeatable)")
	evaluateCmd.Flags().StringArrayVarP(&evaluateConstraints, "constraint", "k", nil, "constraint TIMEX (repeatable)")
	_ = evaluateCmd.MarkFlagRequired("candidate")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	results, err := svc.Evaluate(cmd.Context(), evaluateCandidates, evaluateConstraints)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string][]string{"timex": results})
	}
	printList(cmd.OutOrStdout(), "Resolved", results)
	return nil
}
