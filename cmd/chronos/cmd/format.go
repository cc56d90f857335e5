package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/msto63/mdw-chronos/pkg/timex"
)

// formatFlags maps command line flags to TIMEX group names
var formatFlags = []struct {
	flag  string
	group string
	usage string
}{
	{"year", "year", "year, e.g. 2017"},
	{"month", "month", "month 1-12"},
	{"day", "dayOfMonth", "day of month 1-31"},
	{"weekday", "dayOfWeek", "ISO weekday 1 (Monday) - 7 (Sunday)"},
	{"week-of-year", "weekOfYear", "ISO week of year"},
	{"week-of-month", "weekOfMonth", "week of month"},
	{"season", "season", "season code SP, SU, FA or WI"},
	{"hour", "hour", "hour 0-24"},
	{"minute", "minute", "minute 0-59"},
	{"second", "second", "second 0-59"},
	{"part-of-day", "partOfDay", "part of day MO, AF, EV, NI or DT"},
}

var (
	formatValues  = make(map[string]*string, len(formatFlags))
	formatWeekend bool
	formatAmount  string
	formatUnit    string
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Build a TIMEX value from its components",
	Long: `Builds a TIMEX value from date, time and duration components.

Examples:
  chronos format --year 2017 --month 9 --day 27 --hour 14
  chronos format --weekday 5 --part-of-day EV
  chronos format --year 2017 --week-of-year 37 --weekend
  chronos format --amount 2 --unit hours`,
	Args: cobra.NoArgs,
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	for _, f := range formatFlags {
		formatValues[f.group] = formatCmd.Flags().String(f.flag, "", f.usage)
	}
	formatCmd.Flags().BoolVar(&formatWeekend, "weekend", false, "weekend of the given week")
	formatCmd.Flags().StringVar(&formatAmount, "amount", "", "duration amount, e.g. 1.5")
	formatCmd.Flags().StringVar(&formatUnit, "unit", "day", "duration unit (year, month, week, day, hour, minute, second)")
}

func runFormat(cmd *cobra.Command, args []string) error {
	fields := make(map[string]string)
	for group, value := range formatValues {
		if *value != "" {
			fields[group] = *value
		}
	}
	if formatWeekend {
		fields["weekend"] = "WE"
	}

	p := &timex.Property{}
	if err := p.AssignProperties(fields); err != nil {
		return err
	}

	if formatAmount != "" {
		unit, err := timex.ParseUnit(formatUnit)
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(formatAmount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", formatAmount, err)
		}
		mergeDuration(p, unit.Duration(amount))
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	text, err := svc.Format(cmd.Context(), p)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("the given components do not form a TIMEX value")
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]string{"timex": text})
	}
	fmt.Fprintln(cmd.OutOrStdout(), valueStyle.Render(text))
	return nil
}

func mergeDuration(p, d *timex.Property) {
	if d.Years != nil {
		p.Years = d.Years
	}
	if d.Months != nil {
		p.Months = d.Months
	}
	if d.Weeks != nil {
		p.Weeks = d.Weeks
	}
	if d.Days != nil {
		p.Days = d.Days
	}
	if d.Hours != nil {
		p.Hours = d.Hours
	}
	if d.Minutes != nil {
		p.Minutes = d.Minutes
	}
	if d.Seconds != nil {
		p.Seconds = d.Seconds
	}
}
