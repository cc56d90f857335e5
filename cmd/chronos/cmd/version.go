package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/mdw-chronos/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		if jsonOutput {
			_ = printJSON(w, map[string]string{
				"version":    version.Chronos,
				"api":        version.API,
				"git_commit": version.GitCommit,
				"build_date": version.BuildDate,
				"go_version": runtime.Version(),
			})
			return
		}
		fmt.Fprintf(w, "mDW Chronos v%s\n", version.Chronos)
		fmt.Fprintf(w, "  API:        %s\n", version.API)
		fmt.Fprintf(w, "  Git Commit: %s\n", version.GitCommit)
		fmt.Fprintf(w, "  Build Date: %s\n", version.BuildDate)
		fmt.Fprintf(w, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
