package cmd

import "github.com/spf13/cobra"

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Register the bootstrap sequence as a Task Scheduler job",
	Long: `
Schedule registers a Windows Task Scheduler job that re-runs 'buildprep bootstrap --auto' when the agent boots, so a recycled agent prepares itself before the first build lands. Only supported on Windows.

Example:
  $ buildprep schedule
	`,

	Run: func(cmd *cobra.Command, args []string) {
		if err := registerBootstrapTask(); err != nil {
			fatal(err.Error(), 1)
		}

		printSuccessText("✔ Bootstrap task registered")
	},
}

func init() {
	RootCmd.AddCommand(scheduleCmd)
}
