package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/job-warden/internal/status"
)

var failedCmd = &cobra.Command{
	Use:   "failed",
	Short: "List job runs that failed today",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newJobsClient()
		if err != nil {
			return err
		}
		loc, err := operatorLocation()
		if err != nil {
			return err
		}

		jobs, err := client.ListJobs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list jobs: %w", err)
		}

		now := time.Now().In(loc)
		found := 0
		for _, job := range jobs {
			runs, err := client.ListRuns(cmd.Context(), job.ID)
			if err != nil {
				return fmt.Errorf("failed to list runs for job %d: %w", job.ID, err)
			}
			for _, run := range runs {
				if !status.FailedToday(run, now, loc) {
					continue
				}
				found++
				color.Red("%s (run %d)", job.Name, run.ID)
				fmt.Printf("  %s – %s\n", run.StartTime.In(loc).Format("15:04"), run.EndTime.In(loc).Format("15:04"))
				if run.StateMessage != "" {
					fmt.Printf("  %s\n", run.StateMessage)
				}
			}
		}

		if found == 0 {
			color.Green("No failures today.")
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(failedCmd)
}
