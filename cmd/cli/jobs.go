package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/job-warden/internal/core"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List jobs owned by the operator account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newJobsClient()
		if err != nil {
			return err
		}

		jobs, err := client.ListJobs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list jobs: %w", err)
		}
		if len(jobs) == 0 {
			fmt.Println("No jobs found for your account.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSCHEDULE")
		for _, job := range jobs {
			fmt.Fprintf(w, "%d\t%s\t%s\n", job.ID, job.Name, scheduleLabel(job.Schedule))
		}
		return w.Flush()
	},
}

func scheduleLabel(s *core.Schedule) string {
	switch {
	case s == nil:
		return "none"
	case s.Paused():
		return color.YellowString("paused")
	default:
		return color.GreenString(s.CronExpression)
	}
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(jobsCmd)
}
