package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var repairCmd = &cobra.Command{
	Use:   "repair <run-id>",
	Short: "Re-run all failed tasks of a job run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id %q: %w", args[0], err)
		}

		client, err := newJobsClient()
		if err != nil {
			return err
		}

		repairID, err := client.RepairRun(cmd.Context(), runID)
		if err != nil {
			return fmt.Errorf("repair failed: %w", err)
		}

		color.Green("Repair started for run %d (repair id %d).", runID, repairID)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(repairCmd)
}
