// Package databricks adapts the Databricks workspace SDK to the operations
// the bot needs, scoped to the configured operator.
package databricks

import (
	"context"
	"fmt"
	"log/slog"

	dbsdk "github.com/databricks/databricks-sdk-go"
	"github.com/databricks/databricks-sdk-go/service/jobs"

	"github.com/sevigo/job-warden/internal/core"
)

type workspaceClient struct {
	w             *dbsdk.WorkspaceClient
	operatorEmail string
	logger        *slog.Logger
}

// NewClient connects to the Databricks workspace at host using a personal
// access token and returns a core.JobsClient whose listings are restricted
// to jobs created by operatorEmail. The ownership filter lives here, at the
// boundary, so no caller can see another account's jobs.
func NewClient(host, token, operatorEmail string, logger *slog.Logger) (core.JobsClient, error) {
	w, err := dbsdk.NewWorkspaceClient(&dbsdk.Config{
		Host:  host,
		Token: token,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace client: %w", err)
	}
	return &workspaceClient{w: w, operatorEmail: operatorEmail, logger: logger}, nil
}

// ListJobs returns the operator's jobs.
func (c *workspaceClient) ListJobs(ctx context.Context) ([]core.Job, error) {
	all, err := c.w.Jobs.ListAll(ctx, jobs.ListJobsRequest{})
	if err != nil {
		c.logger.Error("failed to list jobs", "error", err)
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return ownedJobs(all, c.operatorEmail), nil
}

// ListRuns returns all recorded runs of the given job.
func (c *workspaceClient) ListRuns(ctx context.Context, jobID int64) ([]core.Run, error) {
	all, err := c.w.Jobs.ListRunsAll(ctx, jobs.ListRunsRequest{
		JobId:       jobID,
		ExpandTasks: false,
	})
	if err != nil {
		c.logger.Error("failed to list runs", "job_id", jobID, "error", err)
		return nil, fmt.Errorf("list runs for job %d: %w", jobID, err)
	}
	runs := make([]core.Run, 0, len(all))
	for i := range all {
		runs = append(runs, runFromSDK(&all[i]))
	}
	return runs, nil
}

// GetJob fetches one job with its current settings. Jobs owned by other
// accounts are reported as not found.
func (c *workspaceClient) GetJob(ctx context.Context, jobID int64) (*core.Job, error) {
	job, err := c.w.Jobs.Get(ctx, jobs.GetJobRequest{JobId: jobID})
	if err != nil {
		c.logger.Error("failed to get job", "job_id", jobID, "error", err)
		return nil, fmt.Errorf("get job %d: %w", jobID, err)
	}
	if job.CreatorUserName != c.operatorEmail {
		return nil, fmt.Errorf("job %d not found", jobID)
	}
	converted := jobFromSDK(jobID, job.CreatorUserName, job.Settings)
	return &converted, nil
}

// RepairRun reruns all failed tasks of the run and returns the repair run id.
func (c *workspaceClient) RepairRun(ctx context.Context, runID int64) (int64, error) {
	wait, err := c.w.Jobs.RepairRun(ctx, jobs.RepairRun{
		RunId:               runID,
		RerunAllFailedTasks: true,
	})
	if err != nil {
		c.logger.Error("failed to repair run", "run_id", runID, "error", err)
		return 0, fmt.Errorf("repair run %d: %w", runID, err)
	}
	c.logger.Info("repair run started", "run_id", runID, "repair_id", wait.Response.RepairId)
	return wait.Response.RepairId, nil
}

// SetSchedulePause pushes a new pause state for the job's schedule trigger.
// The current schedule is re-fetched so the cron expression and timezone
// survive the partial settings update.
func (c *workspaceClient) SetSchedulePause(ctx context.Context, jobID int64, status core.PauseStatus) error {
	job, err := c.w.Jobs.Get(ctx, jobs.GetJobRequest{JobId: jobID})
	if err != nil {
		return fmt.Errorf("get job %d: %w", jobID, err)
	}
	if job.Settings == nil || job.Settings.Schedule == nil {
		return fmt.Errorf("job %d has no schedule", jobID)
	}

	schedule := *job.Settings.Schedule
	schedule.PauseStatus = jobs.PauseStatus(status)

	err = c.w.Jobs.Update(ctx, jobs.UpdateJob{
		JobId:       jobID,
		NewSettings: &jobs.JobSettings{Schedule: &schedule},
	})
	if err != nil {
		c.logger.Error("failed to update schedule", "job_id", jobID, "status", status, "error", err)
		return fmt.Errorf("update schedule for job %d: %w", jobID, err)
	}
	c.logger.Info("schedule updated", "job_id", jobID, "status", status)
	return nil
}
