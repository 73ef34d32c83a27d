package databricks

import (
	"time"

	"github.com/databricks/databricks-sdk-go/service/jobs"

	"github.com/sevigo/job-warden/internal/core"
)

// ownedJobs filters a workspace job listing down to the operator's own jobs
// and converts them to the internal representation.
func ownedJobs(all []jobs.BaseJob, operatorEmail string) []core.Job {
	owned := make([]core.Job, 0, len(all))
	for i := range all {
		j := &all[i]
		if j.CreatorUserName != operatorEmail {
			continue
		}
		owned = append(owned, jobFromSDK(j.JobId, j.CreatorUserName, j.Settings))
	}
	return owned
}

func jobFromSDK(jobID int64, creator string, settings *jobs.JobSettings) core.Job {
	job := core.Job{ID: jobID, CreatorEmail: creator}
	if settings == nil {
		return job
	}
	job.Name = settings.Name
	if settings.Schedule != nil {
		job.Schedule = &core.Schedule{
			CronExpression: settings.Schedule.QuartzCronExpression,
			TimezoneID:     settings.Schedule.TimezoneId,
			PauseStatus:    core.PauseStatus(settings.Schedule.PauseStatus),
		}
	}
	return job
}

// runFromSDK converts a workspace run record. The workspace reports
// epoch-millisecond UTC timestamps; zero end time means the run has not
// terminated.
func runFromSDK(r *jobs.BaseRun) core.Run {
	run := core.Run{
		ID:        r.RunId,
		JobID:     r.JobId,
		StartTime: fromEpochMillis(r.StartTime),
		EndTime:   fromEpochMillis(r.EndTime),
	}
	if r.State != nil {
		run.Result = core.RunResult(r.State.ResultState)
		run.StateMessage = r.State.StateMessage
	}
	return run
}

func fromEpochMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
