package bot

import (
	"fmt"
	"time"

	"github.com/sevigo/job-warden/internal/core"
	"github.com/sevigo/job-warden/internal/status"
)

const (
	msgHelp = "Available commands:\n" +
		"/jobs  – list all jobs\n" +
		"/failed – list failed runs today\n" +
		"/pause – pause / resume job schedules\n" +
		"/help  – this help"

	msgNoJobs     = "No jobs found for your account."
	msgNoFailures = "🎉 No failures today!"

	toastChecking  = "🔍 Checking…"
	toastRepairing = "🔧 Repairing…"
	toastPausing   = "⏸ Pausing…"
	toastResuming  = "▶️ Resuming…"
	toastBadData   = "❌ Error processing request"
)

func jobListHeader(n int) string {
	return fmt.Sprintf("📋 Found %d job(s). Tap to check today’s run:", n)
}

func pauseListHeader(n int) string {
	return fmt.Sprintf("📋 Found %d job(s). Tap to pause / resume schedule:", n)
}

func failureHeader(n int) string {
	return fmt.Sprintf("❌ Found %d failure(s) today:", n)
}

func jobCard(j core.Job) string {
	return fmt.Sprintf("%s\nJob ID: `%d`", j.Name, j.ID)
}

func failureCard(jobName string, r core.Run, loc *time.Location) string {
	return fmt.Sprintf("🔴 **%s**\n`%d`\n⏰ %s – %s",
		jobName, r.ID, clockTime(r.StartTime, loc), clockTime(r.EndTime, loc))
}

func repairButtonLabel(jobName string) string {
	return "🔧 Repair " + truncate(jobName, 25)
}

func statusCard(jobName string, c status.Classification, loc *time.Location) string {
	if c.Kind == status.NoRunsToday {
		return fmt.Sprintf("📅 **%s**\nNo runs today.", jobName)
	}

	r := c.Run
	window := fmt.Sprintf("Started %s (still running)", clockTime(r.StartTime, loc))
	if r.Finished() {
		window = fmt.Sprintf("%s – %s", clockTime(r.StartTime, loc), clockTime(r.EndTime, loc))
	}

	switch c.Kind {
	case status.Success:
		return fmt.Sprintf("✅ **%s**\nSUCCESS\n⏰ %s\nRun `%d`", jobName, window, r.ID)
	case status.Failed:
		card := fmt.Sprintf("❌ **%s**\nFAILED\n⏰ %s\nRun `%d`", jobName, window, r.ID)
		if r.StateMessage != "" {
			card += "\n" + r.StateMessage
		}
		return card
	default:
		return fmt.Sprintf("🔄 **%s**\nRUNNING\n⏰ %s\nRun `%d`", jobName, window, r.ID)
	}
}

func repairStarted(originalRunID, repairRunID int64) string {
	return fmt.Sprintf("✅ Repair started!\nOriginal: `%d`\nRepair run: `%d`", originalRunID, repairRunID)
}

func scheduleToggled(jobName string, st core.PauseStatus) string {
	verb := "resumed"
	if st == core.PauseStatusPaused {
		verb = "paused"
	}
	return fmt.Sprintf("✅ Schedule for `%s` has been %s.", jobName, verb)
}

func noSchedule(jobID int64) string {
	return fmt.Sprintf("Job `%d` has no schedule.", jobID)
}

func clockTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
