package bot

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/job-warden/internal/core"
	"github.com/sevigo/job-warden/internal/testutil"
	"github.com/sevigo/job-warden/mocks"
)

var kolkata = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		panic(err)
	}
	return loc
}()

// noon on 2025-03-10 in the operator's zone
var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, kolkata)

func newTestWarden(t *testing.T) (*Warden, *mocks.MockJobsClient, *testutil.RecordingMessenger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockJobsClient(ctrl)
	msgr := testutil.NewRecordingMessenger()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	w := NewWarden(client, msgr, kolkata, logger, nil)
	w.clock = testutil.NewFakeClock(testNow).Now
	return w, client, msgr
}

func command(cmd string) core.CommandEvent {
	return core.NewCommandEvent(cmd)
}

func callback(data string) core.CallbackEvent {
	return core.NewCallbackEvent("cb-1", data)
}

func TestHelpCommand(t *testing.T) {
	w, _, msgr := newTestWarden(t)

	require.NoError(t, w.HandleCommand(context.Background(), command("help")))

	msgs := msgr.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "/jobs")
	assert.Contains(t, msgs[0].Text, "/failed")
	assert.Contains(t, msgs[0].Text, "/pause")
	assert.Empty(t, msgs[0].Buttons)
}

func TestJobsCommandNoJobs(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().ListJobs(gomock.Any()).Return(nil, nil)

	require.NoError(t, w.HandleCommand(context.Background(), command("jobs")))

	msgs := msgr.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "No jobs found for your account.", msgs[0].Text)
}

func TestJobsCommandListsWithCheckButtons(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().ListJobs(gomock.Any()).Return([]core.Job{
		{ID: 11, Name: "etl-daily"},
		{ID: 22, Name: "report-hourly"},
	}, nil)

	require.NoError(t, w.HandleCommand(context.Background(), command("jobs")))

	msgs := msgr.Messages()
	require.Len(t, msgs, 3)
	assert.Contains(t, msgs[0].Text, "Found 2 job(s)")

	require.Len(t, msgs[1].Buttons, 1)
	assert.Equal(t, core.CheckStatusAction(11), msgs[1].Buttons[0].Action)
	require.Len(t, msgs[2].Buttons, 1)
	assert.Equal(t, core.CheckStatusAction(22), msgs[2].Buttons[0].Action)
}

func TestJobsCommandRemoteError(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().ListJobs(gomock.Any()).Return(nil, testutil.ErrRemote)

	err := w.HandleCommand(context.Background(), command("jobs"))
	require.Error(t, err)

	msgs := msgr.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "remote service unavailable")
}

func TestPauseCommandButtonMatchesScheduleState(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().ListJobs(gomock.Any()).Return([]core.Job{
		{ID: 1, Name: "active", Schedule: &core.Schedule{PauseStatus: core.PauseStatusUnpaused}},
		{ID: 2, Name: "dormant", Schedule: &core.Schedule{PauseStatus: core.PauseStatusPaused}},
		{ID: 3, Name: "unscheduled"},
	}, nil)

	require.NoError(t, w.HandleCommand(context.Background(), command("pause")))

	msgs := msgr.Messages()
	require.Len(t, msgs, 4)

	assert.Equal(t, core.PauseAction(1), msgs[1].Buttons[0].Action)
	assert.Equal(t, core.ResumeAction(2), msgs[2].Buttons[0].Action)
	// A job with no schedule still renders a resume button; the tap then
	// reports "no schedule".
	assert.Equal(t, core.ResumeAction(3), msgs[3].Buttons[0].Action)
}

func TestFailedCommandOneFailure(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().ListJobs(gomock.Any()).Return([]core.Job{{ID: 5, Name: "etl-daily"}}, nil)
	client.EXPECT().ListRuns(gomock.Any(), int64(5)).Return([]core.Run{
		{
			ID:        900,
			JobID:     5,
			StartTime: testNow.Add(-3 * time.Hour),
			EndTime:   testNow.Add(-2 * time.Hour),
			Result:    core.RunResultFailed,
		},
	}, nil)

	require.NoError(t, w.HandleCommand(context.Background(), command("failed")))

	msgs := msgr.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "❌ Found 1 failure(s) today:", msgs[0].Text)

	require.Len(t, msgs[1].Buttons, 1)
	assert.Equal(t, core.RepairAction(900), msgs[1].Buttons[0].Action)
	assert.Contains(t, msgs[1].Text, "`900`")
}

func TestFailedCommandIgnoresOldAndRunningFailures(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().ListJobs(gomock.Any()).Return([]core.Job{{ID: 5, Name: "etl-daily"}}, nil)
	client.EXPECT().ListRuns(gomock.Any(), int64(5)).Return([]core.Run{
		// ended yesterday
		{ID: 1, StartTime: testNow.Add(-30 * time.Hour), EndTime: testNow.Add(-26 * time.Hour), Result: core.RunResultFailed},
		// no end time yet
		{ID: 2, StartTime: testNow.Add(-1 * time.Hour), Result: core.RunResultFailed},
		// succeeded today
		{ID: 3, StartTime: testNow.Add(-4 * time.Hour), EndTime: testNow.Add(-3 * time.Hour), Result: core.RunResultSuccess},
	}, nil)

	require.NoError(t, w.HandleCommand(context.Background(), command("failed")))

	msgs := msgr.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "🎉 No failures today!", msgs[0].Text)
}

func TestScheduledTickNoFailures(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().ListJobs(gomock.Any()).Return([]core.Job{{ID: 5, Name: "etl-daily"}}, nil)
	client.EXPECT().ListRuns(gomock.Any(), int64(5)).Return(nil, nil)

	require.NoError(t, w.HandleTick(context.Background(), core.NewTickEvent(testNow)))

	msgs := msgr.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "🎉 No failures today!", msgs[0].Text)
}

func TestCheckStatusCallbackNoRunsToday(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().GetJob(gomock.Any(), int64(7)).Return(&core.Job{ID: 7, Name: "etl-daily"}, nil)
	client.EXPECT().ListRuns(gomock.Any(), int64(7)).Return(nil, nil)

	data, err := core.CheckStatusAction(7).Encode()
	require.NoError(t, err)
	require.NoError(t, w.HandleCallback(context.Background(), callback(data)))

	msgs := msgr.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "No runs today.")
	assert.Empty(t, msgs[0].Buttons)

	responses := msgr.Responses()
	require.Len(t, responses, 1)
	assert.Equal(t, "cb-1", responses[0].CallbackID)
}

func TestCheckStatusCallbackFailedOffersRepair(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().GetJob(gomock.Any(), int64(7)).Return(&core.Job{ID: 7, Name: "etl-daily"}, nil)
	client.EXPECT().ListRuns(gomock.Any(), int64(7)).Return([]core.Run{
		{ID: 301, StartTime: testNow.Add(-2 * time.Hour), EndTime: testNow.Add(-1 * time.Hour), Result: core.RunResultFailed, StateMessage: "cluster died"},
	}, nil)

	data, err := core.CheckStatusAction(7).Encode()
	require.NoError(t, err)
	require.NoError(t, w.HandleCallback(context.Background(), callback(data)))

	msgs := msgr.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "FAILED")
	assert.Contains(t, msgs[0].Text, "cluster died")
	require.Len(t, msgs[0].Buttons, 1)
	assert.Equal(t, core.RepairAction(301), msgs[0].Buttons[0].Action)
}

func TestCheckStatusCallbackSuccessHasNoButtons(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().GetJob(gomock.Any(), int64(7)).Return(&core.Job{ID: 7, Name: "etl-daily"}, nil)
	client.EXPECT().ListRuns(gomock.Any(), int64(7)).Return([]core.Run{
		{ID: 302, StartTime: testNow.Add(-2 * time.Hour), EndTime: testNow.Add(-1 * time.Hour), Result: core.RunResultSuccess},
	}, nil)

	data, err := core.CheckStatusAction(7).Encode()
	require.NoError(t, err)
	require.NoError(t, w.HandleCallback(context.Background(), callback(data)))

	msgs := msgr.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "SUCCESS")
	assert.Empty(t, msgs[0].Buttons)
}

func TestRepairCallbackSuccess(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().RepairRun(gomock.Any(), int64(900)).Return(int64(901), nil)

	data, err := core.RepairAction(900).Encode()
	require.NoError(t, err)
	require.NoError(t, w.HandleCallback(context.Background(), callback(data)))

	msgs := msgr.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "Repair started!")
	assert.Contains(t, msgs[0].Text, "`900`")
	assert.Contains(t, msgs[0].Text, "`901`")
}

func TestRepairCallbackRemoteErrorIsReportedOnce(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().RepairRun(gomock.Any(), int64(900)).Return(int64(0), testutil.ErrRemote)

	data, err := core.RepairAction(900).Encode()
	require.NoError(t, err)

	err = w.HandleCallback(context.Background(), callback(data))
	require.Error(t, err)

	msgs := msgr.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "Repair failed")
	assert.Contains(t, msgs[0].Text, "remote service unavailable")

	// acknowledged exactly once despite the failure
	require.Len(t, msgr.Responses(), 1)

	// the loop keeps working afterwards
	client.EXPECT().ListJobs(gomock.Any()).Return(nil, nil)
	require.NoError(t, w.HandleCommand(context.Background(), command("jobs")))
}

func TestPauseCallbackWithoutScheduleDoesNotMutate(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().GetJob(gomock.Any(), int64(3)).Return(&core.Job{ID: 3, Name: "unscheduled"}, nil)
	// no SetSchedulePause expectation: any call would fail the test

	data, err := core.PauseAction(3).Encode()
	require.NoError(t, err)
	require.NoError(t, w.HandleCallback(context.Background(), callback(data)))

	msgs := msgr.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "has no schedule")
	require.Len(t, msgr.Responses(), 1)
}

func TestResumeCallbackUpdatesSchedule(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().GetJob(gomock.Any(), int64(4)).Return(&core.Job{
		ID: 4, Name: "etl-daily",
		Schedule: &core.Schedule{PauseStatus: core.PauseStatusPaused},
	}, nil)
	client.EXPECT().SetSchedulePause(gomock.Any(), int64(4), core.PauseStatusUnpaused).Return(nil)

	data, err := core.ResumeAction(4).Encode()
	require.NoError(t, err)
	require.NoError(t, w.HandleCallback(context.Background(), callback(data)))

	msgs := msgr.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "has been resumed")
}

func TestPauseCallbackUpdateError(t *testing.T) {
	w, client, msgr := newTestWarden(t)
	client.EXPECT().GetJob(gomock.Any(), int64(4)).Return(&core.Job{
		ID: 4, Name: "etl-daily",
		Schedule: &core.Schedule{PauseStatus: core.PauseStatusUnpaused},
	}, nil)
	client.EXPECT().SetSchedulePause(gomock.Any(), int64(4), core.PauseStatusPaused).Return(testutil.ErrRemote)

	data, err := core.PauseAction(4).Encode()
	require.NoError(t, err)

	err = w.HandleCallback(context.Background(), callback(data))
	require.Error(t, err)

	msgs := msgr.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "Could not toggle schedule")
}

func TestMalformedCallbackIsAcknowledgedAndDropped(t *testing.T) {
	w, _, msgr := newTestWarden(t)

	err := w.HandleCallback(context.Background(), callback("{broken"))
	require.Error(t, err)

	assert.Empty(t, msgr.Messages())
	responses := msgr.Responses()
	require.Len(t, responses, 1)
	assert.Equal(t, "❌ Error processing request", responses[0].Text)
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	w, _, msgr := newTestWarden(t)

	require.NoError(t, w.HandleCommand(context.Background(), command("selfdestruct")))
	assert.Empty(t, msgr.Messages())
}
