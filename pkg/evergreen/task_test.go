package evergreen

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskDependencyUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("bare string form", func(t *testing.T) {
		t.Parallel()

		var task Task
		require.NoError(t, json.Unmarshal([]byte(`{"depends_on": ["compile"]}`), &task))
		require.Len(t, task.DependsOn, 1)
		assert.Equal(t, "compile", task.DependsOn[0].ID)
		assert.Empty(t, task.DependsOn[0].Status)
	})

	t.Run("object form", func(t *testing.T) {
		t.Parallel()

		var task Task
		require.NoError(t, json.Unmarshal([]byte(`{"depends_on": [{"id": "compile", "status": "success"}]}`), &task))
		require.Len(t, task.DependsOn, 1)
		assert.Equal(t, "compile", task.DependsOn[0].ID)
		assert.Equal(t, "success", task.DependsOn[0].Status)
	})
}

func TestTaskStatusScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		task Task
		want StatusScore
	}{
		{
			name: "success",
			task: Task{Status: TaskStatusSuccess},
			want: StatusScoreSuccess,
		},
		{
			name: "undispatched",
			task: Task{Status: TaskStatusUndispatched},
			want: StatusScoreUndispatched,
		},
		{
			name: "timeout",
			task: Task{Status: "failed", StatusDetails: StatusDetails{TimedOut: true}},
			want: StatusScoreFailureTimeout,
		},
		{
			name: "system failure",
			task: Task{Status: "failed", StatusDetails: StatusDetails{Type: TaskFailureTypeSystem}},
			want: StatusScoreFailureSystem,
		},
		{
			name: "plain failure",
			task: Task{Status: "failed"},
			want: StatusScoreFailure,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, test.task.GetStatusScore())
		})
	}
}

func TestTaskGetExecution(t *testing.T) {
	t.Parallel()

	task := Task{
		TaskID:    "t1",
		Execution: 2,
		PreviousExecutions: []Task{
			{TaskID: "t1", Execution: 0},
			{TaskID: "t1", Execution: 1},
		},
	}

	assert.Same(t, &task, task.GetExecution(2))
	require.NotNil(t, task.GetExecution(1))
	assert.Equal(t, 1, task.GetExecution(1).Execution)
	assert.Nil(t, task.GetExecution(7))
	assert.Same(t, &task, task.GetExecutionOrSelf(7))
}

func TestTaskWaitTimes(t *testing.T) {
	t.Parallel()

	ingest := time.Date(2020, time.May, 1, 12, 0, 0, 0, time.UTC)
	scheduled := ingest.Add(5 * time.Minute)
	start := ingest.Add(15 * time.Minute)

	task := Task{IngestTime: &ingest, ScheduledTime: &scheduled, StartTime: &start}
	assert.Equal(t, 15*time.Minute, task.WaitTime())
	assert.Equal(t, 10*time.Minute, task.WaitTimeOnceUnblocked())

	assert.Zero(t, (&Task{StartTime: &start}).WaitTime())
	assert.Zero(t, (&Task{IngestTime: &ingest}).WaitTime())
	assert.Zero(t, (&Task{}).WaitTimeOnceUnblocked())
}

func TestTaskStatusPredicates(t *testing.T) {
	t.Parallel()

	now := time.Now()

	assert.True(t, (&Task{Status: TaskStatusSuccess}).IsSuccess())
	assert.False(t, (&Task{Status: "failed"}).IsSuccess())

	assert.True(t, (&Task{Status: "failed", StatusDetails: StatusDetails{Type: TaskFailureTypeSystem}}).IsSystemFailure())
	assert.False(t, (&Task{Status: TaskStatusSuccess, StatusDetails: StatusDetails{Type: TaskFailureTypeSystem}}).IsSystemFailure())

	assert.True(t, (&Task{Status: "failed", StatusDetails: StatusDetails{TimedOut: true}}).IsTimeout())
	assert.False(t, (&Task{Status: TaskStatusSuccess, StatusDetails: StatusDetails{TimedOut: true}}).IsTimeout())

	assert.True(t, (&Task{ScheduledTime: &now}).IsActive())
	assert.False(t, (&Task{ScheduledTime: &now, FinishTime: &now}).IsActive())
	assert.False(t, (&Task{}).IsActive())
}
