package jobs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingJob struct {
	name     string
	startErr error
	calls    *[]string
}

func (j recordingJob) Start() error {
	*j.calls = append(*j.calls, "start "+j.name)
	return j.startErr
}

func (j recordingJob) Stop() {
	*j.calls = append(*j.calls, "stop "+j.name)
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	var calls []string
	jm := NewJobManager(
		recordingJob{name: "a", calls: &calls},
		recordingJob{name: "b", calls: &calls},
	)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, calls)
}

func TestJobManager_StartAll_StopsStartedJobsOnFailure(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	jm := NewJobManager(
		recordingJob{name: "a", calls: &calls},
		recordingJob{name: "b", startErr: boom, calls: &calls},
		recordingJob{name: "c", calls: &calls},
	)

	err := jm.StartAll()

	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"start a", "start b", "stop a"}, calls)

	jm.StopAll()
	assert.Equal(t, []string{"start a", "start b", "stop a"}, calls, "second StopAll is a no-op")
}
