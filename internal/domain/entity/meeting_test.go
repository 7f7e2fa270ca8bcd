package entity

import (
	"errors"
	"testing"

	"serviturnos-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingLifecycle(t *testing.T) {
	t.Run("accept pending", func(t *testing.T) {
		m := &Meeting{Status: MeetingStatusPending}
		require.NoError(t, m.Accept())
		assert.Equal(t, MeetingStatusAccepted, m.Status)
	})

	t.Run("accept twice fails", func(t *testing.T) {
		m := &Meeting{Status: MeetingStatusPending}
		require.NoError(t, m.Accept())
		err := m.Accept()
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrInvalidTransition))
		assert.Equal(t, MeetingStatusAccepted, m.Status)
	})

	t.Run("reject pending clears job done", func(t *testing.T) {
		m := &Meeting{Status: MeetingStatusPending, JobDone: true}
		require.NoError(t, m.Reject())
		assert.Equal(t, MeetingStatusRejected, m.Status)
		assert.False(t, m.JobDone)
	})

	t.Run("reject accepted fails", func(t *testing.T) {
		m := &Meeting{Status: MeetingStatusAccepted}
		err := m.Reject()
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrInvalidTransition))
	})

	t.Run("cancel pending", func(t *testing.T) {
		m := &Meeting{Status: MeetingStatusPending}
		require.NoError(t, m.Cancel())
		assert.Equal(t, MeetingStatusCancelled, m.Status)
		assert.False(t, m.JobDone)
	})

	t.Run("cancel accepted clears job done", func(t *testing.T) {
		m := &Meeting{Status: MeetingStatusAccepted, JobDone: true}
		require.NoError(t, m.Cancel())
		assert.Equal(t, MeetingStatusCancelled, m.Status)
		assert.False(t, m.JobDone)
	})

	t.Run("cancel rejected fails", func(t *testing.T) {
		m := &Meeting{Status: MeetingStatusRejected}
		err := m.Cancel()
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrInvalidTransition))
		assert.Equal(t, MeetingStatusRejected, m.Status)
	})

	t.Run("finalize accepted marks job done", func(t *testing.T) {
		m := &Meeting{Status: MeetingStatusAccepted}
		require.NoError(t, m.Finalize())
		assert.Equal(t, MeetingStatusFinalized, m.Status)
		assert.True(t, m.JobDone)
	})

	t.Run("finalize pending fails", func(t *testing.T) {
		m := &Meeting{Status: MeetingStatusPending}
		err := m.Finalize()
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrInvalidTransition))
		assert.False(t, m.JobDone)
	})

	t.Run("finalize cancelled fails", func(t *testing.T) {
		m := &Meeting{Status: MeetingStatusCancelled}
		err := m.Finalize()
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrInvalidTransition))
	})
}

func TestParseMeetingStatus(t *testing.T) {
	status, err := ParseMeetingStatus("accepted")
	require.NoError(t, err)
	assert.Equal(t, MeetingStatusAccepted, status)

	_, err = ParseMeetingStatus("done")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
}
