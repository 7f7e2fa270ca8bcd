package usecase

import (
	"errors"
	"strings"
	"testing"

	"serviturnos-api/internal/delivery/dto"
	"serviturnos-api/internal/domain/entity"
	"serviturnos-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingCreate(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "ana@example.com")
	professional := env.createProfessional(t, "leo@example.com", entity.ProfessionPlumber)

	meeting, err := env.meetings.Create(testCtx(), &dto.CreateMeetingRequest{
		CustomerID:     customer.ID,
		ProfessionalID: professional.ID,
		MeetingDate:    "2026-09-14T10:00:00Z",
		JobInfo:        "leaky faucet",
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", meeting.Status)
	assert.False(t, meeting.JobDone)
	assert.True(t, meeting.Available)
	assert.Equal(t, "leaky faucet", meeting.JobInfo)
	require.NotNil(t, meeting.MeetingDate)
}

func TestMeetingCreateUnknownParties(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "ana@example.com")

	_, err := env.meetings.Create(testCtx(), &dto.CreateMeetingRequest{
		CustomerID:     customer.ID,
		ProfessionalID: uuid.New(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	_, err = env.meetings.Create(testCtx(), &dto.CreateMeetingRequest{
		CustomerID:     uuid.New(),
		ProfessionalID: uuid.New(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestMeetingCreateBadDate(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "ana@example.com")
	professional := env.createProfessional(t, "leo@example.com", entity.ProfessionPlumber)

	_, err := env.meetings.Create(testCtx(), &dto.CreateMeetingRequest{
		CustomerID:     customer.ID,
		ProfessionalID: professional.ID,
		MeetingDate:    "next tuesday",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
}

func TestMeetingJobInfoCountsCharacters(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "ana@example.com")
	professional := env.createProfessional(t, "leo@example.com", entity.ProfessionPlumber)

	// 150 two-byte characters fit the 200-character cap even though they
	// exceed 200 bytes
	withinCap := strings.Repeat("ñ", 150)
	meeting, err := env.meetings.Create(testCtx(), &dto.CreateMeetingRequest{
		CustomerID:     customer.ID,
		ProfessionalID: professional.ID,
		JobInfo:        withinCap,
	})
	require.NoError(t, err)
	assert.Equal(t, withinCap, meeting.JobInfo)

	overCap := strings.Repeat("ñ", 201)
	_, err = env.meetings.Create(testCtx(), &dto.CreateMeetingRequest{
		CustomerID:     customer.ID,
		ProfessionalID: professional.ID,
		JobInfo:        overCap,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))

	_, err = env.meetings.UpdateDetails(testCtx(), meeting.ID, &dto.UpdateMeetingRequest{
		JobInfo: &overCap,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
}

func TestMeetingAcceptFinalizeFlow(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "ana@example.com")
	professional := env.createProfessional(t, "leo@example.com", entity.ProfessionElectrician)
	meeting := env.createMeeting(t, customer, professional)

	accepted, err := env.meetings.Accept(testCtx(), meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "accepted", accepted.Status)

	finalized, err := env.meetings.Finalize(testCtx(), meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "finalized", finalized.Status)
	assert.True(t, finalized.JobDone)

	// A finalized meeting can no longer be cancelled
	_, err = env.meetings.Cancel(testCtx(), meeting.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidTransition))

	// The failed transition left the stored status untouched
	stored, err := env.meetings.Get(testCtx(), meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "finalized", stored.Status)
}

func TestMeetingRejectFlow(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "ana@example.com")
	professional := env.createProfessional(t, "leo@example.com", entity.ProfessionPainter)
	meeting := env.createMeeting(t, customer, professional)

	rejected, err := env.meetings.Reject(testCtx(), meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)
	assert.False(t, rejected.JobDone)

	_, err = env.meetings.Accept(testCtx(), meeting.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidTransition))
}

func TestMeetingTransitionNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.meetings.Accept(testCtx(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestMeetingUpdateDetails(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "ana@example.com")
	professional := env.createProfessional(t, "leo@example.com", entity.ProfessionGardener)
	meeting := env.createMeeting(t, customer, professional)

	newDate := "2026-09-20T15:00:00Z"
	newInfo := "prune the hedges"
	updated, err := env.meetings.UpdateDetails(testCtx(), meeting.ID, &dto.UpdateMeetingRequest{
		MeetingDate: &newDate,
		JobInfo:     &newInfo,
	})
	require.NoError(t, err)
	assert.Equal(t, newInfo, updated.JobInfo)
	require.NotNil(t, updated.MeetingDate)
	assert.Equal(t, "pending", updated.Status)

	badDate := "tomorrow"
	_, err = env.meetings.UpdateDetails(testCtx(), meeting.ID, &dto.UpdateMeetingRequest{MeetingDate: &badDate})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
}

func TestMeetingQueries(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "ana@example.com")
	other := env.createCustomer(t, "bob@example.com")
	professional := env.createProfessional(t, "leo@example.com", entity.ProfessionCarpenter)

	first := env.createMeeting(t, customer, professional)
	env.createMeeting(t, other, professional)

	_, err := env.meetings.Accept(testCtx(), first.ID)
	require.NoError(t, err)

	byCustomer, err := env.meetings.GetByCustomer(testCtx(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, byCustomer.Total)

	byProfessional, err := env.meetings.GetByProfessional(testCtx(), professional.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, byProfessional.Total)

	pending, err := env.meetings.GetPendingForProfessional(testCtx(), professional.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, pending.Total)

	accepted, err := env.meetings.GetByStatus(testCtx(), "accepted")
	require.NoError(t, err)
	assert.Equal(t, 1, accepted.Total)

	_, err = env.meetings.GetByStatus(testCtx(), "archived")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))

	_, err = env.meetings.GetByCustomer(testCtx(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestMeetingSoftDeleteToggle(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "ana@example.com")
	professional := env.createProfessional(t, "leo@example.com", entity.ProfessionLocksmith)
	meeting := env.createMeeting(t, customer, professional)

	result, err := env.meetings.SoftDelete(testCtx(), meeting.ID)
	require.NoError(t, err)
	assert.True(t, result.WasAvailable)
	assert.False(t, result.Available)

	result, err = env.meetings.SoftDelete(testCtx(), meeting.ID)
	require.NoError(t, err)
	assert.False(t, result.WasAvailable)
	assert.True(t, result.Available)
}

func TestCustomerSoftDeleteCascadesToMeetings(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "ana@example.com")
	professional := env.createProfessional(t, "leo@example.com", entity.ProfessionPlumber)
	meeting := env.createMeeting(t, customer, professional)

	result, err := env.customers.SoftDelete(testCtx(), customer.ID)
	require.NoError(t, err)
	assert.False(t, result.Available)

	hidden, err := env.meetings.Get(testCtx(), meeting.ID)
	require.NoError(t, err)
	assert.False(t, hidden.Available)

	// Toggling back restores the meetings as well
	result, err = env.customers.SoftDelete(testCtx(), customer.ID)
	require.NoError(t, err)
	assert.True(t, result.Available)

	restored, err := env.meetings.Get(testCtx(), meeting.ID)
	require.NoError(t, err)
	assert.True(t, restored.Available)
}

func TestProfessionalHardDeleteLeavesMeetingRow(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "ana@example.com")
	professional := env.createProfessional(t, "leo@example.com", entity.ProfessionElectrician)
	meeting := env.createMeeting(t, customer, professional)

	require.NoError(t, env.professional.HardDelete(testCtx(), professional.ID))

	_, err := env.professional.Get(testCtx(), professional.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	// The meeting row survives with a dangling professional id, hidden
	survived, err := env.meetings.Get(testCtx(), meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, professional.ID, survived.ProfessionalID)
	assert.False(t, survived.Available)
}
