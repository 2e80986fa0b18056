package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerbrew/careerbrew-api/internal/models"
	"github.com/careerbrew/careerbrew-api/internal/services"
	apperrors "github.com/careerbrew/careerbrew-api/pkg/errors"
)

func requestFixture() (*MockRequestRepository, *MockMentorRepository, *services.RequestService) {
	requestRepo := new(MockRequestRepository)
	mentorRepo := new(MockMentorRepository)
	service := services.NewRequestService(requestRepo, mentorRepo)
	return requestRepo, mentorRepo, service
}

func TestRequestService_CheckDuplicate_NoOutstanding(t *testing.T) {
	requestRepo, _, service := requestFixture()
	ctx := context.Background()
	session := testSession()

	requestRepo.On("GetByMentee", ctx, session.UserID, models.OutstandingStatuses).
		Return([]*models.MentorshipRequest{}, nil).Once()

	resp, err := service.CheckDuplicate(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, models.AdvisoryProceed, resp.Advisory)
	assert.Empty(t, resp.Outstanding)
	requestRepo.AssertExpectations(t)
}

func TestRequestService_CheckDuplicate_PendingOnly(t *testing.T) {
	requestRepo, _, service := requestFixture()
	ctx := context.Background()
	session := testSession()

	outstanding := []*models.MentorshipRequest{
		{ID: "req-1", MenteeID: session.UserID, MentorID: "mentor-a", Status: models.StatusPending},
		{ID: "req-2", MenteeID: session.UserID, MentorID: "mentor-b", Status: models.StatusPending},
	}
	requestRepo.On("GetByMentee", ctx, session.UserID, models.OutstandingStatuses).
		Return(outstanding, nil).Once()

	resp, err := service.CheckDuplicate(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, models.AdvisoryWarnPending, resp.Advisory)
	assert.Len(t, resp.Outstanding, 2)
}

func TestRequestService_CheckDuplicate_AcceptedOutranksPending(t *testing.T) {
	requestRepo, _, service := requestFixture()
	ctx := context.Background()
	session := testSession()

	outstanding := []*models.MentorshipRequest{
		{ID: "req-1", MenteeID: session.UserID, MentorID: "mentor-a", Status: models.StatusPending},
		{ID: "req-2", MenteeID: session.UserID, MentorID: "mentor-b", Status: models.StatusAccepted},
	}
	requestRepo.On("GetByMentee", ctx, session.UserID, models.OutstandingStatuses).
		Return(outstanding, nil).Once()

	resp, err := service.CheckDuplicate(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, models.AdvisoryWarnAccepted, resp.Advisory)
}

func TestRequestService_CheckDuplicate_FetchFailureAdvisesProceed(t *testing.T) {
	requestRepo, _, service := requestFixture()
	ctx := context.Background()
	session := testSession()

	requestRepo.On("GetByMentee", ctx, session.UserID, models.OutstandingStatuses).
		Return(nil, errors.New("timeout")).Once()

	resp, err := service.CheckDuplicate(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, models.AdvisoryProceed, resp.Advisory)
	assert.Empty(t, resp.Outstanding)
}

func TestRequestService_CreateRequest(t *testing.T) {
	requestRepo, mentorRepo, service := requestFixture()
	ctx := context.Background()
	session := testSession()

	payload := &models.CreateRequestPayload{
		MentorID: "2f6c9a1e-1b50-4f3e-9e7c-0a4d6b8c2d11",
		Message:  "Would love guidance on backend careers",
	}
	created := &models.MentorshipRequest{
		ID:       "req-1",
		MenteeID: session.UserID,
		MentorID: payload.MentorID,
		Message:  payload.Message,
		Status:   models.StatusPending,
	}

	mentorRepo.On("GetByID", ctx, payload.MentorID).
		Return(&models.MentorCandidate{ID: payload.MentorID, Active: true, Verified: true}, nil).Once()
	requestRepo.On("GetByMentee", ctx, session.UserID, models.OutstandingStatuses).
		Return([]*models.MentorshipRequest{}, nil).Once()
	requestRepo.On("Create", ctx, session.UserID, payload.MentorID, payload.Message).
		Return(created, nil).Once()

	resp, err := service.CreateRequest(ctx, session, payload)
	require.NoError(t, err)
	assert.Equal(t, created, resp.Request)
	assert.Equal(t, models.AdvisoryProceed, resp.Advisory)
	requestRepo.AssertExpectations(t)
	mentorRepo.AssertExpectations(t)
}

func TestRequestService_CreateRequest_WarnsButNeverBlocks(t *testing.T) {
	requestRepo, mentorRepo, service := requestFixture()
	ctx := context.Background()
	session := testSession()

	payload := &models.CreateRequestPayload{MentorID: "2f6c9a1e-1b50-4f3e-9e7c-0a4d6b8c2d11"}
	outstanding := []*models.MentorshipRequest{
		{ID: "req-0", MenteeID: session.UserID, MentorID: "mentor-z", Status: models.StatusAccepted},
	}
	created := &models.MentorshipRequest{ID: "req-1", MenteeID: session.UserID, MentorID: payload.MentorID, Status: models.StatusPending}

	mentorRepo.On("GetByID", ctx, payload.MentorID).
		Return(&models.MentorCandidate{ID: payload.MentorID}, nil).Once()
	requestRepo.On("GetByMentee", ctx, session.UserID, models.OutstandingStatuses).
		Return(outstanding, nil).Once()
	requestRepo.On("Create", ctx, session.UserID, payload.MentorID, "").
		Return(created, nil).Once()

	resp, err := service.CreateRequest(ctx, session, payload)
	require.NoError(t, err)
	assert.Equal(t, models.AdvisoryWarnAccepted, resp.Advisory)
	assert.Equal(t, created, resp.Request)
	requestRepo.AssertExpectations(t)
}

func TestRequestService_CreateRequest_MentorNotFound(t *testing.T) {
	_, mentorRepo, service := requestFixture()
	ctx := context.Background()
	session := testSession()

	payload := &models.CreateRequestPayload{MentorID: "2f6c9a1e-1b50-4f3e-9e7c-0a4d6b8c2d11"}
	mentorRepo.On("GetByID", ctx, payload.MentorID).Return(nil, apperrors.NotFoundError("mentor")).Once()

	resp, err := service.CreateRequest(ctx, session, payload)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRequestService_ListRequests_Mentee(t *testing.T) {
	requestRepo, _, service := requestFixture()
	ctx := context.Background()
	session := testSession()

	expected := []*models.MentorshipRequest{{ID: "req-1", MenteeID: session.UserID}}
	requestRepo.On("GetByMentee", ctx, session.UserID, []models.RequestStatus(nil)).
		Return(expected, nil).Once()

	requests, err := service.ListRequests(ctx, session, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, requests)
}

func TestRequestService_ListRequests_Mentor(t *testing.T) {
	requestRepo, mentorRepo, service := requestFixture()
	ctx := context.Background()
	session := &models.Session{UserID: "user-mentor", Role: models.RoleMentor}

	mentor := &models.MentorCandidate{ID: "mentor-1", UserID: session.UserID}
	statuses := []models.RequestStatus{models.StatusPending}
	expected := []*models.MentorshipRequest{{ID: "req-1", MentorID: "mentor-1", Status: models.StatusPending}}

	mentorRepo.On("GetByUserID", ctx, session.UserID).Return(mentor, nil).Once()
	requestRepo.On("GetByMentor", ctx, "mentor-1", statuses).Return(expected, nil).Once()

	requests, err := service.ListRequests(ctx, session, statuses)
	require.NoError(t, err)
	assert.Equal(t, expected, requests)
}

func TestRequestService_UpdateStatus_Accept(t *testing.T) {
	requestRepo, mentorRepo, service := requestFixture()
	ctx := context.Background()
	session := &models.Session{UserID: "user-mentor", Role: models.RoleMentor}

	mentor := &models.MentorCandidate{ID: "mentor-1", UserID: session.UserID}
	pending := &models.MentorshipRequest{ID: "req-1", MentorID: "mentor-1", Status: models.StatusPending}

	mentorRepo.On("GetByUserID", ctx, session.UserID).Return(mentor, nil).Once()
	requestRepo.On("GetByID", ctx, "req-1").Return(pending, nil).Once()
	requestRepo.On("UpdateStatus", ctx, "req-1", models.StatusAccepted).Return(nil).Once()

	updated, err := service.UpdateStatus(ctx, session, "req-1", &models.UpdateRequestStatusPayload{Status: models.StatusAccepted})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)
	requestRepo.AssertExpectations(t)
}

func TestRequestService_UpdateStatus_WrongMentor(t *testing.T) {
	requestRepo, mentorRepo, service := requestFixture()
	ctx := context.Background()
	session := &models.Session{UserID: "user-mentor", Role: models.RoleMentor}

	mentorRepo.On("GetByUserID", ctx, session.UserID).
		Return(&models.MentorCandidate{ID: "mentor-1", UserID: session.UserID}, nil).Once()
	requestRepo.On("GetByID", ctx, "req-1").
		Return(&models.MentorshipRequest{ID: "req-1", MentorID: "mentor-other", Status: models.StatusPending}, nil).Once()

	updated, err := service.UpdateStatus(ctx, session, "req-1", &models.UpdateRequestStatusPayload{Status: models.StatusDeclined})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
}

func TestRequestService_UpdateStatus_TerminalIsFinal(t *testing.T) {
	requestRepo, mentorRepo, service := requestFixture()
	ctx := context.Background()
	session := &models.Session{UserID: "user-mentor", Role: models.RoleMentor}

	mentorRepo.On("GetByUserID", ctx, session.UserID).
		Return(&models.MentorCandidate{ID: "mentor-1", UserID: session.UserID}, nil).Once()
	requestRepo.On("GetByID", ctx, "req-1").
		Return(&models.MentorshipRequest{ID: "req-1", MentorID: "mentor-1", Status: models.StatusDeclined}, nil).Once()

	updated, err := service.UpdateStatus(ctx, session, "req-1", &models.UpdateRequestStatusPayload{Status: models.StatusAccepted})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestRequestService_UpdateStatus_NotAMentor(t *testing.T) {
	_, mentorRepo, service := requestFixture()
	ctx := context.Background()
	session := testSession()

	mentorRepo.On("GetByUserID", ctx, session.UserID).Return(nil, apperrors.NotFoundError("mentor")).Once()

	updated, err := service.UpdateStatus(ctx, session, "req-1", &models.UpdateRequestStatusPayload{Status: models.StatusAccepted})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
}
