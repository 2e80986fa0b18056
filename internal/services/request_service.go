package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/careerbrew/careerbrew-api/internal/models"
	"github.com/careerbrew/careerbrew-api/internal/repository"
	apperrors "github.com/careerbrew/careerbrew-api/pkg/errors"
	"github.com/careerbrew/careerbrew-api/pkg/logger"
	"github.com/careerbrew/careerbrew-api/pkg/metrics"
)

// ErrInvalidTransition indicates a status update on a request already in a
// terminal state
var ErrInvalidTransition = errors.New("request status cannot be changed")

// RequestService handles mentorship requests and the duplicate-request
// advisory. The advisory is informational only: it never blocks creation, and
// nothing prevents two concurrent sessions from creating overlapping
// requests.
type RequestService struct {
	requestRepo repository.RequestRepositoryInterface
	mentorRepo  repository.MentorRepositoryInterface
}

// NewRequestService creates a new request service
func NewRequestService(requestRepo repository.RequestRepositoryInterface, mentorRepo repository.MentorRepositoryInterface) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		mentorRepo:  mentorRepo,
	}
}

// CheckDuplicate computes the dedup advisory for the session user based on
// their outstanding (pending or accepted) requests across all mentors.
// Failures to fetch degrade to "proceed": the check must never block a user
// from sending a request.
func (s *RequestService) CheckDuplicate(ctx context.Context, session *models.Session) (*models.DuplicateCheckResponse, error) {
	if session == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	outstanding, err := s.requestRepo.GetByMentee(ctx, session.UserID, models.OutstandingStatuses)
	if err != nil {
		logger.Error("duplicate check fetch failed, advising proceed",
			zap.String("user_id", session.UserID),
			zap.Error(err))
		return &models.DuplicateCheckResponse{
			Advisory:    models.AdvisoryProceed,
			Outstanding: []*models.MentorshipRequest{},
		}, nil
	}

	return &models.DuplicateCheckResponse{
		Advisory:    evaluateAdvisory(outstanding),
		Outstanding: outstanding,
	}, nil
}

// CreateRequest creates a mentorship request from the session user to a
// mentor. The advisory computed at creation time is echoed in the response so
// clients that skipped the explicit check still see it.
func (s *RequestService) CreateRequest(ctx context.Context, session *models.Session, payload *models.CreateRequestPayload) (*models.CreateRequestResponse, error) {
	if session == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	if _, err := s.mentorRepo.GetByID(ctx, payload.MentorID); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to verify mentor: %w", err)
	}

	advisory := models.AdvisoryProceed
	if outstanding, err := s.requestRepo.GetByMentee(ctx, session.UserID, models.OutstandingStatuses); err == nil {
		advisory = evaluateAdvisory(outstanding)
	}

	request, err := s.requestRepo.Create(ctx, session.UserID, payload.MentorID, payload.Message)
	if err != nil {
		metrics.RequestSubmissions.WithLabelValues(string(advisory), "error").Inc()
		return nil, fmt.Errorf("failed to create mentorship request: %w", err)
	}

	metrics.RequestSubmissions.WithLabelValues(string(advisory), "success").Inc()
	logger.Info("mentorship request created",
		zap.String("request_id", request.ID),
		zap.String("mentee_id", session.UserID),
		zap.String("mentor_id", payload.MentorID),
		zap.String("advisory", string(advisory)))

	return &models.CreateRequestResponse{
		Request:  request,
		Advisory: advisory,
	}, nil
}

// ListRequests returns the session user's requests. Mentors see requests
// addressed to them; everyone else sees requests they sent. An empty status
// filter returns all.
func (s *RequestService) ListRequests(ctx context.Context, session *models.Session, statuses []models.RequestStatus) ([]*models.MentorshipRequest, error) {
	if session == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	if session.Role == models.RoleMentor {
		mentor, err := s.mentorRepo.GetByUserID(ctx, session.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load mentor profile: %w", err)
		}
		return s.requestRepo.GetByMentor(ctx, mentor.ID, statuses)
	}

	return s.requestRepo.GetByMentee(ctx, session.UserID, statuses)
}

// UpdateStatus applies a mentor-side accept/decline to a pending request.
// Only the addressed mentor may change the status, and terminal statuses are
// final.
func (s *RequestService) UpdateStatus(ctx context.Context, session *models.Session, requestID string, payload *models.UpdateRequestStatusPayload) (*models.MentorshipRequest, error) {
	if session == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	mentor, err := s.mentorRepo.GetByUserID(ctx, session.UserID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.AccessDeniedError("only mentors can update request status")
		}
		return nil, fmt.Errorf("failed to load mentor profile: %w", err)
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.MentorID != mentor.ID {
		return nil, apperrors.AccessDeniedError("request is addressed to another mentor")
	}

	if !request.Status.CanTransitionTo(payload.Status) {
		metrics.RequestStatusUpdates.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%s request: %w", request.Status, ErrInvalidTransition)
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, payload.Status); err != nil {
		metrics.RequestStatusUpdates.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}

	metrics.RequestStatusUpdates.WithLabelValues(string(payload.Status)).Inc()
	logger.Info("mentorship request status updated",
		zap.String("request_id", requestID),
		zap.String("mentor_id", mentor.ID),
		zap.String("status", string(payload.Status)))

	request.Status = payload.Status
	return request, nil
}

// evaluateAdvisory maps outstanding requests onto the advisory ladder: any
// accepted mentorship outranks pending ones.
func evaluateAdvisory(outstanding []*models.MentorshipRequest) models.DuplicateAdvisory {
	advisory := models.AdvisoryProceed
	for _, req := range outstanding {
		switch req.Status {
		case models.StatusAccepted:
			return models.AdvisoryWarnAccepted
		case models.StatusPending:
			advisory = models.AdvisoryWarnPending
		}
	}
	return advisory
}
