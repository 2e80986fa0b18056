package services

import (
	"context"

	"github.com/careerbrew/careerbrew-api/internal/matching"
	"github.com/careerbrew/careerbrew-api/internal/models"
)

// ProfileServiceInterface defines the interface for mentee profile operations
type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, session *models.Session) (*models.MenteeProfile, error)
	UpdateSkills(ctx context.Context, session *models.Session, req *models.UpdateSkillsRequest) (*models.MenteeProfile, error)
	UploadAvatar(ctx context.Context, session *models.Session, req *models.UploadAvatarRequest) (string, error)
}

// MatchingServiceInterface defines the interface for the matching flow
type MatchingServiceInterface interface {
	StartMatching(ctx context.Context, session *models.Session) (*MatchSessionResponse, error)
	CurrentMatch(ctx context.Context, session *models.Session) (*MatchStepResponse, error)
	NextMatch(ctx context.Context, session *models.Session) (*MatchStepResponse, error)
	PreviousMatch(ctx context.Context, session *models.Session) (*MatchStepResponse, error)
	GetMatches(ctx context.Context, session *models.Session) ([]matching.MatchResult, error)
}

// RequestServiceInterface defines the interface for mentorship request operations
type RequestServiceInterface interface {
	CheckDuplicate(ctx context.Context, session *models.Session) (*models.DuplicateCheckResponse, error)
	CreateRequest(ctx context.Context, session *models.Session, payload *models.CreateRequestPayload) (*models.CreateRequestResponse, error)
	ListRequests(ctx context.Context, session *models.Session, statuses []models.RequestStatus) ([]*models.MentorshipRequest, error)
	UpdateStatus(ctx context.Context, session *models.Session, requestID string, payload *models.UpdateRequestStatusPayload) (*models.MentorshipRequest, error)
}

// TestimonialServiceInterface defines the interface for testimonial operations
type TestimonialServiceInterface interface {
	GetStats(ctx context.Context, mentorID string) (*models.TestimonialStats, error)
	List(ctx context.Context, mentorID string, limit, offset int) (*models.TestimonialPage, error)
	CanWrite(ctx context.Context, session *models.Session, mentorID string) (*models.CanWriteTestimonialResponse, error)
	Submit(ctx context.Context, session *models.Session, mentorID string, req *models.SubmitTestimonialRequest) (*models.Testimonial, error)
}

// CandidateSource supplies the candidate pool for a matching session.
// Implemented by the candidate cache in production.
type CandidateSource interface {
	Get(ctx context.Context) ([]*models.MentorCandidate, error)
}

// StorageClient is the object storage surface used for avatar uploads
type StorageClient interface {
	UploadImage(ctx context.Context, imageData, key, contentType string) (string, error)
	ValidateImageType(contentType string) error
	ValidateImageSize(imageData string) error
	GenerateFileName(userID, fileName string) string
}

// Ensure services implement their interfaces
var _ ProfileServiceInterface = (*ProfileService)(nil)
var _ MatchingServiceInterface = (*MatchingService)(nil)
var _ RequestServiceInterface = (*RequestService)(nil)
var _ TestimonialServiceInterface = (*TestimonialService)(nil)
