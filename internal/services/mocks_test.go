package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/careerbrew/careerbrew-api/internal/models"
)

// MockMenteeRepository is a mock implementation of MenteeRepositoryInterface
type MockMenteeRepository struct {
	mock.Mock
}

func (m *MockMenteeRepository) GetByUserID(ctx context.Context, userID string) (*models.MenteeProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenteeProfile), args.Error(1)
}

func (m *MockMenteeRepository) UpsertSkills(ctx context.Context, userID string, req *models.UpdateSkillsRequest) (*models.MenteeProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenteeProfile), args.Error(1)
}

// MockMentorRepository is a mock implementation of MentorRepositoryInterface
type MockMentorRepository struct {
	mock.Mock
}

func (m *MockMentorRepository) GetActiveCandidates(ctx context.Context, limit int) ([]*models.MentorCandidate, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorCandidate), args.Error(1)
}

func (m *MockMentorRepository) GetByID(ctx context.Context, id string) (*models.MentorCandidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorCandidate), args.Error(1)
}

func (m *MockMentorRepository) GetByUserID(ctx context.Context, userID string) (*models.MentorCandidate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorCandidate), args.Error(1)
}

func (m *MockMentorRepository) UpdateAvatar(ctx context.Context, mentorID, avatarURL string) error {
	args := m.Called(ctx, mentorID, avatarURL)
	return args.Error(0)
}

// MockRequestRepository is a mock implementation of RequestRepositoryInterface
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, menteeID, mentorID, message string) (*models.MentorshipRequest, error) {
	args := m.Called(ctx, menteeID, mentorID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipRequest), args.Error(1)
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id string) (*models.MentorshipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipRequest), args.Error(1)
}

func (m *MockRequestRepository) GetByMentee(ctx context.Context, menteeID string, statuses []models.RequestStatus) ([]*models.MentorshipRequest, error) {
	args := m.Called(ctx, menteeID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorshipRequest), args.Error(1)
}

func (m *MockRequestRepository) GetByMentor(ctx context.Context, mentorID string, statuses []models.RequestStatus) ([]*models.MentorshipRequest, error) {
	args := m.Called(ctx, mentorID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorshipRequest), args.Error(1)
}

func (m *MockRequestRepository) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockTestimonialRepository is a mock implementation of TestimonialRepositoryInterface
type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) GetStats(ctx context.Context, mentorID string) (*models.TestimonialStats, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TestimonialStats), args.Error(1)
}

func (m *MockTestimonialRepository) List(ctx context.Context, mentorID string, limit, offset int) (*models.TestimonialPage, error) {
	args := m.Called(ctx, mentorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TestimonialPage), args.Error(1)
}

func (m *MockTestimonialRepository) Create(ctx context.Context, t *models.Testimonial) (string, error) {
	args := m.Called(ctx, t)
	return args.String(0), args.Error(1)
}

func (m *MockTestimonialRepository) CanWrite(ctx context.Context, mentorID, menteeID string) (bool, string, error) {
	args := m.Called(ctx, mentorID, menteeID)
	return args.Bool(0), args.String(1), args.Error(2)
}

// MockCandidateSource is a mock implementation of CandidateSource
type MockCandidateSource struct {
	mock.Mock
}

func (m *MockCandidateSource) Get(ctx context.Context) ([]*models.MentorCandidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorCandidate), args.Error(1)
}

// MockStorageClient is a mock implementation of StorageClient
type MockStorageClient struct {
	mock.Mock
}

func (m *MockStorageClient) UploadImage(ctx context.Context, imageData, key, contentType string) (string, error) {
	args := m.Called(ctx, imageData, key, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorageClient) ValidateImageType(contentType string) error {
	args := m.Called(contentType)
	return args.Error(0)
}

func (m *MockStorageClient) ValidateImageSize(imageData string) error {
	args := m.Called(imageData)
	return args.Error(0)
}

func (m *MockStorageClient) GenerateFileName(userID, fileName string) string {
	args := m.Called(userID, fileName)
	return args.String(0)
}
