package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careerbrew/careerbrew-api/internal/models"
	"github.com/careerbrew/careerbrew-api/internal/services"
	apperrors "github.com/careerbrew/careerbrew-api/pkg/errors"
)

func testSession() *models.Session {
	return &models.Session{
		UserID: "user-123",
		Email:  "mentee@example.com",
		Name:   "Jordan Mentee",
		Role:   models.RoleMentee,
	}
}

func TestProfileService_GetProfile(t *testing.T) {
	menteeRepo := new(MockMenteeRepository)
	service := services.NewProfileService(menteeRepo, new(MockMentorRepository), new(MockStorageClient))
	ctx := context.Background()
	session := testSession()

	expected := &models.MenteeProfile{
		ID:     "mentee-1",
		UserID: session.UserID,
		Name:   session.Name,
		Skills: []string{"Go", "Kubernetes"},
		Level:  models.LevelIntermediate,
	}
	menteeRepo.On("GetByUserID", ctx, session.UserID).Return(expected, nil).Once()

	profile, err := service.GetProfile(ctx, session)
	assert.NoError(t, err)
	assert.Equal(t, expected, profile)
	menteeRepo.AssertExpectations(t)
}

func TestProfileService_GetProfile_FallbackWhenMissing(t *testing.T) {
	menteeRepo := new(MockMenteeRepository)
	service := services.NewProfileService(menteeRepo, new(MockMentorRepository), new(MockStorageClient))
	ctx := context.Background()
	session := testSession()

	menteeRepo.On("GetByUserID", ctx, session.UserID).Return(nil, apperrors.ErrProfileMissing).Once()

	profile, err := service.GetProfile(ctx, session)
	assert.NoError(t, err)
	assert.True(t, profile.Fallback)
	assert.Equal(t, session.UserID, profile.UserID)
	assert.Equal(t, session.Name, profile.Name)
	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.TargetRoles)
	assert.Equal(t, models.LevelBeginner, profile.Level)
	menteeRepo.AssertExpectations(t)
}

func TestProfileService_GetProfile_StoreError(t *testing.T) {
	menteeRepo := new(MockMenteeRepository)
	service := services.NewProfileService(menteeRepo, new(MockMentorRepository), new(MockStorageClient))
	ctx := context.Background()
	session := testSession()

	menteeRepo.On("GetByUserID", ctx, session.UserID).
		Return(nil, apperrors.FetchFailedError("get mentee", errors.New("connection refused"))).Once()

	profile, err := service.GetProfile(ctx, session)
	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, apperrors.ErrFetchFailed)
	menteeRepo.AssertExpectations(t)
}

func TestProfileService_GetProfile_NoSession(t *testing.T) {
	service := services.NewProfileService(new(MockMenteeRepository), new(MockMentorRepository), new(MockStorageClient))

	profile, err := service.GetProfile(context.Background(), nil)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
}

func TestProfileService_UpdateSkills(t *testing.T) {
	menteeRepo := new(MockMenteeRepository)
	service := services.NewProfileService(menteeRepo, new(MockMentorRepository), new(MockStorageClient))
	ctx := context.Background()
	session := testSession()

	req := &models.UpdateSkillsRequest{
		Skills:      []string{"Go", "SQL"},
		TargetRoles: []string{"Backend Engineer"},
		Level:       "intermediate",
	}
	updated := &models.MenteeProfile{
		UserID:      session.UserID,
		Skills:      req.Skills,
		TargetRoles: req.TargetRoles,
		Level:       models.LevelIntermediate,
	}
	menteeRepo.On("UpsertSkills", ctx, session.UserID, req).Return(updated, nil).Once()

	profile, err := service.UpdateSkills(ctx, session, req)
	assert.NoError(t, err)
	assert.Equal(t, updated, profile)
	menteeRepo.AssertExpectations(t)
}

func TestProfileService_UploadAvatar(t *testing.T) {
	mentorRepo := new(MockMentorRepository)
	storage := new(MockStorageClient)
	service := services.NewProfileService(new(MockMenteeRepository), mentorRepo, storage)
	ctx := context.Background()
	session := &models.Session{UserID: "user-mentor", Name: "Sam Mentor", Role: models.RoleMentor}

	mentor := &models.MentorCandidate{ID: "mentor-1", UserID: session.UserID}
	req := &models.UploadAvatarRequest{
		Image:       "aGVsbG8=",
		FileName:    "photo.png",
		ContentType: "image/png",
	}

	mentorRepo.On("GetByUserID", ctx, session.UserID).Return(mentor, nil).Once()
	storage.On("ValidateImageType", "image/png").Return(nil).Once()
	storage.On("ValidateImageSize", req.Image).Return(nil).Once()
	storage.On("GenerateFileName", session.UserID, "photo.png").Return("avatars/user-mentor.png").Once()
	storage.On("UploadImage", ctx, req.Image, "avatars/user-mentor.png", "image/png").
		Return("https://storage.example.com/bucket/avatars/user-mentor.png", nil).Once()
	mentorRepo.On("UpdateAvatar", ctx, "mentor-1", "https://storage.example.com/bucket/avatars/user-mentor.png").Return(nil).Once()

	url, err := service.UploadAvatar(ctx, session, req)
	assert.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/bucket/avatars/user-mentor.png", url)
	mentorRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestProfileService_UploadAvatar_NotAMentor(t *testing.T) {
	mentorRepo := new(MockMentorRepository)
	service := services.NewProfileService(new(MockMenteeRepository), mentorRepo, new(MockStorageClient))
	ctx := context.Background()
	session := testSession()

	mentorRepo.On("GetByUserID", ctx, session.UserID).Return(nil, apperrors.NotFoundError("mentor")).Once()

	url, err := service.UploadAvatar(ctx, session, &models.UploadAvatarRequest{
		Image:       "aGVsbG8=",
		FileName:    "photo.png",
		ContentType: "image/png",
	})
	assert.Empty(t, url)
	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
	mentorRepo.AssertExpectations(t)
}

func TestProfileService_UploadAvatar_InvalidType(t *testing.T) {
	mentorRepo := new(MockMentorRepository)
	storage := new(MockStorageClient)
	service := services.NewProfileService(new(MockMenteeRepository), mentorRepo, storage)
	ctx := context.Background()
	session := &models.Session{UserID: "user-mentor", Role: models.RoleMentor}

	mentorRepo.On("GetByUserID", ctx, session.UserID).
		Return(&models.MentorCandidate{ID: "mentor-1", UserID: session.UserID}, nil).Once()
	storage.On("ValidateImageType", "image/gif").Return(errors.New("unsupported image type")).Once()

	url, err := service.UploadAvatar(ctx, session, &models.UploadAvatarRequest{
		Image:       "aGVsbG8=",
		FileName:    "anim.gif",
		ContentType: "image/gif",
	})
	assert.Empty(t, url)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	storage.AssertExpectations(t)
}
