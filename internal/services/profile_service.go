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

// ProfileService handles mentee profile reads and writes plus mentor avatar
// uploads
type ProfileService struct {
	menteeRepo repository.MenteeRepositoryInterface
	mentorRepo repository.MentorRepositoryInterface
	storage    StorageClient
}

// NewProfileService creates a new profile service
func NewProfileService(menteeRepo repository.MenteeRepositoryInterface, mentorRepo repository.MentorRepositoryInterface, storage StorageClient) *ProfileService {
	return &ProfileService{
		menteeRepo: menteeRepo,
		mentorRepo: mentorRepo,
		storage:    storage,
	}
}

// GetProfile loads the session user's mentee profile. When no mentee row
// exists a fallback profile is synthesized from session attributes instead of
// failing, so matching can still run. Store failures propagate to the caller
// after a single attempt.
func (s *ProfileService) GetProfile(ctx context.Context, session *models.Session) (*models.MenteeProfile, error) {
	if session == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	profile, err := s.menteeRepo.GetByUserID(ctx, session.UserID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrProfileMissing) {
			logger.Info("no mentee profile, using session fallback",
				zap.String("user_id", session.UserID))
			return models.FallbackProfile(session), nil
		}
		return nil, fmt.Errorf("failed to load mentee profile: %w", err)
	}

	return profile, nil
}

// UpdateSkills upserts the mentee's skill set, target roles and level.
// Creates the mentee row if the user has none yet.
func (s *ProfileService) UpdateSkills(ctx context.Context, session *models.Session, req *models.UpdateSkillsRequest) (*models.MenteeProfile, error) {
	if session == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	profile, err := s.menteeRepo.UpsertSkills(ctx, session.UserID, req)
	if err != nil {
		metrics.ProfileUpdates.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to update skills: %w", err)
	}

	metrics.ProfileUpdates.WithLabelValues("success").Inc()
	logger.Info("mentee skills updated",
		zap.String("user_id", session.UserID),
		zap.Int("skills", len(profile.Skills)),
		zap.Int("target_roles", len(profile.TargetRoles)))

	return profile, nil
}

// UploadAvatar validates and stores a mentor's avatar image, then persists
// the public URL on the mentor row. Only users with a mentor record may
// upload.
func (s *ProfileService) UploadAvatar(ctx context.Context, session *models.Session, req *models.UploadAvatarRequest) (string, error) {
	if session == nil {
		return "", apperrors.ErrNotAuthenticated
	}

	mentor, err := s.mentorRepo.GetByUserID(ctx, session.UserID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			metrics.AvatarUploads.WithLabelValues("denied").Inc()
			return "", apperrors.AccessDeniedError("only mentors can upload avatars")
		}
		return "", fmt.Errorf("failed to load mentor profile: %w", err)
	}

	if s.storage == nil {
		metrics.AvatarUploads.WithLabelValues("error").Inc()
		return "", apperrors.FetchFailedError("avatar upload", errors.New("object storage is not configured"))
	}

	if err := s.storage.ValidateImageType(req.ContentType); err != nil {
		metrics.AvatarUploads.WithLabelValues("invalid").Inc()
		return "", apperrors.InvalidInputError("contentType", err.Error())
	}
	if err := s.storage.ValidateImageSize(req.Image); err != nil {
		metrics.AvatarUploads.WithLabelValues("invalid").Inc()
		return "", apperrors.InvalidInputError("image", err.Error())
	}

	key := s.storage.GenerateFileName(mentor.UserID, req.FileName)
	url, err := s.storage.UploadImage(ctx, req.Image, key, req.ContentType)
	if err != nil {
		metrics.AvatarUploads.WithLabelValues("error").Inc()
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := s.mentorRepo.UpdateAvatar(ctx, mentor.ID, url); err != nil {
		metrics.AvatarUploads.WithLabelValues("error").Inc()
		return "", fmt.Errorf("failed to save avatar url: %w", err)
	}

	metrics.AvatarUploads.WithLabelValues("success").Inc()
	logger.Info("avatar uploaded",
		zap.String("mentor_id", mentor.ID),
		zap.String("key", key))

	return url, nil
}
