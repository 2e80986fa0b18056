package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/careerbrew/careerbrew-api/internal/models"
	"github.com/careerbrew/careerbrew-api/internal/repository"
	apperrors "github.com/careerbrew/careerbrew-api/pkg/errors"
	"github.com/careerbrew/careerbrew-api/pkg/logger"
	"github.com/careerbrew/careerbrew-api/pkg/metrics"
)

const (
	defaultTestimonialLimit = 10
	maxTestimonialLimit     = 50
)

// TestimonialService handles testimonial stats, listing and submission
type TestimonialService struct {
	testimonialRepo repository.TestimonialRepositoryInterface
	mentorRepo      repository.MentorRepositoryInterface
}

// NewTestimonialService creates a new testimonial service
func NewTestimonialService(testimonialRepo repository.TestimonialRepositoryInterface, mentorRepo repository.MentorRepositoryInterface) *TestimonialService {
	return &TestimonialService{
		testimonialRepo: testimonialRepo,
		mentorRepo:      mentorRepo,
	}
}

// GetStats returns aggregate rating stats for a mentor. A mentor with no
// approved testimonials gets zero counts and a zero average, not an error.
func (s *TestimonialService) GetStats(ctx context.Context, mentorID string) (*models.TestimonialStats, error) {
	if _, err := s.mentorRepo.GetByID(ctx, mentorID); err != nil {
		return nil, err
	}
	return s.testimonialRepo.GetStats(ctx, mentorID)
}

// List returns a page of approved testimonials for a mentor, newest first
// with featured entries pinned on top. Limit is clamped to a sane window.
func (s *TestimonialService) List(ctx context.Context, mentorID string, limit, offset int) (*models.TestimonialPage, error) {
	if limit <= 0 {
		limit = defaultTestimonialLimit
	}
	if limit > maxTestimonialLimit {
		limit = maxTestimonialLimit
	}
	if offset < 0 {
		offset = 0
	}

	if _, err := s.mentorRepo.GetByID(ctx, mentorID); err != nil {
		return nil, err
	}
	return s.testimonialRepo.List(ctx, mentorID, limit, offset)
}

// CanWrite reports whether the session user may submit a testimonial for the
// mentor: an accepted mentorship must exist and no prior testimonial by the
// same mentee.
func (s *TestimonialService) CanWrite(ctx context.Context, session *models.Session, mentorID string) (*models.CanWriteTestimonialResponse, error) {
	if session == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	allowed, reason, err := s.testimonialRepo.CanWrite(ctx, mentorID, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check testimonial eligibility: %w", err)
	}

	return &models.CanWriteTestimonialResponse{
		CanWrite: allowed,
		Reason:   reason,
	}, nil
}

// Submit stores a new testimonial pending moderation. The same eligibility
// rules as CanWrite apply at submission time.
func (s *TestimonialService) Submit(ctx context.Context, session *models.Session, mentorID string, req *models.SubmitTestimonialRequest) (*models.Testimonial, error) {
	if session == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	allowed, reason, err := s.testimonialRepo.CanWrite(ctx, mentorID, session.UserID)
	if err != nil {
		metrics.TestimonialSubmissions.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to check testimonial eligibility: %w", err)
	}
	if !allowed {
		metrics.TestimonialSubmissions.WithLabelValues("denied").Inc()
		return nil, apperrors.AccessDeniedError(reason)
	}

	testimonial := &models.Testimonial{
		MentorID:   mentorID,
		MenteeID:   session.UserID,
		AuthorName: session.Name,
		Text:       req.Text,
		Rating:     req.Rating,
	}

	id, err := s.testimonialRepo.Create(ctx, testimonial)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			metrics.TestimonialSubmissions.WithLabelValues("duplicate").Inc()
			return nil, err
		}
		metrics.TestimonialSubmissions.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	testimonial.ID = id
	metrics.TestimonialSubmissions.WithLabelValues("success").Inc()
	logger.Info("testimonial submitted",
		zap.String("testimonial_id", id),
		zap.String("mentor_id", mentorID),
		zap.Int("rating", req.Rating))

	return testimonial, nil
}
