package repository

import (
	"context"
	"errors"
	"time"

	"github.com/careerbrew/careerbrew-api/internal/models"
	apperrors "github.com/careerbrew/careerbrew-api/pkg/errors"
	"github.com/careerbrew/careerbrew-api/pkg/metrics"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestimonialRepositoryInterface defines testimonial data access operations
type TestimonialRepositoryInterface interface {
	GetStats(ctx context.Context, mentorID string) (*models.TestimonialStats, error)
	List(ctx context.Context, mentorID string, limit, offset int) (*models.TestimonialPage, error)
	Create(ctx context.Context, t *models.Testimonial) (string, error)
	CanWrite(ctx context.Context, mentorID, menteeID string) (bool, string, error)
}

// TestimonialRepository handles testimonial data access
type TestimonialRepository struct {
	pool *pgxpool.Pool
}

// NewTestimonialRepository creates a new testimonial repository
func NewTestimonialRepository(pool *pgxpool.Pool) *TestimonialRepository {
	return &TestimonialRepository{pool: pool}
}

// GetStats returns aggregate rating statistics over approved testimonials.
// A mentor with zero testimonials yields all-zero stats.
func (r *TestimonialRepository) GetStats(ctx context.Context, mentorID string) (*models.TestimonialStats, error) {
	start := time.Now()
	query := `
		SELECT COUNT(*),
			COALESCE(ROUND(AVG(rating)::numeric, 2), 0),
			COUNT(*) FILTER (WHERE rating = 1),
			COUNT(*) FILTER (WHERE rating = 2),
			COUNT(*) FILTER (WHERE rating = 3),
			COUNT(*) FILTER (WHERE rating = 4),
			COUNT(*) FILTER (WHERE rating = 5)
		FROM testimonials
		WHERE mentor_id = $1 AND approved = true
	`

	var stats models.TestimonialStats
	err := r.pool.QueryRow(ctx, query, mentorID).Scan(
		&stats.TotalReviews, &stats.AverageRating,
		&stats.Rating1, &stats.Rating2, &stats.Rating3, &stats.Rating4, &stats.Rating5,
	)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		metrics.DBRequestDuration.WithLabelValues("getTestimonialStats", "error").Observe(duration)
		metrics.DBRequestTotal.WithLabelValues("getTestimonialStats", "error").Inc()
		return nil, apperrors.FetchFailedError("get testimonial stats", err)
	}

	metrics.DBRequestDuration.WithLabelValues("getTestimonialStats", "success").Observe(duration)
	metrics.DBRequestTotal.WithLabelValues("getTestimonialStats", "success").Inc()
	return &stats, nil
}

// List returns one page of approved testimonials, featured first then newest
func (r *TestimonialRepository) List(ctx context.Context, mentorID string, limit, offset int) (*models.TestimonialPage, error) {
	start := time.Now()

	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM testimonials WHERE mentor_id = $1 AND approved = true`,
		mentorID).Scan(&total)
	if err != nil {
		metrics.DBRequestTotal.WithLabelValues("listTestimonials", "error").Inc()
		return nil, apperrors.FetchFailedError("count testimonials", err)
	}

	query := `
		SELECT id, mentor_id, mentee_id, author_name, text, rating, featured, created_at
		FROM testimonials
		WHERE mentor_id = $1 AND approved = true
		ORDER BY featured DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, mentorID, limit, offset)
	if err != nil {
		metrics.DBRequestTotal.WithLabelValues("listTestimonials", "error").Inc()
		return nil, apperrors.FetchFailedError("list testimonials", err)
	}
	defer rows.Close()

	testimonials := []*models.Testimonial{}
	for rows.Next() {
		var t models.Testimonial
		scanErr := rows.Scan(
			&t.ID, &t.MentorID, &t.MenteeID, &t.AuthorName,
			&t.Text, &t.Rating, &t.Featured, &t.CreatedAt,
		)
		if scanErr != nil {
			metrics.DBRequestTotal.WithLabelValues("listTestimonials", "error").Inc()
			return nil, apperrors.FetchFailedError("scan testimonial", scanErr)
		}
		t.Approved = true
		testimonials = append(testimonials, &t)
	}
	if err := rows.Err(); err != nil {
		metrics.DBRequestTotal.WithLabelValues("listTestimonials", "error").Inc()
		return nil, apperrors.FetchFailedError("read testimonials", err)
	}

	metrics.DBRequestDuration.WithLabelValues("listTestimonials", "success").Observe(metrics.MeasureDuration(start))
	metrics.DBRequestTotal.WithLabelValues("listTestimonials", "success").Inc()

	return &models.TestimonialPage{
		Testimonials: testimonials,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
		HasMore:      offset+len(testimonials) < total,
	}, nil
}

// Create inserts a testimonial pending approval. One testimonial per
// mentor-mentee pair; a second insert surfaces as ErrConflict.
func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) (string, error) {
	query := `
		INSERT INTO testimonials (mentor_id, mentee_id, author_name, text, rating, approved)
		VALUES ($1, $2, $3, $4, $5, false)
		RETURNING id
	`

	var id string
	err := r.pool.QueryRow(ctx, query, t.MentorID, t.MenteeID, t.AuthorName, t.Text, t.Rating).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", apperrors.ErrConflict
		}
		return "", apperrors.FetchFailedError("create testimonial", err)
	}

	return id, nil
}

// CanWrite reports whether the mentee may review the mentor: an accepted
// mentorship request must exist and no testimonial may have been written yet.
func (r *TestimonialRepository) CanWrite(ctx context.Context, mentorID, menteeID string) (bool, string, error) {
	query := `
		SELECT
			EXISTS(
				SELECT 1 FROM mentorship_requests
				WHERE mentor_id = $1 AND mentee_id = $2 AND status = 'accepted'
			),
			EXISTS(
				SELECT 1 FROM testimonials
				WHERE mentor_id = $1 AND mentee_id = $2
			)
	`

	var hasAccepted, hasTestimonial bool
	err := r.pool.QueryRow(ctx, query, mentorID, menteeID).Scan(&hasAccepted, &hasTestimonial)
	if err != nil {
		return false, "", apperrors.FetchFailedError("check testimonial eligibility", err)
	}

	if !hasAccepted {
		return false, "no accepted mentorship with this mentor", nil
	}
	if hasTestimonial {
		return false, "testimonial already written", nil
	}
	return true, "", nil
}
