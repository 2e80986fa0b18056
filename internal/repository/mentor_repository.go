package repository

import (
	"context"
	"time"

	"github.com/careerbrew/careerbrew-api/internal/models"
	apperrors "github.com/careerbrew/careerbrew-api/pkg/errors"
	"github.com/careerbrew/careerbrew-api/pkg/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MentorRepositoryInterface defines mentor data access operations
type MentorRepositoryInterface interface {
	GetActiveCandidates(ctx context.Context, limit int) ([]*models.MentorCandidate, error)
	GetByID(ctx context.Context, id string) (*models.MentorCandidate, error)
	GetByUserID(ctx context.Context, userID string) (*models.MentorCandidate, error)
	UpdateAvatar(ctx context.Context, mentorID, avatarURL string) error
}

// MentorRepository handles mentor data access
type MentorRepository struct {
	pool *pgxpool.Pool
}

// NewMentorRepository creates a new mentor repository
func NewMentorRepository(pool *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{pool: pool}
}

const mentorColumns = `id, user_id, name, skills, roles, experience_level,
	hourly_rate, weekly_availability, bio, location, certifications,
	avatar_url, active, verified`

// GetActiveCandidates retrieves up to limit mentors eligible for matching.
// Ordering is by creation time; the matching core re-ranks the snapshot
// deterministically anyway.
func (r *MentorRepository) GetActiveCandidates(ctx context.Context, limit int) ([]*models.MentorCandidate, error) {
	start := time.Now()
	query := `
		SELECT ` + mentorColumns + `
		FROM mentors
		WHERE active = true AND verified = true
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		metrics.DBRequestTotal.WithLabelValues("getCandidates", "error").Inc()
		return nil, apperrors.FetchFailedError("get mentor candidates", err)
	}
	defer rows.Close()

	candidates := make([]*models.MentorCandidate, 0, limit)
	for rows.Next() {
		candidate, scanErr := scanMentor(rows)
		if scanErr != nil {
			metrics.DBRequestTotal.WithLabelValues("getCandidates", "error").Inc()
			return nil, apperrors.FetchFailedError("scan mentor candidate", scanErr)
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		metrics.DBRequestTotal.WithLabelValues("getCandidates", "error").Inc()
		return nil, apperrors.FetchFailedError("read mentor candidates", err)
	}

	metrics.DBRequestDuration.WithLabelValues("getCandidates", "success").Observe(metrics.MeasureDuration(start))
	metrics.DBRequestTotal.WithLabelValues("getCandidates", "success").Inc()
	return candidates, nil
}

// GetByID retrieves a mentor by ID
func (r *MentorRepository) GetByID(ctx context.Context, id string) (*models.MentorCandidate, error) {
	query := `SELECT ` + mentorColumns + ` FROM mentors WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByUserID retrieves the mentor row owned by a user
func (r *MentorRepository) GetByUserID(ctx context.Context, userID string) (*models.MentorCandidate, error) {
	query := `SELECT ` + mentorColumns + ` FROM mentors WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

func (r *MentorRepository) getOne(ctx context.Context, query string, arg any) (*models.MentorCandidate, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, apperrors.FetchFailedError("get mentor", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, apperrors.FetchFailedError("get mentor", err)
		}
		return nil, apperrors.NotFoundError("mentor")
	}

	candidate, err := scanMentor(rows)
	if err != nil {
		return nil, apperrors.FetchFailedError("scan mentor", err)
	}
	return candidate, nil
}

// UpdateAvatar stores the mentor's avatar URL
func (r *MentorRepository) UpdateAvatar(ctx context.Context, mentorID, avatarURL string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE mentors SET avatar_url = $2, modified_at = now() WHERE id = $1`,
		mentorID, avatarURL)
	if err != nil {
		return apperrors.FetchFailedError("update mentor avatar", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundError("mentor")
	}
	return nil
}

func scanMentor(row pgx.Row) (*models.MentorCandidate, error) {
	var m models.MentorCandidate
	err := row.Scan(
		&m.ID, &m.UserID, &m.Name, &m.Skills, &m.Roles, &m.ExperienceLevel,
		&m.HourlyRate, &m.WeeklyAvailability, &m.Bio, &m.Location,
		&m.Certifications, &m.AvatarURL, &m.Active, &m.Verified,
	)
	if err != nil {
		return nil, err
	}
	m.Normalize()
	return &m, nil
}
