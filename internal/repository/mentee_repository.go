package repository

import (
	"context"
	"errors"
	"time"

	"github.com/careerbrew/careerbrew-api/internal/models"
	apperrors "github.com/careerbrew/careerbrew-api/pkg/errors"
	"github.com/careerbrew/careerbrew-api/pkg/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MenteeRepositoryInterface defines mentee data access operations
type MenteeRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID string) (*models.MenteeProfile, error)
	UpsertSkills(ctx context.Context, userID string, req *models.UpdateSkillsRequest) (*models.MenteeProfile, error)
}

// MenteeRepository handles mentee data access
type MenteeRepository struct {
	pool *pgxpool.Pool
}

// NewMenteeRepository creates a new mentee repository
func NewMenteeRepository(pool *pgxpool.Pool) *MenteeRepository {
	return &MenteeRepository{pool: pool}
}

// GetByUserID retrieves the mentee profile for a user. Returns
// ErrProfileMissing when the user has no mentee row; the service layer
// synthesizes a fallback profile in that case.
func (r *MenteeRepository) GetByUserID(ctx context.Context, userID string) (*models.MenteeProfile, error) {
	start := time.Now()
	query := `
		SELECT id, user_id, name, bio, location, skills, target_roles,
			level, learning_goals, study_level, study_field
		FROM mentees
		WHERE user_id = $1
	`

	var p models.MenteeProfile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Bio, &p.Location, &p.Skills,
		&p.TargetRoles, &p.Level, &p.LearningGoals, &p.StudyLevel, &p.StudyField,
	)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			metrics.DBRequestTotal.WithLabelValues("getMentee", "not_found").Inc()
			return nil, apperrors.ErrProfileMissing
		}
		metrics.DBRequestDuration.WithLabelValues("getMentee", "error").Observe(duration)
		metrics.DBRequestTotal.WithLabelValues("getMentee", "error").Inc()
		return nil, apperrors.FetchFailedError("get mentee profile", err)
	}

	metrics.DBRequestDuration.WithLabelValues("getMentee", "success").Observe(duration)
	metrics.DBRequestTotal.WithLabelValues("getMentee", "success").Inc()

	p.Normalize()
	return &p, nil
}

// UpsertSkills creates or updates the mentee's skill profile and returns the
// stored row.
func (r *MenteeRepository) UpsertSkills(ctx context.Context, userID string, req *models.UpdateSkillsRequest) (*models.MenteeProfile, error) {
	start := time.Now()
	query := `
		INSERT INTO mentees (user_id, skills, target_roles, level)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET skills = EXCLUDED.skills,
			target_roles = EXCLUDED.target_roles,
			level = EXCLUDED.level,
			modified_at = now()
		RETURNING id, user_id, name, bio, location, skills, target_roles,
			level, learning_goals, study_level, study_field
	`

	var p models.MenteeProfile
	err := r.pool.QueryRow(ctx, query, userID, req.Skills, req.TargetRoles, req.Level).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Bio, &p.Location, &p.Skills,
		&p.TargetRoles, &p.Level, &p.LearningGoals, &p.StudyLevel, &p.StudyField,
	)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		metrics.DBRequestDuration.WithLabelValues("upsertMenteeSkills", "error").Observe(duration)
		metrics.DBRequestTotal.WithLabelValues("upsertMenteeSkills", "error").Inc()
		return nil, apperrors.FetchFailedError("upsert mentee skills", err)
	}

	metrics.DBRequestDuration.WithLabelValues("upsertMenteeSkills", "success").Observe(duration)
	metrics.DBRequestTotal.WithLabelValues("upsertMenteeSkills", "success").Inc()

	p.Normalize()
	return &p, nil
}
