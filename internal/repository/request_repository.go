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

// RequestRepositoryInterface defines mentorship request data access operations
type RequestRepositoryInterface interface {
	Create(ctx context.Context, menteeID, mentorID, message string) (*models.MentorshipRequest, error)
	GetByID(ctx context.Context, id string) (*models.MentorshipRequest, error)
	GetByMentee(ctx context.Context, menteeID string, statuses []models.RequestStatus) ([]*models.MentorshipRequest, error)
	GetByMentor(ctx context.Context, mentorID string, statuses []models.RequestStatus) ([]*models.MentorshipRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.RequestStatus) error
}

// RequestRepository handles mentorship request data access.
// There is deliberately no uniqueness constraint on (mentee_id, mentor_id):
// the duplicate check is a soft advisory, and concurrent creation from two
// sessions is a known, accepted gap.
type RequestRepository struct {
	pool *pgxpool.Pool
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

const requestColumns = `id, mentee_id, mentor_id, message, status, created_at, modified_at`

// Create inserts a new pending mentorship request
func (r *RequestRepository) Create(ctx context.Context, menteeID, mentorID, message string) (*models.MentorshipRequest, error) {
	start := time.Now()
	query := `
		INSERT INTO mentorship_requests (mentee_id, mentor_id, message, status)
		VALUES ($1, $2, $3, 'pending')
		RETURNING ` + requestColumns

	req, err := scanRequest(r.pool.QueryRow(ctx, query, menteeID, mentorID, message))
	duration := metrics.MeasureDuration(start)
	if err != nil {
		metrics.DBRequestDuration.WithLabelValues("createRequest", "error").Observe(duration)
		metrics.DBRequestTotal.WithLabelValues("createRequest", "error").Inc()
		return nil, apperrors.FetchFailedError("create mentorship request", err)
	}

	metrics.DBRequestDuration.WithLabelValues("createRequest", "success").Observe(duration)
	metrics.DBRequestTotal.WithLabelValues("createRequest", "success").Inc()
	return req, nil
}

// GetByID retrieves a single request
func (r *RequestRepository) GetByID(ctx context.Context, id string) (*models.MentorshipRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM mentorship_requests WHERE id = $1`

	req, err := scanRequest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundError("mentorship request")
		}
		return nil, apperrors.FetchFailedError("get mentorship request", err)
	}
	return req, nil
}

// GetByMentee retrieves the mentee's requests, optionally filtered by status.
// An empty status list means no filter.
func (r *RequestRepository) GetByMentee(ctx context.Context, menteeID string, statuses []models.RequestStatus) ([]*models.MentorshipRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM mentorship_requests
		WHERE mentee_id = $1 AND ($2::text[] IS NULL OR status = ANY($2))
		ORDER BY created_at DESC
	`
	return r.list(ctx, "getRequestsByMentee", query, menteeID, statusStrings(statuses))
}

// GetByMentor retrieves the mentor's incoming requests, optionally filtered by
// status. An empty status list means no filter.
func (r *RequestRepository) GetByMentor(ctx context.Context, mentorID string, statuses []models.RequestStatus) ([]*models.MentorshipRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM mentorship_requests
		WHERE mentor_id = $1 AND ($2::text[] IS NULL OR status = ANY($2))
		ORDER BY created_at DESC
	`
	return r.list(ctx, "getRequestsByMentor", query, mentorID, statusStrings(statuses))
}

// UpdateStatus moves a request to a new status
func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE mentorship_requests SET status = $2, modified_at = now() WHERE id = $1`,
		id, string(status))
	if err != nil {
		return apperrors.FetchFailedError("update request status", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundError("mentorship request")
	}
	return nil
}

func (r *RequestRepository) list(ctx context.Context, operation, query string, args ...any) ([]*models.MentorshipRequest, error) {
	start := time.Now()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		metrics.DBRequestTotal.WithLabelValues(operation, "error").Inc()
		return nil, apperrors.FetchFailedError("list mentorship requests", err)
	}
	defer rows.Close()

	requests := []*models.MentorshipRequest{}
	for rows.Next() {
		req, scanErr := scanRequest(rows)
		if scanErr != nil {
			metrics.DBRequestTotal.WithLabelValues(operation, "error").Inc()
			return nil, apperrors.FetchFailedError("scan mentorship request", scanErr)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		metrics.DBRequestTotal.WithLabelValues(operation, "error").Inc()
		return nil, apperrors.FetchFailedError("read mentorship requests", err)
	}

	metrics.DBRequestDuration.WithLabelValues(operation, "success").Observe(metrics.MeasureDuration(start))
	metrics.DBRequestTotal.WithLabelValues(operation, "success").Inc()
	return requests, nil
}

func scanRequest(row pgx.Row) (*models.MentorshipRequest, error) {
	var req models.MentorshipRequest
	err := row.Scan(
		&req.ID, &req.MenteeID, &req.MentorID, &req.Message,
		&req.Status, &req.CreatedAt, &req.ModifiedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// statusStrings converts the filter for pgx array binding; a nil result maps
// to SQL NULL, which the queries above treat as "no filter".
func statusStrings(statuses []models.RequestStatus) []string {
	if len(statuses) == 0 {
		return nil
	}
	result := make([]string, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, string(s))
	}
	return result
}
