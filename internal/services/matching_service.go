package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/careerbrew/careerbrew-api/internal/cache"
	"github.com/careerbrew/careerbrew-api/internal/matching"
	"github.com/careerbrew/careerbrew-api/internal/models"
	apperrors "github.com/careerbrew/careerbrew-api/pkg/errors"
	"github.com/careerbrew/careerbrew-api/pkg/logger"
	"github.com/careerbrew/careerbrew-api/pkg/metrics"
)

// ErrNoActiveSession indicates the mentee has no in-flight matching session
// (never started, or expired from the session store)
var ErrNoActiveSession = errors.New("no active matching session")

// MatchSessionResponse is the result of starting a matching session
type MatchSessionResponse struct {
	Total    int                   `json:"total"`
	Position int                   `json:"position"`
	Match    *matching.MatchResult `json:"match,omitempty"`
	Fallback bool                  `json:"fallbackProfile"`
}

// MatchStepResponse is the result of a cursor operation on an active session.
// Exhausted is set when the final match has been passed; the cursor has been
// reset and Match is empty.
type MatchStepResponse struct {
	Total     int                   `json:"total"`
	Position  int                   `json:"position"`
	Match     *matching.MatchResult `json:"match,omitempty"`
	Exhausted bool                  `json:"exhausted,omitempty"`
	AtStart   bool                  `json:"atStart,omitempty"`
}

// MatchingService orchestrates the matching flow: profile load, candidate
// fetch, scoring, ranking and cursor traversal
type MatchingService struct {
	profiles      ProfileServiceInterface
	candidates    CandidateSource
	sessions      *cache.SessionStore
	maxCandidates int
}

// NewMatchingService creates a new matching service
func NewMatchingService(profiles ProfileServiceInterface, candidates CandidateSource, sessions *cache.SessionStore, maxCandidates int) *MatchingService {
	return &MatchingService{
		profiles:      profiles,
		candidates:    candidates,
		sessions:      sessions,
		maxCandidates: maxCandidates,
	}
}

// StartMatching builds a fresh ranked snapshot for the session user and
// replaces any previous session. Candidate fetch failures degrade to an empty
// pool rather than failing the whole flow; the client sees the same state as
// "no candidates available".
func (s *MatchingService) StartMatching(ctx context.Context, session *models.Session) (*MatchSessionResponse, error) {
	if session == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	profile, err := s.profiles.GetProfile(ctx, session)
	if err != nil {
		metrics.MatchSessionsStarted.WithLabelValues("error").Inc()
		return nil, err
	}

	candidates, err := s.candidates.Get(ctx)
	if err != nil {
		logger.Error("candidate fetch failed, starting with empty pool",
			zap.String("user_id", session.UserID),
			zap.Error(err))
		metrics.MatchSessionsStarted.WithLabelValues("degraded").Inc()
		candidates = []*models.MentorCandidate{}
	} else {
		metrics.MatchSessionsStarted.WithLabelValues("success").Inc()
	}

	if len(candidates) > s.maxCandidates {
		candidates = candidates[:s.maxCandidates]
	}

	start := time.Now()
	results := matching.ScoreAll(profile, candidates)
	seq := matching.Rank(results)
	metrics.MatchScoringDuration.Observe(metrics.MeasureDuration(start))
	metrics.MatchCandidatesScored.Observe(float64(len(results)))

	s.sessions.Put(session.UserID, seq)

	logger.Info("matching session started",
		zap.String("user_id", session.UserID),
		zap.Int("candidates", len(results)),
		zap.Bool("fallback_profile", profile.Fallback))

	resp := &MatchSessionResponse{
		Total:    seq.Len(),
		Fallback: profile.Fallback,
	}
	if current, err := seq.Current(); err == nil {
		resp.Match = &current
		resp.Position = seq.Position()
	}
	return resp, nil
}

// CurrentMatch returns the match under the session cursor
func (s *MatchingService) CurrentMatch(ctx context.Context, session *models.Session) (*MatchStepResponse, error) {
	seq, err := s.activeSequence(session)
	if err != nil {
		return nil, err
	}
	return stepResponse(seq, seq.Current)
}

// NextMatch advances the session cursor. Past the final match it returns an
// exhausted response with the cursor reset to the start, so the next
// traversal begins from the best match again.
func (s *MatchingService) NextMatch(ctx context.Context, session *models.Session) (*MatchStepResponse, error) {
	seq, err := s.activeSequence(session)
	if err != nil {
		return nil, err
	}
	return stepResponse(seq, seq.Next)
}

// PreviousMatch moves the session cursor back. At the first match the cursor
// stays put and the response flags the boundary.
func (s *MatchingService) PreviousMatch(ctx context.Context, session *models.Session) (*MatchStepResponse, error) {
	seq, err := s.activeSequence(session)
	if err != nil {
		return nil, err
	}
	return stepResponse(seq, seq.Previous)
}

// GetMatches returns the full ranked snapshot of the active session without
// moving the cursor
func (s *MatchingService) GetMatches(ctx context.Context, session *models.Session) ([]matching.MatchResult, error) {
	seq, err := s.activeSequence(session)
	if err != nil {
		return nil, err
	}
	return seq.Results(), nil
}

func (s *MatchingService) activeSequence(session *models.Session) (*matching.Sequence, error) {
	if session == nil {
		return nil, apperrors.ErrNotAuthenticated
	}
	seq, ok := s.sessions.Get(session.UserID)
	if !ok {
		return nil, ErrNoActiveSession
	}
	return seq, nil
}

func stepResponse(seq *matching.Sequence, step func() (matching.MatchResult, error)) (*MatchStepResponse, error) {
	resp := &MatchStepResponse{Total: seq.Len()}

	result, err := step()
	switch {
	case err == nil:
		resp.Match = &result
		resp.Position = seq.Position()
	case errors.Is(err, matching.ErrEndOfMatches):
		resp.Exhausted = true
		resp.Position = seq.Position()
	case errors.Is(err, matching.ErrStartOfMatches):
		current, cerr := seq.Current()
		if cerr != nil {
			return nil, cerr
		}
		resp.AtStart = true
		resp.Match = &current
		resp.Position = seq.Position()
	case errors.Is(err, matching.ErrNoMatches):
		// empty snapshot: total 0, no match
	default:
		return nil, err
	}

	return resp, nil
}
