package models

import "time"

// RequestStatus represents the lifecycle status of a mentorship request
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusAccepted RequestStatus = "accepted"
	StatusDeclined RequestStatus = "declined"
)

// OutstandingStatuses are the statuses considered by the duplicate-request
// advisory check.
var OutstandingStatuses = []RequestStatus{StatusPending, StatusAccepted}

// IsValid reports whether the status is one of the known values
func (s RequestStatus) IsValid() bool {
	return s == StatusPending || s == StatusAccepted || s == StatusDeclined
}

// IsTerminal returns true if the status allows no further transitions
func (s RequestStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusDeclined
}

// CanTransitionTo checks if a status transition is valid. Only the mentor
// moves a request out of pending.
func (s RequestStatus) CanTransitionTo(newStatus RequestStatus) bool {
	if s.IsTerminal() {
		return false
	}
	return newStatus == StatusAccepted || newStatus == StatusDeclined
}

// MentorshipRequest is a standing ask from a mentee to a mentor
type MentorshipRequest struct {
	ID         string        `json:"id"`
	MenteeID   string        `json:"menteeId"`
	MentorID   string        `json:"mentorId"`
	Message    string        `json:"message"`
	Status     RequestStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	ModifiedAt time.Time     `json:"modifiedAt"`
}

// DuplicateAdvisory is the outcome of the pre-creation duplicate check.
// It is advisory only: creation is never blocked, and no uniqueness
// constraint guards against concurrent duplicates from two sessions.
type DuplicateAdvisory string

const (
	// AdvisoryProceed: no outstanding requests, proceed silently
	AdvisoryProceed DuplicateAdvisory = "proceed"
	// AdvisoryWarnPending: pending requests exist, warn but allow proceeding
	AdvisoryWarnPending DuplicateAdvisory = "warn_allow_proceed"
	// AdvisoryWarnAccepted: an accepted mentorship exists, warn strongly and
	// default the client action to cancel
	AdvisoryWarnAccepted DuplicateAdvisory = "warn_default_cancel"
)

// DuplicateCheckResponse is returned by the dedup advisory endpoint
type DuplicateCheckResponse struct {
	Advisory    DuplicateAdvisory    `json:"advisory"`
	Outstanding []*MentorshipRequest `json:"outstanding"`
}

// CreateRequestPayload is the payload for creating a mentorship request
type CreateRequestPayload struct {
	MentorID string `json:"mentorId" binding:"required,uuid"`
	Message  string `json:"message" binding:"max=2000"`
}

// CreateRequestResponse echoes the advisory computed at creation time
type CreateRequestResponse struct {
	Request  *MentorshipRequest `json:"request"`
	Advisory DuplicateAdvisory  `json:"advisory"`
}

// UpdateRequestStatusPayload is the payload for the mentor-side status update
type UpdateRequestStatusPayload struct {
	Status RequestStatus `json:"status" binding:"required,oneof=accepted declined"`
}
