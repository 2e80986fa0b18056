package models

// ExperienceLevel is a mentor's experience level label
type ExperienceLevel string

const (
	ExperienceMidLevel  ExperienceLevel = "mid-level"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExpert    ExperienceLevel = "expert"
	ExperiencePrincipal ExperienceLevel = "principal"
	ExperienceExecutive ExperienceLevel = "executive"
)

// IsValid reports whether the level is one of the known values
func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceMidLevel, ExperienceSenior, ExperienceExpert, ExperiencePrincipal, ExperienceExecutive:
		return true
	}
	return false
}

// MentorCandidate represents a mentor evaluated for matching.
// Only rows with Active and Verified both true are eligible candidates.
type MentorCandidate struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	Name               string          `json:"name"`
	Skills             []string        `json:"skills"`
	Roles              []string        `json:"roles"` // specialization roles
	ExperienceLevel    ExperienceLevel `json:"experienceLevel"`
	HourlyRate         *float64        `json:"hourlyRate"`         // optional, non-negative
	WeeklyAvailability *float64        `json:"weeklyAvailability"` // optional hours per week
	Bio                string          `json:"bio"`
	Location           string          `json:"location"`
	Certifications     []string        `json:"certifications"`
	AvatarURL          string          `json:"avatarUrl"`
	Active             bool            `json:"active"`
	Verified           bool            `json:"verified"`
}

// UploadAvatarRequest carries a base64-encoded avatar image
type UploadAvatarRequest struct {
	Image       string `json:"image" binding:"required"`
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// Normalize cleans label sets and defaults unexpected shapes rather than
// trusting rows from the store implicitly.
func (m *MentorCandidate) Normalize() {
	m.Skills = normalizeLabels(m.Skills)
	m.Roles = normalizeLabels(m.Roles)
	m.Certifications = normalizeLabels(m.Certifications)
	if m.HourlyRate != nil && *m.HourlyRate < 0 {
		m.HourlyRate = nil
	}
	if m.WeeklyAvailability != nil && *m.WeeklyAvailability < 0 {
		m.WeeklyAvailability = nil
	}
}
