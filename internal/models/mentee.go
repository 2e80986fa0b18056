package models

import "strings"

// SkillLevel is a mentee's current skill level
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

// IsValid reports whether the level is one of the known values
func (l SkillLevel) IsValid() bool {
	return l == LevelBeginner || l == LevelIntermediate || l == LevelAdvanced
}

// MenteeProfile represents a user seeking mentorship
type MenteeProfile struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Name          string     `json:"name"`
	Bio           string     `json:"bio"`
	Location      string     `json:"location"`
	Skills        []string   `json:"skills"`
	TargetRoles   []string   `json:"targetRoles"`
	Level         SkillLevel `json:"level"`
	LearningGoals string     `json:"learningGoals"`
	StudyLevel    string     `json:"studyLevel"`
	StudyField    string     `json:"studyField"`
	Fallback      bool       `json:"fallback"` // true when synthesized because no mentee row exists
}

// FallbackProfile synthesizes a minimal profile from session attributes for
// users that have no mentee record yet. Skill and role sets are empty and the
// level defaults to beginner, so every candidate scores as a limited match.
func FallbackProfile(session *Session) *MenteeProfile {
	return &MenteeProfile{
		UserID:      session.UserID,
		Name:        session.Name,
		Skills:      []string{},
		TargetRoles: []string{},
		Level:       LevelBeginner,
		Fallback:    true,
	}
}

// Normalize trims whitespace from label sets and drops empty entries.
// Applied at the boundary so the scorer never sees malformed rows.
func (p *MenteeProfile) Normalize() {
	p.Skills = normalizeLabels(p.Skills)
	p.TargetRoles = normalizeLabels(p.TargetRoles)
	if !p.Level.IsValid() {
		p.Level = LevelBeginner
	}
}

func normalizeLabels(labels []string) []string {
	result := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label != "" {
			result = append(result, label)
		}
	}
	return result
}

// UpdateSkillsRequest is the payload for the mentee skills upsert
type UpdateSkillsRequest struct {
	Skills      []string `json:"skills" binding:"required,max=50,dive,min=1,max=100"`
	TargetRoles []string `json:"targetRoles" binding:"max=50,dive,min=1,max=100"`
	Level       string   `json:"level" binding:"required,oneof=beginner intermediate advanced"`
}
