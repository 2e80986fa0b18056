// Package matching implements the compatibility scoring and ranked match
// traversal at the heart of the cybermatch flow. Everything here is pure and
// in-memory: candidate snapshots are small (a handful of mentors with short
// label sets) and scoring the same inputs always yields the same output.
package matching

import (
	"math"
	"strings"

	"github.com/careerbrew/careerbrew-api/internal/models"
)

// MatchResult is the scored pairing of one mentee and one mentor candidate.
// It is ephemeral: computed per matching session and never persisted.
type MatchResult struct {
	MenteeID           string                  `json:"menteeId"`
	Mentor             *models.MentorCandidate `json:"mentor"`
	SkillsScore        int                     `json:"skillsScore"`
	RolesScore         int                     `json:"rolesScore"`
	CompatibilityScore int                     `json:"compatibilityScore"`
	SharedSkills       []string                `json:"sharedSkills"`
	SharedRoles        []string                `json:"sharedRoles"`
}

// IsLimited reports whether the pairing has no overlap at all. Limited
// matches are valid results and stay in the ranked output; clients present
// them as "Limited match" rather than suppressing the candidate.
func (r MatchResult) IsLimited() bool {
	return r.CompatibilityScore == 0
}

// Score computes the compatibility between one mentee profile and one mentor
// candidate. Pure function: no side effects, no I/O.
//
// Label overlap is case-insensitive bidirectional substring containment:
// mentee skill "Cloud" matches mentor skill "Cloud Security" and vice versa.
// This intentionally over-matches ("AI" matches "Air Traffic Control") and is
// preserved as-is for compatibility with existing client behavior.
//
// The reported shared labels are the mentee's labels, and each sub-score is
// the matched fraction of the mentee's set: 100 * |overlap| / |mentee set|,
// or 0 when the mentee's set is empty.
func Score(mentee *models.MenteeProfile, mentor *models.MentorCandidate) MatchResult {
	sharedSkills := overlap(mentee.Skills, mentor.Skills)
	sharedRoles := overlap(mentee.TargetRoles, mentor.Roles)

	skillsScore := ratioScore(len(sharedSkills), len(mentee.Skills))
	rolesScore := ratioScore(len(sharedRoles), len(mentee.TargetRoles))

	return MatchResult{
		MenteeID:           mentee.UserID,
		Mentor:             mentor,
		SkillsScore:        skillsScore,
		RolesScore:         rolesScore,
		CompatibilityScore: int(math.Round(float64(skillsScore+rolesScore) / 2)),
		SharedSkills:       sharedSkills,
		SharedRoles:        sharedRoles,
	}
}

// ScoreAll scores one mentee against every candidate in fetch order.
// Zero-score results are included, never filtered out.
func ScoreAll(mentee *models.MenteeProfile, candidates []*models.MentorCandidate) []MatchResult {
	results := make([]MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, Score(mentee, candidate))
	}
	return results
}

// overlap returns the mentee-side labels that match at least one mentor
// label. Each mentee label is counted once regardless of how many mentor
// labels it matches.
func overlap(menteeLabels, mentorLabels []string) []string {
	matched := make([]string, 0, len(menteeLabels))
	for _, mine := range menteeLabels {
		for _, theirs := range mentorLabels {
			if labelsMatch(mine, theirs) {
				matched = append(matched, mine)
				break
			}
		}
	}
	return matched
}

// labelsMatch implements the bidirectional substring containment rule
func labelsMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// ratioScore converts an overlap count into a 0-100 score. An empty mentee
// set scores 0, never NaN.
func ratioScore(matched, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(matched) / float64(total)))
}
