package matching_test

import (
	"testing"

	"github.com/careerbrew/careerbrew-api/internal/matching"
	"github.com/careerbrew/careerbrew-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func mentee(skills, roles []string) *models.MenteeProfile {
	return &models.MenteeProfile{
		UserID:      "mentee-1",
		Skills:      skills,
		TargetRoles: roles,
		Level:       models.LevelIntermediate,
	}
}

func mentor(id string, skills, roles []string) *models.MentorCandidate {
	return &models.MentorCandidate{
		ID:       id,
		Name:     "Mentor " + id,
		Skills:   skills,
		Roles:    roles,
		Active:   true,
		Verified: true,
	}
}

func TestScore_SubstringOverlapScenario(t *testing.T) {
	m := mentee([]string{"Cloud Security", "Ethical Hacking"}, nil)
	c := mentor("a", []string{"cloud", "incident response"}, nil)

	result := matching.Score(m, c)

	// The mentee-side label is reported
	assert.Equal(t, []string{"Cloud Security"}, result.SharedSkills)
	assert.Equal(t, 50, result.SkillsScore)
	assert.Equal(t, 0, result.RolesScore)
	assert.Equal(t, 25, result.CompatibilityScore)
}

func TestScore_CaseInsensitiveBothDirections(t *testing.T) {
	result := matching.Score(
		mentee([]string{"Cloud"}, nil),
		mentor("a", []string{"cloud security"}, nil),
	)
	assert.Equal(t, []string{"Cloud"}, result.SharedSkills)
	assert.Equal(t, 100, result.SkillsScore)

	reversed := matching.Score(
		mentee([]string{"cloud security"}, nil),
		mentor("a", []string{"Cloud"}, nil),
	)
	assert.Equal(t, []string{"cloud security"}, reversed.SharedSkills)
	assert.Equal(t, 100, reversed.SkillsScore)
}

func TestScore_EmptyMenteeSetsYieldZero(t *testing.T) {
	result := matching.Score(
		mentee([]string{}, []string{}),
		mentor("a", []string{"Go", "Kubernetes"}, []string{"SRE"}),
	)

	assert.Equal(t, 0, result.SkillsScore)
	assert.Equal(t, 0, result.RolesScore)
	assert.Equal(t, 0, result.CompatibilityScore)
	assert.True(t, result.IsLimited())
}

func TestScore_MentorWithNoSkillsIsValidLimitedMatch(t *testing.T) {
	result := matching.Score(
		mentee([]string{"Go"}, []string{"Backend Engineer"}),
		mentor("a", nil, nil),
	)

	assert.Empty(t, result.SharedSkills)
	assert.Empty(t, result.SharedRoles)
	assert.Equal(t, 0, result.CompatibilityScore)
	assert.True(t, result.IsLimited())
}

func TestScore_CompatibilityIsRoundedMean(t *testing.T) {
	// 1 of 3 skills matched (33), 1 of 1 roles matched (100) -> round(66.5) = 67
	result := matching.Score(
		mentee([]string{"Go", "Rust", "Zig"}, []string{"Platform Engineer"}),
		mentor("a", []string{"go"}, []string{"platform"}),
	)

	assert.Equal(t, 33, result.SkillsScore)
	assert.Equal(t, 100, result.RolesScore)
	assert.Equal(t, 67, result.CompatibilityScore)
}

func TestScore_ScoresStayInRange(t *testing.T) {
	cases := []struct {
		name   string
		skills []string
		theirs []string
	}{
		{"disjoint", []string{"Haskell"}, []string{"Figma"}},
		{"identical", []string{"Go", "SQL"}, []string{"Go", "SQL"}},
		{"empty mentee", nil, []string{"Go"}},
		{"empty mentor", []string{"Go"}, nil},
		{"both empty", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := matching.Score(mentee(tc.skills, nil), mentor("a", tc.theirs, nil))
			assert.GreaterOrEqual(t, result.SkillsScore, 0)
			assert.LessOrEqual(t, result.SkillsScore, 100)
			assert.GreaterOrEqual(t, result.CompatibilityScore, 0)
			assert.LessOrEqual(t, result.CompatibilityScore, 100)
		})
	}
}

func TestScore_DeterministicForSameInputs(t *testing.T) {
	m := mentee([]string{"Cloud Security", "Go"}, []string{"SRE"})
	c := mentor("a", []string{"cloud", "golang"}, []string{"sre", "devops"})

	first := matching.Score(m, c)
	second := matching.Score(m, c)

	assert.Equal(t, first, second)
}

func TestScore_MenteeLabelCountedOnce(t *testing.T) {
	// "Cloud" matches both mentor labels but contributes one overlap entry
	result := matching.Score(
		mentee([]string{"Cloud"}, nil),
		mentor("a", []string{"Cloud Security", "Cloud Architecture"}, nil),
	)

	assert.Equal(t, []string{"Cloud"}, result.SharedSkills)
	assert.Equal(t, 100, result.SkillsScore)
}

func TestScoreAll_KeepsZeroScoreResults(t *testing.T) {
	m := mentee(nil, nil)
	candidates := []*models.MentorCandidate{
		mentor("a", []string{"Go"}, nil),
		mentor("b", []string{"Rust"}, nil),
	}

	results := matching.ScoreAll(m, candidates)

	assert.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, 0, r.CompatibilityScore)
	}
}
