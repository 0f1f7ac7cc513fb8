package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completion = `{
  "score": 112,
  "summaryFeedback": "Solid.",
  "keywordMatches": {"found": ["Go"], "missing": ["Kubernetes"]},
  "suggestions": ["Add metrics, numbers and impact"],
  "userInfo": {"name": "Ann Lee", "email": "ann@x.com", "phone": "", "address": "Pune"},
  "summary": "Backend engineer",
  "skills": ["Go", "SQL"],
  "experienceDetails": [{"jobTitle": "Engineer", "duration": "2020 - 2022", "description": "Built things"}],
  "sectionAnalysis": {"projects": 40, "workExperience": 90, "custom": "55"},
  "projects": [{"projectName": "CLI", "projectDescription": "tool", "toolsUsed": ["Go"]}],
  "links": [{"url": "github.com/ann", "type": "GitHub"}]
}`

func TestParseAnalysis(t *testing.T) {
	a := ParseAnalysis([]byte(completion))

	assert.Equal(t, 100, a.Score)
	assert.Equal(t, "Solid.", a.SummaryFeedback)
	assert.Equal(t, []string{"Go"}, a.KeywordMatches.Found)
	assert.Equal(t, []string{"Add metrics, numbers and impact"}, a.Suggestions)
	assert.Equal(t, "Pune", a.UserInfo.Address)

	require.Len(t, a.SectionAnalysis, 3)
	assert.Equal(t, SectionScore{Key: "workExperience", Score: 90}, a.SectionAnalysis[0])
	assert.Equal(t, SectionScore{Key: "projects", Score: 40}, a.SectionAnalysis[1])
	assert.Equal(t, SectionScore{Key: "custom", Score: 55}, a.SectionAnalysis[2])

	r := a.Resume
	assert.Equal(t, "Ann Lee", r.Name())
	assert.Equal(t, "Engineer", r.Str("jobTitle"))
	assert.Equal(t, "Pune", r.Str("location"))
	assert.Len(t, r.List("experience"), 1)
	assert.Empty(t, r.List("education"))
	assert.Equal(t, []string{"Go", "SQL"}, r.Skills())
}

func TestParseAnalysisGarbage(t *testing.T) {
	for _, in := range []string{``, `[]`, `{"score":"high","suggestions":null}`} {
		a := ParseAnalysis([]byte(in))
		assert.Equal(t, 0, a.Score)
		assert.NotNil(t, a.Suggestions)
		assert.NotNil(t, a.KeywordMatches.Missing)
		assert.True(t, a.Resume.Get("experience").IsArray())
	}
}

func TestAnalysisRoundTrip(t *testing.T) {
	a := ParseAnalysis([]byte(completion))
	b, err := json.Marshal(a)
	require.NoError(t, err)

	var back Analysis
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, a.Score, back.Score)
	assert.Equal(t, a.SectionAnalysis, back.SectionAnalysis)
	assert.Equal(t, string(a.Resume.Bytes()), string(back.Resume.Bytes()))
}
