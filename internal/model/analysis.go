package model

import (
	"math"

	"github.com/tidwall/gjson"
)

// SectionOrder is the display order of section strength scores. Keys not in
// this list follow in document order.
var SectionOrder = []string{"workExperience", "skills", "education", "summary", "projects"}

// Analysis is the structured feedback for one resume against one job
// description, plus the resume fields re-extracted from the uploaded file.
type Analysis struct {
	Score              int            `json:"score"`
	SummaryFeedback    string         `json:"summaryFeedback"`
	SkillsFeedback     string         `json:"skillsFeedback"`
	ExperienceFeedback string         `json:"experienceFeedback"`
	KeywordMatches     KeywordMatches `json:"keywordMatches"`
	Suggestions        []string       `json:"suggestions"`
	SectionAnalysis    SectionScores  `json:"sectionAnalysis"`
	UserInfo           UserInfo       `json:"userInfo"`
	Resume             Record         `json:"resume"`
}

type KeywordMatches struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}

type UserInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type SectionScore struct {
	Key   string
	Score int
}

// SectionScores marshals as an object keyed by section, in slice order.
type SectionScores []SectionScore

func (s SectionScores) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	for _, sc := range s {
		w.field(sc.Key, sc.Score)
	}
	return w.bytes(), nil
}

// ParseAnalysis reads an analysis document. Both the raw completion shape
// (userInfo, experienceDetails, projectName, ...) and a previously marshalled
// Analysis (with a "resume" object) are accepted. Missing or mistyped fields
// read as zero values.
func ParseAnalysis(raw []byte) *Analysis {
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		root = gjson.Parse("{}")
	}

	a := &Analysis{
		Score:              clampScore(root.Get("score")),
		SummaryFeedback:    Str(root, "summaryFeedback"),
		SkillsFeedback:     Str(root, "skillsFeedback"),
		ExperienceFeedback: Str(root, "experienceFeedback"),
		KeywordMatches: KeywordMatches{
			Found:   nonNil(StrList(root, "keywordMatches.found")),
			Missing: nonNil(StrList(root, "keywordMatches.missing")),
		},
		Suggestions:     nonNil(Strings(root, "suggestions")),
		SectionAnalysis: sectionScores(root.Get("sectionAnalysis")),
		UserInfo: UserInfo{
			Name:    Str(root, "userInfo.name", "name"),
			Email:   Str(root, "userInfo.email", "email"),
			Phone:   Str(root, "userInfo.phone", "phone"),
			Address: Str(root, "userInfo.address", "userInfo.location", "location"),
		},
	}

	if res := root.Get("resume"); res.IsObject() {
		a.Resume = Normalize([]byte(res.Raw))
	} else {
		a.Resume = liftResume(root, a.UserInfo)
	}
	return a
}

// liftResume maps the completion field names onto the record shape the
// renderers read.
func liftResume(root gjson.Result, info UserInfo) Record {
	w := newObjectWriter()
	w.field("name", info.Name)
	w.field("email", info.Email)
	w.field("phone", info.Phone)
	w.field("location", info.Address)
	w.field("jobTitle", Str(root, "jobTitle", "experienceDetails.0.jobTitle", "experience.0.jobTitle"))
	w.field("summary", Str(root, "summary"))
	w.rawField("links", rawOr(root.Get("links"), "[]"))
	w.rawField("skills", rawOr(root.Get("skills"), "[]"))
	if ts := root.Get("technicalSkills"); ts.IsObject() {
		w.rawField("technicalSkills", ts.Raw)
	}
	w.rawField("experience", rawOr(firstExisting(root, "experienceDetails", "experience"), "[]"))
	w.rawField("education", rawOr(firstExisting(root, "educationDetails", "education"), "[]"))
	w.rawField("projects", rawOr(root.Get("projects"), "[]"))
	return Normalize(w.bytes())
}

func firstExisting(root gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if v := root.Get(p); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

func rawOr(v gjson.Result, def string) string {
	if !v.Exists() {
		return def
	}
	return v.Raw
}

func sectionScores(node gjson.Result) SectionScores {
	out := SectionScores{}
	if !node.IsObject() {
		return out
	}
	done := map[string]bool{}
	for _, k := range SectionOrder {
		if v := node.Get(k); v.Exists() {
			out = append(out, SectionScore{Key: k, Score: clampScore(v)})
			done[k] = true
		}
	}
	node.ForEach(func(key, value gjson.Result) bool {
		if k := key.String(); !done[k] {
			out = append(out, SectionScore{Key: k, Score: clampScore(value)})
			done[k] = true
		}
		return true
	})
	return out
}

func clampScore(v gjson.Result) int {
	var f float64
	switch v.Type {
	case gjson.Number, gjson.String:
		f = v.Float()
	default:
		return 0
	}
	if math.IsNaN(f) {
		return 0
	}
	return int(math.Max(0, math.Min(100, math.Round(f))))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// UnmarshalJSON accepts the same shapes as ParseAnalysis.
func (a *Analysis) UnmarshalJSON(b []byte) error {
	*a = *ParseAnalysis(b)
	return nil
}
