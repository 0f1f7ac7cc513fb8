package plan

// Preview is the section table of the on-screen preview when no template is
// chosen.
var Preview = Spec{
	Sections: []SectionSpec{
		{Summary, "Summary"},
		{Experience, "Work Experience"},
		{Education, "Education"},
		{Skills, "Skills"},
		{Projects, "Projects"},
	},
}

const (
	headline = FieldTitle | FieldSubtitle | FieldDate
	project  = FieldTitle | FieldTech | FieldBody | FieldLinks
)

// One-line education and headline-plus-body experience.
var compactFields = map[Kind]Field{
	Education:  headline,
	Experience: headline | FieldBody,
}

var Modern = Spec{
	Sections: []SectionSpec{
		{Education, "Education"},
		{Experience, "Experience"},
		{Skills, "Skills"},
	},
	Fields: compactFields,
}

var Classic = Spec{
	Sections: []SectionSpec{
		{Education, "Education:"},
		{Experience, "Experience:"},
		{Skills, "Skills:"},
	},
	Fields: compactFields,
}

var Azurill = Spec{
	Sections: []SectionSpec{
		{Education, "Education"},
		{Experience, "Experience"},
		{Skills, "Skills"},
	},
	Fields: map[Kind]Field{
		Education:  headline | FieldBody,
		Experience: headline | FieldBody,
	},
}

var Bhendi = Spec{
	Sections: []SectionSpec{
		{Skills, "Technical Skills"},
		{Experience, "Experience"},
		{Projects, "Projects"},
		{Education, "Education"},
	},
	Skills: SkillsByCategory,
	SkillLabels: map[string]string{
		"languages":  "Languages",
		"frameworks": "Frameworks and Libraries",
		"databases":  "Databases",
		"tools":      "Tools and Technologies",
	},
	Fields: map[Kind]Field{
		Experience: headline | FieldLocation | FieldBody,
		Projects:   project,
		Education:  headline | FieldScore | FieldLocation,
	},
}

var KD = Spec{
	Sections: []SectionSpec{
		{Education, "Education"},
		{Projects, "Projects"},
		{Skills, "Technical Skills"},
		{Courses, "Courses Taken"},
		{Positions, "Positions of Responsibility"},
		{Misc, "Miscellaneous"},
	},
	Skills: SkillsByCategory,
	SkillLabels: map[string]string{
		"languages":  "Programming Languages",
		"frameworks": "Frameworks/Libraries",
		"databases":  "Databases",
		"tools":      "Tools & Editing",
	},
	Fields: map[Kind]Field{
		Education: headline | FieldScore,
		Projects:  project,
		Positions: headline | FieldBody,
		Misc:      FieldTitle | FieldBody | FieldDate,
	},
}

var specs = map[string]Spec{
	"modern":  Modern,
	"classic": Classic,
	"azurill": Azurill,
	"bhendi":  Bhendi,
	"kd":      KD,
}

// For returns the section table of a template id.
func For(templateID string) (Spec, bool) {
	s, ok := specs[templateID]
	return s, ok
}
