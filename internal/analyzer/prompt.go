package analyzer

import "strings"

const promptHeader = `You are an expert HR analyst specializing in resume evaluation against job descriptions. Analyze the resume text below in the context of the provided Job Description (JD). Evaluate how well the resume aligns with the JD and return structured feedback STRICTLY in the specified JSON format below. Populate ALL fields; use "" for empty strings and [] for empty arrays if information is not found.`

const promptTemplate = `JSON Structure Template (use exactly this structure):

{
  "score": 0,
  "summaryFeedback": "",
  "skillsFeedback": "",
  "experienceFeedback": "",
  "keywordMatches": {
    "found": [],
    "missing": []
  },
  "suggestions": [],
  "userInfo": {
    "name": "",
    "email": "",
    "phone": "",
    "address": ""
  },
  "summary": "",
  "skills": [],
  "experienceDetails": [
    {
      "jobTitle": "",
      "duration": "",
      "description": ""
    }
  ],
  "sectionAnalysis": {
    "workExperience": 0,
    "skills": 0,
    "education": 0,
    "summary": 0,
    "projects": 0
  },
  "projects": [
    {
      "projectName": "",
      "projectDescription": "",
      "toolsUsed": [],
      "date": "",
      "links": []
    }
  ],
  "links": []
}

Field notes:
- score: overall ATS match (0-100) based on skills and experience relevance to the JD.
- keywordMatches: keywords from the JD found in / missing from the resume.
- suggestions: actionable changes that improve alignment with THIS JD.
- sectionAnalysis: 0-100 per section for quality and completeness.

IMPORTANT INSTRUCTIONS:
- Return ONLY the raw JSON object.
- Do NOT include any introductory text, explanations, apologies, or markdown formatting.
- The entire response MUST start directly with '{' and end with '}'. Ensure it is valid JSON.
- Populate ALL fields in the template. Use "" or [] for missing data. Do not omit keys.
- Extract ALL distinct projects mentioned in the resume into the "projects" array.
- Extract the summary from the resume, or write one if none is present.
- The ATS score and sectionAnalysis are scored against the JD provided.`

// BuildPrompt asks for a JSON analysis of resumeText against jobDescription.
func BuildPrompt(jobDescription, resumeText string) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString("\n\nCompare the resume with this Job Description (JD):\n\"\"\"\n")
	b.WriteString(strings.TrimSpace(jobDescription))
	b.WriteString("\n\"\"\"\n\nResume Text to Analyze:\n\"\"\"\n")
	b.WriteString(strings.TrimSpace(resumeText))
	b.WriteString("\n\"\"\"\n\n")
	b.WriteString(promptTemplate)
	b.WriteString("\n")
	return b.String()
}
