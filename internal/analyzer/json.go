package analyzer

import (
	"errors"
	"strings"
)

// ErrNoJSON is returned when a completion holds no {...} object.
var ErrNoJSON = errors.New("AI response did not contain valid JSON structure")

// ExtractJSON isolates the JSON object in a completion: surrounding
// whitespace and a markdown code fence are removed, then everything from the
// first '{' to the last '}' is kept. The result is not validated.
func ExtractJSON(text string) (string, error) {
	s := strings.TrimSpace(text)
	for _, fence := range []string{"```json", "```"} {
		if strings.HasPrefix(s, fence) {
			s = strings.TrimPrefix(s, fence)
			s = strings.TrimSuffix(strings.TrimSpace(s), "```")
			break
		}
	}

	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first == -1 || last <= first {
		return "", ErrNoJSON
	}
	return s[first : last+1], nil
}
