package model

import "unicode"

// SuggestedFilename is "<Name>_resume.pdf" with every non-alphanumeric
// character of the name removed, or "resume.pdf" when nothing is left.
func SuggestedFilename(name string) string {
	var b []rune
	for _, r := range name {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b = append(b, r)
		}
	}
	if len(b) == 0 {
		return "resume.pdf"
	}
	return string(b) + "_resume.pdf"
}
