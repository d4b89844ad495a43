package hadith

import (
	"regexp"
	"strings"
)

// narratorPatterns is the ordered list of phrasings used to pull the primary
// narrator out of an English translation when the source has no structured
// narrator field. The first pattern that matches wins; if none match the
// narrator is left empty rather than guessed.
var narratorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^Narrated ([^:]+?)\s*:`),
	regexp.MustCompile(`^([A-Z][\w'. -]+?) reported\s*[:,]`),
	regexp.MustCompile(`^It was narrated (?:from|that) ([\w'. -]+?) (?:said|that)`),
	regexp.MustCompile(`^On the authority of ([\w'. -]+?)[,:]`),
}

// ExtractNarrator scans an English hadith text against the narrator
// phrasings and returns the first captured name, trimmed.
func ExtractNarrator(englishText string) string {
	text := strings.TrimSpace(englishText)
	if text == "" {
		return ""
	}
	for _, p := range narratorPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
