package hadith

import "strings"

// gradeRule maps a lower-case substring of a source's free-text grade onto
// the canonical Grade. Rules are checked in order and the first match wins,
// so more specific vocabulary must come before broader terms.
type gradeRule struct {
	substr string
	grade  Grade
}

// defaultGradeRules covers the vocabulary observed across sources. This is
// a best-effort heuristic: the grading authority is the upstream scholar,
// not this table.
var defaultGradeRules = []gradeRule{
	{"sahih", GradeSahih},
	{"hasan", GradeHasan},
	{"da'if", GradeDaif},
	{"daif", GradeDaif},
	{"weak", GradeDaif},
	{"mawdu", GradeMawdu},
	{"fabricat", GradeMawdu},
}

// NormalizeGrade maps a source-supplied grade string onto the canonical
// enum, falling through to GradeUnknown for anything unrecognized.
func NormalizeGrade(raw string) Grade {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return GradeUnknown
	}
	for _, rule := range defaultGradeRules {
		if strings.Contains(s, rule.substr) {
			return rule.grade
		}
	}
	return GradeUnknown
}
