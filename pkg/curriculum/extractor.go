package curriculum

import (
	"regexp"
	"strings"
	"unicode"
)

var reProgramName = regexp.MustCompile(`ОП[\s\p{Zs}]+(.+?)(?:Семестры|$)`)

// foldSpaces maps every Unicode space except '\n' (NBSP, U+202F, ...) to ' '.
func foldSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r != '\n' && unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
}

// ProgramName captures the text after the "ОП" label up to the "Семестры"
// header or the end of input.
func ProgramName(text string) string {
	m := reProgramName.FindStringSubmatch(strings.TrimSuffix(text, "\n"))
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Extract builds a Curriculum from plain study plan text. Unrecognized lines
// are dropped; the result is never nil-valued and Extract never fails.
// A course is bucketed by its own leading semester number, which may differ
// from the last semester header seen.
func Extract(text string) Curriculum {
	text = foldSpaces(text)
	cur := New()
	cur.ProgramName = ProgramName(text)

	var sc Scanner
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		kind, course := sc.Step(line)
		switch kind {
		case LineSemester:
			cur.ensureSemester(course.Semester)
		case LineCourse:
			cur.add(course)
		}
	}
	return cur
}
