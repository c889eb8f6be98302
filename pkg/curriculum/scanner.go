package curriculum

import (
	"regexp"
	"strconv"
	"strings"
)

// Section is the state of the line scanner.
type Section int

const (
	NoSection Section = iota
	InMandatory
	InElective
)

func (s Section) String() string {
	switch s {
	case InMandatory:
		return "mandatory"
	case InElective:
		return "elective"
	default:
		return "none"
	}
}

// LineKind tells what a single line of a study plan turned out to be.
type LineKind int

const (
	LineSkipped LineKind = iota
	LineSemester
	LineSectionHeader
	LineCourse
)

const (
	mandatoryHeader = "Обязательные дисциплины"
	electiveHeader  = "Пул выборных дисциплин"
	electiveMarker  = "выборных"
)

var (
	reSemester   = regexp.MustCompile(`(\d+)[\s\p{Zs}]*семестр`)
	reCourseLine = regexp.MustCompile(`^(\d+)(.+?)[\s\p{Zs}]+(\d+)[\s\p{Zs}]*$`)

	// Indicators of a mandatory course when no section header was seen yet.
	mandatoryIndicators = []string{"обязательн", "воркшоп"}
)

// CourseLine is a course row before section assignment.
type CourseLine struct {
	Semester int
	Name     string
	Credits  int
	Hours    int
}

// ParseCourseLine matches "<semester><name> <credits+hours>" on a trimmed line.
// Malformed or overflowing numbers, a blank name and semester 0 fail the match.
func ParseCourseLine(line string) (CourseLine, bool) {
	m := reCourseLine.FindStringSubmatch(line)
	if m == nil {
		return CourseLine{}, false
	}
	sem, err := strconv.Atoi(m[1])
	if err != nil || sem <= 0 {
		return CourseLine{}, false
	}
	name := strings.TrimSpace(m[2])
	if name == "" {
		return CourseLine{}, false
	}
	credits, hours, ok := SplitCreditsHours(m[3])
	if !ok {
		return CourseLine{}, false
	}
	return CourseLine{
		Semester: sem,
		Name:     name,
		Credits:  credits,
		Hours:    hours,
	}, true
}

// SplitCreditsHours splits the merged numeric token of a course row.
// Tokens of 4+ digits carry credits in the first digit and hours in the rest;
// shorter tokens are credits only.
func SplitCreditsHours(token string) (credits, hours int, ok bool) {
	if len(token) >= 4 {
		c, err := strconv.Atoi(token[:1])
		if err != nil {
			return 0, 0, false
		}
		h, err := strconv.Atoi(token[1:])
		if err != nil {
			return 0, 0, false
		}
		return c, h, true
	}
	c, err := strconv.Atoi(token)
	if err != nil {
		return 0, 0, false
	}
	return c, 0, true
}

// InferType classifies a course seen outside any section.
func InferType(name string) CourseType {
	lower := strings.ToLower(name)
	for _, ind := range mandatoryIndicators {
		if strings.Contains(lower, ind) {
			return Mandatory
		}
	}
	return Elective
}

// Scanner walks study plan lines and keeps the section and semester state.
type Scanner struct {
	section  Section
	semester int
}

func (s *Scanner) Section() Section { return s.section }

// CurrentSemester is the last semester header seen, 0 before any.
func (s *Scanner) CurrentSemester() int { return s.semester }

// Step consumes one trimmed, non-empty line. For LineCourse the returned
// course carries its final type.
func (s *Scanner) Step(line string) (LineKind, Course) {
	if m := reSemester.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			s.semester = n
			return LineSemester, Course{Semester: n}
		}
		return LineSkipped, Course{}
	}
	if strings.Contains(line, mandatoryHeader) {
		s.section = InMandatory
		return LineSectionHeader, Course{}
	}
	if strings.Contains(line, electiveHeader) || strings.Contains(strings.ToLower(line), electiveMarker) {
		s.section = InElective
		return LineSectionHeader, Course{}
	}
	cl, ok := ParseCourseLine(line)
	if !ok {
		return LineSkipped, Course{}
	}
	var typ CourseType
	switch s.section {
	case InMandatory:
		typ = Mandatory
	case InElective:
		typ = Elective
	default:
		typ = InferType(cl.Name)
	}
	return LineCourse, Course{
		Name:     cl.Name,
		Credits:  cl.Credits,
		Hours:    cl.Hours,
		Semester: cl.Semester,
		Type:     typ,
	}
}
