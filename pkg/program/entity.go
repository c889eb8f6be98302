package program

import (
	"github.com/artem13815/advisor/pkg/curriculum"
	"github.com/artem13815/advisor/pkg/faq"
)

// QA is one FAQ item as stored in the programs file.
type QA struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// Program is a master's program record. Name is the key it is stored
// under; the rest is the record body.
type Program struct {
	Name        string                 `json:"-"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	URL         string                 `json:"url,omitempty" validate:"omitempty,url"`
	FAQ         []QA                   `json:"faq" validate:"dive"`
	Curriculum  *curriculum.Curriculum `json:"curriculum,omitempty"`
}

// HasCurriculum reports whether the program carries parsed courses.
func (p Program) HasCurriculum() bool {
	return p.Curriculum != nil && len(p.Curriculum.AllCourses) > 0
}

// FAQGroup converts the program FAQ into matcher entries.
func (p Program) FAQGroup() faq.Group {
	entries := make([]faq.Entry, 0, len(p.FAQ))
	for _, qa := range p.FAQ {
		entries = append(entries, faq.Entry{Question: qa.Question, Answer: qa.Answer, Program: p.Name})
	}
	return faq.Group{Program: p.Name, Entries: entries}
}

// Summary is a short overview used to compare programs.
type Summary struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	TotalCourses    int    `json:"totalCourses"`
	ElectiveCourses int    `json:"electiveCourses"`
	FAQCount        int    `json:"faqCount"`
}

func (p Program) Summary() Summary {
	s := Summary{
		Name:        p.Name,
		Title:       p.Title,
		Description: p.Description,
		FAQCount:    len(p.FAQ),
	}
	if p.Curriculum != nil {
		s.TotalCourses = len(p.Curriculum.AllCourses)
		s.ElectiveCourses = len(p.Curriculum.ElectiveCourses)
	}
	return s
}
