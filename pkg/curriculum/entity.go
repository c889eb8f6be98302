package curriculum

import "slices"

// CourseType is the mandatory/elective classification of a course.
type CourseType string

const (
	Mandatory CourseType = "mandatory"
	Elective  CourseType = "elective"
)

// Course is a single discipline of a study plan.
type Course struct {
	Name     string     `json:"name" validate:"required"`
	Credits  int        `json:"credits" validate:"gte=0"`
	Hours    int        `json:"hours" validate:"gte=0"`
	Semester int        `json:"semester" validate:"gt=0"`
	Type     CourseType `json:"type" validate:"oneof=mandatory elective"`
}

// Semester groups the courses of one semester by type, in parse order.
type Semester struct {
	Mandatory []Course `json:"mandatory"`
	Elective  []Course `json:"elective"`
}

// Curriculum is the structured study plan of a program.
// AllCourses keeps parse order; MandatoryCourses and ElectiveCourses are its
// order-preserving split.
type Curriculum struct {
	ProgramName      string           `json:"program_name"`
	Semesters        map[int]Semester `json:"semesters"`
	AllCourses       []Course         `json:"all_courses" validate:"dive"`
	MandatoryCourses []Course         `json:"mandatory_courses"`
	ElectiveCourses  []Course         `json:"elective_courses"`
}

// New returns an empty curriculum with all collections allocated.
func New() Curriculum {
	return Curriculum{
		Semesters:        map[int]Semester{},
		AllCourses:       []Course{},
		MandatoryCourses: []Course{},
		ElectiveCourses:  []Course{},
	}
}

// Empty reports whether no course was recognized.
func (c Curriculum) Empty() bool { return len(c.AllCourses) == 0 }

// SemesterNumbers returns semester keys in ascending order.
func (c Curriculum) SemesterNumbers() []int {
	out := make([]int, 0, len(c.Semesters))
	for n := range c.Semesters {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

func (c *Curriculum) ensureSemester(n int) {
	if _, ok := c.Semesters[n]; !ok {
		c.Semesters[n] = Semester{Mandatory: []Course{}, Elective: []Course{}}
	}
}

func (c *Curriculum) add(course Course) {
	c.ensureSemester(course.Semester)
	sem := c.Semesters[course.Semester]
	if course.Type == Mandatory {
		sem.Mandatory = append(sem.Mandatory, course)
		c.MandatoryCourses = append(c.MandatoryCourses, course)
	} else {
		sem.Elective = append(sem.Elective, course)
		c.ElectiveCourses = append(c.ElectiveCourses, course)
	}
	c.Semesters[course.Semester] = sem
	c.AllCourses = append(c.AllCourses, course)
}
