package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlan = `Учебный план ОП Искусственный интеллект Семестры
1 семестр
Обязательные дисциплины
1Воркшоп по созданию продукта 3108
1Программирование на Python 5180
Пул выборных дисциплин
1Машинное обучение 6216

стр. 2
2 семестр
2Глубокое обучение 4144
12
`

func TestSplitCreditsHours(t *testing.T) {
	tests := []struct {
		token   string
		credits int
		hours   int
	}{
		{"1306", 1, 306},
		{"3108", 3, 108},
		{"61080", 6, 1080},
		{"0000", 0, 0},
		{"5", 5, 0},
		{"12", 12, 0},
		{"999", 999, 0},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			c, h, ok := SplitCreditsHours(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.credits, c)
			assert.Equal(t, tt.hours, h)
		})
	}

	_, _, ok := SplitCreditsHours("9" + "99999999999999999999999")
	assert.False(t, ok, "overflowing hours must fail")
}

func TestParseCourseLine(t *testing.T) {
	cl, ok := ParseCourseLine("2Машинное обучение 1306")
	require.True(t, ok)
	assert.Equal(t, CourseLine{Semester: 2, Name: "Машинное обучение", Credits: 1, Hours: 306}, cl)

	cl, ok = ParseCourseLine("1 Введение в специальность  3")
	require.True(t, ok)
	assert.Equal(t, "Введение в специальность", cl.Name)
	assert.Equal(t, 3, cl.Credits)
	assert.Zero(t, cl.Hours)

	for _, line := range []string{"12", "Семестры", "Машинное обучение 1306", "1Курс", "99999999999999999999Курс 3"} {
		_, ok := ParseCourseLine(line)
		assert.False(t, ok, line)
	}
}

func TestExtract_ScenarioElectiveWithoutSection(t *testing.T) {
	cur := Extract("2Машинное обучение 1306")

	require.Len(t, cur.AllCourses, 1)
	assert.Equal(t, Course{
		Name:     "Машинное обучение",
		Credits:  1,
		Hours:    306,
		Semester: 2,
		Type:     Elective,
	}, cur.AllCourses[0])
	assert.Equal(t, cur.AllCourses, cur.ElectiveCourses)
	assert.Empty(t, cur.MandatoryCourses)
	assert.Len(t, cur.Semesters[2].Elective, 1)
}

func TestExtract_Plan(t *testing.T) {
	cur := Extract(samplePlan)

	assert.Equal(t, "Искусственный интеллект", cur.ProgramName)
	require.Len(t, cur.AllCourses, 4)

	names := make([]string, 0, len(cur.AllCourses))
	for _, c := range cur.AllCourses {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"Воркшоп по созданию продукта",
		"Программирование на Python",
		"Машинное обучение",
		"Глубокое обучение",
	}, names)

	require.Len(t, cur.MandatoryCourses, 2)
	require.Len(t, cur.ElectiveCourses, 2)
	assert.Equal(t, 3, cur.MandatoryCourses[0].Credits)
	assert.Equal(t, 108, cur.MandatoryCourses[0].Hours)

	assert.Equal(t, []int{1, 2}, cur.SemesterNumbers())
	assert.Len(t, cur.Semesters[1].Mandatory, 2)
	assert.Len(t, cur.Semesters[1].Elective, 1)
	assert.Empty(t, cur.Semesters[2].Mandatory)
	assert.Len(t, cur.Semesters[2].Elective, 1)
}

func TestExtract_EveryCourseInOneBucket(t *testing.T) {
	cur := Extract(samplePlan)

	total := 0
	for _, sem := range cur.Semesters {
		total += len(sem.Mandatory) + len(sem.Elective)
	}
	assert.Equal(t, len(cur.AllCourses), total)
	assert.Equal(t, len(cur.AllCourses), len(cur.MandatoryCourses)+len(cur.ElectiveCourses))
}

func TestExtract_InfersTypeOutsideSection(t *testing.T) {
	cur := Extract("1Обязательный курс по этике 2\n1Научный воркшоп 3\n1Алгоритмы 4")

	require.Len(t, cur.AllCourses, 3)
	assert.Equal(t, Mandatory, cur.AllCourses[0].Type)
	assert.Equal(t, Mandatory, cur.AllCourses[1].Type)
	assert.Equal(t, Elective, cur.AllCourses[2].Type)
}

func TestExtract_LineSemesterWinsOverHeader(t *testing.T) {
	cur := Extract("1 семестр\nОбязательные дисциплины\n3Архитектура систем 5")

	require.Len(t, cur.AllCourses, 1)
	assert.Equal(t, 3, cur.AllCourses[0].Semester)
	assert.Contains(t, cur.Semesters, 1)
	assert.Empty(t, cur.Semesters[1].Mandatory)
	assert.Len(t, cur.Semesters[3].Mandatory, 1)
}

func TestExtract_SemesterLineIsNotACourse(t *testing.T) {
	cur := Extract("2 семестр 5")

	assert.Empty(t, cur.AllCourses)
	assert.Contains(t, cur.Semesters, 2)
}

func TestExtract_Deterministic(t *testing.T) {
	assert.Equal(t, Extract(samplePlan), Extract(samplePlan))
}

func TestExtract_EmptyInput(t *testing.T) {
	cur := Extract("")

	assert.True(t, cur.Empty())
	assert.Empty(t, cur.ProgramName)
	assert.NotNil(t, cur.Semesters)
	assert.NotNil(t, cur.AllCourses)
}

func TestProgramName(t *testing.T) {
	assert.Equal(t, "Программная инженерия", ProgramName("ОП Программная инженерия\n"))
	assert.Equal(t, "ИИ", ProgramName("План ОП   ИИ Семестры 1-4"))
	assert.Empty(t, ProgramName("Учебный план"))
}

func TestScanner_States(t *testing.T) {
	var sc Scanner
	assert.Equal(t, NoSection, sc.Section())

	kind, _ := sc.Step("Обязательные дисциплины")
	assert.Equal(t, LineSectionHeader, kind)
	assert.Equal(t, InMandatory, sc.Section())

	kind, _ = sc.Step("Блок ВЫБОРНЫХ модулей")
	assert.Equal(t, LineSectionHeader, kind)
	assert.Equal(t, InElective, sc.Section())

	kind, c := sc.Step("3 семестр")
	assert.Equal(t, LineSemester, kind)
	assert.Equal(t, 3, c.Semester)
	assert.Equal(t, 3, sc.CurrentSemester())
	assert.Equal(t, InElective, sc.Section(), "semester header keeps section")

	kind, c = sc.Step("3Обязательная практика 6")
	assert.Equal(t, LineCourse, kind)
	assert.Equal(t, Elective, c.Type, "active section beats name inference")

	kind, _ = sc.Step("- 7 -")
	assert.Equal(t, LineSkipped, kind)
}

func TestReadDocument(t *testing.T) {
	doc, err := ReadDocument("plan.txt", []byte("ОП  Тест\r\n\n\n1Курс 3\n"))
	require.NoError(t, err)
	assert.Equal(t, "ОП Тест\n1Курс 3", doc.Text)

	_, err = ReadDocument("plan.odt", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ReadDocument("plan.docx", []byte("not a zip"))
	assert.Error(t, err)
}

func TestExtract_UnicodeSpaces(t *testing.T) {
	for _, sp := range []string{"\u00a0", "\u202f", "\u2009"} {
		cur := Extract("ОП" + sp + "ИИ Семестры\n1" + sp + "семестр\n2Машинное обучение" + sp + "1306\n")

		assert.Equal(t, "ИИ", cur.ProgramName, "%U", []rune(sp)[0])
		assert.Equal(t, []int{1, 2}, cur.SemesterNumbers(), "%U", []rune(sp)[0])
		require.Len(t, cur.AllCourses, 1, "%U", []rune(sp)[0])
		assert.Equal(t, "Машинное обучение", cur.AllCourses[0].Name)
		assert.Equal(t, 306, cur.AllCourses[0].Hours)
	}

	doc, err := ReadDocument("plan.txt", []byte("2Машинное обучение\u202f1306"))
	require.NoError(t, err)
	assert.Len(t, Extract(doc.Text).AllCourses, 1)
}

func TestExtract_DropsRowsWithoutNameOrSemester(t *testing.T) {
	cur := Extract("1  3108\n0Курс по выбору 3\n1Алгоритмы 3\n")

	require.Len(t, cur.AllCourses, 1)
	assert.Equal(t, "Алгоритмы", cur.AllCourses[0].Name)
	assert.Equal(t, 1, cur.AllCourses[0].Semester)
}
