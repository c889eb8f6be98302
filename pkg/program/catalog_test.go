package program

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/advisor/pkg/curriculum"
	"github.com/artem13815/advisor/pkg/validation"
)

const programsJSON = `{
  "Искусственный интеллект": {
    "title": "Магистратура Искусственный интеллект",
    "description": "ML инженерия",
    "url": "https://abit.itmo.ru/program/master/ai",
    "faq": [
      {"question": "Сколько бюджетных мест?", "answer": "51 бюджетное место."}
    ],
    "curriculum": {
      "program_name": "Искусственный интеллект",
      "semesters": {"1": {"mandatory": [], "elective": [{"name": "Машинное обучение", "credits": 6, "hours": 216, "semester": 1, "type": "elective"}]}},
      "all_courses": [{"name": "Машинное обучение", "credits": 6, "hours": 216, "semester": 1, "type": "elective"}],
      "mandatory_courses": [],
      "elective_courses": [{"name": "Машинное обучение", "credits": 6, "hours": 216, "semester": 1, "type": "elective"}]
    }
  },
  "AI Product": {
    "title": "Управление ИИ-продуктами",
    "description": "Продуктовый менеджмент",
    "faq": [
      {"question": "Где находится общежитие?", "answer": "В Петербурге."},
      {"question": "Какие экзамены?", "answer": "Собеседование."}
    ]
  },
  "Empty": {
    "title": "Без FAQ",
    "description": "",
    "faq": []
  }
}`

func TestLoad_KeepsFileOrder(t *testing.T) {
	c, err := Load(strings.NewReader(programsJSON))
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	names := make([]string, 0, c.Len())
	for _, p := range c.Programs() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Искусственный интеллект", "AI Product", "Empty"}, names)

	ai, err := c.Get("Искусственный интеллект")
	require.NoError(t, err)
	require.True(t, ai.HasCurriculum())
	assert.Equal(t, []int{1}, ai.Curriculum.SemesterNumbers())
	assert.Equal(t, curriculum.Elective, ai.Curriculum.Semesters[1].Elective[0].Type)

	_, err = c.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(strings.NewReader(`[]`))
	assert.ErrorIs(t, err, ErrNotAnObject)

	_, err = Load(strings.NewReader(`{"x": {"title": "t", "faq": [{"question": "", "answer": "a"}]}}`))
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "required", verr.Fields[0].Tag)

	_, err = Load(strings.NewReader(`{"x": {"title": "t", "url": "not a url"}}`))
	assert.Error(t, err)

	_, err = Load(strings.NewReader(`{"x": {"title": 5}}`))
	assert.Error(t, err)
}

func TestNewCatalog_Duplicate(t *testing.T) {
	_, err := NewCatalog([]Program{{Name: "a"}, {Name: "a"}})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCatalog_FAQGroups(t *testing.T) {
	c, err := Load(strings.NewReader(programsJSON))
	require.NoError(t, err)

	groups := c.FAQGroups()
	require.Len(t, groups, 2)
	assert.Equal(t, "Искусственный интеллект", groups[0].Program)
	assert.Equal(t, "AI Product", groups[1].Program)
	require.Len(t, groups[1].Entries, 2)
	assert.Equal(t, "AI Product", groups[1].Entries[0].Program)
	assert.Equal(t, "Где находится общежитие?", groups[1].Entries[0].Question)
}

func TestCatalog_FirstWithCurriculum(t *testing.T) {
	c, err := Load(strings.NewReader(programsJSON))
	require.NoError(t, err)

	p, ok := c.FirstWithCurriculum()
	require.True(t, ok)
	assert.Equal(t, "Искусственный интеллект", p.Name)

	bare, err := NewCatalog([]Program{{Name: "a"}, {Name: "b", Curriculum: &curriculum.Curriculum{}}})
	require.NoError(t, err)
	_, ok = bare.FirstWithCurriculum()
	assert.False(t, ok)
}

func TestProgram_Summary(t *testing.T) {
	c, err := Load(strings.NewReader(programsJSON))
	require.NoError(t, err)

	ai, _ := c.Get("Искусственный интеллект")
	assert.Equal(t, Summary{
		Name:            "Искусственный интеллект",
		Title:           "Магистратура Искусственный интеллект",
		Description:     "ML инженерия",
		TotalCourses:    1,
		ElectiveCourses: 1,
		FAQCount:        1,
	}, ai.Summary())

	product, _ := c.Get("AI Product")
	s := product.Summary()
	assert.Zero(t, s.TotalCourses)
	assert.Equal(t, 2, s.FAQCount)
}

func TestCatalog_MarshalJSONKeepsOrder(t *testing.T) {
	c, err := Load(strings.NewReader(programsJSON))
	require.NoError(t, err)

	cur := curriculum.Extract("ОП Без FAQ Семестры\n1 семестр\n1Статистика 3108\n")
	updated, err := c.WithCurriculum("Empty", cur)
	require.NoError(t, err)
	assert.False(t, mustGet(t, c, "Empty").HasCurriculum())

	raw, err := updated.MarshalJSON()
	require.NoError(t, err)
	again, err := Load(strings.NewReader(string(raw)))
	require.NoError(t, err)

	var names []string
	for _, p := range again.Programs() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Искусственный интеллект", "AI Product", "Empty"}, names)
	assert.Equal(t, "Статистика", mustGet(t, again, "Empty").Curriculum.AllCourses[0].Name)

	_, err = c.WithCurriculum("missing", cur)
	assert.ErrorIs(t, err, ErrNotFound)
}

func mustGet(t *testing.T, c *Catalog, name string) Program {
	t.Helper()
	p, err := c.Get(name)
	require.NoError(t, err)
	return p
}

func TestCatalog_ExtractedCurriculumReloads(t *testing.T) {
	c, err := Load(strings.NewReader(programsJSON))
	require.NoError(t, err)

	cur := curriculum.Extract("1 семестр\n1  3108\n0Курс по выбору 3\n1Алгоритмы 3\n")
	updated, err := c.WithCurriculum("AI Product", cur)
	require.NoError(t, err)

	raw, err := updated.MarshalJSON()
	require.NoError(t, err)
	again, err := Load(strings.NewReader(string(raw)))
	require.NoError(t, err)

	got := mustGet(t, again, "AI Product").Curriculum
	require.Len(t, got.AllCourses, 1)
	assert.Equal(t, "Алгоритмы", got.AllCourses[0].Name)
}
