package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/advisor/pkg/category"
)

func TestClassify_MLEngineer(t *testing.T) {
	m := Classify("Я работаю ML engineer, занимаюсь машинное обучение и нейронные сети", DefaultRegistry())

	assert.Equal(t, KindDetermined, m.Kind)
	assert.Equal(t, "ml_engineer", m.Archetype.Key)
	assert.Subset(t, m.MatchedKeywords, []string{"ml engineer", "машинное обучение", "нейронные сети"})
	assert.Equal(t, []string{"machine_learning", "programming", "systems"}, m.Preferences())
	assert.Equal(t, "ML Engineer", m.Description())
}

func TestClassify_ScoresCoverRegistry(t *testing.T) {
	reg := DefaultRegistry()
	m := Classify("Backend разработчик на Java", reg)

	require.Len(t, m.Scores, reg.Len())
	for i, a := range reg.Archetypes() {
		assert.Equal(t, a.Key, m.Scores[i].Key)
		assert.Equal(t, len(m.Scores[i].MatchedKeywords), m.Scores[i].Raw)
		assert.InDelta(t, AdjustedScore(m.Scores[i].Raw), m.Scores[i].Adjusted, 1e-9)
	}
}

func TestClassify_TieKeepsEarlierArchetype(t *testing.T) {
	first := Archetype{Key: "first", Description: "First", Keywords: []string{"alpha"}, Preferences: []string{"a"}}
	second := Archetype{Key: "second", Description: "Second", Keywords: []string{"beta"}, Preferences: []string{"b"}}

	reg, err := NewRegistry([]Archetype{first, second})
	require.NoError(t, err)
	assert.Equal(t, "first", Classify("alpha beta", reg).Archetype.Key)

	reg, err = NewRegistry([]Archetype{second, first})
	require.NoError(t, err)
	assert.Equal(t, "second", Classify("alpha beta", reg).Archetype.Key)
}

func TestClassify_MoreDistinctHitsWin(t *testing.T) {
	reg, err := NewRegistry([]Archetype{
		{Key: "single", Description: "S", Keywords: []string{"go"}, Preferences: []string{"a"}},
		{Key: "double", Description: "D", Keywords: []string{"kafka", "grpc", "kafka"}, Preferences: []string{"b"}},
	})
	require.NoError(t, err)

	m := Classify("go, kafka и grpc", reg)
	assert.Equal(t, "double", m.Archetype.Key)
	assert.Equal(t, []string{"kafka", "grpc"}, m.MatchedKeywords, "duplicate keywords count once")
	assert.InDelta(t, 2.4, m.Scores[1].Adjusted, 1e-9)
	assert.InDelta(t, 1.1, m.Scores[0].Adjusted, 1e-9)
}

func TestClassify_Fallbacks(t *testing.T) {
	reg := DefaultRegistry()

	m := Classify("пишу код каждый день", reg)
	assert.Equal(t, KindGeneralDeveloper, m.Kind)
	assert.Equal(t, GeneralDeveloper.Key, m.Archetype.Key)
	assert.Equal(t, []string{"programming", "systems", "machine_learning"}, m.Preferences())
	assert.Empty(t, m.MatchedKeywords)

	m = Classify("люблю гулять в парке", reg)
	assert.Equal(t, KindUndetermined, m.Kind)
	assert.Equal(t, "Не определен", m.Description())
	assert.Equal(t, []string{"machine_learning", "programming", "data_science"}, m.Preferences())
	assert.Empty(t, m.MatchedKeywords)

	m = Classify("", reg)
	assert.Equal(t, KindUndetermined, m.Kind)
}

func TestClassify_EmptyRegistry(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	m := Classify("Senior developer", reg)
	assert.Equal(t, KindGeneralDeveloper, m.Kind)
	assert.Empty(t, m.Scores)
}

func TestClassify_ResultDoesNotAliasRegistry(t *testing.T) {
	reg := DefaultRegistry()
	m := Classify("ML engineer", reg)
	m.Archetype.Preferences[0] = "mutated"

	again := Classify("ML engineer", reg)
	assert.Equal(t, "machine_learning", again.Preferences()[0])
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	assert.Equal(t, 15, reg.Len())

	cats := category.DefaultRegistry()
	err := reg.CheckPreferences(func(key string) bool {
		_, ok := cats.Lookup(key)
		return ok
	})
	assert.NoError(t, err)

	a, ok := reg.Lookup("undetermined")
	require.True(t, ok)
	assert.Equal(t, Undetermined.Description, a.Description)
}

func TestNewRegistry_RejectsReservedKeys(t *testing.T) {
	_, err := NewRegistry([]Archetype{{Key: "undetermined", Description: "x", Keywords: []string{"x"}, Preferences: []string{"a"}}})
	assert.ErrorIs(t, err, ErrDuplicateArchetype)
}

func TestParseYAML(t *testing.T) {
	reg, err := ParseYAML([]byte(`
archetypes:
  - key: gopher
    description: Go разработчик
    keywords: [Golang, goroutine]
    preferences: [programming, systems]
`))
	require.NoError(t, err)
	m := Classify("Пишу на golang", reg)
	assert.Equal(t, "gopher", m.Archetype.Key)

	_, err = ParseYAML([]byte(`
archetypes:
  - key: greedy
    description: x
    keywords: [x]
    preferences: [a, b, c, d]
`))
	assert.Error(t, err)

	_, err = ParseYAML([]byte("categories: []"))
	assert.ErrorIs(t, err, ErrNoArchetypes)
}

func TestExampleBiographies(t *testing.T) {
	ex := ExampleBiographies(DefaultRegistry())

	assert.Len(t, ex.Groups, 5)
	assert.Len(t, ex.Recognized, 15)
	assert.NotEmpty(t, ex.Hints)

	// Every sample should be readable by the classifier.
	for _, g := range ex.Groups {
		for _, bio := range g.Examples {
			assert.Equal(t, KindDetermined, Classify(bio, DefaultRegistry()).Kind, bio)
		}
	}
}
