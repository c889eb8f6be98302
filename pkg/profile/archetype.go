package profile

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Archetype is a professional background pattern with a ranked list of
// preferred course categories.
type Archetype struct {
	Key         string   `yaml:"key" json:"key" validate:"required"`
	Description string   `yaml:"description" json:"description" validate:"required"`
	Keywords    []string `yaml:"keywords" json:"keywords,omitempty" validate:"required,min=1,dive,required"`
	Preferences []string `yaml:"preferences" json:"preferences" validate:"required,min=1,max=3,dive,required"`
}

// Synthetic archetypes used when no registered archetype scores.
var (
	GeneralDeveloper = Archetype{
		Key:         "general_developer",
		Description: "Разработчик (общий профиль)",
		Preferences: []string{"programming", "systems", "machine_learning"},
	}
	Undetermined = Archetype{
		Key:         "undetermined",
		Description: "Не определен",
		Preferences: []string{"machine_learning", "programming", "data_science"},
	}
)

// developerTerms select GeneralDeveloper over Undetermined.
var developerTerms = []string{"программист", "разработчик", "developer", "код", "code"}

var (
	ErrDuplicateArchetype = errors.New("duplicate archetype key")
	ErrUnknownPreference  = errors.New("archetype prefers unknown category")
)

// Registry is an ordered, read-only list of archetypes. Earlier entries win
// score ties.
type Registry struct {
	archetypes []Archetype
}

// NewRegistry copies archetypes, lowercasing and deduplicating keywords.
func NewRegistry(archetypes []Archetype) (Registry, error) {
	seen := make(map[string]struct{}, len(archetypes))
	out := make([]Archetype, 0, len(archetypes))
	for _, a := range archetypes {
		if _, dup := seen[a.Key]; dup || a.Key == GeneralDeveloper.Key || a.Key == Undetermined.Key {
			return Registry{}, fmt.Errorf("%w: %q", ErrDuplicateArchetype, a.Key)
		}
		seen[a.Key] = struct{}{}
		kws := make([]string, 0, len(a.Keywords))
		for _, kw := range a.Keywords {
			kw = strings.ToLower(kw)
			if !slices.Contains(kws, kw) {
				kws = append(kws, kw)
			}
		}
		a.Keywords = kws
		a.Preferences = slices.Clone(a.Preferences)
		out = append(out, a)
	}
	return Registry{archetypes: out}, nil
}

// CheckPreferences verifies that every preference names a known category.
func (r Registry) CheckPreferences(known func(key string) bool) error {
	for _, a := range r.archetypes {
		for _, p := range a.Preferences {
			if !known(p) {
				return fmt.Errorf("%w: %s -> %s", ErrUnknownPreference, a.Key, p)
			}
		}
	}
	return nil
}

// Archetypes returns a copy of the registry in order.
func (r Registry) Archetypes() []Archetype {
	out := make([]Archetype, len(r.archetypes))
	for i, a := range r.archetypes {
		out[i] = a.clone()
	}
	return out
}

func (a Archetype) clone() Archetype {
	a.Keywords = slices.Clone(a.Keywords)
	a.Preferences = slices.Clone(a.Preferences)
	return a
}

func (r Registry) Len() int { return len(r.archetypes) }

// Lookup finds a registered or synthetic archetype by key.
func (r Registry) Lookup(key string) (Archetype, bool) {
	for _, a := range r.archetypes {
		if a.Key == key {
			return a.clone(), true
		}
	}
	switch key {
	case GeneralDeveloper.Key:
		return GeneralDeveloper.clone(), true
	case Undetermined.Key:
		return Undetermined.clone(), true
	}
	return Archetype{}, false
}

// DefaultRegistry returns the built-in archetypes.
func DefaultRegistry() Registry {
	r, err := NewRegistry(defaultArchetypes)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultArchetypes = []Archetype{
	{
		Key:         "fullstack_developer",
		Description: "Fullstack разработчик",
		Keywords: []string{
			"фуллстек", "fullstack", "full-stack", "full stack",
			"разработчик", "программист", "developer", "programmer",
			"фронтенд", "frontend", "front-end", "бэкенд", "backend", "back-end",
			"сервисы", "services", "веб", "web", "приложения", "applications",
			"инфраструктура", "infrastructure", "devops",
			"python", "javascript", "react", "node", "django", "flask",
			"api", "rest", "микросервисы", "microservices",
			"яндекс", "yandex", "опыт", "experience", "работаю", "работал",
		},
		Preferences: []string{"programming", "systems", "machine_learning"},
	},
	{
		Key:         "ml_engineer",
		Description: "ML Engineer",
		Keywords: []string{
			"ml engineer", "машинное обучение", "machine learning", "ml",
			"модели", "models", "алгоритмы", "algorithms", "нейронные сети",
			"deep learning", "глубокое обучение", "tensorflow", "pytorch",
			"sklearn", "data science", "ai", "artificial intelligence",
			"kaggle", "соревнования", "competitions",
		},
		Preferences: []string{"machine_learning", "programming", "systems"},
	},
	{
		Key:         "data_scientist",
		Description: "Data Scientist",
		Keywords: []string{
			"data scientist", "данные", "data", "аналитик", "analyst",
			"статистика", "statistics", "анализ данных", "data analysis",
			"pandas", "numpy", "jupyter", "visualization", "визуализация",
			"bi", "business intelligence", "дашборды", "dashboards",
		},
		Preferences: []string{"data_science", "machine_learning", "programming"},
	},
	{
		Key:         "cv_specialist",
		Description: "Computer Vision специалист",
		Keywords: []string{
			"computer vision", "компьютерное зрение", "cv", "изображения",
			"images", "opencv", "обработка изображений", "image processing",
			"распознавание", "recognition", "детекция", "detection",
			"сегментация", "segmentation", "yolo", "cnn",
		},
		Preferences: []string{"computer_vision", "machine_learning", "programming"},
	},
	{
		Key:         "nlp_specialist",
		Description: "NLP специалист",
		Keywords: []string{
			"nlp", "natural language processing", "естественный язык",
			"обработка языка", "текст", "text", "языковые модели",
			"language models", "llm", "bert", "gpt", "transformers",
			"чатботы", "chatbots", "sentiment", "тональность",
		},
		Preferences: []string{"nlp", "machine_learning", "programming"},
	},
	{
		Key:         "product_manager",
		Description: "Product Manager",
		Keywords: []string{
			"product manager", "продукт", "product", "менеджер", "manager",
			"управление", "management", "бизнес", "business", "стратегия",
			"strategy", "roadmap", "планирование", "planning", "продуктовый",
			"аналитика", "analytics", "метрики", "metrics", "a/b тесты",
		},
		Preferences: []string{"product", "data_science", "machine_learning"},
	},
	{
		Key:         "systems_architect",
		Description: "Системный архитектор",
		Keywords: []string{
			"архитектор", "architect", "системы", "systems", "архитектура",
			"architecture", "высоконагруженные", "highload", "high-load",
			"масштабирование", "scaling", "производительность", "performance",
			"инфраструктура", "infrastructure", "облако", "cloud",
			"kubernetes", "docker", "микросервисы",
		},
		Preferences: []string{"systems", "programming", "machine_learning"},
	},
	{
		Key:         "backend_developer",
		Description: "Backend разработчик",
		Keywords: []string{
			"backend", "бэкенд", "серверная разработка", "server-side",
			"api", "rest", "graphql", "базы данных", "databases",
			"postgresql", "mysql", "mongodb", "redis",
			"java", "go", "c#", "node.js", "spring",
		},
		Preferences: []string{"programming", "systems", "data_science"},
	},
	{
		Key:         "frontend_developer",
		Description: "Frontend разработчик",
		Keywords: []string{
			"frontend", "фронтенд", "клиентская разработка", "client-side",
			"react", "vue", "angular", "javascript", "typescript",
			"html", "css", "ui", "ux", "интерфейсы", "interfaces",
		},
		Preferences: []string{"programming", "product", "machine_learning"},
	},
	{
		Key:         "mobile_developer",
		Description: "Mobile разработчик",
		Keywords: []string{
			"mobile", "мобильная разработка", "android", "ios",
			"react native", "flutter", "swift", "kotlin",
			"приложения", "apps", "мобильные приложения",
		},
		Preferences: []string{"programming", "product", "systems"},
	},
	{
		Key:         "devops_engineer",
		Description: "DevOps Engineer",
		Keywords: []string{
			"devops", "деплой", "deployment", "ci/cd", "jenkins",
			"gitlab", "github actions", "terraform", "ansible",
			"мониторинг", "monitoring", "логирование", "logging",
		},
		Preferences: []string{"systems", "programming", "machine_learning"},
	},
	{
		Key:         "qa_engineer",
		Description: "QA Engineer",
		Keywords: []string{
			"qa", "тестирование", "testing", "автотесты", "automation",
			"selenium", "pytest", "качество", "quality assurance",
			"баги", "bugs", "тест-кейсы", "test cases",
		},
		Preferences: []string{"programming", "systems", "product"},
	},
	{
		Key:         "business_analyst",
		Description: "Бизнес-аналитик",
		Keywords: []string{
			"business analyst", "бизнес-аналитик", "аналитик",
			"требования", "requirements", "процессы", "processes",
			"документация", "documentation", "stakeholders",
		},
		Preferences: []string{"product", "data_science", "programming"},
	},
	{
		Key:         "researcher",
		Description: "Исследователь",
		Keywords: []string{
			"исследователь", "researcher", "наука", "science",
			"исследования", "research", "публикации", "papers",
			"эксперименты", "experiments", "phd", "кандидат наук",
		},
		Preferences: []string{"machine_learning", "data_science", "programming"},
	},
	{
		Key:         "student",
		Description: "Студент",
		Keywords: []string{
			"студент", "student", "учусь", "studying", "университет",
			"вуз", "институт", "курсовые", "дипломная", "thesis",
			"бакалавр", "bachelor", "магистр", "master",
		},
		Preferences: []string{"machine_learning", "programming", "data_science"},
	},
}
