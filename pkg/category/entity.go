package category

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Other is the catch-all bucket for courses no category claims.
const Other = "other"

// Category is a topic bucket for courses.
type Category struct {
	Key         string   `yaml:"key" json:"key" validate:"required,ne=other"`
	Description string   `yaml:"description" json:"description" validate:"required"`
	Keywords    []string `yaml:"keywords" json:"keywords" validate:"required,min=1,dive,required"`
}

var ErrDuplicateKey = errors.New("duplicate category key")

// Registry is an ordered, read-only set of categories. Order decides which
// category wins when a course name matches several.
type Registry struct {
	categories []Category
	index      map[string]int
}

// NewRegistry copies cats into a registry with lowercased keywords.
// Keys must be unique.
func NewRegistry(cats []Category) (Registry, error) {
	r := Registry{
		categories: make([]Category, 0, len(cats)),
		index:      make(map[string]int, len(cats)),
	}
	for _, c := range cats {
		if _, dup := r.index[c.Key]; dup || c.Key == Other {
			return Registry{}, fmt.Errorf("%w: %q", ErrDuplicateKey, c.Key)
		}
		kws := make([]string, len(c.Keywords))
		for i, kw := range c.Keywords {
			kws[i] = strings.ToLower(kw)
		}
		c.Keywords = kws
		r.index[c.Key] = len(r.categories)
		r.categories = append(r.categories, c)
	}
	return r, nil
}

// Categories returns a copy of the registered categories in order.
func (r Registry) Categories() []Category {
	out := make([]Category, len(r.categories))
	for i, c := range r.categories {
		c.Keywords = slices.Clone(c.Keywords)
		out[i] = c
	}
	return out
}

// Keys returns category keys in registry order followed by Other.
func (r Registry) Keys() []string {
	keys := make([]string, 0, len(r.categories)+1)
	for _, c := range r.categories {
		keys = append(keys, c.Key)
	}
	return append(keys, Other)
}

func (r Registry) Len() int { return len(r.categories) }

func (r Registry) Lookup(key string) (Category, bool) {
	i, ok := r.index[key]
	if !ok {
		return Category{}, false
	}
	return r.categories[i], true
}

// Description returns the human name of a category, "Другое" for Other.
func (r Registry) Description(key string) string {
	if c, ok := r.Lookup(key); ok {
		return c.Description
	}
	if key == Other {
		return "Другое"
	}
	return key
}

// DefaultRegistry returns the built-in categories.
func DefaultRegistry() Registry {
	r, err := NewRegistry(defaultCategories)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultCategories = []Category{
	{
		Key:         "machine_learning",
		Description: "Машинное обучение и ИИ",
		Keywords: []string{"машинное обучение", "machine learning", "ml", "глубокое обучение",
			"deep learning", "нейронные сети", "neural networks", "автоматическое"},
	},
	{
		Key:         "programming",
		Description: "Программирование и разработка",
		Keywords: []string{"программирование", "python", "c++", "разработка", "веб-приложений",
			"микросервисов", "backend", "языки программирования"},
	},
	{
		Key:         "computer_vision",
		Description: "Компьютерное зрение",
		Keywords: []string{"компьютерное зрение", "computer vision", "изображений", "обработка изображений",
			"генерация изображений", "мультимодальные"},
	},
	{
		Key:         "nlp",
		Description: "Обработка естественного языка",
		Keywords: []string{"естественного языка", "nlp", "обработка текстов", "языковые модели",
			"llm", "генеративные модели", "разговорного"},
	},
	{
		Key:         "data_science",
		Description: "Наука о данных",
		Keywords: []string{"данные", "data", "статистика", "анализ", "визуализация",
			"временные ряды", "big data", "больших данных"},
	},
	{
		Key:         "systems",
		Description: "Системы и инфраструктура",
		Keywords: []string{"системы", "mlops", "devops", "контейнеризация", "gpu", "unix",
			"базы данных", "инфраструктура", "архитектура"},
	},
	{
		Key:         "product",
		Description: "Продуктовое управление",
		Keywords: []string{"продукт", "product", "бизнес", "управление", "проект",
			"аналитика", "дизайн", "прототипирование"},
	},
}
