package profile

// ExampleGroup is a themed set of sample biographies.
type ExampleGroup struct {
	Title    string   `json:"title"`
	Examples []string `json:"examples"`
}

// Examples help users write a biography the classifier can read.
type Examples struct {
	Groups     []ExampleGroup `json:"groups"`
	Hints      []string       `json:"hints"`
	Recognized []string       `json:"recognized"`
}

// ExampleBiographies returns sample biographies, writing hints and the
// descriptions of every archetype in reg.
func ExampleBiographies(reg Registry) Examples {
	recognized := make([]string, 0, reg.Len())
	for _, a := range reg.archetypes {
		recognized = append(recognized, a.Description)
	}
	groups := make([]ExampleGroup, len(exampleGroups))
	for i, g := range exampleGroups {
		groups[i] = ExampleGroup{Title: g.Title, Examples: append([]string(nil), g.Examples...)}
	}
	return Examples{
		Groups:     groups,
		Hints:      append([]string(nil), writingHints...),
		Recognized: recognized,
	}
}

var exampleGroups = []ExampleGroup{
	{
		Title: "Разработчики",
		Examples: []string{
			"Fullstack разработчик из Яндекса, опыт 3 года, знаю Python, React, работаю с микросервисами",
			"Backend разработчик на Java, работаю в банке, опыт с Spring Boot и PostgreSQL",
			"Frontend разработчик, делаю интерфейсы на React и Vue, интересуюсь UX",
			"Mobile разработчик iOS, пишу на Swift, хочу изучить ML для мобильных приложений",
		},
	},
	{
		Title: "ML/AI специалисты",
		Examples: []string{
			"ML Engineer в стартапе, занимаюсь обучением моделей, знаю TensorFlow и PyTorch",
			"Data Scientist, анализирую данные в e-commerce, работаю с pandas и sklearn",
			"Computer Vision специалист, делаю системы распознавания, опыт с OpenCV",
			"NLP инженер, создаю чатботы и анализирую тексты, работал с BERT и GPT",
		},
	},
	{
		Title: "Аналитики и менеджеры",
		Examples: []string{
			"Product Manager в IT, управляю продуктом, хочу понимать AI для принятия решений",
			"Бизнес-аналитик, работаю с требованиями, интересуюсь data science",
			"Аналитик данных, строю дашборды в Tableau, хочу изучить машинное обучение",
		},
	},
	{
		Title: "Инфраструктура и системы",
		Examples: []string{
			"DevOps инженер, настраиваю CI/CD, работаю с Kubernetes и Docker",
			"Системный архитектор, проектирую высоконагруженные системы",
			"QA Engineer, автоматизирую тестирование, хочу изучить ML для тестов",
		},
	},
	{
		Title: "Студенты и исследователи",
		Examples: []string{
			"Студент 4 курса по информатике, пишу дипломную по машинному обучению",
			"Исследователь в области AI, публикуюсь в конференциях, интересуют новые методы",
			"Магистрант по математике, хочу применить знания в data science",
		},
	},
}

var writingHints = []string{
	"Текущую профессию/должность",
	"Опыт работы (в годах)",
	"Технологии и инструменты",
	"Компанию или сферу деятельности",
	"Интересы и цели обучения",
	"Проекты или достижения",
}
