package faq

import "strings"

// Gate is a cheap keyword pre-filter deciding whether a question is about
// study programs at all.
type Gate struct {
	keywords []string
}

// NewGate lowercases keywords; matching is by substring.
func NewGate(keywords []string) Gate {
	kws := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			kws = append(kws, kw)
		}
	}
	return Gate{keywords: kws}
}

func DefaultGate() Gate { return NewGate(relevanceKeywords) }

// Relevant reports whether the question contains any gate keyword.
func (g Gate) Relevant(question string) bool {
	lower := strings.ToLower(question)
	for _, kw := range g.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

var relevanceKeywords = []string{
	// поступление и обучение
	"поступление", "поступить", "экзамен", "экзамены", "магистратура", "обучение", "программа", "программы",
	"диплом", "стипендия", "карьера", "образование", "учеба", "учебный", "план", "планы",
	"курс", "курсы", "предмет", "предметы", "дисциплина", "дисциплины", "проект", "практика", "стажировка",
	// программы
	"искусственный интеллект", "ии", "ai", "машинное обучение", "ml", "продукт", "продуктовый",
	"высоконагруженные", "системы", "highload", "программное обеспечение", "по",
	// университет
	"итмо", "itmo", "университет", "вуз", "институт",
	// общие вопросы
	"содержание", "содержании", "что изучают", "что изучается", "чему учат", "чему обучают",
	"количество", "сколько", "места", "мест", "бюджет", "бюджетные", "платные",
	"стоимость", "цена", "оплата", "стоит", "стоимости",
	"требования", "условия", "как поступить", "документы",
	"длительность", "срок", "года", "лет", "семестр", "семестры",
	"преподаватели", "кафедра", "факультет", "направление",
	"выпускники", "трудоустройство", "работа",
}
