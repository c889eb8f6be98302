package category

import (
	"bytes"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/artem13815/advisor/pkg/curriculum"
)

// rule assigns a lowercased course name to a bucket.
type rule struct {
	key   string
	match func(lowerName string) bool
}

func anyKeyword(keywords []string) func(string) bool {
	return func(name string) bool {
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				return true
			}
		}
		return false
	}
}

// rules lists one rule per category in registry order; scanning stops at
// the first hit.
func (r Registry) rules() []rule {
	out := make([]rule, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, rule{key: c.Key, match: anyKeyword(c.Keywords)})
	}
	return out
}

// Classify returns the bucket key for a single course name.
func Classify(name string, reg Registry) string {
	return classify(strings.ToLower(name), reg.rules())
}

func classify(lower string, rules []rule) string {
	for _, rl := range rules {
		if rl.match(lower) {
			return rl.key
		}
	}
	return Other
}

// Buckets is the result of categorizing courses: every registry category
// plus Other, in registry order, each holding courses in input order.
type Buckets struct {
	keys   []string
	groups map[string][]curriculum.Course
}

// Categorize partitions courses over reg. Every key of reg.Keys() is
// present in the result, even when empty.
func Categorize(courses []curriculum.Course, reg Registry) Buckets {
	b := Buckets{keys: reg.Keys(), groups: make(map[string][]curriculum.Course, reg.Len()+1)}
	for _, k := range b.keys {
		b.groups[k] = []curriculum.Course{}
	}
	rules := reg.rules()
	for _, c := range courses {
		key := classify(strings.ToLower(c.Name), rules)
		b.groups[key] = append(b.groups[key], c)
	}
	return b
}

func (b Buckets) Keys() []string { return append([]string(nil), b.keys...) }

// Get returns the courses of a bucket; unknown keys yield nil.
func (b Buckets) Get(key string) []curriculum.Course { return b.groups[key] }

// Electives returns the elective courses of a bucket in input order.
func (b Buckets) Electives(key string) []curriculum.Course {
	var out []curriculum.Course
	for _, c := range b.groups[key] {
		if c.Type == curriculum.Elective {
			out = append(out, c)
		}
	}
	return out
}

// Count is the size of one bucket.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Counts returns bucket sizes in bucket order, zeros included.
func (b Buckets) Counts() []Count {
	out := make([]Count, 0, len(b.keys))
	for _, k := range b.keys {
		out = append(out, Count{Key: k, Count: len(b.groups[k])})
	}
	return out
}

func (b Buckets) Total() int {
	n := 0
	for _, g := range b.groups {
		n += len(g)
	}
	return n
}

// NonEmpty counts buckets holding at least one course.
func (b Buckets) NonEmpty() int {
	n := 0
	for _, g := range b.groups {
		if len(g) > 0 {
			n++
		}
	}
	return n
}

// MarshalJSON writes buckets as an object keeping bucket order.
func (b Buckets) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(b.groups[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
