package program

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/artem13815/advisor/pkg/curriculum"
	"github.com/artem13815/advisor/pkg/faq"
	"github.com/artem13815/advisor/pkg/validation"
)

var (
	ErrNotFound    = errors.New("program not found")
	ErrDuplicate   = errors.New("duplicate program name")
	ErrNotAnObject = errors.New("programs file must be a JSON object keyed by program name")
)

// Catalog is the ordered, read-only list of programs loaded at startup.
type Catalog struct {
	programs []Program
	index    map[string]int
}

// NewCatalog keeps programs in the given order. Names must be unique.
func NewCatalog(programs []Program) (*Catalog, error) {
	c := &Catalog{
		programs: make([]Program, 0, len(programs)),
		index:    make(map[string]int, len(programs)),
	}
	for _, p := range programs {
		if _, dup := c.index[p.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, p.Name)
		}
		c.index[p.Name] = len(c.programs)
		c.programs = append(c.programs, p)
	}
	return c, nil
}

func (c *Catalog) Len() int { return len(c.programs) }

// Programs returns programs in file order.
func (c *Catalog) Programs() []Program { return append([]Program(nil), c.programs...) }

func (c *Catalog) Get(name string) (Program, error) {
	i, ok := c.index[name]
	if !ok {
		return Program{}, ErrNotFound
	}
	return c.programs[i], nil
}

// FAQGroups returns the FAQ corpus in program order.
func (c *Catalog) FAQGroups() []faq.Group {
	out := make([]faq.Group, 0, len(c.programs))
	for _, p := range c.programs {
		if len(p.FAQ) == 0 {
			continue
		}
		out = append(out, p.FAQGroup())
	}
	return out
}

// FirstWithCurriculum returns the first program that has parsed courses.
func (c *Catalog) FirstWithCurriculum() (Program, bool) {
	for _, p := range c.programs {
		if p.HasCurriculum() {
			return p, true
		}
	}
	return Program{}, false
}

// WithCurriculum returns a copy of the catalog where program name carries cur.
func (c *Catalog) WithCurriculum(name string, cur curriculum.Curriculum) (*Catalog, error) {
	i, ok := c.index[name]
	if !ok {
		return nil, ErrNotFound
	}
	programs := c.Programs()
	programs[i].Curriculum = &cur
	return NewCatalog(programs)
}

// MarshalJSON writes the catalog back in the programs file layout, keeping
// program order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range c.programs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Name)
		if err != nil {
			return nil, err
		}
		body, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("encode program %q: %w", p.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// LoadFile reads a programs file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open programs file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a JSON object of program name -> record, keeping key order,
// and validates each record.
func Load(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read programs: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotAnObject
	}

	var programs []Program
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read program name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, ErrNotAnObject
		}
		var p Program
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode program %q: %w", name, err)
		}
		p.Name = name
		if err := validation.Struct(p); err != nil {
			return nil, fmt.Errorf("program %q: %w", name, err)
		}
		programs = append(programs, p)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read programs: %w", err)
	}
	return NewCatalog(programs)
}
