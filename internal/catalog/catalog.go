package catalog

import (
	"fmt"
	"slices"
)

// Catalog holds an ordered, read-only question set with precomputed indices.
// It is safe to share across goroutines.
type Catalog struct {
	version   string
	questions []Question
	byID      map[string]int
	bySection map[Section][]Question
}

// New validates the questions and builds a catalog from them. The slice is
// copied; later mutation by the caller has no effect.
func New(version string, questions []Question) (*Catalog, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	c := &Catalog{
		version:   version,
		questions: make([]Question, len(questions)),
		byID:      make(map[string]int, len(questions)),
		bySection: make(map[Section][]Question),
	}
	for i, q := range questions {
		q.Options = slices.Clone(q.Options)
		c.questions[i] = q
		c.byID[q.ID] = i
		c.bySection[q.Section] = append(c.bySection[q.Section], q)
	}
	return c, nil
}

// Version returns the catalog version label.
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Questions returns all questions in presentation order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	for i, q := range c.questions {
		out[i] = cloneQuestion(q)
	}
	return out
}

// At returns the question at position i in presentation order.
func (c *Catalog) At(i int) (Question, bool) {
	if i < 0 || i >= len(c.questions) {
		return Question{}, false
	}
	return cloneQuestion(c.questions[i]), true
}

// Question returns a question by ID.
func (c *Catalog) Question(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return cloneQuestion(c.questions[i]), true
}

// Index returns the presentation position of a question ID, or -1.
func (c *Catalog) Index(id string) int {
	if i, ok := c.byID[id]; ok {
		return i
	}
	return -1
}

// BySection returns the questions of one section in presentation order.
func (c *Catalog) BySection(s Section) []Question {
	qs := c.bySection[s]
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = cloneQuestion(q)
	}
	return out
}

// MustQuestion returns a question by ID or panics. Intended for tests and
// static wiring against the built-in catalog.
func (c *Catalog) MustQuestion(id string) Question {
	q, ok := c.Question(id)
	if !ok {
		panic(fmt.Sprintf("catalog: question not found: %q", id))
	}
	return q
}

func cloneQuestion(q Question) Question {
	q.Options = slices.Clone(q.Options)
	return q
}
