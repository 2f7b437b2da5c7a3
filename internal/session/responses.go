package session

import (
	"slices"

	"github.com/abhisek/pathfinder/internal/scoring"
)

// ResponseSet holds at most one response per question ID, in the order the
// answers were last given. The zero value is an empty set.
type ResponseSet struct {
	items []scoring.Response
}

// Upsert records r, replacing any earlier response to the same question.
// The replacement moves to the end of the list.
func (s *ResponseSet) Upsert(r scoring.Response) {
	s.items = slices.DeleteFunc(s.items, func(existing scoring.Response) bool {
		return existing.QuestionID == r.QuestionID
	})
	s.items = append(s.items, r)
}

// Get returns the response for a question ID.
func (s *ResponseSet) Get(questionID string) (scoring.Response, bool) {
	for _, r := range s.items {
		if r.QuestionID == questionID {
			return r, true
		}
	}
	return scoring.Response{}, false
}

// List returns a copy of the responses.
func (s *ResponseSet) List() []scoring.Response {
	return slices.Clone(s.items)
}

// Len returns the number of distinct questions answered.
func (s *ResponseSet) Len() int {
	return len(s.items)
}

// Reset discards every response.
func (s *ResponseSet) Reset() {
	s.items = nil
}
