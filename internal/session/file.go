package session

import (
	"bytes"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/scoring"
)

type fileResponse struct {
	Question string `yaml:"question"`
	Value    int    `yaml:"value"`
}

type fileResponses struct {
	Responses []fileResponse `yaml:"responses"`
}

// LoadResponses reads an answers file and upserts its entries in file order.
// The file is either a list of {question, value} entries or a mapping with
// a "responses" list; JSON works too. Unknown question IDs are kept and
// logged, since the scorer ignores them.
func LoadResponses(path string, c *catalog.Catalog, logger *zap.Logger) (*ResponseSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read responses: %w", err)
	}
	set, err := ParseResponses(data, c, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// ParseResponses is LoadResponses without the file read.
func ParseResponses(data []byte, c *catalog.Catalog, logger *zap.Logger) (*ResponseSet, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse responses: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("parse responses: empty document")
	}

	var entries []fileResponse
	switch doc := root.Content[0]; doc.Kind {
	case yaml.SequenceNode:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("parse responses: %w", err)
		}
	case yaml.MappingNode:
		var fr fileResponses
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fr); err != nil {
			return nil, fmt.Errorf("parse responses: %w", err)
		}
		entries = fr.Responses
	default:
		return nil, fmt.Errorf("parse responses: expected a list or a mapping at line %d", doc.Line)
	}

	set := &ResponseSet{}
	for i, e := range entries {
		if e.Question == "" {
			return nil, fmt.Errorf("response #%d: missing question ID", i+1)
		}
		r := scoring.Response{QuestionID: e.Question, Value: e.Value}
		q, ok := c.Question(e.Question)
		switch {
		case !ok:
			logger.Warn("response for unknown question", zap.String("question_id", e.Question))
		case !q.ValidValue(e.Value):
			logger.Warn("response value out of range",
				zap.String("question_id", e.Question),
				zap.Int("value", e.Value),
				zap.Int("max", q.AnswerCount()),
			)
			r.Section = q.Section
		default:
			r.Section = q.Section
		}
		set.Upsert(r)
	}
	logger.Debug("responses loaded", zap.Int("entries", len(entries)), zap.Int("distinct", set.Len()))
	return set, nil
}
