package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileQuestion is the on-disk shape of a question. JSON documents are valid
// YAML, so one decoder serves both formats.
type fileQuestion struct {
	ID       string   `yaml:"id" json:"id"`
	Section  string   `yaml:"section" json:"section"`
	Type     string   `yaml:"type" json:"type"`
	Prompt   string   `yaml:"prompt" json:"prompt"`
	Options  []string `yaml:"options,omitempty" json:"options,omitempty"`
	Category string   `yaml:"category,omitempty" json:"category,omitempty"`
	Weight   float64  `yaml:"weight,omitempty" json:"weight,omitempty"`
}

type fileCatalog struct {
	Version   string         `yaml:"version" json:"version"`
	Questions []fileQuestion `yaml:"questions" json:"questions"`
}

// LoadFile reads, schema-checks, and validates a catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from YAML or JSON bytes.
func Parse(data []byte) (*Catalog, error) {
	doc, err := decodeGeneric(data)
	if err != nil {
		return nil, err
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var fc fileCatalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	questions := make([]Question, 0, len(fc.Questions))
	for _, fq := range fc.Questions {
		t, err := ParseAnswerType(fq.Type)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", fq.ID, err)
		}
		questions = append(questions, Question{
			ID:       fq.ID,
			Section:  Section(fq.Section),
			Type:     t,
			Prompt:   fq.Prompt,
			Options:  fq.Options,
			Category: fq.Category,
			Weight:   fq.Weight,
		})
	}

	version := fc.Version
	if version == "" {
		version = "custom"
	}
	return New(version, questions)
}

// Marshal encodes a catalog in the file format read by Parse.
func Marshal(c *Catalog) ([]byte, error) {
	fc := fileCatalog{Version: c.Version()}
	for _, q := range c.Questions() {
		fc.Questions = append(fc.Questions, fileQuestion{
			ID:       q.ID,
			Section:  string(q.Section),
			Type:     string(q.Type),
			Prompt:   q.Prompt,
			Options:  q.Options,
			Category: q.Category,
			Weight:   q.Weight,
		})
	}
	return yaml.Marshal(fc)
}

// decodeGeneric decodes exactly one YAML document and returns it in the
// shape encoding/json would produce, which is what the schema validator expects.
func decodeGeneric(data []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse catalog: empty document")
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse catalog: multiple YAML documents are not supported")
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return doc, nil
}
