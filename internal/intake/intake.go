// Package intake reads answer documents (JSON or YAML) for non-interactive
// scoring and produces blank templates for respondents to fill in.
package intake

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/tizhi/internal/bank"
	"github.com/abhisek/tizhi/internal/scoring"
)

// Document is the on-disk shape of an answer file. Answer keys may be any
// category spelling bank.ParseCategory accepts; a null or 0 entry is
// unanswered.
type Document struct {
	Sex     string            `json:"sex,omitempty" yaml:"sex,omitempty"`
	Answers map[string][]*int `json:"answers" yaml:"answers"`
}

// Submission is a validated answer document.
type Submission struct {
	Source  string
	Sex     bank.Sex // meaningful only when HasSex
	Answers scoring.AnswerSet
	hasSex  bool
}

// HasSex reports whether the document named a respondent sex.
func (s Submission) HasSex() bool {
	return s.hasSex
}

// ValidationError reports a document that cannot be used.
type ValidationError struct {
	Source string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid answer document: %v", e.Source, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Parse validates data read from source and decodes it into a Submission.
// Files ending in .yaml or .yml are YAML, .json is JSON; anything else is
// sniffed from its first non-space byte.
func Parse(source string, data []byte) (*Submission, error) {
	invalid := func(err error) error {
		return &ValidationError{Source: source, Err: err}
	}

	raw := data
	if isYAML(source, data) {
		var err error
		if raw, err = yamlToJSON(data); err != nil {
			return nil, invalid(err)
		}
	}

	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, invalid(fmt.Errorf("parse json: %w", err))
	}
	schema, err := documentSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(value); err != nil {
		return nil, invalid(err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, invalid(fmt.Errorf("decode document: %w", err))
	}

	sub := &Submission{Source: source, Answers: make(scoring.AnswerSet, bank.CategoryCount)}
	if doc.Sex != "" {
		if sub.Sex, err = bank.ParseSex(doc.Sex); err != nil {
			return nil, invalid(err)
		}
		sub.hasSex = true
	}

	seen := make(map[bank.Category]string, len(doc.Answers))
	for _, key := range doc.answerKeys() {
		cells := doc.Answers[key]
		c, err := bank.ParseCategory(key)
		if err != nil {
			return nil, invalid(err)
		}
		if prev, dup := seen[c]; dup {
			return nil, invalid(fmt.Errorf("category %s given twice (%q and %q)", c, prev, key))
		}
		seen[c] = key

		values := make([]int, len(cells))
		for i, v := range cells {
			if v != nil {
				values[i] = *v
			}
		}
		sub.Answers[c] = values
	}
	return sub, nil
}

func isYAML(source string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		return true
	case ".json":
		return false
	}
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[')
}

// yamlToJSON re-encodes a YAML document as JSON so both inputs share one
// validation path.
func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("convert yaml: %w", err)
	}
	return out, nil
}
