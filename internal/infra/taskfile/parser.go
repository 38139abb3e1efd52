// Package taskfile decodes YAML task files.
//
// Format:
//
//	budget: 90        # optional
//	tasks:
//	  - name: Write report
//	    duration: 45
//	    priority: 1
//	  - name: Email
//	    duration: 10   # priority defaults to 2
package taskfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/taskplan/internal/domain"
)

// Ensure Parser implements domain.TaskFileParser.
var _ domain.TaskFileParser = Parser{}

// Parser decodes task files in YAML.
type Parser struct{}

// New creates a Parser.
func New() Parser {
	return Parser{}
}

// Parse decodes content. Unknown keys are rejected so typos do not silently
// drop fields. Drafts with no priority default to Medium.
func (Parser) Parse(content []byte) (*domain.TaskFile, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, domain.ErrEmptyFile
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var file domain.TaskFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrEmptyFile
		}
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	if len(file.Tasks) == 0 {
		return nil, domain.ErrNoTasksInFile
	}
	if file.Budget < 0 {
		return nil, &domain.ValidationError{Field: "budget", Reason: "must be at least 1 minute"}
	}

	for i := range file.Tasks {
		if file.Tasks[i].Priority == 0 {
			file.Tasks[i].Priority = domain.PriorityMedium
		}
	}
	return &file, nil
}

// Encode writes v as YAML with two-space indentation.
func Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
