// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package coach

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/neurobloom/coach-engine/pkg/types"
)

// AnswerExport is the YAML file shape written by SaveAnswer: the
// question asked, generation metadata, and the full answer.
type AnswerExport struct {
	Question string        `yaml:"question"`
	Meta     types.Meta    `yaml:"meta"`
	Answer   *types.Answer `yaml:"answer"`
}

// SaveAnswer writes a result to a YAML file, creating parent
// directories as needed.
func SaveAnswer(question string, res *Result, path string) error {
	data, err := yaml.Marshal(AnswerExport{
		Question: question,
		Meta:     res.Meta,
		Answer:   res.Answer,
	})
	if err != nil {
		return fmt.Errorf("marshaling answer: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadAnswer reads an export previously written by SaveAnswer.
func LoadAnswer(path string) (*AnswerExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var exp AnswerExport
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &exp, nil
}
