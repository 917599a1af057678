// Package questions loads the static survey question list.
package questions

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parisxmas/qanda/internal/assets"
	"github.com/parisxmas/qanda/internal/models"
	"gopkg.in/yaml.v3"
)

var ErrInvalidQuestions = errors.New("invalid question list")

// Load reads a question list from path. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func Load(path string) ([]models.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// Default returns the embedded question list.
func Default() ([]models.Question, error) {
	return ParseJSON(assets.Questions)
}

func ParseJSON(data []byte) ([]models.Question, error) {
	var qs []models.Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	return qs, validate(qs)
}

func ParseYAML(data []byte) ([]models.Question, error) {
	var qs []models.Question
	if err := yaml.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	return qs, validate(qs)
}

func validate(qs []models.Question) error {
	if len(qs) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidQuestions)
	}
	seen := make(map[string]bool, len(qs))
	for i, q := range qs {
		if q.ID == "" {
			return fmt.Errorf("%w: question %d has no id", ErrInvalidQuestions, i)
		}
		if seen[q.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidQuestions, q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}
