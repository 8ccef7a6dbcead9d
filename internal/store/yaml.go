package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/existflow/ironplan/internal/model"
	"gopkg.in/yaml.v3"
)

// yamlSource reads a dataset file such as:
//
//	employees:
//	  - id: "1"
//	    first_name: Marie
//	    ...
//	tasks:
//	  - id: "1"
//	    start_date: 2024-12-23T09:00:00+01:00
//	    ...
type yamlSource struct {
	path string
}

func (s yamlSource) Load(_ context.Context) (model.Dataset, error) {
	var d model.Dataset

	data, err := os.ReadFile(s.path)
	if err != nil {
		return d, fmt.Errorf("failed to read dataset: %w", err)
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return d, nil
}

// WriteYAML writes d to path in the format yamlSource reads
func WriteYAML(path string, d model.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}
