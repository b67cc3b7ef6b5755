package staticset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads and parses the curated spaces YAML file.
type Loader struct {
	filePath string
}

func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

func (l *Loader) Load() (*SpacesFile, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spaces file: %w", err)
	}

	var file SpacesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse spaces yaml: %w", err)
	}

	return &file, nil
}
