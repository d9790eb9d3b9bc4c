package services

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSeedFile reads answer keys from a YAML document shaped as
//
//	animals:
//	  - cat
//	  - dog
//	fruits: [apple, pear]
//
// Blank answers and blank category names are rejected.
func LoadSeedFile(path string) (map[string][]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	keys := map[string][]string{}
	if err := yaml.Unmarshal(b, &keys); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	for category, list := range keys {
		if strings.TrimSpace(category) == "" {
			return nil, fmt.Errorf("seed file %s: empty category name", path)
		}
		for _, a := range list {
			if a == "" {
				return nil, fmt.Errorf("seed file %s: empty answer in category %q", path, category)
			}
		}
	}

	return keys, nil
}
