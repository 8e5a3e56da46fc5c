package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a rule table from a YAML file and validates it. The file
// holds an ordered list of rules:
//
//	- id: transactional_purchase_explicit
//	  requires: [action]
//	  excludes: [question]
//	  target: transactional_purchase
//	  delta: 0.6
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var list []Rule
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}

	table, err := New(list)
	if err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	return table, nil
}
