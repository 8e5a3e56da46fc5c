package ontology

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a taxonomy from a YAML file and validates it. The file
// holds a list of nodes:
//
//	- id: transactional
//	  default_weight: 0.7
//	- id: transactional_purchase
//	  parent_id: transactional
//	  default_weight: 1.0
func LoadFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ontology file: %w", err)
	}

	var nodes []Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("parsing ontology file %s: %w", path, err)
	}

	tree, err := New(nodes)
	if err != nil {
		return nil, fmt.Errorf("ontology file %s: %w", path, err)
	}
	return tree, nil
}
