package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calc"
)

// loadVars reads variable definitions from a YAML mapping of names to
// values, e.g.
//
//	g: 9.80665
//	r: 6371e3
//	v: sqrt(g * r)
//
// Numeric values are used as they are. Strings are evaluated as expressions
// which may use any variable defined earlier in the document.
func loadVars(r io.Reader) (map[string]float64, error) {
	vars := make(map[string]float64)
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file.
			return vars, nil
		}
		return nil, err
	}
	if len(doc.Content) == 0 {
		return vars, nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: variables must be a mapping of names to values", m.Line)
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: value of %s is not a number or expression", v.Line, k.Value)
		}
		switch v.Tag {
		case "!!int", "!!float":
			var x float64
			if err := v.Decode(&x); err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", v.Line, k.Value, err)
			}
			vars[k.Value] = x
		default:
			x, err := calc.EvalString(v.Value, calc.SetVars(vars))
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", v.Line, k.Value, err)
			}
			vars[k.Value] = x
		}
	}
	return vars, nil
}
