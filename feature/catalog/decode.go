package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"factory-planner/feature/catalog/models"

	"gopkg.in/yaml.v3"
)

// Decode reads recipe data. The format is chosen from the extension of name:
// .yaml and .yml are YAML, anything else is JSON.
func Decode(name string, r io.Reader) (*models.Data, error) {
	var data models.Data

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&data); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
	default:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&data); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
	}

	return &data, nil
}

// Encode writes recipe data in the format implied by name.
func Encode(name string, w io.Writer, data *models.Data) error {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(data)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
}

// Parse decodes and builds a catalog in one step.
func Parse(name string, r io.Reader) (*Catalog, error) {
	data, err := Decode(name, r)
	if err != nil {
		return nil, err
	}
	return Build(data)
}
