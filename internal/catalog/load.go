package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// file is the on-disk shape of a catalog document.
type file struct {
	Nodes []TopicNode `yaml:"nodes" toml:"nodes"`
	Edges []Edge      `yaml:"edges" toml:"edges"`
}

// Parse decodes a YAML catalog document and validates it.
// Unknown fields are rejected so typos in content files surface early.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(f.Nodes, f.Edges)
}

// ParseTOML decodes a TOML catalog document and validates it.
func ParseTOML(data []byte) (*Catalog, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(f.Nodes, f.Edges)
}

// LoadFile reads and parses a catalog from path. Files ending in .toml are
// read as TOML; anything else as YAML.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseTOML
	}

	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}
