// Package decl reads record declarations from YAML files: record kinds over
// string-keyed maps, with their attributes, and records of those kinds.
package decl

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a declarations file.
type File struct {
	Kinds   []KindDecl   `yaml:"kinds"`
	Records []RecordDecl `yaml:"records"`
}

// KindDecl declares a record kind.
type KindDecl struct {
	Name       string         `yaml:"name"`
	Mutable    bool           `yaml:"mutable"`
	Attributes []AttrDecl     `yaml:"attributes"`
	Defaults   map[string]any `yaml:"defaults"`
}

// AttrDecl declares an attribute. In YAML, it is either a plain name, for a
// required attribute, or a mapping with a name and at most one of a default
// value or a factory name.
type AttrDecl struct {
	Name       string
	Default    any
	HasDefault bool
	Factory    string
}

// UnmarshalYAML decodes a plain name or an attribute mapping. A default
// that is present but null is a nil default value.
func (attr *AttrDecl) UnmarshalYAML(node *yaml.Node) (err error) {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&attr.Name)
	}
	var raw map[string]any
	err = node.Decode(&raw)
	if err != nil {
		return
	}
	for key, value := range raw {
		var ok bool
		switch key {
		case "name":
			attr.Name, ok = value.(string)
		case "factory":
			attr.Factory, ok = value.(string)
		case "default":
			attr.Default, attr.HasDefault, ok = value, true, true
		}
		if !ok {
			err = fmt.Errorf("line %d: invalid attribute key %q", node.Line, key)
			return
		}
	}
	return
}

// RecordDecl declares a record of a declared kind.
type RecordDecl struct {
	Kind   string         `yaml:"kind"`
	Values map[string]any `yaml:"values"`
}

// Parse decodes a declarations file.
func Parse(r io.Reader) (file *File, err error) {
	file = &File{}
	err = yaml.NewDecoder(r).Decode(file)
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		file = nil
		err = fmt.Errorf("failed to parse declarations: %w", err)
	}
	return
}

// Load reads and decodes the declarations file at the path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open declarations: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
