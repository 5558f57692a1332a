package catalog

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// yamlGroup is the YAML structure for an option group.
type yamlGroup struct {
	Name    string       `yaml:"name"`
	Title   string       `yaml:"title"`
	Intro   string       `yaml:"intro"`
	Footer  string       `yaml:"footer"`
	Default string       `yaml:"default"`
	Options []yamlOption `yaml:"options"`
}

type yamlOption struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
	Name  string `yaml:"name"`
	Help  string `yaml:"help"`
}

// Loader handles loading option groups from YAML files.
type Loader struct {
	registry *Registry
}

// NewLoader creates a new catalog loader that populates the given registry.
func NewLoader(registry *Registry) *Loader {
	return &Loader{registry: registry}
}

// LoadFromFS loads option groups from an embedded or real filesystem.
// It expects YAML files in a "catalog" subdirectory.
func (l *Loader) LoadFromFS(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, "catalog")
	if err != nil {
		return fmt.Errorf("failed to read catalog directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}

		if err := l.loadFile(fsys, "catalog/"+entry.Name()); err != nil {
			return err
		}
	}

	return nil
}

func (l *Loader) loadFile(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var yg yamlGroup
	if err := yaml.Unmarshal(data, &yg); err != nil {
		return fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	group, err := convertYAMLGroup(&yg)
	if err != nil {
		return fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	l.registry.Register(group)

	return nil
}

func convertYAMLGroup(yg *yamlGroup) (*Group, error) {
	if yg.Name == "" {
		return nil, ErrMissingName
	}
	if len(yg.Options) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoOptions, yg.Name)
	}

	group := &Group{
		Name:    yg.Name,
		Title:   yg.Title,
		Intro:   yg.Intro,
		Footer:  yg.Footer,
		Default: yg.Default,
		Options: make([]Option, len(yg.Options)),
	}
	for i, yo := range yg.Options {
		label := yo.Label
		if label == "" {
			label = yo.Value
		}
		name := yo.Name
		if name == "" {
			name = label
		}
		group.Options[i] = Option{Value: yo.Value, Label: label, Name: name, Help: yo.Help}
	}

	if group.Default != "" {
		if _, ok := group.ByValue(group.Default); !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrUnknownDefault, group.Default, group.Name)
		}
	}
	return group, nil
}
