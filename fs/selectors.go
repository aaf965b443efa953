// Package fs provides file-based loading of selector lists.
package fs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/htmlcheck"
	"gopkg.in/yaml.v3"
)

// Ensure SelectorLoader implements htmlcheck.SelectorLoader at compile time.
var _ htmlcheck.SelectorLoader = (*SelectorLoader)(nil)

// SelectorLoader reads selector lists from disk.
// Files ending in .yaml or .yml are read as a YAML sequence; anything else
// is read as a JSON array of strings.
type SelectorLoader struct{}

// NewSelectorLoader creates a new SelectorLoader.
func NewSelectorLoader() *SelectorLoader {
	return &SelectorLoader{}
}

// LoadSelectors reads the selector list at path.
func (l *SelectorLoader) LoadSelectors(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, htmlcheck.Errorf(htmlcheck.ENOTFOUND, "%s does not exist. Exiting.", path)
		}
		return nil, htmlcheck.Errorf(htmlcheck.EINTERNAL, "failed to read %s: %v", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return DecodeJSON(data)
	}
}

// DecodeJSON parses a JSON array of strings.
// Any other JSON value, including null, is rejected with EPARSE.
func DecodeJSON(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, htmlcheck.Errorf(htmlcheck.EPARSE, "selector list must be a JSON array of strings")
	}

	var selectors []string
	if err := json.Unmarshal(trimmed, &selectors); err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EPARSE, "invalid selector list: %v", err)
	}
	if selectors == nil {
		selectors = []string{}
	}
	return selectors, nil
}

// DecodeYAML parses a YAML sequence of scalars.
// Quote selectors that start with YAML indicators such as '*' or '&'.
func DecodeYAML(data []byte) ([]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EPARSE, "invalid selector list: %v", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 || root.Content[0].Kind != yaml.SequenceNode {
		return nil, htmlcheck.Errorf(htmlcheck.EPARSE, "selector list must be a YAML sequence of strings")
	}

	items := root.Content[0].Content
	selectors := make([]string, 0, len(items))
	for _, item := range items {
		if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
			return nil, htmlcheck.Errorf(htmlcheck.EPARSE, "selector list line %d: expected a string", item.Line)
		}
		selectors = append(selectors, item.Value)
	}
	return selectors, nil
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
