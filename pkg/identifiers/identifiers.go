// Package identifiers holds the static table of identifier specs that
// drives both single-value validation and pattern extraction. Each spec
// pairs a kind with an optional structural regex and an optional checksum
// validator; when both are present the regex is a pre-filter only and
// final acceptance requires the checksum to pass.
package identifiers

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/extract-forge/pkg/checksum"
)

// Spec describes one identifier kind.
type Spec struct {
	Kind         string   `yaml:"kind"`
	Pattern      string   `yaml:"pattern,omitempty"`
	Checksum     string   `yaml:"checksum,omitempty"`
	ErrorMessage string   `yaml:"error_message,omitempty"`
	Valid        []string `yaml:"valid,omitempty"`
	Invalid      []string `yaml:"invalid,omitempty"`

	re        *regexp.Regexp
	validator checksum.Func
}

// Regexp returns the compiled structural pattern, or nil when the spec has
// no pattern.
func (s *Spec) Regexp() *regexp.Regexp {
	return s.re
}

// Validator returns the checksum function, or nil for pattern-only kinds.
func (s *Spec) Validator() checksum.Func {
	return s.validator
}

// Validate reports whether value is acceptable for this kind: it must match
// the structural pattern (when one is set) and pass the checksum (when one
// is set). Malformed input returns false, never an error.
func (s *Spec) Validate(value string) bool {
	if value == "" {
		return false
	}
	if s.re != nil && !s.re.MatchString(value) {
		return false
	}
	if s.validator != nil {
		return s.validator(value)
	}
	return true
}

// Table is an immutable set of identifier specs, preserving file order.
type Table struct {
	specs map[string]*Spec
	order []string
}

// specFile is the on-disk YAML shape.
type specFile struct {
	Identifiers []*Spec `yaml:"identifiers"`
}

// Load parses identifier specs from r, compiling patterns and resolving
// checksum validator names.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read identifier specs: %w", err)
	}

	var file specFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse identifier specs: %w", err)
	}

	table := &Table{specs: make(map[string]*Spec)}
	for _, spec := range file.Identifiers {
		if spec.Kind == "" {
			return nil, fmt.Errorf("identifier spec without a kind")
		}
		if _, exists := table.specs[spec.Kind]; exists {
			return nil, fmt.Errorf("duplicate identifier kind %q", spec.Kind)
		}

		if spec.Pattern != "" {
			re, err := regexp.Compile(spec.Pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern for kind %q: %w", spec.Kind, err)
			}
			spec.re = re
		}

		if spec.Checksum != "" {
			fn, ok := checksum.ByName[spec.Checksum]
			if !ok {
				return nil, fmt.Errorf("unknown checksum %q for kind %q", spec.Checksum, spec.Kind)
			}
			spec.validator = fn
		}

		table.specs[spec.Kind] = spec
		table.order = append(table.order, spec.Kind)
	}

	return table, nil
}

// LoadFile loads identifier specs from a YAML file on disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open identifier spec file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Lookup returns the spec for kind.
func (t *Table) Lookup(kind string) (*Spec, bool) {
	spec, ok := t.specs[kind]
	return spec, ok
}

// Kinds returns all registered kinds in file order.
func (t *Table) Kinds() []string {
	kinds := make([]string, len(t.order))
	copy(kinds, t.order)
	return kinds
}

// Validate checks a single candidate value against the named kind. Unknown
// kinds are invalid.
func (t *Table) Validate(kind, value string) bool {
	spec, ok := t.specs[kind]
	if !ok {
		return false
	}
	return spec.Validate(value)
}

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Default returns the table built from the embedded spec file. The embedded
// data is validated by tests, so a parse failure here is a build defect.
func Default() *Table {
	defaultOnce.Do(func() {
		table, err := Load(bytes.NewReader(embeddedSpecs))
		if err != nil {
			panic(fmt.Sprintf("embedded identifier specs are invalid: %v", err))
		}
		defaultTable = table
	})
	return defaultTable
}
