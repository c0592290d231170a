package identifiers

import (
	"strings"
	"testing"
)

// TestDefaultTable_Examples validates every example listed in the embedded
// spec file against its own kind, both directions.
func TestDefaultTable_Examples(t *testing.T) {
	table := Default()

	for _, kind := range table.Kinds() {
		spec, ok := table.Lookup(kind)
		if !ok {
			t.Fatalf("Lookup(%q) missing for listed kind", kind)
		}

		for _, value := range spec.Valid {
			if !table.Validate(kind, value) {
				t.Errorf("Validate(%q, %q) = false, want true", kind, value)
			}
		}
		for _, value := range spec.Invalid {
			if table.Validate(kind, value) {
				t.Errorf("Validate(%q, %q) = true, want false", kind, value)
			}
		}
	}
}

func TestDefaultTable_Kinds(t *testing.T) {
	table := Default()

	expected := []string{
		"isbn", "vin", "issn", "iban", "credit_card", "imei",
		"uuid", "hex_color", "ip", "mac_address", "ean13", "upca",
	}

	kinds := table.Kinds()
	if len(kinds) != len(expected) {
		t.Fatalf("Kinds() returned %d kinds, want %d: %v", len(kinds), len(expected), kinds)
	}
	for i, kind := range expected {
		if kinds[i] != kind {
			t.Errorf("Kinds()[%d] = %q, want %q", i, kinds[i], kind)
		}
	}
}

func TestValidate_UnknownKind(t *testing.T) {
	table := Default()

	if table.Validate("unknown", "978-3-16-148410-0") {
		t.Error("Validate() with unknown kind should return false")
	}
	if table.Validate("isbn", "") {
		t.Error("Validate() with empty value should return false")
	}
}

func TestLoad_CustomSpecs(t *testing.T) {
	input := `
identifiers:
  - kind: order_number
    pattern: '\bORD-\d{6}\b'
    error_message: is not a valid order number
    valid:
      - "ORD-123456"
`
	table, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !table.Validate("order_number", "ORD-123456") {
		t.Error("Validate() should accept matching custom value")
	}
	if table.Validate("order_number", "ORD-12") {
		t.Error("Validate() should reject non-matching custom value")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name: "unknown checksum",
			input: `
identifiers:
  - kind: widget
    checksum: nonexistent
`,
		},
		{
			name: "invalid pattern",
			input: `
identifiers:
  - kind: widget
    pattern: '(['
`,
		},
		{
			name: "missing kind",
			input: `
identifiers:
  - pattern: '\d+'
`,
		},
		{
			name: "duplicate kind",
			input: `
identifiers:
  - kind: widget
  - kind: widget
`,
		},
		{
			name:  "not yaml",
			input: `{{{`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.input)); err == nil {
				t.Error("Load() expected error, got nil")
			}
		})
	}
}

func TestSpec_PatternIsPreFilterOnly(t *testing.T) {
	table := Default()
	spec, _ := table.Lookup("credit_card")

	// Structurally plausible but fails the Luhn check.
	value := "4111 1111 1111 1112"
	if spec.Regexp() == nil || !spec.Regexp().MatchString(value) {
		t.Fatalf("pattern should match structurally plausible value %q", value)
	}
	if spec.Validate(value) {
		t.Errorf("Validate(%q) = true, want false: checksum must gate acceptance", value)
	}
}
