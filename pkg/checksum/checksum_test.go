package checksum

import "testing"

func TestISBN10(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{
			name:     "valid with hyphens",
			value:    "0-306-40615-2",
			expected: true,
		},
		{
			name:     "valid without separators",
			value:    "0306406152",
			expected: true,
		},
		{
			name:     "valid with X check character",
			value:    "155860832X",
			expected: true,
		},
		{
			name:     "valid with lowercase x",
			value:    "155860832x",
			expected: true,
		},
		{
			name:     "single digit corruption",
			value:    "0-306-40615-3",
			expected: false,
		},
		{
			name:     "too short",
			value:    "030640615",
			expected: false,
		},
		{
			name:     "empty string",
			value:    "",
			expected: false,
		},
		{
			name:     "letters only",
			value:    "not-an-isbn",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ISBN10(tt.value); got != tt.expected {
				t.Errorf("ISBN10(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestISBN13(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{
			name:     "valid with hyphens",
			value:    "978-3-16-148410-0",
			expected: true,
		},
		{
			name:     "valid without separators",
			value:    "9780306406157",
			expected: true,
		},
		{
			name:     "single digit corruption",
			value:    "978-3-16-148410-1",
			expected: false,
		},
		{
			name:     "X is not a valid ISBN-13 character",
			value:    "978316148410X",
			expected: false,
		},
		{
			name:     "wrong length",
			value:    "97831614841",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ISBN13(tt.value); got != tt.expected {
				t.Errorf("ISBN13(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestISBN_DispatchesOnLength(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"ten characters routes to ISBN-10", "0-306-40615-2", true},
		{"thirteen digits routes to ISBN-13", "978-3-16-148410-0", true},
		{"eleven digits is neither", "03064061521", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ISBN(tt.value); got != tt.expected {
				t.Errorf("ISBN(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestVIN(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{
			name:     "valid VIN",
			value:    "1HGCM82633A004352",
			expected: true,
		},
		{
			name:     "valid all-ones VIN",
			value:    "11111111111111111",
			expected: true,
		},
		{
			name:     "lowercase input is uppercased",
			value:    "1hgcm82633a004352",
			expected: true,
		},
		{
			name:     "flipped last digit",
			value:    "1HGCM82633A004353",
			expected: false,
		},
		{
			name:     "contains forbidden letter O",
			value:    "1HGCM82633AO04352",
			expected: false,
		},
		{
			name:     "contains forbidden letter I",
			value:    "1HGCM82633AI04352",
			expected: false,
		},
		{
			name:     "Q transliterates to seven",
			value:    "1Q111111X11111111",
			expected: true,
		},
		{
			name:     "too short",
			value:    "1HGCM82633A00435",
			expected: false,
		},
		{
			name:     "empty string",
			value:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VIN(tt.value); got != tt.expected {
				t.Errorf("VIN(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestISSN(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{
			name:     "valid with hyphen",
			value:    "0378-5955",
			expected: true,
		},
		{
			name:     "valid without hyphen",
			value:    "20493630",
			expected: true,
		},
		{
			name:     "corrupted check digit",
			value:    "0378-5956",
			expected: false,
		},
		{
			name:     "non-digit in body",
			value:    "03A8-5955",
			expected: false,
		},
		{
			name:     "wrong length",
			value:    "0378-595",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ISSN(tt.value); got != tt.expected {
				t.Errorf("ISSN(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestIBAN(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{
			name:     "valid UK IBAN",
			value:    "GB82WEST12345698765432",
			expected: true,
		},
		{
			name:     "valid with spaces",
			value:    "GB82 WEST 1234 5698 7654 32",
			expected: true,
		},
		{
			name:     "valid German IBAN",
			value:    "DE89370400440532013000",
			expected: true,
		},
		{
			name:     "lowercase input is uppercased",
			value:    "gb82west12345698765432",
			expected: true,
		},
		{
			name:     "corrupted last digit",
			value:    "GB82WEST12345698765431",
			expected: false,
		},
		{
			name:     "illegal character",
			value:    "GB82WEST1234569876543!",
			expected: false,
		},
		{
			name:     "too short",
			value:    "GB82",
			expected: false,
		},
		{
			name:     "empty string",
			value:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IBAN(tt.value); got != tt.expected {
				t.Errorf("IBAN(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestLuhn(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{
			name:     "valid Visa test number with spaces",
			value:    "4111 1111 1111 1111",
			expected: true,
		},
		{
			name:     "valid without separators",
			value:    "4111111111111111",
			expected: true,
		},
		{
			name:     "valid short number",
			value:    "79927398713",
			expected: true,
		},
		{
			name:     "valid IMEI",
			value:    "490154203237518",
			expected: true,
		},
		{
			name:     "corrupted last digit",
			value:    "4111 1111 1111 1112",
			expected: false,
		},
		{
			name:     "single digit",
			value:    "0",
			expected: false,
		},
		{
			name:     "no digits at all",
			value:    "not a number",
			expected: false,
		},
		{
			name:     "empty string",
			value:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luhn(tt.value); got != tt.expected {
				t.Errorf("Luhn(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestByName_CoversAllValidators(t *testing.T) {
	for _, name := range []string{"isbn", "vin", "issn", "iban", "luhn"} {
		if _, ok := ByName[name]; !ok {
			t.Errorf("ByName missing validator %q", name)
		}
	}
}
