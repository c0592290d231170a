package checksum

import "strings"

// normalizeISBN strips everything except digits and the check character X,
// uppercasing as it goes. Hyphens and spaces in printed ISBNs are noise.
func normalizeISBN(value string) string {
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == 'X' || c == 'x':
			b.WriteByte('X')
		}
	}
	return b.String()
}

// ISBN reports whether value is a valid ISBN-10 or ISBN-13, deciding by the
// number of significant characters after normalization.
func ISBN(value string) bool {
	switch len(normalizeISBN(value)) {
	case 10:
		return ISBN10(value)
	case 13:
		return ISBN13(value)
	default:
		return false
	}
}

// ISBN10 validates the ten-character form. The weighted sum of the digits
// (weights 10 down to 1, check character X counting as 10) must be a
// multiple of 11.
func ISBN10(value string) bool {
	s := normalizeISBN(value)
	if len(s) != 10 {
		return false
	}

	sum := 0
	for i := 0; i < 10; i++ {
		d := digitVal(s[i])
		if d < 0 {
			if s[i] != 'X' {
				return false
			}
			d = 10
		}
		sum += d * (10 - i)
	}
	return sum%11 == 0
}

// ISBN13 validates the thirteen-digit form. Digits are weighted 1 and 3
// alternately; the sum must be a multiple of 10.
func ISBN13(value string) bool {
	s := normalizeISBN(value)
	if len(s) != 13 {
		return false
	}

	sum := 0
	for i := 0; i < 13; i++ {
		d := digitVal(s[i])
		if d < 0 {
			// X is only meaningful in ISBN-10.
			return false
		}
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	return sum%10 == 0
}
