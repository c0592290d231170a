package checksum

import "strings"

// ISSN reports whether value is a valid ISO 3297 serial number. After
// removing hyphens the value must be exactly eight characters: seven digits
// weighted 8 down to 2, then a check character which is X when the computed
// check value is 10.
func ISSN(value string) bool {
	s := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), "-", ""))
	if len(s) != 8 {
		return false
	}

	sum := 0
	for i := 0; i < 7; i++ {
		d := digitVal(s[i])
		if d < 0 {
			return false
		}
		sum += d * (8 - i)
	}

	check := (11 - sum%11) % 11
	expected := byte('0' + check)
	if check == 10 {
		expected = 'X'
	}
	return s[7] == expected
}
