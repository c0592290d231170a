package checksum

import "strings"

// IBAN reports whether value passes the ISO 13616 mod-97 check. Whitespace
// is removed and the value uppercased; the first four characters (country
// code and check digits) move to the end; letters become two-digit numbers
// (A=10 .. Z=35); the resulting numeral must leave remainder 1 mod 97.
//
// The remainder is computed incrementally digit by digit, so arbitrarily
// long account numbers never overflow.
func IBAN(value string) bool {
	s := strings.ToUpper(strings.Join(strings.Fields(value), ""))
	if len(s) < 5 || len(s) > 34 {
		return false
	}

	rearranged := s[4:] + s[:4]

	rem := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		switch {
		case c >= '0' && c <= '9':
			rem = (rem*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			// Two-digit expansion: rem*100 + value.
			rem = (rem*100 + int(c-'A') + 10) % 97
		default:
			return false
		}
	}
	return rem == 1
}
