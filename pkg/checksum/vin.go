package checksum

import "strings"

// vinValues is the ISO 3779 transliteration table. I and O carry no
// value: a VIN containing them is invalid.
var vinValues = map[byte]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 6, 'Q': 7, 'R': 8,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
}

// vinWeights are the position weights; position 8 is the check digit
// itself and carries weight 0.
var vinWeights = [17]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// VIN reports whether value is a 17-character Vehicle Identification Number
// with a correct check digit at position 9 (index 8).
func VIN(value string) bool {
	s := strings.ToUpper(strings.TrimSpace(value))
	if len(s) != 17 {
		return false
	}

	sum := 0
	for i := 0; i < 17; i++ {
		c := s[i]
		d := digitVal(c)
		if d < 0 {
			v, ok := vinValues[c]
			if !ok {
				return false
			}
			d = v
		}
		sum += d * vinWeights[i]
	}

	expected := byte('0' + sum%11)
	if sum%11 == 10 {
		expected = 'X'
	}
	return s[8] == expected
}
