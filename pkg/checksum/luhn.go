package checksum

// Luhn reports whether the digits of value (all other characters are
// stripped) satisfy the Luhn checksum used by credit card numbers and IMEIs.
// Walking from the rightmost digit, every second digit is doubled, with 9
// subtracted when the doubled value exceeds 9; the total must be a multiple
// of 10.
func Luhn(value string) bool {
	var digits []int
	for i := 0; i < len(value); i++ {
		if d := digitVal(value[i]); d >= 0 {
			digits = append(digits, d)
		}
	}
	if len(digits) < 2 {
		return false
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		d := digits[len(digits)-1-i]
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}
