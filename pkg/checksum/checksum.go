// Package checksum implements check-digit validation for well-known
// identifier formats: ISBN-10/13, VIN (ISO 3779), ISSN (ISO 3297),
// IBAN (ISO 13616 mod-97) and Luhn (credit cards, IMEI).
//
// Every validator is a pure function. Malformed input of any kind returns
// false; validators never panic.
package checksum

// Func validates a single candidate value against a checksum algorithm.
type Func func(value string) bool

// ByName maps a checksum algorithm identifier to its validator. The names
// match the "checksum" field of identifier spec files.
var ByName = map[string]Func{
	"isbn": ISBN,
	"vin":  VIN,
	"issn": ISSN,
	"iban": IBAN,
	"luhn": Luhn,
}

// digitVal returns the numeric value of an ASCII digit, or -1.
func digitVal(c byte) int {
	if c < '0' || c > '9' {
		return -1
	}
	return int(c - '0')
}
