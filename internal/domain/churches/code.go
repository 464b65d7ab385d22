package churches

import (
	"crypto/rand"
	"regexp"
)

/*
	Church code helpers
	-------------------
	- Responsible ONLY for:
	  • generating join codes
	  • validating their format
	- No persistence here; collision handling belongs to the writer.
*/

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the fixed length of a church join code.
const CodeLength = 6

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// GenerateCode returns a random 6-character uppercase alphanumeric join code.
// Uniqueness is not guaranteed here; callers must retry on collision.
func GenerateCode() string {
	buf := make([]byte, CodeLength)
	rand.Read(buf)
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}

// ValidCode reports whether s is a well-formed church code.
func ValidCode(s string) bool {
	return codePattern.MatchString(s)
}
