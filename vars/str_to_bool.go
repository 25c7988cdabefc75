package vars

import "strings"

// StrToBool reads the usual spellings of an affirmative env value.
// Anything unrecognized, including the empty string, is false.
func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	}
	return false
}
