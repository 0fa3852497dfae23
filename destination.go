package argparse

import (
	"strings"
)

// inferDestination derives an action's destination key from its option
// strings or positional name, the way argparse does: strip leading prefix
// characters from the first long option string (falling back to the first
// option string of any length), then replace interior prefix characters
// with underscores. Positionals use their bare name unchanged.
func inferDestination(name string, optionStrings []string, prefixChars string) string {
	if len(optionStrings) == 0 {
		return name
	}
	seed := optionStrings[0]
	for _, opt := range optionStrings {
		if isLongOption(opt, prefixChars) {
			seed = opt
			break
		}
	}
	seed = strings.TrimLeft(seed, prefixChars)
	return replaceAny(seed, prefixChars, '_')
}

// isLongOption reports whether opt opens with two of the same prefix
// character, e.g. "--foo" or "++foo" but not "-f" or "+f".
func isLongOption(opt, prefixChars string) bool {
	return len(opt) >= 2 && strings.ContainsRune(prefixChars, rune(opt[0])) && opt[0] == opt[1]
}

func replaceAny(s, chars string, to rune) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return to
		}
		return r
	}, s)
}
