package argparse

import (
	"strings"
)

// tokenKind classifies one raw command-line token for pattern-string
// construction: 'O' an optional (a flag, possibly with "=value" attached),
// 'A' a plain value, or '-' the literal "--" delimiter (once consumed, every
// later token is forced to 'A' regardless of its shape).
type tokenKind byte

const (
	tokO tokenKind = 'O'
	tokA tokenKind = 'A'
	tokDash tokenKind = '-'
)

// optionMatch is the resolved interpretation of one "O"-classified token:
// which Action it names, its attached inline value (from "--foo=bar" or a
// value glued to a value-taking short option, "-xvalue"), and, for a
// zero-arity short option, the cluster remainder that follows it.
type optionMatch struct {
	action       *Action
	optionString string // the exact registered string that matched
	inlineValue  string
	hasInline    bool
	// explicitArg holds the remainder glued to a zero-arity short option,
	// e.g. "-abc" matching "-a" leaves "bc" here, which the matching loop
	// expands as further clustered short options. A value-taking short
	// option's remainder ("-xvalue") goes to inlineValue instead.
	explicitArg string
	hasExplicit bool
}

// classify builds the O/A/- pattern string for the full token list and,
// for every position classified 'O', records how it resolved. seenDashDash
// tracks the first literal "--", after which everything is 'A'.
func (c *ActionContainer) classify(tokens []string) (pattern string, matches map[int]*optionMatch) {
	matches = map[int]*optionMatch{}
	var b strings.Builder
	seenDashDash := false
	for i, tok := range tokens {
		if seenDashDash {
			b.WriteByte(byte(tokA))
			continue
		}
		if tok == "--" {
			seenDashDash = true
			b.WriteByte(byte(tokDash))
			continue
		}
		if c.looksLikeOption(tok) {
			matches[i] = c.resolveOptionToken(tok) // nil means "looks like an option, resolves to none"
			b.WriteByte(byte(tokO))
			continue
		}
		b.WriteByte(byte(tokA))
	}
	return b.String(), matches
}

// looksLikeOption reports whether tok has the shape of an option string:
// starts with a prefix char, is not a negative number when the container has
// no dash-prefixed numeric-looking options registered, and is not a single
// bare prefix char (conventionally stdin/stdout, always a value).
func (c *ActionContainer) looksLikeOption(tok string) bool {
	if tok == "" || !c.isOptionString(tok) {
		return false
	}
	if len(tok) == 1 {
		return false
	}
	if _, ok := c.lookupExact(tok); ok {
		return true
	}
	if strings.Contains(tok, " ") {
		return false
	}
	if negativeNumberRe.MatchString(tok) && !c.hasNegativeNumberLikeOptions() {
		return false
	}
	return true
}

// hasNegativeNumberLikeOptions reports whether any registered option string
// itself looks like a negative number (e.g. "-1"), which disables the
// negative-number heuristic entirely since the two would be ambiguous.
func (c *ActionContainer) hasNegativeNumberLikeOptions() bool {
	for _, s := range c.optionStringIndex.Keys() {
		if negativeNumberRe.MatchString(s) {
			return true
		}
	}
	return false
}

// resolveOptionToken implements the recognition order: exact match, "=" split,
// long-option abbreviation, short-option exact-plus-remainder. Single-prefix
// tokens are not matched by abbreviation. Returns nil if tok cannot be
// resolved to any action at all (an unknown optional, which the matching loop
// adds to the extras, or reports as ambiguous when it abbreviates more than
// one long option).
func (c *ActionContainer) resolveOptionToken(tok string) *optionMatch {
	if a, ok := c.lookupExact(tok); ok {
		return &optionMatch{action: a, optionString: tok}
	}

	if idx := strings.Index(tok, "="); idx > 0 {
		head, value := tok[:idx], tok[idx+1:]
		if a, ok := c.lookupExact(head); ok {
			return &optionMatch{action: a, optionString: head, inlineValue: value, hasInline: true}
		}
		if strings.HasPrefix(head, "--") {
			if a, opt, ok := c.abbreviateLong(head); ok {
				return &optionMatch{action: a, optionString: opt, inlineValue: value, hasInline: true}
			}
		}
	}

	if strings.HasPrefix(tok, "--") {
		if a, opt, ok := c.abbreviateLong(tok); ok {
			return &optionMatch{action: a, optionString: opt}
		}
		return nil
	}

	// Short option: "-x", "-xvalue", or a cluster "-xyz".
	if len(tok) >= 2 && !strings.HasPrefix(tok, "--") {
		prefix := tok[:2]
		if a, ok := c.lookupExact(prefix); ok {
			if len(tok) == 2 {
				return &optionMatch{action: a, optionString: prefix}
			}
			rest := tok[2:]
			if a.Nargs.isZeroArity() {
				// rest must itself be a valid cluster continuation; the
				// matching loop expands it, so just flag the base option.
				return &optionMatch{action: a, optionString: prefix, explicitArg: rest, hasExplicit: true}
			}
			return &optionMatch{action: a, optionString: prefix, inlineValue: rest, hasInline: true}
		}
		// single-prefix tokens are not matched by abbreviation; only "--"
		// abbreviates.
	}

	return nil
}

// abbreviateLong resolves an unambiguous prefix of a registered "--"-long
// option string. Returns ok=false if no long option has this prefix, or if
// more than one does (ambiguity is reported by the caller with the full
// candidate list).
func (c *ActionContainer) abbreviateLong(prefix string) (*Action, string, bool) {
	var candidates []string
	for _, s := range c.longOptionStrings() {
		if strings.HasPrefix(s, prefix) {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 1 {
		a, _ := c.lookupExact(candidates[0])
		return a, candidates[0], true
	}
	return nil, "", false
}

// ambiguousLongCandidates re-derives the candidate list for an ambiguous
// abbreviation, used by the matching engine to build its error message.
func (c *ActionContainer) ambiguousLongCandidates(prefix string) []string {
	var candidates []string
	for _, s := range c.longOptionStrings() {
		if strings.HasPrefix(s, prefix) {
			candidates = append(candidates, s)
		}
	}
	return candidates
}
