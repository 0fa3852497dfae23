package argparse

import (
	"regexp"
	"strings"

	"github.com/jpolo/argparse/types/queue"
)

// matchState is the mutable state threaded through one Parser.parseKnownArgsInto
// call: the token stream, its O/A/- pattern and resolved option matches, the
// positionals still awaiting consumption, the namespace being filled, and the
// leftover tokens (extras) neither a positional nor a recognized optional
// claimed.
type matchState struct {
	parser      *Parser
	tokens      []string
	pattern     string
	optMatches  map[int]*optionMatch
	positionals []*Action
	ns          *Namespace
	extras      []string
	seenMutex   map[string]*Action // mutex group id (see MutexGroup.id) -> action seen for that group
}

// parseKnownArgsInto runs the full matching loop against an already-created
// Namespace (so subparser delegation shares one Namespace by reference), and
// returns whatever extras this parser's tokens didn't consume.
func (p *Parser) parseKnownArgsInto(tokens []string, ns *Namespace) ([]string, error) {
	tokens, err := expandAtFiles(tokens, p.FilePrefixChars)
	if err != nil {
		return nil, err
	}

	for _, a := range p.actions {
		a.seen = false
		a.seenNonDefault = false
	}

	if err := p.applyDefaults(ns); err != nil {
		return nil, err
	}

	pattern, optMatches := p.classify(tokens)
	st := &matchState{
		parser:      p,
		tokens:      tokens,
		pattern:     pattern,
		optMatches:  optMatches,
		positionals: append([]*Action(nil), p.positionals...),
		ns:          ns,
		seenMutex:   map[string]*Action{},
	}

	if err := st.run(); err != nil {
		return nil, err
	}

	if err := p.checkRequired(st); err != nil {
		return nil, err
	}

	return st.extras, nil
}

func (st *matchState) run() error {
	startIndex := 0
	optionIndices := sortedKeys(st.optMatches)

	for _, nextOptIndex := range optionIndices {
		if nextOptIndex < startIndex {
			continue
		}
		if startIndex != nextOptIndex {
			stop, err := st.consumePositionals(startIndex)
			if err != nil {
				return err
			}
			if stop > startIndex {
				startIndex = stop
				if startIndex > nextOptIndex {
					continue
				}
			}
			if startIndex != nextOptIndex {
				st.extras = append(st.extras, st.tokens[startIndex:nextOptIndex]...)
				startIndex = nextOptIndex
			}
		}
		stop, err := st.consumeOptional(startIndex)
		if err != nil {
			return err
		}
		startIndex = stop
	}

	stop, err := st.consumePositionals(startIndex)
	if err != nil {
		return err
	}
	if stop > startIndex {
		startIndex = stop
	}
	st.extras = append(st.extras, st.tokens[startIndex:]...)
	return nil
}

func sortedKeys(m map[int]*optionMatch) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// consumeOptional resolves and invokes the option recognized at tokens[start],
// returning the index just past whatever value tokens it consumed.
func (st *matchState) consumeOptional(start int) (int, error) {
	m := st.optMatches[start]
	tok := st.tokens[start]

	if m == nil {
		head := tok
		if idx := strings.Index(tok, "="); idx > 0 {
			head = tok[:idx]
		}
		if strings.HasPrefix(head, "--") {
			if candidates := st.parser.ambiguousLongCandidates(head); len(candidates) > 1 {
				return 0, newArgumentError(nil, "ambiguous option: %s could match %s", head, strings.Join(candidates, ", "))
			}
		}
		st.extras = append(st.extras, tok)
		return start + 1, nil
	}

	action := m.action

	if m.hasExplicit {
		// a zero-arity short option glued to trailing characters: keep
		// peeling one char at a time as long as each names another
		// zero-arity short option (e.g. "-abc" == "-a -b -c").
		if err := st.parser.takeAction(action, st.ns, nil, m.optionString); err != nil {
			return 0, err
		}
		if err := st.checkMutex(action); err != nil {
			return 0, err
		}
		rest := m.explicitArg
		for rest != "" {
			opt := "-" + rest[:1]
			next, ok := st.parser.lookupExact(opt)
			if !ok {
				return 0, newArgumentError(action, "ignored explicit argument %q", rest)
			}
			rest = rest[1:]
			if next.Nargs.isZeroArity() {
				if err := st.parser.takeAction(next, st.ns, nil, opt); err != nil {
					return 0, err
				}
				if err := st.checkMutex(next); err != nil {
					return 0, err
				}
				continue
			}
			if rest == "" {
				return 0, newArgumentError(next, "expected one argument")
			}
			if err := st.parser.takeAction(next, st.ns, []string{rest}, opt); err != nil {
				return 0, err
			}
			if err := st.checkMutex(next); err != nil {
				return 0, err
			}
			rest = ""
		}
		return start + 1, nil
	}

	if m.hasInline {
		if action.Nargs.isZeroArity() {
			return 0, newArgumentError(action, "ignored explicit argument %q", m.inlineValue)
		}
		count := action.Nargs.minValues()
		if count == 0 {
			count = 1
		}
		if count != 1 {
			return 0, newArgumentError(action, "expected %s arguments", action.Nargs.String())
		}
		if err := st.parser.takeAction(action, st.ns, []string{m.inlineValue}, m.optionString); err != nil {
			return 0, err
		}
		if err := st.checkMutex(action); err != nil {
			return 0, err
		}
		return start + 1, nil
	}

	selected := st.pattern[start+1:]
	n, ok := matchSingleArity(action.Nargs, selected)
	if !ok {
		return 0, newArgumentError(action, "expected %s argument(s)", action.Nargs.String())
	}
	values := collectValues(st.tokens[start+1:start+1+n], action.Nargs)
	if err := st.parser.takeAction(action, st.ns, values, m.optionString); err != nil {
		return 0, err
	}
	if err := st.checkMutex(action); err != nil {
		return 0, err
	}
	return start + 1 + n, nil
}

// checkMutex records action as the representative of its mutex group (if
// any) the first time it fires, and errors if a different member of the
// same group already fired.
func (st *matchState) checkMutex(action *Action) error {
	if action.mutexGroup == nil {
		return nil
	}
	key := action.mutexGroup.id()
	if prior, ok := st.seenMutex[key]; ok && prior.id != action.id {
		return newArgumentError(action, "not allowed with argument %s", prior.DisplayName())
	}
	st.seenMutex[key] = action
	return nil
}

// consumePositionals greedily matches as many of the remaining positionals
// as possible against tokens[start:], trying the full remaining positional
// list first and trimming from the tail (via a LIFO stack of candidate
// lengths) until a combined pattern matches. It sees the pattern all the way
// to the end of input, not just up to the next option: ordinary arities
// never include 'O' in their character class so they stop there on their
// own, but REMAINDER/PARSER deliberately consume through option-looking
// tokens too.
func (st *matchState) consumePositionals(start int) (int, error) {
	if len(st.positionals) == 0 {
		return start, nil
	}
	selected := st.pattern[start:]

	lengths := queue.New[int]()
	for i := 1; i <= len(st.positionals); i++ {
		lengths.Push(i)
	}

	// Since the pattern has exactly one character per raw token, a matched
	// group's length is directly the number of tokens that action consumes
	// (dashes included; collectValues strips "--" back out of the values).
	var widths []int
	for lengths.Len() > 0 {
		n, _ := lengths.Pop()
		actions := st.positionals[:n]
		pat := "^"
		for _, a := range actions {
			pat += a.Nargs.fragment(true)
		}
		re := regexp.MustCompile(pat)
		m := re.FindStringSubmatch(selected)
		if m != nil {
			widths = make([]int, len(actions))
			for i, g := range m[1:] {
				widths[i] = len(g)
			}
			break
		}
	}
	if widths == nil {
		return start, nil
	}

	idx := start
	for i, width := range widths {
		action := st.positionals[i]
		values := collectValues(st.tokens[idx:idx+width], action.Nargs)
		if err := st.parser.takeAction(action, st.ns, values, ""); err != nil {
			return 0, err
		}
		idx += width
	}
	st.positionals = st.positionals[len(widths):]
	return idx, nil
}

// filterDashes drops every literal "--" from a raw token slice. It is not
// applied to REMAINDER/PARSER arities (see collectValues), which keep
// everything verbatim.
func filterDashes(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "--" {
			continue
		}
		out = append(out, t)
	}
	return out
}

// collectValues applies filterDashes unless the arity is REMAINDER or
// PARSER, which must keep "--" tokens verbatim for the delegated parser or
// caller to see.
func collectValues(tokens []string, arity Arity) []string {
	if arity.Kind == ArityRemainder || arity.Kind == ArityParser {
		return tokens
	}
	return filterDashes(tokens)
}

// matchSingleArity matches one option's nargs fragment against the pattern
// immediately following it, returning the length of the matched group, which
// is the number of tokens consumed since the pattern has one character per
// token.
func matchSingleArity(arity Arity, selected string) (int, bool) {
	re := regexp.MustCompile("^" + arity.fragment(false))
	m := re.FindStringSubmatch(selected)
	if m == nil {
		return 0, false
	}
	return len(m[1]), true
}

// id gives each MutexGroup a stable identity for the seenMutex map without
// exporting a dedicated field.
func (m *MutexGroup) id() string {
	return strings.Join(optionStringsOf(m.actions), "\x00")
}

func optionStringsOf(actions []*Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.OptionStrings...)
	}
	return out
}

// checkRequired verifies every required optional fired and every mutex
// group marked Required had a member fire.
func (p *Parser) checkRequired(st *matchState) error {
	var missing []string
	for _, a := range p.optionals {
		if a.Required && !a.seen {
			missing = append(missing, a.DisplayName())
		}
	}
	for _, a := range p.positionals {
		if !a.seen && a.Nargs.minValues() > 0 {
			missing = append(missing, a.DisplayName())
		}
	}
	if len(missing) > 0 {
		return newArgumentError(nil, "the following arguments are required: %s", strings.Join(missing, ", "))
	}
	for _, g := range p.mutexGroups {
		if !g.Required {
			continue
		}
		any := false
		for _, a := range g.actions {
			if a.seen {
				any = true
				break
			}
		}
		if !any {
			names := make([]string, len(g.actions))
			for i, a := range g.actions {
				names[i] = a.DisplayName()
			}
			return newArgumentError(nil, "one of the arguments %s is required", strings.Join(names, " "))
		}
	}
	return nil
}
