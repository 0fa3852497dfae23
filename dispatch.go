package argparse

import "fmt"

// takeAction applies one matched action to ns: coercing and validating each
// raw value, then storing/appending/counting/toggling per action.Kind, or
// delegating to a subparser.
func (p *Parser) takeAction(action *Action, ns *Namespace, values []string, optionString string) error {
	action.seen = true

	switch action.Kind {
	case KindStoreTrue, KindStoreFalse, KindStoreConst:
		ns.Set(action.Dest, action.Const)
		action.seenNonDefault = true
		return nil

	case KindAppendConst:
		list, _ := ns.Get(action.Dest)
		slice, _ := list.([]any)
		slice = append(slice, action.Const)
		ns.Set(action.Dest, slice)
		action.seenNonDefault = true
		return nil

	case KindCount:
		cur, ok := ns.Get(action.Dest)
		n, _ := cur.(int)
		if !ok {
			n = 0
		}
		ns.Set(action.Dest, n+1)
		action.seenNonDefault = true
		return nil

	case KindHelp:
		return p.exitWithHelp()

	case KindVersion:
		return p.exitWithVersion()

	case KindSubParsers:
		return p.dispatchSubParser(action, ns, values)

	case KindStore:
		if len(values) == 0 && action.Nargs.Kind == ArityZeroOrMore && action.IsPositional() {
			// A bare "*"-arity positional that matched zero tokens keeps its
			// configured default instead of being overwritten with an empty
			// list (mirrors argparse's zero-value positional handling).
			if v, ok := action.DefaultValue(); ok {
				ns.Set(action.Dest, v)
				return nil
			}
		}
		coerced, err := p.coerceValues(action, values)
		if err != nil {
			return err
		}
		if action.Nargs.Kind == ArityUnset {
			ns.Set(action.Dest, coerced[0])
		} else {
			ns.Set(action.Dest, coerced)
		}
		action.seenNonDefault = true
		return nil

	case KindAppend:
		coerced, err := p.coerceValues(action, values)
		if err != nil {
			return err
		}
		var item any
		if action.Nargs.Kind == ArityUnset {
			item = coerced[0]
		} else {
			item = coerced
		}
		list, _ := ns.Get(action.Dest)
		slice, _ := list.([]any)
		slice = append(slice, item)
		ns.Set(action.Dest, slice)
		action.seenNonDefault = true
		return nil

	default:
		return newArgumentError(action, "unsupported action kind %q", action.Kind)
	}
}

// coerceValues runs an action's PreFilter, type coercion, PostFilter, and
// choices validation over every raw value, in that order, per value.
func (p *Parser) coerceValues(action *Action, values []string) ([]any, error) {
	typeFn := p.resolveType(action)
	out := make([]any, 0, len(values))
	for _, raw := range values {
		if action.PreFilter != nil {
			raw = action.PreFilter(raw)
		}
		v, err := typeFn(raw)
		if err != nil {
			return nil, newArgumentError(action, "%v", err)
		}
		if action.PostFilter != nil {
			v = action.PostFilter(stringify(v))
		}
		if len(action.Choices) > 0 && !choiceAllowed(action.Choices, v) {
			return nil, newArgumentError(action, "invalid choice: %s (choose from %s)", stringify(v), joinChoices(action.Choices))
		}
		out = append(out, v)
	}
	return out, nil
}

func choiceAllowed(choices []any, v any) bool {
	for _, c := range choices {
		if c == v {
			return true
		}
		if stringify(c) == stringify(v) {
			return true
		}
	}
	return false
}

func joinChoices(choices []any) string {
	s := ""
	for i, c := range choices {
		if i > 0 {
			s += ", "
		}
		s += stringify(c)
	}
	return s
}

// dispatchSubParser resolves values[0] to a registered sub-parser, parses
// the remaining values against it sharing ns, and records which subcommand
// was chosen under action.Dest.
func (p *Parser) dispatchSubParser(action *Action, ns *Namespace, values []string) error {
	if len(values) == 0 {
		return newArgumentError(action, "expected a sub-command")
	}
	name := values[0]
	sub, ok := action.subParsers[name]
	if !ok {
		return newArgumentError(action, "invalid choice: %q (choose from %s)", name, joinSubparserNames(action.subParserOrder))
	}
	ns.Set(action.Dest, name)
	_, err := sub.parseKnownArgsInto(values[1:], ns)
	return err
}

func joinSubparserNames(names []string) string {
	s := ""
	for i, n := range names {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%q", n)
	}
	return s
}
