package argparse

import (
	"fmt"
	"strings"

	"github.com/jpolo/argparse/util"
)

// HelpFormatterKind selects a help-rendering variant by name, mirroring
// spec.md's formatter-selection-by-name interface.
type HelpFormatterKind int

const (
	// FormatterDefault wraps descriptions/help and appends nothing extra.
	FormatterDefault HelpFormatterKind = iota
	// FormatterRawDescription preserves the description/epilog verbatim
	// (no wrapping) but still wraps each action's help text.
	FormatterRawDescription
	// FormatterRawText preserves every block of text verbatim, including
	// per-action help.
	FormatterRawText
	// FormatterArgumentDefaults appends " (default: value)" to any help
	// text that doesn't already interpolate %(default)s, for actions whose
	// arity isn't "?" or "*" (spec.md 4.4).
	FormatterArgumentDefaults
)

const helpTextWidth = 78

// helpColumnMax is the widest an action's header column is ever allowed to
// push the help text before help wraps to its own indented line instead.
const helpColumnMax = 24

// FormatUsage renders the one-section "usage: ..." line(s), terminated by a
// trailing newline. A help-disabled, argument-free parser named "foo"
// renders exactly "usage: foo\n".
func (p *Parser) FormatUsage() string {
	prefix := "usage: "
	parts := make([]string, 0, len(p.actions))
	for _, a := range p.optionals {
		if a.Help == Suppress {
			continue
		}
		if a.mutexGroup != nil {
			continue
		}
		parts = append(parts, formatActionUsage(a))
	}
	for _, g := range p.mutexGroups {
		parts = append(parts, formatMutexGroupUsage(g))
	}
	for _, a := range p.positionals {
		if a.Help == Suppress {
			continue
		}
		parts = append(parts, formatActionUsage(a))
	}

	return wrapUsage(prefix, p.Prog, parts) + "\n"
}

func wrapUsage(prefix, prog string, parts []string) string {
	full := prog
	if len(parts) > 0 {
		full += " " + strings.Join(parts, " ")
	}
	if len(prefix)+len(full) <= helpTextWidth {
		return prefix + full
	}

	indent := strings.Repeat(" ", len(prefix)+len(prog)+1)
	if float64(len(prefix)+len(prog)) > 0.75*float64(helpTextWidth) {
		indent = strings.Repeat(" ", len(prefix))
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(prog)
	lineLen := len(prefix) + len(prog)
	for _, part := range parts {
		if lineLen+1+len(part) > helpTextWidth {
			b.WriteString("\n")
			b.WriteString(indent)
			lineLen = len(indent)
			b.WriteString(part)
			lineLen += len(part)
			continue
		}
		b.WriteString(" ")
		b.WriteString(part)
		lineLen += 1 + len(part)
	}
	return b.String()
}

// formatActionUsage renders one action's usage-line fragment: bracketed
// unless required, with its arity-shaped argument list following the first
// option string (optionals) or standing alone (positionals).
func formatActionUsage(a *Action) string {
	metavar := a.resolveMetavar()
	args := formatArityArgs(a, metavar)

	if a.IsPositional() {
		return args
	}

	s := a.OptionStrings[0]
	if args != "" {
		s += " " + args
	}
	if !a.Required {
		s = "[" + s + "]"
	}
	return s
}

func formatMutexGroupUsage(g *MutexGroup) string {
	parts := make([]string, 0, len(g.actions))
	for _, a := range g.actions {
		if a.Help == Suppress {
			continue
		}
		inner := a.OptionStrings[0]
		metavar := a.resolveMetavar()
		if args := formatArityArgs(a, metavar); args != "" {
			inner += " " + args
		}
		parts = append(parts, inner)
	}
	joined := strings.Join(parts, "|")
	if g.Required {
		return "(" + joined + ")"
	}
	return "[" + joined + "]"
}

// formatArityArgs renders the value-list notation for one action's arity:
// unset -> "M"; "?" -> "[M]"; "*" -> "[M [M ...]]"; "+" -> "M [M ...]";
// REMAINDER -> "..."; PARSER -> "M ..."; exact N -> "M" repeated N times.
func formatArityArgs(a *Action, metavar string) string {
	if a.Nargs.isZeroArity() {
		return ""
	}
	switch a.Nargs.Kind {
	case ArityOptional:
		return "[" + metavar + "]"
	case ArityZeroOrMore:
		return "[" + metavar + " [" + metavar + " ...]]"
	case ArityOneOrMore:
		return metavar + " [" + metavar + " ...]"
	case ArityExact:
		return strings.TrimSpace(strings.Repeat(metavar+" ", a.Nargs.N))
	case ArityRemainder:
		return "..."
	case ArityParser:
		return metavar + " ..."
	default:
		return metavar
	}
}

// FormatHelp renders the full help text: usage, description, positional and
// optional argument sections (plus any user-declared Groups), and epilog.
func (p *Parser) FormatHelp() string {
	var b strings.Builder
	b.WriteString(p.FormatUsage())
	b.WriteString("\n")

	rawBlocks := p.Formatter == FormatterRawDescription || p.Formatter == FormatterRawText
	if p.Description != "" {
		b.WriteString(p.formatBlock(p.Description, rawBlocks))
		b.WriteString("\n\n")
	}

	grouped := map[*Action]bool{}
	for _, g := range p.groups {
		for _, a := range g.actions {
			grouped[a] = true
		}
	}
	var positionals, optionals []*Action
	for _, a := range p.positionals {
		if !grouped[a] {
			positionals = append(positionals, a)
		}
	}
	for _, a := range p.optionals {
		if !grouped[a] {
			optionals = append(optionals, a)
		}
	}
	if len(positionals) > 0 {
		b.WriteString(p.formatSection("positional arguments", positionals))
	}
	if len(optionals) > 0 {
		b.WriteString(p.formatSection("optional arguments", optionals))
	}
	for _, g := range p.groups {
		if len(g.actions) > 0 {
			b.WriteString(p.formatSection(g.Title, g.actions))
		}
	}

	if p.Epilog != "" {
		b.WriteString(p.formatBlock(p.Epilog, rawBlocks))
		b.WriteString("\n")
	}

	return collapseBlankLines(b.String())
}

func (p *Parser) formatBlock(text string, raw bool) string {
	if raw {
		return text
	}
	return wrapText(text, helpTextWidth)
}

func (p *Parser) formatSection(title string, actions []*Action) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString(":\n")

	headers := make([]string, len(actions))
	maxHeader := 0
	for i, a := range actions {
		headers[i] = actionHeader(a)
		maxHeader = util.Max(maxHeader, len(headers[i]))
	}
	helpPos := util.Clamp(maxHeader+4, 0, helpColumnMax)

	for i, a := range actions {
		if a.Help == Suppress {
			continue
		}
		header := headers[i]
		help := p.renderActionHelp(a)
		b.WriteString("  ")
		b.WriteString(header)
		if help == "" {
			b.WriteString("\n")
			continue
		}
		if len(header)+2 <= helpPos-2 {
			b.WriteString(strings.Repeat(" ", helpPos-2-len(header)))
		} else {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", helpPos))
		}
		b.WriteString(help)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func actionHeader(a *Action) string {
	if a.IsPositional() {
		return a.resolveMetavar()
	}
	metavar := a.resolveMetavar()
	args := formatArityArgs(a, metavar)
	parts := make([]string, len(a.OptionStrings))
	for i, opt := range a.OptionStrings {
		if args != "" {
			parts[i] = opt + " " + args
		} else {
			parts[i] = opt
		}
	}
	return strings.Join(parts, ", ")
}

func (p *Parser) renderActionHelp(a *Action) string {
	help := interpolateHelp(a, p.Prog)
	if p.Formatter == FormatterArgumentDefaults {
		if help != "" && !strings.Contains(help, "%(default)") &&
			a.Nargs.Kind != ArityOptional && a.Nargs.Kind != ArityZeroOrMore {
			if v, ok := a.DefaultValue(); ok && v != Suppress {
				help += fmt.Sprintf(" (default: %s)", stringify(v))
			}
		}
	}
	if p.Formatter == FormatterRawText {
		return help
	}
	return wrapText(help, helpTextWidth)
}

// interpolateHelp substitutes "%name%" tokens in an action's help text from
// the action's own attributes plus "program"; any attribute whose value is
// SUPPRESS is dropped (left as empty), and choices render comma-joined.
func interpolateHelp(a *Action, program string) string {
	help := a.Help
	if help == "" || help == Suppress {
		return ""
	}
	replacer := strings.NewReplacer(
		"%default%", defaultOrEmpty(a),
		"%dest%", a.Dest,
		"%program%", program,
		"%choices%", choicesOrEmpty(a),
	)
	return replacer.Replace(help)
}

func defaultOrEmpty(a *Action) string {
	v, ok := a.DefaultValue()
	if !ok || v == Suppress {
		return ""
	}
	return stringify(v)
}

func choicesOrEmpty(a *Action) string {
	if len(a.Choices) == 0 {
		return ""
	}
	return joinChoices(a.Choices)
}

func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}

// collapseBlankLines turns three-or-more consecutive newlines into two and
// strips leading/trailing blank lines, per spec.md's "two long breaks
// collapse to one" rule.
func collapseBlankLines(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return strings.Trim(s, "\n") + "\n"
}
