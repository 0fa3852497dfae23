package argparse

import (
	"fmt"
	"io"
	"os"
)

// Parser is a complete declarative command-line parser: an ActionContainer
// plus the program identity, help/version wiring, and the error/exit
// boundary a top-level invocation needs. Subparsers are themselves *Parser
// values, reachable through their owning KindSubParsers Action.
type Parser struct {
	*ActionContainer

	Description string
	Epilog      string
	Version     string
	Formatter   HelpFormatterKind

	// AddHelp, when true (the default), registers a "-h/--help" action
	// automatically during NewParser.
	AddHelp bool

	// ExitOnError, when true (the default), makes Exit/error print to
	// Stderr/Stdout and call os.Exit; when false, they return a *ParserExit
	// instead so an embedding program can handle it itself.
	ExitOnError bool

	Stdout io.Writer
	Stderr io.Writer
}

// NewParser creates a Parser named prog, applying every configuration
// function in order, then (unless WithNoHelp was used) registers the
// default "-h/--help" action.
func NewParser(prog string, opts ...ConfigureParserFunc) (*Parser, error) {
	p := &Parser{
		ActionContainer: newActionContainer(),
		AddHelp:         true,
		ExitOnError:     true,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
	}
	p.Prog = prog

	var err error
	for _, opt := range opts {
		opt(p, &err)
		if err != nil {
			return nil, err
		}
	}

	if p.AddHelp {
		if _, err := p.AddArgument([]string{"-h", "--help"},
			WithAction(KindHelp),
			WithHelp("show this help message and exit"),
		); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// AddSubparsers declares the subparsers action on this parser: the next
// positional value selects, by name, which previously-registered *Parser
// continues parsing the remaining tokens. Dest defaults to "command" unless
// overridden with WithDestination.
func (p *Parser) AddSubparsers(opts ...ConfigureArgumentFunc) (*Action, error) {
	all := append([]ConfigureArgumentFunc{WithAction(KindSubParsers), WithDestination("command")}, opts...)
	a, err := p.AddArgument([]string{"command"}, all...)
	if err != nil {
		return nil, err
	}
	a.subParsers = map[string]*Parser{}
	return a, nil
}

// AddParser registers a named sub-command under a subparsers action created
// by AddSubparsers, returning the new sub-Parser for further AddArgument
// calls. help is recorded alongside name on the subparsers action; the
// parent's help output does not list the sub-commands or their help text.
func (a *Action) AddParser(name, help string, opts ...ConfigureParserFunc) (*Parser, error) {
	if a.Kind != KindSubParsers {
		return nil, newDeclarationError(a, "AddParser called on a non-subparsers action")
	}
	prog := name
	if a.container != nil && a.container.Prog != "" {
		prog = a.container.Prog + " " + name
	}
	sub, err := NewParser(prog, opts...)
	if err != nil {
		return nil, err
	}
	if _, exists := a.subParsers[name]; exists {
		return nil, newDeclarationError(a, "sub-command %q already registered", name)
	}
	a.subParsers[name] = sub
	a.subParserOrder = append(a.subParserOrder, name)
	a.subChoicesHelp = append(a.subChoicesHelp, subparserChoice{Name: name, Help: help})
	return sub, nil
}

// applyDefaults writes every action's configured default into ns, skipping
// Suppress and anything the caller already set (so a shared subparser
// Namespace isn't clobbered on delegation). An action with no default of
// its own falls back to the container-level defaults map (SetDefaults) for
// its destination. A string default is coerced through the action's type
// function before being stored, the same as a value arriving from the
// command line.
func (p *Parser) applyDefaults(ns *Namespace) error {
	for _, a := range p.actions {
		if ns.Has(a.Dest) {
			continue
		}
		v, ok := a.DefaultValue()
		if !ok {
			v, ok = p.defaults[a.Dest]
		}
		if !ok || v == Suppress {
			continue
		}
		if s, isString := v.(string); isString {
			coerced, err := p.resolveType(a)(s)
			if err != nil {
				return newArgumentError(a, "%v", err)
			}
			v = coerced
		}
		ns.Set(a.Dest, v)
	}
	return nil
}

// ParseArgs parses args fully, treating any leftover, unconsumed token as an
// error ("unrecognized arguments").
func (p *Parser) ParseArgs(args []string) (*Namespace, error) {
	ns, extras, err := p.ParseKnownArgs(args)
	if err != nil {
		return nil, err
	}
	if len(extras) > 0 {
		return nil, p.error(newArgumentError(nil, "unrecognized arguments: %s", joinTokens(extras)))
	}
	return ns, nil
}

// ParseKnownArgs parses args, returning alongside the Namespace whatever
// tokens were neither a declared positional nor a recognized optional.
func (p *Parser) ParseKnownArgs(args []string) (*Namespace, []string, error) {
	ns := NewNamespace()
	extras, err := p.parseKnownArgsInto(args, ns)
	if err != nil {
		if _, ok := err.(*ParserExit); ok {
			return nil, nil, err
		}
		return nil, nil, p.error(err)
	}
	return ns, extras, nil
}

func joinTokens(tokens []string) string {
	out := ""
	for i, t := range tokens {
		if i > 0 {
			out += " "
		}
		out += t
	}
	return out
}

// error is the shared boundary for anything wrong with the supplied tokens:
// it prints the usage line and the message to Stderr, then exits (or
// returns a *ParserExit, per ExitOnError).
func (p *Parser) error(err error) error {
	fmt.Fprintln(p.Stderr, p.FormatUsage())
	return p.Exit(2, fmt.Sprintf("%s: error: %s", p.Prog, err))
}

func (p *Parser) exitWithHelp() error {
	fmt.Fprint(p.Stdout, p.FormatHelp())
	return p.Exit(0, "")
}

func (p *Parser) exitWithVersion() error {
	fmt.Fprintln(p.Stdout, p.Version)
	return p.Exit(0, "")
}

// Exit implements the process-boundary behavior: if ExitOnError is set it
// calls os.Exit(code) directly (after printing msg, if any); otherwise it
// returns a *ParserExit so an embedding caller can decide what to do.
func (p *Parser) Exit(code int, msg string) error {
	if msg != "" {
		fmt.Fprintln(p.Stderr, msg)
	}
	if p.ExitOnError {
		os.Exit(code)
	}
	return &ParserExit{Code: code, Message: msg}
}
