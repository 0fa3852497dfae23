package argparse

import "io"

// ConfigureParserFunc configures a Parser during NewParser/AddParser. err
// mirrors ConfigureArgumentFunc's short-circuit convention.
type ConfigureParserFunc func(p *Parser, err *error)

func WithDescription(desc string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if err != nil && *err != nil {
			return
		}
		p.Description = desc
	}
}

func WithEpilog(epilog string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if err != nil && *err != nil {
			return
		}
		p.Epilog = epilog
	}
}

func WithVersion(version string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if err != nil && *err != nil {
			return
		}
		p.Version = version
		if _, e := p.AddArgument([]string{"-v", "--version"},
			WithAction(KindVersion),
			WithHelp("show program's version number and exit"),
		); e != nil && err != nil {
			*err = e
		}
	}
}

// WithNoHelp suppresses the automatic "-h/--help" registration.
func WithNoHelp(p *Parser, err *error) {
	if err != nil && *err != nil {
		return
	}
	p.AddHelp = false
}

func WithExitOnError(exit bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if err != nil && *err != nil {
			return
		}
		p.ExitOnError = exit
	}
}

func WithPrefixChars(chars string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if err != nil && *err != nil {
			return
		}
		p.PrefixChars = chars
	}
}

// WithParents merges each parent's actions, groups, and mutex groups into
// this parser at construction time (spec's "parent-parser composition").
// Parents must be configured before they're passed here; there is no
// runtime link afterward, so changes to a parent post-construction never
// reach a child built from it.
func WithParents(parents ...*Parser) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if err != nil && *err != nil {
			return
		}
		for _, parent := range parents {
			if e := p.addContainerActions(parent.ActionContainer); e != nil {
				if err != nil {
					*err = e
				}
				return
			}
		}
	}
}

// WithFilePrefixChars enables "@file" token expansion (see fileexpand.go) for
// every character in chars; unset (the default) leaves the feature disabled,
// matching argparse's fromfile_prefix_chars=None.
func WithFilePrefixChars(chars string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if err != nil && *err != nil {
			return
		}
		p.FilePrefixChars = chars
	}
}

func WithFormatter(kind HelpFormatterKind) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if err != nil && *err != nil {
			return
		}
		p.Formatter = kind
	}
}

func WithConflictHandler(handler ConflictHandler) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if err != nil && *err != nil {
			return
		}
		p.ConflictHandler = handler
	}
}

// WithOutput redirects where help/usage (out) and errors (errOut) are
// written; tests use this to capture output instead of the process streams.
func WithOutput(out, errOut io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if err != nil && *err != nil {
			return
		}
		p.Stdout = out
		p.Stderr = errOut
	}
}
