package argparse

import (
	"strings"

	"github.com/google/uuid"
	"github.com/iancoleman/strcase"
)

// Action is one declared argument: a positional (OptionStrings empty) or an
// optional (OptionStrings non-empty), its arity, its coercion/validation,
// and its default.
//
// Invariants (spec.md I1-I4): positional iff OptionStrings is empty; a
// store/append Kind has non-zero arity; a store-const/append-const/help/
// version/count Kind has zero arity; Const is only meaningful when the
// arity is zero or ArityOptional.
type Action struct {
	OptionStrings []string
	Dest          string
	Kind          Kind
	Nargs         Arity
	Const         any
	Type          TypeFunc
	TypeName      string
	Choices       []any
	Required      bool
	Help          string
	Metavar       string
	PreFilter     FilterFunc
	PostFilter    FilterFunc

	defaultValue any
	hasDefault   bool

	container  *ActionContainer
	mutexGroup *MutexGroup
	id         string

	// subparsers-specific state; only populated when Kind == KindSubParsers.
	subParsers     map[string]*Parser
	subParserOrder []string
	subChoicesHelp []subparserChoice

	seen             bool
	seenNonDefault   bool
	requiredExplicit bool
}

type subparserChoice struct {
	Name string
	Help string
}

func newAction() *Action {
	return &Action{id: uuid.NewString()}
}

// IsPositional reports whether the action has no option strings.
func (a *Action) IsPositional() bool {
	return len(a.OptionStrings) == 0
}

// ID is a stable per-action identifier, useful for diagnostics and for
// de-duplicating an action across groups; it is not displayed to end users.
func (a *Action) ID() string {
	return a.id
}

// DisplayName renders the action the way error messages name it: the
// slash-joined option strings for an optional ("-f/--foo"), or the metavar
// (else the destination) for a positional.
func (a *Action) DisplayName() string {
	if a.IsPositional() {
		if a.Metavar != "" {
			return a.Metavar
		}
		return a.Dest
	}
	return strings.Join(a.OptionStrings, "/")
}

// DefaultValue returns the configured default and whether one was ever set
// (as opposed to defaulting to Go's zero value for the field).
func (a *Action) DefaultValue() (any, bool) {
	return a.defaultValue, a.hasDefault
}

// SetDefault overwrites the action's default value.
func (a *Action) SetDefault(value any) {
	a.defaultValue = value
	a.hasDefault = true
}

// resolveMetavar implements spec.md 4.4's metavar resolution: explicit wins,
// else a brace-joined choice list, else the upper-cased (optionals) or plain
// (positionals) destination.
func (a *Action) resolveMetavar() string {
	if a.Metavar != "" {
		return a.Metavar
	}
	if len(a.Choices) > 0 {
		parts := make([]string, len(a.Choices))
		for i, c := range a.Choices {
			parts[i] = toDisplayString(c)
		}
		return "{" + strings.Join(parts, ",") + "}"
	}
	if a.IsPositional() {
		return a.Dest
	}
	return strcase.ToScreamingSnake(a.Dest)
}

func toDisplayString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return stringify(v)
}
