package argparse

// ConfigureArgumentFunc configures an Action during AddArgument. err is
// non-nil only when a prior config function in the same call already
// failed; a well-behaved ConfigureArgumentFunc checks it and no-ops.
type ConfigureArgumentFunc func(action *Action, err *error)

// WithDestination overrides the inferred destination key.
func WithDestination(dest string) ConfigureArgumentFunc {
	return func(a *Action, err *error) {
		if err != nil && *err != nil {
			return
		}
		a.Dest = dest
	}
}

// WithAction selects the action Kind (default KindStore).
func WithAction(kind Kind) ConfigureArgumentFunc {
	return func(a *Action, err *error) {
		if err != nil && *err != nil {
			return
		}
		a.Kind = kind
	}
}

// WithNargs sets the arity explicitly.
func WithNargs(arity Arity) ConfigureArgumentFunc {
	return func(a *Action, err *error) {
		if err != nil && *err != nil {
			return
		}
		a.Nargs = arity
	}
}

// WithConst sets the value used for zero-arity/optional-arity forms.
func WithConst(value any) ConfigureArgumentFunc {
	return func(a *Action, err *error) {
		if err != nil && *err != nil {
			return
		}
		a.Const = value
	}
}

// WithDefault sets the value materialized when the argument is absent.
// Suppress means "do not materialize it in the Namespace at all".
func WithDefault(value any) ConfigureArgumentFunc {
	return func(a *Action, err *error) {
		if err != nil && *err != nil {
			return
		}
		a.SetDefault(value)
	}
}

// WithType selects a coercion by registry name ("auto", "string", "int",
// "float", "bool", "time", "duration", or a name previously registered via
// ActionContainer.Register("type", name, fn)).
func WithType(name string) ConfigureArgumentFunc {
	return func(a *Action, err *error) {
		if err != nil && *err != nil {
			return
		}
		a.TypeName = name
	}
}

// WithTypeFunc installs a caller-supplied coercion directly, bypassing the
// registry (spec.md's "or a callable").
func WithTypeFunc(name string, fn TypeFunc) ConfigureArgumentFunc {
	return func(a *Action, err *error) {
		if err != nil && *err != nil {
			return
		}
		a.TypeName = name
		a.Type = fn
	}
}

// WithChoices restricts accepted (post-coercion) values to a finite set.
func WithChoices(choices ...any) ConfigureArgumentFunc {
	return func(a *Action, err *error) {
		if err != nil && *err != nil {
			return
		}
		a.Choices = choices
	}
}

// Required marks an optional argument as required. Calling it on a
// positional is a declaration error: a positional's presence is already
// governed entirely by its arity.
func Required(a *Action, err *error) {
	if err != nil && *err != nil {
		return
	}
	a.Required = true
	a.requiredExplicit = true
}

// WithHelp sets the help text shown in usage/help output. Passing Suppress
// hides the argument entirely.
func WithHelp(help string) ConfigureArgumentFunc {
	return func(a *Action, err *error) {
		if err != nil && *err != nil {
			return
		}
		a.Help = help
	}
}

// WithMetavar overrides the display name used in usage lines.
func WithMetavar(metavar string) ConfigureArgumentFunc {
	return func(a *Action, err *error) {
		if err != nil && *err != nil {
			return
		}
		a.Metavar = metavar
	}
}

// WithPreFilter installs a value-rewriting hook that runs before coercion.
func WithPreFilter(fn FilterFunc) ConfigureArgumentFunc {
	return func(a *Action, err *error) {
		if err != nil && *err != nil {
			return
		}
		a.PreFilter = fn
	}
}

// WithPostFilter installs a value-rewriting hook that runs after coercion
// but before choice validation; fn receives the coerced value's string form.
func WithPostFilter(fn FilterFunc) ConfigureArgumentFunc {
	return func(a *Action, err *error) {
		if err != nil && *err != nil {
			return
		}
		a.PostFilter = fn
	}
}
