package argparse

import (
	"sort"
	"strings"

	"github.com/jpolo/argparse/types/orderedmap"
)

// ActionContainer owns every declared Action plus the groups and type/kind
// registries needed to interpret them; Parser embeds one.
type ActionContainer struct {
	Prog            string
	PrefixChars     string
	ConflictHandler ConflictHandler

	// FilePrefixChars, when non-empty, enables "@file" token expansion:
	// any token opening with one of these characters is replaced by the
	// shell-split contents of the named file. Empty (the default) disables
	// the feature entirely, mirroring argparse's fromfile_prefix_chars=None.
	FilePrefixChars string

	actions           []*Action
	positionals       []*Action
	optionals         []*Action
	optionStringIndex *orderedmap.OrderedMap[string, *Action]
	groups            []*Group
	mutexGroups       []*MutexGroup
	typeRegistry      map[string]TypeFunc
	defaults          map[string]any
}

func newActionContainer() *ActionContainer {
	return &ActionContainer{
		PrefixChars:       "-",
		optionStringIndex: orderedmap.New[string, *Action](),
		typeRegistry:      map[string]TypeFunc{},
		defaults:          map[string]any{},
	}
}

// isOptionString reports whether s begins with one of the container's prefix
// characters and therefore declares an optional rather than a positional.
func (c *ActionContainer) isOptionString(s string) bool {
	return s != "" && strings.ContainsRune(c.PrefixChars, rune(s[0]))
}

// Register installs a named extension into a registry. Currently the only
// supported kind is "type", adding/overriding an entry consulted by
// WithType alongside the builtins (auto/string/int/float/bool/time/duration).
func (c *ActionContainer) Register(kind, name string, fn TypeFunc) error {
	if kind != "type" {
		return newDeclarationError(nil, "unknown registry %q", kind)
	}
	c.typeRegistry[name] = fn
	return nil
}

func (c *ActionContainer) resolveType(a *Action) TypeFunc {
	if a.Type != nil {
		return a.Type
	}
	if fn, ok := c.typeRegistry[a.TypeName]; ok {
		return fn
	}
	if fn, ok := builtinTypes[a.TypeName]; ok {
		return fn
	}
	return identityType
}

// SetDefaults merges values into the container-level defaults map (keyed by
// destination) and immediately overwrites the matching declared actions'
// default value; a key with no matching destination is simply retained in
// the map for whichever action declares that destination later.
func (c *ActionContainer) SetDefaults(values map[string]any) {
	byDest := map[string]*Action{}
	for _, a := range c.actions {
		byDest[a.Dest] = a
	}
	for dest, v := range values {
		c.defaults[dest] = v
		if a, ok := byDest[dest]; ok {
			a.SetDefault(v)
		}
	}
}

// addContainerActions implements parent-parser composition (WithParents):
// every group and mutex group in other is re-created in c (a title already
// present in c is a declaration error), then every action is copied in and
// enrolled in its corresponding (possibly new) group, running through the
// same conflict check addArgument applies. There is no runtime link
// afterward — mutating other later has no effect on c.
func (c *ActionContainer) addContainerActions(other *ActionContainer) error {
	groupByOld := map[*Group]*Group{}
	for _, g := range other.groups {
		for _, existing := range c.groups {
			if existing.Title == g.Title {
				return newDeclarationError(nil, "parent group %q conflicts with an already-declared group", g.Title)
			}
		}
		groupByOld[g] = c.AddArgumentGroup(g.Title, g.Description)
	}

	mutexByOld := map[*MutexGroup]*MutexGroup{}
	for _, m := range other.mutexGroups {
		mutexByOld[m] = c.AddMutexGroup(m.Required)
	}

	groupOf := map[*Action]*Group{}
	for _, g := range other.groups {
		for _, a := range g.actions {
			groupOf[a] = g
		}
	}

	for _, a := range other.actions {
		clone := *a
		clone.container = c
		clone.mutexGroup = nil

		if clone.IsPositional() {
			c.positionals = append(c.positionals, &clone)
		} else {
			if conflicts := c.conflictingOptionStrings(&clone); len(conflicts) > 0 {
				if c.ConflictHandler == ConflictResolve {
					c.resolveConflicts(&clone, conflicts)
				} else {
					return newDeclarationError(&clone, "conflicting option string(s): %s", strings.Join(conflicts, ", "))
				}
			}
			for _, s := range clone.OptionStrings {
				c.optionStringIndex.Set(s, &clone)
			}
			c.optionals = append(c.optionals, &clone)
		}
		c.actions = append(c.actions, &clone)

		if g, ok := groupOf[a]; ok {
			ng := groupByOld[g]
			ng.actions = append(ng.actions, &clone)
		}
		if a.mutexGroup != nil {
			nm := mutexByOld[a.mutexGroup]
			clone.mutexGroup = nm
			nm.actions = append(nm.actions, &clone)
		}
	}
	return nil
}

// AddArgumentGroup creates a purely presentational section for help output.
func (c *ActionContainer) AddArgumentGroup(title, description string) *Group {
	g := newGroup(c, title, description)
	c.groups = append(c.groups, g)
	return g
}

// AddMutexGroup creates a mutually exclusive group; at most one member (or
// exactly one, if required) may be matched per parse.
func (c *ActionContainer) AddMutexGroup(required bool) *MutexGroup {
	m := newMutexGroup(c, required)
	c.mutexGroups = append(c.mutexGroups, m)
	return m
}

// AddArgument declares a positional (a single bare name) or an optional (one
// or more flag strings, e.g. "-f", "--foo") and applies the given
// configuration functions in order. The first configuration function to set
// *err aborts the remaining ones, the way the teacher's fluent config-func
// chains short-circuit.
func (c *ActionContainer) AddArgument(nameOrFlags []string, opts ...ConfigureArgumentFunc) (*Action, error) {
	return c.addArgument(nameOrFlags, opts...)
}

func (c *ActionContainer) addArgument(nameOrFlags []string, opts ...ConfigureArgumentFunc) (*Action, error) {
	if len(nameOrFlags) == 0 {
		return nil, newDeclarationError(nil, "at least one name or flag is required")
	}

	a := newAction()
	a.container = c
	a.Kind = KindStore

	isOptional := c.isOptionString(nameOrFlags[0])
	if isOptional {
		for _, f := range nameOrFlags {
			if !c.isOptionString(f) {
				return nil, newDeclarationError(nil, "%q is a positional name mixed with optional flags", f)
			}
		}
		a.OptionStrings = append([]string(nil), nameOrFlags...)
		a.Dest = inferDestination("", a.OptionStrings, c.PrefixChars)
	} else {
		if len(nameOrFlags) != 1 {
			return nil, newDeclarationError(nil, "a positional takes exactly one name, got %d", len(nameOrFlags))
		}
		a.Dest = inferDestination(nameOrFlags[0], nil, c.PrefixChars)
		a.Required = true
	}

	var err error
	for _, opt := range opts {
		opt(a, &err)
		if err != nil {
			return nil, err
		}
	}

	if a.Dest == "" {
		return nil, newDeclarationError(a, "could not infer a destination; pass WithDestination explicitly")
	}

	applyKindDefaults(a)

	if !isOptional && a.requiredExplicit {
		return nil, newDeclarationError(a, "'required' is an invalid argument for positionals")
	}

	if !isOptional && a.Nargs.Kind == ArityExact && a.Nargs.N == 0 {
		// a positional default arity of exactly-0 values makes no sense.
		return nil, newDeclarationError(a, "a positional argument cannot take zero values")
	}

	if !isOptional && len(c.positionals) > 0 {
		prior := c.positionals[len(c.positionals)-1]
		if prior.Nargs.Kind == ArityRemainder || prior.Nargs.Kind == ArityParser {
			return nil, newDeclarationError(a, "cannot add a positional after %s, which absorbs the remaining tokens", prior.DisplayName())
		}
	}

	if isOptional {
		if conflicts := c.conflictingOptionStrings(a); len(conflicts) > 0 {
			if c.ConflictHandler == ConflictResolve {
				c.resolveConflicts(a, conflicts)
			} else {
				names := make([]string, len(conflicts))
				for i, s := range conflicts {
					names[i] = s
				}
				return nil, newDeclarationError(a, "conflicting option string(s): %s", strings.Join(names, ", "))
			}
		}
		for _, s := range a.OptionStrings {
			c.optionStringIndex.Set(s, a)
		}
		c.optionals = append(c.optionals, a)
	} else {
		c.positionals = append(c.positionals, a)
	}
	c.actions = append(c.actions, a)
	return a, nil
}

// applyKindDefaults fills in the arity implied by Kind when the caller never
// called WithNargs: the zero-arity store variants, and subparsers' PARSER
// arity.
func applyKindDefaults(a *Action) {
	if a.Nargs.Kind != ArityUnset {
		return
	}
	switch a.Kind {
	case KindStoreConst, KindStoreTrue, KindStoreFalse, KindAppendConst, KindCount, KindHelp, KindVersion:
		a.Nargs = NargsExact(0)
	case KindSubParsers:
		a.Nargs = NargsParser
	}
	switch a.Kind {
	case KindStoreTrue:
		if a.Const == nil {
			a.Const = true
		}
		if _, ok := a.DefaultValue(); !ok {
			a.SetDefault(false)
		}
	case KindStoreFalse:
		if a.Const == nil {
			a.Const = false
		}
		if _, ok := a.DefaultValue(); !ok {
			a.SetDefault(true)
		}
	case KindCount:
		if _, ok := a.DefaultValue(); !ok {
			a.SetDefault(0)
		}
	}
}

// conflictingOptionStrings returns the subset of a's option strings already
// claimed by a previously registered action.
func (c *ActionContainer) conflictingOptionStrings(a *Action) []string {
	var out []string
	for _, s := range a.OptionStrings {
		if _, ok := c.optionStringIndex.Get(s); ok {
			out = append(out, s)
		}
	}
	return out
}

// resolveConflicts strips the conflicting option strings from whichever
// earlier action(s) declared them, leaving a as the sole owner; an action
// stripped down to zero option strings is removed entirely.
func (c *ActionContainer) resolveConflicts(a *Action, conflicts []string) {
	conflictSet := make(map[string]bool, len(conflicts))
	for _, s := range conflicts {
		conflictSet[s] = true
	}
	for _, other := range c.optionals {
		if other.id == a.id {
			continue
		}
		kept := other.OptionStrings[:0:0]
		for _, s := range other.OptionStrings {
			if conflictSet[s] {
				c.optionStringIndex.Delete(s)
			} else {
				kept = append(kept, s)
			}
		}
		other.OptionStrings = kept
	}
	c.optionals = pruneEmptyOptionals(c.optionals)
}

func pruneEmptyOptionals(in []*Action) []*Action {
	out := in[:0]
	for _, a := range in {
		if len(a.OptionStrings) > 0 {
			out = append(out, a)
		}
	}
	return out
}

// lookupExact returns the action owning option string s, if any.
func (c *ActionContainer) lookupExact(s string) (*Action, bool) {
	return c.optionStringIndex.Get(s)
}

// longOptionStrings returns every registered "--"-prefixed option string,
// sorted, for abbreviation matching.
func (c *ActionContainer) longOptionStrings() []string {
	var out []string
	for _, s := range c.optionStringIndex.Keys() {
		if strings.HasPrefix(s, "--") {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
