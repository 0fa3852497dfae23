package argparse

// Group is a purely cosmetic bucket: it changes where an action's help row
// is printed (under its own titled section) but nothing about matching.
type Group struct {
	Title       string
	Description string
	container   *ActionContainer
	actions     []*Action
}

func newGroup(c *ActionContainer, title, description string) *Group {
	return &Group{Title: title, Description: description, container: c}
}

// AddArgument declares an argument the way ActionContainer.AddArgument does,
// additionally filing it under this group for help-output purposes.
func (g *Group) AddArgument(nameOrFlags []string, opts ...ConfigureArgumentFunc) (*Action, error) {
	action, err := g.container.addArgument(nameOrFlags, opts...)
	if err != nil {
		return nil, err
	}
	g.actions = append(g.actions, action)
	return action, nil
}

// MutexGroup enforces that at most one (or, if Required, exactly one) of its
// member actions is matched during a single parse.
type MutexGroup struct {
	Required  bool
	container *ActionContainer
	actions   []*Action
}

func newMutexGroup(c *ActionContainer, required bool) *MutexGroup {
	return &MutexGroup{Required: required, container: c}
}

// AddArgument declares an argument and enrolls it in this mutex group.
// Positionals and actions already in another mutex group are rejected with
// a DeclarationError, since neither can be meaningfully exclusive.
func (m *MutexGroup) AddArgument(nameOrFlags []string, opts ...ConfigureArgumentFunc) (*Action, error) {
	action, err := m.container.addArgument(nameOrFlags, opts...)
	if err != nil {
		return nil, err
	}
	if action.IsPositional() {
		return nil, newDeclarationError(action, "mutually exclusive arguments must be optional")
	}
	if action.mutexGroup != nil {
		return nil, newDeclarationError(action, "already a member of another mutually exclusive group")
	}
	if m.Required && action.Required {
		return nil, newDeclarationError(action, "mutually exclusive arguments cannot be individually required inside a required group")
	}
	action.mutexGroup = m
	m.actions = append(m.actions, action)
	return action, nil
}
