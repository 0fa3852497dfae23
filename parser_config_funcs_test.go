package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithVersionRegistersVersionFlag(t *testing.T) {
	p, err := NewParser("foo", WithNoHelp, WithExitOnError(false), WithVersion("9.9.9"))
	require.NoError(t, err)

	_, ok := p.lookupExact("--version")
	assert.True(t, ok)
	assert.Equal(t, "9.9.9", p.Version)
}

func TestWithPrefixCharsAllowsPlusOptions(t *testing.T) {
	p, err := NewParser("foo", WithNoHelp, WithExitOnError(false), WithPrefixChars("-+"))
	require.NoError(t, err)
	_, err = p.AddArgument([]string{"+f", "++foo"}, WithAction(KindStoreTrue))
	require.NoError(t, err)

	ns, err := p.ParseArgs([]string{"+f"})
	require.NoError(t, err)
	v, _ := ns.Get("foo")
	assert.Equal(t, true, v)
}

func TestWithEpilogAppearsInHelp(t *testing.T) {
	p, err := NewParser("foo", WithNoHelp, WithExitOnError(false), WithEpilog("see also: bar"))
	require.NoError(t, err)
	assert.Contains(t, p.FormatHelp(), "see also: bar")
}

func TestWithParentsMergesActionsAndGroups(t *testing.T) {
	parent, err := NewParser("base", WithNoHelp, WithExitOnError(false))
	require.NoError(t, err)
	group := parent.AddArgumentGroup("shared", "")
	_, err = group.AddArgument([]string{"--verbose"}, WithAction(KindStoreTrue))
	require.NoError(t, err)

	child, err := NewParser("child", WithNoHelp, WithExitOnError(false), WithParents(parent))
	require.NoError(t, err)

	ns, err := child.ParseArgs([]string{"--verbose"})
	require.NoError(t, err)
	v, _ := ns.Get("verbose")
	assert.Equal(t, true, v)
}

func TestWithParentsConflictingGroupTitleErrors(t *testing.T) {
	parent, err := NewParser("base", WithNoHelp, WithExitOnError(false))
	require.NoError(t, err)
	parent.AddArgumentGroup("shared", "")

	_, err = NewParser("child", WithNoHelp, WithExitOnError(false), func(p *Parser, e *error) {
		p.AddArgumentGroup("shared", "")
	}, WithParents(parent))
	assert.Error(t, err)
}
