package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentGroupAffectsHelpSectionOnly(t *testing.T) {
	p := mustParser(t)
	g := p.AddArgumentGroup("network", "network-related flags")
	_, err := g.AddArgument([]string{"--host"})
	require.NoError(t, err)

	help := p.FormatHelp()
	assert.Contains(t, help, "network:")
	assert.Contains(t, help, "--host")

	ns, err := p.ParseArgs([]string{"--host", "example.com"})
	require.NoError(t, err)
	v, _ := ns.Get("host")
	assert.Equal(t, "example.com", v)
}

func TestMutexGroupRejectsPositional(t *testing.T) {
	p := mustParser(t)
	g := p.AddMutexGroup(false)
	_, err := g.AddArgument([]string{"value"})
	assert.Error(t, err)
}

func TestMutexGroupAssignsMemberAffinity(t *testing.T) {
	p := mustParser(t)
	g := p.AddMutexGroup(false)
	a, err := g.AddArgument([]string{"-x"}, WithAction(KindStoreTrue))
	require.NoError(t, err)
	assert.Same(t, g, a.mutexGroup)
}

func TestRequiredMutexGroupErrorsWhenNoneSeen(t *testing.T) {
	p := mustParser(t)
	g := p.AddMutexGroup(true)
	_, err := g.AddArgument([]string{"-x"}, WithAction(KindStoreTrue))
	require.NoError(t, err)
	_, err = g.AddArgument([]string{"-y"}, WithAction(KindStoreTrue))
	require.NoError(t, err)

	_, err = p.ParseArgs([]string{})
	assert.Error(t, err)

	_, err = p.ParseArgs([]string{"-x"})
	assert.NoError(t, err)
}
