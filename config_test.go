package argparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsYAMLLayersUnderCLIFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: example.com\nport: 9090\n"), 0o644))

	p := mustParser(t)
	_, err := p.AddArgument([]string{"--host"})
	require.NoError(t, err)
	_, err = p.AddArgument([]string{"--port"}, WithType(TypeInt))
	require.NoError(t, err)

	require.NoError(t, p.LoadDefaultsYAML(path))

	ns, err := p.ParseArgs([]string{"--port", "1234"})
	require.NoError(t, err)
	host, _ := ns.Get("host")
	port, _ := ns.Get("port")
	assert.Equal(t, "example.com", host)
	assert.Equal(t, 1234, port)
}

func TestLoadDefaultsYAMLUnknownKeyErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nonexistent: 1\n"), 0o644))

	p := mustParser(t)
	_, err := p.AddArgument([]string{"--host"})
	require.NoError(t, err)

	err = p.LoadDefaultsYAML(path)
	assert.Error(t, err)
}
