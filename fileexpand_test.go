package argparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandAtFilesReadsTokensFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "args.txt")
	require.NoError(t, os.WriteFile(path, []byte("--foo bar --baz \"qux quux\""), 0o644))

	out, err := expandAtFiles([]string{"@" + path}, "@")
	require.NoError(t, err)
	assert.Equal(t, []string{"--foo", "bar", "--baz", "qux quux"}, out)
}

func TestExpandAtFilesDisabledByDefaultLeavesTokenUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "args.txt")
	require.NoError(t, os.WriteFile(path, []byte("--foo bar"), 0o644))

	out, err := expandAtFiles([]string{"@" + path}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"@" + path}, out)
}

func TestExpandAtFilesDetectsRecursiveCycle(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("@"+b), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("@"+a), 0o644))

	_, err := expandAtFiles([]string{"@" + a}, "@")
	assert.Error(t, err)
}

func TestExpandAtFilesEndToEndWithParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "args.txt")
	require.NoError(t, os.WriteFile(path, []byte("--foo bar"), 0o644))

	p := mustParser(t, WithFilePrefixChars("@"))
	_, err := p.AddArgument([]string{"--foo"})
	require.NoError(t, err)

	ns, err := p.ParseArgs([]string{"@" + path})
	require.NoError(t, err)
	v, _ := ns.Get("foo")
	assert.Equal(t, "bar", v)
}

func TestExpandAtFilesDisabledTreatsAtTokenAsPositional(t *testing.T) {
	p := mustParser(t)
	_, err := p.AddArgument([]string{"handle"})
	require.NoError(t, err)

	ns, err := p.ParseArgs([]string{"@someone"})
	require.NoError(t, err)
	v, _ := ns.Get("handle")
	assert.Equal(t, "@someone", v)
}
