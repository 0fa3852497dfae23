package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferDestinationPrefersLongOption(t *testing.T) {
	assert.Equal(t, "foo_bar", inferDestination("", []string{"-f", "--foo-bar"}, "-"))
}

func TestInferDestinationFallsBackToShortOption(t *testing.T) {
	assert.Equal(t, "f", inferDestination("", []string{"-f"}, "-"))
}

func TestInferDestinationPositionalUnchanged(t *testing.T) {
	assert.Equal(t, "my-value", inferDestination("my-value", nil, "-"))
}

func TestInferDestinationRespectsCustomPrefixChars(t *testing.T) {
	assert.Equal(t, "foo", inferDestination("", []string{"+f", "++foo"}, "-+"))
}

func TestResolveMetavarScreamingSnakeCasesMultiWordDest(t *testing.T) {
	p := mustParser(t)
	a, err := p.AddArgument([]string{"--outputFile"})
	require.NoError(t, err)
	assert.Equal(t, "OUTPUT_FILE", a.resolveMetavar())
}
