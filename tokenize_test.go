package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPatternBasic(t *testing.T) {
	p := mustParser(t)
	_, err := p.AddArgument([]string{"-f", "--foo"})
	require.NoError(t, err)

	pattern, matches := p.classify([]string{"-f", "bar", "baz"})
	assert.Equal(t, "OAA", pattern)
	require.NotNil(t, matches[0])
	assert.Equal(t, "-f", matches[0].optionString)
}

func TestClassifyUnresolvedOptionStillMarkedO(t *testing.T) {
	p := mustParser(t)
	pattern, matches := p.classify([]string{"--nope"})
	assert.Equal(t, "O", pattern)
	_, ok := matches[0]
	assert.True(t, ok)
	assert.Nil(t, matches[0])
}

func TestClassifyDashDashForcesRemainderToA(t *testing.T) {
	p := mustParser(t)
	_, err := p.AddArgument([]string{"-x"}, WithAction(KindStoreTrue))
	require.NoError(t, err)

	pattern, _ := p.classify([]string{"--", "-x"})
	assert.Equal(t, "-A", pattern)
}

func TestClassifyNegativeNumberIsPositionalWithoutNumericOptions(t *testing.T) {
	p := mustParser(t)
	pattern, _ := p.classify([]string{"-1"})
	assert.Equal(t, "A", pattern)
}

func TestClassifyNegativeNumberIsOptionalWhenNumericOptionRegistered(t *testing.T) {
	p := mustParser(t)
	_, err := p.AddArgument([]string{"-1"}, WithAction(KindStoreTrue))
	require.NoError(t, err)

	pattern, _ := p.classify([]string{"-1"})
	assert.Equal(t, "O", pattern)
}

func TestAbbreviateLongUniquePrefix(t *testing.T) {
	p := mustParser(t)
	_, err := p.AddArgument([]string{"--foo"}, WithAction(KindStoreTrue))
	require.NoError(t, err)

	a, opt, ok := p.abbreviateLong("--fo")
	require.True(t, ok)
	assert.Equal(t, "--foo", opt)
	assert.Same(t, a, p.optionals[0])
}

func TestAbbreviateLongAmbiguousPrefix(t *testing.T) {
	p := mustParser(t)
	_, err := p.AddArgument([]string{"--foo"}, WithAction(KindStoreTrue))
	require.NoError(t, err)
	_, err = p.AddArgument([]string{"--foobar"}, WithAction(KindStoreTrue))
	require.NoError(t, err)

	_, _, ok := p.abbreviateLong("--fo")
	assert.False(t, ok)

	candidates := p.ambiguousLongCandidates("--fo")
	assert.ElementsMatch(t, []string{"--foo", "--foobar"}, candidates)
}
