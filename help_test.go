package argparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUsageWrapsOptionalsInBrackets(t *testing.T) {
	p := mustParser(t)
	_, err := p.AddArgument([]string{"--foo"})
	require.NoError(t, err)
	_, err = p.AddArgument([]string{"--bar"}, Required)
	require.NoError(t, err)

	usage := p.FormatUsage()
	assert.Contains(t, usage, "[--foo FOO]")
	assert.Contains(t, usage, "--bar BAR")
	assert.NotContains(t, usage, "[--bar BAR]")
}

func TestFormatUsagePositionalIsBare(t *testing.T) {
	p := mustParser(t)
	_, err := p.AddArgument([]string{"value"})
	require.NoError(t, err)

	assert.Equal(t, "usage: foo value\n", p.FormatUsage())
}

func TestFormatHelpListsPositionalAndOptionalSections(t *testing.T) {
	p := mustParser(t)
	_, err := p.AddArgument([]string{"value"}, WithHelp("a value"))
	require.NoError(t, err)
	_, err = p.AddArgument([]string{"-f", "--foo"}, WithHelp("a foo flag"))
	require.NoError(t, err)

	help := p.FormatHelp()
	assert.Contains(t, help, "positional arguments:")
	assert.Contains(t, help, "optional arguments:")
	assert.Contains(t, help, "a value")
	assert.Contains(t, help, "a foo flag")
}

func TestFormatHelpInterpolatesTokens(t *testing.T) {
	p := mustParser(t)
	_, err := p.AddArgument([]string{"--foo"}, WithDefault("d"), WithHelp("use %program%'s foo (default: %default%)"))
	require.NoError(t, err)

	help := p.FormatHelp()
	assert.Contains(t, help, "use foo's foo (default: d)")
}

func TestFormatHelpArgumentDefaultsAppendsDefault(t *testing.T) {
	p := mustParser(t, WithFormatter(FormatterArgumentDefaults))
	_, err := p.AddArgument([]string{"--foo"}, WithDefault("d"), WithHelp("a foo flag"))
	require.NoError(t, err)

	help := p.FormatHelp()
	assert.Contains(t, help, "a foo flag (default: d)")
}

func TestFormatHelpRawTextPreservesWhitespace(t *testing.T) {
	p := mustParser(t, WithFormatter(FormatterRawText))
	p.Description = "line one\nline two"

	help := p.FormatHelp()
	assert.True(t, strings.Contains(help, "line one\nline two"))
}

func TestCollapseBlankLines(t *testing.T) {
	in := "a\n\n\n\nb\n\n"
	assert.Equal(t, "a\n\nb\n", collapseBlankLines(in))
}
