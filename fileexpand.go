package argparse

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
)

// expandAtFiles replaces every token opening with one of prefixChars (e.g.
// "@path") with the shell-quoted tokens read from path, recursively (a file
// may itself contain further prefixed tokens), guarding against a
// self-referential cycle. Disabled entirely when prefixChars is empty
// (argparse's fromfile_prefix_chars=None default): tokens are returned
// unchanged, so a value that merely happens to start with such a character
// is never misread as a file reference.
func expandAtFiles(tokens []string, prefixChars string) ([]string, error) {
	if prefixChars == "" {
		return tokens, nil
	}
	return expandAtFilesDepth(tokens, prefixChars, map[string]bool{})
}

func expandAtFilesDepth(tokens []string, prefixChars string, seen map[string]bool) ([]string, error) {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) < 2 || !strings.ContainsRune(prefixChars, rune(tok[0])) {
			out = append(out, tok)
			continue
		}
		path := tok[1:]
		if seen[tok] {
			return nil, fmt.Errorf("%s: recursive file reference", tok)
		}
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tok, err)
		}
		fileTokens, err := shlex.Split(string(contents))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tok, err)
		}
		seenChild := make(map[string]bool, len(seen)+1)
		for k := range seen {
			seenChild[k] = true
		}
		seenChild[tok] = true
		expanded, err := expandAtFilesDepth(fileTokens, prefixChars, seenChild)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}
