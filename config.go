package argparse

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDefaultsYAML reads a YAML document mapping destination names to
// default values and applies them via Action.SetDefault, overriding
// whatever default (if any) was set at declaration time. It's meant to run
// before ParseArgs so a config file layers under, and command-line flags
// still layer over, its values.
func (c *ActionContainer) LoadDefaultsYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return err
	}
	return c.applyDefaultsMap(values)
}

// applyDefaultsMap is the shared core of LoadDefaultsYAML, split out so
// tests can exercise it without touching the filesystem.
func (c *ActionContainer) applyDefaultsMap(values map[string]any) error {
	byDest := map[string]*Action{}
	for _, a := range c.actions {
		byDest[a.Dest] = a
	}
	for dest, v := range values {
		a, ok := byDest[dest]
		if !ok {
			return newDeclarationError(nil, "config key %q does not match any declared destination", dest)
		}
		a.SetDefault(v)
	}
	return nil
}
