// Package theme models site-wide design tokens: color roles, font
// stacks, spacing and radius scalars, and named variant patches. A theme
// renders to a block of CSS custom properties that the document assembler
// prepends ahead of the per-node stylesheet; it takes no part in the
// per-node style pipeline itself.
package theme

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Variant patches a subset of color roles under a data-theme attribute.
type Variant struct {
	Colors map[string]string `yaml:"colors"`
}

// Theme is a set of design tokens.
type Theme struct {
	Name     string             `yaml:"name"`
	Colors   map[string]string  `yaml:"colors"`
	Fonts    map[string]string  `yaml:"fonts"`
	Spacing  map[string]int     `yaml:"spacing"`
	Radius   int                `yaml:"radius"`
	Variants map[string]Variant `yaml:"variants"`
}

// Default returns the built-in theme used when no theme file is
// configured.
func Default() *Theme {
	return &Theme{
		Name: "verdant",
		Colors: map[string]string{
			"background": "#ffffff",
			"surface":    "#f6f8f7",
			"text":       "#1d2520",
			"muted":      "#5c6660",
			"accent":     "#2f7a57",
		},
		Fonts: map[string]string{
			"body":    "system-ui, sans-serif",
			"heading": "system-ui, sans-serif",
			"mono":    "ui-monospace, monospace",
		},
		Spacing: map[string]int{
			"xs": 4,
			"sm": 8,
			"md": 16,
			"lg": 32,
		},
		Radius: 6,
		Variants: map[string]Variant{
			"dark": {Colors: map[string]string{
				"background": "#141a17",
				"surface":    "#1d2520",
				"text":       "#e8ece9",
				"muted":      "#9aa49e",
			}},
		},
	}
}

// Load reads a theme from a YAML file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme file %s: %w", path, err)
	}
	return &t, nil
}

// Color returns a var() reference to a theme color role, for use in
// style modifiers.
func Color(role string) string { return "var(--v-color-" + role + ")" }

// Font returns a var() reference to a theme font role.
func Font(role string) string { return "var(--v-font-" + role + ")" }

// CSS renders the theme as custom-property blocks: one :root block plus
// one [data-theme] block per variant. Token order is sorted so output is
// byte-stable across requests.
func (t *Theme) CSS() string {
	var b strings.Builder

	b.WriteString(":root{")
	writeTokens(&b, t.Colors, "--v-color-")
	writeTokens(&b, t.Fonts, "--v-font-")
	for _, k := range sortedKeys(t.Spacing) {
		fmt.Fprintf(&b, "--v-space-%s:%dpx;", k, t.Spacing[k])
	}
	fmt.Fprintf(&b, "--v-radius:%dpx;", t.Radius)
	b.WriteString("}\n")

	for _, name := range sortedKeys(t.Variants) {
		fmt.Fprintf(&b, "[data-theme=%q]{", name)
		writeTokens(&b, t.Variants[name].Colors, "--v-color-")
		b.WriteString("}\n")
	}
	return b.String()
}

func writeTokens(b *strings.Builder, tokens map[string]string, prefix string) {
	for _, k := range sortedKeys(tokens) {
		b.WriteString(prefix)
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(tokens[k])
		b.WriteByte(';')
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
