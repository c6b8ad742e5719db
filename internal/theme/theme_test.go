package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSSRendersSortedTokens(t *testing.T) {
	th := &Theme{
		Colors:  map[string]string{"text": "#111", "accent": "teal"},
		Spacing: map[string]int{"sm": 8, "lg": 32},
		Radius:  4,
	}

	css := th.CSS()

	assert.Contains(t, css, ":root{--v-color-accent:teal;--v-color-text:#111;")
	assert.Contains(t, css, "--v-space-lg:32px;--v-space-sm:8px;")
	assert.Contains(t, css, "--v-radius:4px;")
}

func TestCSSVariantBlocks(t *testing.T) {
	th := Default()

	css := th.CSS()

	assert.Contains(t, css, `[data-theme="dark"]{`)
	assert.Contains(t, css, "--v-color-background:#141a17;")
}

func TestCSSDeterministic(t *testing.T) {
	th := Default()
	assert.Equal(t, th.CSS(), th.CSS())
}

func TestVarReferences(t *testing.T) {
	assert.Equal(t, "var(--v-color-accent)", Color("accent"))
	assert.Equal(t, "var(--v-font-mono)", Font("mono"))
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yml")
	src := `
name: ocean
colors:
  accent: "#0077aa"
fonts:
  body: "Inter, sans-serif"
spacing:
  md: 12
radius: 8
variants:
  dark:
    colors:
      accent: "#55ccff"
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	th, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ocean", th.Name)
	assert.Equal(t, "#0077aa", th.Colors["accent"])
	assert.Equal(t, 12, th.Spacing["md"])
	assert.Equal(t, 8, th.Radius)
	assert.Equal(t, "#55ccff", th.Variants["dark"].Colors["accent"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
