//go:build property

package markup

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"golang.org/x/net/html"
)

func TestEscapingProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1137)
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	properties.Property("text context leaves no markup metacharacters", prop.ForAll(
		func(s string) bool {
			return !strings.ContainsAny(EscapeText(s), "<>")
		},
		gen.AnyString(),
	))

	properties.Property("attribute context additionally removes quotes", prop.ForAll(
		func(s string) bool {
			return !strings.ContainsAny(EscapeAttr(s), `<>"`)
		},
		gen.AnyString(),
	))

	properties.Property("escaping round-trips through an HTML parser", prop.ForAll(
		func(s string) bool {
			return html.UnescapeString(EscapeText(s)) == s &&
				html.UnescapeString(EscapeAttr(s)) == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
