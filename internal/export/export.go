// Package export renders every registered route to disk for static
// hosting. Routes with path parameters are skipped; only concrete
// patterns have a well-defined output path.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"

	"github.com/verdantweb/verdant/internal/document"
	"github.com/verdantweb/verdant/internal/errors"
	"github.com/verdantweb/verdant/internal/page"
	"github.com/verdantweb/verdant/internal/theme"
)

// Options configures one export run.
type Options struct {
	OutDir string
	Minify bool
	Site   document.Site
	Theme  *theme.Theme
	Logger *slog.Logger
}

// Run renders each concrete route of reg into opts.OutDir. The route
// pattern maps to a directory holding index.html ("/" maps to the root
// index.html).
func Run(reg *page.Registry, opts Options) error {
	var m *minify.M
	if opts.Minify {
		m = minify.New()
		m.AddFunc("text/html", mhtml.Minify)
	}

	for _, route := range reg.Routes() {
		if strings.ContainsAny(route.Pattern, "{*") {
			if opts.Logger != nil {
				opts.Logger.Warn("skipping parameterized route", "pattern", route.Pattern)
			}
			continue
		}

		doc := page.Render(route.New(nil), opts.Theme, opts.Site)
		if m != nil {
			minified, err := m.String("text/html", doc)
			if err != nil {
				return errors.NewRenderError("EXPORT_MINIFY",
					fmt.Sprintf("minifying %s", route.Pattern), err)
			}
			doc = minified
		}

		outPath := outputPath(opts.OutDir, route.Pattern)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return errors.NewIOError("EXPORT_MKDIR", "creating output directory", err).
				WithContext("path", filepath.Dir(outPath))
		}
		if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
			return errors.NewIOError("EXPORT_WRITE", "writing page", err).
				WithContext("path", outPath)
		}
		if opts.Logger != nil {
			opts.Logger.Info("exported", "pattern", route.Pattern, "file", outPath)
		}
	}
	return nil
}

var slashes = regexp.MustCompile(`/+`)

// outputPath maps a route pattern to its file location under outDir.
func outputPath(outDir, pattern string) string {
	cleaned := strings.Trim(slashes.ReplaceAllString(pattern, "/"), "/")
	if cleaned == "" {
		return filepath.Join(outDir, "index.html")
	}
	return filepath.Join(outDir, filepath.FromSlash(cleaned), "index.html")
}
