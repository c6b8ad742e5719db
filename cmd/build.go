package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/verdantweb/verdant/examples/demo"
	"github.com/verdantweb/verdant/internal/config"
	"github.com/verdantweb/verdant/internal/document"
	"github.com/verdantweb/verdant/internal/export"
	"github.com/verdantweb/verdant/internal/logging"
	"github.com/verdantweb/verdant/internal/theme"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export all routes as static HTML",
	Long: `Render every concrete route to an output directory for static
hosting. Routes with path parameters are skipped.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("out", "o", "./dist", "Output directory")
	buildCmd.Flags().Bool("minify", false, "Minify the exported HTML")

	viper.BindPFlag("build.out_dir", buildCmd.Flags().Lookup("out"))
	viper.BindPFlag("build.minify", buildCmd.Flags().Lookup("minify"))
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(&logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	th := theme.Default()
	if cfg.Theme.File != "" {
		if th, err = theme.Load(cfg.Theme.File); err != nil {
			return err
		}
	}

	return export.Run(demo.Routes(), export.Options{
		OutDir: cfg.Build.OutDir,
		Minify: cfg.Build.Minify,
		Site: document.Site{
			Name:         cfg.Site.Name,
			Lang:         cfg.Site.Lang,
			ThemeVariant: cfg.Theme.Variant,
		},
		Theme:  th,
		Logger: logger,
	})
}
