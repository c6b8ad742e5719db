// Package cmd provides the command-line interface for Verdant.
//
// Configuration sources, highest priority first: command-line flags, the
// VERDANT_CONFIG_FILE environment variable, individual VERDANT_* variables
// (VERDANT_SERVER_PORT and friends), and finally a .verdant.yml file in
// the working directory.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "verdant",
	Short: "A declarative server-driven UI framework for Go",
	Long: `Verdant compiles declarative UI trees into HTML documents with
deduplicated, content-addressed stylesheets and optional client-side
reactivity scripts.

Quick Start:
  verdant serve                   Start the development server
  verdant build                   Export all routes as static files
  verdant routes                  List registered routes`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .verdant.yml, can also use VERDANT_CONFIG_FILE)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("VERDANT_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".verdant")
	}

	viper.SetEnvPrefix("VERDANT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
