package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantweb/verdant/examples/demo"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, route := range demo.Routes().Routes() {
			fmt.Fprintln(cmd.OutOrStdout(), route.Pattern)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
