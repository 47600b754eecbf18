package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "dropdown",
	Short: "Terminal select widget",
	Long:  "dropdown renders a searchable single or multiple select from a YAML definition and prints what was picked.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the widget
		return runCmd.RunE(cmd, args)
	},
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dropdown %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&definitionPath, "file", "f", "", "definition file (default ~/.dropdown/dropdown.yaml)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
