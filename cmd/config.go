package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage qbtime configuration file values.",
	Long: `Create and display the qbtime configuration file.

The configuration stores the conversion settings:
- report.workday_hours / report.output_suffix
- export.format
- chart.width_inches / chart.height_inches`,
	Example: `
  # Create default config in $HOME/.qbtime.yaml
  qbtime config create

  # Show active config and source file
  qbtime config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
