package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"qbtime/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  qbtime config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use; showing defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("report.workday_hours: %g\n", cfg.Report.WorkdayHours)
		fmt.Printf("report.output_suffix: %s\n", cfg.Report.OutputSuffix)
		fmt.Printf("export.format: %s\n", cfg.Export.Format)
		fmt.Printf("chart.width_inches: %g\n", cfg.Chart.WidthInches)
		fmt.Printf("chart.height_inches: %g\n", cfg.Chart.HeightInches)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
