/*
Copyright © 2026 qbtime authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"qbtime/config"
	"qbtime/convert"
)

const version = "0.2.0"

var (
	cfgFile      string
	flagPlot     bool
	flagSavePlot bool
	flagNoExport bool
	flagFormat   string
)

// rootCmd represents the base command. The tool has one job, so the root
// command runs the conversion itself instead of dispatching to subcommands.
var rootCmd = &cobra.Command{
	Use:     "qbtime [files or directories...]",
	Version: version,
	Short:   "Convert QuickBooks timesheet CSV exports into per-project day totals.",
	Long: `Read QuickBooks timesheet CSV exports, extract the per-project "Total" rows,
and produce a summary of days booked per project in descending order.

Each input file yields a cleaned summary file next to it (foo.csv -> foo_out.csv)
and, on request, a bar chart (foo_out.png). Directories are searched recursively;
with no arguments the current directory is scanned.`,
	Example: `
  # Convert all CSV files in the current directory
  qbtime

  # Convert one export and save its bar chart
  qbtime --save-plot timesheet.csv

  # Display the chart without writing any summary file
  qbtime --plot --no-export exports/

  # Write the summary as an Excel workbook instead of CSV
  qbtime --format excel timesheet.csv
`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		result, err := convert.Run(args, *cfg, convert.Options{
			Plot:     flagPlot,
			SavePlot: flagSavePlot,
			NoExport: flagNoExport,
			Format:   flagFormat,
			Notice: func(format string, a ...any) {
				fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", a...)
			},
		})
		if err != nil {
			return err
		}

		fmt.Printf("Conversion completed. Files: %d, Skipped: %d, Rows read: %d, Totals found: %d, Summaries written: %d, Charts saved: %d\n",
			result.FilesProcessed,
			result.FilesSkipped,
			result.RowsRead,
			result.TotalsFound,
			result.SummariesWritten,
			result.ChartsSaved,
		)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.qbtime.yaml, then ./.qbtime.yaml)")

	rootCmd.Flags().BoolVarP(&flagPlot, "plot", "p", false, "Display the bar chart with the system image viewer")
	rootCmd.Flags().BoolVarP(&flagSavePlot, "save-plot", "s", false, "Save the bar chart next to the input file")
	rootCmd.Flags().BoolVarP(&flagNoExport, "no-export", "n", false, "Do not write the summary file")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Summary output format: csv|excel (default from config)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".qbtime" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".qbtime")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// The defaults are complete, so a missing config file is fine. Only an
	// explicitly requested file is worth a warning.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintln(os.Stderr, "Cannot read config file:", err)
	}
}
