package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyWorkdayHours = "report.workday_hours"
	KeyOutputSuffix = "report.output_suffix"
	KeyExportFormat = "export.format"
	KeyChartWidth   = "chart.width_inches"
	KeyChartHeight  = "chart.height_inches"
)

type Config struct {
	Report ReportConfig `mapstructure:"report"`
	Export ExportConfig `mapstructure:"export"`
	Chart  ChartConfig  `mapstructure:"chart"`
}

type ReportConfig struct {
	// WorkdayHours is the divisor converting reported hours to days booked.
	WorkdayHours float64 `mapstructure:"workday_hours" validate:"gt=0"`
	// OutputSuffix is appended to the input base name for derived outputs.
	OutputSuffix string `mapstructure:"output_suffix" validate:"required"`
}

type ExportConfig struct {
	Format string `mapstructure:"format" validate:"oneof=csv excel xlsx"`
}

type ChartConfig struct {
	WidthInches  float64 `mapstructure:"width_inches" validate:"gt=0"`
	HeightInches float64 `mapstructure:"height_inches" validate:"gt=0"`
}

// SetDefaults sets default values if not provided. The defaults are complete:
// the tool runs without any config file.
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# qbtime configuration
report:
  workday_hours: 8
  output_suffix: "_out"

export:
  format: csv

chart:
  width_inches: 8
  height_inches: 5
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyWorkdayHours, 8.0)
	v.SetDefault(KeyOutputSuffix, "_out")
	v.SetDefault(KeyExportFormat, "csv")
	v.SetDefault(KeyChartWidth, 8.0)
	v.SetDefault(KeyChartHeight, 5.0)
}
