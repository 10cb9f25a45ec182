package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"cryptoanalyzer/internal/dataset"
	"cryptoanalyzer/internal/render"
	"cryptoanalyzer/internal/table"
)

// EnvPrefix prefixes every environment override, e.g. ANALYZER_TABLE_CURRENCY.
const EnvPrefix = "ANALYZER"

// Config stores all configuration for the application.
// The values are read by viper from a config file, environment variables or flags.
type Config struct {
	Data   DataConfig
	Table  TableConfig
	Output OutputConfig
	Log    LogConfig
	Trace  TraceConfig
}

// DataConfig selects the dataset to analyze.
type DataConfig struct {
	Path     string
	Format   string
	Validate bool
}

// TableConfig defines the filters and sort applied to the analyzed rows.
type TableConfig struct {
	Currency       string
	Date           string
	DateComparator string `mapstructure:"date_comparator"`
	SortField      string `mapstructure:"sort_field"`
	SortOrder      string `mapstructure:"sort_order"`
}

// OutputConfig defines how the table is written.
type OutputConfig struct {
	Format string
}

// LogConfig defines the logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// TraceConfig toggles the stdout span exporter.
type TraceConfig struct {
	Enabled bool
	Pretty  bool
}

// SetDefaults registers every key so that AutomaticEnv can override it.
func SetDefaults(v *viper.Viper) {
	opts := table.DefaultOptions()

	v.SetDefault("data.path", "")
	v.SetDefault("data.format", "")
	v.SetDefault("data.validate", false)
	v.SetDefault("table.currency", "")
	v.SetDefault("table.date", opts.Date.Date)
	v.SetDefault("table.date_comparator", string(opts.Date.Comparator))
	v.SetDefault("table.sort_field", opts.Sort.Field)
	v.SetDefault("table.sort_order", string(opts.Sort.Order))
	v.SetDefault("output.format", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("trace.enabled", false)
	v.SetDefault("trace.pretty", false)
}

// New returns a viper instance with defaults and environment overrides set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is not an error; defaults apply.
func LoadConfig(path string) (Config, error) {
	return Load(New(), path)
}

// Load reads the config file named "config" from path into v and unmarshals it.
func Load(v *viper.Viper, path string) (config Config, err error) {
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}
	return config, nil
}

// TableOptions converts the table settings into view options.
func (c Config) TableOptions() (table.Options, error) {
	cmp, err := table.ParseComparator(c.Table.DateComparator)
	if err != nil {
		return table.Options{}, err
	}
	opts := table.Options{
		Currency: c.Table.Currency,
		Date:     table.DateFilterOptions{Date: c.Table.Date, Comparator: cmp},
		Sort:     table.SortOptions{Field: c.Table.SortField},
	}
	if c.Table.SortField != "" {
		if opts.Sort.Order, err = table.ParseOrder(c.Table.SortOrder); err != nil {
			return table.Options{}, err
		}
	}
	return opts, opts.Validate()
}

// Validate checks formats and table settings.
func (c Config) Validate() error {
	if c.Data.Format != "" {
		if _, err := dataset.ParseFormat(c.Data.Format); err != nil {
			return fmt.Errorf("data.format: %w", err)
		}
	} else if c.Data.Path != "" && dataset.FormatFromPath(c.Data.Path) == "" {
		return fmt.Errorf("data.format is required for %q", c.Data.Path)
	}
	if _, err := render.NewRenderer(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, err := c.TableOptions(); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
