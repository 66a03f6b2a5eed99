package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	App     AppSettings     `mapstructure:"app"`
	Office  OfficeSettings  `mapstructure:"office"`
	Journal JournalSettings `mapstructure:"journal"`
	Metrics MetricsSettings `mapstructure:"metrics"`
}

type AppSettings struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// OfficeSettings configures where forms leave their side effects.
type OfficeSettings struct {
	// ArtifactDir receives shrubbery files. Empty means the working directory.
	ArtifactDir string `mapstructure:"artifact_dir"`
	// Seed fixes the robotomy generator. Zero seeds from the clock.
	Seed uint64 `mapstructure:"seed"`
}

// JournalSettings configures the JSON-lines event journal.
type JournalSettings struct {
	// Path of the journal file. Empty disables it.
	Path string `mapstructure:"path"`
}

// MetricsSettings configures the Prometheus textfile dump.
type MetricsSettings struct {
	// Path of the textfile written when a run ends. Empty disables it.
	Path string `mapstructure:"path"`
}

// Load reads configuration from defaults, an optional file and BUREAU_*
// environment variables, in increasing order of precedence.
func Load(file string) (*AppConfig, error) {
	v := viper.New()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("BUREAU")

	setDefaults(v)

	if err := bindEnvs(v, []string{
		"app.env",
		"app.log_level",
		"office.artifact_dir",
		"office.seed",
		"journal.path",
		"metrics.path",
	}); err != nil {
		return nil, err
	}

	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "warn")

	v.SetDefault("office.artifact_dir", "")
	v.SetDefault("office.seed", 0)

	v.SetDefault("journal.path", "")
	v.SetDefault("metrics.path", "")
}

func bindEnvs(v *viper.Viper, keys []string) error {
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	return nil
}
