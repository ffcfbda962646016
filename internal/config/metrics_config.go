package config

import "github.com/spf13/viper"

// MetricsConfig.Textfile is where collected metrics are written on exit; empty disables it.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

func (config MetricsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("metrics.textfile", "")
}

func (config MetricsConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return v.BindEnv("metrics.textfile", "METRICS_TEXTFILE")
}
