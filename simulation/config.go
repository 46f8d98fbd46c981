package simulation

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Seed     int64
	Trials   int
	Workers  int
	LogLevel string
	Logfile  string
}

func init() {
	viper.SetDefault("Seed", 0)
	viper.SetDefault("Trials", 10000)
	viper.SetDefault("Workers", 4)
	viper.SetDefault("LogLevel", "warn")
	viper.SetDefault("Logfile", "")
}

// LoadConfig reads the current viper settings.
func LoadConfig() (Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}
	if config.Trials < 0 {
		return config, fmt.Errorf("trials must not be negative, got %d", config.Trials)
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	return config, nil
}
