// Package config loads CLI configuration from config files and the
// environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem the CLI reads and writes through.
var AppFs = afero.NewOsFs()

// Config holds the CLI configuration.
type Config struct {
	Backend     string
	DatabaseURL string
}

// LoadConfig loads configuration from config files, .env files and the
// environment. Missing files are not an error.
func LoadConfig() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName(".kingler")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "kingler"))

	viper.SetEnvPrefix("KINGLER")
	viper.AutomaticEnv()

	viper.SetDefault("backend", "sqlite")

	_ = viper.ReadInConfig()

	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		Backend:     viper.GetString("backend"),
		DatabaseURL: viper.GetString("database_url"),
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}

	return cfg, nil
}

// SaveConfig writes the configuration to the user config directory.
func SaveConfig(cfg *Config) error {
	viper.Set("backend", cfg.Backend)
	viper.Set("database_url", cfg.DatabaseURL)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".config", "kingler")
	if err := AppFs.MkdirAll(configPath, 0755); err != nil {
		return err
	}

	return viper.WriteConfigAs(filepath.Join(configPath, ".kingler.yaml"))
}
