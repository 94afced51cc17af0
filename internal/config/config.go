package config

import (
	"github.com/spf13/viper"
)

// Config agrupa la configuración de runtime cargada de variables de entorno.
type Config struct {
	// StorageBackend selecciona dónde vive el documento: memory | file | redis
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`

	// File backend
	DataDir string `mapstructure:"DATA_DIR"`

	// Redis backend
	RedisURL string `mapstructure:"REDIS_URL"`

	// LedgerKey es la clave del documento dentro del backend.
	LedgerKey string `mapstructure:"LEDGER_KEY"`
}

// Load lee la configuración de variables de entorno (y un .env opcional).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("STORAGE_BACKEND", "file")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("LEDGER_KEY", "barberApp")

	// .env opcional para desarrollo local — no falla si no existe
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
