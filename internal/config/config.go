// Package config loads runtime settings from an optional kantin.yaml file
// and KANTIN_* environment variables, with working defaults for a local
// single-operator setup.
package config

import (
	"errors"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime settings.
type Config struct {
	Addr string `mapstructure:"addr"`

	DataDir          string `mapstructure:"data_dir"`
	ProductsFile     string `mapstructure:"products_file"`
	TransactionsFile string `mapstructure:"transactions_file"`
	BarcodeImageDir  string `mapstructure:"barcode_image_dir"`

	BackupDir           string `mapstructure:"backup_dir"`
	ExportDir           string `mapstructure:"export_dir"`
	BackupRetentionDays int    `mapstructure:"backup_retention_days"`

	// Storage selects the ledger driver: csv, postgres or memory.
	Storage     string `mapstructure:"storage"`
	DatabaseURL string `mapstructure:"database_url"`

	RedisAddr string `mapstructure:"redis_addr"`

	JWTSecret     string `mapstructure:"jwt_secret"`
	AdminUser     string `mapstructure:"admin_user"`
	AdminPassword string `mapstructure:"admin_password"`

	ScannerCommand string `mapstructure:"scanner_command"`

	LowStockThreshold int `mapstructure:"low_stock_threshold"`
}

// Load reads configuration from kantin.yaml (working directory, optional)
// and the environment.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("kantin")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("addr", ":8080")
	v.SetDefault("data_dir", "data")
	v.SetDefault("products_file", "products.csv")
	v.SetDefault("transactions_file", "transactions.csv")
	v.SetDefault("barcode_image_dir", "barcodes")
	v.SetDefault("backup_dir", filepath.Join("data", "backup"))
	v.SetDefault("export_dir", filepath.Join("data", "export"))
	v.SetDefault("backup_retention_days", 7)
	v.SetDefault("storage", "csv")
	v.SetDefault("redis_addr", "")
	v.SetDefault("admin_user", "admin")
	v.SetDefault("admin_password", "admin123")
	v.SetDefault("scanner_command", "")
	v.SetDefault("low_stock_threshold", 10)

	v.SetEnvPrefix("KANTIN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ProductsPath returns the full path of the products file.
func (c Config) ProductsPath() string {
	return filepath.Join(c.DataDir, c.ProductsFile)
}

// TransactionsPath returns the full path of the transactions file.
func (c Config) TransactionsPath() string {
	return filepath.Join(c.DataDir, c.TransactionsFile)
}
