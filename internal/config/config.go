package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Files FilesConfig
	Auth  AuthConfig
}

type AppConfig struct {
	Name          string
	LogLevel      string
	CurrencyGlyph string
}

// FilesConfig names the durable text stores. Paths are resolved against DataDir.
type FilesConfig struct {
	DataDir   string
	Inventory string
	Recipes   string
	Menu      string
	Sales     string
	Expenses  string
	Accounts  string
	Receipts  string
	Alerts    string
}

type AuthConfig struct {
	DefaultAdminUser     string
	DefaultAdminPassword string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "cafe-pos")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CURRENCY_GLYPH", "₱")
	viper.SetDefault("DATA_DIR", ".")
	viper.SetDefault("INVENTORY_FILE", "inventory.txt")
	viper.SetDefault("RECIPES_FILE", "recipes.txt")
	viper.SetDefault("MENU_FILE", "menu.txt")
	viper.SetDefault("SALES_FILE", "sales.txt")
	viper.SetDefault("EXPENSES_FILE", "expenses.txt")
	viper.SetDefault("ACCOUNTS_FILE", "accounts.txt")
	viper.SetDefault("RECEIPTS_FILE", "all_receipts.txt")
	viper.SetDefault("ALERTS_FILE", "reports.txt")
	viper.SetDefault("DEFAULT_ADMIN_USER", "admin")
	viper.SetDefault("DEFAULT_ADMIN_PASSWORD", "1234")

	return &Config{
		App: AppConfig{
			Name:          viper.GetString("APP_NAME"),
			LogLevel:      viper.GetString("LOG_LEVEL"),
			CurrencyGlyph: viper.GetString("CURRENCY_GLYPH"),
		},
		Files: FilesConfig{
			DataDir:   viper.GetString("DATA_DIR"),
			Inventory: viper.GetString("INVENTORY_FILE"),
			Recipes:   viper.GetString("RECIPES_FILE"),
			Menu:      viper.GetString("MENU_FILE"),
			Sales:     viper.GetString("SALES_FILE"),
			Expenses:  viper.GetString("EXPENSES_FILE"),
			Accounts:  viper.GetString("ACCOUNTS_FILE"),
			Receipts:  viper.GetString("RECEIPTS_FILE"),
			Alerts:    viper.GetString("ALERTS_FILE"),
		},
		Auth: AuthConfig{
			DefaultAdminUser:     viper.GetString("DEFAULT_ADMIN_USER"),
			DefaultAdminPassword: viper.GetString("DEFAULT_ADMIN_PASSWORD"),
		},
	}
}

// Path resolves a configured file name against the data directory.
func (f *FilesConfig) Path(name string) string {
	return filepath.Join(f.DataDir, name)
}
