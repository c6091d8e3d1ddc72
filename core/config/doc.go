// Package config provides configuration management for the inventory tool.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (loaded with godotenv). Defaults come from the
// `default` struct tags of each partial config.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Inventory: seed CSV, import-on-start flag, backup path
//   - Database: driver (sqlite or mysql) and connection details
//   - Storage: S3/MinIO credentials and bucket for backup copies
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Inventory.BackupPath)
package config
