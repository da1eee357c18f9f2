// Package config provides configuration management for the CMDB service.
//
// It utilizes Viper for loading configuration from environment variables and
// a local .env file, with defaults declared as struct tags on each partial
// configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: canonical store connection details (MySQL or SQLite)
//   - Storage: S3/MinIO credentials for ingest snapshots
//   - Log: logging level and format
//   - Ingest: external source endpoints and fetch timeout
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Ingest.Extsys1URL)
package config
