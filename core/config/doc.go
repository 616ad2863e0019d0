// Package config provides configuration management for asset-sync.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Catalog: YouTube Data API key, channel id or handle, throttling
//   - Match: fuzzy threshold, prefix length, candidates per lookup
//   - Sync: local asset folders and extensions, object prefix, discovery toggle
//   - Mapping: persistence backend, document path, publish object
//   - Storage: S3/MinIO credentials and bucket settings
//   - Database: MySQL/SQLite connection details for the database backend
//   - Log: Logging level and format
//   - Server: read-only API port and key
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Match.FuzzyThreshold)
package config
