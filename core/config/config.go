package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"asset-sync/core/catalog"
	"asset-sync/core/database"
	"asset-sync/core/logger"
	"asset-sync/core/mapping"
	"asset-sync/core/reconcile"
	"asset-sync/core/server"
	"asset-sync/core/storage"
	assetsync "asset-sync/feature/sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Catalog holds configuration for the remote video catalog.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Match holds the matching policy constants.
	Match reconcile.Config `mapstructure:"match"`
	// Sync holds configuration for the batch runner and local asset folders.
	Sync assetsync.Config `mapstructure:"sync"`
	// Mapping holds configuration for mapping persistence.
	Mapping mapping.Config `mapstructure:"mapping"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the database mapping backend.
	Database database.Config `mapstructure:"database"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Server holds configuration for the read-only mapping API.
	Server server.Config `mapstructure:"server"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. CATALOG_API_KEY -> catalog.api_key)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings every sync command depends on.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Match.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("match: %w", err))
	}
	if err := c.Mapping.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("mapping: %w", err))
	}
	if err := c.Sync.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("sync: %w", err))
	}
	if strings.TrimSpace(c.Catalog.APIKey) == "" {
		errs = append(errs, errors.New("catalog: api key is required (CATALOG_API_KEY)"))
	}
	if c.Catalog.ChannelID == "" && c.Catalog.ChannelHandle == "" {
		errs = append(errs, errors.New("catalog: channel id or channel handle is required"))
	}
	return errors.Join(errs...)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
