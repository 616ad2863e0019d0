package mapping

import "fmt"

const (
	BackendFile     = "file"
	BackendDatabase = "database"
)

// Config holds configuration for mapping persistence.
type Config struct {
	// Backend selects the store (file, database).
	Backend string `mapstructure:"backend" default:"file"`
	// Path is the JSON document path for the file backend. Its ".lock" sibling
	// guards runs for both backends.
	Path string `mapstructure:"path" default:"public/assets_mapping.json"`
	// PublishObject, when set, is the object key the saved document is uploaded to.
	PublishObject string `mapstructure:"publish_object" default:""`
}

// LockPath returns the path of the run lock file.
func (c Config) LockPath() string {
	return c.Path + ".lock"
}

// Validate checks the backend and path.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendDatabase:
	default:
		return fmt.Errorf("unsupported mapping backend %q", c.Backend)
	}
	if c.Path == "" {
		return fmt.Errorf("mapping path must not be empty")
	}
	return nil
}
