package pantry

// Persistence backends.
const (
	BackendFile   = "file"
	BackendObject = "object"
)

// Config selects where inventory state lives.
type Config struct {
	// Backend is "file" or "object".
	Backend string `mapstructure:"backend" default:"file"`

	// Path is the inventory file location for the file backend.
	Path string `mapstructure:"path" default:"data/pantry.json"`

	// ObjectName is the object key for the object backend. The bucket comes
	// from the storage configuration.
	ObjectName string `mapstructure:"object_name" default:"pantry.json"`
}

// IsValidBackend reports whether the configured backend is known.
func (c Config) IsValidBackend() bool {
	return c.Backend == BackendFile || c.Backend == BackendObject
}
