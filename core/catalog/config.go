package catalog

// Config controls product lookups.
type Config struct {
	// LookupEnabled turns remote barcode lookups on or off. With lookups
	// off, unknown barcodes go straight to the unresolved queue.
	LookupEnabled bool `mapstructure:"lookup_enabled" default:"true"`

	// LookupEndpoint is the Open Food Facts base URL.
	LookupEndpoint string `mapstructure:"lookup_endpoint" default:"https://world.openfoodfacts.org"`

	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}
