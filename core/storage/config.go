package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Enabled toggles object storage. When false, scans are not archived and
	// the pantry falls back to file persistence regardless of its backend.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket holding archived scans and pantry state.
	Bucket string `mapstructure:"bucket" default:"fridge"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// ArchivePrefix is the object key prefix for archived scan frames.
	ArchivePrefix string `mapstructure:"archive_prefix" default:"scans"`
	// RetentionDays is how long archived frames are kept before pruning.
	RetentionDays int `mapstructure:"retention_days" default:"7"`
}
