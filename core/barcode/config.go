package barcode

// Config controls barcode decoding.
type Config struct {
	// TryRotate retries a frame rotated 90 degrees when the upright pass
	// finds no codes.
	TryRotate bool `mapstructure:"try_rotate" default:"true"`

	// Formats is the comma separated list of symbologies to look for.
	// Unknown names are ignored.
	Formats string `mapstructure:"formats" default:"ean13,ean8,upca,upce,code128,qr"`
}
