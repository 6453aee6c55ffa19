// Package loader provides the plugin-like feature loading system.
//
// Every HTTP surface of the application (scan, inventory, products, status)
// is packaged as a feature. A feature implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager holds the registry: features are added with Register and
// brought up with LoadAll, which skips disabled ones and logs each load.
// Disabled features cost nothing at runtime, so optional integrations such
// as the product lookup can ship in the same binary.
package loader
