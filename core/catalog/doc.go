// Package catalog binds raw detector labels and barcode payloads to stable
// item identities.
//
// # Bindings
//
// A Binding carries the identity an observation is filed under, a display
// name and a storage category. The Resolver starts from a built in label
// table and grows at runtime: operators bind unknown labels through the
// resolve endpoint, and barcode payloads are bound automatically after a
// successful product lookup.
//
// # Shelf life
//
// Each category has a default shelf life in days. Expiry stamps derived
// from it are estimates for sorting and alerts, not food safety advice.
//
// # Open Food Facts
//
// OpenFoodFacts looks up barcode payloads against the public Open Food
// Facts API. Lookups for the same code are collapsed with singleflight so
// a burst of scans of one product costs a single upstream call.
package catalog
