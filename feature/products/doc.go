// Package products exposes barcode product lookups over HTTP. It is a thin
// read-through to Open Food Facts and can be disabled entirely with
// catalog.lookup_enabled for offline deployments.
package products
