// Package utils provides common utility functions for the fridge-manager application.
// It includes helper functions for label normalization, identity slugging, and other
// shared logic that doesn't fit into domain-specific packages.
package utils
