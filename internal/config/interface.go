package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the file at path and returns the default model with the
	// file's settings applied. The result has not been validated.
	Load(ctx context.Context, path string) (*Model, error)
}
