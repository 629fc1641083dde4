package config

import "context"

// Loader abstracts the on-disk atlas format away from the application. The
// concrete implementation lives in the hcl package.
type Loader interface {
	// Load reads the atlas at path, which may be a single file or a
	// directory searched recursively, and returns the unified model.
	Load(ctx context.Context, path string) (*Model, error)
}
