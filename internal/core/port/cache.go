package port

import (
	"context"
)

type Cache interface {
	// Get decodes the cached value into dst and reports whether the key was present.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	GenerateKey(operation, key string) string
}
