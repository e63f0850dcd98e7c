package domain

import "context"

// Revalidator signals that the cached page at path is stale.
// It is fire-and-forget: Invalidate never blocks on delivery and reports nothing.
type Revalidator interface {
	Invalidate(path string)
}

// PageInvalidator delivers one invalidation signal to an external cache layer.
type PageInvalidator interface {
	InvalidatePath(ctx context.Context, path string) error
}
