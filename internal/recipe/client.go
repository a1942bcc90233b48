package recipe

import "context"

// Client is the upstream recipe API surface the analysis service depends on.
//
// ListMenu never fails: on any upstream problem it degrades to FallbackMenu.
// The detail lookups return errors; the caller decides how to degrade.
type Client interface {
	ListMenu(ctx context.Context) []Summary
	GetByID(ctx context.Context, id string) (*Detail, error)
	GetByTitle(ctx context.Context, title string) (*Detail, error)
}
