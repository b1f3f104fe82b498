package document

import "context"

// Store interface for flow document persistence (DIP - Dependency Inversion)
// PRINCIPLES:
// - ISP: Interface segregation with ≤5 methods
// - DIP: Core domain depends on interface, not implementations
type Store interface {
	// Save persists a flow document under an identifier
	Save(ctx context.Context, id string, doc *Document) error

	// Load retrieves a flow document by identifier
	Load(ctx context.Context, id string) (*Document, error)

	// List returns the identifiers of stored documents
	List(ctx context.Context) ([]string, error)

	// Delete removes a stored document
	Delete(ctx context.Context, id string) error
}
