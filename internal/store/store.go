package store

import "context"

// Store is the document-store collaborator: documents addressed by
// collection name and filter. Implemented by MongoStore; tests use the
// in-memory fake in the repository package.
type Store interface {
	// Ping reports whether the backing server is reachable.
	Ping(ctx context.Context) error

	// InsertOne stores doc in collection and returns the assigned id.
	InsertOne(ctx context.Context, collection string, doc interface{}) (string, error)

	// FindOne decodes the first document matching filter into out.
	// Returns ErrNoDocument when nothing matches.
	FindOne(ctx context.Context, collection string, filter Filter, out interface{}) error

	// Find decodes every document matching the query into out, which
	// must be a pointer to a slice.
	Find(ctx context.Context, collection string, query Query, out interface{}) error

	// Count returns the number of documents matching filter.
	Count(ctx context.Context, collection string, filter Filter) (int64, error)
}
