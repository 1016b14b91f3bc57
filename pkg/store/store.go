// Package store defines the capability set the query engine consumes from a
// document-store client: connecting per project, navigating into child
// collections and documents, refining a collection with filters, ordering
// and limits, fetching once, and subscribing for live updates.
//
// The engine never implements storage or transport itself; any backend that
// satisfies these interfaces can be plugged in.
package store

import "context"

// Direction of an ordering refinement. The values follow the parser
// contract: 1 ascending, anything else descending.
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// DocumentSnapshot is the point-in-time state of one document. A missing
// document is reported with Exists=false, not an error.
type DocumentSnapshot struct {
	Path   string
	Exists bool
	Fields map[string]any
}

// CancelFunc releases a standing subscription with the store.
type CancelFunc func()

// Connector dials a connection for a project identity. Idempotence per
// identity is supplied by the engine's connection pool, not required here.
type Connector interface {
	Connect(ctx context.Context, project string) (Connection, error)
}

// Connection is an established session with the store for one project.
type Connection interface {
	// Collection navigates from the store root into a top-level collection.
	Collection(name string) CollectionRef

	Close() error
}

// CollectionRef is a navigable reference to a collection, refinable with
// filters, ordering and limits. Refinement methods return derived
// references; the receiver is never mutated.
type CollectionRef interface {
	Path() string

	Doc(name string) DocumentRef

	Where(field, op string, value any) CollectionRef
	OrderBy(field string, dir Direction) CollectionRef
	Limit(n int) CollectionRef

	// GetAll fetches the current matching documents in store order.
	GetAll(ctx context.Context) ([]DocumentSnapshot, error)

	// Subscribe registers a standing listener. onSnapshot receives the full
	// current document list on every change, in store emission order;
	// transport failures go to onError. The subscription runs until the
	// returned CancelFunc is called.
	Subscribe(ctx context.Context, onSnapshot func([]DocumentSnapshot), onError func(error)) (CancelFunc, error)
}

// DocumentRef is a navigable reference to a single document.
type DocumentRef interface {
	Path() string

	Collection(name string) CollectionRef

	Get(ctx context.Context) (DocumentSnapshot, error)

	Subscribe(ctx context.Context, onSnapshot func(DocumentSnapshot), onError func(error)) (CancelFunc, error)
}
