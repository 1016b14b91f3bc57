// Package memstore provides an in-memory document store implementing the
// pkg/store capability set. It backs the test suite: it supports filters,
// ordering, limits, change notification fan-out for live subscriptions, and
// error injection to simulate transport failures.
package memstore

import (
	"context"
	"strings"
	"sync"

	"github.com/Subhi2012/fireman/pkg/store"
)

// Store is a hierarchical in-memory document store. Documents live at
// slash-separated paths ("users/tom", "users/tom/posts/p1"); collection
// membership is defined by the parent path. Document order within a
// collection is insertion order.
type Store struct {
	mu       sync.RWMutex
	fields   map[string]map[string]any
	order    map[string][]string
	watchers map[int]*watcher
	nextID   int
}

type watcher struct {
	docPath string
	col     *collectionRef
	onDoc   func(store.DocumentSnapshot)
	onCol   func([]store.DocumentSnapshot)
	onErr   func(error)
}

func New() *Store {
	return &Store{
		fields:   make(map[string]map[string]any),
		order:    make(map[string][]string),
		watchers: make(map[int]*watcher),
	}
}

func (s *Store) Collection(name string) store.CollectionRef {
	return collectionRef{s: s, path: name}
}

func (s *Store) Close() error {
	return nil
}

// Put creates or replaces the document at path and notifies affected
// watchers synchronously, in registration order.
func (s *Store) Put(path string, fields map[string]any) {
	s.mu.Lock()
	if _, exists := s.fields[path]; !exists {
		parent := parentPath(path)
		s.order[parent] = append(s.order[parent], path)
	}
	s.fields[path] = cloneFields(fields)
	pending := s.pendingNotifications(path)
	s.mu.Unlock()

	for _, fire := range pending {
		fire()
	}
}

// Delete removes the document at path, if present, and notifies affected
// watchers.
func (s *Store) Delete(path string) {
	s.mu.Lock()
	if _, exists := s.fields[path]; exists {
		delete(s.fields, path)
		parent := parentPath(path)
		kept := s.order[parent][:0]
		for _, p := range s.order[parent] {
			if p != path {
				kept = append(kept, p)
			}
		}
		s.order[parent] = kept
	}
	pending := s.pendingNotifications(path)
	s.mu.Unlock()

	for _, fire := range pending {
		fire()
	}
}

// EmitError delivers err to the error callback of every active
// subscription, simulating a transport failure.
func (s *Store) EmitError(err error) {
	s.mu.RLock()
	callbacks := make([]func(error), 0, len(s.watchers))
	for _, w := range s.watchers {
		if w.onErr != nil {
			callbacks = append(callbacks, w.onErr)
		}
	}
	s.mu.RUnlock()

	for _, cb := range callbacks {
		cb(err)
	}
}

// pendingNotifications computes the callbacks to fire for a change at path.
// The caller must hold the lock; the returned closures are invoked after it
// is released.
func (s *Store) pendingNotifications(path string) []func() {
	parent := parentPath(path)
	var pending []func()
	for _, w := range s.watchers {
		switch {
		case w.docPath == path && w.onDoc != nil:
			snap := s.snapshotLocked(path)
			onDoc := w.onDoc
			pending = append(pending, func() { onDoc(snap) })
		case w.col != nil && w.col.path == parent && w.onCol != nil:
			snaps, err := w.col.executeLocked()
			onCol, onErr := w.onCol, w.onErr
			if err != nil {
				if onErr != nil {
					pending = append(pending, func() { onErr(err) })
				}
				continue
			}
			pending = append(pending, func() { onCol(snaps) })
		}
	}
	return pending
}

func (s *Store) snapshotLocked(path string) store.DocumentSnapshot {
	fields, exists := s.fields[path]
	return store.DocumentSnapshot{
		Path:   path,
		Exists: exists,
		Fields: cloneFields(fields),
	}
}

func (s *Store) addWatcher(w *watcher) store.CancelFunc {
	id := s.nextID
	s.nextID++
	s.watchers[id] = w
	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

// WatcherCount reports the number of active subscriptions. Test helper.
func (s *Store) WatcherCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.watchers)
}

var _ store.Connection = (*Store)(nil)

func parentPath(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return ""
	}
	return path[:i]
}

func cloneFields(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// Connector hands out one Store per project identity, creating empty stores
// on demand. It counts dials so tests can assert pooling behavior.
type Connector struct {
	mu     sync.Mutex
	stores map[string]*Store
	dials  int
}

func NewConnector() *Connector {
	return &Connector{stores: make(map[string]*Store)}
}

// Add pre-seeds the store for a project.
func (c *Connector) Add(project string, s *Store) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stores[project] = s
}

func (c *Connector) Connect(_ context.Context, project string) (store.Connection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dials++
	s, ok := c.stores[project]
	if !ok {
		s = New()
		c.stores[project] = s
	}
	return s, nil
}

// Dials reports how many times Connect has been called.
func (c *Connector) Dials() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dials
}

var _ store.Connector = (*Connector)(nil)
