package memstore

import (
	"context"
	"fmt"
	"sort"

	"github.com/Subhi2012/fireman/pkg/store"
)

type filter struct {
	field string
	op    string
	value any
}

type sortKey struct {
	field string
	desc  bool
}

type collectionRef struct {
	s       *Store
	path    string
	filters []filter
	sorts   []sortKey
	limit   int
}

func (c collectionRef) Path() string { return c.path }

func (c collectionRef) Doc(name string) store.DocumentRef {
	return documentRef{s: c.s, path: c.path + "/" + name}
}

func (c collectionRef) Where(field, op string, value any) store.CollectionRef {
	derived := c
	derived.filters = append(append([]filter(nil), c.filters...), filter{field: field, op: op, value: value})
	return derived
}

func (c collectionRef) OrderBy(field string, dir store.Direction) store.CollectionRef {
	derived := c
	derived.sorts = append(append([]sortKey(nil), c.sorts...), sortKey{field: field, desc: dir != store.Ascending})
	return derived
}

func (c collectionRef) Limit(n int) store.CollectionRef {
	derived := c
	derived.limit = n
	return derived
}

func (c collectionRef) GetAll(_ context.Context) ([]store.DocumentSnapshot, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	return c.executeLocked()
}

func (c collectionRef) Subscribe(_ context.Context, onSnapshot func([]store.DocumentSnapshot), onError func(error)) (store.CancelFunc, error) {
	c.s.mu.Lock()
	initial, err := c.executeLocked()
	if err != nil {
		c.s.mu.Unlock()
		return nil, err
	}
	cancel := c.s.addWatcher(&watcher{col: &c, onCol: onSnapshot, onErr: onError})
	c.s.mu.Unlock()

	// Deliver the current state once on registration, like a real store.
	onSnapshot(initial)
	return cancel, nil
}

// executeLocked evaluates the query against the current state. Caller holds
// the store lock.
func (c collectionRef) executeLocked() ([]store.DocumentSnapshot, error) {
	snaps := make([]store.DocumentSnapshot, 0, len(c.s.order[c.path]))
	for _, path := range c.s.order[c.path] {
		snap := c.s.snapshotLocked(path)
		keep := true
		for _, f := range c.filters {
			match, err := f.matches(snap.Fields)
			if err != nil {
				return nil, err
			}
			if !match {
				keep = false
				break
			}
		}
		if keep {
			snaps = append(snaps, snap)
		}
	}

	for i := len(c.sorts) - 1; i >= 0; i-- {
		key := c.sorts[i]
		sort.SliceStable(snaps, func(a, b int) bool {
			cmp := compareValues(snaps[a].Fields[key.field], snaps[b].Fields[key.field])
			if key.desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	if c.limit > 0 && len(snaps) > c.limit {
		snaps = snaps[:c.limit]
	}
	return snaps, nil
}

func (f filter) matches(fields map[string]any) (bool, error) {
	cmp := compareValues(fields[f.field], f.value)
	switch f.op {
	case "==":
		return cmp == 0, nil
	case "!=":
		return cmp != 0, nil
	case ">":
		return cmp > 0, nil
	case ">=":
		return cmp >= 0, nil
	case "<":
		return cmp < 0, nil
	case "<=":
		return cmp <= 0, nil
	default:
		return false, fmt.Errorf("unknown filter operator %q", f.op)
	}
}

// compareValues orders two field values: nil first, then booleans, numbers,
// strings; mixed kinds fall back to their printed form.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if na, aok := toFloat(a); aok {
		if nb, bok := toFloat(b); bok {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			default:
				return 0
			}
		}
	}

	if ba, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			default:
				return 1
			}
		}
	}

	sa, sb := stringify(a), stringify(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

type documentRef struct {
	s    *Store
	path string
}

func (d documentRef) Path() string { return d.path }

func (d documentRef) Collection(name string) store.CollectionRef {
	return collectionRef{s: d.s, path: d.path + "/" + name}
}

func (d documentRef) Get(_ context.Context) (store.DocumentSnapshot, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	return d.s.snapshotLocked(d.path), nil
}

func (d documentRef) Subscribe(_ context.Context, onSnapshot func(store.DocumentSnapshot), onError func(error)) (store.CancelFunc, error) {
	d.s.mu.Lock()
	initial := d.s.snapshotLocked(d.path)
	cancel := d.s.addWatcher(&watcher{docPath: d.path, onDoc: onSnapshot, onErr: onError})
	d.s.mu.Unlock()

	onSnapshot(initial)
	return cancel, nil
}

var (
	_ store.CollectionRef = collectionRef{}
	_ store.DocumentRef   = documentRef{}
)
