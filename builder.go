package fireman

import (
	"fmt"

	"github.com/Subhi2012/fireman/pkg/constants"
	"github.com/Subhi2012/fireman/pkg/lang"
	"github.com/Subhi2012/fireman/pkg/store"
)

// Projection restricts which document fields are materialized into results.
// An inactive projection materializes all fields. Field order is preserved
// for display consumers, but presence alone governs inclusion.
type Projection struct {
	Fields []string
	Active bool
}

func (p Projection) includes(field string) bool {
	if !p.Active {
		return true
	}
	for _, f := range p.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// cursor is the builder's current location in the store. At most one arm is
// set; both nil means the cursor is still at the store root.
type cursor struct {
	col store.CollectionRef
	doc store.DocumentRef
}

func (c cursor) path() string {
	switch {
	case c.col != nil:
		return c.col.Path()
	case c.doc != nil:
		return c.doc.Path()
	default:
		return ""
	}
}

// buildReference walks the component sequence from the store root,
// alternating collection and document navigation, and returns the final
// cursor together with the requested projection.
//
// Refinement bundles are applied in listed order, and only when the cursor
// denotes a collection; elsewhere they are ignored with a debug log rather
// than failing the query. Projections never move the cursor.
func (c *Client) buildReference(conn store.Connection, components []lang.Component) (cursor, Projection, error) {
	var cur cursor
	var proj Projection
	expectingCollection := true

	for _, component := range components {
		switch v := component.(type) {
		case lang.Literal:
			if expectingCollection {
				switch {
				case cur.col == nil && cur.doc == nil:
					cur = cursor{col: conn.Collection(v.Value)}
				case cur.doc != nil:
					cur = cursor{col: cur.doc.Collection(v.Value)}
				default:
					// Only reachable through a misplaced wildcard: the store
					// has no collection-of-collection navigation.
					return cursor{}, proj, fmt.Errorf("%w: cannot open collection %q under collection %q",
						constants.ErrInvalidQuery, v.Value, cur.col.Path())
				}
			} else {
				cur = cursor{doc: cur.col.Doc(v.Value)}
			}
			expectingCollection = !expectingCollection

		case lang.All:
			expectingCollection = true

		case lang.CollectionExpression:
			if cur.col == nil {
				c.log.Debug("ignoring collection refinements outside a collection", "path", cur.path())
				continue
			}
			cur.col = applyRefinements(cur.col, v.Refinements)

		case lang.DocumentExpression:
			proj = Projection{Fields: v.Fields, Active: true}
		}
	}

	return cur, proj, nil
}

func applyRefinements(col store.CollectionRef, refinements []lang.Refinement) store.CollectionRef {
	for _, r := range refinements {
		switch r.Kind {
		case lang.RefineWhere:
			col = col.Where(r.Field, r.Op, r.Value)
		case lang.RefineOrder:
			dir := store.Descending
			if r.Direction == 1 {
				dir = store.Ascending
			}
			col = col.OrderBy(r.Field, dir)
		case lang.RefineLimit:
			col = col.Limit(r.Limit)
		}
	}
	return col
}
