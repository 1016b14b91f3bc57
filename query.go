package fireman

import (
	"context"
	"fmt"

	"github.com/Subhi2012/fireman/pkg/constants"
	"github.com/Subhi2012/fireman/pkg/lang"
)

// Query executes an FQL query once and returns its normalized result.
//
// A document-mode query returns exactly one document, or ErrNotFound when
// the document does not exist. A collection-mode query returns zero or more
// documents in store-returned order; filters, ordering and limits named in
// the query are applied by the store, never re-applied client side.
func (c *Client) Query(ctx context.Context, query string) (*Result, error) {
	queryType, cur, proj, err := c.prepare(ctx, query)
	if err != nil {
		return nil, err
	}

	switch queryType {
	case lang.DocumentQuery:
		if cur.doc == nil {
			return nil, fmt.Errorf("%w: query names no document", constants.ErrInvalidQuery)
		}
		snap, err := cur.doc.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", constants.ErrStore, err)
		}
		if !snap.Exists {
			return nil, fmt.Errorf("%w: %s", constants.ErrNotFound, cur.doc.Path())
		}
		return c.resultFromDocument(snap, proj), nil

	default:
		snaps, err := cur.col.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", constants.ErrStore, err)
		}
		return c.resultFromSnapshots(snaps, proj), nil
	}
}

// prepare runs the shared front half of both execution modes: parse,
// classify, resolve the project connection, and build the reference.
func (c *Client) prepare(ctx context.Context, query string) (lang.QueryType, cursor, Projection, error) {
	components, err := c.parser.Parse(query)
	if err != nil {
		return 0, cursor{}, Projection{}, fmt.Errorf("%w: %w", constants.ErrParse, err)
	}
	queryType := lang.Classify(components)

	project := c.projects.CurrentProject()
	conn, err := c.pool.get(ctx, project)
	if err != nil {
		return 0, cursor{}, Projection{}, err
	}

	cur, proj, err := c.buildReference(conn, components)
	if err != nil {
		return 0, cursor{}, Projection{}, err
	}
	if queryType == lang.CollectionQuery && cur.col == nil {
		return 0, cursor{}, Projection{}, fmt.Errorf("%w: query names no collection", constants.ErrInvalidQuery)
	}

	c.log.Debug("query prepared",
		"query", query,
		"type", queryType.String(),
		"path", cur.path(),
		"project", project,
	)
	return queryType, cur, proj, nil
}
