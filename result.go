package fireman

import (
	"fmt"

	"github.com/Subhi2012/fireman/pkg/codec"
	"github.com/Subhi2012/fireman/pkg/constants"
	"github.com/Subhi2012/fireman/pkg/store"
)

// Document is one normalized document in a result. It is constructed fresh
// per execution or per snapshot event and never mutated afterwards.
type Document struct {
	// Path is the document's location in the store.
	Path string
	// Data holds the materialized fields, restricted by the projection when
	// one is active.
	Data map[string]any
	// Exists reports whether the document was present in the snapshot.
	Exists bool
}

// newDocument creates a document shell bound to a location but carrying no
// data yet. One-shot and live paths build identical shells this way and
// populate them with setData.
func newDocument(path string) Document {
	return Document{Path: path}
}

// setData populates the document from a snapshot, copying only projected
// fields when the projection is active.
func (d *Document) setData(snap store.DocumentSnapshot, proj Projection) {
	d.Exists = snap.Exists
	d.Data = make(map[string]any, len(snap.Fields))
	for field, value := range snap.Fields {
		if proj.includes(field) {
			d.Data[field] = value
		}
	}
}

// Result is the normalized outcome of one query execution or one live
// snapshot event.
type Result struct {
	// Documents holds the matched documents in store-returned order.
	Documents []Document
	// Projected reports whether a field projection was applied.
	Projected bool

	codec codec.Codec
}

// First returns the single document of a document-mode result.
func (r *Result) First() (Document, error) {
	if len(r.Documents) == 0 {
		return Document{}, constants.ErrNotFound
	}
	return r.Documents[0], nil
}

// UnmarshalFirst decodes the data of the first document into dst using the
// client's codec.
func (r *Result) UnmarshalFirst(dst any) error {
	doc, err := r.First()
	if err != nil {
		return err
	}
	return r.decode(doc.Data, dst)
}

// Unmarshal decodes the data of all documents into dst, which must be a
// pointer to a slice.
func (r *Result) Unmarshal(dst any) error {
	data := make([]map[string]any, 0, len(r.Documents))
	for _, doc := range r.Documents {
		data = append(data, doc.Data)
	}
	return r.decode(data, dst)
}

func (r *Result) decode(data, dst any) error {
	raw, err := r.codec.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode document data: %w", err)
	}
	if err := r.codec.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode document data: %w", err)
	}
	return nil
}

// resultFromDocument wraps a single document snapshot.
func (c *Client) resultFromDocument(snap store.DocumentSnapshot, proj Projection) *Result {
	doc := newDocument(snap.Path)
	doc.setData(snap, proj)
	return &Result{
		Documents: []Document{doc},
		Projected: proj.Active,
		codec:     c.codec,
	}
}

// resultFromSnapshots wraps a collection snapshot, preserving the
// store-returned order.
func (c *Client) resultFromSnapshots(snaps []store.DocumentSnapshot, proj Projection) *Result {
	docs := make([]Document, 0, len(snaps))
	for _, snap := range snaps {
		doc := newDocument(snap.Path)
		doc.setData(snap, proj)
		docs = append(docs, doc)
	}
	return &Result{
		Documents: docs,
		Projected: proj.Active,
		codec:     c.codec,
	}
}
