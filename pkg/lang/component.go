// Package lang defines the parsed form of an FQL query: the ordered
// component sequence emitted by a parser, and the classification of a
// sequence into a document or collection lookup.
//
// The grammar itself is not implemented here. A parser is consumed through
// the Parser interface and its output is taken at face value.
package lang

// Component is one parsed unit of an FQL query. The concrete types are
// Literal, All, CollectionExpression and DocumentExpression; no other
// implementations exist.
//
// Components form an ordered sequence: order defines both path traversal
// order and refinement application order.
type Component interface {
	component()
}

// Literal is a path segment. Segments alternate strictly between collection
// and document names, starting with a collection.
type Literal struct {
	Value string
}

// All forces the next segment to be interpreted as a collection without
// consuming a navigation step.
type All struct{}

// CollectionExpression bundles filter, sort and limit refinements applied
// to the current collection reference, in listed order.
type CollectionExpression struct {
	Refinements []Refinement
}

// DocumentExpression restricts which fields of the matched documents are
// materialized. It does not affect path traversal.
type DocumentExpression struct {
	Fields []string
}

func (Literal) component()              {}
func (All) component()                  {}
func (CollectionExpression) component() {}
func (DocumentExpression) component()   {}

// RefinementKind discriminates the entries of a CollectionExpression.
type RefinementKind int

const (
	RefineWhere RefinementKind = iota
	RefineOrder
	RefineLimit
)

// Refinement is one filter, sort or limit entry of a CollectionExpression.
// Direction follows the parser contract: 1 means ascending, any other value
// descending. It is carried through untouched.
type Refinement struct {
	Kind      RefinementKind
	Field     string
	Op        string
	Value     any
	Limit     int
	Direction int
}

// Where builds a filter refinement.
func Where(field, op string, value any) Refinement {
	return Refinement{Kind: RefineWhere, Field: field, Op: op, Value: value}
}

// Order builds a sort refinement.
func Order(field string, direction int) Refinement {
	return Refinement{Kind: RefineOrder, Field: field, Direction: direction}
}

// Limit builds a result-count cap refinement.
func Limit(n int) Refinement {
	return Refinement{Kind: RefineLimit, Limit: n}
}
