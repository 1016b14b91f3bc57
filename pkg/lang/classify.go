package lang

// QueryType says whether a component sequence resolves to a single document
// or to a collection.
type QueryType int

const (
	DocumentQuery QueryType = iota
	CollectionQuery
)

func (t QueryType) String() string {
	switch t {
	case DocumentQuery:
		return "document"
	case CollectionQuery:
		return "collection"
	default:
		return "unknown"
	}
}

// Classify derives the query type from the parity of the literal count.
// Path segments alternate collection/document starting at a collection, so
// an odd number of literals leaves the cursor on a collection and an even
// number (including zero) on a document.
func Classify(components []Component) QueryType {
	literals := 0
	for _, c := range components {
		if _, ok := c.(Literal); ok {
			literals++
		}
	}
	if literals%2 == 1 {
		return CollectionQuery
	}
	return DocumentQuery
}
