package lang

// Parser turns a raw FQL string into its component sequence. Parsing is an
// external concern; implementations are supplied by the caller.
type Parser interface {
	Parse(query string) ([]Component, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(query string) ([]Component, error)

func (f ParserFunc) Parse(query string) ([]Component, error) {
	return f(query)
}
