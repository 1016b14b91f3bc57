// Package fireman interprets FQL, a small path-like query language, against
// a hierarchical document store.
//
// A query string is parsed (by an external lang.Parser) into an ordered
// component sequence. The engine classifies the sequence as a document or
// collection lookup, walks it into a navigable store reference with
// filters, ordering and limits applied, and executes the reference either
// as a one-shot fetch or as a live subscription:
//
//	client, err := fireman.New(parser, fireman.StaticProject("demo"), connector)
//	if err != nil { ... }
//
//	// One-shot.
//	res, err := client.Query(ctx, `users{age > 30, limit 10}`)
//
//	// Live.
//	sub, err := client.Live(ctx, `users/tom`)
//	for update := range sub.Updates() { ... }
//	sub.Cancel()
//
// Results are normalized into Result values holding one Document per
// matched snapshot, with an optional field projection applied. Storage,
// transport and the FQL grammar itself are external collaborators consumed
// through the pkg/store and pkg/lang interfaces.
package fireman
