package constants

import "errors"

// Errors raised by the query engine itself.
var (
	ErrParse        = errors.New("failed to parse query")
	ErrNotFound     = errors.New("document does not exist")
	ErrInvalidQuery = errors.New("invalid query")
)

// Errors wrapping collaborator failures.
var (
	ErrStore      = errors.New("store operation failed")
	ErrConnection = errors.New("failed to establish store connection")
)

// Errors raised during client construction and subscription handling.
var (
	ErrNoParser           = errors.New("parser is not set")
	ErrNoConnector        = errors.New("store connector is not set")
	ErrNoProjectProvider  = errors.New("project provider is not set")
	ErrSubscriptionClosed = errors.New("subscription already cancelled")
)
