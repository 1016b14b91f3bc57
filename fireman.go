package fireman

import (
	"github.com/Subhi2012/fireman/pkg/codec"
	"github.com/Subhi2012/fireman/pkg/constants"
	"github.com/Subhi2012/fireman/pkg/lang"
	"github.com/Subhi2012/fireman/pkg/logger"
	"github.com/Subhi2012/fireman/pkg/store"
)

// ProjectProvider yields the project identity queries run against. It is
// consulted on every query, so a provider may switch projects between
// calls; each distinct identity gets its own pooled connection.
type ProjectProvider interface {
	CurrentProject() string
}

// StaticProject is a ProjectProvider fixed to a single identity.
type StaticProject string

func (p StaticProject) CurrentProject() string { return string(p) }

// Client executes FQL queries against a document store. It is safe for
// concurrent use; store connections are established lazily per project and
// cached for the lifetime of the client.
type Client struct {
	parser   lang.Parser
	projects ProjectProvider
	pool     *connPool
	codec    codec.Codec
	log      logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger replaces the default no-op logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithCodec replaces the codec used to decode document data into caller
// structs. The default is CBOR.
func WithCodec(cd codec.Codec) Option {
	return func(c *Client) { c.codec = cd }
}

// New creates a Client. The parser, project provider and store connector
// are mandatory collaborators.
func New(parser lang.Parser, projects ProjectProvider, connector store.Connector, opts ...Option) (*Client, error) {
	if parser == nil {
		return nil, constants.ErrNoParser
	}
	if projects == nil {
		return nil, constants.ErrNoProjectProvider
	}
	if connector == nil {
		return nil, constants.ErrNoConnector
	}

	c := &Client{
		parser:   parser,
		projects: projects,
		codec:    codec.CBOR{},
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.pool = newConnPool(connector, c.log)
	return c, nil
}

// Close releases every pooled store connection. Live subscriptions must be
// cancelled by their owners; Close does not chase them.
func (c *Client) Close() error {
	return c.pool.closeAll()
}
