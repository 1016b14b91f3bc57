package fireman

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Subhi2012/fireman/pkg/constants"
	"github.com/Subhi2012/fireman/pkg/logger"
	"github.com/Subhi2012/fireman/pkg/store"
)

// connPool caches one store connection per project identity. A cold key is
// dialed exactly once even under concurrent first use: callers coalesce on
// a singleflight group and the winning call re-checks the cache before
// dialing.
type connPool struct {
	connector store.Connector
	log       logger.Logger

	mu    sync.RWMutex
	conns map[string]store.Connection
	group singleflight.Group
}

func newConnPool(connector store.Connector, log logger.Logger) *connPool {
	return &connPool{
		connector: connector,
		log:       log,
		conns:     make(map[string]store.Connection),
	}
}

func (p *connPool) get(ctx context.Context, project string) (store.Connection, error) {
	p.mu.RLock()
	conn, ok := p.conns[project]
	p.mu.RUnlock()
	if ok {
		return conn, nil
	}

	v, err, _ := p.group.Do(project, func() (any, error) {
		p.mu.RLock()
		conn, ok := p.conns[project]
		p.mu.RUnlock()
		if ok {
			return conn, nil
		}

		conn, dialErr := p.connector.Connect(ctx, project)
		if dialErr != nil {
			return nil, fmt.Errorf("%w: project %q: %w", constants.ErrConnection, project, dialErr)
		}
		p.log.Debug("store connection established", "project", project)

		p.mu.Lock()
		p.conns[project] = conn
		p.mu.Unlock()
		return conn, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(store.Connection), nil
}

func (p *connPool) closeAll() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for project, conn := range p.conns {
		if err := conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing connection for project %q: %w", project, err))
		}
		delete(p.conns, project)
	}
	return errors.Join(errs...)
}
