package fireman

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"

	"github.com/Subhi2012/fireman/pkg/constants"
	"github.com/Subhi2012/fireman/pkg/lang"
	"github.com/Subhi2012/fireman/pkg/logger"
	"github.com/Subhi2012/fireman/pkg/store"
)

// updateBuffer is the capacity of a subscription's internal queue. Store
// callbacks block once it is full, so emission order is preserved even for
// slow consumers.
const updateBuffer = 100

// Update is one delivery on a live subscription: either a fresh Result or
// an error, never both. Callers must check Err before trusting Result.
type Update struct {
	Result *Result
	Err    error
}

// Subscription is a standing live query. Each call to Live returns its own
// Subscription; concurrent subscriptions are independent and individually
// cancellable.
type Subscription struct {
	id      string
	release store.CancelFunc
	log     logger.Logger

	incoming chan Update
	updates  chan Update
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

func newSubscription(id string, log logger.Logger) *Subscription {
	s := &Subscription{
		id:       id,
		log:      log,
		incoming: make(chan Update, updateBuffer),
		updates:  make(chan Update, updateBuffer),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.forward()
	return s
}

// ID is the unique identifier of this subscription.
func (s *Subscription) ID() string { return s.id }

// Updates returns the channel live results and errors are delivered on. The
// channel is closed by Cancel.
func (s *Subscription) Updates() <-chan Update { return s.updates }

// Cancel releases the underlying store listener and closes the update
// channel. It is idempotent and safe to call concurrently with deliveries.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
		close(s.stop)
		s.log.Debug("live query cancelled", "id", s.id)
	})
	<-s.done
}

// push hands an update from a store callback to the forwarding goroutine.
// Updates arriving after cancellation are dropped.
func (s *Subscription) push(u Update) {
	select {
	case s.incoming <- u:
	case <-s.stop:
	}
}

// forward drains the incoming queue onto the caller-facing channel until
// the subscription is cancelled. A single goroutine does all delivery, so
// updates keep the store's emission order.
func (s *Subscription) forward() {
	defer close(s.done)
	for {
		select {
		case <-s.stop:
			close(s.updates)
			return
		case u := <-s.incoming:
			select {
			case s.updates <- u:
			case <-s.stop:
				close(s.updates)
				return
			}
		}
	}
}

// Live executes an FQL query as a live subscription. Every change
// notification from the store is rebuilt into a full Result (not a delta)
// and delivered on the returned subscription's Updates channel.
//
// Document mode delivers an ErrNotFound update when the document does not
// or no longer exists. Store transport errors are delivered in-band as
// Update.Err; the subscription is not retried by this layer and keeps
// running until Cancel is called.
func (c *Client) Live(ctx context.Context, query string) (*Subscription, error) {
	queryType, cur, proj, err := c.prepare(ctx, query)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to mint subscription id: %w", err)
	}

	sub := newSubscription(id.String(), c.log)
	onError := func(err error) {
		sub.push(Update{Err: fmt.Errorf("%w: %w", constants.ErrStore, err)})
	}

	var release store.CancelFunc
	switch queryType {
	case lang.DocumentQuery:
		if cur.doc == nil {
			sub.Cancel()
			return nil, fmt.Errorf("%w: query names no document", constants.ErrInvalidQuery)
		}
		release, err = cur.doc.Subscribe(ctx, func(snap store.DocumentSnapshot) {
			if !snap.Exists {
				sub.push(Update{Err: fmt.Errorf("%w: %s", constants.ErrNotFound, snap.Path)})
				return
			}
			sub.push(Update{Result: c.resultFromDocument(snap, proj)})
		}, onError)

	default:
		release, err = cur.col.Subscribe(ctx, func(snaps []store.DocumentSnapshot) {
			sub.push(Update{Result: c.resultFromSnapshots(snaps, proj)})
		}, onError)
	}
	if err != nil {
		sub.Cancel()
		return nil, fmt.Errorf("%w: %w", constants.ErrStore, err)
	}

	sub.release = release
	c.log.Debug("live query registered", "id", sub.id, "path", cur.path(), "type", queryType.String())
	return sub, nil
}

// LiveFunc adapts Live to a listener callback for callers that prefer the
// push style. The callback receives a nil Result with a non-nil error on
// failures; it stops firing once the subscription is cancelled.
func (c *Client) LiveFunc(ctx context.Context, query string, fn func(*Result, error)) (*Subscription, error) {
	sub, err := c.Live(ctx, query)
	if err != nil {
		return nil, err
	}
	go func() {
		for u := range sub.Updates() {
			fn(u.Result, u.Err)
		}
	}()
	return sub, nil
}
