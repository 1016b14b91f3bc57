package fireman

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Subhi2012/fireman/internal/memstore"
	"github.com/Subhi2012/fireman/pkg/lang"
)

// stubParser resolves canned component sequences, standing in for the
// external FQL parser.
func stubParser(queries map[string][]lang.Component) lang.Parser {
	return lang.ParserFunc(func(q string) ([]lang.Component, error) {
		components, ok := queries[q]
		if !ok {
			return nil, fmt.Errorf("unexpected query %q", q)
		}
		return components, nil
	})
}

// newTestClient wires a client to a seeded in-memory store under project
// "demo".
func newTestClient(t *testing.T, queries map[string][]lang.Component) (*Client, *memstore.Store) {
	t.Helper()

	st := memstore.New()
	connector := memstore.NewConnector()
	connector.Add("demo", st)

	client, err := New(stubParser(queries), StaticProject("demo"), connector)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, client.Close()) })

	return client, st
}

func seedUsers(st *memstore.Store) {
	st.Put("users/tom", map[string]any{"name": "Tom", "age": 41, "email": "tom@example.com"})
	st.Put("users/ann", map[string]any{"name": "Ann", "age": 29, "email": "ann@example.com"})
	st.Put("users/bob", map[string]any{"name": "Bob", "age": 35, "email": "bob@example.com"})
}

// recvUpdate reads one update from a subscription or fails the test.
func recvUpdate(t *testing.T, sub *Subscription) Update {
	t.Helper()
	select {
	case u, ok := <-sub.Updates():
		require.True(t, ok, "update channel closed unexpectedly")
		return u
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for update")
		return Update{}
	}
}

// requireClosed asserts that a subscription's update channel is drained and
// closed.
func requireClosed(t *testing.T, sub *Subscription) {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-sub.Updates():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("update channel not closed")
		}
	}
}
