package fireman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Subhi2012/fireman/pkg/codec"
	"github.com/Subhi2012/fireman/pkg/constants"
	"github.com/Subhi2012/fireman/pkg/store"
)

func TestSetDataHonorsProjection(t *testing.T) {
	snap := store.DocumentSnapshot{
		Path:   "users/a",
		Exists: true,
		Fields: map[string]any{"name": "A", "age": 3, "email": "x"},
	}

	doc := newDocument("users/a")
	doc.setData(snap, Projection{Active: true, Fields: []string{"name", "age"}})

	assert.True(t, doc.Exists)
	assert.Equal(t, map[string]any{"name": "A", "age": 3}, doc.Data)

	// Inactive projection materializes everything.
	all := newDocument("users/a")
	all.setData(snap, Projection{})
	assert.Len(t, all.Data, 3)
}

func TestSetDataSkipsAbsentProjectedFields(t *testing.T) {
	snap := store.DocumentSnapshot{
		Path:   "users/a",
		Exists: true,
		Fields: map[string]any{"name": "A"},
	}

	doc := newDocument("users/a")
	doc.setData(snap, Projection{Active: true, Fields: []string{"name", "missing"}})
	assert.Equal(t, map[string]any{"name": "A"}, doc.Data)
}

func TestFirstOnEmptyResult(t *testing.T) {
	res := &Result{codec: codec.CBOR{}}
	_, err := res.First()
	require.ErrorIs(t, err, constants.ErrNotFound)
}

type user struct {
	Name string `cbor:"name" json:"name"`
	Age  int    `cbor:"age" json:"age"`
}

func TestResultUnmarshal(t *testing.T) {
	docs := []Document{
		{Path: "users/b", Data: map[string]any{"name": "B", "age": 2}, Exists: true},
		{Path: "users/a", Data: map[string]any{"name": "A", "age": 1}, Exists: true},
	}

	for name, c := range map[string]codec.Codec{"cbor": codec.CBOR{}, "json": codec.JSON{}} {
		t.Run(name, func(t *testing.T) {
			res := &Result{Documents: docs, codec: c}

			var users []user
			require.NoError(t, res.Unmarshal(&users))
			require.Equal(t, []user{{Name: "B", Age: 2}, {Name: "A", Age: 1}}, users)

			var first user
			require.NoError(t, res.UnmarshalFirst(&first))
			assert.Equal(t, user{Name: "B", Age: 2}, first)
		})
	}
}
