package samples

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *SampleStore {
	db, err := NewSQLiteDB("")
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewSampleStore(db)
	assert.NoError(t, store.Init(context.Background()))
	return store
}

func TestSampleStore_List(t *testing.T) {
	store := newTestStore(t)

	list, err := store.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "growth.csv", list[0].Name)
	assert.Equal(t, "weather.csv", list[1].Name)
	assert.NotEmpty(t, list[0].Description)
}

func TestSampleStore_Get(t *testing.T) {
	store := newTestStore(t)

	content, err := store.Get(context.Background(), "growth.csv")
	assert.NoError(t, err)
	assert.Contains(t, string(content), "Age,Height,Weight")

	_, err = store.Get(context.Background(), "nonexistent.csv")
	assert.Error(t, err)
}

func TestSampleStore_InitIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Init(context.Background()))

	list, err := store.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 2)
}
