package dataset

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"
)

// Store keeps uploaded datasets in memory until they expire. There is no
// persistence; once a dataset expires the user has to upload it again.
type Store struct {
	c *cache.Cache
}

func NewStore(ttl time.Duration) *Store {
	return &Store{c: cache.New(ttl, 2*ttl)}
}

// Put stores the dataset under a fresh random ID and returns the ID.
func (s *Store) Put(ds *Dataset) string {
	id := newID()
	s.c.Set(id, ds, cache.DefaultExpiration)
	return id
}

func (s *Store) Get(id string) (*Dataset, bool) {
	v, ok := s.c.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Dataset), true
}

func newID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
