package kvstore

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gestao-dashboard/internal/config"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "clientes")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "clientes", `[{"id":1}]`))
	v, ok, err := s.Get(ctx, "clientes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)

	require.NoError(t, s.Set(ctx, "clientes", `[]`))
	v, _, _ = s.Get(ctx, "clientes")
	assert.Equal(t, `[]`, v)

	require.NoError(t, s.Delete(ctx, "clientes"))
	_, ok, err = s.Get(ctx, "clientes")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Delete(ctx, "never-set"))
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	exerciseStore(t, s)

	require.NoError(t, s.Close())
	_, _, err := s.Get(context.Background(), "x")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.db")

	s, err := OpenBolt(path)
	require.NoError(t, err)
	exerciseStore(t, s)

	require.NoError(t, s.Set(context.Background(), "produtos", `[{"id":2}]`))
	require.NoError(t, s.Close())

	reopened, err := OpenBolt(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(context.Background(), "produtos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":2}]`, v)
}

func TestCachedStore(t *testing.T) {
	backend := NewMemory()
	s := NewCached(backend, 10, time.Minute)
	exerciseStore(t, s)

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "servicos", "a"))

	// a write behind the cache's back stays invisible until the entry expires
	require.NoError(t, backend.Set(ctx, "servicos", "b"))
	v, _, err := s.Get(ctx, "servicos")
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	require.NoError(t, s.Delete(ctx, "servicos"))
	_, ok, _ := backend.Get(ctx, "servicos")
	assert.False(t, ok)
}

// pausedStore holds the first Get after its backend read until released.
type pausedStore struct {
	Store
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func (p *pausedStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := p.Store.Get(ctx, key)
	p.once.Do(func() {
		close(p.read)
		<-p.release
	})
	return v, ok, err
}

func TestCachedMissDoesNotCacheOverwrittenValue(t *testing.T) {
	ctx := context.Background()
	backend := &pausedStore{Store: NewMemory(), read: make(chan struct{}), release: make(chan struct{})}
	require.NoError(t, backend.Store.Set(ctx, "produtos", "v1"))

	s := NewCached(backend, 10, time.Minute)

	got := make(chan string)
	go func() {
		v, _, _ := s.Get(ctx, "produtos")
		got <- v
	}()

	<-backend.read
	require.NoError(t, s.Set(ctx, "produtos", "v2"))
	close(backend.release)
	assert.Equal(t, "v1", <-got)

	v, _, err := s.Get(ctx, "produtos")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)
}

func TestCachedMissAfterDeleteSeesAbsence(t *testing.T) {
	ctx := context.Background()
	backend := &pausedStore{Store: NewMemory(), read: make(chan struct{}), release: make(chan struct{})}
	require.NoError(t, backend.Store.Set(ctx, "currentUser", `{"id":3}`))

	s := NewCached(backend, 10, time.Minute)

	done := make(chan struct{})
	go func() {
		_, _, _ = s.Get(ctx, "currentUser")
		close(done)
	}()

	<-backend.read
	require.NoError(t, s.Delete(ctx, "currentUser"))
	close(backend.release)
	<-done

	_, ok, err := s.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen(t *testing.T) {
	s, err := Open(context.Background(), config.StoreConfig{Driver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(context.Background(), config.StoreConfig{Driver: "bolt", BoltPath: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	assert.IsType(t, &Bolt{}, s)
	require.NoError(t, s.Close())

	_, err = Open(context.Background(), config.StoreConfig{Driver: "floppy"})
	assert.Error(t, err)
}
