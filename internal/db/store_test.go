package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/e-gun/HipparchiaGoTopics/internal/lnch"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleartifacts(tag string) Artifacts {
	return Artifacts{
		Model:  []byte("model-" + tag),
		Corpus: []byte("corpus-" + tag),
		Vocab:  []byte("vocab-" + tag),
	}
}

func newsqlite(t *testing.T) Store {
	t.Helper()
	s, err := NewSQLiteStore("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Init(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newfs(t *testing.T) Store {
	t.Helper()
	s, err := NewFSStore(filepath.Join(t.TempDir(), "models"))
	require.NoError(t, err)
	require.NoError(t, s.Init(context.Background()))
	return s
}

// every backend has to pass the same suite
func TestStores(t *testing.T) {
	backends := map[string]func(*testing.T) Store{
		"sqlite": newsqlite,
		"fs":     newfs,
	}
	for name, mk := range backends {
		mk := mk
		t.Run(name, func(t *testing.T) {
			t.Run("round trip", func(t *testing.T) {
				s := mk(t)
				ctx := context.Background()
				require.NoError(t, s.Save(ctx, "alpha", sampleartifacts("1")))

				got, err := s.Load(ctx, "alpha")
				require.NoError(t, err)
				assert.Equal(t, sampleartifacts("1"), got)

				ok, err := s.Exists(ctx, "alpha")
				require.NoError(t, err)
				assert.True(t, ok)
			})

			t.Run("overwrite replaces every artifact", func(t *testing.T) {
				s := mk(t)
				ctx := context.Background()
				require.NoError(t, s.Save(ctx, "alpha", sampleartifacts("1")))
				require.NoError(t, s.Save(ctx, "alpha", sampleartifacts("2")))

				got, err := s.Load(ctx, "alpha")
				require.NoError(t, err)
				assert.Equal(t, sampleartifacts("2"), got)

				mi, err := s.List(ctx)
				require.NoError(t, err)
				require.Len(t, mi, 1)
				assert.Equal(t, "alpha", mi[0].ID)
				assert.Equal(t, sampleartifacts("2").Size(), mi[0].Size)
			})

			t.Run("missing id", func(t *testing.T) {
				s := mk(t)
				ctx := context.Background()
				_, err := s.Load(ctx, "nobody")
				assert.ErrorIs(t, err, ErrNotFound)

				ok, err := s.Exists(ctx, "nobody")
				require.NoError(t, err)
				assert.False(t, ok)

				assert.ErrorIs(t, s.Delete(ctx, "nobody"), ErrNotFound)
			})

			t.Run("partial artifacts are refused", func(t *testing.T) {
				s := mk(t)
				ctx := context.Background()
				a := sampleartifacts("1")
				a.Vocab = nil
				assert.ErrorIs(t, s.Save(ctx, "beta", a), ErrPartial)

				ok, err := s.Exists(ctx, "beta")
				require.NoError(t, err)
				assert.False(t, ok, "a refused save leaves nothing behind")
			})

			t.Run("bad ids", func(t *testing.T) {
				s := mk(t)
				ctx := context.Background()
				for _, id := range []string{"", ".hidden", "../escape", "a/b", "sp ace"} {
					assert.ErrorIs(t, s.Save(ctx, id, sampleartifacts("1")), ErrBadID, id)
					_, err := s.Load(ctx, id)
					assert.ErrorIs(t, err, ErrBadID, id)
					ok, err := s.Exists(ctx, id)
					assert.ErrorIs(t, err, ErrBadID, id)
					assert.False(t, ok, id)
					assert.ErrorIs(t, s.Delete(ctx, id), ErrBadID, id)
				}
			})

			t.Run("delete and list", func(t *testing.T) {
				s := mk(t)
				ctx := context.Background()
				for _, id := range []string{"gamma", "alpha", "beta"} {
					require.NoError(t, s.Save(ctx, id, sampleartifacts(id)))
				}
				require.NoError(t, s.Delete(ctx, "beta"))

				mi, err := s.List(ctx)
				require.NoError(t, err)
				ids := make([]string, len(mi))
				for i := range mi {
					ids[i] = mi[i].ID
				}
				assert.Equal(t, []string{"alpha", "gamma"}, ids)

				_, err = s.Load(ctx, "beta")
				assert.ErrorIs(t, err, ErrNotFound)
			})
		})
	}
}

func TestFSStoreDetectsMissingArtifact(t *testing.T) {
	root := t.TempDir()
	s, err := NewFSStore(root)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.Save(ctx, "alpha", sampleartifacts("1")))

	require.NoError(t, os.Remove(filepath.Join(root, "alpha", vv.ARTCORPUS)))

	_, err = s.Load(ctx, "alpha")
	assert.ErrorIs(t, err, ErrPartial)
	assert.False(t, errors.Is(err, ErrNotFound))
}

// an overwrite swaps directories; Exists must never see the gap
func TestFSStoreExistsDuringOverwrite(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.Save(ctx, "alpha", sampleartifacts("0")))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			assert.NoError(t, s.Save(ctx, "alpha", sampleartifacts(fmt.Sprint(i))))
		}
	}()

	for i := 0; i < 200; i++ {
		ok, err := s.Exists(ctx, "alpha")
		require.NoError(t, err)
		require.True(t, ok)
	}
	wg.Wait()
}

func TestFSStoreInitSweepsScratch(t *testing.T) {
	root := t.TempDir()
	debris := filepath.Join(root, scratchprefix+"leftover")
	require.NoError(t, os.MkdirAll(debris, vv.DIRPERMS))

	s, err := NewFSStore(root)
	require.NoError(t, err)
	require.NoError(t, s.Init(context.Background()))

	assert.NoDirExists(t, debris)
	mi, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, mi)
}

func TestSQLiteStoreDetectsEmptyColumn(t *testing.T) {
	s, err := NewSQLiteStore("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.Save(ctx, "alpha", sampleartifacts("1")))

	_, err = s.db.ExecContext(ctx, "UPDATE "+vv.MODELTABLENAME+" SET vocabdata = x'' WHERE modelid = 'alpha'")
	require.NoError(t, err)

	_, err = s.Load(ctx, "alpha")
	assert.ErrorIs(t, err, ErrPartial)
}

func TestValidID(t *testing.T) {
	t.Parallel()
	for _, id := range []string{"a", "model-1", "Model_2.v3", "0"} {
		assert.NoError(t, ValidID(id), id)
	}
	for _, id := range []string{"", ".", "..", ".x", "a/b", `a\b`, "ü"} {
		assert.Error(t, ValidID(id), id)
	}
}

func TestOpenPicksBackend(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	c := *lnch.BuildDefaultConfig()
	c.Store = "fs"
	c.FSPath = filepath.Join(dir, "fs")
	s, err := Open(ctx, c)
	require.NoError(t, err)
	_, isfs := s.(*FSStore)
	assert.True(t, isfs)
	assert.DirExists(t, c.FSPath)

	c.Store = "sqlite"
	c.SQLitePath = filepath.Join(dir, "models.db")
	s, err = Open(ctx, c)
	require.NoError(t, err)
	_, issql := s.(*SQLiteStore)
	assert.True(t, issql)
	require.NoError(t, s.Close())
}
