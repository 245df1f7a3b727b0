package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/movieflix/internal/model"
)

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := NewFileStore[model.User](filepath.Join(t.TempDir(), "nope.json"))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrAbsent)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore[model.User](filepath.Join(t.TempDir(), "movies.json"))

	users := []model.User{
		{ID: 1, Name: "Ann", Movies: model.MovieList{{MovieID: 1, Name: "Inception", Year: 2010, Rating: 8.8}}},
		{ID: 2, Name: "Bob", Movies: model.MovieList{}},
	}
	require.NoError(t, store.Save(users))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, users, got)

	// 整体重写：第二次 Save 完全替换第一次的内容
	require.NoError(t, store.Save(users[:1]))
	got, err = store.Load()
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFileStoreSaveNilWritesEmptyDocument(t *testing.T) {
	store := NewFileStore[model.User](filepath.Join(t.TempDir(), "movies.json"))

	require.NoError(t, store.Save(nil))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCSVStoreIsStub(t *testing.T) {
	store := NewCSVStore[model.User]("movies.csv")

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.ErrorIs(t, store.Save(nil), ErrNotImplemented)
}
