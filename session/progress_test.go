package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *GDataStore {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	store, err := OpenGDataStore("godofsky_test")
	require.NoError(t, err)
	return store
}

func TestGDataStoreRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		p    Progress
	}{
		{"level start", Progress{Level: "level1"}},
		{"spawn point", Progress{Level: "level2", SpawnX: 192, SpawnY: 64, SpawnPriority: 3, HasSpawn: true}},
		{"finished", Progress{Level: "end"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			require.NoError(t, store.Save(tt.p))

			got, err := store.Load()
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.p, *got)
		})
	}
}

func TestGDataStoreEmpty(t *testing.T) {
	store := openTestStore(t)
	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGDataStoreCorruptItem(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.m.SaveItem(progressKey, []byte("{not json")))

	_, err := store.Load()
	assert.ErrorContains(t, err, "progress: decode")
}
