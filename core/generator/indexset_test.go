package generator

import (
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

func TestIndexSetAdd(t *testing.T) {
	s := NewIndexSet()
	require.True(t, s.Add(5))
	require.False(t, s.Add(5)) // duplicate
	require.True(t, s.Has(5))
	require.Equal(t, 1, s.Len())
}

func TestIndexSetCheckAndInsertAll(t *testing.T) {
	s := NewIndexSet()
	require.True(t, s.CheckAndInsertAll([]int64{1, 2, 3, 4, 5}))
	for _, index := range []int64{1, 2, 3, 4, 5} {
		require.False(t, s.Add(index))
	}

	// one collision keeps all of them out
	require.False(t, s.CheckAndInsertAll([]int64{6, 7, 8, 9, 5}))
	require.False(t, s.Has(6))
	require.Equal(t, 5, s.Len())
}

func TestIndexSetSaveAndLoad(t *testing.T) {
	s := NewIndexSet()
	s.Add(5)
	s.Add(10)

	path := filepath.Join(t.TempDir(), "set.log")
	require.NoError(t, s.SaveToFile(path))

	loaded, err := LoadIndexSet(path)
	require.NoError(t, err)
	require.Equal(t, s.indices, loaded.indices)
}
