// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelDB(t *testing.T) {
	var lvldbs []*LevelDB
	var (
		key        = []byte("123")
		value      = []byte("456")
		inValidKey = []byte("abc")
	)
	lvldb, err := New(filepath.Join(t.TempDir(), "lvldb"), Options{16, 16})
	require.NoError(t, err)
	defer lvldb.Close()
	lvldbs = append(lvldbs, lvldb)

	memlvldb, err := NewMem()
	require.NoError(t, err)
	defer memlvldb.Close()
	lvldbs = append(lvldbs, memlvldb)

	for _, leveldb := range lvldbs {
		err = leveldb.Put(key, value)
		assert.Nil(t, err)

		ret1, err := leveldb.Get(key)
		assert.Nil(t, err)

		ret2, err := leveldb.Has(key)
		assert.Nil(t, err)

		ret3, err := leveldb.Has(inValidKey)
		assert.Nil(t, err)

		err = leveldb.Delete(key)
		assert.Nil(t, err)

		_, ret4 := leveldb.Get(key)

		assert.Equal(t, value, ret1)
		assert.True(t, ret2)
		assert.False(t, ret3)
		assert.True(t, leveldb.IsNotFound(ret4))
	}
}

func TestSnapshot(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put([]byte("k"), []byte("v1")))

	snap := db.Snapshot()
	defer snap.Release()

	require.NoError(t, db.Put([]byte("k"), []byte("v2")))
	require.NoError(t, db.Put([]byte("k2"), []byte("v")))

	got, err := snap.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	_, err = snap.Get([]byte("k2"))
	assert.True(t, snap.IsNotFound(err))

	has, err := snap.Has([]byte("k2"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestBulk(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put([]byte("gone"), []byte("v")))

	bulk := db.Bulk()
	require.NoError(t, bulk.Put([]byte("a"), []byte("1")))
	require.NoError(t, bulk.Put([]byte("b"), []byte("2")))
	require.NoError(t, bulk.Delete([]byte("gone")))
	assert.Equal(t, 3, bulk.Len())

	// nothing visible before write
	has, _ := db.Has([]byte("a"))
	assert.False(t, has)

	require.NoError(t, bulk.Write())
	assert.Equal(t, 0, bulk.Len())

	got, err := db.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)

	_, err = db.Get([]byte("gone"))
	assert.True(t, db.IsNotFound(err))
}
