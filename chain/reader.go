// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package chain

import (
	"github.com/pkg/errors"

	"github.com/vechain/tvmstate/block"
	"github.com/vechain/tvmstate/cache"
	"github.com/vechain/tvmstate/kv"
	"github.com/vechain/tvmstate/store"
	"github.com/vechain/tvmstate/tvm"
)

var (
	// ErrMissingBlockIndex is returned when no block id is indexed at a height.
	// It means the chain metadata is inconsistent.
	ErrMissingBlockIndex = errors.New("missing block index")
	// ErrBlockNotFound is returned when an indexed block id resolves to nothing.
	ErrBlockNotFound = errors.New("block not found")
)

// BlockReader resolves blocks by height.
// Recently produced blocks are served from memory before falling back
// to the block store.
//
// It's thread-safe.
type BlockReader struct {
	db     kv.Getter
	recent *cache.LRU[tvm.Bytes32, *block.Block]
}

// NewBlockReader creates a block reader over db, keeping up to recentSize
// recent blocks in memory.
func NewBlockReader(db kv.Getter, recentSize int) (*BlockReader, error) {
	recent, err := cache.NewLRU[tvm.Bytes32, *block.Block](recentSize)
	if err != nil {
		return nil, errors.Wrap(err, "new block reader")
	}
	return &BlockReader{db, recent}, nil
}

// AddRecent adds a block not yet settled into the block store.
func (r *BlockReader) AddRecent(b *block.Block) {
	r.recent.Add(b.Header().ID(), b)
}

// GetBlockIDByNum returns the id of the block at the height.
func (r *BlockReader) GetBlockIDByNum(num uint64) (tvm.Bytes32, error) {
	id, found, err := store.BlockIndex.GetID(r.db, num)
	if err != nil {
		return tvm.Bytes32{}, err
	}
	if !found {
		return tvm.Bytes32{}, errors.Wrapf(ErrMissingBlockIndex, "cannot find block num %d", num)
	}
	return id, nil
}

// GetBlockByNum returns the block at the height.
func (r *BlockReader) GetBlockByNum(num uint64) (*block.Block, error) {
	id, err := r.GetBlockIDByNum(num)
	if err != nil {
		return nil, err
	}

	if b, ok := r.recent.Get(id); ok {
		metricBlockReaderCounter().AddWithLabel(1, map[string]string{"type": "read", "target": "recent"})
		return b, nil
	}

	b, found, err := store.Blocks.Get(r.db, id[:])
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrapf(ErrBlockNotFound, "cannot find block num %d, id %v", num, id)
	}
	metricBlockReaderCounter().AddWithLabel(1, map[string]string{"type": "read", "target": "db"})
	return b, nil
}
