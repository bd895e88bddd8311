// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package worldstate

import (
	"slices"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/qianbin/directcache"

	"github.com/vechain/tvmstate/cache"
	"github.com/vechain/tvmstate/kv"
	"github.com/vechain/tvmstate/log"
	"github.com/vechain/tvmstate/state"
	"github.com/vechain/tvmstate/store"
	"github.com/vechain/tvmstate/tvm"
)

var logger = log.WithContext("pkg", "worldstate")

var (
	_ Query = (*Snapshot)(nil)

	absentRow = []byte{0}
)

// Options options for opening a snapshot.
type Options struct {
	CodeCacheSize  int // number of code blobs
	RowCacheSizeMB int // storage rows, in MB
}

// Snapshot implements Query over a consistent snapshot of the kv store.
// The view never changes, so code blobs and storage rows are cached freely.
//
// It's thread-safe.
type Snapshot struct {
	root tvm.Bytes32
	snap kv.Snapshot

	codes *lru.ARCCache
	rows  *directcache.Cache

	codeStats   cache.Stats
	rowStats    cache.Stats
	lastLogTime atomic.Int64
}

// New opens a snapshot of db bound to the given root.
// It must be closed after use.
func New(db kv.Store, root tvm.Bytes32, opts Options) *Snapshot {
	if opts.CodeCacheSize < 16 {
		opts.CodeCacheSize = 512
	}
	if opts.RowCacheSizeMB < 1 {
		opts.RowCacheSizeMB = 16
	}
	codes, _ := lru.NewARC(opts.CodeCacheSize)

	s := &Snapshot{
		root:  root,
		snap:  db.Snapshot(),
		codes: codes,
		rows:  directcache.New(opts.RowCacheSizeMB * 1024 * 1024),
	}
	s.lastLogTime.Store(time.Now().UnixNano())
	return s
}

// Close releases the underlying snapshot.
func (s *Snapshot) Close() {
	s.snap.Release()
}

// Root returns the bound state root.
func (s *Snapshot) Root() tvm.Bytes32 {
	return s.root
}

func getEntity[T any](s *Snapshot, table *store.Table[T], key []byte) (T, error) {
	v, _, err := table.Get(s.snap, key)
	return v, err
}

// GetAccount returns the account.
func (s *Snapshot) GetAccount(addr tvm.Address) (*state.Account, error) {
	return getEntity(s, store.Accounts, addr[:])
}

// GetAssetIssue returns the asset issue by token id.
func (s *Snapshot) GetAssetIssue(tokenID []byte) (*state.AssetIssue, error) {
	return getEntity(s, store.AssetIssues, tokenID)
}

// GetContract returns the contract metadata.
func (s *Snapshot) GetContract(addr tvm.Address) (*state.Contract, error) {
	return getEntity(s, store.Contracts, addr[:])
}

// GetCode returns the contract code.
func (s *Snapshot) GetCode(addr tvm.Address) ([]byte, error) {
	if cached, ok := s.codes.Get(addr); ok {
		s.codeStats.Hit()
		return slices.Clone(cached.([]byte)), nil
	}
	s.codeStats.Miss()

	code, found, err := store.Code.Get(s.snap, addr[:])
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	s.codes.Add(addr, code)
	return slices.Clone(code), nil
}

// GetDynamicProperty returns the raw dynamic property.
func (s *Snapshot) GetDynamicProperty(key []byte) ([]byte, error) {
	return getEntity(s, store.DynamicProperties, key)
}

// GetDelegatedResource returns the delegated resource record.
func (s *Snapshot) GetDelegatedResource(key []byte) (*state.DelegatedResource, error) {
	return getEntity(s, store.DelegatedResources, key)
}

// GetVotes returns the votes of the account.
func (s *Snapshot) GetVotes(addr tvm.Address) (*state.Votes, error) {
	return getEntity(s, store.Votes, addr[:])
}

// GetDelegation returns the raw delegation record.
func (s *Snapshot) GetDelegation(key []byte) ([]byte, error) {
	return getEntity(s, store.Delegation, key)
}

// GetWitness returns the witness.
func (s *Snapshot) GetWitness(addr tvm.Address) (*state.Witness, error) {
	return getEntity(s, store.Witnesses, addr[:])
}

// GetStorageRow returns the storage row value.
func (s *Snapshot) GetStorageRow(rowKey []byte) (tvm.Bytes32, bool, error) {
	var (
		value tvm.Bytes32
		found bool
	)
	// absent rows are cached as a one byte marker
	if s.rows.AdvGet(rowKey, func(val []byte) {
		if len(val) == 32 {
			value = tvm.BytesToBytes32(val)
			found = true
		}
	}, false) {
		s.hitRow()
		return value, found, nil
	}
	s.rowStats.Miss()

	value, found, err := store.StorageRows.Get(s.snap, rowKey)
	if err != nil {
		return tvm.Bytes32{}, false, err
	}
	if found {
		_ = s.rows.Set(rowKey, value[:])
	} else {
		_ = s.rows.Set(rowKey, absentRow)
	}
	return value, found, nil
}

func (s *Snapshot) getInt64(key []byte) (int64, error) {
	data, found, err := store.DynamicProperties.Get(s.snap, key)
	if err != nil || !found {
		return 0, err
	}
	v, err := state.DecodeInt64(data)
	if err != nil {
		return 0, errors.Wrapf(err, "property %s", key)
	}
	return v, nil
}

// GetTotalNetWeight returns the total frozen weight for bandwidth.
func (s *Snapshot) GetTotalNetWeight() (int64, error) {
	return s.getInt64(tvm.KeyTotalNetWeight)
}

// GetTotalEnergyWeight returns the total frozen weight for energy.
func (s *Snapshot) GetTotalEnergyWeight() (int64, error) {
	return s.getInt64(tvm.KeyTotalEnergyWeight)
}

// GetTotalNetLimit returns the global bandwidth limit.
func (s *Snapshot) GetTotalNetLimit() (int64, error) {
	return s.getInt64(tvm.KeyTotalNetLimit)
}

// GetTotalEnergyCurrentLimit returns the current global energy limit.
func (s *Snapshot) GetTotalEnergyCurrentLimit() (int64, error) {
	return s.getInt64(tvm.KeyTotalEnergyCurrentLimit)
}

// GetLatestBlockHeaderTimestamp returns the timestamp of the head block, in ms.
func (s *Snapshot) GetLatestBlockHeaderTimestamp() (int64, error) {
	return s.getInt64(tvm.KeyLatestBlockHeaderTime)
}

func (s *Snapshot) hitRow() {
	if s.rowStats.Hit()%2000 == 0 {
		s.log()
	}
}

// log reports cache stats at most once per 20 seconds.
func (s *Snapshot) log() {
	now := time.Now().UnixNano()
	last := s.lastLogTime.Swap(now)

	if now-last > int64(time.Second*20) {
		shouldRow, hitRow, missRow := s.rowStats.Stats()
		shouldCode, hitCode, missCode := s.codeStats.Stats()

		// log only when one of the hit rates has changed
		if shouldRow || shouldCode {
			logStats("row cache stats", hitRow, missRow)
			logStats("code cache stats", hitCode, missCode)
		}

		metricCacheHitMiss().SetWithLabel(hitRow, map[string]string{"type": "row", "event": "hit"})
		metricCacheHitMiss().SetWithLabel(missRow, map[string]string{"type": "row", "event": "miss"})
		metricCacheHitMiss().SetWithLabel(hitCode, map[string]string{"type": "code", "event": "hit"})
		metricCacheHitMiss().SetWithLabel(missCode, map[string]string{"type": "code", "event": "miss"})
	} else {
		s.lastLogTime.CompareAndSwap(now, last)
	}
}

func logStats(msg string, hit, miss int64) {
	logger.Info(msg,
		"lookups", hit+miss,
		"hitrate", cache.HitRate(hit, miss),
	)
}
