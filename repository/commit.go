// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package repository

import (
	"time"

	"github.com/pkg/errors"

	"github.com/vechain/tvmstate/kv"
	"github.com/vechain/tvmstate/state"
	"github.com/vechain/tvmstate/store"
)

// Commit hands the created and dirty entries of the layer to its parent, or
// at the root writes them to the persistent stores in one atomic bulk.
// Kinds are committed in order: accounts, code, contracts, storage, dynamic
// properties, delegated resources, votes, delegation records.
//
// A layer commits at most once and must not be mutated afterwards.
// A root commit error means the stores could not take the change. The
// caller must treat it as fatal.
func (r *Repository) Commit() error {
	if r.committed {
		return ErrCommitted
	}
	r.committed = true

	startTime := time.Now()
	if r.parent != nil {
		n := r.commitToParent(r.parent)
		metricCommitCount().AddWithLabel(1, map[string]string{"target": "parent"})
		metricCommitEntries().AddWithLabel(int64(n), map[string]string{"target": "parent"})
		metricCommitDurationMs().Observe(time.Since(startTime).Milliseconds())
		return nil
	}

	bulk := r.db.Bulk()
	n, err := r.commitToStore(bulk)
	if err != nil {
		return errors.Wrap(err, "commit")
	}
	if err := bulk.Write(); err != nil {
		return errors.Wrap(err, "commit: write bulk")
	}
	metricCommitCount().AddWithLabel(1, map[string]string{"target": "store"})
	metricCommitEntries().AddWithLabel(int64(n), map[string]string{"target": "store"})
	metricCommitDurationMs().Observe(time.Since(startTime).Milliseconds())

	logger.Debug("committed to store", "root", r.query.Root(), "entries", n, "elapsed", time.Since(startTime))
	return nil
}

// commitToParent merges into p. It's a pure in-memory handover and cannot fail.
func (r *Repository) commitToParent(p *Repository) int {
	var (
		n   int
		add = func(c int, _ error) { n += c }
	)
	add(r.accounts.commitTo(func(k Key, v *Value[*state.Account]) error { p.PutAccount(k, v); return nil }))
	add(r.code.commitTo(func(k Key, v *Value[[]byte]) error { p.PutCode(k, v); return nil }))
	add(r.contracts.commitTo(func(k Key, v *Value[*state.Contract]) error { p.PutContract(k, v); return nil }))
	// overlays carry their own dirty rows, so all of them go up
	for k, o := range r.storages {
		p.PutStorage(k, o)
		n++
	}
	add(r.dynamicProps.commitTo(func(k Key, v *Value[[]byte]) error { p.PutDynamicProperty(k, v); return nil }))
	add(r.delegatedResources.commitTo(func(k Key, v *Value[*state.DelegatedResource]) error {
		p.PutDelegatedResource(k, v)
		return nil
	}))
	add(r.votes.commitTo(func(k Key, v *Value[*state.Votes]) error { p.PutVotes(k, v); return nil }))
	add(r.delegation.commitTo(func(k Key, v *Value[[]byte]) error { p.PutDelegation(k, v); return nil }))
	return n
}

// commitToStore writes the layer into bulk.
func (r *Repository) commitToStore(bulk kv.Bulk) (int, error) {
	steps := []struct {
		name string
		fn   func() (int, error)
	}{
		{"accounts", func() (int, error) { return commitTable(r.accounts, store.Accounts, bulk) }},
		{"code", func() (int, error) { return commitTable(r.code, store.Code, bulk) }},
		{"contracts", func() (int, error) { return r.commitContracts(bulk) }},
		{"storage", func() (int, error) { return r.commitStorages(bulk) }},
		{"props", func() (int, error) { return commitTable(r.dynamicProps, store.DynamicProperties, bulk) }},
		{"delegated", func() (int, error) { return commitTable(r.delegatedResources, store.DelegatedResources, bulk) }},
		{"votes", func() (int, error) { return commitTable(r.votes, store.Votes, bulk) }},
		{"delegation", func() (int, error) { return commitTable(r.delegation, store.Delegation, bulk) }},
	}

	n := 0
	for _, step := range steps {
		c, err := step.fn()
		if err != nil {
			return n, errors.Wrapf(err, "commit %s", step.name)
		}
		n += c
	}
	return n, nil
}

func commitTable[T any](c *entityCache[T], table *store.Table[T], w kv.Putter) (int, error) {
	return c.commitTo(func(k Key, v *Value[T]) error {
		return table.Put(w, k.Bytes(), v.Get())
	})
}

// commitContracts writes contracts, and the ABI record of each contract new
// to the store. Existing ABI records are never overwritten.
func (r *Repository) commitContracts(bulk kv.Bulk) (int, error) {
	return r.contracts.commitTo(func(k Key, v *Value[*state.Contract]) error {
		key := k.Bytes()
		has, err := store.Abis.Has(r.db, key)
		if err != nil {
			return err
		}
		if !has {
			if err := store.Abis.Put(bulk, key, state.NewAbi(v.Get())); err != nil {
				return err
			}
		}
		return store.Contracts.Put(bulk, key, v.Get())
	})
}

func (r *Repository) commitStorages(bulk kv.Bulk) (int, error) {
	n := 0
	for _, o := range r.storages {
		c, err := o.Flush(bulk)
		if err != nil {
			return n, err
		}
		n += c
	}
	return n, nil
}
