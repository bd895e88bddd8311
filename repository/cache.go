// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package repository

import (
	"github.com/vechain/tvmstate/state"
)

// entityCache is the cache of one entity kind in a layer.
// Entities enter and leave it as copies, so a caller never holds the
// instance the cache holds.
type entityCache[T any] struct {
	kind    string
	codec   state.Codec[T]
	isNil   func(T) bool
	entries map[Key]*Value[T]
}

func newEntityCache[T any](kind string, codec state.Codec[T], isNil func(T) bool) *entityCache[T] {
	return &entityCache[T]{
		kind:    kind,
		codec:   codec,
		isNil:   isNil,
		entries: make(map[Key]*Value[T]),
	}
}

func nilPtr[E any](v *E) bool { return v == nil }
func nilBytes(v []byte) bool   { return v == nil }

// get returns a copy of the cached entity.
func (c *entityCache[T]) get(key Key) (T, bool) {
	if v, ok := c.entries[key]; ok {
		metricCacheHitMiss().AddWithLabel(1, map[string]string{"kind": c.kind, "event": "hit"})
		return c.codec.Copy(v.v), true
	}
	metricCacheHitMiss().AddWithLabel(1, map[string]string{"kind": c.kind, "event": "miss"})
	var zero T
	return zero, false
}

// put caches a copy of v.
func (c *entityCache[T]) put(key Key, v T, typ Type) {
	c.entries[key] = &Value[T]{c.codec.Copy(v), typ}
}

// update caches a copy of v as dirty, keeping the type it has in the layer.
func (c *entityCache[T]) update(key Key, v T) {
	typ := Dirty
	if old, ok := c.entries[key]; ok {
		typ = old.typ.Add(Dirty)
	}
	c.put(key, v, typ)
}

// merge takes over a value committed by a child layer.
func (c *entityCache[T]) merge(key Key, v *Value[T]) {
	c.entries[key] = v
}

// resolve implements the read path shared by every kind: the local cache
// answers first, then the parent, then the world state at the root.
// Entities found below are cached as Normal.
func resolve[T any](
	r *Repository,
	cacheOf func(*Repository) *entityCache[T],
	key Key,
	fromQuery func(r *Repository) (T, error),
) (T, error) {
	c := cacheOf(r)
	if v, ok := c.get(key); ok {
		return v, nil
	}

	var (
		v   T
		err error
	)
	if r.parent != nil {
		v, err = resolve(r.parent, cacheOf, key, fromQuery)
	} else {
		v, err = fromQuery(r)
		if err != nil {
			err = &Error{c.kind, err}
		}
	}
	if err != nil {
		var zero T
		return zero, err
	}
	if !c.isNil(v) {
		c.put(key, v, Normal)
	}
	return v, nil
}

// commitTo hands every entry to be committed to fn.
func (c *entityCache[T]) commitTo(fn func(key Key, v *Value[T]) error) (int, error) {
	n := 0
	for key, v := range c.entries {
		if !v.typ.ShouldCommit() {
			continue
		}
		if err := fn(key, v); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
