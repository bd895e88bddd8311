// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package store

import (
	"github.com/pkg/errors"

	"github.com/vechain/tvmstate/kv"
	"github.com/vechain/tvmstate/state"
)

// Table is a typed view of one kv bucket.
// It's stateless, reads and writes go to the getter or putter given per call.
type Table[T any] struct {
	bucket kv.Bucket
	codec  state.Codec[T]
}

// NewTable creates a table over the named bucket.
func NewTable[T any](name string, codec state.Codec[T]) *Table[T] {
	return &Table[T]{kv.Bucket(name), codec}
}

// Name returns the bucket name.
func (t *Table[T]) Name() string {
	return string(t.bucket)
}

// Get loads the value for the key. found is false if the key is absent.
func (t *Table[T]) Get(r kv.Getter, key []byte) (v T, found bool, err error) {
	data, err := t.bucket.NewGetter(r).Get(key)
	if err != nil {
		if r.IsNotFound(err) {
			return v, false, nil
		}
		return v, false, errors.Wrapf(err, "%v: get", t.bucket)
	}
	if v, err = t.codec.Decode(data); err != nil {
		return v, false, errors.Wrapf(err, "%v: decode", t.bucket)
	}
	return v, true, nil
}

// Has returns whether the key exists.
func (t *Table[T]) Has(r kv.Getter, key []byte) (bool, error) {
	return t.bucket.NewGetter(r).Has(key)
}

// Put saves the value for the key.
func (t *Table[T]) Put(w kv.Putter, key []byte, v T) error {
	data, err := t.codec.Encode(v)
	if err != nil {
		return errors.Wrapf(err, "%v: encode", t.bucket)
	}
	return t.bucket.NewPutter(w).Put(key, data)
}

// Delete removes the key.
func (t *Table[T]) Delete(w kv.Putter, key []byte) error {
	return t.bucket.NewPutter(w).Delete(key)
}
