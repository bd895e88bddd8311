// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package repository

import "strings"

// Type tells why an entry is cached in a layer.
type Type uint8

// Entry types. They combine by OR.
const (
	// Normal entries were read from below and are never written back.
	Normal Type = 0
	// Dirty entries existed below and were modified in the layer.
	Dirty Type = 1 << iota
	// Create entries were created in the layer.
	Create
)

// Add returns t combined with o.
func (t Type) Add(o Type) Type {
	return t | o
}

// IsDirty reports whether t includes Dirty.
func (t Type) IsDirty() bool { return t&Dirty != 0 }

// IsCreate reports whether t includes Create.
func (t Type) IsCreate() bool { return t&Create != 0 }

// ShouldCommit reports whether an entry of this type is propagated on commit.
func (t Type) ShouldCommit() bool {
	return t.IsDirty() || t.IsCreate()
}

func (t Type) String() string {
	if t == Normal {
		return "normal"
	}
	var strs []string
	if t.IsCreate() {
		strs = append(strs, "create")
	}
	if t.IsDirty() {
		strs = append(strs, "dirty")
	}
	return strings.Join(strs, "|")
}

// Value is a cached entity tagged with its type.
type Value[T any] struct {
	v   T
	typ Type
}

// NewValue creates a value.
func NewValue[T any](v T, typ Type) *Value[T] {
	return &Value[T]{v, typ}
}

// Get returns the entity. It's not copied.
func (v *Value[T]) Get() T {
	return v.v
}

// Type returns the entry type.
func (v *Value[T]) Type() Type {
	return v.typ
}
