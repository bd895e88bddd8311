// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"io"
	"slices"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vechain/tvmstate/tvm"
)

// PermissionType is the role of a permission.
type PermissionType int32

// Permission types.
const (
	OwnerPermission PermissionType = iota
	WitnessPermission
	ActivePermission
)

// PermissionKey is a weighted signer of a permission.
type PermissionKey struct {
	Address tvm.Address
	Weight  int64
}

// Permission is a multi-sign permission of an account.
type Permission struct {
	Type      PermissionType
	ID        int32
	Name      string
	Threshold int64
	ParentID  int32
	// Operations is a bitmap of the contract types the permission may sign.
	Operations []byte
	Keys       []PermissionKey
}

// NewDefaultOwnerPermission returns the owner permission granted to a new
// account, held solely by the account itself.
func NewDefaultOwnerPermission(addr tvm.Address) *Permission {
	return &Permission{
		Type:      OwnerPermission,
		ID:        0,
		Name:      "owner",
		Threshold: 1,
		ParentID:  0,
		Keys:      []PermissionKey{{Address: addr, Weight: 1}},
	}
}

// NewDefaultActivePermission returns the active permission granted to a new
// account. operations comes from the ACTIVE_DEFAULT_OPERATIONS property.
func NewDefaultActivePermission(addr tvm.Address, operations []byte) *Permission {
	return &Permission{
		Type:       ActivePermission,
		ID:         2,
		Name:       "active",
		Threshold:  1,
		ParentID:   0,
		Operations: slices.Clone(operations),
		Keys:       []PermissionKey{{Address: addr, Weight: 1}},
	}
}

// Copy returns a deep copy.
func (p *Permission) Copy() *Permission {
	cpy := *p
	cpy.Operations = slices.Clone(p.Operations)
	cpy.Keys = slices.Clone(p.Keys)
	return &cpy
}

type permissionKeyRLP struct {
	Address tvm.Address
	Weight  uint64
}

type permissionRLP struct {
	Type       uint64
	ID         uint64
	Name       string
	Threshold  uint64
	ParentID   uint64
	Operations []byte
	Keys       []permissionKeyRLP
}

// EncodeRLP implements rlp.Encoder.
func (p *Permission) EncodeRLP(w io.Writer) error {
	keys := make([]permissionKeyRLP, len(p.Keys))
	for i, k := range p.Keys {
		keys[i] = permissionKeyRLP{k.Address, uint64(k.Weight)}
	}
	return rlp.Encode(w, &permissionRLP{
		Type:       uint64(p.Type),
		ID:         uint64(p.ID),
		Name:       p.Name,
		Threshold:  uint64(p.Threshold),
		ParentID:   uint64(p.ParentID),
		Operations: p.Operations,
		Keys:       keys,
	})
}

// DecodeRLP implements rlp.Decoder.
func (p *Permission) DecodeRLP(s *rlp.Stream) error {
	var obj permissionRLP
	if err := s.Decode(&obj); err != nil {
		return err
	}
	var keys []PermissionKey
	if len(obj.Keys) > 0 {
		keys = make([]PermissionKey, len(obj.Keys))
		for i, k := range obj.Keys {
			keys[i] = PermissionKey{k.Address, int64(k.Weight)}
		}
	}
	*p = Permission{
		Type:       PermissionType(int32(obj.Type)),
		ID:         int32(obj.ID),
		Name:       obj.Name,
		Threshold:  int64(obj.Threshold),
		ParentID:   int32(obj.ParentID),
		Operations: nilIfEmpty(obj.Operations),
		Keys:       keys,
	}
	return nil
}
