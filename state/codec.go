// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"encoding/binary"
	"slices"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

// Codec converts an entity to and from its stored bytes, and copies it so
// that cached instances are never aliased by callers.
type Codec[T any] interface {
	Encode(v T) ([]byte, error)
	Decode(data []byte) (T, error)
	Copy(v T) T
}

// Codecs of entities.
var (
	AccountCodec           Codec[*Account]           = rlpCodec[Account, *Account]{}
	ContractCodec          Codec[*Contract]          = rlpCodec[Contract, *Contract]{}
	AbiCodec               Codec[*Abi]               = rlpCodec[Abi, *Abi]{}
	AssetIssueCodec        Codec[*AssetIssue]        = rlpCodec[AssetIssue, *AssetIssue]{}
	DelegatedResourceCodec Codec[*DelegatedResource] = rlpCodec[DelegatedResource, *DelegatedResource]{}
	VotesCodec             Codec[*Votes]             = rlpCodec[Votes, *Votes]{}
	WitnessCodec           Codec[*Witness]           = rlpCodec[Witness, *Witness]{}
	// BytesCodec is used by raw kinds: code, dynamic properties and delegation records.
	BytesCodec Codec[[]byte] = bytesCodec{}
)

type copier[E any] interface {
	*E
	Copy() *E
}

type rlpCodec[E any, P copier[E]] struct{}

func (rlpCodec[E, P]) Encode(v P) ([]byte, error) {
	return rlp.EncodeToBytes(v)
}

func (rlpCodec[E, P]) Decode(data []byte) (P, error) {
	var e E
	if err := rlp.DecodeBytes(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (rlpCodec[E, P]) Copy(v P) P {
	if v == nil {
		return nil
	}
	return v.Copy()
}

type bytesCodec struct{}

func (bytesCodec) Encode(v []byte) ([]byte, error)    { return slices.Clone(v), nil }
func (bytesCodec) Decode(data []byte) ([]byte, error) { return slices.Clone(data), nil }
func (bytesCodec) Copy(v []byte) []byte               { return slices.Clone(v) }

// ErrMalformedInt64 is returned when a stored scalar is not 8 bytes long.
var ErrMalformedInt64 = errors.New("malformed int64")

// EncodeInt64 encodes a scalar property as 8 bytes big-endian.
func EncodeInt64(v int64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return b[:]
}

// DecodeInt64 decodes a scalar property encoded by EncodeInt64.
func DecodeInt64(data []byte) (int64, error) {
	if len(data) != 8 {
		return 0, errors.Wrapf(ErrMalformedInt64, "got %d bytes", len(data))
	}
	return int64(binary.BigEndian.Uint64(data)), nil
}
