// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/tvmstate/tvm"
)

func roundTrip[T any](t *testing.T, codec Codec[T], newValue func() T) {
	f := fuzz.New().NilChance(0).NumElements(1, 4)
	for i := 0; i < 50; i++ {
		v := newValue()
		f.Fuzz(v)

		data, err := codec.Encode(v)
		require.NoError(t, err)
		dec, err := codec.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, v, dec)
		assert.Equal(t, v, codec.Copy(v))
	}
}

func TestCodecRoundTrip(t *testing.T) {
	roundTrip(t, AccountCodec, func() *Account { return &Account{} })
	roundTrip(t, ContractCodec, func() *Contract { return &Contract{} })
	roundTrip(t, AssetIssueCodec, func() *AssetIssue { return &AssetIssue{} })
	roundTrip(t, DelegatedResourceCodec, func() *DelegatedResource { return &DelegatedResource{} })
	roundTrip(t, VotesCodec, func() *Votes { return &Votes{} })
	roundTrip(t, WitnessCodec, func() *Witness { return &Witness{} })
}

func TestCodecDecodeGarbage(t *testing.T) {
	_, err := AccountCodec.Decode([]byte{0x01, 0x02})
	assert.Error(t, err)

	_, err = ContractCodec.Decode(nil)
	assert.Error(t, err)
}

func TestCodecCopyNil(t *testing.T) {
	assert.Nil(t, AccountCodec.Copy(nil))
}

func TestBytesCodec(t *testing.T) {
	src := []byte{1, 2, 3}

	enc, err := BytesCodec.Encode(src)
	require.NoError(t, err)
	dec, err := BytesCodec.Decode(enc)
	require.NoError(t, err)
	cpy := BytesCodec.Copy(src)

	enc[0], dec[0], cpy[0] = 9, 9, 9
	assert.Equal(t, []byte{1, 2, 3}, src)
}

func TestContractCopyIsDeep(t *testing.T) {
	c := &Contract{ABI: []byte("abi"), TrxHash: []byte{1}}
	cpy := c.Copy()
	cpy.ABI[0] = 'x'
	cpy.TrxHash[0] = 2
	assert.Equal(t, "abi", string(c.ABI))
	assert.Equal(t, []byte{1}, c.TrxHash)

	abi := NewAbi(c)
	abi.Entries[0] = 'y'
	assert.Equal(t, "abi", string(c.ABI))

	data, err := AbiCodec.Encode(NewAbi(c))
	require.NoError(t, err)
	decoded, err := AbiCodec.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []byte("abi"), decoded.Entries)
}

func TestDelegatedResourceKey(t *testing.T) {
	from := tvm.BytesToAddress([]byte("from"))
	to := tvm.BytesToAddress([]byte("to"))

	key := DelegatedResourceKey(from, to)
	assert.Len(t, key, 42)
	assert.Equal(t, from[:], key[:21])
	assert.Equal(t, to[:], key[21:])
}

func TestInt64Encoding(t *testing.T) {
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		got, err := DecodeInt64(EncodeInt64(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0x01, 0x00}, EncodeInt64(256))

	for _, data := range [][]byte{nil, {1}, make([]byte, 9)} {
		_, err := DecodeInt64(data)
		assert.True(t, errors.Is(err, ErrMalformedInt64))
	}
}
