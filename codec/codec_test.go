// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albatross-go/staking/codec"
)

func TestRoundTrip(t *testing.T) {
	w := codec.NewWriter()
	w.WriteUint32(42)
	w.WriteUint64(1 << 40)
	w.WriteBool(true)
	w.WriteBytes([]byte{1, 2, 3})
	w.WriteLengthPrefixed([]byte("hello"))

	r := codec.NewReader(w.Bytes())

	u32, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), u32)

	u64, err := r.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<40), u64)

	b, err := r.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)

	raw, err := r.ReadBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, raw)

	lp, err := r.ReadLengthPrefixed()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(lp))
}

func TestReadTruncated(t *testing.T) {
	r := codec.NewReader([]byte{0, 0})
	_, err := r.ReadUint32()
	assert.ErrorIs(t, err, codec.ErrTruncated)
}
