package u384

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/vmint/arith"
)

func TestCanonical(t *testing.T) {
	zero, err := FromBEBytes([]byte{})
	require.NoError(t, err)
	require.True(t, zero.IsZero())
	require.True(t, zero.Eq(Zero()))
	require.False(t, zero.IsOne())

	one, err := FromBEBytes([]byte{0x01})
	require.NoError(t, err)
	require.True(t, one.IsOne())
	require.False(t, one.IsZero())

	// One in a higher limb is not one.
	high, err := FromLimbs(arith.Uint{}, arith.NewUint(1), arith.Uint{}, arith.Uint{})
	require.NoError(t, err)
	require.False(t, high.IsOne())
	require.False(t, high.IsZero())
}

func TestFromBEBytes(t *testing.T) {
	type TC struct {
		name  string
		data  []byte
		limbs [Limbs]uint64
		Mark  error
	}

	tcs := []TC{
		{
			name: "1 byte",
			data: []byte{0x07},
			limbs: [Limbs]uint64{
				0x07, 0, 0, 0,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "12 bytes",
			data: []byte{
				0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x04,
				0x05, 0x06, 0x07, 0x08,
			},
			limbs: [Limbs]uint64{
				0x0102030405060708, 0, 0, 0,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "13 bytes",
			data: []byte{
				0x09,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x01,
			},
			limbs: [Limbs]uint64{
				0x01, 0x09, 0, 0,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "37 bytes",
			data: append(
				[]byte{0xaa},
				append(make([]byte, 35), 0xbb)...,
			),
			limbs: [Limbs]uint64{
				0xbb, 0, 0, 0xaa,
			},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			u, err := FromBEBytes(tc.data)
			require.NoError(t, err, tc.Mark)

			limbs := u.Limbs()
			for j := range limbs {
				require.True(t, limbs[j].Eq(arith.NewUint(tc.limbs[j])), "%s", spew.Sdump(limbs))
			}

			require.Equal(t, 0, new(big.Int).SetBytes(tc.data).Cmp(u.Big()), tc.Mark)
		})
	}

	t.Run("too long", func(t *testing.T) {
		_, err := FromBEBytes(make([]byte, MaxBytes+1))
		require.True(t, arith.ValueError.Has(err), "%+v", err)
	})
}

func TestRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(384))

	for length := 0; length <= MaxBytes; length++ {
		t.Run(fmt.Sprintf("len=%d", length), func(t *testing.T) {
			for n := 0; n < 16; n++ {
				data := make([]byte, length)
				rng.Read(data)

				u, err := FromBEBytes(data)
				require.NoError(t, err)

				out, err := u.ToBEBytes(length)
				require.NoError(t, err)
				require.Equal(t, data, out)

				out, err = u.TruncatedBEBytes(length)
				require.NoError(t, err)
				require.Equal(t, data, out)
			}
		})
	}
}

func TestToBEBytes(t *testing.T) {
	u, err := FromLimbs(arith.NewUint(1), arith.Uint{}, arith.Uint{}, arith.NewUint(0xff))
	require.NoError(t, err)

	full, err := u.ToBEBytes(MaxBytes)
	require.NoError(t, err)
	require.Equal(t, byte(0xff), full[LimbBytes-1])
	require.Equal(t, byte(0x01), full[MaxBytes-1])

	t.Run("too short", func(t *testing.T) {
		_, err := u.ToBEBytes(36)
		require.True(t, arith.OverflowError.Has(err), "%+v", err)

		out, err := u.TruncatedBEBytes(36)
		require.NoError(t, err)
		require.Equal(t, append(make([]byte, 35), 0x01), out)
	})

	t.Run("padding", func(t *testing.T) {
		out, err := One().ToBEBytes(5)
		require.NoError(t, err)
		require.Equal(t, []byte{0, 0, 0, 0, 1}, out)

		out, err = Zero().ToBEBytes(0)
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("bad length", func(t *testing.T) {
		_, err := u.ToBEBytes(MaxBytes + 1)
		require.True(t, arith.ValueError.Has(err), "%+v", err)

		_, err = u.TruncatedBEBytes(-1)
		require.True(t, arith.ValueError.Has(err), "%+v", err)
	})
}

func TestFromLimbs(t *testing.T) {
	limit := arith.MustUint(new(big.Int).Lsh(big.NewInt(1), LimbBits))

	_, err := FromLimbs(limit, arith.Uint{}, arith.Uint{}, arith.Uint{})
	require.True(t, arith.ValueError.Has(err), "%+v", err)

	_, err = FromLimbs(arith.Uint{}, arith.Uint{}, arith.Uint{}, limit)
	require.True(t, arith.ValueError.Has(err), "%+v", err)
}

func TestBig(t *testing.T) {
	top := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 384), big.NewInt(1))

	u, err := FromBig(top)
	require.NoError(t, err)
	require.Equal(t, 0, top.Cmp(u.Big()))
	require.Equal(t, top.String(), u.String())

	_, err = FromBig(new(big.Int).Add(top, big.NewInt(1)))
	require.True(t, arith.ValueError.Has(err))

	_, err = FromBig(big.NewInt(-1))
	require.True(t, arith.ValueError.Has(err))

	require.Equal(t, 1, u.Cmp(One()))
	require.Equal(t, -1, Zero().Cmp(One()))
	require.Equal(t, 0, u.Cmp(u))
}

func TestMarshalUnmarshal(t *testing.T) {
	u, err := FromBig(big.NewInt(0x1234))
	require.NoError(t, err)

	data, err := u.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, MaxBytes)

	var v U384
	require.NoError(t, v.UnmarshalBinary(data))
	require.True(t, u.Eq(v))
}
