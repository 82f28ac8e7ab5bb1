package ackermann

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ackermann is the classical two-argument recursion.
// Use only with small arguments.
func ackermann(m, n int64) int64 {
	if m == 0 {
		return n + 1
	} else if n == 0 {
		return ackermann(m-1, 1)
	}
	return ackermann(m-1, ackermann(m, n-1))
}

// bigPow returns b^e, with the convention 0^0 = 0 used by Pow.
func bigPow(b, e uint64) *big.Int {
	if b == 0 {
		return new(big.Int)
	}
	x := new(big.Int).SetUint64(b)
	y := new(big.Int).SetUint64(e)
	return x.Exp(x, y, nil)
}

func TestPow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, exp, want string
		}{
			// Zeros
			{"0", "0", "0"},
			{"0", "1", "0"},
			{"0", "2", "0"},
			{"0", pow256, "0"},
			{"7", "0", "1"},
			{pow257, "0", "1"},

			// Ones
			{"1", "0", "1"},
			{"1", "1", "1"},
			{"1", "2", "1"},
			{"1", pow256, "1"},
			{"7", "1", "7"},
			{pow257, "1", pow257},

			// Powers of two
			{"2", "2", "4"},
			{"2", "3", "8"},
			{"2", "10", "1024"},
			{"2", "16", "65536"},
			{"2", "64", pow64},
			{"2", "128", pow128},
			{"2", "255", pow255},
			{"2", "256", pow256},
			{"2", "257", pow257},
			{"4", "64", pow128},
			{pow64, "2", pow128},
			{pow128, "2", pow256},
			{pow64, "4", pow256},

			// Other bases
			{"3", "5", "243"},
			{"3", "27", "7625597484987"},
			{"10", "19", "10000000000000000000"},
			{"10", "20", "100000000000000000000"},
		}
		for _, tt := range tests {
			base, exp := MustParse(tt.base), MustParse(tt.exp)
			got, err := Pow(base, exp)
			require.NoError(t, err, "Pow(%v, %v)", tt.base, tt.exp)
			assert.Equal(t, MustParse(tt.want), got, "Pow(%v, %v)", tt.base, tt.exp)
		}
	})

	t.Run("big", func(t *testing.T) {
		for b := uint64(0); b <= 20; b++ {
			for e := uint64(0); e <= 70; e++ {
				got, err := Pow(New(b), New(e))
				require.NoError(t, err, "Pow(%v, %v)", b, e)
				want := bigPow(b, e)
				assert.Equal(t, want.String(), got.String(), "Pow(%v, %v)", b, e)
			}
		}
	})

	t.Run("repeated multiplication", func(t *testing.T) {
		for _, b := range []uint64{2, 3, 7, 255, 65533} {
			want := one
			for e := uint64(1); e <= 40; e++ {
				want = want.MustMul(New(b))
				got, err := Pow(New(b), New(e))
				require.NoError(t, err, "Pow(%v, %v)", b, e)
				assert.Equal(t, want, got, "Pow(%v, %v)", b, e)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			base, exp string
		}{
			"overflow 1": {"2", pow64},
			"overflow 2": {"2", "1073741824"},
			"overflow 3": {"3", "7625597484987"},
			"overflow 4": {pow256, "5000000"},
			"overflow 5": {"2", pow256},
			"overflow 6": {pow256, pow256},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				base, exp := MustParse(tt.base), MustParse(tt.exp)
				_, err := Pow(base, exp)
				assert.ErrorIs(t, err, ErrOverflow, "Pow(%v, %v)", tt.base, tt.exp)
			})
		}
	})
}

func TestPow_FastSlow(t *testing.T) {
	tests := []struct {
		base, exp string
	}{
		{"2", "2"},
		{"2", "255"},
		{"3", "100"},
		{"65535", "16"},
		{pow64, "3"},
		{pow64, "2"},
	}
	for _, tt := range tests {
		base, exp := MustParse(tt.base), MustParse(tt.exp)
		got, err := powFast(base, exp)
		require.NoError(t, err, "powFast(%v, %v)", tt.base, tt.exp)
		want, err := powSlow(base, exp)
		require.NoError(t, err, "powSlow(%v, %v)", tt.base, tt.exp)
		assert.Equal(t, want, got, "powFast(%v, %v)", tt.base, tt.exp)
	}

	// 2^256 does not fit in 256 bits
	_, err := powFast(two, New(256))
	assert.ErrorIs(t, err, errFintOverflow)
	got, err := powSlow(two, New(256))
	require.NoError(t, err)
	assert.Equal(t, pow256, got.String())
}

func TestHyperOp(t *testing.T) {
	t.Run("successor", func(t *testing.T) {
		exps := []string{"0", "1", "7", maxUint64, pow256m1, pow256}
		bases := []string{"0", "1", "2", "65533", pow257}
		for _, e := range exps {
			want, err := MustParse(e).Succ()
			require.NoError(t, err)
			for _, b := range bases {
				got, err := HyperOp(New(0), MustParse(b), MustParse(e))
				require.NoError(t, err, "HyperOp(0, %v, %v)", b, e)
				assert.Equal(t, want, got, "HyperOp(0, %v, %v)", b, e)
			}
		}
	})

	t.Run("low orders", func(t *testing.T) {
		for b := uint64(0); b <= 12; b++ {
			for e := uint64(0); e <= 12; e++ {
				base, exp := New(b), New(e)

				got, err := HyperOp(New(1), base, exp)
				require.NoError(t, err)
				assert.Equal(t, New(b+e), got, "HyperOp(1, %v, %v)", b, e)

				got, err = HyperOp(New(2), base, exp)
				require.NoError(t, err)
				assert.Equal(t, New(b*e), got, "HyperOp(2, %v, %v)", b, e)

				got, err = HyperOp(New(3), base, exp)
				require.NoError(t, err)
				assert.Equal(t, MustPow(base, exp), got, "HyperOp(3, %v, %v)", b, e)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			order, base, exp, want string
		}{
			// Tetration
			{"4", "2", "0", "1"},
			{"4", "2", "1", "2"},
			{"4", "2", "2", "4"},
			{"4", "2", "3", "16"},
			{"4", "2", "4", "65536"},
			{"4", "3", "2", "27"},
			{"4", "3", "3", "7625597484987"},
			{"4", "5", "1", "5"},
			{"4", "10", "2", "10000000000"},
			{"4", "0", "0", "1"},
			{"4", "0", "1", "0"},
			{"4", "0", "2", "0"},
			{"4", "0", "3", "0"},
			{"4", "1", "0", "1"},
			{"4", "1", "7", "1"},
			{"4", "1", pow256, "1"},

			// Pentation
			{"5", "2", "0", "1"},
			{"5", "2", "1", "2"},
			{"5", "2", "2", "4"},
			{"5", "2", "3", "65536"},
			{"5", "3", "2", "7625597484987"},
			{"5", "0", "2", "1"},

			// Higher orders
			{"6", "2", "2", "4"},
			{"10", "2", "2", "4"},
			{"10", "7", "1", "7"},
			{"10", "7", "0", "1"},
			{pow256, "2", "0", "1"},
			{pow256, "2", "1", "2"},
			{pow256, "1", "7", "1"},
		}
		for _, tt := range tests {
			order, base, exp := MustParse(tt.order), MustParse(tt.base), MustParse(tt.exp)
			got, err := HyperOp(order, base, exp)
			require.NoError(t, err, "HyperOp(%v, %v, %v)", tt.order, tt.base, tt.exp)
			assert.Equal(t, MustParse(tt.want), got, "HyperOp(%v, %v, %v)", tt.order, tt.base, tt.exp)
		}
	})

	t.Run("zero exponent", func(t *testing.T) {
		orders := []string{"4", "5", "6", "100", maxUint64, pow256}
		bases := []string{"0", "1", "2", "65533", pow257}
		for _, o := range orders {
			for _, b := range bases {
				got, err := HyperOp(MustParse(o), MustParse(b), New(0))
				require.NoError(t, err, "HyperOp(%v, %v, 0)", o, b)
				assert.Equal(t, one, got, "HyperOp(%v, %v, 0)", o, b)
			}
		}
	})

	t.Run("deep order", func(t *testing.T) {
		// 2 ↑ⁿ 2 = 4 for every n >= 1, one frame per order
		got, err := HyperOp(New(100_000), two, two)
		require.NoError(t, err)
		assert.Equal(t, New(4), got)
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			order, base, exp string
		}{
			"overflow 1": {"3", "2", pow64},
			"overflow 2": {"4", "2", "6"},
			"overflow 3": {"4", "3", "4"},
			"overflow 4": {"4", "2", pow256},
			"overflow 5": {"5", "2", "4"},
			"overflow 6": {"6", "2", "3"},
			"overflow 7": {"6", "3", "3"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				order, base, exp := MustParse(tt.order), MustParse(tt.base), MustParse(tt.exp)
				_, err := HyperOp(order, base, exp)
				assert.ErrorIs(t, err, ErrOverflow, "HyperOp(%v, %v, %v)", tt.order, tt.base, tt.exp)
			})
		}
	})
}

func TestA(t *testing.T) {
	t.Run("closed forms", func(t *testing.T) {
		for n := uint64(0); n <= 60; n++ {
			got, err := A(New(0), New(n))
			require.NoError(t, err)
			assert.Equal(t, New(n+1), got, "A(0, %v)", n)

			got, err = A(New(1), New(n))
			require.NoError(t, err)
			assert.Equal(t, New(n+2), got, "A(1, %v)", n)

			got, err = A(New(2), New(n))
			require.NoError(t, err)
			assert.Equal(t, New(2*n+3), got, "A(2, %v)", n)

			got, err = A(New(3), New(n))
			require.NoError(t, err)
			want := new(big.Int).Lsh(big.NewInt(1), uint(n+3))
			want.Sub(want, big.NewInt(3))
			assert.Equal(t, want.String(), got.String(), "A(3, %v)", n)
		}
	})

	t.Run("recursion", func(t *testing.T) {
		for m := int64(0); m <= 3; m++ {
			for n := int64(0); n <= 6; n++ {
				got, err := A(MustNewFromInt64(m), MustNewFromInt64(n))
				require.NoError(t, err)
				want := ackermann(m, n)
				assert.Equal(t, MustNewFromInt64(want), got, "A(%v, %v)", m, n)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m, n, want string
		}{
			{"0", "0", "1"},
			{"0", pow256m1, pow256},
			{"0", pow256, pow256p1},
			{"1", pow256, "115792089237316195423570985008687907853269984665640564039457584007913129639938"},
			{"2", "2", "7"},
			{"3", "3", "61"},
			{"3", "10", "8189"},
			{"3", "253", "115792089237316195423570985008687907853269984665640564039457584007913129639933"},
			{"4", "0", "13"},
			{"4", "1", "65533"},
			{"5", "0", "65533"},
		}
		for _, tt := range tests {
			m, n := MustParse(tt.m), MustParse(tt.n)
			got, err := A(m, n)
			require.NoError(t, err, "A(%v, %v)", tt.m, tt.n)
			assert.Equal(t, MustParse(tt.want), got, "A(%v, %v)", tt.m, tt.n)
		}
	})

	t.Run("A(4, 2)", func(t *testing.T) {
		got, err := A(New(4), New(2))
		require.NoError(t, err)
		want := new(big.Int).Lsh(big.NewInt(1), 65536)
		want.Sub(want, big.NewInt(3))
		assert.Equal(t, 0, got.BigInt().Cmp(want))

		s := got.String()
		assert.Len(t, s, 19729)
		assert.True(t, strings.HasPrefix(s, "20035299304068464649"))
		assert.True(t, strings.HasSuffix(s, "45587895905719156733"))
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			m, n string
		}{
			"overflow 1": {"4", "3"},
			"overflow 2": {"4", pow256},
			"overflow 3": {"5", "1"},
			"overflow 4": {"6", "0"},
			"overflow 5": {"3", pow64},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				m, n := MustParse(tt.m), MustParse(tt.n)
				_, err := A(m, n)
				assert.ErrorIs(t, err, ErrOverflow, "A(%v, %v)", tt.m, tt.n)
				assert.False(t, errors.Is(err, ErrUnderflow))
			})
		}
	})
}

func TestMustA(t *testing.T) {
	assert.Equal(t, New(61), MustA(New(3), New(3)))
	assert.Panics(t, func() { MustA(New(4), New(3)) })
}

func TestMustHyperOp(t *testing.T) {
	assert.Equal(t, New(16), MustHyperOp(New(4), two, three))
	assert.Panics(t, func() { MustHyperOp(New(4), two, New(6)) })
}

func TestMustPow(t *testing.T) {
	assert.Equal(t, New(8), MustPow(two, three))
	assert.Panics(t, func() { MustPow(two, MustParse(pow64)) })
}

func FuzzPow(f *testing.F) {
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(2), uint64(255))
	f.Add(uint64(2), uint64(256))
	f.Add(uint64(3), uint64(1000))
	f.Add(uint64(65533), uint64(65))

	f.Fuzz(
		func(t *testing.T, b, e uint64) {
			if e > 2000 {
				t.Skip()
				return
			}
			got, err := Pow(New(b), New(e))
			if err != nil {
				t.Errorf("Pow(%v, %v) failed: %v", b, e, err)
				return
			}
			want := bigPow(b, e)
			if got.BigInt().Cmp(want) != 0 {
				t.Errorf("Pow(%v, %v) = %v, want %v", b, e, got, want)
			}
		},
	)
}

func FuzzA(f *testing.F) {
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(3), uint64(3))
	f.Add(uint64(3), uint64(300))

	f.Fuzz(
		func(t *testing.T, m, n uint64) {
			if m > 3 || n > 5000 {
				t.Skip()
				return
			}
			got, err := A(New(m), New(n))
			if err != nil {
				t.Errorf("A(%v, %v) failed: %v", m, n, err)
				return
			}
			var want *big.Int
			switch m {
			case 0:
				want = new(big.Int).SetUint64(n + 1)
			case 1:
				want = new(big.Int).SetUint64(n + 2)
			case 2:
				want = new(big.Int).SetUint64(2*n + 3)
			default:
				want = new(big.Int).Lsh(big.NewInt(1), uint(n+3))
				want.Sub(want, big.NewInt(3))
			}
			if got.BigInt().Cmp(want) != 0 {
				t.Errorf("A(%v, %v) = %v, want %v", m, n, got, want)
			}
		},
	)
}

func BenchmarkPow(b *testing.B) {
	tests := []struct {
		base, exp string
	}{
		{"3", "100"},
		{"2", "65536"},
		{"65533", "10000"},
	}
	for _, tt := range tests {
		base, exp := MustParse(tt.base), MustParse(tt.exp)
		b.Run(tt.base+"^"+tt.exp, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, err := Pow(base, exp)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkA(b *testing.B) {
	tests := []struct {
		m, n string
	}{
		{"3", "12"},
		{"4", "1"},
		{"4", "2"},
		{"5", "0"},
	}
	for _, tt := range tests {
		m, n := MustParse(tt.m), MustParse(tt.n)
		b.Run("A("+tt.m+","+tt.n+")", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, err := A(m, n)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
