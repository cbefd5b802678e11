// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expansion

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSub(t *testing.T) {
	for _, test := range []struct {
		e, f Expansion
		want Expansion
	}{
		{Expansion{1}, Expansion{1}, Expansion{0}},
		{Expansion{1}, Expansion{0}, Expansion{1}},
		{Expansion{0}, Expansion{1}, Expansion{-1}},
		{Expansion{1, 1e100}, Expansion{1e100}, Expansion{1}},
		// 1 - 2**-53 is the float64 predecessor of 1
		{Expansion{1}, Expansion{0x1p-53}, Expansion{0x1.fffffffffffffp-1}},
		{Expansion{1}, Expansion{0x1p-54}, Expansion{-0x1p-54, 1}},
		{Expansion{1, 0x1p53}, Expansion{1, 0x1p53}, Expansion{0}},
		{Expansion{0x1p-60, 1}, Expansion{1}, Expansion{0x1p-60}},
		{Expansion{1}, Expansion{0x1p-60, 1}, Expansion{-0x1p-60}},
		{Expansion{0x1p-60, 1}, Expansion{-0x1p-70, 0x1p60}, Expansion{0x1p-60 + 0x1p-70, 1, -0x1p60}},
		{Expansion{-0x1p-54, 1}, Expansion{0x1p-54}, Expansion{0x1.fffffffffffffp-1}},
		{Expansion{0}, Expansion{0}, Expansion{0}},
		{Expansion{0}, Expansion{0x1p-60, 1}, Expansion{-0x1p-60, -1}},
	} {
		e, f := test.e.Clone(), test.f.Clone()
		got := Sub(test.e, test.f)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Sub(%v, %v) mismatch (-want +got):\n%s", test.e, test.f, diff)
		}
		if diff := cmp.Diff(e, test.e); diff != "" {
			t.Errorf("Sub modified e (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(f, test.f); diff != "" {
			t.Errorf("Sub modified f (-want +got):\n%s", diff)
		}
	}
}

func TestAdd(t *testing.T) {
	for _, test := range []struct {
		e, f Expansion
		want Expansion
	}{
		{Expansion{1}, Expansion{-1}, Expansion{0}},
		{Expansion{1}, Expansion{0x1p-54}, Expansion{0x1p-54, 1}},
		{Expansion{1}, Expansion{2}, Expansion{3}},
		{Expansion{0x1p-60, 1}, Expansion{-1}, Expansion{0x1p-60}},
		{Expansion{1, 1e100}, Expansion{-1e100}, Expansion{1}},
		{Expansion{0}, Expansion{0x1p-60, 1}, Expansion{0x1p-60, 1}},
	} {
		got := Add(test.e, test.f)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Add(%v, %v) mismatch (-want +got):\n%s", test.e, test.f, diff)
		}
	}
}

func TestSubNoAlias(t *testing.T) {
	e := Expansion{0x1p-60, 1}
	f := Expansion{0x1p-30}
	g := Sub(e, f)
	require.Len(t, g, cap(g))
	g[0] = 42
	require.Equal(t, Expansion{0x1p-60, 1}, e)
	require.Equal(t, Expansion{0x1p-30}, f)
}

func TestSubProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		e := rndExpansion(t, rng, 1+rng.Intn(12))
		f := rndExpansion(t, rng, 1+rng.Intn(12))
		msg := fmt.Sprintf("e = %v, f = %v", e, f)

		// exactness, nonoverlapping, ordering and no interior zeros
		g := Sub(e, f)
		want := new(big.Rat).Sub(e.Rat(), f.Rat())
		requireExpansion(t, g, want, msg)
		require.LessOrEqual(t, len(g), len(e)+len(f), msg)

		// anti-symmetry
		requireExpansion(t, Sub(f, e).Neg(), want, msg)

		// self-cancellation
		require.Equal(t, Expansion{0}, Sub(e, e), msg)

		// identity
		requireExpansion(t, Sub(e, New(0)), e.Rat(), msg)

		// canonical zero, with differently ordered operations
		require.Equal(t, Expansion{0}, Sub(Add(e, f), Add(f, e)), msg)

		// Add and Sub agree
		requireExpansion(t, Add(e, f.Neg()), want, msg)
		requireExpansion(t, Add(e, f), new(big.Rat).Add(e.Rat(), f.Rat()), msg)
	}
}

func TestSubStress(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := New(0)
	sum := new(big.Rat)
	for i := 0; i < 1000; i++ {
		x := rng.Float64() * math.Pow(2, rng.Float64()*1000)
		s = Sub(s, New(x))
		sum.Sub(sum, rat(x))
		requireExpansion(t, s, sum, "step %d: %v", i, s)
	}
}

func BenchmarkSub(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 4, 16, 64} {
		e := rndExpansion(b, rng, n)
		f := rndExpansion(b, rng, n)
		b.Run(fmt.Sprintf("%d+%d", len(e), len(f)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Sub(e, f)
			}
		})
	}
}
