package fp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func randVector(tb testing.TB, seed byte, n int) Vector {
	rng := newChachaStream(tb, seed)
	v := make(Vector, n)
	for i := range v {
		v[i] = MustRandom(rng)
	}
	return v
}

// lengths on both sides of parallelThreshold, so both code paths run
var vectorLengths = []int{0, 1, 3, parallelThreshold - 1, parallelThreshold, 4 * parallelThreshold}

func TestVectorElementWise(t *testing.T) {
	for _, n := range vectorLengths {
		v := randVector(t, 50, n)
		w := randVector(t, 51, n)

		sum := v.Add(w)
		diff := v.Sub(w)
		prod := v.Mul(w)
		require.Len(t, sum, n)
		for i := 0; i < n; i++ {
			require.True(t, sum[i].Equal(v[i].Add(w[i])))
			require.True(t, diff[i].Equal(v[i].Sub(w[i])))
			require.True(t, prod[i].Equal(v[i].Mul(w[i])))
		}
	}
}

func TestVectorScalarMul(t *testing.T) {
	s := Element{}.SetUint64(3)
	nc, ok := nonCanonical(s)
	require.True(t, ok)

	for _, n := range vectorLengths {
		v := randVector(t, 52, n)
		scaled := v.ScalarMul(s)
		scaledNC := v.ScalarMul(nc) // the scalar is canonicalized once
		for i := 0; i < n; i++ {
			require.True(t, scaled[i].Equal(v[i].Mul(s)))
			require.True(t, scaledNC[i].Equal(scaled[i]))
		}
	}
}

func TestVectorSumProduct(t *testing.T) {
	require.True(t, Vector{}.Sum().IsZero())
	require.True(t, Vector{}.Product().IsOne())

	for _, n := range vectorLengths {
		v := randVector(t, 53, n)
		wantSum := Sum(v...)
		wantProd := Product(v...)
		require.True(t, v.Sum().Equal(wantSum), "len %d", n)
		require.True(t, v.Product().Equal(wantProd), "len %d", n)
	}
}

func TestVectorInnerProduct(t *testing.T) {
	for _, n := range vectorLengths {
		v := randVector(t, 54, n)
		w := randVector(t, 55, n)

		want := Zero()
		for i := 0; i < n; i++ {
			want = want.Add(v[i].Mul(w[i]))
		}
		require.True(t, v.InnerProduct(w).Equal(want), "len %d", n)
	}
}

func TestVectorLengthMismatch(t *testing.T) {
	v := make(Vector, 3)
	w := make(Vector, 4)
	require.Panics(t, func() { v.Add(w) })
	require.Panics(t, func() { v.Sub(w) })
	require.Panics(t, func() { v.Mul(w) })
	require.Panics(t, func() { v.InnerProduct(w) })
}
