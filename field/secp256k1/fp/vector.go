package fp

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Vector is a slice of field elements with element-wise and folding
// operations. The trace systems consuming this field evaluate whole columns
// of values row by row; vector operations above parallelThreshold fan out
// across all CPUs, which is safe because elements are independent values.
type Vector []Element

// parallelThreshold is the vector length below which operations stay
// sequential; goroutine fan-out costs more than it saves on short vectors.
const parallelThreshold = 512

// parallelRange runs work over [0, n) in contiguous chunks, one goroutine
// per CPU for large n, inline otherwise.
func parallelRange(n int, work func(start, end int)) {
	if n < parallelThreshold {
		work(0, n)
		return
	}
	nbChunks := runtime.NumCPU()
	if nbChunks > n {
		nbChunks = n
	}
	var g errgroup.Group
	for c := 0; c < nbChunks; c++ {
		start := c * n / nbChunks
		end := (c + 1) * n / nbChunks
		g.Go(func() error {
			work(start, end)
			return nil
		})
	}
	_ = g.Wait() // the workers never fail
}

// chunks splits [0, n) into at most NumCPU contiguous pieces and returns
// their bounds.
func chunks(n int) [][2]int {
	nbChunks := runtime.NumCPU()
	if nbChunks > n {
		nbChunks = n
	}
	bounds := make([][2]int, nbChunks)
	for c := 0; c < nbChunks; c++ {
		bounds[c] = [2]int{c * n / nbChunks, (c + 1) * n / nbChunks}
	}
	return bounds
}

func sameLength(op string, a, b Vector) {
	if len(a) != len(b) {
		panic("fp: vector." + op + ": vectors don't have the same length")
	}
}

// Add returns the element-wise sum of v and w. It panics if the lengths
// differ.
func (v Vector) Add(w Vector) Vector {
	sameLength("Add", v, w)
	res := make(Vector, len(v))
	parallelRange(len(v), func(start, end int) {
		for i := start; i < end; i++ {
			res[i] = v[i].Add(w[i])
		}
	})
	return res
}

// Sub returns the element-wise difference of v and w. It panics if the
// lengths differ.
func (v Vector) Sub(w Vector) Vector {
	sameLength("Sub", v, w)
	res := make(Vector, len(v))
	parallelRange(len(v), func(start, end int) {
		for i := start; i < end; i++ {
			res[i] = v[i].Sub(w[i])
		}
	})
	return res
}

// Mul returns the element-wise product of v and w. It panics if the
// lengths differ.
func (v Vector) Mul(w Vector) Vector {
	sameLength("Mul", v, w)
	res := make(Vector, len(v))
	parallelRange(len(v), func(start, end int) {
		for i := start; i < end; i++ {
			res[i] = v[i].Mul(w[i])
		}
	})
	return res
}

// ScalarMul returns v scaled by s.
func (v Vector) ScalarMul(s Element) Vector {
	s = s.Canonical()
	res := make(Vector, len(v))
	parallelRange(len(v), func(start, end int) {
		for i := start; i < end; i++ {
			res[i] = v[i].Mul(s)
		}
	})
	return res
}

// Sum returns the sum of the elements of v; an empty vector sums to ZERO.
func (v Vector) Sum() Element {
	if len(v) < parallelThreshold {
		return Sum(v...)
	}
	bounds := chunks(len(v))
	partials := make([]Element, len(bounds))
	var g errgroup.Group
	for c, b := range bounds {
		g.Go(func() error {
			partials[c] = Sum(v[b[0]:b[1]]...)
			return nil
		})
	}
	_ = g.Wait()
	return Sum(partials...)
}

// Product returns the product of the elements of v; an empty vector
// multiplies to ONE.
func (v Vector) Product() Element {
	if len(v) < parallelThreshold {
		return Product(v...)
	}
	bounds := chunks(len(v))
	partials := make([]Element, len(bounds))
	var g errgroup.Group
	for c, b := range bounds {
		g.Go(func() error {
			partials[c] = Product(v[b[0]:b[1]]...)
			return nil
		})
	}
	_ = g.Wait()
	return Product(partials...)
}

// InnerProduct returns the sum of the element-wise products of v and w. It
// panics if the lengths differ.
func (v Vector) InnerProduct(w Vector) Element {
	sameLength("InnerProduct", v, w)
	inner := func(start, end int) Element {
		acc := Zero()
		for i := start; i < end; i++ {
			acc = acc.Add(v[i].Mul(w[i]))
		}
		return acc
	}
	if len(v) < parallelThreshold {
		return inner(0, len(v))
	}
	bounds := chunks(len(v))
	partials := make([]Element, len(bounds))
	var g errgroup.Group
	for c, b := range bounds {
		g.Go(func() error {
			partials[c] = inner(b[0], b[1])
			return nil
		})
	}
	_ = g.Wait()
	return Sum(partials...)
}
