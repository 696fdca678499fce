package calculator

// Point is one sample of a graphed program.
type Point struct {
	X, Y float64
	// OK is false when the program had no result or an error at X.
	OK bool
}

// Graph evaluates the stack once for each of xs with the variable name bound
// to it. The previous value of the variable, or its absence, is restored
// afterward.
func (b *Brain) Graph(name string, xs []float64) []Point {
	old, had := b.Lookup(name)
	defer func() {
		if had {
			b.Vars[name] = old
		} else {
			delete(b.Vars, name)
		}
	}()
	pts := make([]Point, len(xs))
	for i, x := range xs {
		b.Set(name, x)
		y, ok, _ := b.Evaluate()
		pts[i] = Point{X: x, Y: y, OK: ok}
	}
	return pts
}

// Span returns n evenly spaced values from lo to hi inclusive. If n is 1, the
// only value is lo. If n is less than 1, the result is nil.
func Span(lo, hi float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = lo
		return xs
	}
	d := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + d*float64(i)
	}
	xs[n-1] = hi
	return xs
}
