package rng

// number covers the primitive sample types subject to range remapping.
type number interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// remap applies the shared arity rules to a draw: no bounds uses the
// natural-range draw, one bound mx uses the [0,mx) draw, two bounds
// shift a [0,mx-mn) draw by mn. A zero-width two-bound range
// short-circuits to the lower bound without consuming a draw.
func remap[T number](bounds []T, full func() T, unit func(T) T) T {
	switch len(bounds) {
	case 0:
		return full()
	case 1:
		return unit(bounds[0])
	default:
		span := bounds[1] - bounds[0]
		if span == 0 {
			return bounds[0]
		}
		return bounds[0] + unit(span)
	}
}
