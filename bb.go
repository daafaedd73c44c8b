package sweep

// BB is an axis-aligned bounding box.
type BB struct {
	Min, Max Vector
}

func NewBB(min, max Vector) BB {
	return BB{Min: min, Max: max}
}

// NewBBForExtents returns the box centered on c with the given half extents.
func NewBBForExtents(c, half Vector) BB {
	half = half.Abs()
	return BB{
		Min: c.Sub(half),
		Max: c.Add(half),
	}
}

// Span returns the projection of bb onto a.
func (bb BB) Span(a Axis) (min, max float64) {
	return bb.Min.Axis(a), bb.Max.Axis(a)
}

// Intersects reports whether a and b overlap on the first n axes. Touching edges count.
func (a BB) Intersects(b BB, n int) bool {
	for i := 0; i < n; i++ {
		ax := Axis(i)
		if a.Min.Axis(ax) > b.Max.Axis(ax) || b.Min.Axis(ax) > a.Max.Axis(ax) {
			return false
		}
	}
	return true
}

func (bb BB) Center() Vector {
	return bb.Min.Lerp(bb.Max, 0.5)
}

func (bb BB) HalfExtents() Vector {
	return bb.Max.Sub(bb.Min).Mult(0.5)
}
