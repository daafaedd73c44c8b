package sweep

import (
	"fmt"
	"math"
)

// TrackerID identifies a tracker for the lifetime of a BroadPhase. Ids are never reused.
type TrackerID uint32

// IDAllocator hands out tracker ids.
type IDAllocator interface {
	Next() (TrackerID, error)
}

// Counter is the default IDAllocator: ids start at 1 and increase up to Limit.
type Counter struct {
	last  TrackerID
	Limit TrackerID
}

func NewCounter(limit uint32) *Counter {
	return &Counter{Limit: TrackerID(limit)}
}

func (c *Counter) Next() (TrackerID, error) {
	if c.last >= c.Limit {
		return 0, fmt.Errorf("%w: limit %d", ErrIDCapacity, c.Limit)
	}
	c.last++
	return c.last, nil
}

// Issued returns how many ids have been handed out.
func (c *Counter) Issued() uint32 {
	return uint32(c.last)
}

// Bound is one end of a tracker's interval on one axis.
type Bound struct {
	IsMax   bool
	Value   float64
	Tracker *Tracker
}

// before reports whether b sorts ahead of other. At equal values a min bound
// goes first so that touching intervals overlap.
func (b *Bound) before(other *Bound) bool {
	if b.Value != other.Value {
		return b.Value < other.Value
	}
	return !b.IsMax && other.IsMax
}

// Tracker wraps a body with its per-axis intervals.
type Tracker struct {
	id   TrackerID
	body Body

	// bounds[axis][0] is the min bound, bounds[axis][1] the max bound.
	bounds [MaxAxes][2]Bound
}

func newTracker(id TrackerID, body Body) *Tracker {
	tr := &Tracker{id: id, body: body}
	for a := range tr.bounds {
		tr.bounds[a][0] = Bound{IsMax: false, Tracker: tr}
		tr.bounds[a][1] = Bound{IsMax: true, Tracker: tr}
	}
	return tr
}

func (tr *Tracker) String() string {
	return fmt.Sprint("Tracker ", tr.id)
}

func (tr *Tracker) ID() TrackerID {
	return tr.id
}

func (tr *Tracker) Body() Body {
	return tr.body
}

// Interval returns the tracker's current [min, max] on a.
func (tr *Tracker) Interval(a Axis) (min, max float64) {
	return tr.bounds[a][0].Value, tr.bounds[a][1].Value
}

func (tr *Tracker) MinBound(a Axis) *Bound {
	return &tr.bounds[a][0]
}

func (tr *Tracker) MaxBound(a Axis) *Bound {
	return &tr.bounds[a][1]
}

// Update recomputes the first n axis intervals from the body's position and half extents.
func (tr *Tracker) Update(n int) {
	p := tr.body.Position()
	half := tr.body.HalfExtents()
	for i := 0; i < n; i++ {
		a := Axis(i)
		c, h := p.Axis(a), math.Abs(half.Axis(a))
		tr.bounds[a][0].Value = c - h
		tr.bounds[a][1].Value = c + h
	}
}
