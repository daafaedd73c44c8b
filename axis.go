package sweep

// AxisList holds every bound of every tracker for one axis. Sort keeps it
// ascending; between sorts, appended bounds may be out of place.
type AxisList struct {
	axis   Axis
	bounds []*Bound
}

func NewAxisList(axis Axis) *AxisList {
	return &AxisList{axis: axis}
}

func (list *AxisList) Axis() Axis {
	return list.axis
}

func (list *AxisList) Len() int {
	return len(list.bounds)
}

func (list *AxisList) At(i int) *Bound {
	return list.bounds[i]
}

// Append adds both of tr's bounds to the end of the list.
func (list *AxisList) Append(tr *Tracker) {
	list.bounds = append(list.bounds, tr.MinBound(list.axis), tr.MaxBound(list.axis))
}

// Remove deletes tr's bounds from the list, keeping the order of the rest.
func (list *AxisList) Remove(tr *Tracker) bool {
	n := 0
	for _, b := range list.bounds {
		if b.Tracker != tr {
			list.bounds[n] = b
			n++
		}
	}
	for i := n; i < len(list.bounds); i++ {
		list.bounds[i] = nil
	}
	removed := n != len(list.bounds)
	list.bounds = list.bounds[:n]
	return removed
}

// Sort orders the list with an insertion sort and returns how many bounds were shifted.
// Bodies move little between steps, so the list is nearly sorted and this is close to linear.
func (list *AxisList) Sort() int {
	shifts := 0
	bounds := list.bounds
	for i := 1; i < len(bounds); i++ {
		b := bounds[i]
		j := i - 1
		for j >= 0 && b.before(bounds[j]) {
			bounds[j+1] = bounds[j]
			j--
			shifts++
		}
		bounds[j+1] = b
	}
	return shifts
}

// Sorted reports whether the list is in scan order.
func (list *AxisList) Sorted() bool {
	for i := 1; i < len(list.bounds); i++ {
		if list.bounds[i].before(list.bounds[i-1]) {
			return false
		}
	}
	return true
}
