package sweep

// Scanner sweeps sorted axis lists and collects the pairs that overlap on all of them.
// Its buffers are reused between scans.
type Scanner struct {
	encounters []*Tracker
	candidates []*Pair
}

func NewScanner() *Scanner {
	return &Scanner{}
}

// Threshold is the accumulator value a pair needs to be a candidate when n axes are tracked.
func Threshold(n int) int {
	return n - 1
}

// Scan walks every list in order and returns the candidate pairs. axes[0] is the
// primary axis: pairs overlapping there are created in reg and their counters reset.
// On the other axes only those records are counted. stamp must differ from the
// previous scan's so that records left over from earlier scans are not counted.
//
// The returned slice is reused by the next call.
func (scan *Scanner) Scan(axes []*AxisList, reg *Registry, stamp uint64) []*Pair {
	scan.candidates = scan.candidates[:0]
	threshold := Threshold(len(axes))

	for i, list := range axes {
		primary := i == 0
		scan.encounters = scan.encounters[:0]

		for _, b := range list.bounds {
			tr := b.Tracker
			if !b.IsMax {
				scan.encounters = append(scan.encounters, tr)
				continue
			}

			scan.close(tr)
			for _, other := range scan.encounters {
				if primary {
					pair := reg.Get(tr, other, true)
					pair.Count = 0
					pair.stamp = stamp
					if threshold == 0 {
						scan.candidates = append(scan.candidates, pair)
					}
					continue
				}

				pair := reg.Get(tr, other, false)
				if pair == nil || pair.stamp != stamp {
					continue
				}
				pair.Count++
				if pair.Count == threshold {
					scan.candidates = append(scan.candidates, pair)
				}
			}
		}
	}

	// drop tracker references held by the scratch slice
	for i := range scan.encounters {
		scan.encounters[i] = nil
	}
	scan.encounters = scan.encounters[:0]

	return scan.candidates
}

// close removes tr from the encounter set. Order within the set does not matter.
func (scan *Scanner) close(tr *Tracker) {
	last := len(scan.encounters) - 1
	for i, other := range scan.encounters {
		if other == tr {
			scan.encounters[i] = scan.encounters[last]
			scan.encounters[last] = nil
			scan.encounters = scan.encounters[:last]
			return
		}
	}
}

// Candidates returns the result of the last scan.
func (scan *Scanner) Candidates() []*Pair {
	return scan.candidates
}
