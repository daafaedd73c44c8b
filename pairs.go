package sweep

import "fmt"

// InvalidPairHash is returned by HashPair for a tracker paired with itself.
const InvalidPairHash = ^uint64(0)

// HashPair returns a symmetric key for the unordered pair (a, b). Ids are 32 bits
// wide, so the packed key never collides for distinct pairs.
func HashPair(a, b TrackerID) uint64 {
	if a == b {
		return InvalidPairHash
	}
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}

// PairKey is the normalized (low id, high id) key of a pair.
type PairKey struct {
	Lo, Hi TrackerID
}

// NewPairKey returns the key for the unordered pair (a, b). ok is false when a == b.
func NewPairKey(a, b TrackerID) (key PairKey, ok bool) {
	if a == b {
		return PairKey{}, false
	}
	if a > b {
		a, b = b, a
	}
	return PairKey{Lo: a, Hi: b}, true
}

func (key PairKey) Hash() uint64 {
	return HashPair(key.Lo, key.Hi)
}

func (key PairKey) Has(id TrackerID) bool {
	return key.Lo == id || key.Hi == id
}

// Pair is the persistent record of two trackers that have overlapped on the primary axis.
type Pair struct {
	A, B *Tracker

	// Count is the number of non-primary axes that confirmed overlap during the last scan.
	Count int

	// scan stamp of the last primary-axis overlap
	stamp uint64
}

func (pair *Pair) String() string {
	return fmt.Sprintf("Pair %d:%d", pair.A.id, pair.B.id)
}

func (pair *Pair) Key() PairKey {
	key, _ := NewPairKey(pair.A.id, pair.B.id)
	return key
}

// Stamp returns the scan stamp at which the pair last overlapped on the primary axis.
func (pair *Pair) Stamp() uint64 {
	return pair.stamp
}

type PairIterator func(pair *Pair)
type PairFilter func(pair *Pair) bool

// Registry maps unordered tracker pairs to their records.
type Registry struct {
	table map[PairKey]*Pair
}

func NewRegistry() *Registry {
	return &Registry{
		table: map[PairKey]*Pair{},
	}
}

func (reg *Registry) Len() int {
	return len(reg.table)
}

// Get returns the record for (a, b). A missing record is created when create is
// set; otherwise nil is returned. A tracker paired with itself is always a miss.
func (reg *Registry) Get(a, b *Tracker, create bool) *Pair {
	key, ok := NewPairKey(a.id, b.id)
	if !ok {
		return nil
	}

	pair := reg.table[key]
	if pair == nil && create {
		if a.id > b.id {
			a, b = b, a
		}
		pair = &Pair{A: a, B: b}
		reg.table[key] = pair
	}
	return pair
}

func (reg *Registry) Find(key PairKey) *Pair {
	return reg.table[key]
}

func (reg *Registry) Remove(key PairKey) *Pair {
	pair := reg.table[key]
	if pair != nil {
		delete(reg.table, key)
	}
	return pair
}

func (reg *Registry) Each(f PairIterator) {
	for _, pair := range reg.table {
		f(pair)
	}
}

// Filter keeps the records for which f returns true and drops the rest.
func (reg *Registry) Filter(f PairFilter) int {
	dropped := 0
	for key, pair := range reg.table {
		if !f(pair) {
			delete(reg.table, key)
			dropped++
		}
	}
	return dropped
}

// Evict drops every record that references id and returns how many were dropped.
func (reg *Registry) Evict(id TrackerID) int {
	return reg.Filter(func(pair *Pair) bool {
		return pair.A.id != id && pair.B.id != id
	})
}
