package sweep

import (
	"errors"
	"slices"

	"go.uber.org/zap"
)

// PostStepFunc runs once the current step has finished.
type PostStepFunc func(bp *BroadPhase)

// BroadPhase is a sweep-and-prune broad phase. Each Step updates every tracked
// interval, re-sorts the axis lists and sweeps them for overlapping pairs.
//
// A BroadPhase is not safe for concurrent use. The owning simulation loop must
// not move bodies while Step runs.
type BroadPhase struct {
	cfg       Config
	log       *zap.Logger
	publisher Publisher
	ids       IDAllocator

	trackers []*Tracker
	axes     []*AxisList
	registry *Registry
	scanner  *Scanner

	candidates []Candidate

	stamp  uint64
	locked bool

	postStepCallbacks []PostStepFunc
}

type Option func(bp *BroadPhase)

func WithLogger(log *zap.Logger) Option {
	return func(bp *BroadPhase) {
		bp.log = log
	}
}

func WithPublisher(p Publisher) Option {
	return func(bp *BroadPhase) {
		bp.publisher = p
	}
}

// WithIDAllocator replaces the default Counter. Config.MaxTrackers is not applied to it.
func WithIDAllocator(ids IDAllocator) Option {
	return func(bp *BroadPhase) {
		bp.ids = ids
	}
}

func New(cfg Config, opts ...Option) (*BroadPhase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bp := &BroadPhase{
		cfg:      cfg,
		log:      zap.NewNop(),
		registry: NewRegistry(),
		scanner:  NewScanner(),
	}
	for _, opt := range opts {
		opt(bp)
	}
	if bp.ids == nil {
		bp.ids = NewCounter(cfg.MaxTrackers)
	}

	bp.axes = make([]*AxisList, cfg.Axes)
	for i := range bp.axes {
		bp.axes[i] = NewAxisList(Axis(i))
	}
	return bp, nil
}

func (bp *BroadPhase) Config() Config {
	return bp.cfg
}

// Count returns the number of tracked bodies.
func (bp *BroadPhase) Count() int {
	return len(bp.trackers)
}

func (bp *BroadPhase) Trackers() []*Tracker {
	return bp.trackers
}

func (bp *BroadPhase) Axes() []*AxisList {
	return bp.axes
}

func (bp *BroadPhase) Registry() *Registry {
	return bp.registry
}

// Stamp returns the number of steps taken.
func (bp *BroadPhase) Stamp() uint64 {
	return bp.stamp
}

// Candidates returns the candidates of the last step. The slice is reused by the next step.
func (bp *BroadPhase) Candidates() []Candidate {
	return bp.candidates
}

func (bp *BroadPhase) IsLocked() bool {
	return bp.locked
}

// AddPostStepCallback schedules f to run after the current step, or runs it now if no step is running.
func (bp *BroadPhase) AddPostStepCallback(f PostStepFunc) {
	if !bp.locked {
		f(bp)
		return
	}
	bp.postStepCallbacks = append(bp.postStepCallbacks, f)
}

func (bp *BroadPhase) find(body Body) int {
	for i, tr := range bp.trackers {
		if tr.body == body {
			return i
		}
	}
	return -1
}

// Tracker returns the tracker for body, or nil if it is not tracked.
func (bp *BroadPhase) Tracker(body Body) *Tracker {
	if i := bp.find(body); i != -1 {
		return bp.trackers[i]
	}
	return nil
}

// OnBodyAdded starts tracking body. Its bounds are sorted into place by the next step.
// Adding a body that is already tracked returns its tracker. Called during a step,
// the add is deferred until the step ends and a nil tracker is returned.
func (bp *BroadPhase) OnBodyAdded(body Body) (*Tracker, error) {
	if bp.locked {
		bp.AddPostStepCallback(func(bp *BroadPhase) {
			if _, err := bp.OnBodyAdded(body); err != nil {
				bp.log.Warn("deferred body add failed", zap.Error(err))
			}
		})
		return nil, nil
	}

	if tr := bp.Tracker(body); tr != nil {
		return tr, nil
	}

	id, err := bp.ids.Next()
	if err != nil {
		if errors.Is(err, ErrIDCapacity) {
			bp.log.Warn("tracker id capacity exhausted",
				zap.Int("tracked", len(bp.trackers)),
				zap.Uint32("max_trackers", bp.cfg.MaxTrackers))
		}
		return nil, err
	}

	tr := newTracker(id, body)
	tr.Update(bp.cfg.Axes)
	bp.trackers = append(bp.trackers, tr)
	for _, list := range bp.axes {
		list.Append(tr)
	}

	bp.log.Debug("body added", zap.Uint32("tracker", uint32(id)), zap.Int("tracked", len(bp.trackers)))
	return tr, nil
}

// OnBodyRemoved stops tracking body and drops every pair record that references it.
// It reports whether the body was tracked. Called during a step, the removal is
// deferred until the step ends and true is returned.
func (bp *BroadPhase) OnBodyRemoved(body Body) bool {
	if bp.locked {
		bp.AddPostStepCallback(func(bp *BroadPhase) {
			bp.OnBodyRemoved(body)
		})
		return true
	}

	i := bp.find(body)
	if i == -1 {
		return false
	}

	tr := bp.trackers[i]
	bp.trackers = slices.Delete(bp.trackers, i, i+1)
	for _, list := range bp.axes {
		list.Remove(tr)
	}
	evicted := bp.registry.Evict(tr.id)

	bp.log.Debug("body removed",
		zap.Uint32("tracker", uint32(tr.id)),
		zap.Int("evicted_pairs", evicted),
		zap.Int("tracked", len(bp.trackers)))
	return true
}

// Step runs one update, sort and scan pass and returns the candidate pairs.
// Non-empty candidate lists are published on the configured channel.
func (bp *BroadPhase) Step(dt float64) ([]Candidate, error) {
	if bp.locked {
		return nil, ErrStepInProgress
	}
	bp.locked = true
	defer bp.unlock()

	bp.stamp++
	n := bp.cfg.Axes

	for _, tr := range bp.trackers {
		tr.Update(n)
	}

	shifts := 0
	for _, list := range bp.axes {
		shifts += list.Sort()
	}

	pairs := bp.scanner.Scan(bp.axes, bp.registry, bp.stamp)

	clear(bp.candidates)
	bp.candidates = bp.candidates[:0]
	for _, pair := range pairs {
		bp.candidates = append(bp.candidates, Candidate{A: pair.A.body, B: pair.B.body})
	}

	dropped := bp.registry.Filter(bp.pairFilter)

	bp.log.Debug("step",
		zap.Uint64("stamp", bp.stamp),
		zap.Float64("dt", dt),
		zap.Int("tracked", len(bp.trackers)),
		zap.Int("shifts", shifts),
		zap.Int("pairs", bp.registry.Len()),
		zap.Int("dropped_pairs", dropped),
		zap.Int("candidates", len(bp.candidates)))

	if len(bp.candidates) > 0 && bp.publisher != nil {
		bp.publisher.Publish(bp.cfg.Channel, bp.candidates)
	}

	return bp.candidates, nil
}

// pairFilter throws away records that have not overlapped on the primary axis
// for more than PairPersistence steps.
func (bp *BroadPhase) pairFilter(pair *Pair) bool {
	return bp.stamp-pair.stamp <= bp.cfg.PairPersistence
}

func (bp *BroadPhase) unlock() {
	bp.locked = false

	for len(bp.postStepCallbacks) > 0 {
		callbacks := bp.postStepCallbacks
		bp.postStepCallbacks = nil
		for _, f := range callbacks {
			f(bp)
		}
	}
}
