package cli

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jakecoffman/sweep"
	"github.com/jakecoffman/sweep/internal/scene"
)

// SimOptions are the flags shared by run and check.
type SimOptions struct {
	Scene string
	Steps int
	DT    float64
}

// Pair names two bodies in lexical order.
type Pair [2]string

// StepResult is what a command reports for one step.
type StepResult struct {
	Step    int    `json:"step"`
	Pairs   []Pair `json:"pairs"`
	Missing []Pair `json:"missing,omitempty"`
	Extra   []Pair `json:"extra,omitempty"`
}

type stepVisitor func(step int, boxes []*sweep.Box, pairs []Pair) error

// simulate loads the scene, tracks every body and steps the broad phase,
// calling visit with the pairs published for each step.
func simulate(settings *Settings, rootOpts *RootOptions, opts *SimOptions, visit stepVisitor) error {
	log, err := newLogger(settings.Logging, rootOpts.Verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	sc, err := scene.Load(opts.Scene)
	if err != nil {
		return err
	}
	steps, dt := sc.Steps, sc.DT
	if opts.Steps > 0 {
		steps = opts.Steps
	}
	if opts.DT > 0 {
		dt = opts.DT
	}

	var published []Pair
	hub := sweep.NewHub()
	hub.Subscribe(settings.BroadPhase.Channel, func(candidates []sweep.Candidate) {
		published = pairNames(candidates)
	})

	bp, err := sweep.New(settings.BroadPhase, sweep.WithLogger(log), sweep.WithPublisher(hub))
	if err != nil {
		return err
	}

	boxes := sc.Boxes()
	for _, box := range boxes {
		if _, err := bp.OnBodyAdded(box); err != nil {
			return fmt.Errorf("add %s: %w", box.Name(), err)
		}
	}
	log.Info("scene loaded",
		zap.String("scene", opts.Scene),
		zap.Int("bodies", len(boxes)),
		zap.Int("steps", steps),
		zap.Int("axes", settings.BroadPhase.Axes))

	for step := 1; step <= steps; step++ {
		published = []Pair{}
		if _, err := bp.Step(dt); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		if err := visit(step, boxes, published); err != nil {
			return err
		}
		for _, box := range boxes {
			box.Update(dt)
		}
	}
	return nil
}

func pairNames(candidates []sweep.Candidate) []Pair {
	pairs := make([]Pair, 0, len(candidates))
	for _, c := range candidates {
		pairs = append(pairs, newPair(nameOf(c.A), nameOf(c.B)))
	}
	sortPairs(pairs)
	return pairs
}

func nameOf(body sweep.Body) string {
	if box, ok := body.(*sweep.Box); ok {
		return box.Name()
	}
	return fmt.Sprint(body)
}

func newPair(a, b string) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{a, b}
}

func sortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
}

// bruteForce tests every pair of boxes directly.
func bruteForce(boxes []*sweep.Box, axes int) []Pair {
	var pairs []Pair
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			if boxes[i].BB().Intersects(boxes[j].BB(), axes) {
				pairs = append(pairs, newPair(boxes[i].Name(), boxes[j].Name()))
			}
		}
	}
	sortPairs(pairs)
	return pairs
}

// diffPairs returns the pairs of want missing from got, and the pairs of got not in want.
func diffPairs(want, got []Pair) (missing, extra []Pair) {
	inGot := make(map[Pair]int, len(got))
	for _, p := range got {
		inGot[p]++
	}
	for _, p := range want {
		if inGot[p] > 0 {
			inGot[p]--
			continue
		}
		missing = append(missing, p)
	}
	inWant := make(map[Pair]int, len(want))
	for _, p := range want {
		inWant[p]++
	}
	for _, p := range got {
		if inWant[p] > 0 {
			inWant[p]--
			continue
		}
		extra = append(extra, p)
	}
	return missing, extra
}
