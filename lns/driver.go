package lns

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/mdd-lns/ddlns/core"
	"github.com/mdd-lns/ddlns/mdd"
)

// Driver schedules repeated restricted compilations at varying anchor
// depths, updates the incumbent, and reports a ResolutionOutcome. It owns
// one mdd.Compiler and issues many compilations against it per run.
type Driver[S comparable] struct {
	start      time.Time
	compiler   *mdd.Compiler[S]
	width      int
	initialVal *int
	initialSol *core.Solution
	kill       *atomic.Bool
	nbVar      int
	onIter     func(depth int)
	onImprove  func(value int)
}

// NewDriver validates construction options and returns a ready Driver, or a
// sentinel error if a required option is missing. start is recorded at
// construction time, mirroring the reference's Instant field.
func NewDriver[S comparable](opts ...Option[S]) (*Driver[S], error) {
	cfg := defaultConfig[S]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.compiler == nil {
		return nil, ErrMissingCompiler
	}
	if cfg.width <= 0 {
		return nil, ErrInvalidWidth
	}
	if cfg.nbVar <= 0 {
		return nil, ErrInvalidNbVar
	}

	return &Driver[S]{
		start:      time.Now(),
		compiler:   cfg.compiler,
		width:      cfg.width,
		initialVal: cfg.initialVal,
		initialSol: cfg.initialSol,
		kill:       cfg.kill,
		nbVar:      cfg.nbVar,
		onIter:     cfg.onIter,
		onImprove:  cfg.onImprove,
	}, nil
}

func (d *Driver[S]) killed() bool {
	return d.kill != nil && d.kill.Load()
}

// Minimize runs the anchor-descent main loop described in §4.5: improvements
// are accepted strictly (curr < opt).
func (d *Driver[S]) Minimize() core.ResolutionOutcome {
	return d.run(false, nil)
}

// MinimizeWithCond is Minimize with two differences: improvements are
// accepted on <= rather than <, and the loop terminates early once pred
// accepts the new incumbent value. Used for diagnostic runs; otherwise
// identical semantics — including the <= acceptance rule's known potential
// to cycle between equal-cost configurations absent the kill switch, which
// is preserved deliberately rather than patched.
func (d *Driver[S]) MinimizeWithCond(pred func(int) bool) core.ResolutionOutcome {
	return d.run(true, pred)
}

// run implements both Minimize and MinimizeWithCond; acceptEqual selects the
// <= vs < acceptance rule, and pred (nil for Minimize) may request an early
// stop once satisfied by the new incumbent.
func (d *Driver[S]) run(acceptEqual bool, pred func(int) bool) core.ResolutionOutcome {
	opt := d.initialVal
	sol := d.initialSol
	var timeToBest, timeToProve *time.Duration
	closed := false

	anchor := d.nbVar - 2
	for !d.killed() {
		depth := 0
		if sol != nil {
			depth = anchor
		}
		if d.onIter != nil {
			d.onIter(depth)
		}

		bound := boundOf(opt)
		d.compiler.Restricted(d.width, &bound, sol, depth)
		curr := d.compiler.GetBestValue()

		accepted := false
		if acceptEqual {
			accepted = boundOf(curr) <= boundOf(opt)
		} else {
			accepted = boundOf(curr) < boundOf(opt)
		}

		if accepted {
			opt = curr
			sol = d.compiler.GetBestSolution()
			elapsed := time.Since(d.start)
			timeToBest = &elapsed
			anchor = d.nbVar - 2

			if d.onImprove != nil && opt != nil {
				d.onImprove(*opt)
			}
			if pred != nil && opt != nil && pred(*opt) {
				break
			}
		} else if anchor > 0 {
			anchor--
		} else {
			anchor = d.nbVar - 2
		}

		if d.compiler.IsExact() {
			closed = true
			elapsed := time.Since(d.start)
			timeToProve = &elapsed
			break
		}
	}

	status := core.ResolutionStatus{
		Closed:   closed,
		Improved: !sameIntPtr(opt, d.initialVal),
	}
	return core.ResolutionOutcome{
		Status:      status,
		BestValue:   opt,
		BestSol:     sol,
		TimeToBest:  timeToBest,
		TimeToProve: timeToProve,
	}
}

// boundOf treats a nil incumbent/result pointer as +Inf, per §4.5's
// unwrap_or(MAX) comparisons.
func boundOf(v *int) int {
	if v == nil {
		return math.MaxInt
	}
	return *v
}

// sameIntPtr reports whether two optional ints hold the same value,
// treating two nils as equal.
func sameIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
