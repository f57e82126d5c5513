package solver

import (
	"time"

	"github.com/lnesto74/hyperspace/candidate"
	"github.com/lnesto74/hyperspace/config"
	"github.com/lnesto74/hyperspace/rng"
	"github.com/lnesto74/hyperspace/sampler"
)

// maxRestarts bounds the number of randomized-order local-search
// attempts Solve makes to shrink the base cover, beyond the initial
// ascending-order construction: a small fixed restart budget rather
// than an unbounded search.
const maxRestarts = 6

// streamRestart identifies the RNG substream Solve derives for its
// local-search restarts, independent of any other package's use of the
// same base seed.
const streamRestart uint64 = 1

// buildRequired computes, per sample index, the minimum coverage count
// that sample must reach under settings.OverlapMode. A sample with no
// covering candidate at all gets requirement 0: it can never be
// satisfied, so it is excluded from the constraint.
func buildRequired(points []sampler.Point, pointCovers [][]int, settings config.Settings) []int {
	required := make([]int, len(pointCovers))
	for _, p := range points {
		if len(pointCovers[p.Index]) == 0 {
			continue
		}
		switch settings.OverlapMode {
		case config.Everywhere:
			required[p.Index] = settings.KRequired
		case config.CriticalOnly:
			if p.Critical {
				required[p.Index] = settings.KRequired
			} else {
				required[p.Index] = 1
			}
		case config.PercentTarget:
			required[p.Index] = 1
		}
	}
	return required
}

// attempt is one candidate solution produced by a single greedy pass
// (plus, for percent_target, its k-target push).
type attempt struct {
	selected []int
	feasible bool
	timedOut bool
}

func runAttempt(candidates []candidate.Candidate, required []int, order []int, settings config.Settings, numPoints int, deadline time.Time) attempt {
	coverCount := make([]int, numPoints)
	selected := make([]bool, len(candidates))

	timedOut := greedyCover(candidates, required, order, coverCount, selected, deadline)
	feasible := satisfied(coverCount, required)

	if feasible && settings.OverlapMode == config.PercentTarget {
		target := int(settings.OverlapTargetPct * float64(numPoints))
		reached, to := pushKTarget(candidates, settings.KRequired, target, order, coverCount, selected, deadline)
		if to {
			timedOut = true
		}
		feasible = reached >= target
	}

	return attempt{
		selected: selectedIndices(selected),
		feasible: feasible,
		timedOut: timedOut,
	}
}

// solveOnce runs one full construction + local-search pass for the
// given settings, without the infeasibility retry. It never mutates
// candidates or points.
func solveOnce(candidates []candidate.Candidate, points []sampler.Point, settings config.Settings, deadline time.Time) (Result, bool) {
	if len(candidates) == 0 {
		return Result{Status: StatusInfeasible, Success: false, Iterations: 0}, false
	}

	pointCovers := buildPointCovers(candidates, len(points))
	required := buildRequired(points, pointCovers, settings)

	ascending := make([]int, len(candidates))
	for i := range ascending {
		ascending[i] = i
	}

	iterations := 1
	best := runAttempt(candidates, required, ascending, settings, len(points), deadline)

	if best.feasible {
		r := rng.Derive(settings.Seed, streamRestart)
		for i := 0; i < maxRestarts && time.Now().Before(deadline); i++ {
			order := shuffledOrder(ascending, r)
			cand := runAttempt(candidates, required, order, settings, len(points), deadline)
			iterations++
			if cand.feasible && len(cand.selected) < len(best.selected) {
				best = cand
			}
		}
	}

	status := StatusFeasible
	anyRequirement := false
	for _, req := range required {
		if req > 0 {
			anyRequirement = true
			break
		}
	}
	if !anyRequirement {
		status = StatusOptimal
	}
	if !best.feasible {
		if best.timedOut {
			status = StatusTimeLimitNoFeas
		} else {
			status = StatusInfeasible
		}
	}

	return Result{
		Selected:   best.selected,
		Status:     status,
		Success:    best.feasible,
		Iterations: iterations,
	}, best.feasible
}

// Solve formulates and searches the k-coverage set-cover problem
// described by settings.OverlapMode/KRequired/OverlapTargetPct over
// candidates and points, within settings.SolverTimeLimit.
//
// If the original overlap mode cannot be satisfied, Solve retries
// exactly once with OverlapMode=Everywhere, KRequired=1; Result.Retried
// reports whether that happened. A second failure is final:
// Result.Success is false.
//
// Complexity: each attempt is O(restarts * len(candidates)^2 *
// avg(len(Covered))) in the worst case, bounded throughout by
// settings.SolverTimeLimit.
func Solve(candidates []candidate.Candidate, points []sampler.Point, settings config.Settings) Result {
	deadline := time.Now().Add(settings.SolverTimeLimit)

	result, ok := solveOnce(candidates, points, settings, deadline)
	if ok {
		return result
	}

	relaxed := settings
	relaxed.OverlapMode = config.Everywhere
	relaxed.KRequired = 1

	retryResult, retryOK := solveOnce(candidates, points, relaxed, deadline)
	retryResult.Retried = true
	retryResult.Iterations += result.Iterations
	if retryOK {
		return retryResult
	}

	// Both attempts failed: report the original attempt's status so
	// callers see what actually could not be met, but mark Retried so
	// they know the relaxed attempt was also tried and failed.
	result.Retried = true
	result.Iterations += retryResult.Iterations
	return result
}
