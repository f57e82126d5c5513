package prune

import (
	"sort"

	"github.com/lnesto74/hyperspace/candidate"
	"github.com/lnesto74/hyperspace/config"
	"github.com/lnesto74/hyperspace/sampler"
)

// requiredFor mirrors the solver's per-sample coverage floor, except
// percent_target always relaxes to 1: the pruner only re-checks the
// per-sample baseline, never the solver's aggregate k-target clause.
func requiredFor(points []sampler.Point, pointCovers [][]int, settings config.Settings) []int {
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
		default: // config.PercentTarget
			required[p.Index] = 1
		}
	}
	return required
}

func buildPointCovers(candidates []candidate.Candidate, numPoints int) [][]int {
	covers := make([][]int, numPoints)
	for _, c := range candidates {
		for _, p := range c.Covered {
			covers[p] = append(covers[p], c.Index)
		}
	}
	return covers
}

// Prune removes redundant candidates from selected, one pass, in
// ascending index order: each candidate is tentatively dropped, and the
// drop is committed if the remaining set still satisfies every
// per-sample coverage floor for settings.OverlapMode. No backtracking;
// a candidate kept because an earlier removal made it load-bearing is
// never reconsidered.
//
// Complexity: O(len(selected) * avg(len(Covered))).
func Prune(selected []int, candidates []candidate.Candidate, points []sampler.Point, settings config.Settings) []int {
	ordered := append([]int(nil), selected...)
	sort.Ints(ordered)

	pointCovers := buildPointCovers(candidates, len(points))
	required := requiredFor(points, pointCovers, settings)

	coverCount := make([]int, len(points))
	kept := make(map[int]bool, len(ordered))
	for _, idx := range ordered {
		kept[idx] = true
		for _, p := range candidates[idx].Covered {
			coverCount[p]++
		}
	}

	for _, idx := range ordered {
		if !kept[idx] {
			continue
		}
		stillOK := true
		for _, p := range candidates[idx].Covered {
			if coverCount[p]-1 < required[p] {
				stillOK = false
				break
			}
		}
		if !stillOK {
			continue
		}
		for _, p := range candidates[idx].Covered {
			coverCount[p]--
		}
		delete(kept, idx)
	}

	out := make([]int, 0, len(kept))
	for _, idx := range ordered {
		if kept[idx] {
			out = append(out, idx)
		}
	}
	return out
}
