package solver

import (
	"math/rand"
	"time"

	"github.com/lnesto74/hyperspace/candidate"
)

// buildPointCovers inverts candidates[*].Covered into, for each sample
// index, the ascending list of candidate indices that observe it.
// Candidates are visited in ascending Index order (the order package
// candidate and package coverage always produce), so every per-sample
// list comes out ascending too.
func buildPointCovers(candidates []candidate.Candidate, numPoints int) [][]int {
	covers := make([][]int, numPoints)
	for _, c := range candidates {
		for _, p := range c.Covered {
			covers[p] = append(covers[p], c.Index)
		}
	}
	return covers
}

// deficit is the total unmet coverage across every sample: for sample p
// it is max(0, required[p]-coverCount[p]), summed.
func deficit(coverCount, required []int) int {
	total := 0
	for p, req := range required {
		if coverCount[p] < req {
			total += req - coverCount[p]
		}
	}
	return total
}

// satisfied reports whether every sample has reached its requirement.
func satisfied(coverCount, required []int) bool {
	for p, req := range required {
		if coverCount[p] < req {
			return false
		}
	}
	return true
}

// greedyCover runs deficit-reduction greedy set cover: repeatedly pick
// the unselected candidate, in order, that reduces the sum of
// max(0,required[p]-coverCount[p]) the most, until either the
// requirement is fully met, no remaining candidate can help, or
// deadline passes. order controls both the scan order and, via the
// strict "gain > best" comparison, the tie-break: the first candidate
// (in order) reaching the best gain wins.
//
// coverCount and selected are mutated in place so callers can chain a
// second pass (e.g. the percent_target k-target push) on top of an
// already-constructed base cover without recomputing it.
func greedyCover(candidates []candidate.Candidate, required []int, order []int, coverCount []int, selected []bool, deadline time.Time) (timedOut bool) {
	for deficit(coverCount, required) > 0 {
		if time.Now().After(deadline) {
			return true
		}

		bestIdx := -1
		bestGain := 0
		for _, ci := range order {
			if selected[ci] {
				continue
			}
			gain := 0
			for _, p := range candidates[ci].Covered {
				if coverCount[p] < required[p] {
					gain++
				}
			}
			if gain > bestGain {
				bestGain = gain
				bestIdx = ci
			}
		}
		if bestIdx == -1 {
			// No remaining candidate reduces the deficit: infeasible.
			return false
		}

		selected[bestIdx] = true
		for _, p := range candidates[bestIdx].Covered {
			coverCount[p]++
		}
	}
	return false
}

// countAtLeast returns how many entries of coverCount are >= k.
func countAtLeast(coverCount []int, k int) int {
	n := 0
	for _, c := range coverCount {
		if c >= k {
			n++
		}
	}
	return n
}

// pushKTarget greedily adds candidates, beyond whatever greedyCover
// already selected, to raise the count of samples with coverCount>=k up
// to target. It reuses the same deficit-style gain heuristic, capping
// every sample's contribution at k rather than at required[p], since
// the goal here is pushing *additional* samples to full k-coverage, not
// the baseline 1-coverage percent_target already guarantees.
func pushKTarget(candidates []candidate.Candidate, k, target int, order []int, coverCount []int, selected []bool, deadline time.Time) (reached int, timedOut bool) {
	for countAtLeast(coverCount, k) < target {
		if time.Now().After(deadline) {
			return countAtLeast(coverCount, k), true
		}

		bestIdx := -1
		bestGain := 0
		for _, ci := range order {
			if selected[ci] {
				continue
			}
			gain := 0
			for _, p := range candidates[ci].Covered {
				if coverCount[p] < k {
					gain++
				}
			}
			if gain > bestGain {
				bestGain = gain
				bestIdx = ci
			}
		}
		if bestIdx == -1 {
			break
		}

		selected[bestIdx] = true
		for _, p := range candidates[bestIdx].Covered {
			coverCount[p]++
		}
	}
	return countAtLeast(coverCount, k), false
}

// shuffledOrder returns a copy of order permuted by r (Fisher-Yates).
// Used to diversify the greedy's tie-break for local-search restarts
// while keeping results reproducible for a given seed.
func shuffledOrder(order []int, r *rand.Rand) []int {
	out := make([]int, len(order))
	copy(out, order)
	for i := len(out) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func selectedIndices(selected []bool) []int {
	out := make([]int, 0)
	for i, s := range selected {
		if s {
			out = append(out, i)
		}
	}
	return out
}
