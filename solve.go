package hyperspace

import (
	"fmt"
	"runtime/debug"

	"github.com/lnesto74/hyperspace/candidate"
	"github.com/lnesto74/hyperspace/config"
	"github.com/lnesto74/hyperspace/coverage"
	"github.com/lnesto74/hyperspace/geometry"
	"github.com/lnesto74/hyperspace/occupancy"
	"github.com/lnesto74/hyperspace/prune"
	"github.com/lnesto74/hyperspace/sampler"
	"github.com/lnesto74/hyperspace/solver"
	"github.com/lnesto74/hyperspace/stats"
)

// Solve computes a LiDAR sensor placement for params, wiring
// geometry/sampling/candidate-generation/coverage through the solver,
// pruner, and stats in that order.
//
// The returned error is non-nil only for an unexpected internal fault
// recovered from a panic; every documented failure mode (degenerate
// ROI, zero samples, zero candidates, solver infeasibility) is
// reported through Result.Success=false and Result.Error instead.
//
// Complexity: dominated by coverage.Build, O(len(candidates) *
// len(points)), and bounded by config.Settings.SolverTimeLimit.
func Solve(params Params) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Success: false,
				Error:   fmt.Sprintf("internal fault: %v", r),
			}
			err = fmt.Errorf("hyperspace: recovered panic: %v\n%s", r, debug.Stack())
		}
	}()

	settings := params.Settings
	if verr := settings.Validate(); verr != nil {
		return Result{Success: false, Error: verr.Error(), Seed: settings.Seed}, nil
	}

	if !geometry.Valid(params.ROIPolygon) {
		return Result{Success: false, Error: ErrDegenerateROI.Error(), Seed: settings.Seed}, nil
	}

	rEff := params.Model.EffectiveRadius(settings.MountY)

	points, serr := sampler.Sample(params.ROIPolygon, params.Obstacles, settings.SampleSpacing, settings.Seed)
	if serr != nil {
		return Result{Success: false, Error: serr.Error(), Seed: settings.Seed}, nil
	}
	if len(points) == 0 {
		return Result{Success: false, Error: ErrNoSamplePoints.Error(), Seed: settings.Seed}, nil
	}
	sampler.MarkCritical(points, params.CriticalPolygon)

	candidates, cerr := candidate.Generate(
		params.ROIPolygon, params.Obstacles, settings.CandidateSpacing,
		settings.KeepoutDistance, params.Model, settings.YawStepDeg, settings.Seed,
	)
	if cerr != nil {
		return Result{Success: false, Error: cerr.Error(), Seed: settings.Seed}, nil
	}
	if len(candidates) == 0 {
		return Result{Success: false, Error: ErrNoCandidatePoses.Error(), Seed: settings.Seed}, nil
	}

	var grid *occupancy.Grid
	if settings.LOSEnabled {
		grid = occupancy.Build(params.ROIPolygon, params.Obstacles, settings.LOSCell)
	}
	coverage.Build(candidates, points, params.Model, rEff, settings.LOSEnabled, grid)

	solverResult := solver.Solve(candidates, points, settings)

	var warnings []string
	if solverResult.Retried {
		warnings = append(warnings, "solver could not satisfy the requested overlap_mode/k_required; retried with overlap_mode=everywhere, k_required=1")
	}
	if !solverResult.Success {
		return Result{
			Success:           false,
			Error:             fmt.Sprintf("solver failed to find a feasible placement (status=%s)", solverResult.Status),
			Warnings:          warnings,
			Seed:              settings.Seed,
			SolverStatus:      solverResult.Status,
			TotalSamplePoints: len(points),
			TotalCandidates:   len(candidates),
			EffectiveRadiusM:  rEff,
			Iterations:        solverResult.Iterations,
		}, nil
	}

	effective := settings
	if solverResult.Retried {
		effective.OverlapMode = config.Everywhere
		effective.KRequired = 1
	}

	pruned := prune.Prune(solverResult.Selected, candidates, points, effective)
	yaws := prune.RefineYaw(pruned, candidates, params.Model)

	positions, kept, truncated := stats.Assemble(pruned, candidates, yaws, settings.MaxSensors)
	if truncated {
		warnings = append(warnings, "selected sensor count exceeds max_sensors; result truncated")
	}

	coveragePct, kCoveragePct := stats.Coverage(kept, candidates, len(points), effective.KRequired)

	out := make([]Position, len(positions))
	for i, p := range positions {
		out[i] = Position{X: p.X, Z: p.Z, Yaw: p.Yaw}
	}

	return Result{
		Success:           true,
		SelectedPositions: out,
		NumSensors:        len(out),
		CoveragePct:       coveragePct,
		KCoveragePct:      kCoveragePct,
		OverlapMode:       effective.OverlapMode.String(),
		KRequired:         effective.KRequired,
		Warnings:          warnings,
		Seed:              settings.Seed,
		SolverStatus:      solverResult.Status,
		TotalSamplePoints: len(points),
		TotalCandidates:   len(candidates),
		EffectiveRadiusM:  rEff,
		Iterations:        solverResult.Iterations,
	}, nil
}
