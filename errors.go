package hyperspace

import "errors"

// Input-validation sentinels. Each is fatal: Solve reports it through
// Result.Error rather than returning it as a Go error.
var (
	ErrDegenerateROI    = errors.New("hyperspace: roi_polygon has fewer than 3 vertices or zero area")
	ErrNoSamplePoints   = errors.New("hyperspace: no sample points generated inside roi")
	ErrNoCandidatePoses = errors.New("hyperspace: no candidate positions generated inside roi")
)
