package candidate

import "errors"

// ErrDegenerateROI indicates the region-of-interest polygon has fewer
// than 3 vertices or zero signed area.
var ErrDegenerateROI = errors.New("candidate: degenerate ROI polygon")
