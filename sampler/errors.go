package sampler

import "errors"

// ErrDegenerateROI indicates the region-of-interest polygon has fewer
// than 3 vertices or zero signed area.
var ErrDegenerateROI = errors.New("sampler: degenerate ROI polygon")
