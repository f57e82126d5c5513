package hyperspace

import (
	"github.com/lnesto74/hyperspace/config"
	"github.com/lnesto74/hyperspace/geometry"
	"github.com/lnesto74/hyperspace/sensor"
)

// Params is the single input to Solve.
type Params struct {
	ROIPolygon      geometry.Polygon
	Obstacles       []geometry.Polygon
	CriticalPolygon geometry.Polygon
	Model           sensor.Model
	Settings        config.Settings
}

// Result is the single output of Solve.
type Result struct {
	Success bool `json:"success"`

	SelectedPositions []Position `json:"selected_positions"`

	NumSensors   int      `json:"num_sensors"`
	CoveragePct  float64  `json:"coverage_pct"`
	KCoveragePct float64  `json:"k_coverage_pct"`
	OverlapMode  string   `json:"overlap_mode"`
	KRequired    int      `json:"k_required"`
	Warnings     []string `json:"warnings,omitempty"`
	Seed         int64    `json:"seed"`
	SolverStatus string   `json:"solver_status"`

	TotalSamplePoints int     `json:"total_sample_points"`
	TotalCandidates   int     `json:"total_candidates"`
	EffectiveRadiusM  float64 `json:"effective_radius_m"`

	// Iterations counts construction + restart passes the solver
	// actually ran before returning.
	Iterations int `json:"iterations"`

	// Error holds the failure description when Success is false.
	Error string `json:"error,omitempty"`
}

// Position is one placed sensor in the result.
type Position struct {
	X   float64 `json:"x"`
	Z   float64 `json:"z"`
	Yaw float64 `json:"yaw"`
}
