package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lnesto74/hyperspace/geometry"
	"github.com/lnesto74/hyperspace/sensor"
)

// vertex is the wire shape of a single {x, z} coordinate.
type vertex struct {
	X float64 `yaml:"x" json:"x"`
	Z float64 `yaml:"z" json:"z"`
}

// modelFile is the wire shape of the "model" block.
type modelFile struct {
	HFOVDeg  float64 `yaml:"hfov_deg" json:"hfov_deg"`
	VFOVDeg  float64 `yaml:"vfov_deg" json:"vfov_deg"`
	RangeM   float64 `yaml:"range_m" json:"range_m"`
	DomeMode bool    `yaml:"dome_mode" json:"dome_mode"`
}

// settingsFile is the wire shape of the "settings" block.
type settingsFile struct {
	MountY           float64 `yaml:"mount_y_m" json:"mount_y_m"`
	SampleSpacing    float64 `yaml:"sample_spacing_m" json:"sample_spacing_m"`
	CandidateSpacing float64 `yaml:"candidate_spacing_m" json:"candidate_spacing_m"`
	KeepoutDistance  float64 `yaml:"keepout_distance_m" json:"keepout_distance_m"`
	OverlapMode      string  `yaml:"overlap_mode" json:"overlap_mode"`
	KRequired        int     `yaml:"k_required" json:"k_required"`
	OverlapTargetPct float64 `yaml:"overlap_target_pct" json:"overlap_target_pct"`
	LOSEnabled       bool    `yaml:"los_enabled" json:"los_enabled"`
	LOSCell          float64 `yaml:"los_cell_m" json:"los_cell_m"`
	YawStepDeg       float64 `yaml:"yaw_step_deg" json:"yaw_step_deg"`
	MaxSensors       int     `yaml:"max_sensors" json:"max_sensors"`
	SolverTimeLimitS float64 `yaml:"solver_time_limit_s" json:"solver_time_limit_s"`
	Seed             int64   `yaml:"seed" json:"seed"`
}

// ParamsFile is the on-disk/wire representation of a solve request,
// parsed from YAML (or JSON, which is a YAML subset) via LoadFile.
type ParamsFile struct {
	ROIPolygon      []vertex     `yaml:"roi_polygon" json:"roi_polygon"`
	Obstacles       [][]vertex   `yaml:"obstacles" json:"obstacles"`
	CriticalPolygon []vertex     `yaml:"critical_polygon" json:"critical_polygon"`
	Model           modelFile    `yaml:"model" json:"model"`
	Settings        settingsFile `yaml:"settings" json:"settings"`
}

// LoadFile reads and parses a params file from path.
func LoadFile(path string) (ParamsFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ParamsFile{}, err
	}
	var pf ParamsFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return ParamsFile{}, err
	}
	return pf, nil
}

// Decode converts the wire ParamsFile into the typed values the core
// pipeline consumes: the ROI polygon, obstacle polygons, an optional
// critical-zone polygon, the sensor model, and resolved Settings.
// Missing wire fields take the same documented defaults as New.
func (pf ParamsFile) Decode() (roi geometry.Polygon, obstacles []geometry.Polygon, critical geometry.Polygon, model sensor.Model, settings Settings, err error) {
	roi = toPolygon(pf.ROIPolygon)
	obstacles = make([]geometry.Polygon, 0, len(pf.Obstacles))
	for _, o := range pf.Obstacles {
		obstacles = append(obstacles, toPolygon(o))
	}
	critical = toPolygon(pf.CriticalPolygon)

	model = sensor.Model{
		HFOVDeg: orDefault(pf.Model.HFOVDeg, 360),
		VFOVDeg: orDefault(pf.Model.VFOVDeg, 30),
		RangeM:  orDefault(pf.Model.RangeM, 10),
		Dome:    pf.Model.DomeMode,
	}
	if pf.Model.HFOVDeg == 0 && pf.Model.VFOVDeg == 0 && pf.Model.RangeM == 0 {
		model.Dome = true
	}

	overlap, oerr := ParseOverlapMode(pf.Settings.OverlapMode)
	if oerr != nil {
		return roi, obstacles, critical, model, Settings{}, oerr
	}

	timeLimit := DefaultSolverTimeLimit
	if pf.Settings.SolverTimeLimitS > 0 {
		timeLimit = time.Duration(pf.Settings.SolverTimeLimitS * float64(time.Second))
	}

	seed := pf.Settings.Seed
	if seed == 0 {
		seed = New().Seed
	}

	settings = New(
		WithMountY(orDefault(pf.Settings.MountY, DefaultMountY)),
		WithSampleSpacing(orDefault(pf.Settings.SampleSpacing, DefaultSampleSpacing)),
		WithCandidateSpacing(orDefault(pf.Settings.CandidateSpacing, DefaultCandidateSpacing)),
		WithKeepoutDistance(orDefault(pf.Settings.KeepoutDistance, DefaultKeepoutDistance)),
		WithOverlapMode(overlap),
		WithKRequired(orDefaultInt(pf.Settings.KRequired, DefaultKRequired)),
		WithOverlapTargetPct(orDefault(pf.Settings.OverlapTargetPct, DefaultOverlapTargetPct)),
		WithLOSEnabled(pf.Settings.LOSEnabled),
		WithLOSCell(orDefault(pf.Settings.LOSCell, DefaultLOSCell)),
		WithYawStepDeg(orDefault(pf.Settings.YawStepDeg, DefaultYawStepDeg)),
		WithMaxSensors(orDefaultInt(pf.Settings.MaxSensors, DefaultMaxSensors)),
		WithSolverTimeLimit(timeLimit),
		WithSeed(seed),
	)
	return roi, obstacles, critical, model, settings, nil
}

func toPolygon(vs []vertex) geometry.Polygon {
	if len(vs) == 0 {
		return nil
	}
	poly := make(geometry.Polygon, len(vs))
	for i, v := range vs {
		poly[i] = geometry.Point{X: v.X, Z: v.Z}
	}
	return poly
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
