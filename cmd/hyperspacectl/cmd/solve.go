package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/lnesto74/hyperspace"
	"github.com/lnesto74/hyperspace/config"
)

var (
	paramsPath string
	outputPath string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run one placement solve from a params file",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&paramsPath, "params", "p", "", "path to a YAML params file (required)")
	solveCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write JSON result here instead of stdout")
	_ = solveCmd.MarkFlagRequired("params")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	pf, err := config.LoadFile(paramsPath)
	if err != nil {
		return fmt.Errorf("loading params file: %w", err)
	}

	roi, obstacles, critical, model, settings, err := pf.Decode()
	if err != nil {
		return fmt.Errorf("decoding params file: %w", err)
	}

	rEff := model.EffectiveRadius(settings.MountY)
	log.Debug().
		Str("event", "=== SOLVER DEBUG ===").
		Float64("r_eff", rEff).
		Float64("candidate_spacing", settings.CandidateSpacing).
		Msg("effective radius and candidate spacing resolved")

	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Suffix = " solving placement..."
	_ = sp.Color("cyan", "bold")
	if !verbose {
		sp.Start()
	}

	result, err := hyperspace.Solve(hyperspace.Params{
		ROIPolygon:      roi,
		Obstacles:       obstacles,
		CriticalPolygon: critical,
		Model:           model,
		Settings:        settings,
	})

	sp.Stop()

	if err != nil {
		log.Error().Err(err).Msg("solve encountered an unexpected internal fault")
		return err
	}

	for _, w := range result.Warnings {
		log.Warn().Msg(w)
	}
	if !result.Success {
		log.Error().Str("error", result.Error).Msg("solve did not produce a placement")
	} else {
		log.Info().
			Int("num_sensors", result.NumSensors).
			Float64("coverage_pct", result.CoveragePct).
			Float64("k_coverage_pct", result.KCoveragePct).
			Str("solver_status", result.SolverStatus).
			Msg("solve complete")
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if outputPath == "" {
		fmt.Println(string(encoded))
		return nil
	}
	return os.WriteFile(outputPath, encoded, 0o644)
}
