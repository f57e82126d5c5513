package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	// log is the process-wide structured logger.
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hyperspacectl",
	Short: "Compute LiDAR sensor placements over a 2D floor plan",
	Long: `hyperspacectl solves the k-coverage sensor-placement problem for a
polygonal region of interest: given a region, obstacles, a sensor model,
and planner settings, it reports the fewest sensor positions (and yaws)
that satisfy the requested coverage overlap.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

// Execute runs the root command; it is the sole entry point main calls.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
}
