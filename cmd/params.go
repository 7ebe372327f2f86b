package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/infoclust/internal/config"
	m "github.com/mouse-blink/infoclust/internal/model"
)

// paramFlags are the engine settings a command accepts on the command line.
// Flags the user did not set leave the configured value alone.
type paramFlags struct {
	parallel    int
	minLen      int
	maxLen      int
	floor       float64
	minIncrease float64
}

func (f *paramFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&f.parallel, "parallel", "p", config.DefaultThreads, "number of sequences segmented in parallel")
	flags.IntVar(&f.minLen, "min-len", config.DefaultMinLen, "shortest segment reported")
	flags.IntVar(&f.maxLen, "max-len", config.DefaultMaxLen, "longest segment kept as a candidate")
	flags.Float64Var(&f.floor, "floor", config.DefaultFloor, "density a segment must exceed")
	flags.Float64Var(&f.minIncrease, "min-increase", config.DefaultMinDensityIncrease,
		"required ratio of a segment's density over its floor")
}

func (f *paramFlags) resolve(cmd *cobra.Command) (m.Params, error) {
	cfg := *settings
	flags := cmd.Flags()

	if flags.Changed("parallel") {
		cfg.Workers = f.parallel
	}

	if flags.Changed("min-len") {
		cfg.Segmentation.MinLen = f.minLen
	}

	if flags.Changed("max-len") {
		cfg.Segmentation.MaxLen = f.maxLen
	}

	if flags.Changed("floor") {
		cfg.Segmentation.Floor = f.floor
	}

	if flags.Changed("min-increase") {
		cfg.Segmentation.MinDensityIncrease = f.minIncrease
	}

	if err := cfg.Validate(); err != nil {
		return m.Params{}, err
	}

	return cfg.Params(), nil
}
