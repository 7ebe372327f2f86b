package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/infoclust/internal/domain"
	m "github.com/mouse-blink/infoclust/internal/model"
)

const runLongDescription = `Run motif discovery on a labelled dataset.

Every sequence is segmented into maximal-density islands of information
content. Islands that pass the length and density-increase filters become
motif candidates; candidates with near-identical emission profiles are
merged, and the survivors are ranked by log-likelihood. The report is saved
as YAML and displayed.`

var runOutputFlag string
var runParams paramFlags

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <dataset.yaml>",
		Short: "Discover and rank motifs",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := runParams.resolve(cmd)
			if err != nil {
				return err
			}

			return workflow.Run(cmd.Context(), domain.RunArgs{
				Dataset: m.Path(args[0]),
				Output:  m.Path(runOutputFlag),
				Params:  params,
			})
		},
	}
	cmd.Flags().StringVarP(&runOutputFlag, "out", "o", "infoclust-report.yaml", "report file; empty to skip saving")
	runParams.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
