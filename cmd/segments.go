package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/infoclust/internal/domain"
	m "github.com/mouse-blink/infoclust/internal/model"
)

var segmentsParams paramFlags

// segmentsCmd represents the segments command.
var segmentsCmd = newSegmentsCmd()

func newSegmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segments <dataset.yaml>",
		Short: "List raw segments and their filter verdicts",
		Long: `List every segment the density search finds in each sequence, with the
verdict of the candidate filter. Nothing is merged or saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := segmentsParams.resolve(cmd)
			if err != nil {
				return err
			}

			return workflow.Segments(cmd.Context(), domain.SegmentsArgs{
				Dataset: m.Path(args[0]),
				Params:  params,
			})
		},
	}
	segmentsParams.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(segmentsCmd)
}
