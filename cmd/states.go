package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/infoclust/internal/domain"
	m "github.com/mouse-blink/infoclust/internal/model"
)

// statesCmd represents the states command.
var statesCmd = newStatesCmd()

func newStatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "states <dataset.yaml>",
		Short: "Show the information content of every model state",
		Long: `Show the relative entropy of every state's emission distribution against
the background. These values are the signal the density search runs on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.States(domain.StatesArgs{Dataset: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(statesCmd)
}
