package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/infoclust/internal/config"
	"github.com/mouse-blink/infoclust/internal/domain"
	m "github.com/mouse-blink/infoclust/internal/model"
)

func TestRunCmd_Defaults(t *testing.T) {
	mockWorkflow := mockWorkflowFor(t)

	want := config.Default().Params()

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Dataset == m.Path("islands.yaml") &&
			args.Output == m.Path("infoclust-report.yaml") &&
			args.Params == want
	})).Return(nil)

	cmd := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{"run", "islands.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_FlagsOverrideDefaults(t *testing.T) {
	mockWorkflow := mockWorkflowFor(t)

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		p := args.Params

		return args.Output == m.Path("out.yaml") &&
			p.Threads == 4 &&
			p.MinLen == 8 &&
			p.MaxLen == 30 &&
			p.Floor == 0.2 &&
			p.MinDensityIncrease == 1.5 &&
			p.MergeThreshold == config.DefaultMergeThreshold
	})).Return(nil)

	cmd := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{
		"run", "-p", "4", "--min-len", "8", "--max-len", "30",
		"--floor", "0.2", "--min-increase", "1.5", "-o", "out.yaml", "d.yaml",
	})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_ConfigFileThenFlags(t *testing.T) {
	mockWorkflow := mockWorkflowFor(t)

	path := writeConfig(t, `segmentation:
  min_len: 7
  floor: 0.3
registry:
  merge_threshold: 0.5
workers: 3
`)

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		p := args.Params

		return p.MinLen == 9 &&
			p.Floor == 0.3 &&
			p.MergeThreshold == 0.5 &&
			p.Threads == 3 &&
			p.MaxLen == config.DefaultMaxLen
	})).Return(nil)

	cmd := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{"--config", path, "run", "--min-len", "9", "d.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_EmptyOutputSkipsSaving(t *testing.T) {
	mockWorkflow := mockWorkflowFor(t)

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Output == ""
	})).Return(nil)

	cmd := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{"run", "--out", "", "d.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_InvalidFlagsNeverReachWorkflow(t *testing.T) {
	mockWorkflowFor(t)

	cmd := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{"run", "--min-len", "10", "--max-len", "5", "d.yaml"})

	require.ErrorIs(t, cmd.Execute(), config.ErrInvalidConfig)
}

func TestRunCmd_RequiresDataset(t *testing.T) {
	mockWorkflowFor(t)

	cmd := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{"run"})

	require.Error(t, cmd.Execute())
}

func TestRunCmd_WorkflowError(t *testing.T) {
	mockWorkflow := mockWorkflowFor(t)

	boom := errors.New("discovery failed")
	mockWorkflow.On("Run", mock.Anything, mock.Anything).Return(boom)

	cmd := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{"run", "d.yaml"})

	err := cmd.Execute()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "discovery failed")
}
