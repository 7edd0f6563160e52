package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"frontcheck.dev/pkg/frontcheck/internal/domain"
	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

func TestRunCmd_MatchesRootPipeline(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Target == m.Path("./bin/CompilerFrontend") &&
			args.Report == m.Path(defaultReportPath)
	})).Return(nil)

	cmd.SetArgs([]string{"run", "--target", "./bin/CompilerFrontend"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	phaseErr := &domain.PhaseError{Phase: domain.PhaseAvailability, Err: domain.ErrTargetUnavailable}
	mockWorkflow.On("Run", mock.Anything, mock.Anything).Return(phaseErr)

	cmd.SetArgs([]string{"run"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrTargetUnavailable)
	assert.Equal(t, domain.ExitTargetUnavailable, domain.ExitCode(err))
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
}
