package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/codebase-genius/genius/internal/domain"
	domainmocks "github.com/codebase-genius/genius/internal/domain/mocks"
	m "github.com/codebase-genius/genius/internal/model"
)

func TestCallsCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCallsCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Calls", mock.Anything, domain.CallsArgs{
		File:     m.Path("main.py"),
		Function: "foo",
	}).Return(nil)

	cmd.SetArgs([]string{"calls", "main.py", "foo"})
	require.NoError(t, cmd.Execute())
}

func TestCallsCmd_RequiresTwoArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newCallsCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"calls", "main.py"})
	require.Error(t, cmd.Execute())
}
