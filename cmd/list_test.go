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

func TestListCmd_DefaultsToCurrentDir(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Root == m.Path(".")
	})).Return(nil)

	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_WithPath(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Root == m.Path("/tmp/repo")
	})).Return(nil)

	cmd.SetArgs([]string{"list", "/tmp/repo"})
	require.NoError(t, cmd.Execute())
}
