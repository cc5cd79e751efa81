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

func TestGenerateCmd_DefaultsToCurrentDir(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newGenerateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Generate", mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Source == "." &&
			args.Output == m.Path(".genius-docs") &&
			args.CloneDir == m.Path(".genius-cache") &&
			args.SummaryLimit == 500
	})).Return(nil)

	cmd.SetArgs([]string{"generate"})
	require.NoError(t, cmd.Execute())
}

func TestGenerateCmd_SourceAndParallel(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newGenerateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Generate", mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Source == "https://example.com/acme/widget.git" &&
			args.Threads == 2
	})).Return(nil)

	cmd.SetArgs([]string{"generate", "--parallel", "2", "https://example.com/acme/widget.git"})
	require.NoError(t, cmd.Execute())
}

func TestGenerateCmd_RejectsExtraArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newGenerateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"generate", "one", "two"})
	require.Error(t, cmd.Execute())
}
