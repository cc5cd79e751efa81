// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/codebase-genius/genius/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow that asserts its expectations
// on test cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Generate mocks the Generate method.
func (m *MockWorkflow) Generate(ctx context.Context, args domain.GenerateArgs) error {
	return m.Called(ctx, args).Error(0)
}

// List mocks the List method.
func (m *MockWorkflow) List(ctx context.Context, args domain.ListArgs) error {
	return m.Called(ctx, args).Error(0)
}

// Calls mocks the Calls method.
func (m *MockWorkflow) Calls(ctx context.Context, args domain.CallsArgs) error {
	return m.Called(ctx, args).Error(0)
}
