package workspace

import (
	"context"
	"io"

	"github.com/doculens/doculens/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockBackend mocks the domain.Backend interface
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ResetSession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBackend) ListDocuments(ctx context.Context) ([]domain.DocumentRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentRecord), args.Error(1)
}

func (m *MockBackend) Upload(ctx context.Context, filename string, content io.Reader) (*domain.DocumentRecord, error) {
	args := m.Called(ctx, filename, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentRecord), args.Error(1)
}

func (m *MockBackend) DeleteDocument(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) Query(ctx context.Context, req domain.QueryRequest) (*domain.QueryResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QueryResult), args.Error(1)
}

func (m *MockBackend) DocumentSummary(ctx context.Context, id string) (map[string]any, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

// MockNotifier mocks the domain.SessionNotifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyReset() {
	m.Called()
}

// MockSummaryProvider mocks the domain.SummaryProvider interface
type MockSummaryProvider struct {
	mock.Mock
}

func (m *MockSummaryProvider) DocumentSummary(ctx context.Context, id string) (map[string]any, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockSummaryProvider) Invalidate(id string) {
	m.Called(id)
}

// accept and decline are canned confirmers for deletion tests.
var (
	accept  = domain.ConfirmerFunc(func(string) bool { return true })
	decline = domain.ConfirmerFunc(func(string) bool { return false })
)
