package screen

import (
	"context"
	"fmt"

	"library-admin/core/domain"
)

// mockRecordService is a mock implementation of the RecordService interface
type mockRecordService struct {
	resource   domain.Resource
	listFunc   func(ctx context.Context) ([]domain.Record, error)
	getFunc    func(ctx context.Context, id int) (domain.Record, error)
	createFunc func(ctx context.Context, record domain.Record) (*domain.MutationResult, error)
	updateFunc func(ctx context.Context, id int, record domain.Record) (*domain.MutationResult, error)
	deleteFunc func(ctx context.Context, id int) (*domain.MutationResult, error)

	listCalls int
	calls     []string
}

func (m *mockRecordService) Resource() domain.Resource {
	return m.resource
}

func (m *mockRecordService) List(ctx context.Context) ([]domain.Record, error) {
	m.listCalls++
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockRecordService) Get(ctx context.Context, id int) (domain.Record, error) {
	m.calls = append(m.calls, fmt.Sprintf("get %d", id))
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return domain.Record{}, nil
}

func (m *mockRecordService) Create(ctx context.Context, record domain.Record) (*domain.MutationResult, error) {
	m.calls = append(m.calls, "create")
	if m.createFunc != nil {
		return m.createFunc(ctx, record)
	}
	return &domain.MutationResult{}, nil
}

func (m *mockRecordService) Update(ctx context.Context, id int, record domain.Record) (*domain.MutationResult, error) {
	m.calls = append(m.calls, fmt.Sprintf("update %d", id))
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, record)
	}
	return &domain.MutationResult{}, nil
}

func (m *mockRecordService) Delete(ctx context.Context, id int) (*domain.MutationResult, error) {
	m.calls = append(m.calls, fmt.Sprintf("delete %d", id))
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return &domain.MutationResult{}, nil
}

// mockNotifier records every message
type mockNotifier struct {
	messages []domain.Notification
}

func (m *mockNotifier) Notify(message string, kind domain.NotificationKind) domain.Notification {
	n := domain.Notification{ID: fmt.Sprint(len(m.messages) + 1), Message: message, Kind: kind}
	m.messages = append(m.messages, n)
	return n
}

func (m *mockNotifier) Dismiss(id string) bool { return false }

func (m *mockNotifier) Active() []domain.Notification { return m.messages }

func (m *mockNotifier) last() domain.Notification {
	if len(m.messages) == 0 {
		return domain.Notification{}
	}
	return m.messages[len(m.messages)-1]
}

// mockDashboardService returns canned stats
type mockDashboardService struct {
	stats *domain.DashboardStats
	err   error
}

func (m *mockDashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	return m.stats, m.err
}

// mockDuplicateFinder returns canned groups
type mockDuplicateFinder struct {
	groups []domain.DuplicateGroup
	err    error
}

func (m *mockDuplicateFinder) Duplicates(ctx context.Context) ([]domain.DuplicateGroup, error) {
	return m.groups, m.err
}
