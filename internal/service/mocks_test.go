package service

import (
	"context"
	"sync"
	"time"

	"quiz-form/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ domain.Cache = (*MockCache)(nil)

// --- recordingSink ---
type recordingSink struct {
	mu          sync.Mutex
	completions []Completion
	done        chan struct{}
}

func newRecordingSink() *recordingSink {
	return &recordingSink{done: make(chan struct{}, 16)}
}

func (s *recordingSink) Complete(_ context.Context, c Completion) {
	s.mu.Lock()
	s.completions = append(s.completions, c)
	s.mu.Unlock()
	s.done <- struct{}{}
}

func (s *recordingSink) all() []Completion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Completion, len(s.completions))
	copy(out, s.completions)
	return out
}

func validValues() domain.FormValues {
	return domain.FormValues{
		QuizTitle: "Go Basics",
		Branch:    "Computer Science",
		Sem:       "3",
		Section:   "A",
		Attempts:  "2",
		Marks:     "50",
		Duration:  "30",
		StartDate: "2024-05-01",
		EndDate:   "2024-05-02",
	}
}
