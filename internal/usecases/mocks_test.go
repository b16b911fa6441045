package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"portfolio.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock HomepageCache
type MockHomepageCache struct {
	mock.Mock
}

func (m *MockHomepageCache) Get(ctx context.Context) (*entities.HomepageView, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entities.HomepageView), args.Bool(1), args.Error(2)
}

func (m *MockHomepageCache) Generation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHomepageCache) Set(ctx context.Context, view *entities.HomepageView, generation int64) error {
	args := m.Called(ctx, view, generation)
	return args.Error(0)
}

func (m *MockHomepageCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Mock ContactMessageRepository
type MockContactMessageRepository struct {
	mock.Mock
}

func (m *MockContactMessageRepository) Create(ctx context.Context, message *entities.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockContactMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ContactMessage), args.Error(1)
}

func (m *MockContactMessageRepository) List(ctx context.Context, filter entities.ContactMessageFilter) ([]*entities.ContactMessage, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.ContactMessage), args.Get(1).(int64), args.Error(2)
}

func (m *MockContactMessageRepository) SetRead(ctx context.Context, id uuid.UUID, isRead bool) error {
	args := m.Called(ctx, id, isRead)
	return args.Error(0)
}

func (m *MockContactMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactMessageRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactMessageRepository) CountUnread(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock Seeder
type MockSeeder struct {
	mock.Mock
}

func (m *MockSeeder) SeedReferenceData(ctx context.Context) (*entities.SeedReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SeedReport), args.Error(1)
}
