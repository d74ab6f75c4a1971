package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/simaogato/potshare-backend/internal/domain"
)

// MockPotRepository is a mock implementation of PotRepository for testing
type MockPotRepository struct {
	mock.Mock
}

func (m *MockPotRepository) Create(ctx context.Context, pot *domain.Pot) error {
	args := m.Called(ctx, pot)
	return args.Error(0)
}

func (m *MockPotRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pot), args.Error(1)
}

func (m *MockPotRepository) ListByMember(ctx context.Context, userID uuid.UUID) ([]*domain.Pot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Pot), args.Error(1)
}

func (m *MockPotRepository) AddParticipant(ctx context.Context, potID, userID uuid.UUID) error {
	args := m.Called(ctx, potID, userID)
	return args.Error(0)
}

func (m *MockPotRepository) RemoveParticipant(ctx context.Context, potID, userID uuid.UUID) error {
	args := m.Called(ctx, potID, userID)
	return args.Error(0)
}

func (m *MockPotRepository) SetArchived(ctx context.Context, potID uuid.UUID, archived bool, archivedAt *time.Time) error {
	args := m.Called(ctx, potID, archived, archivedAt)
	return args.Error(0)
}

func (m *MockPotRepository) Delete(ctx context.Context, potID uuid.UUID) error {
	args := m.Called(ctx, potID)
	return args.Error(0)
}

// MockExpenseRepository is a mock implementation of ExpenseRepository for testing
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListByPot(ctx context.Context, potID uuid.UUID) ([]*domain.Expense, error) {
	args := m.Called(ctx, potID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) MarkSplitPaid(ctx context.Context, expenseID, participantID uuid.UUID, paidAt time.Time) error {
	args := m.Called(ctx, expenseID, participantID, paidAt)
	return args.Error(0)
}

// MockCurrencyRepository is a mock implementation of CurrencyRepository for testing
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) GetByID(ctx context.Context, id int) (*domain.Currency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) Create(ctx context.Context, currency *domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) List(ctx context.Context) ([]*domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Currency), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher for testing
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishExpenseCreated(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishSplitPaid(ctx context.Context, expense *domain.Expense, split domain.Split) error {
	args := m.Called(ctx, expense, split)
	return args.Error(0)
}

// MockTemplateRepository is a mock implementation of TemplateRepository for testing
type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) Create(ctx context.Context, template *domain.PotTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PotTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PotTemplate), args.Error(1)
}

func (m *MockTemplateRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.PotTemplate, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PotTemplate), args.Error(1)
}

func (m *MockTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
