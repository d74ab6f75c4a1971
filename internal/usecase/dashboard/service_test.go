package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/potshare-backend/internal/domain"
)

type MockPotRepository struct {
	mock.Mock
	domain.PotRepository
}

func (m *MockPotRepository) ListByMember(ctx context.Context, userID uuid.UUID) ([]*domain.Pot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Pot), args.Error(1)
}

type MockExpenseRepository struct {
	mock.Mock
	domain.ExpenseRepository
}

func (m *MockExpenseRepository) ListByPot(ctx context.Context, potID uuid.UUID) ([]*domain.Expense, error) {
	args := m.Called(ctx, potID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Expense), args.Error(1)
}

type MockCurrencyRepository struct {
	mock.Mock
	domain.CurrencyRepository
}

func (m *MockCurrencyRepository) List(ctx context.Context) ([]*domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Currency), args.Error(1)
}

func TestListPotOverviews(t *testing.T) {
	ctx := context.Background()
	potRepo := new(MockPotRepository)
	expenseRepo := new(MockExpenseRepository)
	currencyRepo := new(MockCurrencyRepository)
	service := NewDashboardService(potRepo, expenseRepo, currencyRepo)

	user := uuid.New()
	euro := &domain.Currency{ID: 1, Name: "Euro", Symbol: "€"}
	trip := &domain.Pot{ID: uuid.New(), Name: "Trip", OwnerID: user, DefaultCurrencyID: 1, Participants: []uuid.UUID{user}}
	flat := &domain.Pot{ID: uuid.New(), Name: "Flat", OwnerID: uuid.New(), DefaultCurrencyID: 1, Archived: true}

	potRepo.On("ListByMember", ctx, user).Return([]*domain.Pot{trip, flat}, nil)
	currencyRepo.On("List", ctx).Return([]*domain.Currency{euro}, nil)
	expenseRepo.On("ListByPot", ctx, trip.ID).Return([]*domain.Expense{
		{TotalAmount: 1000, Splits: []domain.Split{{Amount: 600, IsPaid: true}, {Amount: 400}}},
		{TotalAmount: 250, Splits: []domain.Split{{Amount: 250}}},
	}, nil)
	expenseRepo.On("ListByPot", ctx, flat.ID).Return([]*domain.Expense{}, nil)

	overviews, err := service.ListPotOverviews(ctx, user)

	require.NoError(t, err)
	require.Len(t, overviews, 2)

	assert.Equal(t, "Trip", overviews[0].Name)
	assert.Equal(t, euro, overviews[0].Currency)
	assert.Equal(t, domain.Money(1250), overviews[0].Balance)
	assert.Equal(t, domain.Money(650), overviews[0].Outstanding)
	assert.Equal(t, 2, overviews[0].ExpenseCount)

	assert.Equal(t, domain.Money(0), overviews[1].Balance)
	assert.True(t, overviews[1].Archived)

	potRepo.AssertExpectations(t)
	expenseRepo.AssertExpectations(t)
	currencyRepo.AssertExpectations(t)
}

func TestListPotOverviews_RepositoryError(t *testing.T) {
	ctx := context.Background()
	potRepo := new(MockPotRepository)
	service := NewDashboardService(potRepo, new(MockExpenseRepository), new(MockCurrencyRepository))
	user := uuid.New()

	potRepo.On("ListByMember", ctx, user).Return(nil, errors.New("timeout"))

	_, err := service.ListPotOverviews(ctx, user)

	assert.ErrorContains(t, err, "failed to list pots: timeout")
}
