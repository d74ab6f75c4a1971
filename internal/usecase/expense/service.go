package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/potshare-backend/internal/domain"
	"github.com/simaogato/potshare-backend/internal/usecase/allocator"
	"github.com/simaogato/potshare-backend/internal/usecase/ledger"
)

// CreateExpenseInput represents the input for recording an expense against a pot
type CreateExpenseInput struct {
	PotID          uuid.UUID
	RequesterID    uuid.UUID
	Description    string
	Amount         string // User-entered decimal, e.g. "12.50"
	CurrencyID     *int   // Optional: Defaults to the pot's default currency
	ParticipantIDs []uuid.UUID
	Policy         domain.SplitPolicy
}

// PayExpenseInput represents a settlement of one split
type PayExpenseInput struct {
	ExpenseID     uuid.UUID
	RequesterID   uuid.UUID
	ParticipantID *uuid.UUID // Optional: Defaults to the requester's own split
	SumPaid       domain.Money
}

// PaymentResult is returned after a split was marked paid.
// Callers use it to decide how to refresh their view of the pot.
type PaymentResult struct {
	ExpenseID     uuid.UUID
	PotID         uuid.UUID
	ParticipantID uuid.UUID
	Amount        domain.Money
	PaidAt        time.Time
	Paid          int
	Total         int
}

// ExpenseService handles expense creation and settlement
type ExpenseService struct {
	PotRepo      domain.PotRepository
	ExpenseRepo  domain.ExpenseRepository
	CurrencyRepo domain.CurrencyRepository
	Publisher    domain.EventPublisher
	Logger       *slog.Logger
}

// NewExpenseService creates a new ExpenseService instance
func NewExpenseService(
	potRepo domain.PotRepository,
	expenseRepo domain.ExpenseRepository,
	currencyRepo domain.CurrencyRepository,
	publisher domain.EventPublisher,
	logger *slog.Logger,
) *ExpenseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseService{
		PotRepo:      potRepo,
		ExpenseRepo:  expenseRepo,
		CurrencyRepo: currencyRepo,
		Publisher:    publisher,
		Logger:       logger,
	}
}

// CreateExpense allocates and records a new expense
// Logic:
//  1. Parse the amount into cents (before any split math)
//  2. Fetch the pot; the requester must be a member and the pot must not be archived
//  3. Resolve the currency (input or pot default) and make sure it exists
//  4. Allocate over the chosen participants (all pot participants by default)
//  5. For EQUAL and WEIGHTED the owner's own split is stored paid
//  6. Validate and save the expense with its splits, then publish expense.created
func (s *ExpenseService) CreateExpense(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error) {
	// 1. Parse amount
	total, err := domain.ParseMoney(input.Amount)
	if err != nil {
		return nil, err
	}

	// 2. Fetch pot and check access
	pot, err := s.PotRepo.GetByID(ctx, input.PotID)
	if err != nil {
		return nil, err
	}

	if !pot.IsMember(input.RequesterID) {
		return nil, fmt.Errorf("%w: user is not a member of pot %s", domain.ErrForbidden, pot.ID)
	}

	if pot.Archived {
		return nil, fmt.Errorf("%w: cannot add expenses to pot %s", domain.ErrLocked, pot.ID)
	}

	// 3. Resolve currency
	currencyID := pot.DefaultCurrencyID
	if input.CurrencyID != nil {
		currencyID = *input.CurrencyID
	}
	if _, err := s.CurrencyRepo.GetByID(ctx, currencyID); err != nil {
		return nil, err
	}

	// 4. Allocate
	participantIDs := input.ParticipantIDs
	if len(participantIDs) == 0 {
		participantIDs = pot.Participants
	}
	for _, id := range participantIDs {
		if !pot.HasParticipant(id) {
			return nil, fmt.Errorf("%w: user %s is not a participant of pot %s", domain.ErrInvalidInput, id, pot.ID)
		}
	}

	participants := participantsFor(participantIDs, input.Policy)
	splits, err := allocator.Allocate(total, participants, pot.OwnerID, input.Policy)
	if err != nil {
		return nil, err
	}

	// 5. Settle the owner's own share
	expenseID := uuid.New()
	now := time.Now()
	payerID := input.RequesterID
	if input.Policy.Type == domain.SplitPolicySinglePayer {
		payerID = input.Policy.PayerID
	}

	for i := range splits {
		splits[i].ExpenseID = expenseID
		if splits[i].ParticipantID == payerID {
			splits[i].IsPaid = true
		}
		if splits[i].IsPaid {
			paidAt := now
			splits[i].PaidAt = &paidAt
		}
	}

	expense := &domain.Expense{
		ID:          expenseID,
		PotID:       pot.ID,
		OwnerID:     input.RequesterID,
		PayerID:     payerID,
		Description: input.Description,
		CurrencyID:  currencyID,
		TotalAmount: total,
		PolicyType:  input.Policy.Type,
		Splits:      splits,
		CreatedAt:   now,
	}

	// 6. Validate and save
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := s.ExpenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	if err := s.Publisher.PublishExpenseCreated(ctx, expense); err != nil {
		s.Logger.WarnContext(ctx, "failed to publish expense.created", "expense_id", expense.ID, "error", err)
	}

	return expense, nil
}

// ListPotExpenses returns the expenses of a pot the requester belongs to
func (s *ExpenseService) ListPotExpenses(ctx context.Context, potID, requesterID uuid.UUID) ([]*domain.Expense, error) {
	pot, err := s.PotRepo.GetByID(ctx, potID)
	if err != nil {
		return nil, err
	}

	if !pot.IsMember(requesterID) {
		return nil, fmt.Errorf("%w: user is not a member of pot %s", domain.ErrForbidden, pot.ID)
	}

	return s.ExpenseRepo.ListByPot(ctx, potID)
}

// PayExpense marks one split of an expense as paid
// Logic:
//  1. Fetch the expense and its pot; archived pots are locked
//  2. Find the split (requester's own unless a participant is given); none means Forbidden
//  3. Check CanMarkPaid and that SumPaid matches the split amount exactly
//  4. Transition the split with MarkPaid and persist it, then publish split.paid
//
// Nothing is persisted when any step fails.
func (s *ExpenseService) PayExpense(ctx context.Context, input PayExpenseInput) (*PaymentResult, error) {
	// 1. Fetch expense and pot
	expense, err := s.ExpenseRepo.GetByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, err
	}

	pot, err := s.PotRepo.GetByID(ctx, expense.PotID)
	if err != nil {
		return nil, err
	}

	if !pot.IsMember(input.RequesterID) {
		return nil, fmt.Errorf("%w: user is not a member of pot %s", domain.ErrForbidden, pot.ID)
	}

	if pot.Archived {
		return nil, fmt.Errorf("%w: cannot settle expenses of pot %s", domain.ErrLocked, pot.ID)
	}

	// 2. Find the split
	participantID := input.RequesterID
	if input.ParticipantID != nil {
		participantID = *input.ParticipantID
	}

	split, ok := expense.SplitFor(participantID)
	if !ok {
		return nil, fmt.Errorf("%w: user %s has no split in this expense", domain.ErrForbidden, participantID)
	}

	// 3. Authorization and amount checks
	if split.IsPaid {
		return nil, fmt.Errorf("%w: participant %s", domain.ErrAlreadyPaid, participantID)
	}

	if !ledger.CanMarkPaid(input.RequesterID, split, expense.OwnerID, pot.Archived) {
		return nil, fmt.Errorf("%w: user may not settle another participant's split", domain.ErrForbidden)
	}

	if input.SumPaid > split.Amount {
		return nil, fmt.Errorf("%w: can't overpay, split is %s", domain.ErrConflict, split.Amount)
	}
	if input.SumPaid < split.Amount {
		return nil, fmt.Errorf("%w: can't underpay, split is %s", domain.ErrConflict, split.Amount)
	}

	// 4. Transition and persist
	paid, err := ledger.MarkPaid(split, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.ExpenseRepo.MarkSplitPaid(ctx, expense.ID, paid.ParticipantID, *paid.PaidAt); err != nil {
		return nil, err
	}

	for i := range expense.Splits {
		if expense.Splits[i].ParticipantID == paid.ParticipantID {
			expense.Splits[i] = paid
		}
	}

	if err := s.Publisher.PublishSplitPaid(ctx, expense, paid); err != nil {
		s.Logger.WarnContext(ctx, "failed to publish split.paid", "expense_id", expense.ID, "error", err)
	}

	paidCount, total := ledger.PaidRatio(expense)
	return &PaymentResult{
		ExpenseID:     expense.ID,
		PotID:         expense.PotID,
		ParticipantID: paid.ParticipantID,
		Amount:        paid.Amount,
		PaidAt:        *paid.PaidAt,
		Paid:          paidCount,
		Total:         total,
	}, nil
}

// participantsFor builds allocator input. Weighted policies without explicit weights
// start from an equal weight vector.
func participantsFor(ids []uuid.UUID, policy domain.SplitPolicy) []domain.Participant {
	if policy.Type == domain.SplitPolicyWeighted && len(policy.Weights) > 0 {
		participants := make([]domain.Participant, len(ids))
		for i, id := range ids {
			participants[i] = domain.Participant{ID: id}
		}
		return participants
	}
	return allocator.EqualWeights(ids)
}
