package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SplitPolicyType represents how an expense amount is allocated across participants
type SplitPolicyType string

const (
	SplitPolicyEqual       SplitPolicyType = "EQUAL"
	SplitPolicySinglePayer SplitPolicyType = "SINGLE_PAYER"
	SplitPolicyWeighted    SplitPolicyType = "WEIGHTED"
)

// Participant is a pot member taking part in an expense.
// Weight is a relative share; weights need not sum to any fixed total.
type Participant struct {
	ID     uuid.UUID
	Weight decimal.Decimal
}

// SplitPolicy selects the allocation rule for an expense
type SplitPolicy struct {
	Type    SplitPolicyType
	PayerID uuid.UUID                     // SINGLE_PAYER only
	Weights map[uuid.UUID]decimal.Decimal // WEIGHTED only; overrides Participant.Weight
}

// EqualPolicy splits the amount evenly, the pot owner absorbs the remainder
func EqualPolicy() SplitPolicy {
	return SplitPolicy{Type: SplitPolicyEqual}
}

// SinglePayerPolicy splits evenly and marks the payer's share as already paid
func SinglePayerPolicy(payerID uuid.UUID) SplitPolicy {
	return SplitPolicy{Type: SplitPolicySinglePayer, PayerID: payerID}
}

// WeightedPolicy splits proportionally to the given weights
func WeightedPolicy(weights map[uuid.UUID]decimal.Decimal) SplitPolicy {
	return SplitPolicy{Type: SplitPolicyWeighted, Weights: weights}
}

// Validate ensures the policy is well formed on its own.
// Participant-dependent checks (payer membership, all-zero weights) belong to the allocator.
func (p SplitPolicy) Validate() error {
	switch p.Type {
	case SplitPolicyEqual:
		return nil
	case SplitPolicySinglePayer:
		if p.PayerID == uuid.Nil {
			return fmt.Errorf("%w: single payer policy requires a payer", ErrInvalidInput)
		}
		return nil
	case SplitPolicyWeighted:
		for id, w := range p.Weights {
			if w.IsNegative() {
				return fmt.Errorf("%w: weight for %s cannot be negative", ErrInvalidInput, id)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: split policy must be EQUAL, SINGLE_PAYER, or WEIGHTED", ErrInvalidInput)
	}
}
