package allocator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/potshare-backend/internal/domain"
)

// Allocate splits totalAmount across participants according to the policy
// Returns one split per participant, in input order.
// Logic:
//  1. Validate input (positive total, non-empty unique participants, well-formed policy)
//  2. EQUAL: everyone gets floor(total/n); the remainder holder tops up with total mod n
//  3. SINGLE_PAYER: same amounts with the payer as remainder holder; only the payer's split is paid
//  4. WEIGHTED: floor(total * weight / totalWeight), then leftover cents one at a time in leftoverOrder
//
// Safety: Ensures the sum of split amounts equals totalAmount exactly (no penny lost)
func Allocate(totalAmount domain.Money, participants []domain.Participant, ownerID uuid.UUID, policy domain.SplitPolicy) ([]domain.Split, error) {
	if !totalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: total amount must be positive", domain.ErrInvalidInput)
	}

	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: participants list cannot be empty", domain.ErrInvalidInput)
	}

	if err := policy.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(participants))
	for _, p := range participants {
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: participant %s listed more than once", domain.ErrInvalidInput, p.ID)
		}
		seen[p.ID] = true
	}

	var splits []domain.Split
	switch policy.Type {
	case domain.SplitPolicyEqual:
		splits = equalSplit(totalAmount, participants, remainderHolder(participants, ownerID))

	case domain.SplitPolicySinglePayer:
		if !seen[policy.PayerID] {
			return nil, fmt.Errorf("%w: payer must be one of the participants", domain.ErrInvalidInput)
		}
		splits = equalSplit(totalAmount, participants, policy.PayerID)
		for i := range splits {
			splits[i].IsPaid = splits[i].ParticipantID == policy.PayerID
		}

	case domain.SplitPolicyWeighted:
		var err error
		splits, err = weightedSplit(totalAmount, participants, policy.Weights)
		if err != nil {
			return nil, err
		}
	}

	// Safety check: Ensure total allocation equals total amount exactly
	var allocated domain.Money
	for _, s := range splits {
		allocated += s.Amount
	}
	if allocated != totalAmount {
		return nil, errors.New("total allocation does not equal total amount")
	}

	return splits, nil
}

// remainderHolder names the participant that absorbs the equal-split remainder:
// the pot owner when the owner takes part, otherwise the first participant.
func remainderHolder(participants []domain.Participant, ownerID uuid.UUID) uuid.UUID {
	for _, p := range participants {
		if p.ID == ownerID {
			return ownerID
		}
	}
	return participants[0].ID
}

// equalSplit gives every participant floor(total/n) and adds total mod n to the holder
func equalSplit(totalAmount domain.Money, participants []domain.Participant, holder uuid.UUID) []domain.Split {
	n := domain.Money(len(participants))
	baseShare := totalAmount / n
	remainder := totalAmount - baseShare*n

	splits := make([]domain.Split, len(participants))
	for i, p := range participants {
		amount := baseShare
		if p.ID == holder {
			amount += remainder
		}
		splits[i] = domain.Split{
			ParticipantID: p.ID,
			Amount:        amount,
		}
	}
	return splits
}

// weightedSplit allocates proportionally to weight using exact integer division
func weightedSplit(totalAmount domain.Money, participants []domain.Participant, overrides map[uuid.UUID]decimal.Decimal) ([]domain.Split, error) {
	weights := make([]decimal.Decimal, len(participants))
	totalWeight := decimal.Zero
	for i, p := range participants {
		w := p.Weight
		if override, ok := overrides[p.ID]; ok {
			w = override
		}
		if w.IsNegative() {
			return nil, fmt.Errorf("%w: weight for %s cannot be negative", domain.ErrInvalidInput, p.ID)
		}
		weights[i] = w
		totalWeight = totalWeight.Add(w)
	}

	if !totalWeight.IsPositive() {
		return nil, fmt.Errorf("%w: at least one weight must be positive", domain.ErrInvalidInput)
	}

	total := decimal.NewFromInt(int64(totalAmount))
	splits := make([]domain.Split, len(participants))
	var allocated domain.Money
	for i, p := range participants {
		// QuoRem with precision 0 truncates, which is floor for non-negative operands
		quotient, _ := total.Mul(weights[i]).QuoRem(totalWeight, 0)
		cents := domain.Money(quotient.IntPart())
		splits[i] = domain.Split{
			ParticipantID: p.ID,
			Amount:        cents,
		}
		allocated += cents
	}

	// Each floor loses less than one cent, so leftover < len(participants)
	leftover := int(totalAmount - allocated)
	order := leftoverOrder(weights)
	for k := 0; k < leftover; k++ {
		splits[order[k%len(order)]].Amount++
	}

	return splits, nil
}

// leftoverOrder returns participant indexes by descending weight, ties kept in input order
func leftoverOrder(weights []decimal.Decimal) []int {
	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return weights[order[a]].GreaterThan(weights[order[b]])
	})
	return order
}
