package allocator

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/potshare-backend/internal/domain"
)

// weightPlaces is the precision weights are kept at (0.01)
const weightPlaces = 2

var hundred = decimal.NewFromInt(100)

// EqualWeights builds the initial weight vector for a weighted split:
// 100/n each, truncated to two places, with the residual on the last participant.
func EqualWeights(ids []uuid.UUID) []domain.Participant {
	participants := make([]domain.Participant, len(ids))
	if len(ids) == 0 {
		return participants
	}

	share := hundred.Div(decimal.NewFromInt(int64(len(ids)))).Truncate(weightPlaces)
	assigned := decimal.Zero
	for i, id := range ids {
		participants[i] = domain.Participant{ID: id, Weight: share}
		assigned = assigned.Add(share)
	}
	last := len(participants) - 1
	participants[last].Weight = participants[last].Weight.Add(hundred.Sub(assigned))

	return participants
}

// Redistribute applies a slider change to one participant's weight and rebalances the others
// so the vector sums to exactly 100. It never fails and never mutates its input.
// Logic:
//  1. Clamp newWeight to [0, 100]
//  2. Spread 100 - newWeight over the other participants proportionally to their current
//     weights, or equally when those sum to zero
//  3. Truncate each to two places and put the residual on the heaviest other participant
func Redistribute(participants []domain.Participant, changedID uuid.UUID, newWeight decimal.Decimal) []domain.Participant {
	result := make([]domain.Participant, len(participants))
	copy(result, participants)

	changed := -1
	for i := range result {
		if result[i].ID == changedID {
			changed = i
			break
		}
	}
	if changed < 0 {
		return result
	}

	if len(result) == 1 {
		result[0].Weight = hundred
		return result
	}

	newWeight = clampWeight(newWeight).Round(weightPlaces)
	result[changed].Weight = newWeight
	remaining := hundred.Sub(newWeight)

	othersTotal := decimal.Zero
	for i, p := range participants {
		if i != changed {
			othersTotal = othersTotal.Add(decimal.Max(p.Weight, decimal.Zero))
		}
	}
	othersCount := decimal.NewFromInt(int64(len(result) - 1))

	assigned := newWeight
	heaviest := -1
	for i, p := range participants {
		if i == changed {
			continue
		}

		var w decimal.Decimal
		if othersTotal.IsPositive() {
			w = remaining.Mul(decimal.Max(p.Weight, decimal.Zero)).Div(othersTotal)
		} else {
			w = remaining.Div(othersCount)
		}
		w = w.Truncate(weightPlaces)

		result[i].Weight = w
		assigned = assigned.Add(w)
		if heaviest < 0 || w.GreaterThan(result[heaviest].Weight) {
			heaviest = i
		}
	}

	// Truncation only ever under-assigns, so the residual is non-negative
	result[heaviest].Weight = result[heaviest].Weight.Add(hundred.Sub(assigned))

	return result
}

func clampWeight(w decimal.Decimal) decimal.Decimal {
	if w.IsNegative() {
		return decimal.Zero
	}
	if w.GreaterThan(hundred) {
		return hundred
	}
	return w
}
