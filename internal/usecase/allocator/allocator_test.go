package allocator

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/potshare-backend/internal/domain"
)

func participantsWithWeights(weights ...string) []domain.Participant {
	participants := make([]domain.Participant, len(weights))
	for i, w := range weights {
		participants[i] = domain.Participant{ID: uuid.New(), Weight: decimal.RequireFromString(w)}
	}
	return participants
}

func equalParticipants(n int) []domain.Participant {
	participants := make([]domain.Participant, n)
	for i := range participants {
		participants[i] = domain.Participant{ID: uuid.New(), Weight: decimal.NewFromInt(1)}
	}
	return participants
}

func sumSplits(splits []domain.Split) domain.Money {
	var total domain.Money
	for _, s := range splits {
		total += s.Amount
	}
	return total
}

func TestAllocate_EqualThreeWayOwnerAbsorbsRemainder(t *testing.T) {
	// 10.00 split three ways: 3.33 / 3.33 / 3.34, owner gets the extra cent
	participants := equalParticipants(3)
	ownerID := participants[2].ID

	splits, err := Allocate(1000, participants, ownerID, domain.EqualPolicy())

	require.NoError(t, err)
	require.Len(t, splits, 3)
	assert.Equal(t, domain.Money(333), splits[0].Amount)
	assert.Equal(t, domain.Money(333), splits[1].Amount)
	assert.Equal(t, domain.Money(334), splits[2].Amount)
	assert.Equal(t, domain.Money(1000), sumSplits(splits))

	for _, s := range splits {
		assert.False(t, s.IsPaid, "equal split starts unpaid")
	}
}

func TestAllocate_EqualPreservesInputOrder(t *testing.T) {
	participants := equalParticipants(4)

	splits, err := Allocate(1001, participants, participants[0].ID, domain.EqualPolicy())

	require.NoError(t, err)
	for i, s := range splits {
		assert.Equal(t, participants[i].ID, s.ParticipantID)
	}
	assert.Equal(t, domain.Money(251), splits[0].Amount)
}

func TestAllocate_EqualOwnerNotParticipant(t *testing.T) {
	// Remainder goes to the first participant when the owner takes no share
	participants := equalParticipants(3)

	splits, err := Allocate(100, participants, uuid.New(), domain.EqualPolicy())

	require.NoError(t, err)
	assert.Equal(t, domain.Money(34), splits[0].Amount)
	assert.Equal(t, domain.Money(33), splits[1].Amount)
	assert.Equal(t, domain.Money(33), splits[2].Amount)
}

func TestAllocate_EqualFairnessBound(t *testing.T) {
	totals := []domain.Money{1, 7, 99, 100, 1000, 12345, 999999}
	for n := 1; n <= 50; n++ {
		participants := equalParticipants(n)
		ownerID := participants[n/2].ID

		for _, total := range totals {
			splits, err := Allocate(total, participants, ownerID, domain.EqualPolicy())
			require.NoError(t, err)

			base := total / domain.Money(n)
			for _, s := range splits {
				if s.ParticipantID == ownerID {
					assert.Equal(t, base+total%domain.Money(n), s.Amount)
				} else {
					assert.Equal(t, base, s.Amount)
				}
			}
		}
	}
}

func TestAllocate_SinglePayer(t *testing.T) {
	participants := equalParticipants(3)
	ownerID := participants[0].ID
	payerID := participants[1].ID

	splits, err := Allocate(1000, participants, ownerID, domain.SinglePayerPolicy(payerID))

	require.NoError(t, err)
	// Payer absorbs the remainder regardless of who owns the pot
	assert.Equal(t, domain.Money(333), splits[0].Amount)
	assert.Equal(t, domain.Money(334), splits[1].Amount)
	assert.Equal(t, domain.Money(333), splits[2].Amount)

	assert.False(t, splits[0].IsPaid)
	assert.True(t, splits[1].IsPaid)
	assert.False(t, splits[2].IsPaid)
}

func TestAllocate_SinglePayerNotParticipant(t *testing.T) {
	participants := equalParticipants(2)

	_, err := Allocate(1000, participants, participants[0].ID, domain.SinglePayerPolicy(uuid.New()))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "payer must be one of the participants")
}

func TestAllocate_WeightedLeftoverToHeaviest(t *testing.T) {
	// weights 33.3 / 33.3 / 33.4 on 1.00: provisional 33/33/33, leftover cent to C
	participants := participantsWithWeights("33.3", "33.3", "33.4")

	splits, err := Allocate(100, participants, participants[0].ID, domain.WeightedPolicy(nil))

	require.NoError(t, err)
	assert.Equal(t, domain.Money(33), splits[0].Amount)
	assert.Equal(t, domain.Money(33), splits[1].Amount)
	assert.Equal(t, domain.Money(34), splits[2].Amount)
}

func TestAllocate_WeightedTiesKeepInputOrder(t *testing.T) {
	// 1.00 over three equal weights: the single leftover cent goes to the first
	participants := participantsWithWeights("1", "1", "1")

	splits, err := Allocate(100, participants, participants[2].ID, domain.WeightedPolicy(nil))

	require.NoError(t, err)
	assert.Equal(t, domain.Money(34), splits[0].Amount)
	assert.Equal(t, domain.Money(33), splits[1].Amount)
	assert.Equal(t, domain.Money(33), splits[2].Amount)
}

func TestAllocate_WeightedExactDivisionHasNoLeftover(t *testing.T) {
	participants := participantsWithWeights("1", "1", "1")

	splits, err := Allocate(300, participants, participants[0].ID, domain.WeightedPolicy(nil))

	require.NoError(t, err)
	for _, s := range splits {
		assert.Equal(t, domain.Money(100), s.Amount)
	}
}

func TestAllocate_WeightedPolicyOverridesParticipantWeight(t *testing.T) {
	participants := participantsWithWeights("1", "1")
	weights := map[uuid.UUID]decimal.Decimal{
		participants[0].ID: decimal.NewFromInt(3),
	}

	splits, err := Allocate(1000, participants, participants[0].ID, domain.WeightedPolicy(weights))

	require.NoError(t, err)
	assert.Equal(t, domain.Money(750), splits[0].Amount)
	assert.Equal(t, domain.Money(250), splits[1].Amount)
}

func TestAllocate_WeightedZeroWeightGetsNothing(t *testing.T) {
	participants := participantsWithWeights("0", "2", "1")

	splits, err := Allocate(1000, participants, participants[0].ID, domain.WeightedPolicy(nil))

	require.NoError(t, err)
	assert.Equal(t, domain.Money(0), splits[0].Amount)
	assert.Equal(t, domain.Money(667), splits[1].Amount)
	assert.Equal(t, domain.Money(333), splits[2].Amount)
}

func TestAllocate_InvalidInput(t *testing.T) {
	participants := equalParticipants(2)
	duplicate := []domain.Participant{participants[0], participants[0]}

	tests := []struct {
		name         string
		total        domain.Money
		participants []domain.Participant
		policy       domain.SplitPolicy
		errMsg       string
	}{
		{
			name:         "zero total",
			total:        0,
			participants: participants,
			policy:       domain.EqualPolicy(),
			errMsg:       "total amount must be positive",
		},
		{
			name:         "negative total",
			total:        -100,
			participants: participants,
			policy:       domain.EqualPolicy(),
			errMsg:       "total amount must be positive",
		},
		{
			name:         "no participants",
			total:        100,
			participants: nil,
			policy:       domain.EqualPolicy(),
			errMsg:       "participants list cannot be empty",
		},
		{
			name:         "duplicate participant",
			total:        100,
			participants: duplicate,
			policy:       domain.EqualPolicy(),
			errMsg:       "listed more than once",
		},
		{
			name:         "all weights zero",
			total:        100,
			participants: participantsWithWeights("0", "0"),
			policy:       domain.WeightedPolicy(nil),
			errMsg:       "at least one weight must be positive",
		},
		{
			name:         "negative participant weight",
			total:        100,
			participants: participantsWithWeights("-1", "2"),
			policy:       domain.WeightedPolicy(nil),
			errMsg:       "cannot be negative",
		},
		{
			name:         "unknown policy",
			total:        100,
			participants: participants,
			policy:       domain.SplitPolicy{Type: "RANDOM"},
			errMsg:       "split policy must be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits, err := Allocate(tt.total, tt.participants, uuid.New(), tt.policy)

			assert.Nil(t, splits)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestAllocate_ExactSumProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 1; n <= 50; n++ {
		for round := 0; round < 20; round++ {
			total := domain.Money(rng.Int63n(10_000_000) + 1)
			participants := make([]domain.Participant, n)
			for i := range participants {
				// Mix of tiny, huge and zero weights to get heavily skewed vectors
				var w decimal.Decimal
				switch rng.Intn(4) {
				case 0:
					w = decimal.New(rng.Int63n(1000), -3)
				case 1:
					w = decimal.NewFromInt(rng.Int63n(1_000_000))
				case 2:
					w = decimal.Zero
				default:
					w = decimal.New(rng.Int63n(10000), -2)
				}
				participants[i] = domain.Participant{ID: uuid.New(), Weight: w}
			}
			participants[rng.Intn(n)].Weight = decimal.NewFromInt(1) // at least one positive weight
			ownerID := participants[rng.Intn(n)].ID

			policies := []domain.SplitPolicy{
				domain.EqualPolicy(),
				domain.SinglePayerPolicy(participants[rng.Intn(n)].ID),
				domain.WeightedPolicy(nil),
			}

			for _, policy := range policies {
				splits, err := Allocate(total, participants, ownerID, policy)
				require.NoError(t, err)
				require.Len(t, splits, n)
				assert.Equal(t, total, sumSplits(splits), "policy %s, n=%d", policy.Type, n)
			}
		}
	}
}

func TestAllocate_WeightedMinimalDistortion(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	oneCent := decimal.NewFromInt(1)

	for n := 1; n <= 50; n++ {
		total := domain.Money(rng.Int63n(1_000_000) + 1)
		participants := make([]domain.Participant, n)
		totalWeight := decimal.Zero
		for i := range participants {
			w := decimal.New(rng.Int63n(100000)+1, -3)
			participants[i] = domain.Participant{ID: uuid.New(), Weight: w}
			totalWeight = totalWeight.Add(w)
		}

		splits, err := Allocate(total, participants, participants[0].ID, domain.WeightedPolicy(nil))
		require.NoError(t, err)

		for i, s := range splits {
			ideal := decimal.NewFromInt(int64(total)).Mul(participants[i].Weight).Div(totalWeight)
			distortion := decimal.NewFromInt(int64(s.Amount)).Sub(ideal).Abs()
			assert.True(t, distortion.LessThanOrEqual(oneCent),
				"participant %d got %d, ideal %s", i, s.Amount, ideal.String())
		}
	}
}

func TestAllocate_DoesNotMutateInput(t *testing.T) {
	participants := participantsWithWeights("1", "2")
	before := make([]domain.Participant, len(participants))
	copy(before, participants)

	_, err := Allocate(100, participants, participants[0].ID, domain.WeightedPolicy(nil))

	require.NoError(t, err)
	assert.Equal(t, before, participants)
}
