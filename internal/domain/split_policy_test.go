package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSplitPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		policy  SplitPolicy
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Equal policy should pass",
			policy:  EqualPolicy(),
			wantErr: false,
		},
		{
			name:    "Single payer with payer should pass",
			policy:  SinglePayerPolicy(uuid.New()),
			wantErr: false,
		},
		{
			name:    "Single payer without payer should fail",
			policy:  SinglePayerPolicy(uuid.Nil),
			wantErr: true,
			errMsg:  "single payer policy requires a payer",
		},
		{
			name:    "Weighted without overrides should pass",
			policy:  WeightedPolicy(nil),
			wantErr: false,
		},
		{
			name: "Weighted with negative override should fail",
			policy: WeightedPolicy(map[uuid.UUID]decimal.Decimal{
				uuid.New(): decimal.NewFromInt(-1),
			}),
			wantErr: true,
			errMsg:  "cannot be negative",
		},
		{
			name:    "Unknown policy type should fail",
			policy:  SplitPolicy{Type: "PERCENT"},
			wantErr: true,
			errMsg:  "split policy must be EQUAL, SINGLE_PAYER, or WEIGHTED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
