package grpc

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	potsharev1 "github.com/simaogato/potshare-backend/internal/adapter/grpc/potshare/v1"
	"github.com/simaogato/potshare-backend/internal/domain"
	"github.com/simaogato/potshare-backend/internal/usecase/dashboard"
	"github.com/simaogato/potshare-backend/internal/usecase/expense"
	"github.com/simaogato/potshare-backend/internal/usecase/ledger"
)

// parseID parses a required UUID field
func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

func parseIDs(field string, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := parseID(field, r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func idsToStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func timestampOrNil(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// policyFromProto converts the wire policy; a missing policy means EQUAL
func policyFromProto(p *potsharev1.SplitPolicy) (domain.SplitPolicy, error) {
	if p == nil {
		return domain.EqualPolicy(), nil
	}

	switch domain.SplitPolicyType(strings.ToUpper(p.Type)) {
	case "", domain.SplitPolicyEqual:
		return domain.EqualPolicy(), nil

	case domain.SplitPolicySinglePayer:
		payerID, err := parseID("policy.payer_id", p.PayerId)
		if err != nil {
			return domain.SplitPolicy{}, err
		}
		return domain.SinglePayerPolicy(payerID), nil

	case domain.SplitPolicyWeighted:
		weights := make(map[uuid.UUID]decimal.Decimal, len(p.Weights))
		for rawID, rawWeight := range p.Weights {
			id, err := parseID("policy.weights", rawID)
			if err != nil {
				return domain.SplitPolicy{}, err
			}
			w, err := decimal.NewFromString(rawWeight)
			if err != nil {
				return domain.SplitPolicy{}, status.Errorf(codes.InvalidArgument, "invalid weight for %s: %v", rawID, err)
			}
			weights[id] = w
		}
		return domain.WeightedPolicy(weights), nil

	default:
		return domain.SplitPolicy{}, status.Errorf(codes.InvalidArgument, "unknown policy type %q", p.Type)
	}
}

func occurrenceFromProto(raw string) domain.Occurrence {
	return domain.Occurrence(strings.ToUpper(raw))
}

func potToProto(p *domain.Pot) *potsharev1.Pot {
	return &potsharev1.Pot{
		Id:                p.ID.String(),
		Name:              p.Name,
		OwnerId:           p.OwnerID.String(),
		DefaultCurrencyId: int32(p.DefaultCurrencyID),
		ParticipantIds:    idsToStrings(p.Participants),
		Archived:          p.Archived,
		ArchivedAt:        timestampOrNil(p.ArchivedAt),
		CreatedAt:         timestamppb.New(p.CreatedAt),
	}
}

func currencyToProto(c *domain.Currency) *potsharev1.Currency {
	if c == nil {
		return nil
	}
	return &potsharev1.Currency{
		Id:     int32(c.ID),
		Name:   c.Name,
		Symbol: c.Symbol,
	}
}

func expenseToProto(e *domain.Expense) *potsharev1.Expense {
	splits := make([]*potsharev1.Split, 0, len(e.Splits))
	for _, s := range e.Splits {
		splits = append(splits, &potsharev1.Split{
			UserId: s.ParticipantID.String(),
			Amount: s.Amount.String(),
			IsPaid: s.IsPaid,
			PaidAt: timestampOrNil(s.PaidAt),
		})
	}

	paid, total := ledger.PaidRatio(e)
	return &potsharev1.Expense{
		ExpenseId:   e.ID.String(),
		PotId:       e.PotID.String(),
		OwnerId:     e.OwnerID.String(),
		PayerId:     e.PayerID.String(),
		CurrencyId:  int32(e.CurrencyID),
		Description: e.Description,
		Amount:      e.TotalAmount.String(),
		Policy:      string(e.PolicyType),
		Splits:      splits,
		PaidCount:   int32(paid),
		SplitCount:  int32(total),
		CreatedAt:   timestamppb.New(e.CreatedAt),
	}
}

func summaryToProto(s *ledger.PotSummary) *potsharev1.PotSummary {
	expenses := make([]*potsharev1.Expense, 0, len(s.Expenses))
	for _, e := range s.Expenses {
		splits := make([]*potsharev1.Split, 0, len(e.Splits))
		for _, sv := range e.Splits {
			splits = append(splits, &potsharev1.Split{
				UserId:      sv.ParticipantID.String(),
				Amount:      sv.Amount.String(),
				IsPaid:      sv.IsPaid,
				PaidAt:      timestampOrNil(sv.PaidAt),
				CanMarkPaid: sv.CanMarkPaid,
			})
		}
		expenses = append(expenses, &potsharev1.Expense{
			ExpenseId:   e.ExpenseID.String(),
			PotId:       s.PotID.String(),
			OwnerId:     e.OwnerID.String(),
			PayerId:     e.PayerID.String(),
			CurrencyId:  int32(e.CurrencyID),
			Description: e.Description,
			Amount:      e.TotalAmount.String(),
			Splits:      splits,
			PaidCount:   int32(e.Paid),
			SplitCount:  int32(e.Total),
			CreatedAt:   timestamppb.New(e.CreatedAt),
		})
	}

	transfers := make([]*potsharev1.Transfer, 0, len(s.Transfers))
	for _, t := range s.Transfers {
		transfers = append(transfers, &potsharev1.Transfer{
			From:   t.From.String(),
			To:     t.To.String(),
			Amount: t.Amount.String(),
		})
	}

	return &potsharev1.PotSummary{
		PotId:       s.PotID.String(),
		Name:        s.Name,
		Archived:    s.Archived,
		Balance:     s.Balance.String(),
		Outstanding: s.Outstanding.String(),
		CanDelete:   s.CanDelete,
		CanArchive:  s.CanArchive,
		Expenses:    expenses,
		Transfers:   transfers,
		YouOwe:      s.YouOwe.String(),
		OwedToYou:   s.OwedToYou.String(),
	}
}

func paymentToProto(r *expense.PaymentResult) *potsharev1.PayExpenseResponse {
	return &potsharev1.PayExpenseResponse{
		ExpenseId:     r.ExpenseID.String(),
		PotId:         r.PotID.String(),
		ParticipantId: r.ParticipantID.String(),
		Amount:        r.Amount.String(),
		PaidAt:        timestamppb.New(r.PaidAt),
		PaidCount:     int32(r.Paid),
		SplitCount:    int32(r.Total),
	}
}

func overviewToProto(o dashboard.PotOverview) *potsharev1.PotOverview {
	return &potsharev1.PotOverview{
		PotId:          o.PotID.String(),
		Name:           o.Name,
		OwnerId:        o.OwnerID.String(),
		Currency:       currencyToProto(o.Currency),
		ParticipantIds: idsToStrings(o.Participants),
		Balance:        o.Balance.String(),
		Outstanding:    o.Outstanding.String(),
		ExpenseCount:   int32(o.ExpenseCount),
		Archived:       o.Archived,
	}
}

func templateToProto(t *domain.PotTemplate) *potsharev1.PotTemplate {
	return &potsharev1.PotTemplate{
		Id:                t.ID.String(),
		OwnerId:           t.OwnerID.String(),
		Name:              t.Name,
		DefaultCurrencyId: int32(t.DefaultCurrencyID),
		Occurrence:        string(t.Occurrence),
		ParticipantIds:    idsToStrings(t.Participants),
		CreatedAt:         timestamppb.New(t.CreatedAt),
	}
}
