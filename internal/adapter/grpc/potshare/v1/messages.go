package potsharev1

import "google.golang.org/protobuf/types/known/timestamppb"

// Amounts travel as two-digit decimal strings ("12.50").
// Ids travel as canonical UUID strings.

type Pot struct {
	Id                string                 `json:"id"`
	Name              string                 `json:"name"`
	OwnerId           string                 `json:"owner_id"`
	DefaultCurrencyId int32                  `json:"default_currency_id"`
	ParticipantIds    []string               `json:"participant_ids"`
	Archived          bool                   `json:"archived"`
	ArchivedAt        *timestamppb.Timestamp `json:"archived_at,omitempty"`
	CreatedAt         *timestamppb.Timestamp `json:"created_at"`
}

type Currency struct {
	Id     int32  `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type SplitPolicy struct {
	Type    string            `json:"type"`               // EQUAL, SINGLE_PAYER or WEIGHTED
	PayerId string            `json:"payer_id,omitempty"` // SINGLE_PAYER only
	Weights map[string]string `json:"weights,omitempty"`  // WEIGHTED only, user id to decimal weight
}

type Split struct {
	UserId      string                 `json:"user_id"`
	Amount      string                 `json:"amount"`
	IsPaid      bool                   `json:"is_paid"`
	PaidAt      *timestamppb.Timestamp `json:"paid_at,omitempty"`
	CanMarkPaid bool                   `json:"can_mark_paid"`
}

type Expense struct {
	ExpenseId   string                 `json:"expense_id"`
	PotId       string                 `json:"pot_id"`
	OwnerId     string                 `json:"owner_id"`
	PayerId     string                 `json:"payer_id"`
	CurrencyId  int32                  `json:"currency_id"`
	Description string                 `json:"description"`
	Amount      string                 `json:"amount"`
	Policy      string                 `json:"policy"`
	Splits      []*Split               `json:"splits"`
	PaidCount   int32                  `json:"paid_count"`
	SplitCount  int32                  `json:"split_count"`
	CreatedAt   *timestamppb.Timestamp `json:"created_at"`
}

type Transfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type PotSummary struct {
	PotId       string      `json:"pot_id"`
	Name        string      `json:"name"`
	Archived    bool        `json:"archived"`
	Balance     string      `json:"balance"`
	Outstanding string      `json:"outstanding"`
	CanDelete   bool        `json:"can_delete"`
	CanArchive  bool        `json:"can_archive"`
	Expenses    []*Expense  `json:"expenses"`
	Transfers   []*Transfer `json:"transfers"`
	YouOwe      string      `json:"you_owe"`
	OwedToYou   string      `json:"owed_to_you"`
}

type PotOverview struct {
	PotId          string    `json:"pot_id"`
	Name           string    `json:"name"`
	OwnerId        string    `json:"owner_id"`
	Currency       *Currency `json:"currency,omitempty"`
	ParticipantIds []string  `json:"participant_ids"`
	Balance        string    `json:"balance"`
	Outstanding    string    `json:"outstanding"`
	ExpenseCount   int32     `json:"expense_count"`
	Archived       bool      `json:"archived"`
}

type PotTemplate struct {
	Id                string                 `json:"id"`
	OwnerId           string                 `json:"owner_id"`
	Name              string                 `json:"name"`
	DefaultCurrencyId int32                  `json:"default_currency_id"`
	Occurrence        string                 `json:"occurrence"`
	ParticipantIds    []string               `json:"participant_ids"`
	CreatedAt         *timestamppb.Timestamp `json:"created_at"`
}

type CreatePotRequest struct {
	Name              string   `json:"name"`
	DefaultCurrencyId int32    `json:"default_currency_id"`
	ParticipantIds    []string `json:"participant_ids"`
}

type CreatePotResponse struct {
	Pot *Pot `json:"pot"`
}

type GetPotRequest struct {
	PotId string `json:"pot_id"`
}

type GetPotResponse struct {
	Pot *Pot `json:"pot"`
}

type ListPotsRequest struct{}

type ListPotsResponse struct {
	Pots []*Pot `json:"pots"`
}

type AddParticipantRequest struct {
	PotId   string   `json:"pot_id"`
	UserIds []string `json:"user_ids"`
}

type AddParticipantResponse struct {
	Added int32 `json:"added"`
}

type RemoveParticipantRequest struct {
	PotId  string `json:"pot_id"`
	UserId string `json:"user_id"`
}

type RemoveParticipantResponse struct{}

type ArchivePotRequest struct {
	PotId string `json:"pot_id"`
}

type ArchivePotResponse struct{}

type UnarchivePotRequest struct {
	PotId string `json:"pot_id"`
}

type UnarchivePotResponse struct{}

type DeletePotRequest struct {
	PotId string `json:"pot_id"`
}

type DeletePotResponse struct{}

type GetPotSummaryRequest struct {
	PotId string `json:"pot_id"`
}

type GetPotSummaryResponse struct {
	Summary *PotSummary `json:"summary"`
}

type CreateExpenseRequest struct {
	PotId          string       `json:"pot_id"`
	CurrencyId     int32        `json:"currency_id,omitempty"` // 0 means the pot's default currency
	Description    string       `json:"description"`
	Amount         string       `json:"amount"`
	ParticipantIds []string     `json:"participant_ids,omitempty"`
	Policy         *SplitPolicy `json:"policy"`
}

type CreateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	PotId string `json:"pot_id"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type PayExpenseRequest struct {
	ExpenseId     string `json:"expense_id"`
	ParticipantId string `json:"participant_id,omitempty"`
	SumPaid       string `json:"sum_paid"`
}

type PayExpenseResponse struct {
	ExpenseId     string                 `json:"expense_id"`
	PotId         string                 `json:"pot_id"`
	ParticipantId string                 `json:"participant_id"`
	Amount        string                 `json:"amount"`
	PaidAt        *timestamppb.Timestamp `json:"paid_at"`
	PaidCount     int32                  `json:"paid_count"`
	SplitCount    int32                  `json:"split_count"`
}

type ListCurrenciesRequest struct{}

type ListCurrenciesResponse struct {
	Currencies []*Currency `json:"currencies"`
}

type ListPotOverviewsRequest struct{}

type ListPotOverviewsResponse struct {
	Overviews []*PotOverview `json:"overviews"`
}

type CreateTemplateRequest struct {
	Name              string   `json:"name"`
	DefaultCurrencyId int32    `json:"default_currency_id"`
	Occurrence        string   `json:"occurrence"`
	ParticipantIds    []string `json:"participant_ids"`
}

type CreateTemplateResponse struct {
	Template *PotTemplate `json:"template"`
}

type ListTemplatesRequest struct{}

type ListTemplatesResponse struct {
	Templates []*PotTemplate `json:"templates"`
}

type DeleteTemplateRequest struct {
	TemplateId string `json:"template_id"`
}

type DeleteTemplateResponse struct{}

type InstantiateTemplateRequest struct {
	TemplateId string `json:"template_id"`
}

type InstantiateTemplateResponse struct {
	Pot *Pot `json:"pot"`
}
