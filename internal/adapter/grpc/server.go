package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	potsharev1 "github.com/simaogato/potshare-backend/internal/adapter/grpc/potshare/v1"
	"github.com/simaogato/potshare-backend/internal/domain"
	"github.com/simaogato/potshare-backend/internal/usecase/dashboard"
	"github.com/simaogato/potshare-backend/internal/usecase/expense"
	"github.com/simaogato/potshare-backend/internal/usecase/pot"
	"github.com/simaogato/potshare-backend/internal/usecase/template"
)

// Server implements the PotShareService gRPC server
type Server struct {
	potsharev1.UnimplementedPotShareServiceServer

	PotService       *pot.PotService
	ExpenseService   *expense.ExpenseService
	DashboardService *dashboard.DashboardService
	TemplateService  *template.TemplateService

	// Now is the clock used to date template instances
	Now func() time.Time
}

// NewServer creates a new gRPC server instance
func NewServer(
	potService *pot.PotService,
	expenseService *expense.ExpenseService,
	dashboardService *dashboard.DashboardService,
	templateService *template.TemplateService,
) *Server {
	return &Server{
		PotService:       potService,
		ExpenseService:   expenseService,
		DashboardService: dashboardService,
		TemplateService:  templateService,
		Now:              time.Now,
	}
}

// CreatePot handles the CreatePot RPC
func (s *Server) CreatePot(ctx context.Context, req *potsharev1.CreatePotRequest) (*potsharev1.CreatePotResponse, error) {
	requesterID, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	participantIDs, err := parseIDs("participant_ids", req.ParticipantIds)
	if err != nil {
		return nil, err
	}

	p, err := s.PotService.CreatePot(ctx, pot.CreatePotInput{
		OwnerID:           requesterID,
		Name:              req.Name,
		DefaultCurrencyID: int(req.DefaultCurrencyId),
		ParticipantIDs:    participantIDs,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &potsharev1.CreatePotResponse{Pot: potToProto(p)}, nil
}

// GetPot handles the GetPot RPC
func (s *Server) GetPot(ctx context.Context, req *potsharev1.GetPotRequest) (*potsharev1.GetPotResponse, error) {
	requesterID, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	potID, err := parseID("pot_id", req.PotId)
	if err != nil {
		return nil, err
	}

	p, err := s.PotService.GetPot(ctx, potID, requesterID)
	if err != nil {
		return nil, mapError(err)
	}

	return &potsharev1.GetPotResponse{Pot: potToProto(p)}, nil
}

// ListPots handles the ListPots RPC
func (s *Server) ListPots(ctx context.Context, req *potsharev1.ListPotsRequest) (*potsharev1.ListPotsResponse, error) {
	requesterID, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	pots, err := s.PotService.ListPots(ctx, requesterID)
	if err != nil {
		return nil, mapError(err)
	}

	protoPots := make([]*potsharev1.Pot, 0, len(pots))
	for _, p := range pots {
		protoPots = append(protoPots, potToProto(p))
	}

	return &potsharev1.ListPotsResponse{Pots: protoPots}, nil
}

// AddParticipant handles the AddParticipant RPC.
// Users are added in request order; the response reports how many were added
// when a later user fails.
func (s *Server) AddParticipant(ctx context.Context, req *potsharev1.AddParticipantRequest) (*potsharev1.AddParticipantResponse, error) {
	requesterID, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	potID, err := parseID("pot_id", req.PotId)
	if err != nil {
		return nil, err
	}

	if len(req.UserIds) == 0 {
		return nil, status.Errorf(codes.InvalidArgument, "user_ids cannot be empty")
	}

	userIDs, err := parseIDs("user_ids", req.UserIds)
	if err != nil {
		return nil, err
	}

	added, err := s.PotService.AddParticipants(ctx, potID, requesterID, userIDs)
	if err != nil {
		return nil, mapError(err)
	}

	return &potsharev1.AddParticipantResponse{Added: int32(added)}, nil
}

// RemoveParticipant handles the RemoveParticipant RPC
func (s *Server) RemoveParticipant(ctx context.Context, req *potsharev1.RemoveParticipantRequest) (*potsharev1.RemoveParticipantResponse, error) {
	requesterID, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	potID, err := parseID("pot_id", req.PotId)
	if err != nil {
		return nil, err
	}

	userID, err := parseID("user_id", req.UserId)
	if err != nil {
		return nil, err
	}

	if err := s.PotService.RemoveParticipant(ctx, potID, requesterID, userID); err != nil {
		return nil, mapError(err)
	}

	return &potsharev1.RemoveParticipantResponse{}, nil
}

// ArchivePot handles the ArchivePot RPC
func (s *Server) ArchivePot(ctx context.Context, req *potsharev1.ArchivePotRequest) (*potsharev1.ArchivePotResponse, error) {
	requesterID, potID, err := requesterAndPot(ctx, req.PotId)
	if err != nil {
		return nil, err
	}

	if err := s.PotService.ArchivePot(ctx, potID, requesterID); err != nil {
		return nil, mapError(err)
	}

	return &potsharev1.ArchivePotResponse{}, nil
}

// UnarchivePot handles the UnarchivePot RPC
func (s *Server) UnarchivePot(ctx context.Context, req *potsharev1.UnarchivePotRequest) (*potsharev1.UnarchivePotResponse, error) {
	requesterID, potID, err := requesterAndPot(ctx, req.PotId)
	if err != nil {
		return nil, err
	}

	if err := s.PotService.UnarchivePot(ctx, potID, requesterID); err != nil {
		return nil, mapError(err)
	}

	return &potsharev1.UnarchivePotResponse{}, nil
}

// DeletePot handles the DeletePot RPC
func (s *Server) DeletePot(ctx context.Context, req *potsharev1.DeletePotRequest) (*potsharev1.DeletePotResponse, error) {
	requesterID, potID, err := requesterAndPot(ctx, req.PotId)
	if err != nil {
		return nil, err
	}

	if err := s.PotService.DeletePot(ctx, potID, requesterID); err != nil {
		return nil, mapError(err)
	}

	return &potsharev1.DeletePotResponse{}, nil
}

// GetPotSummary handles the GetPotSummary RPC
func (s *Server) GetPotSummary(ctx context.Context, req *potsharev1.GetPotSummaryRequest) (*potsharev1.GetPotSummaryResponse, error) {
	requesterID, potID, err := requesterAndPot(ctx, req.PotId)
	if err != nil {
		return nil, err
	}

	summary, err := s.PotService.GetPotSummary(ctx, potID, requesterID)
	if err != nil {
		return nil, mapError(err)
	}

	return &potsharev1.GetPotSummaryResponse{Summary: summaryToProto(summary)}, nil
}

// CreateExpense handles the CreateExpense RPC
func (s *Server) CreateExpense(ctx context.Context, req *potsharev1.CreateExpenseRequest) (*potsharev1.CreateExpenseResponse, error) {
	requesterID, potID, err := requesterAndPot(ctx, req.PotId)
	if err != nil {
		return nil, err
	}

	policy, err := policyFromProto(req.Policy)
	if err != nil {
		return nil, err
	}

	participantIDs, err := parseIDs("participant_ids", req.ParticipantIds)
	if err != nil {
		return nil, err
	}

	// Parse optional currency; zero means the pot's default
	var currencyID *int
	if req.CurrencyId != 0 {
		id := int(req.CurrencyId)
		currencyID = &id
	}

	e, err := s.ExpenseService.CreateExpense(ctx, expense.CreateExpenseInput{
		PotID:          potID,
		RequesterID:    requesterID,
		Description:    req.Description,
		Amount:         req.Amount,
		CurrencyID:     currencyID,
		ParticipantIDs: participantIDs,
		Policy:         policy,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &potsharev1.CreateExpenseResponse{Expense: expenseToProto(e)}, nil
}

// ListExpenses handles the ListExpenses RPC
func (s *Server) ListExpenses(ctx context.Context, req *potsharev1.ListExpensesRequest) (*potsharev1.ListExpensesResponse, error) {
	requesterID, potID, err := requesterAndPot(ctx, req.PotId)
	if err != nil {
		return nil, err
	}

	expenses, err := s.ExpenseService.ListPotExpenses(ctx, potID, requesterID)
	if err != nil {
		return nil, mapError(err)
	}

	protoExpenses := make([]*potsharev1.Expense, 0, len(expenses))
	for _, e := range expenses {
		protoExpenses = append(protoExpenses, expenseToProto(e))
	}

	return &potsharev1.ListExpensesResponse{Expenses: protoExpenses}, nil
}

// PayExpense handles the PayExpense RPC
func (s *Server) PayExpense(ctx context.Context, req *potsharev1.PayExpenseRequest) (*potsharev1.PayExpenseResponse, error) {
	requesterID, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	expenseID, err := parseID("expense_id", req.ExpenseId)
	if err != nil {
		return nil, err
	}

	// Parse optional participant; empty means the requester's own split
	var participantID *uuid.UUID
	if req.ParticipantId != "" {
		id, err := parseID("participant_id", req.ParticipantId)
		if err != nil {
			return nil, err
		}
		participantID = &id
	}

	sumPaid, err := domain.ParseMoney(req.SumPaid)
	if err != nil {
		return nil, mapError(err)
	}

	result, err := s.ExpenseService.PayExpense(ctx, expense.PayExpenseInput{
		ExpenseID:     expenseID,
		RequesterID:   requesterID,
		ParticipantID: participantID,
		SumPaid:       sumPaid,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return paymentToProto(result), nil
}

// ListCurrencies handles the ListCurrencies RPC
func (s *Server) ListCurrencies(ctx context.Context, req *potsharev1.ListCurrenciesRequest) (*potsharev1.ListCurrenciesResponse, error) {
	currencies, err := s.DashboardService.CurrencyRepo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	protoCurrencies := make([]*potsharev1.Currency, 0, len(currencies))
	for _, c := range currencies {
		protoCurrencies = append(protoCurrencies, currencyToProto(c))
	}

	return &potsharev1.ListCurrenciesResponse{Currencies: protoCurrencies}, nil
}

// ListPotOverviews handles the ListPotOverviews RPC
func (s *Server) ListPotOverviews(ctx context.Context, req *potsharev1.ListPotOverviewsRequest) (*potsharev1.ListPotOverviewsResponse, error) {
	requesterID, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	overviews, err := s.DashboardService.ListPotOverviews(ctx, requesterID)
	if err != nil {
		return nil, mapError(err)
	}

	protoOverviews := make([]*potsharev1.PotOverview, 0, len(overviews))
	for _, o := range overviews {
		protoOverviews = append(protoOverviews, overviewToProto(o))
	}

	return &potsharev1.ListPotOverviewsResponse{Overviews: protoOverviews}, nil
}

// CreateTemplate handles the CreateTemplate RPC
func (s *Server) CreateTemplate(ctx context.Context, req *potsharev1.CreateTemplateRequest) (*potsharev1.CreateTemplateResponse, error) {
	requesterID, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	participantIDs, err := parseIDs("participant_ids", req.ParticipantIds)
	if err != nil {
		return nil, err
	}

	t, err := s.TemplateService.CreateTemplate(ctx, template.CreateTemplateInput{
		OwnerID:           requesterID,
		Name:              req.Name,
		DefaultCurrencyID: int(req.DefaultCurrencyId),
		Occurrence:        occurrenceFromProto(req.Occurrence),
		ParticipantIDs:    participantIDs,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &potsharev1.CreateTemplateResponse{Template: templateToProto(t)}, nil
}

// ListTemplates handles the ListTemplates RPC
func (s *Server) ListTemplates(ctx context.Context, req *potsharev1.ListTemplatesRequest) (*potsharev1.ListTemplatesResponse, error) {
	requesterID, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	templates, err := s.TemplateService.ListTemplates(ctx, requesterID)
	if err != nil {
		return nil, mapError(err)
	}

	protoTemplates := make([]*potsharev1.PotTemplate, 0, len(templates))
	for _, t := range templates {
		protoTemplates = append(protoTemplates, templateToProto(t))
	}

	return &potsharev1.ListTemplatesResponse{Templates: protoTemplates}, nil
}

// DeleteTemplate handles the DeleteTemplate RPC
func (s *Server) DeleteTemplate(ctx context.Context, req *potsharev1.DeleteTemplateRequest) (*potsharev1.DeleteTemplateResponse, error) {
	requesterID, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	templateID, err := parseID("template_id", req.TemplateId)
	if err != nil {
		return nil, err
	}

	if err := s.TemplateService.DeleteTemplate(ctx, templateID, requesterID); err != nil {
		return nil, mapError(err)
	}

	return &potsharev1.DeleteTemplateResponse{}, nil
}

// InstantiateTemplate handles the InstantiateTemplate RPC
func (s *Server) InstantiateTemplate(ctx context.Context, req *potsharev1.InstantiateTemplateRequest) (*potsharev1.InstantiateTemplateResponse, error) {
	requesterID, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	templateID, err := parseID("template_id", req.TemplateId)
	if err != nil {
		return nil, err
	}

	p, err := s.TemplateService.Instantiate(ctx, templateID, requesterID, s.Now())
	if err != nil {
		return nil, mapError(err)
	}

	return &potsharev1.InstantiateTemplateResponse{Pot: potToProto(p)}, nil
}

// requester returns the authenticated user or status.Unauthenticated
func requester(ctx context.Context) (uuid.UUID, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return uuid.Nil, status.Error(codes.Unauthenticated, err.Error())
	}
	return userID, nil
}

func requesterAndPot(ctx context.Context, rawPotID string) (uuid.UUID, uuid.UUID, error) {
	requesterID, err := requester(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	potID, err := parseID("pot_id", rawPotID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return requesterID, potID, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, domain.ErrAlreadyPaid), errors.Is(err, domain.ErrLocked):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
