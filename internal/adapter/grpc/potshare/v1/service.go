package potsharev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "potshare.v1.PotShareService"

// PotShareServiceServer is the server API for PotShareService
type PotShareServiceServer interface {
	CreatePot(context.Context, *CreatePotRequest) (*CreatePotResponse, error)
	GetPot(context.Context, *GetPotRequest) (*GetPotResponse, error)
	ListPots(context.Context, *ListPotsRequest) (*ListPotsResponse, error)
	AddParticipant(context.Context, *AddParticipantRequest) (*AddParticipantResponse, error)
	RemoveParticipant(context.Context, *RemoveParticipantRequest) (*RemoveParticipantResponse, error)
	ArchivePot(context.Context, *ArchivePotRequest) (*ArchivePotResponse, error)
	UnarchivePot(context.Context, *UnarchivePotRequest) (*UnarchivePotResponse, error)
	DeletePot(context.Context, *DeletePotRequest) (*DeletePotResponse, error)
	GetPotSummary(context.Context, *GetPotSummaryRequest) (*GetPotSummaryResponse, error)
	CreateExpense(context.Context, *CreateExpenseRequest) (*CreateExpenseResponse, error)
	ListExpenses(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error)
	PayExpense(context.Context, *PayExpenseRequest) (*PayExpenseResponse, error)
	ListCurrencies(context.Context, *ListCurrenciesRequest) (*ListCurrenciesResponse, error)
	ListPotOverviews(context.Context, *ListPotOverviewsRequest) (*ListPotOverviewsResponse, error)
	CreateTemplate(context.Context, *CreateTemplateRequest) (*CreateTemplateResponse, error)
	ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error)
	DeleteTemplate(context.Context, *DeleteTemplateRequest) (*DeleteTemplateResponse, error)
	InstantiateTemplate(context.Context, *InstantiateTemplateRequest) (*InstantiateTemplateResponse, error)
}

// UnimplementedPotShareServiceServer can be embedded to have forward compatible implementations
type UnimplementedPotShareServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedPotShareServiceServer) CreatePot(context.Context, *CreatePotRequest) (*CreatePotResponse, error) {
	return nil, unimplemented("CreatePot")
}
func (UnimplementedPotShareServiceServer) GetPot(context.Context, *GetPotRequest) (*GetPotResponse, error) {
	return nil, unimplemented("GetPot")
}
func (UnimplementedPotShareServiceServer) ListPots(context.Context, *ListPotsRequest) (*ListPotsResponse, error) {
	return nil, unimplemented("ListPots")
}
func (UnimplementedPotShareServiceServer) AddParticipant(context.Context, *AddParticipantRequest) (*AddParticipantResponse, error) {
	return nil, unimplemented("AddParticipant")
}
func (UnimplementedPotShareServiceServer) RemoveParticipant(context.Context, *RemoveParticipantRequest) (*RemoveParticipantResponse, error) {
	return nil, unimplemented("RemoveParticipant")
}
func (UnimplementedPotShareServiceServer) ArchivePot(context.Context, *ArchivePotRequest) (*ArchivePotResponse, error) {
	return nil, unimplemented("ArchivePot")
}
func (UnimplementedPotShareServiceServer) UnarchivePot(context.Context, *UnarchivePotRequest) (*UnarchivePotResponse, error) {
	return nil, unimplemented("UnarchivePot")
}
func (UnimplementedPotShareServiceServer) DeletePot(context.Context, *DeletePotRequest) (*DeletePotResponse, error) {
	return nil, unimplemented("DeletePot")
}
func (UnimplementedPotShareServiceServer) GetPotSummary(context.Context, *GetPotSummaryRequest) (*GetPotSummaryResponse, error) {
	return nil, unimplemented("GetPotSummary")
}
func (UnimplementedPotShareServiceServer) CreateExpense(context.Context, *CreateExpenseRequest) (*CreateExpenseResponse, error) {
	return nil, unimplemented("CreateExpense")
}
func (UnimplementedPotShareServiceServer) ListExpenses(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error) {
	return nil, unimplemented("ListExpenses")
}
func (UnimplementedPotShareServiceServer) PayExpense(context.Context, *PayExpenseRequest) (*PayExpenseResponse, error) {
	return nil, unimplemented("PayExpense")
}
func (UnimplementedPotShareServiceServer) ListCurrencies(context.Context, *ListCurrenciesRequest) (*ListCurrenciesResponse, error) {
	return nil, unimplemented("ListCurrencies")
}
func (UnimplementedPotShareServiceServer) ListPotOverviews(context.Context, *ListPotOverviewsRequest) (*ListPotOverviewsResponse, error) {
	return nil, unimplemented("ListPotOverviews")
}
func (UnimplementedPotShareServiceServer) CreateTemplate(context.Context, *CreateTemplateRequest) (*CreateTemplateResponse, error) {
	return nil, unimplemented("CreateTemplate")
}
func (UnimplementedPotShareServiceServer) ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error) {
	return nil, unimplemented("ListTemplates")
}
func (UnimplementedPotShareServiceServer) DeleteTemplate(context.Context, *DeleteTemplateRequest) (*DeleteTemplateResponse, error) {
	return nil, unimplemented("DeleteTemplate")
}
func (UnimplementedPotShareServiceServer) InstantiateTemplate(context.Context, *InstantiateTemplateRequest) (*InstantiateTemplateResponse, error) {
	return nil, unimplemented("InstantiateTemplate")
}

// FullMethod returns the gRPC path of a method, e.g. /potshare.v1.PotShareService/CreatePot
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unaryMethod adapts a typed server method to a grpc.MethodDesc
func unaryMethod[Req, Resp any](name string, call func(PotShareServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(PotShareServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(PotShareServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// PotShareService_ServiceDesc is the grpc.ServiceDesc for PotShareService
var PotShareService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PotShareServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("CreatePot", PotShareServiceServer.CreatePot),
		unaryMethod("GetPot", PotShareServiceServer.GetPot),
		unaryMethod("ListPots", PotShareServiceServer.ListPots),
		unaryMethod("AddParticipant", PotShareServiceServer.AddParticipant),
		unaryMethod("RemoveParticipant", PotShareServiceServer.RemoveParticipant),
		unaryMethod("ArchivePot", PotShareServiceServer.ArchivePot),
		unaryMethod("UnarchivePot", PotShareServiceServer.UnarchivePot),
		unaryMethod("DeletePot", PotShareServiceServer.DeletePot),
		unaryMethod("GetPotSummary", PotShareServiceServer.GetPotSummary),
		unaryMethod("CreateExpense", PotShareServiceServer.CreateExpense),
		unaryMethod("ListExpenses", PotShareServiceServer.ListExpenses),
		unaryMethod("PayExpense", PotShareServiceServer.PayExpense),
		unaryMethod("ListCurrencies", PotShareServiceServer.ListCurrencies),
		unaryMethod("ListPotOverviews", PotShareServiceServer.ListPotOverviews),
		unaryMethod("CreateTemplate", PotShareServiceServer.CreateTemplate),
		unaryMethod("ListTemplates", PotShareServiceServer.ListTemplates),
		unaryMethod("DeleteTemplate", PotShareServiceServer.DeleteTemplate),
		unaryMethod("InstantiateTemplate", PotShareServiceServer.InstantiateTemplate),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterPotShareServiceServer registers srv on s
func RegisterPotShareServiceServer(s grpc.ServiceRegistrar, srv PotShareServiceServer) {
	s.RegisterService(&PotShareService_ServiceDesc, srv)
}

// PotShareServiceClient is a typed client for PotShareService.
// Every call uses the JSON codec.
type PotShareServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPotShareServiceClient creates a client on top of an existing connection
func NewPotShareServiceClient(cc grpc.ClientConnInterface) *PotShareServiceClient {
	return &PotShareServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, c *PotShareServiceClient, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PotShareServiceClient) CreatePot(ctx context.Context, in *CreatePotRequest, opts ...grpc.CallOption) (*CreatePotResponse, error) {
	return invoke[CreatePotResponse](ctx, c, "CreatePot", in, opts)
}

func (c *PotShareServiceClient) GetPot(ctx context.Context, in *GetPotRequest, opts ...grpc.CallOption) (*GetPotResponse, error) {
	return invoke[GetPotResponse](ctx, c, "GetPot", in, opts)
}

func (c *PotShareServiceClient) ListPots(ctx context.Context, in *ListPotsRequest, opts ...grpc.CallOption) (*ListPotsResponse, error) {
	return invoke[ListPotsResponse](ctx, c, "ListPots", in, opts)
}

func (c *PotShareServiceClient) AddParticipant(ctx context.Context, in *AddParticipantRequest, opts ...grpc.CallOption) (*AddParticipantResponse, error) {
	return invoke[AddParticipantResponse](ctx, c, "AddParticipant", in, opts)
}

func (c *PotShareServiceClient) RemoveParticipant(ctx context.Context, in *RemoveParticipantRequest, opts ...grpc.CallOption) (*RemoveParticipantResponse, error) {
	return invoke[RemoveParticipantResponse](ctx, c, "RemoveParticipant", in, opts)
}

func (c *PotShareServiceClient) ArchivePot(ctx context.Context, in *ArchivePotRequest, opts ...grpc.CallOption) (*ArchivePotResponse, error) {
	return invoke[ArchivePotResponse](ctx, c, "ArchivePot", in, opts)
}

func (c *PotShareServiceClient) UnarchivePot(ctx context.Context, in *UnarchivePotRequest, opts ...grpc.CallOption) (*UnarchivePotResponse, error) {
	return invoke[UnarchivePotResponse](ctx, c, "UnarchivePot", in, opts)
}

func (c *PotShareServiceClient) DeletePot(ctx context.Context, in *DeletePotRequest, opts ...grpc.CallOption) (*DeletePotResponse, error) {
	return invoke[DeletePotResponse](ctx, c, "DeletePot", in, opts)
}

func (c *PotShareServiceClient) GetPotSummary(ctx context.Context, in *GetPotSummaryRequest, opts ...grpc.CallOption) (*GetPotSummaryResponse, error) {
	return invoke[GetPotSummaryResponse](ctx, c, "GetPotSummary", in, opts)
}

func (c *PotShareServiceClient) CreateExpense(ctx context.Context, in *CreateExpenseRequest, opts ...grpc.CallOption) (*CreateExpenseResponse, error) {
	return invoke[CreateExpenseResponse](ctx, c, "CreateExpense", in, opts)
}

func (c *PotShareServiceClient) ListExpenses(ctx context.Context, in *ListExpensesRequest, opts ...grpc.CallOption) (*ListExpensesResponse, error) {
	return invoke[ListExpensesResponse](ctx, c, "ListExpenses", in, opts)
}

func (c *PotShareServiceClient) PayExpense(ctx context.Context, in *PayExpenseRequest, opts ...grpc.CallOption) (*PayExpenseResponse, error) {
	return invoke[PayExpenseResponse](ctx, c, "PayExpense", in, opts)
}

func (c *PotShareServiceClient) ListCurrencies(ctx context.Context, in *ListCurrenciesRequest, opts ...grpc.CallOption) (*ListCurrenciesResponse, error) {
	return invoke[ListCurrenciesResponse](ctx, c, "ListCurrencies", in, opts)
}

func (c *PotShareServiceClient) ListPotOverviews(ctx context.Context, in *ListPotOverviewsRequest, opts ...grpc.CallOption) (*ListPotOverviewsResponse, error) {
	return invoke[ListPotOverviewsResponse](ctx, c, "ListPotOverviews", in, opts)
}

func (c *PotShareServiceClient) CreateTemplate(ctx context.Context, in *CreateTemplateRequest, opts ...grpc.CallOption) (*CreateTemplateResponse, error) {
	return invoke[CreateTemplateResponse](ctx, c, "CreateTemplate", in, opts)
}

func (c *PotShareServiceClient) ListTemplates(ctx context.Context, in *ListTemplatesRequest, opts ...grpc.CallOption) (*ListTemplatesResponse, error) {
	return invoke[ListTemplatesResponse](ctx, c, "ListTemplates", in, opts)
}

func (c *PotShareServiceClient) DeleteTemplate(ctx context.Context, in *DeleteTemplateRequest, opts ...grpc.CallOption) (*DeleteTemplateResponse, error) {
	return invoke[DeleteTemplateResponse](ctx, c, "DeleteTemplate", in, opts)
}

func (c *PotShareServiceClient) InstantiateTemplate(ctx context.Context, in *InstantiateTemplateRequest, opts ...grpc.CallOption) (*InstantiateTemplateResponse, error) {
	return invoke[InstantiateTemplateResponse](ctx, c, "InstantiateTemplate", in, opts)
}
