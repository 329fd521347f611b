package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "charactersheet.roster.v1alpha1.RosterService"

// Full method names
const (
	RosterServiceCreateRosterFullMethodName       = "/" + ServiceName + "/CreateRoster"
	RosterServiceGetRosterFullMethodName          = "/" + ServiceName + "/GetRoster"
	RosterServiceDeleteRosterFullMethodName       = "/" + ServiceName + "/DeleteRoster"
	RosterServiceAddCharacterFullMethodName       = "/" + ServiceName + "/AddCharacter"
	RosterServiceIncrementAttributeFullMethodName = "/" + ServiceName + "/IncrementAttribute"
	RosterServiceDecrementAttributeFullMethodName = "/" + ServiceName + "/DecrementAttribute"
	RosterServiceIncrementSkillFullMethodName     = "/" + ServiceName + "/IncrementSkill"
	RosterServiceDecrementSkillFullMethodName     = "/" + ServiceName + "/DecrementSkill"
	RosterServiceSelectClassFullMethodName        = "/" + ServiceName + "/SelectClass"
	RosterServiceCheckSkillFullMethodName         = "/" + ServiceName + "/CheckSkill"
	RosterServiceSaveRosterFullMethodName         = "/" + ServiceName + "/SaveRoster"
)

// RosterServiceServer is the server API for the roster service
type RosterServiceServer interface {
	CreateRoster(context.Context, *CreateRosterRequest) (*RosterResponse, error)
	GetRoster(context.Context, *GetRosterRequest) (*RosterResponse, error)
	DeleteRoster(context.Context, *DeleteRosterRequest) (*DeleteRosterResponse, error)
	AddCharacter(context.Context, *AddCharacterRequest) (*CharacterResponse, error)
	IncrementAttribute(context.Context, *IntentRequest) (*CharacterResponse, error)
	DecrementAttribute(context.Context, *IntentRequest) (*CharacterResponse, error)
	IncrementSkill(context.Context, *IntentRequest) (*CharacterResponse, error)
	DecrementSkill(context.Context, *IntentRequest) (*CharacterResponse, error)
	SelectClass(context.Context, *IntentRequest) (*CharacterResponse, error)
	CheckSkill(context.Context, *CheckSkillRequest) (*CheckSkillResponse, error)
	SaveRoster(context.Context, *SaveRosterRequest) (*SaveRosterResponse, error)
}

// UnimplementedRosterServiceServer can be embedded to have forward compatible implementations
type UnimplementedRosterServiceServer struct{}

func (UnimplementedRosterServiceServer) CreateRoster(context.Context, *CreateRosterRequest) (*RosterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateRoster not implemented")
}
func (UnimplementedRosterServiceServer) GetRoster(context.Context, *GetRosterRequest) (*RosterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRoster not implemented")
}
func (UnimplementedRosterServiceServer) DeleteRoster(context.Context, *DeleteRosterRequest) (*DeleteRosterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteRoster not implemented")
}
func (UnimplementedRosterServiceServer) AddCharacter(context.Context, *AddCharacterRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddCharacter not implemented")
}
func (UnimplementedRosterServiceServer) IncrementAttribute(context.Context, *IntentRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IncrementAttribute not implemented")
}
func (UnimplementedRosterServiceServer) DecrementAttribute(context.Context, *IntentRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DecrementAttribute not implemented")
}
func (UnimplementedRosterServiceServer) IncrementSkill(context.Context, *IntentRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IncrementSkill not implemented")
}
func (UnimplementedRosterServiceServer) DecrementSkill(context.Context, *IntentRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DecrementSkill not implemented")
}
func (UnimplementedRosterServiceServer) SelectClass(context.Context, *IntentRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SelectClass not implemented")
}
func (UnimplementedRosterServiceServer) CheckSkill(context.Context, *CheckSkillRequest) (*CheckSkillResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckSkill not implemented")
}
func (UnimplementedRosterServiceServer) SaveRoster(context.Context, *SaveRosterRequest) (*SaveRosterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveRoster not implemented")
}

// unaryHandler adapts a typed server method to grpc.MethodHandler
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(RosterServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RosterServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RosterServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// RosterServiceDesc is the grpc.ServiceDesc for the roster service
var RosterServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RosterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateRoster",
			Handler:    unaryHandler(RosterServiceCreateRosterFullMethodName, RosterServiceServer.CreateRoster),
		},
		{
			MethodName: "GetRoster",
			Handler:    unaryHandler(RosterServiceGetRosterFullMethodName, RosterServiceServer.GetRoster),
		},
		{
			MethodName: "DeleteRoster",
			Handler:    unaryHandler(RosterServiceDeleteRosterFullMethodName, RosterServiceServer.DeleteRoster),
		},
		{
			MethodName: "AddCharacter",
			Handler:    unaryHandler(RosterServiceAddCharacterFullMethodName, RosterServiceServer.AddCharacter),
		},
		{
			MethodName: "IncrementAttribute",
			Handler:    unaryHandler(RosterServiceIncrementAttributeFullMethodName, RosterServiceServer.IncrementAttribute),
		},
		{
			MethodName: "DecrementAttribute",
			Handler:    unaryHandler(RosterServiceDecrementAttributeFullMethodName, RosterServiceServer.DecrementAttribute),
		},
		{
			MethodName: "IncrementSkill",
			Handler:    unaryHandler(RosterServiceIncrementSkillFullMethodName, RosterServiceServer.IncrementSkill),
		},
		{
			MethodName: "DecrementSkill",
			Handler:    unaryHandler(RosterServiceDecrementSkillFullMethodName, RosterServiceServer.DecrementSkill),
		},
		{
			MethodName: "SelectClass",
			Handler:    unaryHandler(RosterServiceSelectClassFullMethodName, RosterServiceServer.SelectClass),
		},
		{
			MethodName: "CheckSkill",
			Handler:    unaryHandler(RosterServiceCheckSkillFullMethodName, RosterServiceServer.CheckSkill),
		},
		{
			MethodName: "SaveRoster",
			Handler:    unaryHandler(RosterServiceSaveRosterFullMethodName, RosterServiceServer.SaveRoster),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "charactersheet/roster/v1alpha1/roster.json",
}

// RegisterRosterServiceServer registers the roster service on s
func RegisterRosterServiceServer(s grpc.ServiceRegistrar, srv RosterServiceServer) {
	s.RegisterService(&RosterServiceDesc, srv)
}

// RosterServiceClient is the client API for the roster service
type RosterServiceClient interface {
	CreateRoster(ctx context.Context, in *CreateRosterRequest, opts ...grpc.CallOption) (*RosterResponse, error)
	GetRoster(ctx context.Context, in *GetRosterRequest, opts ...grpc.CallOption) (*RosterResponse, error)
	DeleteRoster(ctx context.Context, in *DeleteRosterRequest, opts ...grpc.CallOption) (*DeleteRosterResponse, error)
	AddCharacter(ctx context.Context, in *AddCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	IncrementAttribute(ctx context.Context, in *IntentRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	DecrementAttribute(ctx context.Context, in *IntentRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	IncrementSkill(ctx context.Context, in *IntentRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	DecrementSkill(ctx context.Context, in *IntentRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	SelectClass(ctx context.Context, in *IntentRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	CheckSkill(ctx context.Context, in *CheckSkillRequest, opts ...grpc.CallOption) (*CheckSkillResponse, error)
	SaveRoster(ctx context.Context, in *SaveRosterRequest, opts ...grpc.CallOption) (*SaveRosterResponse, error)
}

type rosterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRosterServiceClient creates a client that always speaks the json content-subtype
func NewRosterServiceClient(cc grpc.ClientConnInterface) RosterServiceClient {
	return &rosterServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) CreateRoster(ctx context.Context, in *CreateRosterRequest, opts ...grpc.CallOption) (*RosterResponse, error) {
	return invoke[RosterResponse](ctx, c.cc, RosterServiceCreateRosterFullMethodName, in, opts)
}

func (c *rosterServiceClient) GetRoster(ctx context.Context, in *GetRosterRequest, opts ...grpc.CallOption) (*RosterResponse, error) {
	return invoke[RosterResponse](ctx, c.cc, RosterServiceGetRosterFullMethodName, in, opts)
}

func (c *rosterServiceClient) DeleteRoster(ctx context.Context, in *DeleteRosterRequest, opts ...grpc.CallOption) (*DeleteRosterResponse, error) {
	return invoke[DeleteRosterResponse](ctx, c.cc, RosterServiceDeleteRosterFullMethodName, in, opts)
}

func (c *rosterServiceClient) AddCharacter(ctx context.Context, in *AddCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, RosterServiceAddCharacterFullMethodName, in, opts)
}

func (c *rosterServiceClient) IncrementAttribute(ctx context.Context, in *IntentRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, RosterServiceIncrementAttributeFullMethodName, in, opts)
}

func (c *rosterServiceClient) DecrementAttribute(ctx context.Context, in *IntentRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, RosterServiceDecrementAttributeFullMethodName, in, opts)
}

func (c *rosterServiceClient) IncrementSkill(ctx context.Context, in *IntentRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, RosterServiceIncrementSkillFullMethodName, in, opts)
}

func (c *rosterServiceClient) DecrementSkill(ctx context.Context, in *IntentRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, RosterServiceDecrementSkillFullMethodName, in, opts)
}

func (c *rosterServiceClient) SelectClass(ctx context.Context, in *IntentRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, RosterServiceSelectClassFullMethodName, in, opts)
}

func (c *rosterServiceClient) CheckSkill(ctx context.Context, in *CheckSkillRequest, opts ...grpc.CallOption) (*CheckSkillResponse, error) {
	return invoke[CheckSkillResponse](ctx, c.cc, RosterServiceCheckSkillFullMethodName, in, opts)
}

func (c *rosterServiceClient) SaveRoster(ctx context.Context, in *SaveRosterRequest, opts ...grpc.CallOption) (*SaveRosterResponse, error) {
	return invoke[SaveRosterResponse](ctx, c.cc, RosterServiceSaveRosterFullMethodName, in, opts)
}
