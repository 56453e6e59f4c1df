package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "dnd5e.choices.v1alpha1.ChoiceService"

// Method names
const (
	MethodListChoices      = "ListChoices"
	MethodGetChoice        = "GetChoice"
	MethodResolveChoice    = "ResolveChoice"
	MethodCanUndoChoice    = "CanUndoChoice"
	MethodUndoChoice       = "UndoChoice"
	MethodGetChoiceSummary = "GetChoiceSummary"
)

// ChoiceServiceServer is the server API for the choice service. Requests and
// responses are google.protobuf.Struct messages with snake_case keys.
type ChoiceServiceServer interface {
	ListChoices(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetChoice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResolveChoice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CanUndoChoice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UndoChoice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetChoiceSummary(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc describes the choice service for grpc.Server registration
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ChoiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodListChoices, Handler: unaryHandler(MethodListChoices, ChoiceServiceServer.ListChoices)},
		{MethodName: MethodGetChoice, Handler: unaryHandler(MethodGetChoice, ChoiceServiceServer.GetChoice)},
		{MethodName: MethodResolveChoice, Handler: unaryHandler(MethodResolveChoice, ChoiceServiceServer.ResolveChoice)},
		{MethodName: MethodCanUndoChoice, Handler: unaryHandler(MethodCanUndoChoice, ChoiceServiceServer.CanUndoChoice)},
		{MethodName: MethodUndoChoice, Handler: unaryHandler(MethodUndoChoice, ChoiceServiceServer.UndoChoice)},
		{MethodName: MethodGetChoiceSummary, Handler: unaryHandler(MethodGetChoiceSummary, ChoiceServiceServer.GetChoiceSummary)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterChoiceServiceServer registers srv with s
func RegisterChoiceServiceServer(s grpc.ServiceRegistrar, srv ChoiceServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type unaryMethod func(ChoiceServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

type methodHandler = func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error)

func unaryHandler(method string, call unaryMethod) methodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ChoiceServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ChoiceServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// ChoiceServiceClient is the client API for the choice service
type ChoiceServiceClient interface {
	ListChoices(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetChoice(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ResolveChoice(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CanUndoChoice(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UndoChoice(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetChoiceSummary(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type choiceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewChoiceServiceClient creates a client on top of cc
func NewChoiceServiceClient(cc grpc.ClientConnInterface) ChoiceServiceClient {
	return &choiceServiceClient{cc: cc}
}

func (c *choiceServiceClient) invoke(
	ctx context.Context,
	method string,
	in *structpb.Struct,
	opts []grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *choiceServiceClient) ListChoices(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListChoices, in, opts)
}

func (c *choiceServiceClient) GetChoice(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetChoice, in, opts)
}

func (c *choiceServiceClient) ResolveChoice(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodResolveChoice, in, opts)
}

func (c *choiceServiceClient) CanUndoChoice(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodCanUndoChoice, in, opts)
}

func (c *choiceServiceClient) UndoChoice(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodUndoChoice, in, opts)
}

func (c *choiceServiceClient) GetChoiceSummary(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetChoiceSummary, in, opts)
}
