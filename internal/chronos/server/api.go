package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "mdw.chronos.v1.ChronosService"

// ChronosServer is the server API of the Chronos gRPC service. Requests and
// responses are google.protobuf.Struct documents.
type ChronosServer interface {
	Parse(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Format(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Expand(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Resolve(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Evaluate(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(ChronosServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

var chronosServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ChronosServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Parse", Handler: unaryHandler("Parse", ChronosServer.Parse)},
		{MethodName: "Format", Handler: unaryHandler("Format", ChronosServer.Format)},
		{MethodName: "Expand", Handler: unaryHandler("Expand", ChronosServer.Expand)},
		{MethodName: "Resolve", Handler: unaryHandler("Resolve", ChronosServer.Resolve)},
		{MethodName: "Evaluate", Handler: unaryHandler("Evaluate", ChronosServer.Evaluate)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chronos/v1/chronos.proto",
}

// RegisterChronosServer registers srv on s
func RegisterChronosServer(s grpc.ServiceRegistrar, srv ChronosServer) {
	s.RegisterService(&chronosServiceDesc, srv)
}

func unaryHandler(method string, call unaryCall) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	fullMethod := "/" + ServiceName + "/" + method

	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ChronosServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ChronosServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client is a client for the Chronos gRPC service
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client on an established connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Parse calls ChronosService.Parse
func (c *Client) Parse(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Parse", in, opts...)
}

// Format calls ChronosService.Format
func (c *Client) Format(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Format", in, opts...)
}

// Expand calls ChronosService.Expand
func (c *Client) Expand(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Expand", in, opts...)
}

// Resolve calls ChronosService.Resolve
func (c *Client) Resolve(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Resolve", in, opts...)
}

// Evaluate calls ChronosService.Evaluate
func (c *Client) Evaluate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Evaluate", in, opts...)
}
