// Package grpcauthctx attaches backend credentials to outgoing gRPC calls.
//
// Credentials are scoped to the call sites that ask for them: nothing here is
// installed on the shared channel, so a call carries a token only when its
// caller wraps it with TokenUnaryClientInterceptor.
package grpcauthctx

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	// TokenHeader is the metadata key the backend reads game tokens from.
	TokenHeader = "token"
	// TokenPrefix is prepended to every caller supplied token value.
	TokenPrefix = "druid"
)

// WithToken returns a context with token metadata when token is non-empty.
func WithToken(ctx context.Context, token string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, TokenHeader, TokenPrefix+token)
}

// TokenUnaryClientInterceptor appends token metadata to the unary calls it wraps.
func TokenUnaryClientInterceptor(token string) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req any,
		reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		return invoker(WithToken(ctx, token), method, req, reply, cc, opts...)
	}
}

// Intercept returns a connection view that runs interceptors, in order, around
// unary calls issued through it. The underlying connection is shared and left
// untouched.
//
// Interceptors receive cc as their *grpc.ClientConn argument only when cc is
// one. For any other implementation, such as the gateway's lazy rpcchannel,
// they receive nil and must not dereference it.
func Intercept(cc grpc.ClientConnInterface, interceptors ...grpc.UnaryClientInterceptor) grpc.ClientConnInterface {
	if len(interceptors) == 0 {
		return cc
	}
	return &interceptedConn{cc: cc, interceptors: interceptors}
}

type interceptedConn struct {
	cc           grpc.ClientConnInterface
	interceptors []grpc.UnaryClientInterceptor
}

func (c *interceptedConn) Invoke(ctx context.Context, method string, args any, reply any, opts ...grpc.CallOption) error {
	conn, _ := c.cc.(*grpc.ClientConn)
	var invoker grpc.UnaryInvoker = func(ctx context.Context, method string, req, reply any, _ *grpc.ClientConn, opts ...grpc.CallOption) error {
		return c.cc.Invoke(ctx, method, req, reply, opts...)
	}
	for i := len(c.interceptors) - 1; i >= 0; i-- {
		next, interceptor := invoker, c.interceptors[i]
		invoker = func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			return interceptor(ctx, method, req, reply, cc, next, opts...)
		}
	}
	return invoker(ctx, method, args, reply, conn, opts...)
}

func (c *interceptedConn) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	return c.cc.NewStream(ctx, desc, method, opts...)
}
