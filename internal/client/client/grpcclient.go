package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/awardkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var grpcMethods = map[string]string{
	methodPing:        "Ping",
	methodCreateAward: "CreateAward",
	methodEditAward:   "EditAward",
	methodDeleteAward: "DeleteAward",
	methodGetAwards:   "GetAwards",
	methodGetConfig:   "GetConfig",
}

// FullMethod returns the gRPC path of an award service method,
// e.g. "/awards.v1.AwardService/GetAwards".
func FullMethod(name string) string {
	return "/" + common.AwardServiceName + "/" + name
}

// GRPCClient talks to the award service over unary gRPC calls. Requests and
// responses are google.protobuf.Struct messages.
type GRPCClient struct {
	api
	endpointURL string
	conn        *grpc.ClientConn
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient prepares a client for endpointURL. The connection is
// established lazily on the first call. Extra dial options are appended to
// the defaults (insecure transport, token interceptor).
func NewGRPCClient(endpointURL, accessToken string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken}
	c.api = api{call: c.invoke, token: accessToken, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return c, nil
}

func (s *GRPCClient) invoke(ctx context.Context, method string, params map[string]any) (json.RawMessage, error) {
	name, ok := grpcMethods[method]
	if !ok {
		return nil, fmt.Errorf("unknown method %q", method)
	}

	req, err := structpb.NewStruct(params)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", method, err)
	}

	resp := &structpb.Struct{}
	if err := s.conn.Invoke(ctx, FullMethod(name), req, resp); err != nil {
		return nil, s.mapError(err)
	}
	return protojson.Marshal(resp)
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.AlreadyExists, codes.Aborted, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrConflict, st.Message())
	case codes.Canceled:
		return context.Canceled
	default:
		return &RemoteError{Code: st.Code().String(), Message: st.Message()}
	}
}
