// Package client wraps the Inventory gRPC client: connection setup, access
// token propagation and error mapping.
package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/rmoraesb/sentinela/internal/common"
	pb "github.com/rmoraesb/sentinela/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.InventoryClient
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

func NewInventoryClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewInventoryClient(conn)
	return nil
}

// mapError folds transport failures into package sentinels so the CLI can
// react without inspecting gRPC status codes.
func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable:
		return ErrUnavailable
	case codes.Unauthenticated:
		return ErrUnauthorized
	default:
		return err
	}
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// LoggedIn reports whether a Login call has stored an access token.
func (s *GRPCClient) LoggedIn() bool {
	return s.accessToken != ""
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) Register(ctx context.Context, userName, password string) error {

	req := &pb.RegisterAdminRequest{Username: userName, Password: password}

	if _, err := s.client.RegisterAdmin(ctx, req); err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) Login(ctx context.Context, userName, password string) error {

	req := &pb.LoginRequest{Username: userName, Password: password}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.AccessToken

	return nil

}

func (s *GRPCClient) CreateSystem(ctx context.Context, system *pb.System) (*pb.System, error) {

	resp, err := s.client.CreateSystem(ctx, &pb.CreateSystemRequest{System: system})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.System, nil

}

func (s *GRPCClient) ListSystems(ctx context.Context) ([]*pb.System, error) {

	resp, err := s.client.ListSystems(ctx, &pb.ListSystemsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.Systems, nil

}

func (s *GRPCClient) GetSystem(ctx context.Context, id string) (*pb.System, error) {

	resp, err := s.client.GetSystem(ctx, &pb.GetSystemRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.System, nil

}

func (s *GRPCClient) UpdateSystem(ctx context.Context, system *pb.System) (*pb.System, error) {

	resp, err := s.client.UpdateSystem(ctx, &pb.UpdateSystemRequest{System: system})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.System, nil

}

func (s *GRPCClient) DeleteSystem(ctx context.Context, id string) error {

	_, err := s.client.DeleteSystem(ctx, &pb.DeleteSystemRequest{Id: id})
	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) UploadSystemUsers(ctx context.Context, systemID, fileName string, content []byte) (*pb.ReconciliationReport, error) {

	req := &pb.UploadSystemUsersRequest{SystemId: systemID, FileName: fileName, Content: content}

	resp, err := s.client.UploadSystemUsers(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.Report, nil

}

func (s *GRPCClient) UploadTruthList(ctx context.Context, fileName string, content []byte) (accepted, rejected int32, err error) {

	req := &pb.UploadTruthListRequest{FileName: fileName, Content: content}

	resp, err := s.client.UploadTruthList(ctx, req)
	if err != nil {
		return 0, 0, s.mapError(err)
	}

	return resp.Accepted, resp.Rejected, nil

}

func (s *GRPCClient) MatchPreview(ctx context.Context, systemID string) ([]*pb.PreviewEntry, error) {

	resp, err := s.client.MatchPreview(ctx, &pb.MatchPreviewRequest{SystemId: systemID})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.Entries, nil

}

func (s *GRPCClient) ComplianceSummary(ctx context.Context) (*pb.ComplianceSummaryResponse, error) {

	resp, err := s.client.ComplianceSummary(ctx, &pb.ComplianceSummaryRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp, nil

}

func (s *GRPCClient) ImportHistory(ctx context.Context, limit int32) ([]*pb.ImportRecord, error) {

	resp, err := s.client.ImportHistory(ctx, &pb.ImportHistoryRequest{Limit: limit})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.Records, nil

}
