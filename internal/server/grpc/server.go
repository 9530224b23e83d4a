// Package grpc exposes the inventory console over the Inventory gRPC
// service and owns the access-token interceptor.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/rmoraesb/sentinela/internal/logging"
	"github.com/rmoraesb/sentinela/internal/match"
	pb "github.com/rmoraesb/sentinela/internal/proto"
	"github.com/rmoraesb/sentinela/internal/server/models"
	"github.com/rmoraesb/sentinela/internal/server/services"
)

// Service surfaces consumed by the transport, satisfied by the concrete
// services and by fakes in tests.
type importSvc interface {
	UploadSystemUsers(ctx context.Context, systemID, fileName string, content []byte) (*match.Report, error)
	UploadTruthList(ctx context.Context, fileName string, content []byte) (int, int, error)
	MatchPreview(ctx context.Context, systemID string) ([]services.PreviewEntry, error)
	History(ctx context.Context, limit int) ([]*models.ImportRecord, error)
}

type systemSvc interface {
	Create(ctx context.Context, system *models.System) (*models.System, error)
	Get(ctx context.Context, id string) (*models.System, error)
	List(ctx context.Context) ([]*models.System, error)
	Update(ctx context.Context, system *models.System) error
	Delete(ctx context.Context, id string) error
	Compliance(ctx context.Context) (*services.ComplianceSummary, error)
}

type adminSvc interface {
	Register(ctx context.Context, username, password string) (*models.Admin, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedInventoryServer
	address   string
	imports   importSvc
	systems   systemSvc
	admins    adminSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, is importSvc, ss systemSvc, as adminSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		imports:   is,
		systems:   ss,
		admins:    as,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterInventoryServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
