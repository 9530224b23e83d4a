package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rmoraesb/sentinela/internal/common"
	"github.com/rmoraesb/sentinela/internal/match"
	pb "github.com/rmoraesb/sentinela/internal/proto"
	"github.com/rmoraesb/sentinela/internal/server/models"
)

const timeLayout = time.RFC3339

// adminFromContext returns the admin ID the interceptor stored for the
// authenticated request. Empty on public RPCs.
func adminFromContext(ctx context.Context) string {
	id, _ := ctx.Value(AdminIDKey).(string)
	return id
}

// statusFromError translates service sentinels to gRPC codes. Anything
// unrecognized is reported as Internal without leaking the wrapped cause.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrorEmptyFile), errors.Is(err, common.ErrorNoValidRecords):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func systemToProto(s *models.System) *pb.System {
	return &pb.System{
		Id:                 s.ID,
		Name:               s.Name,
		Description:        s.Description,
		Owner:              s.Owner,
		MfaEnabled:         s.MFAEnabled,
		SsoEnabled:         s.SSOEnabled,
		PasswordPolicy:     s.PasswordPolicy,
		CentralizedLogging: s.CentralizedLogging,
	}
}

func systemFromProto(s *pb.System) *models.System {
	return &models.System{
		ID:                 s.GetId(),
		Name:               s.GetName(),
		Description:        s.GetDescription(),
		Owner:              s.GetOwner(),
		MFAEnabled:         s.GetMfaEnabled(),
		SSOEnabled:         s.GetSsoEnabled(),
		PasswordPolicy:     s.GetPasswordPolicy(),
		CentralizedLogging: s.GetCentralizedLogging(),
	}
}

func reportToProto(r *match.Report) *pb.ReconciliationReport {
	out := &pb.ReconciliationReport{
		IdenticalCount: int32(r.IdenticalCount),
		MissingCount:   int32(r.MissingCount),
		ExtraCount:     int32(r.ExtraCount),
	}
	for _, p := range r.Identical {
		out.Identical = append(out.Identical, &pb.MatchedPair{
			SystemIdentity:  p.SystemIdentity,
			MatchedIdentity: p.MatchedIdentity,
		})
	}
	for _, e := range r.Missing {
		out.Missing = append(out.Missing, &pb.UserRef{Name: e.Name, Identifier: e.Identifier})
	}
	for _, e := range r.Extra {
		out.Extra = append(out.Extra, &pb.UserRef{Name: e.Name, Identifier: e.Identifier})
	}
	return out
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) RegisterAdmin(ctx context.Context, req *pb.RegisterAdminRequest) (*pb.RegisterAdminResponse, error) {

	s.logger.Info(ctx, "Registration request")

	admin, err := s.admins.Register(ctx, req.Username, req.Password)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.RegisterAdminResponse{Id: admin.ID}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	token, err := s.admins.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.LoginResponse{AccessToken: token}, nil

}

func (s *GRPCServer) CreateSystem(ctx context.Context, req *pb.CreateSystemRequest) (*pb.CreateSystemResponse, error) {

	if req.System == nil || req.System.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "system name is required")
	}

	created, err := s.systems.Create(ctx, systemFromProto(req.System))
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "System created", "system", created.ID, "admin", adminFromContext(ctx))
	return &pb.CreateSystemResponse{System: systemToProto(created)}, nil

}

func (s *GRPCServer) GetSystem(ctx context.Context, req *pb.GetSystemRequest) (*pb.GetSystemResponse, error) {

	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "system id is required")
	}

	system, err := s.systems.Get(ctx, req.Id)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.GetSystemResponse{System: systemToProto(system)}, nil

}

func (s *GRPCServer) UpdateSystem(ctx context.Context, req *pb.UpdateSystemRequest) (*pb.UpdateSystemResponse, error) {

	if req.System == nil || req.System.Id == "" || req.System.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "system id and name are required")
	}

	system := systemFromProto(req.System)
	if err := s.systems.Update(ctx, system); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "System updated", "system", system.ID, "admin", adminFromContext(ctx))
	return &pb.UpdateSystemResponse{System: systemToProto(system)}, nil

}

func (s *GRPCServer) DeleteSystem(ctx context.Context, req *pb.DeleteSystemRequest) (*pb.DeleteSystemResponse, error) {

	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "system id is required")
	}

	if err := s.systems.Delete(ctx, req.Id); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "System deleted", "system", req.Id, "admin", adminFromContext(ctx))
	return &pb.DeleteSystemResponse{}, nil

}

func (s *GRPCServer) ListSystems(ctx context.Context, req *pb.ListSystemsRequest) (*pb.ListSystemsResponse, error) {

	list, err := s.systems.List(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	resp := &pb.ListSystemsResponse{}
	for _, sys := range list {
		resp.Systems = append(resp.Systems, systemToProto(sys))
	}
	return resp, nil

}

func (s *GRPCServer) UploadSystemUsers(ctx context.Context, req *pb.UploadSystemUsersRequest) (*pb.UploadSystemUsersResponse, error) {

	s.logger.Info(ctx, "System user upload", "system", req.SystemId, "file", req.FileName, "admin", adminFromContext(ctx))

	report, err := s.imports.UploadSystemUsers(ctx, req.SystemId, req.FileName, req.Content)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.UploadSystemUsersResponse{Report: reportToProto(report)}, nil

}

func (s *GRPCServer) UploadTruthList(ctx context.Context, req *pb.UploadTruthListRequest) (*pb.UploadTruthListResponse, error) {

	s.logger.Info(ctx, "Truth list upload", "file", req.FileName, "admin", adminFromContext(ctx))

	accepted, rejected, err := s.imports.UploadTruthList(ctx, req.FileName, req.Content)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.UploadTruthListResponse{Accepted: int32(accepted), Rejected: int32(rejected)}, nil

}

func (s *GRPCServer) MatchPreview(ctx context.Context, req *pb.MatchPreviewRequest) (*pb.MatchPreviewResponse, error) {

	entries, err := s.imports.MatchPreview(ctx, req.SystemId)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	resp := &pb.MatchPreviewResponse{}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, &pb.PreviewEntry{
			SystemIdentity: e.SystemIdentity,
			MatchedName:    e.MatchedName,
			MatchedWith:    e.MatchedWith,
			MatchType:      e.Match.Type.String(),
			Similarity:     int32(e.Match.Similarity),
		})
	}
	return resp, nil

}

func (s *GRPCServer) ComplianceSummary(ctx context.Context, req *pb.ComplianceSummaryRequest) (*pb.ComplianceSummaryResponse, error) {

	summary, err := s.systems.Compliance(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.ComplianceSummaryResponse{
		TotalSystems:       int32(summary.TotalSystems),
		MfaEnabled:         int32(summary.MFAEnabled),
		SsoEnabled:         int32(summary.SSOEnabled),
		PasswordPolicy:     int32(summary.PasswordPolicy),
		CentralizedLogging: int32(summary.CentralizedLogging),
	}, nil

}

func (s *GRPCServer) ImportHistory(ctx context.Context, req *pb.ImportHistoryRequest) (*pb.ImportHistoryResponse, error) {

	records, err := s.imports.History(ctx, int(req.Limit))
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	resp := &pb.ImportHistoryResponse{}
	for _, r := range records {
		resp.Records = append(resp.Records, &pb.ImportRecord{
			Id:               r.ID,
			SystemId:         r.SystemID,
			FileName:         r.FileName,
			FileSize:         r.FileSize,
			TotalRecords:     int32(r.TotalRecords),
			ProcessedRecords: int32(r.ProcessedRecords),
			Status:           r.Status,
			ArchiveKey:       r.ArchiveKey,
			CreatedAt:        r.CreatedAt.Format(timeLayout),
		})
	}
	return resp, nil

}
