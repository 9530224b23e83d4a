package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/rmoraesb/sentinela/internal/common"
	pb "github.com/rmoraesb/sentinela/internal/proto"
	"github.com/rmoraesb/sentinela/internal/server/auth"
)

type ctxKey string

// AdminIDKey carries the authenticated admin account ID through handler
// contexts.
const AdminIDKey ctxKey = "adminID"

// publicMethods are callable without a token: the health check and the two
// RPCs that exist to obtain credentials in the first place.
var publicMethods = map[string]bool{
	pb.Inventory_Ping_FullMethodName:          true,
	pb.Inventory_RegisterAdmin_FullMethodName: true,
	pb.Inventory_Login_FullMethodName:         true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !publicMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		adminID, err := auth.GetAdminIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, AdminIDKey, adminID)

	}

	return handler(ctx, req)
}
