package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/bistrolabs/ordering-service/internal/application"
)

// AuthInternalService lets sibling services validate bearer tokens and check
// admin status without sharing the signing secret. CheckAdminStatus performs
// the same fresh store read as the HTTP admin gate.
type AuthInternalService interface {
	ValidateToken(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CheckAdminStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type AuthInternalServer struct {
	service *application.Service
}

func NewAuthInternalServer(service *application.Service) *AuthInternalServer {
	return &AuthInternalServer{service: service}
}

func Register(server grpc.ServiceRegistrar, svc AuthInternalService) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: "bistro.auth.v1.AuthInternalService",
		HandlerType: (*AuthInternalService)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "ValidateToken",
				Handler:    structHandler("/bistro.auth.v1.AuthInternalService/ValidateToken", AuthInternalService.ValidateToken),
			},
			{
				MethodName: "CheckAdminStatus",
				Handler:    structHandler("/bistro.auth.v1.AuthInternalService/CheckAdminStatus", AuthInternalService.CheckAdminStatus),
			},
		},
		Streams: []grpc.StreamDesc{},
	}, svc)
}

func (s *AuthInternalServer) ValidateToken(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	token := req.GetFields()["token"].GetStringValue()
	if token == "" {
		return nil, status.Error(codes.InvalidArgument, "missing token")
	}

	claims, err := s.service.ValidateToken(ctx, token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	resp, err := structpb.NewStruct(map[string]any{
		"valid":      true,
		"email":      claims.Email,
		"name":       claims.Name,
		"expires_at": claims.ExpiresAt.Unix(),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build response: %v", err)
	}
	return resp, nil
}

func (s *AuthInternalServer) CheckAdminStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	email := req.GetFields()["email"].GetStringValue()
	if email == "" {
		return nil, status.Error(codes.InvalidArgument, "missing email")
	}

	admin := true
	if err := s.service.AuthorizeAdmin(ctx, email); err != nil {
		admin = false
	}

	resp, err := structpb.NewStruct(map[string]any{
		"email": email,
		"admin": admin,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build response: %v", err)
	}
	return resp, nil
}

func structHandler(fullMethod string, invoke func(AuthInternalService, context.Context, *structpb.Struct) (*structpb.Struct, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		svc, ok := srv.(AuthInternalService)
		if !ok {
			return nil, status.Error(codes.Internal, "invalid service binding")
		}
		req := &structpb.Struct{}
		if err := dec(req); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return invoke(svc, ctx, req)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			typed, ok := req.(*structpb.Struct)
			if !ok {
				return nil, status.Error(codes.InvalidArgument, "invalid request type")
			}
			return invoke(svc, ctx, typed)
		}
		return interceptor(ctx, req, info, handler)
	}
}
