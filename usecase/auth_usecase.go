package usecase

import (
	"context"

	"event-discovery-app/dto/req"
	"event-discovery-app/dto/res"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *req.RegisterRequest, profilePic []byte) (res.RegisterResponse, error)
	LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error)
}
