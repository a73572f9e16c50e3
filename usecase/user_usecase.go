package usecase

import (
	"context"

	"event-discovery-app/dto/req"
	"event-discovery-app/dto/res"
)

type UserUsecase interface {
	ChangePassword(ctx context.Context, request *req.ChangePasswordRequest) error
	UpdateProfile(ctx context.Context, request *req.UpdateUserRequest) (res.UserResponse, error)
}
