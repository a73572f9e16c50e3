package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"event-discovery-app/config/logger"
	"event-discovery-app/dto/req"
	"event-discovery-app/dto/res"
	"event-discovery-app/entity"
	"event-discovery-app/repository"
	"event-discovery-app/util"
)

type UserUsecaseImpl struct {
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
}

func NewUserUsecase(userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logger.AppLogger) UserUsecase {
	return &UserUsecaseImpl{UserRepository: userRepository, Validate: validate, DB: DB, Log: logger}
}

// ChangePassword verifies the current password before writing the new hash.
// The read and the write run in one transaction.
func (uc *UserUsecaseImpl) ChangePassword(ctx context.Context, request *req.ChangePasswordRequest) error {
	uc.Log.Http.Info.Info().Msg("ChangePassword started")

	if err := uc.Validate.Struct(request); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to validate change password request")
		return err
	}

	return uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entity.User
		if err := uc.UserRepository.FindById(ctx, tx, &user, request.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				uc.Log.Http.Warning.Warn().
					Str("userId", request.UserID).
					Msg("User not found")
				return ErrUserNotFound
			}
			uc.Log.Http.Error.Error().Err(err).Msg("Failed to find user")
			return err
		}

		if !util.ComparePassword(user.Password, request.CurrentPassword) {
			uc.Log.Http.Warning.Warn().
				Str("userId", request.UserID).
				Msg("Incorrect current password")
			return ErrIncorrectPassword
		}

		hashPassword, err := util.HashPassword(request.NewPassword)
		if err != nil {
			return err
		}
		user.Password = hashPassword

		if err := uc.UserRepository.Update(ctx, tx, &user); err != nil {
			uc.Log.Http.Error.Error().Err(err).Msg("Failed to update password")
			return err
		}

		uc.Log.Http.Info.Info().
			Str("userId", user.ID).
			Msg("Password updated")
		return nil
	})
}

func (uc *UserUsecaseImpl) UpdateProfile(ctx context.Context, request *req.UpdateUserRequest) (res.UserResponse, error) {
	uc.Log.Http.Info.Info().Msg("UpdateProfile started")

	if err := uc.Validate.Struct(request); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to validate update profile request")
		return res.UserResponse{}, err
	}

	var updated entity.User
	err := uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entity.User
		if err := uc.UserRepository.FindById(ctx, tx, &user, request.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				uc.Log.Http.Warning.Warn().
					Str("userId", request.UserID).
					Msg("User not found")
				return ErrUserNotFound
			}
			return err
		}

		user.Username = request.Username
		user.Email = request.Email
		user.Location = request.Location
		user.Interests = request.Interests
		user.FirstName = request.FirstName
		user.LastName = request.LastName
		user.Dob = request.Dob
		user.Gender = request.Gender
		user.Phone = request.Phone

		if err := uc.UserRepository.Update(ctx, tx, &user); err != nil {
			uc.Log.Http.Error.Error().Err(err).Msg("Failed to update user")
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		return res.UserResponse{}, err
	}

	uc.Log.Http.Info.Info().
		Str("userId", updated.ID).
		Str("username", updated.Username).
		Msg("Successfully updated user")

	return res.UserResponse{
		ID:         updated.ID,
		Username:   updated.Username,
		Email:      updated.Email,
		Location:   updated.Location,
		Interests:  updated.Interests,
		FirstName:  updated.FirstName,
		LastName:   updated.LastName,
		Dob:        updated.Dob,
		Gender:     updated.Gender,
		Phone:      updated.Phone,
		ProfilePic: imageDataURL(updated.ProfilePic),
	}, nil
}
