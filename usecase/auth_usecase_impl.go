package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"event-discovery-app/dto/req"
	"event-discovery-app/dto/res"
	"event-discovery-app/entity"
	"event-discovery-app/repository"
	"event-discovery-app/security"
	"event-discovery-app/util"
)

type AuthUsecaseImpl struct {
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{UserRepository: userRepository, Validate: validate, DB: DB, Logger: logger, JWT: JWT}
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, request *req.RegisterRequest, profilePic []byte) (res.RegisterResponse, error) {
	// validate request
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate register request: %v", err)
		return res.RegisterResponse{}, err
	}
	// start transaction
	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	// passwords are stored as bcrypt hashes, never as given
	hashPassword, err := util.HashPassword(request.Password)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to hash password: %v", err)
		return res.RegisterResponse{}, err
	}

	newUser := &entity.User{
		Username:   request.Username,
		Password:   hashPassword,
		Email:      request.Email,
		Location:   request.Location,
		Interests:  request.Interests,
		FirstName:  request.FirstName,
		LastName:   request.LastName,
		Dob:        request.Dob,
		Gender:     request.Gender,
		Phone:      request.Phone,
		ProfilePic: profilePic,
	}

	if err := uc.UserRepository.Save(ctx, trx, newUser); err != nil {
		uc.Logger.WithError(err).Errorf("failed to save user: %v", err)
		return res.RegisterResponse{}, err
	}

	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Errorf("failed to commit user: %v", err)
		return res.RegisterResponse{}, err
	}

	return res.RegisterResponse{
		ID:       newUser.ID,
		Username: newUser.Username,
		Email:    newUser.Email,
	}, nil
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	// validate request
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate login request: %v", err)
		return res.LoginResponse{}, err
	}

	currentUser, err := uc.UserRepository.FindByUsername(uc.DB.WithContext(ctx), request.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.LoginResponse{}, ErrUserNotFound
		}
		uc.Logger.WithError(err).Errorf("failed to find username: %v", err)
		return res.LoginResponse{}, err
	}

	if matchPassword := util.ComparePassword(currentUser.Password, request.Password); !matchPassword {
		uc.Logger.Warnf("invalid credentials for user %s", request.Username)
		return res.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := uc.JWT.GenerateToken(&currentUser)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to generate token: %v", err)
		return res.LoginResponse{}, err
	}

	return res.LoginResponse{
		Token: token,
		User: res.UserResponse{
			ID:         currentUser.ID,
			Username:   currentUser.Username,
			Email:      currentUser.Email,
			Location:   currentUser.Location,
			Interests:  currentUser.Interests,
			FirstName:  currentUser.FirstName,
			LastName:   currentUser.LastName,
			Dob:        currentUser.Dob,
			Gender:     currentUser.Gender,
			Phone:      currentUser.Phone,
			ProfilePic: imageDataURL(currentUser.ProfilePic),
		},
	}, nil
}
