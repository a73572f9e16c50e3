package usecase

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-discovery-app/dto/req"
	"event-discovery-app/entity"
	"event-discovery-app/repository"
	"event-discovery-app/util"
)

func TestRegisterStoresHashedPassword(t *testing.T) {
	db := newTestDB(t)
	jwt := newTestJWT()
	uc := NewAuthUsecase(repository.NewUserRepository(), validator.New(), db, newTestLogger(), jwt)

	_, err := uc.RegisterUser(context.Background(), &req.RegisterRequest{
		Username: "alice",
		Password: "hunter22",
		Email:    "alice@example.com",
		Location: "41.0, 29.0",
	}, nil)
	require.NoError(t, err)

	var stored entity.User
	require.NoError(t, db.Where("username = ?", "alice").First(&stored).Error)

	assert.NotEqual(t, "hunter22", stored.Password)
	assert.True(t, util.ComparePassword(stored.Password, "hunter22"))
}

func TestRegisterRejectsInvalidRequest(t *testing.T) {
	db := newTestDB(t)
	uc := NewAuthUsecase(repository.NewUserRepository(), validator.New(), db, newTestLogger(), newTestJWT())

	_, err := uc.RegisterUser(context.Background(), &req.RegisterRequest{
		Username: "bob",
		Password: "short", // below minimum length
		Email:    "not-an-email",
	}, nil)
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLoginUnknownUser(t *testing.T) {
	db := newTestDB(t)
	uc := NewAuthUsecase(repository.NewUserRepository(), validator.New(), db, newTestLogger(), newTestJWT())

	_, err := uc.LoginUser(context.Background(), &req.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	uc := NewAuthUsecase(repository.NewUserRepository(), validator.New(), db, newTestLogger(), newTestJWT())

	_, err := uc.RegisterUser(context.Background(), &req.RegisterRequest{
		Username: "carol",
		Password: "correct-horse",
		Email:    "carol@example.com",
	}, nil)
	require.NoError(t, err)

	_, err = uc.LoginUser(context.Background(), &req.LoginRequest{Username: "carol", Password: "battery-staple"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	db := newTestDB(t)
	jwt := newTestJWT()
	uc := NewAuthUsecase(repository.NewUserRepository(), validator.New(), db, newTestLogger(), jwt)

	registered, err := uc.RegisterUser(context.Background(), &req.RegisterRequest{
		Username: "dave",
		Password: "secret-pw",
		Email:    "dave@example.com",
	}, []byte{0xff, 0xd8, 0xff})
	require.NoError(t, err)

	login, err := uc.LoginUser(context.Background(), &req.LoginRequest{Username: "dave", Password: "secret-pw"})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)

	userID, err := jwt.GetUserIdFromToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)

	// the stored picture comes back as a base64 data URL
	assert.Contains(t, login.User.ProfilePic, "data:image/jpeg;base64,")
}
