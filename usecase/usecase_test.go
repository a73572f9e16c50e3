package usecase

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"event-discovery-app/config/common"
	"event-discovery-app/config/logger"
	"event-discovery-app/entity"
	"event-discovery-app/security"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "t_",
			SingularTable: true,
		},
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Event{},
		&entity.Participant{},
		&entity.ChatMessage{},
	))

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestAppLogger() *logger.AppLogger {
	nop := zerolog.Nop()
	channels := logger.CommonLogger{Info: nop, Error: nop, Trace: nop, Warning: nop}
	return &logger.AppLogger{Http: channels, Chat: channels}
}

func newTestJWT() *security.JWT {
	v := viper.New()
	v.Set("JWT_SECRET", "test-secret")
	return security.NewJWT(&common.Config{Viper: v})
}
