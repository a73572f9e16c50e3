package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"event-discovery-app/dto/req"
	"event-discovery-app/entity"
	"event-discovery-app/repository"
)

func seedEvent(t *testing.T, db *gorm.DB, name, date, timeOfDay string) entity.Event {
	t.Helper()
	event := entity.Event{
		Name:     name,
		Date:     date,
		Time:     timeOfDay,
		Duration: "1",
	}
	require.NoError(t, db.Create(&event).Error)
	return event
}

func newAttendance(t *testing.T, db *gorm.DB) AttendanceUsecase {
	t.Helper()
	return NewAttendanceUsecase(repository.NewParticipantRepository(), validator.New(), db, newTestLogger())
}

func participantCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entity.Participant{}).Count(&count).Error)
	return count
}

func TestCheckConflictExactMatch(t *testing.T) {
	db := newTestDB(t)
	uc := newAttendance(t, db)
	user := seedUser(t, db, "henry", "pw-123456")
	event := seedEvent(t, db, "Jazz Night", "2026-09-12", "20:00")

	require.NoError(t, uc.AttendEvent(context.Background(), &req.AttendRequest{
		UserID:  user.ID,
		EventID: event.ID,
	}))

	conflict, err := uc.CheckConflict(context.Background(), &req.ConflictCheckRequest{
		UserID:        user.ID,
		EventDateTime: "2026-09-12T20:00",
	})
	require.NoError(t, err)
	assert.True(t, conflict.Conflict)
}

func TestCheckConflictOverlapNotFlagged(t *testing.T) {
	db := newTestDB(t)
	uc := newAttendance(t, db)
	user := seedUser(t, db, "iris", "pw-123456")
	event := seedEvent(t, db, "Jazz Night", "2026-09-12", "20:00")

	require.NoError(t, uc.AttendEvent(context.Background(), &req.AttendRequest{
		UserID:  user.ID,
		EventID: event.ID,
	}))

	// starts 30 minutes into the attended event; equality check stays quiet
	conflict, err := uc.CheckConflict(context.Background(), &req.ConflictCheckRequest{
		UserID:        user.ID,
		EventDateTime: "2026-09-12T20:30",
	})
	require.NoError(t, err)
	assert.False(t, conflict.Conflict)
}

func TestCheckConflictNoParticipation(t *testing.T) {
	db := newTestDB(t)
	uc := newAttendance(t, db)
	user := seedUser(t, db, "jack", "pw-123456")

	conflict, err := uc.CheckConflict(context.Background(), &req.ConflictCheckRequest{
		UserID:        user.ID,
		EventDateTime: "2026-09-12T20:00",
	})
	require.NoError(t, err)
	assert.False(t, conflict.Conflict)
}

func TestAttendEventRecordsParticipant(t *testing.T) {
	db := newTestDB(t)
	uc := newAttendance(t, db)
	user := seedUser(t, db, "kate", "pw-123456")
	event := seedEvent(t, db, "Street Art Tour", "2026-10-03", "14:00")

	require.NoError(t, uc.AttendEvent(context.Background(), &req.AttendRequest{
		UserID:  user.ID,
		EventID: event.ID,
	}))

	assert.EqualValues(t, 1, participantCount(t, db))
}

func TestAttendEventTwiceRejected(t *testing.T) {
	db := newTestDB(t)
	uc := newAttendance(t, db)
	user := seedUser(t, db, "liam", "pw-123456")
	event := seedEvent(t, db, "Film Screening", "2026-10-10", "21:00")

	require.NoError(t, uc.AttendEvent(context.Background(), &req.AttendRequest{
		UserID:  user.ID,
		EventID: event.ID,
	}))

	// the transactional gate sees the event's own slot and refuses the repeat
	err := uc.AttendEvent(context.Background(), &req.AttendRequest{
		UserID:  user.ID,
		EventID: event.ID,
	})
	assert.ErrorIs(t, err, ErrScheduleConflict)
	assert.EqualValues(t, 1, participantCount(t, db))
}

func TestAttendConflictingSlotRejected(t *testing.T) {
	db := newTestDB(t)
	uc := newAttendance(t, db)
	user := seedUser(t, db, "mona", "pw-123456")
	first := seedEvent(t, db, "Morning Run", "2026-10-17", "09:00")
	sameSlot := seedEvent(t, db, "Yoga Class", "2026-10-17", "09:00")

	require.NoError(t, uc.AttendEvent(context.Background(), &req.AttendRequest{
		UserID:  user.ID,
		EventID: first.ID,
	}))

	err := uc.AttendEvent(context.Background(), &req.AttendRequest{
		UserID:  user.ID,
		EventID: sameSlot.ID,
	})
	assert.ErrorIs(t, err, ErrScheduleConflict)
}

func TestAttendUnknownEvent(t *testing.T) {
	db := newTestDB(t)
	uc := newAttendance(t, db)
	user := seedUser(t, db, "nina", "pw-123456")

	err := uc.AttendEvent(context.Background(), &req.AttendRequest{
		UserID:  user.ID,
		EventID: "no-such-event",
	})
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.Zero(t, participantCount(t, db))
}

func TestSerializationFailureDetected(t *testing.T) {
	assert.True(t, isSerializationFailure(&pgconn.PgError{Code: "40001"}))
	assert.False(t, isSerializationFailure(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isSerializationFailure(errors.New("connection reset")))
	assert.False(t, isSerializationFailure(nil))
}

func TestRemoveAttendanceNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newAttendance(t, db)
	user := seedUser(t, db, "olga", "pw-123456")
	event := seedEvent(t, db, "Theatre Play", "2026-11-01", "19:30")

	err := uc.RemoveAttendance(context.Background(), &req.RemoveAttendanceRequest{
		EventID: event.ID,
		UserID:  user.ID,
	})
	assert.ErrorIs(t, err, ErrParticipantNotFound)
	assert.Zero(t, participantCount(t, db))
}

func TestRemoveAttendance(t *testing.T) {
	db := newTestDB(t)
	uc := newAttendance(t, db)
	user := seedUser(t, db, "pete", "pw-123456")
	event := seedEvent(t, db, "Book Fair", "2026-11-08", "11:00")

	require.NoError(t, uc.AttendEvent(context.Background(), &req.AttendRequest{
		UserID:  user.ID,
		EventID: event.ID,
	}))
	require.NoError(t, uc.RemoveAttendance(context.Background(), &req.RemoveAttendanceRequest{
		EventID: event.ID,
		UserID:  user.ID,
	}))

	events, err := uc.GetUserEvents(context.Background(), &req.UserEventsRequest{UserID: user.ID})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestGetUserEvents(t *testing.T) {
	db := newTestDB(t)
	uc := newAttendance(t, db)
	user := seedUser(t, db, "quinn", "pw-123456")
	first := seedEvent(t, db, "Pottery Workshop", "2026-11-15", "10:00")
	second := seedEvent(t, db, "Wine Tasting", "2026-11-16", "18:00")

	require.NoError(t, uc.AttendEvent(context.Background(), &req.AttendRequest{UserID: user.ID, EventID: first.ID}))
	require.NoError(t, uc.AttendEvent(context.Background(), &req.AttendRequest{UserID: user.ID, EventID: second.ID}))

	events, err := uc.GetUserEvents(context.Background(), &req.UserEventsRequest{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Pottery Workshop", events[0].Name)
	assert.Equal(t, "2026-11-15", events[0].Date)
	assert.Equal(t, "10:00", events[0].Time)
	assert.Equal(t, "Wine Tasting", events[1].Name)
}
