package usecase

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"event-discovery-app/dto/req"
	"event-discovery-app/dto/res"
	"event-discovery-app/entity"
	"event-discovery-app/repository"
)

type AttendanceUsecaseImpl struct {
	*repository.ParticipantRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewAttendanceUsecase(participantRepository *repository.ParticipantRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) AttendanceUsecase {
	return &AttendanceUsecaseImpl{ParticipantRepository: participantRepository, Validate: validate, DB: DB, Logger: logger}
}

// CheckConflict reports whether the user already attends an event starting
// at exactly the candidate "<date>T<time>" slot. Overlap by duration is not
// considered a conflict.
func (uc *AttendanceUsecaseImpl) CheckConflict(ctx context.Context, request *req.ConflictCheckRequest) (res.ConflictCheckResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate conflict check request: %v", err)
		return res.ConflictCheckResponse{}, err
	}

	count, err := uc.ParticipantRepository.CountConflicts(ctx, uc.DB, request.UserID, request.EventDateTime)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to check event conflict: %v", err)
		return res.ConflictCheckResponse{}, err
	}

	return res.ConflictCheckResponse{Conflict: count > 0}, nil
}

// attendRetries bounds how often a serialization failure is retried before
// the error is surfaced.
const attendRetries = 3

// AttendEvent re-runs the conflict check and inserts the participant inside
// one serializable transaction. Two concurrent attends for the same slot
// cannot both commit: the loser fails with a serialization error, and its
// retry sees the winner's row and reports the conflict. Attending the same
// event twice trips the gate as well, since the event's own slot matches.
func (uc *AttendanceUsecaseImpl) AttendEvent(ctx context.Context, request *req.AttendRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate attend request: %v", err)
		return err
	}

	var err error
	for attempt := 1; attempt <= attendRetries; attempt++ {
		err = uc.attendOnce(ctx, request)
		if !isSerializationFailure(err) {
			return err
		}
		uc.Logger.Warnf("serialization failure on attend attempt %d for user %s", attempt, request.UserID)
	}
	return err
}

func (uc *AttendanceUsecaseImpl) attendOnce(ctx context.Context, request *req.AttendRequest) error {
	return uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event entity.Event
		if err := tx.Where("id = ?", request.EventID).Take(&event).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			uc.Logger.WithError(err).Errorf("failed to load event: %v", err)
			return err
		}

		dateTime := event.Date + "T" + event.Time
		count, err := uc.ParticipantRepository.CountConflicts(ctx, tx, request.UserID, dateTime)
		if err != nil {
			uc.Logger.WithError(err).Errorf("failed to check conflict before attend: %v", err)
			return err
		}
		if count > 0 {
			uc.Logger.Warnf("schedule conflict for user %s at %s", request.UserID, dateTime)
			return ErrScheduleConflict
		}

		participant := &entity.Participant{
			UserID:  request.UserID,
			EventID: request.EventID,
		}
		return uc.ParticipantRepository.Save(ctx, tx, participant)
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

// isSerializationFailure reports whether err is Postgres SQLSTATE 40001, the
// code a serializable transaction fails with when it must be retried.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}

func (uc *AttendanceUsecaseImpl) RemoveAttendance(ctx context.Context, request *req.RemoveAttendanceRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate remove attendance request: %v", err)
		return err
	}

	affected, err := uc.ParticipantRepository.DeleteByEventAndUser(ctx, uc.DB, request.EventID, request.UserID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to remove attendance: %v", err)
		return err
	}
	if affected == 0 {
		return ErrParticipantNotFound
	}

	uc.Logger.Infof("Removed attendance of user %s from event %s", request.UserID, request.EventID)
	return nil
}

func (uc *AttendanceUsecaseImpl) GetUserEvents(ctx context.Context, request *req.UserEventsRequest) ([]res.EventSummaryResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate user events request: %v", err)
		return nil, err
	}

	events, err := uc.ParticipantRepository.FindEventsByUser(ctx, uc.DB, request.UserID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to get user events: %v", err)
		return nil, err
	}

	summaries := make([]res.EventSummaryResponse, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, res.EventSummaryResponse{
			ID:       event.ID,
			Name:     event.Name,
			Date:     event.Date,
			Time:     event.Time,
			Duration: event.Duration,
		})
	}
	return summaries, nil
}
