package usecase

import (
	"context"

	"event-discovery-app/dto/req"
	"event-discovery-app/dto/res"
)

type AttendanceUsecase interface {
	CheckConflict(ctx context.Context, request *req.ConflictCheckRequest) (res.ConflictCheckResponse, error)
	AttendEvent(ctx context.Context, request *req.AttendRequest) error
	RemoveAttendance(ctx context.Context, request *req.RemoveAttendanceRequest) error
	GetUserEvents(ctx context.Context, request *req.UserEventsRequest) ([]res.EventSummaryResponse, error)
}
