package req

type ConflictCheckRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	EventDateTime string `json:"event_date_time" validate:"required"`
}

type AttendRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	EventID string `json:"event_id" validate:"required"`
}

type UserEventsRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type RemoveAttendanceRequest struct {
	EventID string `json:"event_id" validate:"required"`
	UserID  string `json:"user_id" validate:"required"`
}
