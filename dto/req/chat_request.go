package req

type ChatMessageRequest struct {
	EventID string `json:"eventId" validate:"required"`
	Message string `json:"message" validate:"required"`
}
