package dto

type BroadcastMessage struct {
	MessageID  string `json:"messageId"`
	EventID    string `json:"eventId"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	Message    string `json:"message"`
	CreatedAt  string `json:"createdAt"`
}
