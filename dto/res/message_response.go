package res

type MessageResponse struct {
	Message string `json:"message"`
}
