package res

type ConflictCheckResponse struct {
	Conflict bool `json:"conflict"`
}
