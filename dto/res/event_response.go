package res

type EventResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    string `json:"duration"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	CreatedBy   string `json:"created_by"`
	Image       string `json:"image,omitempty"`
}

type EventNameResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EventSummaryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration string `json:"duration"`
}
