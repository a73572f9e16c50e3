package req

type AddEventRequest struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description"`
	Date        string `json:"date" form:"date" validate:"required"`
	Time        string `json:"time" form:"time" validate:"required"`
	Duration    string `json:"duration" form:"duration" validate:"required"`
	Category    string `json:"category" form:"category" validate:"required"`
	Lat         string `json:"lat" form:"lat" validate:"required"`
	Lng         string `json:"lng" form:"lng" validate:"required"`
	CreatedBy   string `json:"created_by" form:"created_by" validate:"required"`
}
