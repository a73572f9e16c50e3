package req

type UpdateUserRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Location  string `json:"location"`
	Interests string `json:"interests"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Dob       string `json:"dob"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	UserID    string `json:"userId" validate:"required"`
}
