package req

type RegisterRequest struct {
	Username  string `json:"username" form:"username" validate:"required,min=3,max=50"`
	Password  string `json:"password" form:"password" validate:"required,min=6"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Location  string `json:"location" form:"location"`
	Interests string `json:"interests" form:"interests"`
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Dob       string `json:"dob" form:"dob"`
	Gender    string `json:"gender" form:"gender"`
	Phone     string `json:"phone" form:"phone"`
}
