package res

type UserResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Location   string `json:"location"`
	Interests  string `json:"interests"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Dob        string `json:"dob"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	ProfilePic string `json:"profile_pic,omitempty"`
}

type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
