package entity

type User struct {
	BaseEntity
	Username   string `json:"username" gorm:"unique;type:varchar(50)"`
	Password   string `json:"-" gorm:"type:varchar(255)"`
	Email      string `json:"email" gorm:"type:varchar(100)"`
	Location   string `json:"location" gorm:"type:TEXT"`
	Interests  string `json:"interests" gorm:"type:TEXT"`
	FirstName  string `json:"first_name" gorm:"type:varchar(100)"`
	LastName   string `json:"last_name" gorm:"type:varchar(100)"`
	Dob        string `json:"dob" gorm:"type:varchar(20)"`
	Gender     string `json:"gender" gorm:"type:varchar(20)"`
	Phone      string `json:"phone" gorm:"type:varchar(20)"`
	ProfilePic []byte `json:"-" gorm:"type:bytea"`

	Participations []Participant `json:"-" gorm:"foreignKey:UserID"`
	Messages       []ChatMessage `json:"-" gorm:"foreignKey:UserID"`
}
