package entity

type ChatMessage struct {
	BaseEntity
	EventID string `json:"event_id" gorm:"type:varchar(255);not null;index"`
	UserID  string `json:"user_id" gorm:"type:varchar(255);not null"`
	Message string `json:"message" gorm:"type:TEXT"`

	Event Event `json:"-" gorm:"foreignKey:EventID;references:ID"`
	User  User  `json:"-" gorm:"foreignKey:UserID;references:ID"`
}
