package entity

type Participant struct {
	BaseEntity
	UserID  string `json:"user_id" gorm:"type:varchar(255);not null;index"`
	EventID string `json:"event_id" gorm:"type:varchar(255);not null;index"`

	User  User  `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Event Event `json:"-" gorm:"foreignKey:EventID;references:ID;constraint:OnDelete:CASCADE;"`
}
