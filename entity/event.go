package entity

import "event-discovery-app/enum"

type Event struct {
	BaseEntity
	Name        string             `json:"name" gorm:"type:varchar(255)"`
	Description string             `json:"description" gorm:"type:TEXT"`
	Date        string             `json:"date" gorm:"type:varchar(10)"`
	Time        string             `json:"time" gorm:"type:varchar(8)"`
	Duration    string             `json:"duration" gorm:"type:varchar(20)"`
	Category    enum.EventCategory `json:"category" gorm:"type:varchar(50)"`
	// Location holds a raw "lat, lng" pair, matching what the map client sends.
	Location  string `json:"location" gorm:"type:varchar(100)"`
	CreatedBy string `json:"created_by" gorm:"type:varchar(50)"`
	Image     []byte `json:"-" gorm:"type:bytea"`

	Participants []Participant `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE;"`
	Messages     []ChatMessage `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE;"`
}
