package enum

type EventCategory string

const (
	CategoryMusic    EventCategory = "Music"
	CategoryArt      EventCategory = "Art"
	CategoryFilm     EventCategory = "Film"
	CategoryTheatre  EventCategory = "Theatre"
	CategorySports   EventCategory = "Sports"
	CategoryCultural EventCategory = "Cultural"
)
