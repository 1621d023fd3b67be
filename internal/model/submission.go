package model

// Submission is a creative entry tied to one event. Position is its place
// in that event's insertion-ordered list and doubles as its identity;
// submissions are never removed, so positions never shift. All fields
// except Votes are immutable after creation.
type Submission struct {
	ID          uint   `gorm:"primarykey" json:"-"`
	EventID     uint   `gorm:"uniqueIndex:idx_event_position;not null" json:"eventId"`
	Position    int    `gorm:"uniqueIndex:idx_event_position;not null" json:"position"`
	Creator     string `gorm:"not null" json:"creator"`
	Date        string `json:"date"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Votes       int    `gorm:"not null;default:0" json:"votes"`
}
