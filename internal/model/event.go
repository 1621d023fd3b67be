package model

// Event is one scheduled occasion with a design submission and voting
// window that closes at its scheduled start. Date holds "2006-01-02" and
// Time holds "15:04", optionally suffixed with "UTC"; bare values are read
// as UTC. SubmissionCount is derived from the submission table and is
// maintained only by the event service.
type Event struct {
	ID                   uint   `gorm:"primarykey" json:"id"`
	Title                string `gorm:"not null" json:"title"`
	Date                 string `gorm:"not null" json:"date"`
	Time                 string `gorm:"not null" json:"time"`
	Location             string `json:"location"`
	Sport                string `json:"sport"`
	Image                string `json:"image"`
	TicketsAvailable     int    `json:"ticketsAvailable"`
	TicketPrice          string `json:"ticketPrice"`
	WorkshopActive       bool   `json:"workshopActive"`
	WorkshopParticipants int    `json:"workshopParticipants"`
	Description          string `json:"description"`
	SubmissionCount      int    `gorm:"not null;default:0" json:"submissionCount"`
}
