package model

import "time"

// Vote directions as they appear on the wire.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Vote records that a voter has cast a choice on one submission of one
// event. The composite unique index is what makes a second vote on the
// same (event, voter, position) tuple impossible, even under concurrent
// writers. Votes are never updated or deleted.
type Vote struct {
	ID        uint   `gorm:"primarykey"`
	EventID   uint   `gorm:"uniqueIndex:idx_vote_tuple;not null"`
	VoterID   string `gorm:"uniqueIndex:idx_vote_tuple;not null"`
	Position  int    `gorm:"uniqueIndex:idx_vote_tuple;not null"`
	CreatedAt time.Time
	Upvote    bool `gorm:"not null"`
}

// Direction renders the stored flag as a wire direction.
func (v Vote) Direction() string {
	if v.Upvote {
		return DirectionUp
	}
	return DirectionDown
}
