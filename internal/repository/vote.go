package repository

import (
	"errors"
	"fmt"

	"github.com/fanadium/backend/internal/dto"
	"github.com/fanadium/backend/internal/model"
	"gorm.io/gorm"
)

type VoteRepository interface {
	HasVoted(eventID uint, voterID string, position int) (bool, error)
	// Record persists the vote, failing with ErrAlreadyVoted when the
	// (event, voter, position) tuple already holds one. The check and the
	// write are one unit: the insert itself hits the unique index, so two
	// concurrent calls cannot both succeed.
	Record(vote model.Vote) error
	VotesByVoter(eventID uint, voterID string) (map[int]bool, error)
}

type vote struct {
	db *gorm.DB
}

func newVoteRepository(db *gorm.DB) VoteRepository {
	return &vote{
		db: db,
	}
}

func (v *vote) HasVoted(eventID uint, voterID string, position int) (bool, error) {
	var count int64
	result := v.db.Model(&model.Vote{}).
		Where("event_id = ? AND voter_id = ? AND position = ?", eventID, voterID, position).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return count > 0, nil
}

func (v *vote) Record(vote model.Vote) error {
	result := v.db.Create(&vote)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: voter %q on submission %d of event %d", dto.ErrAlreadyVoted, vote.VoterID, vote.Position, vote.EventID)
		}
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}

func (v *vote) VotesByVoter(eventID uint, voterID string) (map[int]bool, error) {
	var votes []model.Vote
	result := v.db.Where("event_id = ? AND voter_id = ?", eventID, voterID).Find(&votes)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	voted := make(map[int]bool, len(votes))
	for _, vote := range votes {
		voted[vote.Position] = vote.Upvote
	}

	return voted, nil
}
