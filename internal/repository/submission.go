package repository

import (
	"errors"
	"fmt"

	"github.com/fanadium/backend/internal/dto"
	"github.com/fanadium/backend/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	ListForEvent(eventID uint) ([]model.Submission, error)
	Get(eventID uint, position int) (model.Submission, error)
	// Append adds the submission to the end of the event's list and
	// returns it with its assigned position. Window gating is the
	// service's job, not the table's.
	Append(eventID uint, submission model.Submission) (model.Submission, error)
	CountForEvent(eventID uint) (int64, error)
	// ApplyVoteDelta adds delta to the submission's vote counter and
	// returns the new total.
	ApplyVoteDelta(eventID uint, position int, delta int) (int, error)
}

type submission struct {
	db *gorm.DB
}

func newSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submission{
		db: db,
	}
}

func (s *submission) ListForEvent(eventID uint) ([]model.Submission, error) {
	submissions := make([]model.Submission, 0)
	result := s.db.Where("event_id = ?", eventID).Order("position").Find(&submissions)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return submissions, nil
}

func (s *submission) Get(eventID uint, position int) (model.Submission, error) {
	var sub model.Submission
	result := s.db.Where("event_id = ? AND position = ?", eventID, position).First(&sub)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Submission{}, fmt.Errorf("%w: event %d has no submission %d", dto.ErrOutOfRange, eventID, position)
		}
		return model.Submission{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return sub, nil
}

func (s *submission) Append(eventID uint, sub model.Submission) (model.Submission, error) {
	count, err := s.CountForEvent(eventID)
	if err != nil {
		return model.Submission{}, err
	}

	sub.ID = 0
	sub.EventID = eventID
	sub.Position = int(count)
	sub.Votes = 0

	result := s.db.Create(&sub)
	if result.Error != nil {
		return model.Submission{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return sub, nil
}

func (s *submission) CountForEvent(eventID uint) (int64, error) {
	var count int64
	result := s.db.Model(&model.Submission{}).Where("event_id = ?", eventID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return count, nil
}

func (s *submission) ApplyVoteDelta(eventID uint, position int, delta int) (int, error) {
	result := s.db.Model(&model.Submission{}).
		Where("event_id = ? AND position = ?", eventID, position).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, fmt.Errorf("%w: event %d has no submission %d", dto.ErrOutOfRange, eventID, position)
	}

	updated, err := s.Get(eventID, position)
	if err != nil {
		return 0, err
	}

	return updated.Votes, nil
}
