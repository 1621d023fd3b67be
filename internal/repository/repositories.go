package repository

import (
	"github.com/fanadium/backend/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Repositories interface {
	Event() EventRepository
	Submission() SubmissionRepository
	Vote() VoteRepository

	// Transaction runs fn against a copy of the repositories bound to a
	// single database transaction. Cast-vote uses this so the ledger write
	// and the counter delta commit or roll back together.
	Transaction(fn func(Repositories) error) error

	// Bootstrap seeds the default event catalog when the store is empty.
	// It is idempotent: existing data is never overwritten.
	Bootstrap() error
}

type repositories struct {
	db                   *gorm.DB
	eventRepository      EventRepository
	submissionRepository SubmissionRepository
	voteRepository       VoteRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	err := db.AutoMigrate(&model.Event{}, &model.Submission{}, &model.Vote{})
	if err != nil {
		logrus.Panic(err)
	}
	return newRepositories(db)
}

func newRepositories(db *gorm.DB) Repositories {
	return &repositories{
		db:                   db,
		eventRepository:      newEventRepository(db),
		submissionRepository: newSubmissionRepository(db),
		voteRepository:       newVoteRepository(db),
	}
}

func (r repositories) Event() EventRepository {
	return r.eventRepository
}

func (r repositories) Submission() SubmissionRepository {
	return r.submissionRepository
}

func (r repositories) Vote() VoteRepository {
	return r.voteRepository
}

func (r repositories) Transaction(fn func(Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(newRepositories(tx))
	})
}
