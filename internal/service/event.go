package service

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/fanadium/backend/internal/dto"
	"github.com/fanadium/backend/internal/model"
	"github.com/fanadium/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

const minDescriptionLength = 20

type EventService interface {
	ListEvents() ([]model.Event, error)
	GetEventView(eventID uint, voterID string) (dto.EventView, error)
	SubmitDesign(eventID uint, payload dto.SubmissionPayload) (model.Submission, error)
	// CastVote records one vote and returns the submission's new total.
	// A voter gets at most one vote per submission; a second attempt is
	// rejected, never overwritten.
	CastVote(eventID uint, voterID string, position int, upvote bool) (int, error)
}

type eventService struct {
	repositories repository.Repositories
	broker       UpdateBroker
	now          func() time.Time
	mu           sync.Mutex
}

func newEventService(repositories repository.Repositories, broker UpdateBroker, now func() time.Time) EventService {
	return &eventService{
		repositories: repositories,
		broker:       broker,
		now:          now,
	}
}

func (e *eventService) ListEvents() ([]model.Event, error) {
	return e.repositories.Event().List()
}

func (e *eventService) GetEventView(eventID uint, voterID string) (dto.EventView, error) {
	event, err := e.repositories.Event().GetByID(eventID)
	if err != nil {
		return dto.EventView{}, err
	}

	state, err := Window(event, e.now())
	if err != nil {
		logrus.Errorf("Event %d has an unresolvable schedule: %v", eventID, err)
		return dto.EventView{}, err
	}

	submissions, err := e.repositories.Submission().ListForEvent(eventID)
	if err != nil {
		return dto.EventView{}, err
	}

	voted := make(map[int]string)
	if voterID != "" {
		byVoter, err := e.repositories.Vote().VotesByVoter(eventID, voterID)
		if err != nil {
			return dto.EventView{}, err
		}
		for position, upvote := range byVoter {
			voted[position] = model.Vote{Upvote: upvote}.Direction()
		}
	}

	return dto.EventView{
		Event:       event,
		Submissions: submissions,
		Voted:       voted,
		WindowState: state.String(),
	}, nil
}

func (e *eventService) SubmitDesign(eventID uint, payload dto.SubmissionPayload) (model.Submission, error) {
	event, err := e.repositories.Event().GetByID(eventID)
	if err != nil {
		return model.Submission{}, err
	}

	state, err := Window(event, e.now())
	if err != nil {
		logrus.Errorf("Event %d has an unresolvable schedule: %v", eventID, err)
		return model.Submission{}, err
	}
	if !state.AllowsMutations() {
		return model.Submission{}, fmt.Errorf("%w: event %d is %s", dto.ErrWindowClosed, eventID, state)
	}

	if err := validatePayload(payload); err != nil {
		return model.Submission{}, err
	}

	date := strings.TrimSpace(payload.Date)
	if date == "" {
		date = e.now().UTC().Format(scheduleDateLayout)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var created model.Submission
	err = e.repositories.Transaction(func(repos repository.Repositories) error {
		created, err = repos.Submission().Append(eventID, model.Submission{
			Creator:     strings.TrimSpace(payload.Creator),
			Title:       strings.TrimSpace(payload.Title),
			Description: payload.Description,
			Image:       payload.Image,
			Date:        date,
		})
		if err != nil {
			return err
		}

		count, err := repos.Submission().CountForEvent(eventID)
		if err != nil {
			return err
		}

		event.SubmissionCount = int(count)
		_, err = repos.Event().Update(event)
		return err
	})
	if err != nil {
		return model.Submission{}, err
	}

	logrus.Infof("Creator %q submitted design %d to event %d", created.Creator, created.Position, eventID)
	e.broker.Publish(EventUpdate{EventID: eventID, Kind: UpdateSubmission})

	return created, nil
}

func (e *eventService) CastVote(eventID uint, voterID string, position int, upvote bool) (int, error) {
	if strings.TrimSpace(voterID) == "" {
		return 0, fmt.Errorf("%w: voter identity is required", dto.ErrValidation)
	}

	event, err := e.repositories.Event().GetByID(eventID)
	if err != nil {
		return 0, err
	}

	state, err := Window(event, e.now())
	if err != nil {
		logrus.Errorf("Event %d has an unresolvable schedule: %v", eventID, err)
		return 0, err
	}
	if !state.AllowsMutations() {
		return 0, fmt.Errorf("%w: event %d is %s", dto.ErrWindowClosed, eventID, state)
	}

	delta := -1
	if upvote {
		delta = 1
	}

	// The ledger write and the counter delta are one unit: either both
	// commit or neither does.
	e.mu.Lock()
	defer e.mu.Unlock()

	var total int
	err = e.repositories.Transaction(func(repos repository.Repositories) error {
		if _, err := repos.Submission().Get(eventID, position); err != nil {
			return err
		}

		if err := repos.Vote().Record(model.Vote{
			EventID:  eventID,
			VoterID:  voterID,
			Position: position,
			Upvote:   upvote,
		}); err != nil {
			return err
		}

		total, err = repos.Submission().ApplyVoteDelta(eventID, position, delta)
		return err
	})
	if err != nil {
		return 0, err
	}

	logrus.Infof("Voter %q voted on submission %d of event %d: upvote=%v", voterID, position, eventID, upvote)
	e.broker.Publish(EventUpdate{EventID: eventID, Kind: UpdateVote})

	return total, nil
}

func validatePayload(payload dto.SubmissionPayload) error {
	var fields []string

	if strings.TrimSpace(payload.Creator) == "" {
		fields = append(fields, "creator")
	}
	if strings.TrimSpace(payload.Title) == "" {
		fields = append(fields, "title")
	}
	// The minimum counts characters, not bytes.
	if strings.TrimSpace(payload.Description) == "" || utf8.RuneCountInString(payload.Description) < minDescriptionLength {
		fields = append(fields, "description")
	}
	if strings.TrimSpace(payload.Image) == "" {
		fields = append(fields, "image")
	}

	if len(fields) > 0 {
		return fmt.Errorf("%w: %s", dto.ErrValidation, strings.Join(fields, ", "))
	}
	return nil
}
