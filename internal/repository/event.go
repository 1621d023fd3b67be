package repository

import (
	"errors"
	"fmt"

	"github.com/fanadium/backend/internal/dto"
	"github.com/fanadium/backend/internal/model"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event model.Event) (model.Event, error)
	List() ([]model.Event, error)
	GetByID(id uint) (model.Event, error)
	Update(event model.Event) (model.Event, error)
	Count() (int64, error)
}

type event struct {
	db *gorm.DB
}

func newEventRepository(db *gorm.DB) EventRepository {
	return &event{
		db: db,
	}
}

func (e *event) Create(event model.Event) (model.Event, error) {
	result := e.db.Create(&event)
	if result.Error != nil {
		return model.Event{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return event, nil
}

func (e *event) List() ([]model.Event, error) {
	var events []model.Event
	result := e.db.Order("id").Find(&events)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return events, nil
}

func (e *event) GetByID(id uint) (model.Event, error) {
	var event model.Event
	result := e.db.First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Event{}, fmt.Errorf("%w: event %d", dto.ErrNotFound, id)
		}
		return model.Event{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return event, nil
}

func (e *event) Update(event model.Event) (model.Event, error) {
	var existing model.Event
	result := e.db.First(&existing, event.ID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Event{}, fmt.Errorf("%w: event %d", dto.ErrNotFound, event.ID)
		}
		return model.Event{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	result = e.db.Save(&event)
	if result.Error != nil {
		return model.Event{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return event, nil
}

func (e *event) Count() (int64, error) {
	var count int64
	result := e.db.Model(&model.Event{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return count, nil
}
