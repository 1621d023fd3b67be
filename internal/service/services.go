package service

import (
	"time"

	"github.com/fanadium/backend/internal/repository"
)

type Services interface {
	Event() EventService
	Broker() UpdateBroker
}

type services struct {
	eventService EventService
	updateBroker UpdateBroker
}

func NewServices(repositories repository.Repositories) Services {
	broker := newUpdateBroker()
	eventService := newEventService(repositories, broker, time.Now)
	return &services{
		eventService: eventService,
		updateBroker: broker,
	}
}

func (s services) Event() EventService {
	return s.eventService
}

func (s services) Broker() UpdateBroker {
	return s.updateBroker
}
