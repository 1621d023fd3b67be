package controller

import (
	"github.com/fanadium/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type Controllers interface {
	Event() EventController
	Info() InfoController

	Route(e *echo.Echo)
}

type controllers struct {
	eventController EventController
	infoController  InfoController
}

func NewControllers(services service.Services) Controllers {
	eventController := newEventController(services.Event())
	infoController := newInfoController()
	return &controllers{
		eventController: eventController,
		infoController:  infoController,
	}
}

func (c controllers) Event() EventController {
	return c.eventController
}

func (c controllers) Info() InfoController {
	return c.infoController
}

func (c controllers) Route(e *echo.Echo) {
	e.GET("/", c.infoController.Info)

	e.GET("/events", c.eventController.ListEvents)
	e.GET("/events/:id", c.eventController.GetEvent)
	e.POST("/events/:id/submissions", c.eventController.SubmitDesign)
	e.POST("/events/:id/submissions/:position/votes", c.eventController.CastVote)
}
