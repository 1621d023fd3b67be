package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fanadium/backend/internal/dto"
	"github.com/fanadium/backend/internal/model"
	"github.com/fanadium/backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Cookie carrying the locally generated pseudo voter identity. When no
// external identity is supplied, this bounds voting to one vote per
// submission per browsing session/device.
const voterCookieName = "voter_id"

const voterCookieMaxAge = 365 * 24 * 60 * 60

type EventController interface {
	ListEvents(c echo.Context) error
	GetEvent(c echo.Context) error
	SubmitDesign(c echo.Context) error
	CastVote(c echo.Context) error
}

type eventController struct {
	eventService service.EventService
}

func newEventController(eventService service.EventService) EventController {
	return &eventController{
		eventService: eventService,
	}
}

func (ec *eventController) ListEvents(c echo.Context) error {
	events, err := ec.eventService.ListEvents()
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, events)
}

func (ec *eventController) GetEvent(c echo.Context) error {
	eventID, err := parseEventID(c)
	if err != nil {
		return httpError(err)
	}

	view, err := ec.eventService.GetEventView(eventID, resolveVoter(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, view)
}

func (ec *eventController) SubmitDesign(c echo.Context) error {
	eventID, err := parseEventID(c)
	if err != nil {
		return httpError(err)
	}

	var payload dto.SubmissionPayload
	if err := c.Bind(&payload); err != nil {
		return httpError(errors.Join(dto.ErrValidation, err))
	}

	created, err := ec.eventService.SubmitDesign(eventID, payload)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, created)
}

type castVoteRequest struct {
	Direction string `json:"direction"`
}

type castVoteResponse struct {
	EventID  uint `json:"eventId"`
	Position int  `json:"position"`
	Votes    int  `json:"votes"`
}

func (ec *eventController) CastVote(c echo.Context) error {
	eventID, err := parseEventID(c)
	if err != nil {
		return httpError(err)
	}

	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		return httpError(errors.Join(dto.ErrValidation, err))
	}

	var request castVoteRequest
	if err := c.Bind(&request); err != nil {
		return httpError(errors.Join(dto.ErrValidation, err))
	}

	var upvote bool
	switch request.Direction {
	case model.DirectionUp:
		upvote = true
	case model.DirectionDown:
		upvote = false
	default:
		return httpError(errors.Join(dto.ErrValidation, errors.New("direction must be up or down")))
	}

	votes, err := ec.eventService.CastVote(eventID, resolveVoter(c), position, upvote)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, castVoteResponse{
		EventID:  eventID,
		Position: position,
		Votes:    votes,
	})
}

func parseEventID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.Join(dto.ErrValidation, err)
	}
	return uint(id), nil
}

// resolveVoter returns the caller's voter identity, minting and setting a
// cookie-persisted pseudo identity on first contact.
func resolveVoter(c echo.Context) string {
	cookie, err := c.Cookie(voterCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	voterID := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     voterCookieName,
		Value:    voterID,
		Path:     "/",
		MaxAge:   voterCookieMaxAge,
		HttpOnly: true,
	})
	return voterID
}

func httpError(err error) *echo.HTTPError {
	var status int
	switch {
	case errors.Is(err, dto.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, dto.ErrNotFound), errors.Is(err, dto.ErrOutOfRange):
		status = http.StatusNotFound
	case errors.Is(err, dto.ErrWindowClosed), errors.Is(err, dto.ErrAlreadyVoted):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}
	return echo.NewHTTPError(status, err.Error())
}
