package dto

import "github.com/fanadium/backend/internal/model"

// SubmissionPayload is the rendering layer's input for a new design
// submission. The vote counter is never part of the payload.
type SubmissionPayload struct {
	Creator     string `json:"creator"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Date        string `json:"date"`
}

// EventView bundles everything the rendering layer needs for one event
// page: the event itself, its submissions in insertion order, the choices
// the current voter has already cast, and the window state.
type EventView struct {
	Event       model.Event        `json:"event"`
	Submissions []model.Submission `json:"submissions"`
	Voted       map[int]string     `json:"voted"`
	WindowState string             `json:"windowState"`
}
