package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/fanadium/backend/internal/dto"
	"github.com/fanadium/backend/internal/model"
)

const scheduleDateLayout = "2006-01-02"

// Accepted wall-clock layouts for an event's Time field. An explicit
// "UTC" suffix is stripped before parsing; bare values are read as UTC
// either way.
var scheduleTimeLayouts = []string{"15:04", "15:04:05"}

// ScheduledInstant resolves an event's Date and Time to the instant its
// window closes. Unparseable input fails with ErrInvalidSchedule rather
// than defaulting to an open or closed window.
func ScheduledInstant(event model.Event) (time.Time, error) {
	clock := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(event.Time), "UTC"))

	for _, layout := range scheduleTimeLayouts {
		instant, err := time.ParseInLocation(scheduleDateLayout+" "+layout, event.Date+" "+clock, time.UTC)
		if err == nil {
			return instant, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: event %d has schedule %q %q", dto.ErrInvalidSchedule, event.ID, event.Date, event.Time)
}

// Window classifies the event against now: live once the scheduled
// instant has been reached, pending before it. The transition is one way.
func Window(event model.Event, now time.Time) (model.WindowState, error) {
	instant, err := ScheduledInstant(event)
	if err != nil {
		return model.WindowLive, err
	}

	if now.Before(instant) {
		return model.WindowPending, nil
	}
	return model.WindowLive, nil
}
