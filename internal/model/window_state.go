package model

type WindowState int

const (
	// WindowPending means the event has not started; submissions and votes
	// are accepted.
	WindowPending WindowState = 0
	// WindowLive means the scheduled start has passed; submissions and
	// votes are permanently rejected.
	WindowLive WindowState = 1
)

func (ws WindowState) String() string {
	switch ws {
	case WindowPending:
		return "pending"
	case WindowLive:
		return "live"
	default:
		return "unknown"
	}
}

// AllowsMutations reports whether submissions and votes are accepted in
// this state. The pending-to-live transition is one way.
func (ws WindowState) AllowsMutations() bool {
	return ws == WindowPending
}
